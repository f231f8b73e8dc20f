// Package storage provides persistence for wellwish.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wellwish/wellwish/internal/core"
)

// ChatStore handles chat message persistence
type ChatStore struct {
	db *DB
}

// NewChatStore creates a new chat store
func NewChatStore(db *DB) *ChatStore {
	return &ChatStore{db: db}
}

// Create appends a message to a contact's history. The referenced contact
// must exist; the foreign key rejects orphan messages.
func (s *ChatStore) Create(contactID, content string) (*core.ChatMessage, error) {
	msg := &core.ChatMessage{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	return s.insert(msg)
}

// CreateAt appends a message with an explicit timestamp, for importing
// history recorded elsewhere.
func (s *ChatStore) CreateAt(contactID, content string, at time.Time) (*core.ChatMessage, error) {
	msg := &core.ChatMessage{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Content:   content,
		Timestamp: at.UTC(),
	}

	return s.insert(msg)
}

func (s *ChatStore) insert(msg *core.ChatMessage) (*core.ChatMessage, error) {
	_, err := s.db.conn.Exec(`
		INSERT INTO chats (id, contact_id, content, timestamp)
		VALUES (?, ?, ?, ?)
	`, msg.ID, msg.ContactID, msg.Content, msg.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to save chat: %w", err)
	}

	return msg, nil
}

// ListByContact returns a contact's messages, newest first
func (s *ChatStore) ListByContact(contactID string) ([]core.ChatMessage, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, contact_id, content, timestamp
		FROM chats
		WHERE contact_id = ?
		ORDER BY timestamp DESC
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []core.ChatMessage
	for rows.Next() {
		var msg core.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.ContactID, &msg.Content, &msg.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// CountByContact returns how many messages a contact has
func (s *ChatStore) CountByContact(contactID string) (int, error) {
	var count int
	err := s.db.conn.QueryRow("SELECT COUNT(*) FROM chats WHERE contact_id = ?", contactID).Scan(&count)
	return count, err
}
