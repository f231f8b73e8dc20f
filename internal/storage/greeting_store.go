// Package storage provides persistence for wellwish.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wellwish/wellwish/internal/core"
)

// GreetingStore handles greeting persistence
type GreetingStore struct {
	db *DB
}

// NewGreetingStore creates a new greeting store
func NewGreetingStore(db *DB) *GreetingStore {
	return &GreetingStore{db: db}
}

// Create persists a greeting for a contact. Only the approval loop calls
// this, and only for accepted drafts.
func (s *GreetingStore) Create(contactID, text string, status core.GreetingStatus) (*core.Greeting, error) {
	if status != core.GreetingDraft && status != core.GreetingApproved {
		return nil, fmt.Errorf("%w: greeting status %q", core.ErrInvalidInput, status)
	}

	greeting := &core.Greeting{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Text:      text,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.conn.Exec(`
		INSERT INTO greetings (id, contact_id, content, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, greeting.ID, greeting.ContactID, greeting.Text, greeting.Status, greeting.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save greeting: %w", err)
	}

	return greeting, nil
}

// ListByContact returns a contact's saved greetings, newest first
func (s *GreetingStore) ListByContact(contactID string) ([]core.Greeting, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, contact_id, content, status, created_at
		FROM greetings
		WHERE contact_id = ?
		ORDER BY created_at DESC
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var greetings []core.Greeting
	for rows.Next() {
		var g core.Greeting
		if err := rows.Scan(&g.ID, &g.ContactID, &g.Text, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		greetings = append(greetings, g)
	}

	return greetings, rows.Err()
}

// Count returns total greeting count
func (s *GreetingStore) Count() (int, error) {
	var count int
	err := s.db.conn.QueryRow("SELECT COUNT(*) FROM greetings").Scan(&count)
	return count, err
}
