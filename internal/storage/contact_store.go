// Package storage provides persistence for wellwish.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wellwish/wellwish/internal/core"
)

// ContactStore handles contact persistence
type ContactStore struct {
	db *DB
}

// NewContactStore creates a new contact store
func NewContactStore(db *DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a new contact. The ID and timestamps are assigned here;
// Relation must already be resolved by the caller (classification happens
// exactly once, at registration).
func (s *ContactStore) Create(contact *core.Contact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return fmt.Errorf("%w: contact name", core.ErrMissingRequired)
	}
	if !contact.Relation.Valid() {
		return fmt.Errorf("%w: relation %q", core.ErrInvalidInput, contact.Relation)
	}

	now := time.Now().UTC()
	contact.ID = uuid.NewString()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	_, err := s.db.conn.Exec(`
		INSERT INTO contacts (id, name, phone, relation, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		contact.ID, contact.Name, contact.Phone, contact.Relation,
		contact.Notes, contact.CreatedAt, contact.UpdatedAt,
	)

	return err
}

// GetByID returns a contact by ID
func (s *ContactStore) GetByID(id string) (*core.Contact, error) {
	return s.scanOne(s.db.conn.QueryRow(`
		SELECT id, name, phone, relation, notes, created_at, updated_at
		FROM contacts WHERE id = ?
	`, id))
}

// GetByName returns the first contact with the given name. Names are not
// unique; the oldest registration wins, matching insertion order.
func (s *ContactStore) GetByName(name string) (*core.Contact, error) {
	return s.scanOne(s.db.conn.QueryRow(`
		SELECT id, name, phone, relation, notes, created_at, updated_at
		FROM contacts WHERE name = ?
		ORDER BY created_at ASC
		LIMIT 1
	`, name))
}

// List returns all contacts ordered by creation time
func (s *ContactStore) List() ([]*core.Contact, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, name, phone, relation, notes, created_at, updated_at
		FROM contacts
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*core.Contact
	for rows.Next() {
		contact := &core.Contact{}
		var phone, notes sql.NullString

		err := rows.Scan(
			&contact.ID, &contact.Name, &phone, &contact.Relation,
			&notes, &contact.CreatedAt, &contact.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		contact.Phone = phone.String
		contact.Notes = notes.String
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

// Count returns total contact count
func (s *ContactStore) Count() (int, error) {
	var count int
	err := s.db.conn.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count)
	return count, err
}

func (s *ContactStore) scanOne(row *sql.Row) (*core.Contact, error) {
	contact := &core.Contact{}
	var phone, notes sql.NullString

	err := row.Scan(
		&contact.ID, &contact.Name, &phone, &contact.Relation,
		&notes, &contact.CreatedAt, &contact.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, core.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}

	contact.Phone = phone.String
	contact.Notes = notes.String
	return contact, nil
}
