// Package testutil holds shared fixtures and mocks for wellwish tests.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/wellwish/wellwish/internal/core"
)

// RandomID generates a random ID for testing.
func RandomID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// ContactFixture returns a contact with the given relation, classified
// fields pre-filled.
func ContactFixture(name string, relation core.RelationCategory) *core.Contact {
	now := time.Now().UTC()
	return &core.Contact{
		ID:        "contact-" + RandomID(),
		Name:      name,
		Phone:     "13800000000",
		Relation:  relation,
		Notes:     "",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MessageFixture returns a chat message for the given contact, timestamped
// relative to now.
func MessageFixture(contactID, content string, age time.Duration) core.ChatMessage {
	return core.ChatMessage{
		ID:        "chat-" + RandomID(),
		ContactID: contactID,
		Content:   content,
		Timestamp: time.Now().UTC().Add(-age),
	}
}

// History builds a message batch for one contact from content strings, all
// timestamped a day apart, oldest first.
func History(contactID string, contents ...string) []core.ChatMessage {
	messages := make([]core.ChatMessage, 0, len(contents))
	for i, content := range contents {
		age := time.Duration(len(contents)-i) * 24 * time.Hour
		messages = append(messages, MessageFixture(contactID, content, age))
	}
	return messages
}
