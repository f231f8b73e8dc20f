// Package core defines the fundamental types for wellwish.
package core

import (
	"time"
)

// -----------------------------------------------------------------------------
// RELATION - How a contact relates to the user
// -----------------------------------------------------------------------------

// RelationCategory is a type-safe relationship classification
type RelationCategory string

// The closed set of relationship categories. Template and title selection
// key off these values.
const (
	RelationTeacher   RelationCategory = "teacher"
	RelationColleague RelationCategory = "colleague"
	RelationSuperior  RelationCategory = "superior"
	RelationFriend    RelationCategory = "friend"
	RelationFamily    RelationCategory = "family"
	RelationClassmate RelationCategory = "classmate"
	RelationOther     RelationCategory = "other" // Catch-all
)

// AllRelations lists every category, in classification priority order.
var AllRelations = []RelationCategory{
	RelationTeacher,
	RelationColleague,
	RelationSuperior,
	RelationFriend,
	RelationFamily,
	RelationClassmate,
	RelationOther,
}

// Valid reports whether c is one of the known categories.
func (c RelationCategory) Valid() bool {
	for _, r := range AllRelations {
		if c == r {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// CONTACT - A person the user exchanges greetings with
// -----------------------------------------------------------------------------

// Contact is a person in the address book. Relation is computed once at
// creation time from Notes (unless supplied explicitly) and never
// re-derived afterwards.
type Contact struct {
	ID        string           `json:"id"` // UUID
	Name      string           `json:"name"`
	Phone     string           `json:"phone,omitempty"`
	Relation  RelationCategory `json:"relation"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// -----------------------------------------------------------------------------
// CHAT - Message history with a contact
// -----------------------------------------------------------------------------

// ChatMessage is one message exchanged with a contact. Append-only.
type ChatMessage struct {
	ID        string    `json:"id"` // UUID
	ContactID string    `json:"contact_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalysisResult is what the chat analyzer extracts from a batch of
// messages. Transient: recomputed per invocation, never persisted.
type AnalysisResult struct {
	// Keywords holds every distinct literal keyword match, deduplicated
	// by matched substring across the whole batch.
	Keywords []string
	// ImportantMatters holds the full content of messages carrying an
	// urgency marker, in message order.
	ImportantMatters []string
	// RecentActivities holds the content of messages inside the rolling
	// recency window, in message order.
	RecentActivities []string
}

// Empty reports whether the analysis found nothing at all.
func (r AnalysisResult) Empty() bool {
	return len(r.Keywords) == 0 && len(r.ImportantMatters) == 0 && len(r.RecentActivities) == 0
}

// -----------------------------------------------------------------------------
// GREETING - A drafted holiday message
// -----------------------------------------------------------------------------

// GreetingStatus is the lifecycle state of a greeting
type GreetingStatus string

const (
	GreetingDraft    GreetingStatus = "draft"
	GreetingApproved GreetingStatus = "approved"
)

// Greeting is a persisted greeting. Only approved greetings ever reach
// storage; rejected drafts are discarded in memory.
type Greeting struct {
	ID        string         `json:"id"` // UUID
	ContactID string         `json:"contact_id"`
	Text      string         `json:"text"`
	Status    GreetingStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
