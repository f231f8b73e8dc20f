// Package core defines the fundamental types and errors for wellwish.
package core

import "errors"

// Core errors that can occur across the system
var (
	// Storage errors
	ErrDatabaseNotFound = errors.New("database not found")
	ErrMigrationFailed  = errors.New("migration failed")
	ErrContactNotFound  = errors.New("contact not found")
	ErrChatNotFound     = errors.New("chat message not found")
	ErrGreetingNotFound = errors.New("greeting not found")
	ErrDuplicateRecord  = errors.New("duplicate record")

	// Greeting errors
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder in greeting")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
