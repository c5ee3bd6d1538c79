// Package store provides conversation-history persistence for the
// interpreter. Histories are bounded FIFO logs keyed by caller id.
package store

import "time"

// Role identifies who produced a turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry in a caller's conversation history.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Storer is the history contract the interpreter depends on. Implementations
// bound each caller's log at a fixed capacity, evicting oldest-first, and
// keep appends to one caller serialized.
type Storer interface {
	// Append adds a turn to the caller's history, evicting the oldest
	// entries once the capacity is exceeded.
	Append(callerID string, turn Turn) error

	// Recent returns the caller's retained turns, oldest first. An unknown
	// caller yields an empty slice, not an error.
	Recent(callerID string) ([]Turn, error)

	// Clear drops the caller's history.
	Clear(callerID string) error

	// Close releases underlying resources.
	Close() error
}
