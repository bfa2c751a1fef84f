package domain

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for a folder or version.
// IDs are immutable once assigned and unique for the data volumes this
// tool targets (hundreds to low thousands of entities).
func NewID() string {
	return uuid.NewString()
}
