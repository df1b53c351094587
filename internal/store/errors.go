package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrCorruptStore is returned when the persisted collection exists but
	// cannot be parsed. Surfaced to the caller rather than silently treated
	// as empty, so a corrupt file is never overwritten with a fresh one.
	ErrCorruptStore = errors.New("quiz collection is corrupt")

	// ErrWriteFailed is returned when the collection could not be written.
	// The previously persisted collection is left intact.
	ErrWriteFailed = errors.New("failed to write quiz collection")
)
