// Package store defines the persistence interfaces for quiz records and the
// errors store implementations return. Concrete implementations live under
// internal/platform (see internal/platform/jsonfile).
package store

import (
	"context"

	"github.com/matchday/quizgen/internal/domain"
)

// QuizStore defines the interface for persisting the quiz collection.
// The collection is append-only: records are never removed or reordered,
// and insertion order is preserved across Append calls.
type QuizStore interface {
	// Append adds records to the end of the persisted collection, keeping
	// every previously stored record. The write must be atomic: a reader
	// (concurrent or after a crash mid-write) sees either the previous
	// collection or the new one, never a truncated mix.
	Append(ctx context.Context, records []*domain.QuizRecord) error

	// ReadAll returns the full persisted collection in insertion order.
	// A missing collection is an empty collection, not an error; a
	// collection that exists but cannot be parsed is ErrCorruptStore.
	ReadAll(ctx context.Context) ([]*domain.QuizRecord, error)
}
