// Package jsonfile implements store.QuizStore on top of a single JSON file
// holding the full quiz collection as an array. Writes are read-merge-write:
// the new collection is written to a temporary file in the same directory
// and swapped into place with an atomic rename, so an interrupted write can
// never leave a truncated collection behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/store"
)

// Store is a file-backed store.QuizStore.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a Store persisting to the given file path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the collection file path this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// ReadAll returns the full persisted collection in insertion order.
// An absent file is an empty collection.
func (s *Store) ReadAll(ctx context.Context) ([]*domain.QuizRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.DebugContext(ctx, "quiz collection file absent, treating as empty",
			"path", s.path)
		return []*domain.QuizRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz collection %s: %w", s.path, err)
	}

	var records []*domain.QuizRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorruptStore, s.path, err)
	}

	return records, nil
}

// Append adds records to the end of the persisted collection, preserving
// every existing record. A corrupt existing collection aborts the append so
// it is never overwritten.
func (s *Store) Append(ctx context.Context, records []*domain.QuizRecord) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	merged := append(existing, records...)
	if err := s.writeAtomic(merged); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "quiz collection updated",
		"path", s.path,
		"appended", len(records),
		"total", len(merged))
	return nil
}

// writeAtomic writes the collection to a temporary file in the target
// directory and renames it over the collection file. Rename within one
// directory is atomic on POSIX filesystems, so readers never observe a
// partially written collection.
func (s *Store) writeAtomic(records []*domain.QuizRecord) error {
	// Indentation keeps the stored file human-readable; it carries no meaning.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}

	return nil
}
