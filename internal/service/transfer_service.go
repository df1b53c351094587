package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/store"
)

// Uploader delivers one quiz record to the remote ingestion endpoint.
// Implemented by internal/platform/ingest.
type Uploader interface {
	Upload(ctx context.Context, record *domain.QuizRecord) error
}

// RecordFailure identifies one record that was rejected or undeliverable
// during a bulk transfer, with the reason.
type RecordFailure struct {
	QuizID string
	Index  int
	Reason string
}

// TransferSummary reports the outcome of one bulk transfer. Delivery is a
// copy: the local collection is identical before and after, whatever the
// counts say.
type TransferSummary struct {
	// Total is the number of records read from the collection.
	Total int

	// Validated counts records that passed re-validation.
	Validated int

	// Delivered counts records accepted by the ingestion endpoint.
	Delivered int

	// Rejected lists records that failed re-validation.
	Rejected []RecordFailure

	// Failed lists valid records whose delivery failed.
	Failed []RecordFailure
}

// TransferService drains the persisted collection to the ingestion endpoint.
type TransferService struct {
	openStore   func(path string) store.QuizStore
	defaultPath string
	uploader    Uploader
	logger      *slog.Logger
}

// NewTransferService wires the bulk transfer stage. openStore maps a
// collection file path to a store; defaultPath is used when Transfer is
// called without one.
func NewTransferService(openStore func(path string) store.QuizStore, defaultPath string, uploader Uploader, logger *slog.Logger) *TransferService {
	return &TransferService{
		openStore:   openStore,
		defaultPath: defaultPath,
		uploader:    uploader,
		logger:      logger,
	}
}

// Transfer reads the full collection at path (the default path when empty),
// re-validates every record, and delivers each valid one to the ingestion
// endpoint. Per-record validation and delivery failures are collected in
// the summary and never abort the remaining records; a collection that
// cannot be read at all is a fatal error for the call.
func (s *TransferService) Transfer(ctx context.Context, path string) (*TransferSummary, error) {
	if path == "" {
		path = s.defaultPath
	}

	records, err := s.openStore(path).ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("bulk transfer aborted: %w", err)
	}

	s.logger.InfoContext(ctx, "starting bulk transfer",
		"path", path,
		"records", len(records))

	summary := &TransferSummary{Total: len(records)}
	for i, record := range records {
		// Defense in depth: the file may predate the current schema or
		// have been edited since the record was stored.
		if err := record.Validate(); err != nil {
			s.logger.WarnContext(ctx, "record failed re-validation, skipping",
				"quiz_id", record.ID,
				"index", i,
				"reason", err)
			summary.Rejected = append(summary.Rejected, RecordFailure{
				QuizID: record.ID,
				Index:  i,
				Reason: err.Error(),
			})
			continue
		}
		summary.Validated++

		if err := s.uploader.Upload(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "record delivery failed",
				"quiz_id", record.ID,
				"index", i,
				"reason", err)
			summary.Failed = append(summary.Failed, RecordFailure{
				QuizID: record.ID,
				Index:  i,
				Reason: err.Error(),
			})
			continue
		}
		summary.Delivered++
	}

	s.logger.InfoContext(ctx, "bulk transfer finished",
		"total", summary.Total,
		"validated", summary.Validated,
		"delivered", summary.Delivered,
		"rejected", len(summary.Rejected),
		"delivery_failed", len(summary.Failed))

	return summary, nil
}
