package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/generation"
	"github.com/matchday/quizgen/internal/store"
)

// Rejection describes one candidate that failed schema validation.
type Rejection struct {
	// Index is the candidate's position within its batch.
	Index int

	// Reason is the violated invariant, wrapping domain.ErrValidation.
	Reason error
}

// GenerateResult reports the outcome of one generation call: the records
// that were validated and persisted, and the candidates that were rejected.
// A batch where everything was rejected is a soft failure, not an error.
type GenerateResult struct {
	Records    []*domain.QuizRecord
	Rejections []Rejection
}

// GenerationService runs the generate-validate-persist pipeline for one
// (category, topic) pair at a time.
type GenerationService struct {
	generator generation.Generator
	quizStore store.QuizStore
	logger    *slog.Logger
}

// NewGenerationService wires the pipeline from its collaborators.
func NewGenerationService(generator generation.Generator, quizStore store.QuizStore, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		generator: generator,
		quizStore: quizStore,
		logger:    logger,
	}
}

// Generate requests one batch of candidates for the category and topic,
// validates each candidate independently, stamps the surviving ones into
// quiz records and appends them to the store. Rejecting one candidate never
// discards the others; generation and storage errors abort the call.
func (s *GenerationService) Generate(ctx context.Context, category domain.Category, topic string) (*GenerateResult, error) {
	s.logger.InfoContext(ctx, "generating quiz batch",
		"category", category,
		"topic", topic)

	candidates, err := s.generator.GenerateQuizzes(ctx, category, topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	result := &GenerateResult{}
	for i, candidate := range candidates {
		record, err := domain.NewQuizRecord(category, topic, candidate)
		if err != nil {
			s.logger.WarnContext(ctx, "candidate rejected by schema validation",
				"index", i,
				"category", category,
				"topic", topic,
				"reason", err)
			result.Rejections = append(result.Rejections, Rejection{Index: i, Reason: err})
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		s.logger.WarnContext(ctx, "no valid quizzes in batch",
			"candidates", len(candidates),
			"rejected", len(result.Rejections))
		return result, nil
	}

	if err := s.quizStore.Append(ctx, result.Records); err != nil {
		return nil, fmt.Errorf("failed to persist generated quizzes: %w", err)
	}

	s.logger.InfoContext(ctx, "quiz batch stored",
		"stored", len(result.Records),
		"rejected", len(result.Rejections))

	return result, nil
}
