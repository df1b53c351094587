package generation

import (
	"context"

	"github.com/matchday/quizgen/internal/domain"
)

// Generator defines the interface for obtaining candidate quiz content from
// an external generative service. This interface serves as the boundary
// between the application core and the AI service, so the pipeline can be
// tested with a stub generator.
type Generator interface {
	// GenerateQuizzes requests one batch of candidate quiz content for the
	// given category and topic. The returned slice holds the raw decoded
	// candidates, before validation and before an ID is assigned; the
	// service may return fewer candidates than requested, and an empty
	// slice is a valid outcome, not an error.
	//
	// Errors follow the package taxonomy: ErrTransientFailure after the
	// retry budget is exhausted, ErrRequestRejected or ErrContentBlocked
	// for non-retryable failures, ErrInvalidResponse when the response
	// could not be decoded.
	GenerateQuizzes(ctx context.Context, category domain.Category, topic string) ([]domain.QuizContent, error)
}
