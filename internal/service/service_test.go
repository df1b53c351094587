package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchday/quizgen/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func trilingual(s string) domain.LocalizedText {
	return domain.LocalizedText{ES: s + " es", CA: s + " ca", EN: s + " en"}
}

func validContent(question string) domain.QuizContent {
	return domain.QuizContent{
		Question: trilingual(question),
		Options: []domain.Option{
			{ID: "A", Text: trilingual("a")},
			{ID: "B", Text: trilingual("b")},
			{ID: "C", Text: trilingual("c")},
			{ID: "D", Text: trilingual("d")},
		},
		CorrectOptionID:   "B",
		CorrectAnswerText: trilingual("b"),
		Source:            "archive",
	}
}

func validRecord(t *testing.T, topic string) *domain.QuizRecord {
	t.Helper()
	record, err := domain.NewQuizRecord(domain.CategoryMatch, topic, validContent("q"))
	require.NoError(t, err)
	return record
}

// memoryStore is an in-memory store.QuizStore for pipeline tests.
type memoryStore struct {
	records   []*domain.QuizRecord
	appendErr error
	readErr   error
	appends   int
}

func (m *memoryStore) Append(ctx context.Context, records []*domain.QuizRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.records = append(m.records, records...)
	return nil
}

func (m *memoryStore) ReadAll(ctx context.Context) ([]*domain.QuizRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	out := make([]*domain.QuizRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// stubGenerator returns a scripted batch of candidates.
type stubGenerator struct {
	candidates []domain.QuizContent
	err        error
	calls      int
}

func (g *stubGenerator) GenerateQuizzes(ctx context.Context, category domain.Category, topic string) ([]domain.QuizContent, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.candidates, nil
}

// stubUploader fails delivery for the quiz IDs in failFor.
type stubUploader struct {
	failFor  map[string]bool
	uploaded []string
}

func (u *stubUploader) Upload(ctx context.Context, record *domain.QuizRecord) error {
	if u.failFor[record.ID] {
		return errors.New("endpoint returned 502 Bad Gateway")
	}
	u.uploaded = append(u.uploaded, record.ID)
	return nil
}
