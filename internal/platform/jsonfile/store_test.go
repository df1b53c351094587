package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecord(t *testing.T, topic string) *domain.QuizRecord {
	t.Helper()
	text := func(s string) domain.LocalizedText {
		return domain.LocalizedText{ES: s, CA: s, EN: s}
	}
	record, err := domain.NewQuizRecord(domain.CategoryMatch, topic, domain.QuizContent{
		Question: text("Who scored first?"),
		Options: []domain.Option{
			{ID: "A", Text: text("Pedri")},
			{ID: "B", Text: text("Gavi")},
			{ID: "C", Text: text("Lewandowski")},
			{ID: "D", Text: text("Raphinha")},
		},
		CorrectOptionID:   "C",
		CorrectAnswerText: text("Lewandowski"),
		Source:            "match report",
	})
	require.NoError(t, err)
	return record
}

func TestReadAllAbsentFileIsEmpty(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "quizzes.json"), testLogger())

	records, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "quizzes.json"), testLogger())
	ctx := context.Background()

	r0 := testRecord(t, "pre-existing")
	r1 := testRecord(t, "first append")
	r2 := testRecord(t, "second append")

	require.NoError(t, s.Append(ctx, []*domain.QuizRecord{r0}))
	require.NoError(t, s.Append(ctx, []*domain.QuizRecord{r1}))
	require.NoError(t, s.Append(ctx, []*domain.QuizRecord{r2}))

	records, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, r0.ID, records[0].ID)
	assert.Equal(t, r1.ID, records[1].ID)
	assert.Equal(t, r2.ID, records[2].ID)
	assert.Equal(t, "first append", records[1].Topic)
}

func TestAppendEmptyIsNoop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quizzes.json")
	s := New(path, testLogger())

	require.NoError(t, s.Append(context.Background(), nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "append of nothing must not create the file")
}

func TestReadAllCorruptFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quizzes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"quiz_id": "truncated`), 0o644))

	s := New(path, testLogger())

	_, err := s.ReadAll(context.Background())
	assert.ErrorIs(t, err, store.ErrCorruptStore)
}

func TestAppendRefusesToOverwriteCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quizzes.json")
	corrupt := []byte(`not json at all`)
	require.NoError(t, os.WriteFile(path, corrupt, 0o644))

	s := New(path, testLogger())

	err := s.Append(context.Background(), []*domain.QuizRecord{testRecord(t, "topic")})
	assert.ErrorIs(t, err, store.ErrCorruptStore)

	// The corrupt file is surfaced, never replaced.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, data)
}

func TestInterruptedWriteLeavesCollectionIntact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "quizzes.json")
	s := New(path, testLogger())
	ctx := context.Background()

	r0 := testRecord(t, "survivor")
	require.NoError(t, s.Append(ctx, []*domain.QuizRecord{r0}))

	// Simulate a crash mid-write: a half-written temporary file exists but
	// was never renamed into place.
	stale := filepath.Join(dir, "quizzes.json.tmp-123456")
	require.NoError(t, os.WriteFile(stale, []byte(`[{"quiz_id":"half`), 0o644))

	records, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, r0.ID, records[0].ID)

	// A later append still works and still sees only the real collection.
	r1 := testRecord(t, "after crash")
	require.NoError(t, s.Append(ctx, []*domain.QuizRecord{r1}))

	records, err = s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, r0.ID, records[0].ID)
	assert.Equal(t, r1.ID, records[1].ID)
}

func TestStoredFileIsIndentedValidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quizzes.json")
	s := New(path, testLogger())

	require.NoError(t, s.Append(context.Background(), []*domain.QuizRecord{testRecord(t, "topic")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	// Wire field names, exactly as the ingestion backend expects them.
	for _, field := range []string{"quiz_id", "category", "query_topic", "question", "options", "correct_option_id", "correct_answer_text", "source"} {
		assert.Contains(t, raw[0], field)
	}

	assert.Contains(t, string(data), "\n  {", "collection file should be indented")
}
