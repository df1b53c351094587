package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Category identifies which part of a matchday a question is about.
// The set is closed; values match the wire format used by the ingestion
// backend, including the embedded spaces.
type Category string

const (
	CategoryMatch         Category = "Match"
	CategoryVenue         Category = "Venue"
	CategoryPreviousYears Category = "Previous Years"
	CategoryCuriousInfo   Category = "Curious Info"
	CategoryTeam          Category = "Team"
	CategoryAssistants    Category = "Assistants"
)

// Categories lists all valid categories in menu order.
var Categories = []Category{
	CategoryMatch,
	CategoryVenue,
	CategoryPreviousYears,
	CategoryCuriousInfo,
	CategoryTeam,
	CategoryAssistants,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// OptionIDs is the exact set of IDs the four options of a record must carry.
var OptionIDs = []string{"A", "B", "C", "D"}

// LocalizedText holds one text value in every supported language.
// All three languages are required and must be non-empty.
type LocalizedText struct {
	ES string `json:"es"`
	CA string `json:"ca"`
	EN string `json:"en"`
}

// validate checks the three-language invariant, reporting the field path
// of the first missing language (e.g. "question.en").
func (t LocalizedText) validate(path string) error {
	for _, lang := range []struct {
		code string
		text string
	}{
		{"es", t.ES},
		{"ca", t.CA},
		{"en", t.EN},
	} {
		if lang.text == "" {
			return fmt.Errorf("%w: %s.%s", ErrMissingLanguage, path, lang.code)
		}
	}
	return nil
}

// Option is one answer choice of a multiple-choice question.
type Option struct {
	ID   string        `json:"id"`
	Text LocalizedText `json:"text"`
}

// QuizContent is the part of a quiz record produced by the generative
// service, before an ID, category and topic are stamped on. The JSON tags
// are the wire format shared by the generation response, the persisted
// collection file and the ingestion endpoint.
type QuizContent struct {
	Question          LocalizedText `json:"question"`
	Options           []Option      `json:"options"`
	CorrectOptionID   string        `json:"correct_option_id"`
	CorrectAnswerText LocalizedText `json:"correct_answer_text"`
	Source            string        `json:"source"`
}

// QuizRecord is one persisted trivia question. Records are immutable once
// created; the persisted collection only ever grows.
type QuizRecord struct {
	ID       string   `json:"quiz_id"`
	Category Category `json:"category"`
	Topic    string   `json:"query_topic"`
	QuizContent
}

// NewQuizRecord assembles a record from generated content, assigning a fresh
// UUID and stamping the category and topic the content was generated for.
// Returns a validation error if the content violates any record invariant.
func NewQuizRecord(category Category, topic string, content QuizContent) (*QuizRecord, error) {
	record := &QuizRecord{
		ID:          uuid.New().String(),
		Category:    category,
		Topic:       topic,
		QuizContent: content,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks every record invariant, recursing into options and
// localized texts. The returned error wraps ErrValidation and names the
// violated invariant together with the field path of the offending value.
func (r *QuizRecord) Validate() error {
	if r.ID == "" {
		return ErrQuizIDEmpty
	}

	if !r.Category.IsValid() {
		return fmt.Errorf("%w: category %q", ErrInvalidCategory, r.Category)
	}

	if err := r.Question.validate("question"); err != nil {
		return err
	}

	if len(r.Options) != len(OptionIDs) {
		return fmt.Errorf("%w: got %d", ErrOptionCount, len(r.Options))
	}

	seen := make(map[string]bool, len(OptionIDs))
	for i, opt := range r.Options {
		if !validOptionID(opt.ID) {
			return fmt.Errorf("%w: options[%d].id %q", ErrInvalidOptionID, i, opt.ID)
		}
		if seen[opt.ID] {
			return fmt.Errorf("%w: options[%d].id %q", ErrDuplicateOptionID, i, opt.ID)
		}
		seen[opt.ID] = true

		if err := opt.Text.validate(fmt.Sprintf("options[%d].text", i)); err != nil {
			return err
		}
	}

	if !seen[r.CorrectOptionID] {
		return fmt.Errorf("%w: correct_option_id %q", ErrCorrectOptionMissing, r.CorrectOptionID)
	}

	if err := r.CorrectAnswerText.validate("correct_answer_text"); err != nil {
		return err
	}

	if r.Source == "" {
		return ErrMissingSource
	}

	return nil
}

func validOptionID(id string) bool {
	for _, known := range OptionIDs {
		if id == known {
			return true
		}
	}
	return false
}
