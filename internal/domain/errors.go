package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a quiz record fails validation.
	// Specific validation errors below wrap this, so callers can check
	// for any validation failure with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")
)

// Quiz-specific validation errors. Each names the invariant it guards;
// the wrapping error carries the field path of the offending value.
var (
	// ErrQuizIDEmpty is returned when a quiz record has no identifier.
	ErrQuizIDEmpty = wrapValidation("quiz ID cannot be empty")

	// ErrInvalidCategory is returned when a category is not a member of
	// the closed category set.
	ErrInvalidCategory = wrapValidation("category is not a known category")

	// ErrOptionCount is returned when a record does not have exactly four options.
	ErrOptionCount = wrapValidation("record must have exactly four options")

	// ErrInvalidOptionID is returned when an option ID is outside A-D.
	ErrInvalidOptionID = wrapValidation("option ID must be one of A, B, C, D")

	// ErrDuplicateOptionID is returned when two options share an ID.
	ErrDuplicateOptionID = wrapValidation("option IDs must not repeat")

	// ErrCorrectOptionMissing is returned when correct_option_id does not
	// match the ID of any present option.
	ErrCorrectOptionMissing = wrapValidation("correct option ID does not match any option")

	// ErrMissingLanguage is returned when a localized text is missing or
	// empty for one of the required languages.
	ErrMissingLanguage = wrapValidation("localized text missing a required language")

	// ErrMissingSource is returned when a record has no provenance source.
	ErrMissingSource = wrapValidation("source cannot be empty")
)

func wrapValidation(msg string) error {
	return &validationError{msg: msg}
}

// validationError ties a specific invariant violation to ErrValidation
// so both errors.Is checks work: the sentinel itself and ErrValidation.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }
