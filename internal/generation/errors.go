package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when quiz generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate quizzes")

	// ErrInvalidResponse is returned when the service response cannot be parsed
	// as structured data. This is a decode failure, distinct from a record
	// failing schema validation, and it is never retried.
	ErrInvalidResponse = errors.New("invalid response from generative service")

	// ErrContentBlocked is returned when the service blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by generative service safety filters")

	// ErrTransientFailure is returned for temporary errors (network, rate limit,
	// 5xx) that are retried with backoff up to the attempt cap
	ErrTransientFailure = errors.New("transient error during quiz generation")

	// ErrRequestRejected is returned for non-transient service failures such as
	// an authentication rejection or a malformed request. Never retried.
	ErrRequestRejected = errors.New("request rejected by generative service")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
