package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Store   StoreConfig   `mapstructure:"store"   validate:"required"`
	Upload  UploadConfig  `mapstructure:"upload"  validate:"required"`
}

// LoggingConfig contains logging-related settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the generative service integration.
type LLMConfig struct {
	// GeminiAPIKey is the opaque credential for the Gemini API. Its absence
	// is a fatal startup error for any operation that generates quizzes.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName selects the Gemini model used for generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxAttempts caps the total number of request attempts per generation
	// call, counting the first one.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gte=1,lte=10"`

	// RetryDelaySeconds is the backoff base; the delay doubles each retry.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"required,gte=1,lte=60"`
}

// StoreConfig contains settings for the persisted quiz collection.
type StoreConfig struct {
	// Path is the default location of the quiz collection file.
	Path string `mapstructure:"path" validate:"required"`
}

// UploadConfig contains settings for the remote ingestion endpoint used by
// bulk transfer. The URL differs between local and production deployments.
type UploadConfig struct {
	URL            string `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gte=1,lte=300"`
}
