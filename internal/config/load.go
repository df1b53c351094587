package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a .env file
// or quizgen.yaml config file. Environment variables take precedence over
// values from config files, which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A .env file in the working directory is a convenience for local
	// development; its absence is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Defaults for everything except the credential, which must be supplied.
	v.SetDefault("logging.level", "info")
	v.SetDefault("llm.model_name", "gemini-2.5-flash-preview-09-2025")
	v.SetDefault("llm.max_attempts", 5)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("store.path", "football_quiz_data.json")
	v.SetDefault("upload.url", "http://localhost:8080/api/quizzes")
	v.SetDefault("upload.timeout_seconds", 30)

	// Environment variables with QUIZGEN_ prefix, e.g. QUIZGEN_LLM_MODEL_NAME.
	v.SetEnvPrefix("QUIZGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential and the upload URL also honor their historical,
	// unprefixed variable names.
	if err := v.BindEnv("llm.gemini_api_key", "QUIZGEN_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("upload.url", "QUIZGEN_UPLOAD_URL", "QUARKUS_UPLOAD_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	// Optional config file for overrides; absence is not an error.
	v.SetConfigName("quizgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("failed to validate configuration: %w", err)
	}

	return &cfg, nil
}
