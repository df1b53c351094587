package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/matchday/quizgen/internal/config"
	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/generation"
)

// modelCaller is the slice of the genai client the generator needs.
// Narrowed to an interface so tests can stub the API without a network.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// genaiCaller adapts *genai.Client to modelCaller.
type genaiCaller struct {
	client *genai.Client
}

func (c genaiCaller) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to generate quiz questions for a category and topic.
type GeminiGenerator struct {
	logger *slog.Logger

	// promptTemplate is the parsed template for creating user prompts
	promptTemplate *template.Template

	caller modelCaller
	model  string

	maxAttempts int
	backoff     generation.BackoffPolicy
	sleep       generation.SleepFunc
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the
// provided dependencies. It validates the LLM configuration and initializes
// the Gemini client; a missing API key is reported as ErrInvalidConfig.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, genaiCaller{client: client}, cfg)
}

// newGenerator finishes construction; split out so tests can inject a caller.
func newGenerator(logger *slog.Logger, caller modelCaller, cfg config.LLMConfig) (*GeminiGenerator, error) {
	promptTemplate, err := template.New("quiz").Parse(userPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", generation.ErrInvalidConfig, err)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		logger.Warn("invalid max attempts value, using default", "max_attempts", 5)
		maxAttempts = 5
	}

	baseDelay := cfg.RetryDelaySeconds
	if baseDelay < 1 {
		logger.Warn("invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelay = 2
	}

	return &GeminiGenerator{
		logger:         logger,
		promptTemplate: promptTemplate,
		caller:         caller,
		model:          cfg.ModelName,
		maxAttempts:    maxAttempts,
		backoff:        generation.ExponentialBackoff(time.Duration(baseDelay) * time.Second),
		sleep:          generation.ContextSleep,
	}, nil
}

// GenerateQuizzes requests one batch of candidate quiz content for the given
// category and topic. The request carries the trivia-specialist instruction,
// the Google Search grounding tool and the formal response schema; transient
// failures are retried with exponential backoff up to the attempt cap, and
// the response is decoded only after the request stage has succeeded.
func (g *GeminiGenerator) GenerateQuizzes(ctx context.Context, category domain.Category, topic string) ([]domain.QuizContent, error) {
	prompt, err := g.createPrompt(category, topic)
	if err != nil {
		return nil, err
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	var raw string
	attempt := 0
	err = generation.Retry(ctx, g.maxAttempts, g.backoff, g.sleep, func(ctx context.Context) error {
		attempt++
		g.logger.InfoContext(ctx, "calling Gemini API",
			"attempt", attempt,
			"max_attempts", g.maxAttempts,
			"model", g.model,
			"category", category,
			"topic", topic)

		resp, callErr := g.caller.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
		if callErr != nil {
			classified := classifyAPIError(callErr)
			g.logger.WarnContext(ctx, "Gemini API call failed",
				"attempt", attempt,
				"transient", generation.IsTransient(classified),
				"error", callErr)
			return classified
		}

		text, respErr := responseText(resp)
		if respErr != nil {
			return respErr
		}

		raw = text
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Decode failures are reported as such; retries were exhausted by the
	// request stage and are not restarted here.
	var candidates []domain.QuizContent
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	if len(candidates) > batchSize {
		g.logger.WarnContext(ctx, "service returned more candidates than requested, truncating",
			"returned", len(candidates),
			"batch_size", batchSize)
		candidates = candidates[:batchSize]
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"attempts", attempt,
		"candidates", len(candidates))

	return candidates, nil
}

// createPrompt renders the user prompt from the template.
func (g *GeminiGenerator) createPrompt(category domain.Category, topic string) (string, error) {
	if topic == "" {
		return "", ErrEmptyTopic
	}

	var promptBuffer bytes.Buffer
	if err := g.promptTemplate.Execute(&promptBuffer, promptData{Category: category, Topic: topic}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}

// responseText extracts the generated JSON text from a response, mapping
// structural problems to the generation error taxonomy. All of these are
// permanent: a malformed success response will not improve on retry.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("%w: response carried no text", generation.ErrInvalidResponse)
	}

	return text, nil
}

// classifyAPIError maps a genai call error onto the generation taxonomy.
// Rate limiting, timeouts and server-side failures are transient; client
// errors such as an invalid key or a malformed request are rejections.
// Errors that are not API errors at all (DNS, connection reset) are
// network failures and therefore transient.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 408 || apiErr.Code == 429 || apiErr.Code >= 500 {
			return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		}
		return fmt.Errorf("%w: %v", generation.ErrRequestRejected, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}
