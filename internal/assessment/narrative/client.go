// Package narrative generates the AI-written portions of an assessment
// report: the executive summary shown before email capture, the full
// gated analysis, and the category deep-dive emails in the drip sequence.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadmagnet_backend/platform/logger"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	modelID     = "claude-sonnet-4-5-20250929"
	temperature = 0.7

	maxTokensSummary  = 1000
	maxTokensAnalysis = 16000
	maxTokensDeepDive = 2000

	maxAttempts = 3
)

// AuthError indicates the API rejected our credentials. Not retryable.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("model API rejected credentials (status %d): check ANTHROPIC_API_KEY", e.StatusCode)
}

// GenerationError wraps the last failure after retries are exhausted.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Client sends a single-turn prompt to the model and returns the text
// response.
type Client interface {
	Generate(ctx context.Context, prompt string, maxTokens int64) (string, error)
}

type anthropicClient struct {
	client sdk.Client
	log    *logger.Logger
}

// NewClient creates the production Anthropic-backed client.
func NewClient(apiKey string, log *logger.Logger) Client {
	return &anthropicClient{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		log:    log,
	}
}

// Generate calls the messages API with retries and exponential backoff.
// Authentication failures abort immediately.
func (c *anthropicClient) Generate(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	temp := temperature

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		params := sdk.MessageNewParams{
			Model:       sdk.Model(modelID),
			MaxTokens:   maxTokens,
			Temperature: sdk.Float(temp),
			Messages: []sdk.MessageParam{
				sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
			},
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			text := collectText(message)
			if text != "" {
				return text, nil
			}
			err = errors.New("empty model response")
		}

		lastErr = err
		c.log.AIError("generate", attempt, err)

		var apierr *sdk.Error
		if errors.As(err, &apierr) {
			if apierr.StatusCode == 401 || apierr.StatusCode == 403 {
				return "", &AuthError{StatusCode: apierr.StatusCode}
			}
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if attempt < maxAttempts {
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", &GenerationError{Attempts: maxAttempts, Err: lastErr}
}

func collectText(message *sdk.Message) string {
	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text
}
