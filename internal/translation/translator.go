package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Config holds translator settings.
type Config struct {
	// Host is the base URL of the local model service,
	// e.g. http://localhost:11434. The chat API is served under /v1.
	Host        string
	Model       string
	Temperature float32
	MaxRetries  int
	RetryDelay  time.Duration
}

// Translator translates file content via the local model service
type Translator struct {
	config  Config
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// New creates a new translator instance. The local service does not
// check API keys, so a placeholder token is sent.
func New(config Config) *Translator {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 2 * time.Second
	}

	clientConfig := openai.DefaultConfig("polyglot")
	clientConfig.BaseURL = strings.TrimSuffix(config.Host, "/") + "/v1"

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "translation",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// A local service that failed five times in a row is down,
			// not flaky. Fail the remaining files fast.
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Translator{
		config:  config,
		client:  openai.NewClientWithConfig(clientConfig),
		breaker: breaker,
	}
}

// TranslateContent translates file content into the target language and
// returns the sanitized model output. Transient errors are retried with
// exponential backoff; an open circuit breaker aborts immediately.
func (t *Translator) TranslateContent(ctx context.Context, content, targetLang string) (string, error) {
	prompt := buildPrompt(content, targetLang)

	var result string
	var err error
	delay := t.config.RetryDelay

	for attempt := 0; attempt < t.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		result, err = t.completeChat(ctx, prompt)
		if err == nil {
			return Sanitize(result), nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) {
			return "", fmt.Errorf("model service unavailable: %w", err)
		}
	}

	return "", fmt.Errorf("translation failed after %d attempts: %w", t.config.MaxRetries, err)
}

func (t *Translator) completeChat(ctx context.Context, prompt string) (string, error) {
	resp, err := t.breaker.Execute(func() (interface{}, error) {
		return t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: t.config.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: t.config.Temperature,
		})
	})
	if err != nil {
		return "", fmt.Errorf("model service error: %w", err)
	}

	completion := resp.(openai.ChatCompletionResponse)
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return completion.Choices[0].Message.Content, nil
}

// buildPrompt places the file content first so the instruction block is
// the last thing the model reads before answering.
func buildPrompt(content, targetLang string) string {
	return fmt.Sprintf(`%s
You are a professional translation AI with expertise in technical texts and code files.
Translate the above content into %s, preserving its exact formatting (line breaks, indentation, and spacing).
Important:
- Translate only user-facing strings, labels, messages, and display text.
- Translate file path or import statements only if they include a language code error.
- Ensure the translated output remains a valid code file.
- Do not include additional commentary or explanations.
`, content, targetLang)
}
