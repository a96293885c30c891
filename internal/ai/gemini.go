// README: Gemini-backed completion client with lazy, once-only credential setup.
package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"columbus/internal/infra"
)

// Bounded retry for transient completion failures (rate limits, 5xx,
// transport). Permanent failures (auth, bad request) fail immediately.
const (
	maxAttempts    = 3
	baseRetryDelay = 500 * time.Millisecond
)

// GeminiClient implements CompletionClient using Google's Gemini models.
// The API key is resolved from the secret source on first use and the SDK
// client is initialised exactly once per process.
type GeminiClient struct {
	modelName  string
	secrets    infra.SecretSource
	secretName string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient builds a client for modelName. secretName is the key under
// which the secret source holds the API credential; nothing is fetched until
// the first Complete call.
func NewGeminiClient(modelName, secretName string, secrets infra.SecretSource) *GeminiClient {
	return &GeminiClient{
		modelName:  modelName,
		secrets:    secrets,
		secretName: secretName,
	}
}

// Close releases the underlying SDK client if it was ever initialised.
func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *GeminiClient) init(ctx context.Context) error {
	c.once.Do(func() {
		key, err := c.secrets.Get(ctx, c.secretName)
		if err != nil {
			c.initErr = fmt.Errorf("gemini: resolve credential: %w", err)
			return
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(key))
		if err != nil {
			c.initErr = fmt.Errorf("gemini: create client: %w", err)
			return
		}
		c.client = client
	})
	return c.initErr
}

// Complete sends the request to Gemini and returns the raw reply text.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(req.MaxTokens)
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	send := func() (*genai.GenerateContentResponse, error) {
		if len(req.Turns) > 0 {
			cs := model.StartChat()
			history := req.Turns[:len(req.Turns)-1]
			last := req.Turns[len(req.Turns)-1]
			cs.History = make([]*genai.Content, 0, len(history))
			for _, t := range history {
				cs.History = append(cs.History, &genai.Content{
					Role:  geminiRole(t.Role),
					Parts: []genai.Part{genai.Text(t.Content)},
				})
			}
			return cs.SendMessage(ctx, genai.Text(last.Content))
		}
		return model.GenerateContent(ctx, genai.Text(req.Prompt))
	}

	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if sleepErr := sleepCtx(ctx, retryDelay(attempt)); sleepErr != nil {
				return "", sleepErr
			}
		}
		resp, err = send()
		if err == nil || !retryable(err) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return b.String(), nil
}

// geminiRole maps our turn roles onto the SDK's ("model" for the assistant).
func geminiRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}

// retryable reports whether the completion failure is worth another attempt.
// Rate limits, server errors, and plain transport failures are transient;
// everything the API rejected outright (auth, malformed request) is not.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return true
}

// retryDelay returns the exponential backoff for the given attempt (1-based)
// with up to 50% jitter added.
func retryDelay(attempt int) time.Duration {
	d := baseRetryDelay << (attempt - 1)
	return d + time.Duration(rand.Int63n(int64(d/2)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
