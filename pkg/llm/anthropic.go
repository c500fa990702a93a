package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicModel       = "claude-haiku-4-5"
	anthropicAPIVersion  = "2023-06-01"

	// anthropicMaxTokens applies when the request leaves MaxTokens unset;
	// the Messages API requires one.
	anthropicMaxTokens = 1024
)

// jsonOnlyInstruction stands in for a JSON mode, which the Messages API lacks.
const jsonOnlyInstruction = "Respond with a single JSON object and nothing else."

// AnthropicBackend implements Backend using the Anthropic Messages API.
type AnthropicBackend struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// AnthropicOption configures the AnthropicBackend.
type AnthropicOption func(*AnthropicBackend)

// WithAnthropicEndpoint points the backend at a different Messages URL.
func WithAnthropicEndpoint(url string) AnthropicOption {
	return func(b *AnthropicBackend) { b.endpoint = url }
}

// WithAnthropicModel selects the model. Empty keeps the default.
func WithAnthropicModel(model string) AnthropicOption {
	return func(b *AnthropicBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithAnthropicAPIKey sets the key instead of ANTHROPIC_API_KEY.
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(b *AnthropicBackend) { b.apiKey = key }
}

// WithAnthropicHTTPClient replaces the 60s-timeout default client.
func WithAnthropicHTTPClient(c *http.Client) AnthropicOption {
	return func(b *AnthropicBackend) { b.client = c }
}

// NewAnthropicBackend creates a Claude backend. The API key falls back to
// ANTHROPIC_API_KEY when not provided via options.
func NewAnthropicBackend(opts ...AnthropicOption) *AnthropicBackend {
	b := &AnthropicBackend{
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
		model:    anthropicModel,
		endpoint: anthropicMessagesURL,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "anthropic".
func (*AnthropicBackend) Name() string { return "anthropic" }

type anthropicTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicPayload struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	System      string          `json:"system,omitempty"`
	Messages    []anthropicTurn `json:"messages"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type anthropicAnswer struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		In  int `json:"input_tokens"`
		Out int `json:"output_tokens"`
	} `json:"usage"`
}

// Generate sends req as a single user turn.
func (b *AnthropicBackend) Generate(ctx context.Context, req Request) (Response, error) {
	if b.apiKey == "" {
		return Response{}, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}

	payload := anthropicPayload{
		Model:     b.model,
		MaxTokens: req.MaxTokens,
		System:    req.SystemMsg,
		Messages:  []anthropicTurn{{Role: "user", Content: req.Prompt}},
	}
	if payload.MaxTokens <= 0 {
		payload.MaxTokens = anthropicMaxTokens
	}
	if req.Format == FormatJSON {
		payload.System = strings.TrimSpace(payload.System + "\n\n" + jsonOnlyInstruction)
	}
	if req.Temperature > 0 {
		payload.Temperature = &req.Temperature
	}

	header := http.Header{}
	header.Set("x-api-key", b.apiKey)
	header.Set("anthropic-version", anthropicAPIVersion)

	var ans anthropicAnswer
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint, header, payload, &ans); err != nil {
		return Response{}, err
	}

	var text strings.Builder
	for _, c := range ans.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return Response{}, errors.New("anthropic: empty response")
	}
	return Response{
		Content: text.String(),
		Model:   ans.Model,
		Usage:   Usage{PromptTokens: ans.Usage.In, CompletionTokens: ans.Usage.Out, TotalTokens: ans.Usage.In + ans.Usage.Out},
	}, nil
}
