package llm

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"
)

// OpenAICompatBackend implements Backend over /v1/chat/completions, which
// OpenAI, Groq, vLLM and LM Studio all serve.
type OpenAICompatBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAICompatOption configures the OpenAICompatBackend.
type OpenAICompatOption func(*OpenAICompatBackend)

// WithOpenAICompatHTTPClient replaces the 60s-timeout default client.
func WithOpenAICompatHTTPClient(c *http.Client) OpenAICompatOption {
	return func(b *OpenAICompatBackend) { b.client = c }
}

// WithOpenAICompatAPIKey sets the bearer key. Empty keeps OPENAI_API_KEY.
func WithOpenAICompatAPIKey(key string) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		if key != "" {
			b.apiKey = key
		}
	}
}

// NewOpenAICompatBackend creates an OpenAI-compatible backend. The endpoint
// is the server root without the /v1 suffix. Local servers may run keyless.
func NewOpenAICompatBackend(endpoint, model string, opts ...OpenAICompatOption) *OpenAICompatBackend {
	b := &OpenAICompatBackend{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "openai_compat".
func (*OpenAICompatBackend) Name() string { return "openai_compat" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatPayload struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    *float64          `json:"temperature,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatAnswer struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		Prompt     int `json:"prompt_tokens"`
		Completion int `json:"completion_tokens"`
		Total      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate sends an optional system message followed by the prompt.
func (b *OpenAICompatBackend) Generate(ctx context.Context, req Request) (Response, error) {
	payload := chatPayload{Model: b.model, MaxTokens: req.MaxTokens}
	if req.SystemMsg != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: req.SystemMsg})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.Temperature > 0 {
		payload.Temperature = &req.Temperature
	}
	if req.Format == FormatJSON {
		payload.ResponseFormat = map[string]string{"type": "json_object"}
	}

	header := http.Header{}
	if b.apiKey != "" {
		header.Set("Authorization", "Bearer "+b.apiKey)
	}

	var ans chatAnswer
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint+"/v1/chat/completions", header, payload, &ans); err != nil {
		return Response{}, err
	}
	if len(ans.Choices) == 0 {
		return Response{}, errors.New("openai_compat: empty choices")
	}
	return Response{
		Content: ans.Choices[0].Message.Content,
		Model:   ans.Model,
		Usage:   Usage{PromptTokens: ans.Usage.Prompt, CompletionTokens: ans.Usage.Completion, TotalTokens: ans.Usage.Total},
	}, nil
}
