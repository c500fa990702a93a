package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// OllamaBackend implements Backend against a local Ollama server's
// /api/generate endpoint. Ollama needs no key.
type OllamaBackend struct {
	endpoint string
	model    string
	client   *http.Client
}

// OllamaOption configures the OllamaBackend.
type OllamaOption func(*OllamaBackend)

// WithOllamaHTTPClient replaces the default client. Local models are slow
// to load, so the default waits two minutes.
func WithOllamaHTTPClient(c *http.Client) OllamaOption {
	return func(b *OllamaBackend) { b.client = c }
}

// NewOllamaBackend creates a backend for model served at endpoint.
func NewOllamaBackend(endpoint, model string, opts ...OllamaOption) *OllamaBackend {
	b := &OllamaBackend{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		client:   &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "ollama".
func (*OllamaBackend) Name() string { return "ollama" }

type ollamaPayload struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Format  string         `json:"format,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaAnswer struct {
	Model      string `json:"model"`
	Response   string `json:"response"`
	PromptEval int    `json:"prompt_eval_count"`
	Eval       int    `json:"eval_count"`
}

// Generate runs one non-streaming completion.
func (b *OllamaBackend) Generate(ctx context.Context, req Request) (Response, error) {
	payload := ollamaPayload{Model: b.model, Prompt: req.Prompt, System: req.SystemMsg}
	if req.Format == FormatJSON {
		payload.Format = FormatJSON
	}
	if req.Temperature > 0 {
		payload.Options = map[string]any{"temperature": req.Temperature}
	}
	if req.MaxTokens > 0 {
		if payload.Options == nil {
			payload.Options = map[string]any{}
		}
		payload.Options["num_predict"] = req.MaxTokens
	}

	var ans ollamaAnswer
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint+"/api/generate", nil, payload, &ans); err != nil {
		return Response{}, err
	}
	return Response{
		Content: ans.Response,
		Model:   ans.Model,
		Usage:   Usage{PromptTokens: ans.PromptEval, CompletionTokens: ans.Eval, TotalTokens: ans.PromptEval + ans.Eval},
	}, nil
}
