package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.5-flash"
)

// GeminiBackend implements Backend using the Google Generative Language
// generateContent API.
type GeminiBackend struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// GeminiOption configures the GeminiBackend.
type GeminiOption func(*GeminiBackend)

// WithGeminiEndpoint overrides the API base URL.
func WithGeminiEndpoint(u string) GeminiOption {
	return func(b *GeminiBackend) {
		b.endpoint = strings.TrimRight(u, "/")
	}
}

// WithGeminiModel overrides the default model.
func WithGeminiModel(model string) GeminiOption {
	return func(b *GeminiBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithGeminiAPIKey overrides the API key (instead of reading from env).
func WithGeminiAPIKey(key string) GeminiOption {
	return func(b *GeminiBackend) {
		b.apiKey = key
	}
}

// WithGeminiHTTPClient overrides the default HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(b *GeminiBackend) {
		b.client = c
	}
}

// NewGeminiBackend creates a Gemini backend. The API key falls back to
// GEMINI_API_KEY.
func NewGeminiBackend(opts ...GeminiOption) *GeminiBackend {
	b := &GeminiBackend{
		apiKey:   os.Getenv("GEMINI_API_KEY"),
		model:    defaultGeminiModel,
		endpoint: defaultGeminiURL,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*GeminiBackend) Name() string {
	return "gemini"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	ModelVersion  string `json:"modelVersion"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Generate calls models/{model}:generateContent.
func (b *GeminiBackend) Generate(ctx context.Context, req Request) (Response, error) {
	if b.apiKey == "" {
		return Response{}, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.SystemMsg != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemMsg}}}
	}
	cfg := geminiGenConfig{MaxOutputTokens: req.MaxTokens}
	if req.Temperature > 0 {
		cfg.Temperature = &req.Temperature
	}
	if req.Format == FormatJSON {
		cfg.ResponseMimeType = "application/json"
	}
	if cfg != (geminiGenConfig{}) {
		payload.GenerationConfig = &cfg
	}

	header := http.Header{}
	header.Set("x-goog-api-key", b.apiKey)
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", b.endpoint, url.PathEscape(b.model))

	var gr geminiResponse
	if err := postJSON(ctx, b.client, b.Name(), endpoint, header, payload, &gr); err != nil {
		return Response{}, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Response{}, errors.New("gemini: empty response")
	}

	var text strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	u := gr.UsageMetadata
	return Response{
		Content: text.String(),
		Model:   gr.ModelVersion,
		Usage:   Usage{PromptTokens: u.PromptTokenCount, CompletionTokens: u.CandidatesTokenCount, TotalTokens: u.TotalTokenCount},
	}, nil
}
