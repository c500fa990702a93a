// Package llm provides text-generation backends behind one interface:
// Anthropic, OpenAI-compatible servers, Ollama and Google Gemini.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FormatJSON is the format string for requesting JSON mode from backends.
const FormatJSON = "json"

// Request defines the input for a generation call.
type Request struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response holds the result of a generation call.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Backend defines the interface for LLM text generation.
type Backend interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// ErrMissingAPIKey is returned when a hosted backend has no credentials.
var ErrMissingAPIKey = errors.New("api key is not set")

// StatusError is a non-2xx answer from a backend API.
type StatusError struct {
	Backend    string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Backend, e.StatusCode, e.Message)
}

// RateLimited reports whether the backend refused the call for quota reasons.
func (e *StatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		strings.Contains(strings.ToLower(e.Message), "quota")
}

// StripFences removes markdown code fences models like to wrap JSON in.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// DecodeJSON strips fences from a model answer and unmarshals it into v.
func DecodeJSON(content string, v any) error {
	cleaned := StripFences(content)
	if cleaned == "" {
		return errors.New("empty model response")
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parsing model JSON: %w", err)
	}
	return nil
}
