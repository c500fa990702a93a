package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/shrutirout/foxdeal/pkg/llm"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultMaxChars  = 12000
)

// LLMService implements Service by fetching the page itself and asking
// an LLM backend to read it. It suits self-hosted setups without a
// scraping API; pages that render prices client-side will not work.
type LLMService struct {
	backend     llm.Backend
	client      *http.Client
	userAgent   string
	maxChars    int
	temperature float64
	maxTokens   int
}

// LLMServiceOption configures the LLMService.
type LLMServiceOption func(*LLMService)

// WithLLMHTTPClient overrides the page-fetching HTTP client.
func WithLLMHTTPClient(c *http.Client) LLMServiceOption {
	return func(s *LLMService) {
		s.client = c
	}
}

// WithLLMMaxChars caps how much page text goes into the prompt.
func WithLLMMaxChars(n int) LLMServiceOption {
	return func(s *LLMService) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

// WithLLMTemperature sets the generation temperature.
func WithLLMTemperature(t float64) LLMServiceOption {
	return func(s *LLMService) {
		s.temperature = t
	}
}

// NewLLMService creates an LLM-backed extraction service.
func NewLLMService(backend llm.Backend, opts ...LLMServiceOption) *LLMService {
	s := &LLMService{
		backend:     backend,
		client:      &http.Client{Timeout: 30 * time.Second},
		userAgent:   defaultUserAgent,
		maxChars:    defaultMaxChars,
		temperature: 0.1,
		maxTokens:   1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the service name.
func (s *LLMService) Name() string {
	return "llm:" + s.backend.Name()
}

// Extract fetches the page and asks the backend for the schema fields.
func (s *LLMService) Extract(ctx context.Context, req Request) (Raw, error) {
	page, err := s.fetch(ctx, req)
	if err != nil {
		return Raw{}, err
	}

	schema, err := json.MarshalIndent(req.Schema, "", "  ")
	if err != nil {
		return Raw{}, fmt.Errorf("marshaling schema: %w", err)
	}

	var structured string
	if page.Structured.ProductName != "" || page.Structured.CurrentPrice.Valid {
		if b, err := json.Marshal(page.Structured); err == nil {
			structured = string(b)
		}
	}

	prompt, err := RenderPagePrompt(PageData{
		Instruction: req.Prompt,
		Schema:      string(schema),
		URL:         page.URL,
		Title:       page.Title,
		Structured:  structured,
		Text:        page.Text,
	})
	if err != nil {
		return Raw{}, err
	}

	resp, err := s.backend.Generate(ctx, llm.Request{
		Prompt:      prompt,
		SystemMsg:   systemPrompt,
		Format:      llm.FormatJSON,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return Raw{}, fmt.Errorf("calling %s: %w", s.backend.Name(), err)
	}

	var raw Raw
	if err := llm.DecodeJSON(resp.Content, &raw); err != nil {
		return Raw{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return raw, nil
}

func (s *LLMService) fetch(ctx context.Context, req Request) (Page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("User-Agent", s.userAgent)
	httpReq.Header.Set("Accept-Language", req.Platform.AcceptLanguage())
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return Page{}, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, &HTTPError{
			Service:    req.Platform.Domain,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("%w: parsing page: %w", ErrInvalidResponse, err)
	}

	return ReadPage(doc.Selection, resp.Request.URL.String(), s.maxChars), nil
}
