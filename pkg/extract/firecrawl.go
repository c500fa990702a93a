package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultFirecrawlURL = "https://api.firecrawl.dev"

// FirecrawlService implements Service with the Firecrawl scrape API and
// its LLM extract format. Firecrawl renders the page, so JavaScript-heavy
// storefronts work.
type FirecrawlService struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// FirecrawlOption configures the FirecrawlService.
type FirecrawlOption func(*FirecrawlService)

// WithFirecrawlEndpoint overrides the API base URL.
func WithFirecrawlEndpoint(u string) FirecrawlOption {
	return func(s *FirecrawlService) {
		if u != "" {
			s.endpoint = strings.TrimRight(u, "/")
		}
	}
}

// WithFirecrawlAPIKey sets the API key.
func WithFirecrawlAPIKey(key string) FirecrawlOption {
	return func(s *FirecrawlService) {
		s.apiKey = key
	}
}

// WithFirecrawlHTTPClient overrides the default HTTP client.
func WithFirecrawlHTTPClient(c *http.Client) FirecrawlOption {
	return func(s *FirecrawlService) {
		s.client = c
	}
}

// NewFirecrawlService creates a Firecrawl-backed service. The API key falls
// back to FIRECRAWL_API_KEY.
func NewFirecrawlService(opts ...FirecrawlOption) *FirecrawlService {
	s := &FirecrawlService{
		endpoint: defaultFirecrawlURL,
		apiKey:   os.Getenv("FIRECRAWL_API_KEY"),
		client:   &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the service name.
func (*FirecrawlService) Name() string {
	return "firecrawl"
}

type firecrawlScrapeRequest struct {
	URL     string            `json:"url"`
	Formats []string          `json:"formats"`
	WaitFor int64             `json:"waitFor,omitempty"`
	Timeout int64             `json:"timeout,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Extract firecrawlExtract  `json:"extract"`
}

type firecrawlExtract struct {
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema"`
}

type firecrawlScrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Extract  json.RawMessage `json:"extract"`
		Metadata struct {
			SourceURL  string `json:"sourceURL"`
			StatusCode int    `json:"statusCode"`
		} `json:"metadata"`
	} `json:"data"`
}

// Extract scrapes req.URL and returns the extracted object.
func (s *FirecrawlService) Extract(ctx context.Context, req Request) (Raw, error) {
	if s.apiKey == "" {
		return Raw{}, fmt.Errorf("firecrawl: %w", ErrMissingAPIKey)
	}

	payload := firecrawlScrapeRequest{
		URL:     req.URL,
		Formats: []string{"extract"},
		WaitFor: req.Platform.WaitTime.Milliseconds(),
		Timeout: req.Timeout.Milliseconds(),
		Headers: map[string]string{
			"Accept-Language": req.Platform.AcceptLanguage(),
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		},
		Extract: firecrawlExtract{Prompt: req.Prompt, Schema: req.Schema},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Raw{}, fmt.Errorf("marshaling scrape request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.endpoint+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return Raw{}, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return Raw{}, fmt.Errorf("calling firecrawl: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Raw{}, fmt.Errorf("reading firecrawl response: %w", err)
	}

	var sr firecrawlScrapeResponse
	decodeErr := json.Unmarshal(respBody, &sr)

	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if decodeErr == nil && sr.Error != "" {
			msg = sr.Error
		}
		return Raw{}, &HTTPError{Service: s.Name(), StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return Raw{}, fmt.Errorf("%w: decoding firecrawl response: %w", ErrInvalidResponse, decodeErr)
	}
	if !sr.Success {
		return Raw{}, fmt.Errorf("%w: firecrawl: %s", ErrInvalidResponse, sr.Error)
	}
	if len(sr.Data.Extract) == 0 || string(sr.Data.Extract) == "null" {
		return Raw{}, fmt.Errorf("%w: firecrawl returned no extract", ErrInvalidResponse)
	}

	var raw Raw
	if err := json.Unmarshal(sr.Data.Extract, &raw); err != nil {
		return Raw{}, fmt.Errorf("%w: decoding extract: %w", ErrInvalidResponse, err)
	}
	return raw, nil
}
