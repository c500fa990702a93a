package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shrutirout/foxdeal/pkg/money"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const defaultSerperURL = "https://google.serper.dev"

// SerperClient implements Searcher with the serper.dev Google search API.
type SerperClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  Limiter
	log      *slog.Logger
}

// SerperOption configures the SerperClient.
type SerperOption func(*SerperClient)

// WithSerperEndpoint overrides the API base URL.
func WithSerperEndpoint(u string) SerperOption {
	return func(c *SerperClient) {
		if u != "" {
			c.endpoint = strings.TrimRight(u, "/")
		}
	}
}

// WithSerperAPIKey sets the API key.
func WithSerperAPIKey(key string) SerperOption {
	return func(c *SerperClient) {
		c.apiKey = key
	}
}

// WithSerperHTTPClient overrides the default HTTP client.
func WithSerperHTTPClient(hc *http.Client) SerperOption {
	return func(c *SerperClient) {
		c.client = hc
	}
}

// WithSerperLimiter throttles calls.
func WithSerperLimiter(l Limiter) SerperOption {
	return func(c *SerperClient) {
		c.limiter = l
	}
}

// WithSerperLogger sets the logger.
func WithSerperLogger(l *slog.Logger) SerperOption {
	return func(c *SerperClient) {
		c.log = l
	}
}

// NewSerperClient creates a Serper client. The API key falls back to
// SERPER_API_KEY.
func NewSerperClient(opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		endpoint: defaultSerperURL,
		apiKey:   os.Getenv("SERPER_API_KEY"),
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (*SerperClient) Name() string {
	return "serper"
}

type serperRequest struct {
	Q   string `json:"q"`
	GL  string `json:"gl,omitempty"`
	HL  string `json:"hl,omitempty"`
	Num int    `json:"num,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title    string   `json:"title"`
		Link     string   `json:"link"`
		Snippet  string   `json:"snippet"`
		ImageURL string   `json:"imageUrl"`
		Rating   *float64 `json:"rating"`
		Price    any      `json:"price"`
	} `json:"organic"`
	Message string `json:"message"`
}

// Search runs one Google query through Serper.
func (c *SerperClient) Search(ctx context.Context, query string, opts Options) ([]domain.WebResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("serper: %w", ErrMissingAPIKey)
	}
	opts = withDefaults(opts, 20)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &StatusError{Provider: c.Name(), StatusCode: http.StatusTooManyRequests, Message: err.Error()}
		}
	}

	q := BuildQuery(query, opts.Sites)
	body, err := json.Marshal(serperRequest{Q: q, GL: opts.Country, HL: opts.Language, Num: opts.Num})
	if err != nil {
		return nil, fmt.Errorf("marshaling serper request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling serper: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading serper response: %w", err)
	}

	var sr serperResponse
	decodeErr := json.Unmarshal(respBody, &sr)

	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if decodeErr == nil && sr.Message != "" {
			msg = sr.Message
		}
		return nil, &StatusError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding serper response: %w", decodeErr)
	}

	results := make([]domain.WebResult, 0, len(sr.Organic))
	for _, o := range sr.Organic {
		if o.Link == "" {
			continue
		}
		r := domain.WebResult{
			Title:    o.Title,
			Link:     o.Link,
			Snippet:  o.Snippet,
			ImageURL: o.ImageURL,
			Rating:   o.Rating,
		}
		if o.Price != nil {
			if d, err := money.ParsePrice(priceText(o.Price)); err == nil && d.IsPositive() {
				r.Price = &d
			}
		}
		results = append(results, r)
	}

	c.log.Debug("serper search", "query", q, "results", len(results))
	return results, nil
}
