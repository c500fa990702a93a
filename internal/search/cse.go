package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/pkg/money"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const (
	defaultCSEURL = "https://www.googleapis.com/customsearch/v1"
	// cseMaxNum is the largest page size the Custom Search API accepts.
	cseMaxNum = 10
)

// CSEClient implements Searcher with the Google Custom Search JSON API.
type CSEClient struct {
	endpoint string
	apiKey   string
	engineID string
	client   *http.Client
	limiter  Limiter
	log      *slog.Logger
}

// CSEOption configures the CSEClient.
type CSEOption func(*CSEClient)

// WithCSEEndpoint overrides the API URL.
func WithCSEEndpoint(u string) CSEOption {
	return func(c *CSEClient) {
		if u != "" {
			c.endpoint = u
		}
	}
}

// WithCSECredentials sets the API key and search engine ID.
func WithCSECredentials(apiKey, engineID string) CSEOption {
	return func(c *CSEClient) {
		c.apiKey = apiKey
		c.engineID = engineID
	}
}

// WithCSEHTTPClient overrides the default HTTP client.
func WithCSEHTTPClient(hc *http.Client) CSEOption {
	return func(c *CSEClient) {
		c.client = hc
	}
}

// WithCSELimiter throttles calls.
func WithCSELimiter(l Limiter) CSEOption {
	return func(c *CSEClient) {
		c.limiter = l
	}
}

// WithCSELogger sets the logger.
func WithCSELogger(l *slog.Logger) CSEOption {
	return func(c *CSEClient) {
		c.log = l
	}
}

// NewCSEClient creates a Custom Search client. Credentials fall back to
// GOOGLE_CSE_API_KEY and GOOGLE_CSE_ID.
func NewCSEClient(opts ...CSEOption) *CSEClient {
	c := &CSEClient{
		endpoint: defaultCSEURL,
		apiKey:   os.Getenv("GOOGLE_CSE_API_KEY"),
		engineID: os.Getenv("GOOGLE_CSE_ID"),
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (*CSEClient) Name() string {
	return "cse"
}

type cseItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Pagemap struct {
		Offer        []map[string]any `json:"offer"`
		Metatags     []map[string]any `json:"metatags"`
		CSEThumbnail []struct {
			Src string `json:"src"`
		} `json:"cse_thumbnail"`
		CSEImage []struct {
			Src string `json:"src"`
		} `json:"cse_image"`
	} `json:"pagemap"`
}

type cseResponse struct {
	Items []cseItem `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search runs one query against the configured search engine.
func (c *CSEClient) Search(ctx context.Context, query string, opts Options) ([]domain.WebResult, error) {
	if c.apiKey == "" || c.engineID == "" {
		return nil, fmt.Errorf("cse: %w", ErrMissingAPIKey)
	}
	opts = withDefaults(opts, cseMaxNum)
	opts.Num = min(opts.Num, cseMaxNum)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &StatusError{Provider: c.Name(), StatusCode: http.StatusTooManyRequests, Message: err.Error()}
		}
	}

	q := BuildQuery(query, opts.Sites)
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", q)
	params.Set("num", strconv.Itoa(opts.Num))
	params.Set("gl", opts.Country)
	params.Set("hl", opts.Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling custom search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading custom search response: %w", err)
	}

	var cr cseResponse
	decodeErr := json.Unmarshal(body, &cr)

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if decodeErr == nil && cr.Error != nil && cr.Error.Message != "" {
			msg = cr.Error.Message
		}
		return nil, &StatusError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding custom search response: %w", decodeErr)
	}

	results := make([]domain.WebResult, 0, len(cr.Items))
	for _, item := range cr.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, domain.WebResult{
			Title:    item.Title,
			Link:     item.Link,
			Snippet:  item.Snippet,
			Price:    itemPrice(item),
			ImageURL: itemImage(item),
		})
	}

	c.log.Debug("custom search", "query", q, "results", len(results))
	return results, nil
}

var priceMetatags = []string{"og:price:amount", "product:price:amount", "twitter:data1", "price"}

func itemPrice(item cseItem) *decimal.Decimal {
	if len(item.Pagemap.Offer) > 0 {
		if p := positivePrice(item.Pagemap.Offer[0]["price"]); p != nil {
			return p
		}
	}
	if len(item.Pagemap.Metatags) > 0 {
		tags := item.Pagemap.Metatags[0]
		for _, field := range priceMetatags {
			if p := positivePrice(tags[field]); p != nil {
				return p
			}
		}
	}
	return nil
}

func positivePrice(v any) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d, err := money.ParsePrice(priceText(v))
	if err != nil || !d.IsPositive() {
		return nil
	}
	return &d
}

func itemImage(item cseItem) string {
	if len(item.Pagemap.CSEThumbnail) > 0 && item.Pagemap.CSEThumbnail[0].Src != "" {
		return item.Pagemap.CSEThumbnail[0].Src
	}
	if len(item.Pagemap.CSEImage) > 0 && item.Pagemap.CSEImage[0].Src != "" {
		return item.Pagemap.CSEImage[0].Src
	}
	if len(item.Pagemap.Metatags) > 0 {
		tags := item.Pagemap.Metatags[0]
		for _, field := range []string{"og:image", "twitter:image"} {
			if s, ok := tags[field].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}
