// Package extract turns a product page URL into a validated ProductFact.
// A Client drives one of several Services (a hosted scraping API, an LLM
// reading the fetched page, or plain structured-data scraping) with
// retries, a hard per-attempt timeout and typed failures.
package extract

import (
	"context"
	"time"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Request is what a Service needs to extract one page.
type Request struct {
	URL      string
	Platform platform.Config
	Prompt   string
	Schema   map[string]any
	Timeout  time.Duration
}

// Raw is the loosely typed answer of an extraction service, keyed the way
// the JSON schema names fields.
type Raw struct {
	ProductName     string  `json:"productName"`
	ProductURL      string  `json:"productUrl,omitempty"`
	CurrentPrice    Price   `json:"currentPrice"`
	CurrencyCode    string  `json:"currencyCode,omitempty"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
	OriginalPrice   Price   `json:"originalPrice"`
	SellerName      string  `json:"sellerName,omitempty"`
	SellerRating    *Rating `json:"sellerRating,omitempty"`
	Rating          *Rating `json:"rating,omitempty"`
	ReviewCount     Count   `json:"reviewCount,omitempty"`
}

// Extractor turns a product URL into a validated fact. *Client implements it.
type Extractor interface {
	Extract(ctx context.Context, url string) (domain.ProductFact, error)
}

// Service extracts raw product data from one page.
type Service interface {
	Extract(ctx context.Context, req Request) (Raw, error)
	Name() string
}

// Cache stores validated facts by URL.
type Cache interface {
	GetFact(ctx context.Context, url string) (domain.ProductFact, bool, error)
	SetFact(ctx context.Context, url string, fact domain.ProductFact, ttl time.Duration) error
}

// Limiter throttles calls to a metered service.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Observer receives one call per extraction attempt. Reason is empty on
// success.
type Observer interface {
	ObserveAttempt(service string, reason Reason, elapsed time.Duration)
}
