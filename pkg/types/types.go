// Package domain defines the core business types for foxdeal.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Label is the human-facing deal quality bucket.
type Label string

// Label constants, ordered best to worst.
const (
	LabelExcellent    Label = "Excellent"
	LabelGood         Label = "Good"
	LabelAverage      Label = "Average"
	LabelBelowAverage Label = "BelowAverage"
	LabelPoor         Label = "Poor"
)

// CandidateKind says whether a candidate URL points at a product page or
// at a platform search-results page.
type CandidateKind string

// Candidate kinds.
const (
	CandidateProduct CandidateKind = "product"
	CandidateSearch  CandidateKind = "search"
)

// ProductFact is the structured result of extracting one product page.
type ProductFact struct {
	Name           string           `json:"name"`
	CurrentPrice   decimal.Decimal  `json:"current_price"`
	OriginalPrice  *decimal.Decimal `json:"original_price,omitempty"`
	CurrencyCode   string           `json:"currency_code"`
	ImageURL       string           `json:"image_url,omitempty"`
	SellerName     string           `json:"seller_name,omitempty"`
	SellerRating   *float64         `json:"seller_rating,omitempty"`
	Rating         *float64         `json:"rating,omitempty"`
	ReviewCount    int              `json:"review_count"`
	PlatformDomain string           `json:"platform_domain"`
	PlatformName   string           `json:"platform_name,omitempty"`
	SourceURL      string           `json:"source_url"`
	ExtractedAt    time.Time        `json:"extracted_at"`
}

// Valid reports whether the fact carries a name and a positive price.
// Invalid facts are never scored, persisted or returned.
func (f ProductFact) Valid() bool {
	return f.Name != "" && f.CurrentPrice.IsPositive()
}

// ScoreComponent is one weighted factor of a DealScore.
type ScoreComponent struct {
	RawScore     float64 `json:"raw_score"`
	Weight       float64 `json:"weight"`
	EarnedPoints float64 `json:"earned_points"`
}

// ScoreBreakdown holds the four weighted components of a deal score.
type ScoreBreakdown struct {
	Rating   ScoreComponent `json:"rating"`
	Reviews  ScoreComponent `json:"reviews"`
	Seller   ScoreComponent `json:"seller"`
	Platform ScoreComponent `json:"platform"`

	// PlatformTrust is the unscaled 0-10 trust value of the platform.
	PlatformTrust float64 `json:"platform_trust"`
}

// DealScore is a normalized 0-100 quality score for a listing.
type DealScore struct {
	Score     float64        `json:"score"`
	Label     Label          `json:"label"`
	Emoji     string         `json:"emoji"`
	Color     string         `json:"color"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ScoredFact pairs an extracted fact with its deal score.
type ScoredFact struct {
	Fact ProductFact `json:"fact"`
	Deal DealScore   `json:"deal"`
}

// Comparison is the consolidated result of a cross-platform comparison.
type Comparison struct {
	Original     ScoredFact   `json:"original"`
	Alternatives []ScoredFact `json:"alternatives"`
	Strategy     string       `json:"strategy"`
	Discovered   int          `json:"discovered"`
	Dropped      int          `json:"dropped"`
}

// SearchCandidate is an unverified listing proposed by discovery.
type SearchCandidate struct {
	Platform     string           `json:"platform"`
	PlatformName string           `json:"platform_name"`
	URL          string           `json:"url"`
	Title        string           `json:"title,omitempty"`
	Snippet      string           `json:"snippet,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	Confidence   string           `json:"confidence,omitempty"`
	Kind         CandidateKind    `json:"kind"`
}

// WebResult is one organic hit returned by a search service.
type WebResult struct {
	Title    string           `json:"title"`
	Link     string           `json:"link"`
	Snippet  string           `json:"snippet,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	ImageURL string           `json:"image_url,omitempty"`
	Rating   *float64         `json:"rating,omitempty"`
}

// TrackedProduct is a product a user follows. (OwnerID, URL) is unique.
type TrackedProduct struct {
	ID             string           `json:"id"`
	OwnerID        string           `json:"owner_id"`
	URL            string           `json:"url"`
	Name           string           `json:"name"`
	CurrentPrice   decimal.Decimal  `json:"current_price"`
	OriginalPrice  *decimal.Decimal `json:"original_price,omitempty"`
	Currency       string           `json:"currency"`
	ImageURL       string           `json:"image_url,omitempty"`
	SellerName     string           `json:"seller_name,omitempty"`
	Rating         *float64         `json:"rating,omitempty"`
	ReviewCount    int              `json:"review_count"`
	PlatformDomain string           `json:"platform_domain,omitempty"`
	DealScore      float64          `json:"deal_score"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ApplyFact refreshes the cached display and quality fields from a fact.
func (p *TrackedProduct) ApplyFact(f ProductFact, deal DealScore) {
	if f.Name != "" {
		p.Name = f.Name
	}
	if f.ImageURL != "" {
		p.ImageURL = f.ImageURL
	}
	if f.CurrencyCode != "" {
		p.Currency = f.CurrencyCode
	}
	p.CurrentPrice = f.CurrentPrice
	p.OriginalPrice = f.OriginalPrice
	p.SellerName = f.SellerName
	p.Rating = f.Rating
	p.ReviewCount = f.ReviewCount
	if f.PlatformDomain != "" {
		p.PlatformDomain = f.PlatformDomain
	}
	p.DealScore = deal.Score
}

// PriceHistoryPoint is one append-only price observation.
type PriceHistoryPoint struct {
	ID               int64           `json:"id"`
	TrackedProductID string          `json:"tracked_product_id"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	ObservedAt       time.Time       `json:"observed_at"`
}

// Observation is the outcome of recording a fresh fact against a tracked product.
type Observation struct {
	Updated         TrackedProduct  `json:"updated"`
	HistoryAppended bool            `json:"history_appended"`
	Dropped         bool            `json:"dropped"`
	OldPrice        decimal.Decimal `json:"old_price"`
	NewPrice        decimal.Decimal `json:"new_price"`
}

// SweepResult summarizes one sequential price-check sweep.
type SweepResult struct {
	Total        int           `json:"total"`
	Updated      int           `json:"updated"`
	Failed       int           `json:"failed"`
	PriceChanges int           `json:"price_changes"`
	AlertsSent   int           `json:"alerts_sent"`
	Duration     time.Duration `json:"duration"`
}

// User is an authenticated caller.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
