// Package search queries web search APIs for product listings.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrMissingAPIKey is returned when a search provider has no credentials.
var ErrMissingAPIKey = errors.New("search api key is not set")

// Options narrows a search.
type Options struct {
	// Sites restricts results to these domains with site: operators.
	Sites []string
	// Num is the number of results requested.
	Num int
	// Country is the two-letter result country, e.g. "in".
	Country string
	// Language is the interface language, e.g. "en".
	Language string
}

// Searcher returns organic web results for a query.
type Searcher interface {
	Search(ctx context.Context, query string, opts Options) ([]domain.WebResult, error)
	Name() string
}

// Limiter throttles calls to a metered provider.
type Limiter interface {
	Wait(ctx context.Context) error
}

// StatusError is a non-2xx answer from a search provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s search error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// RateLimited reports whether the provider refused for quota reasons.
func (e *StatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		strings.Contains(strings.ToLower(e.Message), "quota")
}

// BuildQuery appends an OR-ed site filter to query.
func BuildQuery(query string, sites []string) string {
	query = strings.TrimSpace(query)
	if len(sites) == 0 {
		return query
	}
	filters := make([]string, 0, len(sites))
	for _, s := range sites {
		filters = append(filters, "site:"+s)
	}
	return query + " (" + strings.Join(filters, " OR ") + ")"
}

func withDefaults(opts Options, num int) Options {
	if opts.Num <= 0 {
		opts.Num = num
	}
	if opts.Country == "" {
		opts.Country = "in"
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	return opts
}

// priceText renders a loosely typed JSON price for money.ParsePrice.
func priceText(v any) string {
	switch p := v.(type) {
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case string:
		return p
	default:
		return fmt.Sprint(p)
	}
}
