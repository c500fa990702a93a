package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shrutirout/foxdeal/internal/search"
	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// maxSiteFilters bounds the site: operators per query; search APIs degrade
// past about eight.
const maxSiteFilters = 8

// StructuredSearch issues one site-filtered web search and keeps the top
// product-shaped results per storefront.
type StructuredSearch struct {
	searcher       search.Searcher
	maxPerPlatform int
	log            *slog.Logger
}

// NewStructuredSearch creates the strategy. A non-positive maxPerPlatform
// selects DefaultMaxPerPlatform.
func NewStructuredSearch(s search.Searcher, maxPerPlatform int, log *slog.Logger) *StructuredSearch {
	if maxPerPlatform <= 0 {
		maxPerPlatform = DefaultMaxPerPlatform
	}
	return &StructuredSearch{searcher: s, maxPerPlatform: maxPerPlatform, log: loggerOrDefault(log)}
}

// Name returns the strategy name.
func (*StructuredSearch) Name() string {
	return StrategyStructured
}

// Discover searches the allow-listed storefronts for q.
func (s *StructuredSearch) Discover(ctx context.Context, q Query) ([]domain.SearchCandidate, error) {
	text := q.Text()
	if text == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "is required"}
	}

	sites := platform.AllowList()
	if len(sites) > maxSiteFilters {
		sites = sites[:maxSiteFilters]
	}

	results, err := s.searcher.Search(ctx, text, search.Options{Sites: sites})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", s.searcher.Name(), err)
	}

	perPlatform := make(map[string]int)
	seen := make(map[string]struct{})
	var out []domain.SearchCandidate
	for _, r := range results {
		d, name, ok := platform.Lookup(r.Link)
		if !ok || excluded(d, q.ExcludePlatform) {
			continue
		}
		if perPlatform[d] >= s.maxPerPlatform {
			continue
		}
		if !platform.LooksLikeProductPage(d, r.Link) {
			continue
		}
		if _, dup := seen[r.Link]; dup {
			continue
		}
		seen[r.Link] = struct{}{}
		perPlatform[d]++

		out = append(out, domain.SearchCandidate{
			Platform:     d,
			PlatformName: name,
			URL:          r.Link,
			Title:        r.Title,
			Snippet:      r.Snippet,
			Price:        r.Price,
			ImageURL:     r.ImageURL,
			Confidence:   "medium",
			Kind:         domain.CandidateProduct,
		})
	}

	s.log.Info("structured discovery",
		"query", text,
		"results", len(results),
		"candidates", len(out),
		"platforms", len(perPlatform),
	)
	return out, nil
}
