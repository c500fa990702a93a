package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrutirout/foxdeal/internal/discovery"
	"github.com/shrutirout/foxdeal/internal/metrics"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Search proposes listings for a free-text product name across all
// platforms using the configured discovery strategy.
func (eng *Engine) Search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	query = strings.TrimSpace(query)
	if err := domain.Validate(domain.QueryInput{Query: query}); err != nil {
		return nil, err
	}

	ctx, span := eng.tracer.Start(ctx, "engine.Search")
	defer span.End()

	strategy := eng.strategy.Name()
	candidates, err := eng.strategy.Discover(ctx, discovery.Query{Name: query})
	if err != nil {
		metrics.DiscoveryErrorsTotal.WithLabelValues(strategy).Inc()
		span.RecordError(err)
		return nil, fmt.Errorf("discovering %q: %w", query, err)
	}
	metrics.DiscoveryCandidatesTotal.WithLabelValues(strategy).Add(float64(len(candidates)))

	eng.log.Info("search complete", "query", query, "strategy", strategy, "candidates", len(candidates))
	if candidates == nil {
		candidates = []domain.SearchCandidate{}
	}
	return candidates, nil
}
