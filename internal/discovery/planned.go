package discovery

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// PlannedSearch asks a Planner which storefronts to search and emits one
// search-results URL per storefront.
type PlannedSearch struct {
	planner Planner
	log     *slog.Logger
}

// NewPlannedSearch creates the strategy.
func NewPlannedSearch(p Planner, log *slog.Logger) *PlannedSearch {
	return &PlannedSearch{planner: p, log: loggerOrDefault(log)}
}

// Name returns the strategy name.
func (*PlannedSearch) Name() string {
	return StrategyPlanned
}

// Discover plans q and builds search URLs. Planning failures fall back to
// FallbackPlan and are never returned.
func (s *PlannedSearch) Discover(ctx context.Context, q Query) ([]domain.SearchCandidate, error) {
	text := q.Text()
	if text == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "is required"}
	}

	plan, err := s.planner.Plan(ctx, text)
	if err != nil {
		var pe *PlanningError
		if !errors.As(err, &pe) {
			pe = &PlanningError{Query: text, Err: err}
		}
		s.log.Warn("search planning failed, using fallback", "query", text, "error", pe)
		plan = FallbackPlan(text)
	}

	return Candidates(plan, q.ExcludePlatform), nil
}

// Candidates builds search-results candidates for a plan, skipping unknown
// and excluded platforms.
func Candidates(plan Plan, exclude string) []domain.SearchCandidate {
	seen := make(map[string]struct{})
	var out []domain.SearchCandidate
	for _, p := range plan.Platforms {
		d := platform.NormalizeDomain(p)
		if _, dup := seen[d]; dup || excluded(d, exclude) {
			continue
		}
		u, ok := platform.SearchURL(d, plan.RefinedQuery)
		if !ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, domain.SearchCandidate{
			Platform:     d,
			PlatformName: platform.Name(d),
			URL:          u,
			Title:        plan.RefinedQuery,
			Confidence:   plan.Confidence,
			Kind:         domain.CandidateSearch,
		})
	}
	return out
}
