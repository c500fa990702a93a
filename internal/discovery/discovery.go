// Package discovery proposes candidate listings of a product on other
// storefronts. Candidates are unverified: callers extract and match them.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shrutirout/foxdeal/internal/search"
	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Strategy names accepted by New.
const (
	StrategyStructured = "structured"
	StrategyPlanned    = "planned"
	StrategyDirect     = "direct"
)

// DefaultMaxPerPlatform caps structured search results per storefront.
const DefaultMaxPerPlatform = 2

// ErrUnknownStrategy is returned by New for an unregistered name.
var ErrUnknownStrategy = errors.New("unknown discovery strategy")

// Query describes what to look for.
type Query struct {
	// Name is the free-text product name.
	Name string
	// Original is the anchor listing when discovery runs for a comparison.
	Original *domain.ProductFact
	// ExcludePlatform is a domain no candidate may come from.
	ExcludePlatform string
}

// Text returns the name to search for, preferring the anchor's title.
func (q Query) Text() string {
	if q.Original != nil && q.Original.Name != "" {
		return q.Original.Name
	}
	return strings.TrimSpace(q.Name)
}

// Strategy proposes candidate listings.
type Strategy interface {
	Discover(ctx context.Context, q Query) ([]domain.SearchCandidate, error)
	Name() string
}

// Deps holds the collaborators strategies may need.
type Deps struct {
	Searcher       search.Searcher
	Planner        Planner
	Guesser        Guesser
	MaxPerPlatform int
	Logger         *slog.Logger
}

type constructor func(Deps) (Strategy, error)

var registry = map[string]constructor{
	StrategyStructured: func(d Deps) (Strategy, error) {
		if d.Searcher == nil {
			return nil, errors.New("structured discovery requires a searcher")
		}
		return NewStructuredSearch(d.Searcher, d.MaxPerPlatform, d.Logger), nil
	},
	StrategyPlanned: func(d Deps) (Strategy, error) {
		if d.Planner == nil {
			return nil, errors.New("planned discovery requires a planner")
		}
		return NewPlannedSearch(d.Planner, d.Logger), nil
	},
	StrategyDirect: func(d Deps) (Strategy, error) {
		if d.Guesser == nil {
			return nil, errors.New("direct discovery requires a guesser")
		}
		return NewDirectURL(d.Guesser, d.Logger), nil
	},
}

// New builds the strategy registered under name.
func New(name string, deps Deps) (Strategy, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return build(deps)
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func excluded(domainName, exclude string) bool {
	return exclude != "" && platform.NormalizeDomain(domainName) == platform.NormalizeDomain(exclude)
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
