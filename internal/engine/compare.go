package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/shrutirout/foxdeal/internal/discovery"
	"github.com/shrutirout/foxdeal/internal/metrics"
	"github.com/shrutirout/foxdeal/pkg/platform"
	score "github.com/shrutirout/foxdeal/pkg/scorer"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrAnchorExtraction is returned when the listing being compared cannot be
// extracted. It is the only fatal comparison failure.
var ErrAnchorExtraction = errors.New("extracting original listing")

// Reasons a candidate is dropped during verification.
const (
	dropExtraction = "extraction"
	dropInvalid    = "invalid"
	dropMismatch   = "mismatch"
	dropNoImage    = "no_image"
	dropExcluded   = "excluded"
	dropDuplicate  = "duplicate"
)

type verified struct {
	scored domain.ScoredFact
	reason string
}

// Compare extracts and scores the listing at url, discovers the same product
// on other platforms and returns the verified alternatives best first.
func (eng *Engine) Compare(ctx context.Context, url string) (domain.Comparison, error) {
	if err := domain.Validate(domain.URLInput{URL: url}); err != nil {
		return domain.Comparison{}, err
	}

	start := eng.now()
	ctx, span := eng.tracer.Start(ctx, "engine.Compare")
	span.SetAttributes(attribute.String("foxdeal.url", url))
	defer span.End()
	defer func() {
		metrics.ComparisonDuration.Observe(eng.now().Sub(start).Seconds())
	}()

	original, err := eng.extractor.Extract(ctx, url)
	if err == nil && !original.Valid() {
		err = ErrInvalidFact
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "anchor extraction failed")
		return domain.Comparison{}, fmt.Errorf("%w: %w", ErrAnchorExtraction, err)
	}
	if original.SourceURL == "" {
		original.SourceURL = url
	}

	anchor := domain.ScoredFact{Fact: original, Deal: score.ScoreFact(original)}
	metrics.ScoringDistribution.Observe(anchor.Deal.Score)

	exclude := platform.NormalizeDomain(original.PlatformDomain)
	if exclude == "" {
		exclude = platform.Hostname(url)
	}

	strategy := eng.strategy.Name()
	candidates, err := eng.strategy.Discover(ctx, discovery.Query{
		Original:        &original,
		ExcludePlatform: exclude,
	})
	if err != nil {
		metrics.DiscoveryErrorsTotal.WithLabelValues(strategy).Inc()
		span.RecordError(err)
		eng.log.Warn("discovery failed, returning original only",
			"url", url,
			"strategy", strategy,
			"error", err,
		)
		candidates = nil
	}
	metrics.DiscoveryCandidatesTotal.WithLabelValues(strategy).Add(float64(len(candidates)))

	alternatives, dropped := eng.verifyCandidates(ctx, original, exclude, candidates)
	metrics.ComparisonAlternatives.Observe(float64(len(alternatives)))

	span.SetAttributes(
		attribute.String("foxdeal.strategy", strategy),
		attribute.Int("foxdeal.discovered", len(candidates)),
		attribute.Int("foxdeal.alternatives", len(alternatives)),
	)
	eng.log.Info("comparison complete",
		"url", url,
		"strategy", strategy,
		"discovered", len(candidates),
		"alternatives", len(alternatives),
		"dropped", dropped,
		"duration", eng.now().Sub(start).Round(time.Millisecond),
	)

	return domain.Comparison{
		Original:     anchor,
		Alternatives: alternatives,
		Strategy:     strategy,
		Discovered:   len(candidates),
		Dropped:      dropped,
	}, nil
}

// verifyCandidates extracts every candidate with bounded concurrency and keeps
// those that are valid, match the original and carry an image. Results land
// in per-index slots and are folded after the group finishes.
func (eng *Engine) verifyCandidates(
	ctx context.Context,
	original domain.ProductFact,
	exclude string,
	candidates []domain.SearchCandidate,
) ([]domain.ScoredFact, int) {
	slots := make([]verified, len(candidates))

	var g errgroup.Group
	g.SetLimit(eng.concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			slots[i] = eng.verifyCandidate(ctx, original, exclude, c)
			return nil
		})
	}
	_ = g.Wait()

	alternatives := make([]domain.ScoredFact, 0, len(slots))
	seen := map[string]struct{}{original.SourceURL: {}}
	dropped := 0
	for _, v := range slots {
		reason := v.reason
		if reason == "" {
			if _, dup := seen[v.scored.Fact.SourceURL]; dup {
				reason = dropDuplicate
			}
		}
		if reason != "" {
			dropped++
			metrics.CandidatesDroppedTotal.WithLabelValues(reason).Inc()
			continue
		}
		seen[v.scored.Fact.SourceURL] = struct{}{}
		metrics.ScoringDistribution.Observe(v.scored.Deal.Score)
		alternatives = append(alternatives, v.scored)
	}

	SortAlternatives(alternatives)
	return alternatives, dropped
}

func (eng *Engine) verifyCandidate(
	ctx context.Context,
	original domain.ProductFact,
	exclude string,
	c domain.SearchCandidate,
) verified {
	cctx, cancel := context.WithTimeout(ctx, eng.candidateTimeout)
	defer cancel()

	fact, err := eng.extractor.Extract(cctx, c.URL)
	if err != nil {
		eng.log.Debug("candidate extraction failed", "url", c.URL, "platform", c.Platform, "error", err)
		return verified{reason: dropExtraction}
	}
	if !fact.Valid() {
		return verified{reason: dropInvalid}
	}
	if fact.SourceURL == "" {
		fact.SourceURL = c.URL
	}
	if fact.PlatformDomain == "" {
		fact.PlatformDomain = c.Platform
	}
	if fact.PlatformName == "" {
		fact.PlatformName = c.PlatformName
	}
	if exclude != "" && platform.NormalizeDomain(fact.PlatformDomain) == exclude {
		return verified{reason: dropExcluded}
	}
	if !eng.matcher.Same(original.Name, fact.Name) {
		eng.log.Debug("candidate does not match", "original", original.Name, "candidate", fact.Name)
		return verified{reason: dropMismatch}
	}
	if eng.requireImage && fact.ImageURL == "" {
		return verified{reason: dropNoImage}
	}

	return verified{scored: domain.ScoredFact{Fact: fact, Deal: score.ScoreFact(fact)}}
}

// SortAlternatives orders alternatives by score descending, then review
// count descending, then platform domain ascending. The source URL breaks
// any remaining tie.
func SortAlternatives(alts []domain.ScoredFact) {
	sort.SliceStable(alts, func(i, j int) bool {
		a, b := alts[i], alts[j]
		if a.Deal.Score != b.Deal.Score {
			return a.Deal.Score > b.Deal.Score
		}
		if a.Fact.ReviewCount != b.Fact.ReviewCount {
			return a.Fact.ReviewCount > b.Fact.ReviewCount
		}
		if a.Fact.PlatformDomain != b.Fact.PlatformDomain {
			return a.Fact.PlatformDomain < b.Fact.PlatformDomain
		}
		return a.Fact.SourceURL < b.Fact.SourceURL
	})
}
