package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shrutirout/foxdeal/internal/metrics"
	"github.com/shrutirout/foxdeal/internal/store"
	score "github.com/shrutirout/foxdeal/pkg/scorer"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrInvalidFact is returned when a fact lacks a name or a positive price.
var ErrInvalidFact = errors.New("invalid product fact")

// RecordObservation applies a freshly extracted fact to a tracked product.
// A price point is due when the product has no price yet or the price
// changed; Dropped is set when the new price is below the stored one.
// tracked is never modified.
func RecordObservation(tracked domain.TrackedProduct, fact domain.ProductFact) (domain.Observation, error) {
	if !fact.Valid() {
		return domain.Observation{}, ErrInvalidFact
	}

	oldPrice := tracked.CurrentPrice
	first := !oldPrice.IsPositive()

	updated := tracked
	updated.ApplyFact(fact, score.ScoreFact(fact))

	return domain.Observation{
		Updated:         updated,
		HistoryAppended: first || !fact.CurrentPrice.Equal(oldPrice),
		Dropped:         !first && fact.CurrentPrice.LessThan(oldPrice),
		OldPrice:        oldPrice,
		NewPrice:        fact.CurrentPrice,
	}, nil
}

// Observe records fact against tracked, persists the product together with
// any due price point, and alerts the owner on a drop. Alert failures are logged
// and counted but never returned.
func (eng *Engine) Observe(
	ctx context.Context,
	tracked domain.TrackedProduct,
	fact domain.ProductFact,
) (domain.Observation, error) {
	obs, _, err := eng.observe(ctx, tracked, fact)
	return obs, err
}

// observe is Observe that also reports whether an alert was delivered.
func (eng *Engine) observe(
	ctx context.Context,
	tracked domain.TrackedProduct,
	fact domain.ProductFact,
) (domain.Observation, bool, error) {
	obs, err := RecordObservation(tracked, fact)
	if err != nil {
		return obs, false, err
	}
	metrics.ScoringDistribution.Observe(obs.Updated.DealScore)

	obs.Updated.UpdatedAt = eng.now()
	var pt *domain.PriceHistoryPoint
	if obs.HistoryAppended {
		pt = &domain.PriceHistoryPoint{
			Price:      obs.NewPrice,
			Currency:   obs.Updated.Currency,
			ObservedAt: eng.now(),
		}
	}
	if err := eng.store.RecordObservation(ctx, &obs.Updated, pt); err != nil {
		return obs, false, fmt.Errorf("recording observation: %w", err)
	}
	if pt != nil && tracked.CurrentPrice.IsPositive() {
		metrics.PriceChangesTotal.Inc()
	}

	if !obs.Dropped {
		return obs, false, nil
	}
	metrics.PriceDropsTotal.Inc()

	err = eng.notifier.NotifyPriceDrop(ctx, obs.Updated.OwnerID, obs.Updated, obs.OldPrice, obs.NewPrice)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("price drop notification failed",
			"product_id", obs.Updated.ID,
			"owner", obs.Updated.OwnerID,
			"error", err,
		)
		return obs, false, nil
	}
	metrics.AlertsSentTotal.Inc()
	eng.log.Info("price drop alert sent",
		"product_id", obs.Updated.ID,
		"old_price", obs.OldPrice.String(),
		"new_price", obs.NewPrice.String(),
	)
	return obs, true, nil
}

// Preview extracts and scores url without persisting anything.
func (eng *Engine) Preview(ctx context.Context, url string) (domain.ScoredFact, error) {
	if err := domain.Validate(domain.URLInput{URL: url}); err != nil {
		return domain.ScoredFact{}, err
	}
	fact, err := eng.extractor.Extract(ctx, url)
	if err != nil {
		return domain.ScoredFact{}, err
	}
	if !fact.Valid() {
		return domain.ScoredFact{}, ErrInvalidFact
	}
	return domain.ScoredFact{Fact: fact, Deal: score.ScoreFact(fact)}, nil
}

// Track extracts url and starts (or refreshes) tracking it for owner.
func (eng *Engine) Track(ctx context.Context, owner, url string) (domain.Observation, error) {
	if err := domain.Validate(domain.URLInput{URL: url}); err != nil {
		return domain.Observation{}, err
	}
	if strings.TrimSpace(owner) == "" {
		return domain.Observation{}, domain.ErrNotAuthenticated
	}
	fact, err := eng.extractor.Extract(ctx, url)
	if err != nil {
		return domain.Observation{}, err
	}
	return eng.TrackFact(ctx, owner, url, fact)
}

// TrackFact tracks an already extracted fact for owner. An existing product
// at the same URL is updated in place.
func (eng *Engine) TrackFact(
	ctx context.Context,
	owner, url string,
	fact domain.ProductFact,
) (domain.Observation, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Observation{}, domain.ErrNotAuthenticated
	}
	if !fact.Valid() {
		return domain.Observation{}, ErrInvalidFact
	}

	tracked := domain.TrackedProduct{OwnerID: owner, URL: url, CreatedAt: eng.now()}
	existing, err := eng.store.GetTrackedProductByURL(ctx, owner, url)
	switch {
	case err == nil:
		tracked = *existing
	case errors.Is(err, store.ErrNotFound):
	default:
		return domain.Observation{}, fmt.Errorf("looking up tracked product: %w", err)
	}

	obs, err := eng.Observe(ctx, tracked, fact)
	if err != nil {
		return obs, err
	}
	eng.log.Info("product tracked",
		"owner", owner,
		"product_id", obs.Updated.ID,
		"price", obs.NewPrice.String(),
		"history_appended", obs.HistoryAppended,
	)
	return obs, nil
}

// Products returns one page of the owner's tracked products matching q and
// the total number of matches. q.OwnerID is always replaced by owner.
func (eng *Engine) Products(
	ctx context.Context,
	owner string,
	q store.ProductQuery,
) ([]domain.TrackedProduct, int, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, 0, domain.ErrNotAuthenticated
	}
	q.OwnerID = owner
	products, total, err := eng.store.QueryTrackedProducts(ctx, &q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	return products, total, nil
}

// Product returns one of the owner's tracked products.
func (eng *Engine) Product(ctx context.Context, owner, id string) (*domain.TrackedProduct, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return eng.store.GetTrackedProduct(ctx, id, owner)
}

// History returns the price history of one of the owner's products, oldest
// point first.
func (eng *Engine) History(ctx context.Context, owner, id string) ([]domain.PriceHistoryPoint, error) {
	if _, err := eng.Product(ctx, owner, id); err != nil {
		return nil, err
	}
	points, err := eng.store.ListPriceHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing price history: %w", err)
	}
	return points, nil
}

// Delete stops tracking a product. History goes with it.
func (eng *Engine) Delete(ctx context.Context, owner, id string) error {
	if strings.TrimSpace(owner) == "" {
		return domain.ErrNotAuthenticated
	}
	return eng.store.DeleteTrackedProduct(ctx, id, owner)
}
