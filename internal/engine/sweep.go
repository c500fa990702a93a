package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/shrutirout/foxdeal/internal/metrics"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrSweepInProgress is returned when another sweep holds the sweep lock.
var ErrSweepInProgress = errors.New("sweep already in progress")

const sweepLockName = "price-sweep"

// RunSweep re-extracts every tracked product one at a time, records the
// observation and alerts owners on price drops. A failing product is
// counted and skipped; only listing the products can fail the sweep.
func (eng *Engine) RunSweep(ctx context.Context) (domain.SweepResult, error) {
	if !eng.sweepMu.TryLock() {
		metrics.SweepRunsTotal.WithLabelValues("skipped").Inc()
		return domain.SweepResult{}, ErrSweepInProgress
	}
	defer eng.sweepMu.Unlock()

	if eng.locker != nil {
		holder := uuid.NewString()
		ok, err := eng.locker.Acquire(ctx, sweepLockName, holder, eng.sweepLockTTL)
		if err != nil {
			metrics.SweepRunsTotal.WithLabelValues("failed").Inc()
			return domain.SweepResult{}, fmt.Errorf("acquiring sweep lock: %w", err)
		}
		if !ok {
			metrics.SweepRunsTotal.WithLabelValues("skipped").Inc()
			return domain.SweepResult{}, ErrSweepInProgress
		}
		defer func() {
			// The sweep context may be done by now.
			if err := eng.locker.Release(context.WithoutCancel(ctx), sweepLockName, holder); err != nil {
				eng.log.Warn("releasing sweep lock failed", "error", err)
			}
		}()
	}

	return eng.sweep(ctx)
}

func (eng *Engine) sweep(ctx context.Context) (domain.SweepResult, error) {
	start := eng.now()
	ctx, span := eng.tracer.Start(ctx, "engine.RunSweep")
	defer span.End()

	products, err := eng.store.ListAllTrackedProducts(ctx)
	if err != nil {
		metrics.SweepRunsTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing products failed")
		return domain.SweepResult{}, fmt.Errorf("listing tracked products: %w", err)
	}

	res := domain.SweepResult{Total: len(products)}
	eng.log.Info("sweep starting", "products", res.Total)

	for i := range products {
		if ctx.Err() != nil {
			res.Failed += res.Total - i
			break
		}
		eng.sweepOne(ctx, products[i], &res)
	}

	res.Duration = eng.now().Sub(start)
	metrics.SweepDuration.Observe(res.Duration.Seconds())
	metrics.SweepRunsTotal.WithLabelValues("completed").Inc()
	metrics.SweepLastSuccessTimestamp.Set(float64(eng.now().Unix()))

	span.SetAttributes(
		attribute.Int("foxdeal.total", res.Total),
		attribute.Int("foxdeal.updated", res.Updated),
		attribute.Int("foxdeal.failed", res.Failed),
	)
	eng.log.Info("sweep complete",
		"total", res.Total,
		"updated", res.Updated,
		"failed", res.Failed,
		"price_changes", res.PriceChanges,
		"alerts_sent", res.AlertsSent,
		"duration", res.Duration.Round(100*time.Millisecond),
	)
	return res, ctx.Err()
}

func (eng *Engine) sweepOne(ctx context.Context, p domain.TrackedProduct, res *domain.SweepResult) {
	ictx, cancel := context.WithTimeout(ctx, eng.itemTimeout)
	defer cancel()

	fact, err := eng.extractor.Extract(ictx, p.URL)
	if err != nil {
		eng.log.Warn("sweep extraction failed", "product_id", p.ID, "url", p.URL, "error", err)
		res.Failed++
		metrics.SweepProductsTotal.WithLabelValues("failed").Inc()
		return
	}

	obs, alerted, err := eng.observe(ctx, p, fact)
	if err != nil {
		eng.log.Warn("sweep observation failed", "product_id", p.ID, "error", err)
		res.Failed++
		metrics.SweepProductsTotal.WithLabelValues("failed").Inc()
		return
	}

	res.Updated++
	metrics.SweepProductsTotal.WithLabelValues("updated").Inc()
	if obs.HistoryAppended && obs.OldPrice.IsPositive() {
		res.PriceChanges++
		eng.log.Info("price changed",
			"product_id", p.ID,
			"old_price", obs.OldPrice.String(),
			"new_price", obs.NewPrice.String(),
		)
	}
	if alerted {
		res.AlertsSent++
	}
}
