// Package metrics defines Prometheus metrics for foxdeal.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shrutirout/foxdeal/pkg/extract"
)

const namespace = "foxdeal"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last /healthz check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last /readyz check succeeded, 0 otherwise.",
	})
)

// Extraction metrics.
var (
	ExtractionAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_attempts_total",
		Help:      "Extraction attempts by service and outcome (ok or a failure reason).",
	}, []string{"service", "outcome"})

	ExtractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duration of single extraction attempts in seconds.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 45},
	}, []string{"service"})

	ExtractionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_failures_total",
		Help:      "Extractions that failed after all retries, by reason.",
	}, []string{"reason"})
)

// Discovery and comparison metrics.
var (
	DiscoveryCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_candidates_total",
		Help:      "Candidates proposed by discovery, by strategy.",
	}, []string{"strategy"})

	DiscoveryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_errors_total",
		Help:      "Discovery calls that returned an error, by strategy.",
	}, []string{"strategy"})

	CandidatesDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_dropped_total",
		Help:      "Candidates dropped during comparison, by reason.",
	}, []string{"reason"})

	ComparisonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparison_duration_seconds",
		Help:      "Duration of cross-platform comparisons in seconds.",
		Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90, 120},
	})

	ComparisonAlternatives = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparison_alternatives",
		Help:      "Number of verified alternatives per comparison.",
		Buckets:   prometheus.LinearBuckets(0, 1, 11),
	})
)

// Scoring metrics.
var (
	ScoringDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_distribution",
		Help:      "Distribution of computed deal scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})
)

// Price tracking metrics.
var (
	PriceChangesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_changes_total",
		Help:      "Observations whose price differed from the stored price.",
	})

	PriceDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_drops_total",
		Help:      "Observations whose price fell below the stored price.",
	})

	SweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_runs_total",
		Help:      "Price-check sweeps by status (completed, skipped, failed).",
	}, []string{"status"})

	SweepProductsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_products_total",
		Help:      "Products processed by sweeps, by outcome (updated, failed).",
	}, []string{"outcome"})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of price-check sweeps in seconds.",
		Buckets:   prometheus.ExponentialBuckets(5, 2, 10),
	})

	SweepLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sweep_last_success_timestamp",
		Help:      "Unix timestamp of the last completed sweep.",
	})
)

// Alert metrics.
var (
	AlertsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_sent_total",
		Help:      "Total number of price drop alerts delivered.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Upstream quota metrics.
var (
	QuotaDailyUsage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quota_daily_usage",
		Help:      "Calls made to a metered upstream in the current 24-hour window.",
	}, []string{"upstream"})
)

// ExtractionObserver records extraction attempts. It satisfies
// extract.Observer.
type ExtractionObserver struct{}

// ObserveAttempt counts one attempt and its duration.
func (ExtractionObserver) ObserveAttempt(service string, reason extract.Reason, elapsed time.Duration) {
	outcome := string(reason)
	if outcome == "" {
		outcome = "ok"
	}
	ExtractionAttemptsTotal.WithLabelValues(service, outcome).Inc()
	ExtractionDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}
