package main

import "errors"

// KnownMetrics is the set of metric names exported by foxdeal plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"foxdeal_http_request_duration_seconds": true,
	"foxdeal_http_requests_total":           true,

	// Health metrics.
	"foxdeal_healthz_up": true,
	"foxdeal_readyz_up":  true,

	// Extraction metrics.
	"foxdeal_extraction_attempts_total":   true,
	"foxdeal_extraction_duration_seconds": true,
	"foxdeal_extraction_failures_total":   true,

	// Discovery and comparison metrics.
	"foxdeal_discovery_candidates_total":  true,
	"foxdeal_discovery_errors_total":      true,
	"foxdeal_candidates_dropped_total":    true,
	"foxdeal_comparison_duration_seconds": true,
	"foxdeal_comparison_alternatives":     true,

	// Scoring metrics.
	"foxdeal_scoring_distribution": true,

	// Price tracking metrics.
	"foxdeal_price_changes_total":          true,
	"foxdeal_price_drops_total":            true,
	"foxdeal_sweep_runs_total":             true,
	"foxdeal_sweep_products_total":         true,
	"foxdeal_sweep_duration_seconds":       true,
	"foxdeal_sweep_last_success_timestamp": true,

	// Alert metrics.
	"foxdeal_alerts_sent_total":           true,
	"foxdeal_notification_failures_total": true,

	// Upstream quota metrics.
	"foxdeal_quota_daily_usage": true,

	// Recording rules.
	"foxdeal:http_requests:rate5m":         true,
	"foxdeal:http_errors:rate5m":           true,
	"foxdeal:extraction_attempts:rate5m":   true,
	"foxdeal:extraction_failures:rate5m":   true,
	"foxdeal:discovery_errors:rate5m":      true,
	"foxdeal:sweep_failed_products:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
