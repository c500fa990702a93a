package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// foxdeal operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("foxdeal-alerts", RuleGroup{
		Name: "foxdeal-alerts",
		Rules: []Rule{
			{
				Alert: "FoxdealDown",
				Expr:  `absent(up{job="foxdeal"})`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "foxdeal is down",
					"description": "The foxdeal job has been absent for more than 2 minutes.",
				},
			},
			{
				Alert: "FoxdealReadinessDown",
				Expr:  `foxdeal_readyz_up == 0`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "foxdeal readiness check is failing",
					"description": "The readiness check has been reporting not-ready for more than 2 minutes. Check Postgres and Redis.",
				},
			},
			{
				Alert: "FoxdealHighErrorRate",
				Expr:  `foxdeal:http_errors:rate5m / foxdeal:http_requests:rate5m > 0.05`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High HTTP error rate on foxdeal",
					"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
				},
			},
			{
				Alert: "FoxdealExtractionFailures",
				Expr:  `foxdeal:extraction_failures:rate5m > 0.1`,
				For:   "10m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Product extraction failure rate is elevated",
					"description": "Extractions are failing after retries at more than 0.1/s for the last 10 minutes.",
				},
			},
			{
				Alert: "FoxdealDiscoveryErrors",
				Expr:  `sum(foxdeal:discovery_errors:rate5m) > 0`,
				For:   "15m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Candidate discovery is failing",
					"description": "Search discovery has returned errors for 15 minutes. Check the search upstream quota and credentials.",
				},
			},
			{
				Alert: "FoxdealSweepStale",
				Expr:  `foxdeal_sweep_last_success_timestamp > 0 and time() - foxdeal_sweep_last_success_timestamp > 172800`,
				For:   "10m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "No price sweep has completed in 48 hours",
					"description": "Tracked product prices are going stale. Check the scheduler and the sweep trigger.",
				},
			},
			{
				Alert: "FoxdealSweepFailed",
				Expr:  `increase(foxdeal_sweep_runs_total{status="failed"}[1h]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "A price sweep failed",
					"description": "A sweep could not list tracked products or was interrupted before finishing.",
				},
			},
			{
				Alert: "FoxdealNotificationFailures",
				Expr:  `increase(foxdeal_notification_failures_total[5m]) > 0`,
				For:   "1m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Notification delivery failures detected",
					"description": "One or more price drop alerts have failed to send.",
				},
			},
		},
	})
}
