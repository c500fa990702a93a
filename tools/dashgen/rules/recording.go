package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("foxdeal-recording-rules", RuleGroup{
		Name: "foxdeal-recording",
		Rules: []Rule{
			{
				Record: "foxdeal:http_requests:rate5m",
				Expr:   `sum(rate(foxdeal_http_requests_total[5m]))`,
			},
			{
				Record: "foxdeal:http_errors:rate5m",
				Expr:   `sum(rate(foxdeal_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "foxdeal:extraction_attempts:rate5m",
				Expr:   `sum by (service, outcome) (rate(foxdeal_extraction_attempts_total[5m]))`,
			},
			{
				Record: "foxdeal:extraction_failures:rate5m",
				Expr:   `sum(rate(foxdeal_extraction_failures_total[5m]))`,
			},
			{
				Record: "foxdeal:discovery_errors:rate5m",
				Expr:   `sum by (strategy) (rate(foxdeal_discovery_errors_total[5m]))`,
			},
			{
				Record: "foxdeal:sweep_failed_products:rate5m",
				Expr:   `sum(rate(foxdeal_sweep_products_total{outcome="failed"}[5m]))`,
			},
		},
	})
}
