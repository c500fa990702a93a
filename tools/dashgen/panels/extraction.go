package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// ExtractionDuration shows p95 latency of a single extraction attempt per
// service.
func ExtractionDuration() *timeseries.PanelBuilder {
	p := graph("Extraction Duration (p95)", "95th percentile duration of single extraction attempts by service", third).
		Unit("s")
	return percentiles(p, "foxdeal_extraction_duration_seconds", "service", 0.95)
}

// ExtractionOutcomes stacks attempts by outcome: ok or a failure reason.
func ExtractionOutcomes() *timeseries.PanelBuilder {
	return graph("Extraction Attempts", "Extraction attempts per second by outcome (ok or failure reason)", third).
		WithTarget(query(`sum by (outcome) (foxdeal:extraction_attempts:rate5m)`, "{{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(30).
		LineWidth(1)
}

// ExtractionFailures shows extractions that failed after every retry.
func ExtractionFailures() *timeseries.PanelBuilder {
	p := graph("Extraction Failures", "Extractions failing after all retries, by reason", third).
		WithTarget(query(`sum by (reason) (rate(foxdeal_extraction_failures_total{`+job+`}[5m]))`, "{{reason}}", "A"))
	return graded(p, 0.01, 0.1)
}
