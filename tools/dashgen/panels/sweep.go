package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// SweepDuration shows p95 wall time of a full price sweep.
func SweepDuration() *timeseries.PanelBuilder {
	p := graph("Sweep Duration (p95)", "95th percentile price sweep duration", third).Unit("s")
	return percentiles(p, "foxdeal_sweep_duration_seconds", "", 0.95)
}

// SweepProducts shows tracked products re-checked per hour, by outcome.
func SweepProducts() *timeseries.PanelBuilder {
	return graph("Products Checked / h", "Tracked products re-checked by sweeps per hour, by outcome", third).
		WithTarget(query(`sum by (outcome) (increase(foxdeal_sweep_products_total{`+job+`}[1h]))`, "{{outcome}}", "A")).
		Legend(tableLegend("last", "max"))
}

// PriceChanges shows observations whose price changed, and the subset that
// dropped, per hour.
func PriceChanges() *timeseries.PanelBuilder {
	return graph("Price Changes / h", "Observations whose price changed or dropped, per hour", third).
		WithTarget(query(`sum(increase(foxdeal_price_changes_total{`+job+`}[1h]))`, "changes", "A")).
		WithTarget(query(`sum(increase(foxdeal_price_drops_total{`+job+`}[1h]))`, "drops", "B")).
		Legend(tableLegend("last", "max"))
}
