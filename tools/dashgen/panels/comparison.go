package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ComparisonDuration shows p50 and p95 end-to-end comparison latency.
// A comparison fans out to discovery and several extractions, so tens of
// seconds is normal.
func ComparisonDuration() *timeseries.PanelBuilder {
	p := graph("Comparison Duration", "Cross-platform comparison duration percentiles", half).
		Unit("s").
		Thresholds(steps("green", step{45, "yellow"}, step{90, "red"}))
	return percentiles(p, "foxdeal_comparison_duration_seconds", "", 0.50, 0.95)
}

// AlternativesFound shows the mean number of verified alternatives per
// comparison over the last hour.
func AlternativesFound() *stat.PanelBuilder {
	const expr = `sum(increase(foxdeal_comparison_alternatives_sum{` + job + `}[1h]))` +
		` / sum(increase(foxdeal_comparison_alternatives_count{` + job + `}[1h]))`
	return single("Alternatives / Comparison", "Mean verified alternatives returned per comparison over the last hour",
		expr, graphHeight, half).
		Decimals(1).
		Thresholds(steps("red", step{1, "green"})).
		GraphMode(common.BigValueGraphModeArea)
}

// CandidatesDropped shows why discovered candidates were discarded.
func CandidatesDropped() *timeseries.PanelBuilder {
	return perMinute("Candidates Dropped", "Candidates discarded during comparison per minute, by reason",
		"foxdeal_candidates_dropped_total", "reason")
}

// DiscoveryCandidates shows candidates proposed per minute by strategy.
func DiscoveryCandidates() *timeseries.PanelBuilder {
	return perMinute("Candidates Discovered", "Candidates proposed by discovery per minute, by strategy",
		"foxdeal_discovery_candidates_total", "strategy")
}

func perMinute(title, description, counter, by string) *timeseries.PanelBuilder {
	expr := `sum by (` + by + `) (rate(` + counter + `{` + job + `}[5m])) * 60`
	return graph(title, description, half).
		WithTarget(query(expr, "{{"+by+"}}", "A"))
}
