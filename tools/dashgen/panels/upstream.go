package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// QuotaUsage shows calls made to each metered upstream in the rolling 24h
// window, for comparison against the daily cap.
func QuotaUsage() *timeseries.PanelBuilder {
	return graph("Upstream Daily Usage", "Calls made to each metered upstream in the current 24-hour window", half).
		WithTarget(query(`max by (upstream) (foxdeal_quota_daily_usage{`+job+`})`, "{{upstream}}", "A")).
		Legend(tableLegend("last", "max"))
}

// DiscoveryErrors shows failing discovery calls per second by strategy.
func DiscoveryErrors() *timeseries.PanelBuilder {
	p := graph("Discovery Errors", "Discovery calls returning an error per second, by strategy", half).
		WithTarget(query(`foxdeal:discovery_errors:rate5m`, "{{strategy}}", "A"))
	return graded(p, 0.01, 0.1)
}
