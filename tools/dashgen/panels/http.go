package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate shows API requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return graph("Request Rate", "HTTP requests per second", third).
		WithTarget(query(`foxdeal:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps")
}

// LatencyPercentiles shows p50, p95 and p99 API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	p := graph("Latency Percentiles", "HTTP request duration percentiles", third).Unit("s")
	return percentiles(p, "foxdeal_http_request_duration_seconds", "", 0.50, 0.95, 0.99)
}

// ErrorRate shows 5xx responses as a share of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	p := graph("Error Rate %", "HTTP 5xx error rate as percentage of total requests", third).
		WithTarget(query(`foxdeal:http_errors:rate5m / foxdeal:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent")
	return graded(p, 1, 5)
}
