package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsRate shows price drop alerts delivered per hour.
func AlertsRate() *timeseries.PanelBuilder {
	return graph("Alerts Sent / h", "Price drop alerts delivered per hour", half).
		WithTarget(query(`sum(increase(foxdeal_alerts_sent_total{`+job+`}[1h]))`, "alerts", "A"))
}

// NotificationFailures shows failed deliveries over the past day.
func NotificationFailures() *stat.PanelBuilder {
	return single("Notification Failures (24h)", "Failed alert notification deliveries in the last 24 hours",
		`increase(foxdeal_notification_failures_total{`+job+`}[24h])`, graphHeight, half).
		Thresholds(steps("green", step{1, "yellow"}, step{5, "red"})).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
