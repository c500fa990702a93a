package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness check (1 ok, 0 failing).
func HealthzStat() *stat.PanelBuilder {
	return upDown("Healthz", "Health check status (1 = ok, 0 = failing)", `foxdeal_healthz_up`)
}

// ReadyzStat shows the readiness check, which pings the store and cache.
func ReadyzStat() *stat.PanelBuilder {
	return upDown("Readyz", "Readiness check status (1 = ready, 0 = not ready)", `foxdeal_readyz_up`)
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start",
		`time() - process_start_time_seconds{`+job+`}`, statHeight, quarter).
		Unit("s").
		Thresholds(steps("green"))
}

// LastSweep shows time since the last completed price sweep. It turns
// yellow past 25h and red past two days.
func LastSweep() *stat.PanelBuilder {
	return single("Last Sweep", "Time since the last completed price sweep",
		`time() - foxdeal_sweep_last_success_timestamp{`+job+`}`, statHeight, quarter).
		Unit("s").
		Thresholds(steps("green", step{90000, "yellow"}, step{172800, "red"})).
		ColorMode(common.BigValueColorModeBackground)
}
