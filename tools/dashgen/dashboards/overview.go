// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/shrutirout/foxdeal/tools/dashgen/panels"
)

// BuildOverview constructs the foxdeal Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("foxdeal Overview").
		Uid("foxdeal-overview").
		Tags([]string{"foxdeal"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.LastSweep()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Comparison.
	b.WithRow(dashboard.NewRowBuilder("Comparison").
		WithPanel(panels.ComparisonDuration()).
		WithPanel(panels.AlternativesFound()).
		WithPanel(panels.DiscoveryCandidates()).
		WithPanel(panels.CandidatesDropped()))

	// Row 4: Extraction.
	b.WithRow(dashboard.NewRowBuilder("Extraction").
		WithPanel(panels.ExtractionDuration()).
		WithPanel(panels.ExtractionOutcomes()).
		WithPanel(panels.ExtractionFailures()))

	// Row 5: Upstreams.
	b.WithRow(dashboard.NewRowBuilder("Upstreams").
		WithPanel(panels.QuotaUsage()).
		WithPanel(panels.DiscoveryErrors()))

	// Row 6: Sweeps.
	b.WithRow(dashboard.NewRowBuilder("Sweeps").
		WithPanel(panels.SweepDuration()).
		WithPanel(panels.SweepProducts()).
		WithPanel(panels.PriceChanges()))

	// Row 7: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()))

	// Row 8: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
