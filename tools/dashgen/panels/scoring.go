package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
)

// ScoreDistribution shows how computed deal scores (0-100) fell into
// histogram buckets over the last hour.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Deal Score Distribution").
		Description("Distribution of deal scores (0-100) over the last hour").
		Datasource(datasource()).
		Height(graphHeight).
		Span(full).
		WithTarget(query(`sum(increase(foxdeal_scoring_distribution_bucket{`+job+`}[1h])) by (le)`, "{{le}}", "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(steps("green")).
		ColorScheme(classicPalette())
}
