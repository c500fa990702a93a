// Package panels provides Grafana dashboard panel builders for foxdeal
// metrics.
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Grid sizes on Grafana's 24-column layout.
const (
	quarter = 6
	third   = 8
	half    = 12
	full    = 24

	statHeight  = 4
	graphHeight = 8
)

// job scopes every raw selector to the foxdeal scrape job.
const job = `job="foxdeal"`

// graph starts a line panel: classic palette, a mean/max table legend and a
// multi-series tooltip.
func graph(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(graphHeight).
		Span(span).
		DrawStyle(common.GraphDrawStyleLine).
		FillOpacity(10).
		LineWidth(2).
		Legend(tableLegend("mean", "max")).
		Tooltip(multiTooltip()).
		Thresholds(steps("green")).
		ColorScheme(classicPalette())
}

// graded colors a line panel by threshold, for series where any value
// above zero needs attention.
func graded(p *timeseries.PanelBuilder, yellow, red float64) *timeseries.PanelBuilder {
	return p.
		Thresholds(steps("green", step{yellow, "yellow"}, step{red, "red"})).
		ColorScheme(byThreshold())
}

// percentiles adds one histogram_quantile target per q, legend "p<q*100>".
func percentiles(p *timeseries.PanelBuilder, metric, by string, qs ...float64) *timeseries.PanelBuilder {
	for i, q := range qs {
		legend := fmt.Sprintf("p%g", q*100)
		if by != "" {
			legend = "{{" + by + "}}"
		}
		p = p.WithTarget(query(quantile(q, metric, by), legend, refID(i)))
	}
	return p
}

// single starts a one-number stat panel with no sparkline.
func single(title, description, expr string, height, span uint32) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(height).
		Span(span).
		WithTarget(query(expr, "", "A")).
		ColorScheme(byThreshold()).
		GraphMode(common.BigValueGraphModeNone)
}

// upDown is a 0/1 gauge rendered as a red or green tile.
func upDown(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, metric, statHeight, quarter).
		Thresholds(steps("red", step{1, "green"})).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// quantile returns a histogram_quantile expression over metric, optionally
// keeping one extra grouping label.
func quantile(q float64, metric, by string) string {
	group := "le"
	if by != "" {
		group = by + ", le"
	}
	return fmt.Sprintf(`histogram_quantile(%g, sum(rate(%s_bucket{%s}[5m])) by (%s))`, q, metric, job, group)
}

func refID(i int) string {
	return string(rune('A' + i))
}

func datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

func query(expr, legend, ref string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legend).
		RefId(ref)
}

// step turns the panel color once the value reaches at.
type step struct {
	at    float64
	color string
}

// steps builds absolute thresholds starting from base.
func steps(base string, rest ...step) cog.Builder[dashboard.ThresholdsConfig] {
	out := []dashboard.Threshold{{Color: base}}
	for _, s := range rest {
		out = append(out, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(out)
}

func byThreshold() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

func classicPalette() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)
}

func tableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

func multiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
