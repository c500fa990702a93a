// Package validate checks generated dashboards and rule files: every
// PromQL expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/shrutirout/foxdeal/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// histogram and summary series suffixes.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and returns the metric names it selects that are not
// in known. Histogram series resolve to their base metric.
func Expr(expr string, known map[string]bool) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	return unknown, nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// panelJSON is the subset of the Grafana panel model the validator reads.
type panelJSON struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every query target in dash, including those nested
// in rows. A panel with no targets is a warning.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("marshaling dashboard: %w", err))
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("reading dashboard JSON: %w", err))
		return res
	}

	var walk func(panels []panelJSON)
	walk = func(panels []panelJSON) {
		for _, p := range panels {
			if p.Type == "row" {
				walk(p.Panels)
				continue
			}
			if len(p.Targets) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
			}
			for _, t := range p.Targets {
				res.check(p.Title, t.Expr, known)
			}
		}
	}
	walk(doc.Panels)
	return res
}

// Rules validates the expression of every rule in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if (r.Record == "") == (r.Alert == "") {
				res.Errors = append(res.Errors, fmt.Errorf("group %s: rule must set exactly one of record or alert", g.Name))
				continue
			}
			if r.IsAlert() && r.Annotations["summary"] == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("alert %q has no summary", r.Alert))
			}
			res.check(r.Name(), r.Expr, known)
		}
	}
	return res
}

func (r *Result) check(owner, expr string, known map[string]bool) {
	if expr == "" {
		r.Errors = append(r.Errors, fmt.Errorf("%s: empty expression", owner))
		return
	}
	unknown, err := Expr(expr, known)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("%s: %w", owner, err))
		return
	}
	for _, name := range unknown {
		r.Errors = append(r.Errors, fmt.Errorf("%s: unknown metric %s", owner, name))
	}
}
