// Package rules builds the Prometheus Operator rule resources shipped
// alongside the foxdeal dashboards.
package rules

const (
	ruleAPIVersion = "monitoring.coreos.com/v1"
	ruleKind       = "PrometheusRule"

	// ruleSelectorLabel is matched by the cluster Prometheus ruleSelector.
	ruleSelectorLabel = "prometheus"
	ruleSelectorValue = "system-rules-prometheus"
)

// PrometheusRule is the monitoring.coreos.com/v1 PrometheusRule resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata is the subset of object metadata the generator sets.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec wraps the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit at Interval, or the global interval when empty.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// IsAlert reports whether r is an alerting rule.
func (r Rule) IsAlert() bool { return r.Alert != "" }

// Name returns the record or alert name.
func (r Rule) Name() string {
	if r.IsAlert() {
		return r.Alert
	}
	return r.Record
}

func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: ruleAPIVersion,
		Kind:       ruleKind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{ruleSelectorLabel: ruleSelectorValue},
		},
		Spec: PrometheusRuleSpec{Groups: groups},
	}
}
