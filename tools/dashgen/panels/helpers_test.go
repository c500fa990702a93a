package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantile(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`histogram_quantile(0.95, sum(rate(foxdeal_sweep_duration_seconds_bucket{job="foxdeal"}[5m])) by (le))`,
		quantile(0.95, "foxdeal_sweep_duration_seconds", ""))
	assert.Equal(t,
		`histogram_quantile(0.5, sum(rate(foxdeal_extraction_duration_seconds_bucket{job="foxdeal"}[5m])) by (service, le))`,
		quantile(0.5, "foxdeal_extraction_duration_seconds", "service"))
}

func TestPercentilesTargets(t *testing.T) {
	t.Parallel()

	panel, err := LatencyPercentiles().Build()
	require.NoError(t, err)
	require.Len(t, panel.Targets, 3)
	assert.Equal(t, "A", refID(0))
	assert.Equal(t, "C", refID(2))
}

func TestSteps(t *testing.T) {
	t.Parallel()

	cfg, err := steps("green", step{1, "yellow"}, step{5, "red"}).Build()
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 3)
	assert.Nil(t, cfg.Steps[0].Value)
	assert.Equal(t, "green", cfg.Steps[0].Color)
	require.NotNil(t, cfg.Steps[2].Value)
	assert.InDelta(t, 5.0, *cfg.Steps[2].Value, 1e-9)
	assert.Equal(t, "red", cfg.Steps[2].Color)
}
