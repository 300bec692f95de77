package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/abstat/config"
)

const plan = `
settings:
  power: 0.9
experiments:
  - name: hero-banner
    control: {conversions: 358, total: 4216}
    treatment: {conversions: 425, total: 4216}
plans:
  - name: pricing-page
    baselineRate: 0.10
    mde: 0.05
  - name: default-power
    baselineRate: 0.10
    mde: 0.05
    power: 0.8
`

func TestEvaluateAndSampleSizes(t *testing.T) {
	p, err := config.ParsePlan([]byte(plan), "plan.yaml")
	require.NoError(t, err)
	require.Empty(t, config.ValidatePlan(p))

	results, err := config.Evaluate(p)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0119, results[0].PValue)
	assert.True(t, results[0].IsSignificant)

	sizes, err := config.SampleSizes(p)
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, 0.9, sizes[0].Power)
	assert.Equal(t, int64(57763), sizes[1].SampleSizePerVariant)
	assert.Greater(t, sizes[0].SampleSizePerVariant, sizes[1].SampleSizePerVariant)
}

func TestEvaluate_InvalidExperiment(t *testing.T) {
	p := &config.Plan{Experiments: []config.Experiment{{Name: "broken"}}}

	_, err := config.Evaluate(p)
	assert.Error(t, err)
	assert.NotEmpty(t, config.ValidatePlan(p))
}

func TestParsePlan_ResolveSources(t *testing.T) {
	dir := t.TempDir()
	export := `{"variants": [{"users": 4216, "conversions": 358}, {"users": 4216, "conversions": 425}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.json"), []byte(export), 0644))

	data := []byte(`
experiments:
  - name: hero-banner
    source:
      file: export.json
      control: {conversions: "$.variants[0].conversions", total: "$.variants[0].users"}
      treatment: {conversions: "$.variants[1].conversions", total: "$.variants[1].users"}
`)
	p, err := config.ParsePlan(data, "plan.yaml")
	require.NoError(t, err)
	assert.Zero(t, p.Experiments[0].Control.Total)

	require.NoError(t, config.ResolveSources(p, dir))
	assert.Equal(t, int64(358), p.Experiments[0].Control.Conversions)
	assert.Equal(t, int64(4216), p.Experiments[0].Treatment.Total)

	results, err := config.Evaluate(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0119, results[0].PValue)
}
