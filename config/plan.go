package config

import (
	internal "github.com/wesleyorama2/abstat/internal/config"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

type (
	// Plan is a decoded plan file.
	Plan = internal.Plan
	// Settings holds plan-wide alpha and power defaults.
	Settings = internal.Settings
	// Experiment is one control/treatment comparison.
	Experiment = internal.Experiment
	// Source locates an experiment's counts in a JSON export.
	Source = internal.Source
	// SamplePaths are the JSONPath expressions for one arm.
	SamplePaths = internal.SamplePaths
	// SampleSizePlan is a sample-size question.
	SampleSizePlan = internal.SampleSizePlan
	// ValidationError is a semantic error at a path in the plan.
	ValidationError = internal.ValidationError
)

// LoadPlan reads, schema-checks and decodes a plan file.
func LoadPlan(path string) (*Plan, error) {
	return internal.LoadPlan(path)
}

// ParsePlan decodes plan data; path only selects the format. Source blocks
// are left unresolved, see ResolveSources.
func ParsePlan(data []byte, path string) (*Plan, error) {
	return internal.ParsePlan(data, path)
}

// ResolveSources reads the JSON exports named by experiment source blocks,
// relative to baseDir. LoadPlan does this itself; call it after ParsePlan.
func ResolveSources(plan *Plan, baseDir string) error {
	return internal.ResolveSources(plan, baseDir)
}

// ValidatePlan returns the semantic errors of plan.
func ValidatePlan(plan *Plan) []ValidationError {
	return internal.ValidatePlan(plan)
}

// Evaluate runs the z-test for every experiment of plan, in order.
func Evaluate(plan *Plan) ([]*stats.SignificanceResult, error) {
	results := make([]*stats.SignificanceResult, 0, len(plan.Experiments))
	for _, exp := range plan.Experiments {
		res, err := stats.CompareSamples(exp.Control, exp.Treatment)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// SampleSizes answers every sample-size question of plan, in order.
func SampleSizes(plan *Plan) ([]*stats.PowerAnalysisResult, error) {
	results := make([]*stats.PowerAnalysisResult, 0, len(plan.SampleSizes))
	for _, p := range plan.SampleSizes {
		res, err := stats.ComputeSampleSize(p.BaselineRate, p.MDE, p.EffectiveAlpha(plan.Settings), p.EffectivePower(plan.Settings))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
