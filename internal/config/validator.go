package config

import (
	"fmt"

	"github.com/wesleyorama2/abstat/pkg/stats"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidatePlan checks what the schema cannot: unique names, conversions not
// exceeding totals, and sample-size questions the calculator can answer.
// Call it after ResolveSources.
func ValidatePlan(plan *Plan) []ValidationError {
	var errors []ValidationError

	seen := make(map[string]bool)
	for i, exp := range plan.Experiments {
		path := fmt.Sprintf("experiments[%d]", i)
		if seen[exp.Name] {
			errors = append(errors, ValidationError{
				Path:    path + ".name",
				Message: fmt.Sprintf("duplicate experiment name: %s", exp.Name),
			})
		}
		seen[exp.Name] = true

		if err := exp.Control.Validate(); err != nil {
			errors = append(errors, ValidationError{Path: path + ".control", Message: err.Error()})
		}
		if err := exp.Treatment.Validate(); err != nil {
			errors = append(errors, ValidationError{Path: path + ".treatment", Message: err.Error()})
		}
	}

	seen = make(map[string]bool)
	for i, p := range plan.SampleSizes {
		path := fmt.Sprintf("plans[%d]", i)
		if seen[p.Name] {
			errors = append(errors, ValidationError{
				Path:    path + ".name",
				Message: fmt.Sprintf("duplicate plan name: %s", p.Name),
			})
		}
		seen[p.Name] = true

		_, err := stats.ComputeSampleSize(p.BaselineRate, p.MDE, p.EffectiveAlpha(plan.Settings), p.EffectivePower(plan.Settings))
		if err != nil {
			errors = append(errors, ValidationError{Path: path, Message: err.Error()})
		}
	}

	return errors
}

// FindExperiment returns the experiment with the given name.
func FindExperiment(plan *Plan, name string) (*Experiment, error) {
	for i := range plan.Experiments {
		if plan.Experiments[i].Name == name {
			return &plan.Experiments[i], nil
		}
	}
	return nil, fmt.Errorf("experiment not found: %s", name)
}

// FindSampleSizePlan returns the sample-size plan with the given name.
func FindSampleSizePlan(plan *Plan, name string) (*SampleSizePlan, error) {
	for i := range plan.SampleSizes {
		if plan.SampleSizes[i].Name == name {
			return &plan.SampleSizes[i], nil
		}
	}
	return nil, fmt.Errorf("plan not found: %s", name)
}
