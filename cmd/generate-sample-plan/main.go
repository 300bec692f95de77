package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/abstat/internal/config"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

func main() {
	outputPath := "sample-plan.yaml"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	data, err := renderPlan(createSamplePlan())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample plan generated: %s\n", outputPath)
}

// renderPlan encodes plan as YAML and checks that it loads back cleanly.
func renderPlan(plan *config.Plan) ([]byte, error) {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return nil, err
	}

	parsed, err := config.ParsePlan(data, "sample-plan.yaml")
	if err != nil {
		return nil, err
	}
	if errs := config.ValidatePlan(parsed); len(errs) > 0 {
		return nil, fmt.Errorf("generated plan is invalid: %v", errs[0])
	}
	return data, nil
}

func createSamplePlan() *config.Plan {
	power := 0.9

	return &config.Plan{
		Name: "checkout-q3",
		Settings: config.Settings{
			Power: &power,
		},
		Experiments: []config.Experiment{
			{
				Name:        "hero-banner",
				Description: "New hero copy on the landing page",
				Control:     stats.ProportionSample{Conversions: 358, Total: 4216},
				Treatment:   stats.ProportionSample{Conversions: 425, Total: 4216},
			},
			{
				Name:        "cta-color",
				Description: "Green instead of blue checkout button",
				Control:     stats.ProportionSample{Conversions: 120, Total: 1000},
				Treatment:   stats.ProportionSample{Conversions: 118, Total: 1000},
			},
		},
		SampleSizes: []config.SampleSizePlan{
			{Name: "pricing-page", BaselineRate: 0.10, MDE: 0.05},
			{Name: "signup-flow", BaselineRate: 0.032, MDE: 0.15},
		},
	}
}
