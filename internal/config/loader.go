package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/abstat/pkg/jsonpath"
	"github.com/wesleyorama2/abstat/pkg/jsonschema"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

//go:embed schema.json
var planSchema string

// Plan is an experiment plan file: observed experiments to evaluate and
// sample-size questions to answer.
type Plan struct {
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Settings    Settings         `json:"settings,omitempty" yaml:"settings,omitempty"`
	Experiments []Experiment     `json:"experiments,omitempty" yaml:"experiments,omitempty"`
	SampleSizes []SampleSizePlan `json:"plans,omitempty" yaml:"plans,omitempty"`
}

// Settings holds plan-wide defaults for sample-size questions.
type Settings struct {
	Alpha *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Power *float64 `json:"power,omitempty" yaml:"power,omitempty"`
}

// Experiment is a single control/treatment comparison. Counts are given
// inline or read from a JSON export through Source.
type Experiment struct {
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Control     stats.ProportionSample `json:"control" yaml:"control"`
	Treatment   stats.ProportionSample `json:"treatment" yaml:"treatment"`
	Source      *Source                `json:"source,omitempty" yaml:"source,omitempty"`
}

// Source points at a JSON export holding the counts of an experiment.
type Source struct {
	File      string      `json:"file" yaml:"file"`
	Control   SamplePaths `json:"control" yaml:"control"`
	Treatment SamplePaths `json:"treatment" yaml:"treatment"`
}

// SamplePaths are JSONPath expressions locating one arm's counts.
type SamplePaths struct {
	Conversions string `json:"conversions" yaml:"conversions"`
	Total       string `json:"total" yaml:"total"`
}

// SampleSizePlan asks how many samples are needed to detect MDE (a relative
// change) on top of BaselineRate.
type SampleSizePlan struct {
	Name         string   `json:"name" yaml:"name"`
	BaselineRate float64  `json:"baselineRate" yaml:"baselineRate"`
	MDE          float64  `json:"mde" yaml:"mde"`
	Alpha        *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Power        *float64 `json:"power,omitempty" yaml:"power,omitempty"`
}

// EffectiveAlpha returns the plan's alpha, falling back to settings and
// then to stats.DefaultAlpha.
func (s SampleSizePlan) EffectiveAlpha(settings Settings) float64 {
	return firstOf(s.Alpha, settings.Alpha, stats.DefaultAlpha)
}

// EffectivePower returns the plan's power, falling back to settings and
// then to stats.DefaultPower.
func (s SampleSizePlan) EffectivePower(settings Settings) float64 {
	return firstOf(s.Power, settings.Power, stats.DefaultPower)
}

func firstOf(own, shared *float64, fallback float64) float64 {
	if own != nil {
		return *own
	}
	if shared != nil {
		return *shared
	}
	return fallback
}

// LoadPlan reads, schema-checks and decodes a plan file. Relative source
// files are resolved against the plan's directory.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	plan, err := ParsePlan(data, path)
	if err != nil {
		return nil, err
	}

	if err := ResolveSources(plan, filepath.Dir(path)); err != nil {
		return nil, err
	}
	return plan, nil
}

// ParsePlan decodes plan data. The format follows the extension of path:
// .json is JSON, anything else is YAML.
func ParsePlan(data []byte, path string) (*Plan, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var doc interface{}
	if err := unmarshal(ext, data, &doc); err != nil {
		return nil, err
	}

	schema, err := jsonschema.Compile(planSchema)
	if err != nil {
		return nil, fmt.Errorf("plan schema: %w", err)
	}
	if errs := schema.ValidateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("config does not match schema: %w", errs)
	}

	var plan Plan
	if err := unmarshal(ext, data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func unmarshal(ext string, data []byte, v interface{}) error {
	if ext == ".json" {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

// ResolveSources fills the counts of every experiment that has a Source by
// reading its JSON export.
func ResolveSources(plan *Plan, baseDir string) error {
	for i := range plan.Experiments {
		exp := &plan.Experiments[i]
		if exp.Source == nil {
			continue
		}

		file := exp.Source.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("experiment '%s': failed to read source: %w", exp.Name, err)
		}

		control, err := ReadSample(string(data), exp.Source.Control)
		if err != nil {
			return fmt.Errorf("experiment '%s': control: %w", exp.Name, err)
		}
		treatment, err := ReadSample(string(data), exp.Source.Treatment)
		if err != nil {
			return fmt.Errorf("experiment '%s': treatment: %w", exp.Name, err)
		}
		exp.Control, exp.Treatment = control, treatment
	}
	return nil
}

// ReadSample extracts one arm's counts from a JSON document.
func ReadSample(doc string, paths SamplePaths) (stats.ProportionSample, error) {
	conversions, err := jsonpath.ExtractInt(doc, paths.Conversions)
	if err != nil {
		return stats.ProportionSample{}, err
	}
	total, err := jsonpath.ExtractInt(doc, paths.Total)
	if err != nil {
		return stats.ProportionSample{}, err
	}
	return stats.ProportionSample{Conversions: conversions, Total: total}, nil
}
