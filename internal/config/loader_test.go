package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlPlan = `
name: checkout
settings:
  alpha: 0.05
  power: 0.9
experiments:
  - name: hero-banner
    description: new hero copy
    control: {conversions: 358, total: 4216}
    treatment: {conversions: 425, total: 4216}
plans:
  - name: pricing-page
    baselineRate: 0.10
    mde: 0.05
  - name: strict
    baselineRate: 0.10
    mde: 0.05
    alpha: 0.01
    power: 0.8
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Error creating test file: %v", err)
	}
	return path
}

func TestLoadPlan_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", yamlPlan)

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("Error loading plan: %v", err)
	}

	if plan.Name != "checkout" {
		t.Errorf("Expected name checkout, got %s", plan.Name)
	}
	if len(plan.Experiments) != 1 {
		t.Fatalf("Expected 1 experiment, got %d", len(plan.Experiments))
	}

	exp := plan.Experiments[0]
	if exp.Control.Conversions != 358 || exp.Control.Total != 4216 {
		t.Errorf("Unexpected control sample: %+v", exp.Control)
	}
	if exp.Treatment.Conversions != 425 || exp.Treatment.Total != 4216 {
		t.Errorf("Unexpected treatment sample: %+v", exp.Treatment)
	}

	if len(plan.SampleSizes) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(plan.SampleSizes))
	}
	pricing := plan.SampleSizes[0]
	if got := pricing.EffectiveAlpha(plan.Settings); got != 0.05 {
		t.Errorf("Expected alpha from settings 0.05, got %v", got)
	}
	if got := pricing.EffectivePower(plan.Settings); got != 0.9 {
		t.Errorf("Expected power from settings 0.9, got %v", got)
	}
	strict := plan.SampleSizes[1]
	if got := strict.EffectiveAlpha(plan.Settings); got != 0.01 {
		t.Errorf("Expected own alpha 0.01, got %v", got)
	}
	if got := strict.EffectivePower(plan.Settings); got != 0.8 {
		t.Errorf("Expected own power 0.8, got %v", got)
	}

	if errs := ValidatePlan(plan); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestLoadPlan_JSON(t *testing.T) {
	content := `{
		"plans": [
			{"name": "signup", "baselineRate": 0.2, "mde": 0.1}
		]
	}`
	path := writeFile(t, t.TempDir(), "plan.json", content)

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("Error loading plan: %v", err)
	}
	if len(plan.SampleSizes) != 1 {
		t.Fatalf("Expected 1 plan, got %d", len(plan.SampleSizes))
	}
	p := plan.SampleSizes[0]
	if p.EffectiveAlpha(plan.Settings) != 0.05 || p.EffectivePower(plan.Settings) != 0.8 {
		t.Errorf("Expected library defaults, got alpha=%v power=%v",
			p.EffectiveAlpha(plan.Settings), p.EffectivePower(plan.Settings))
	}
}

func TestLoadPlan_Source(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.json", `{
		"variants": [
			{"name": "control", "users": 10000, "conversions": 850},
			{"name": "treatment", "users": 10000, "conversions": 950}
		]
	}`)
	path := writeFile(t, dir, "plan.yaml", `
experiments:
  - name: exported
    source:
      file: export.json
      control:
        conversions: $.variants[0].conversions
        total: $.variants[0].users
      treatment:
        conversions: $.variants[1].conversions
        total: $.variants[1].users
`)

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("Error loading plan: %v", err)
	}
	exp := plan.Experiments[0]
	if exp.Control.Conversions != 850 || exp.Control.Total != 10000 {
		t.Errorf("Unexpected control sample: %+v", exp.Control)
	}
	if exp.Treatment.Conversions != 950 || exp.Treatment.Total != 10000 {
		t.Errorf("Unexpected treatment sample: %+v", exp.Treatment)
	}
}

func TestLoadPlan_SourceErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.json", `{"control": {"n": 100}}`)

	missingFile := writeFile(t, dir, "missing.yaml", `
experiments:
  - name: x
    source:
      file: nope.json
      control: {conversions: $.a, total: $.b}
      treatment: {conversions: $.a, total: $.b}
`)
	if _, err := LoadPlan(missingFile); err == nil || !strings.Contains(err.Error(), "failed to read source") {
		t.Errorf("Expected source read error, got %v", err)
	}

	missingPath := writeFile(t, dir, "badpath.yaml", `
experiments:
  - name: x
    source:
      file: export.json
      control: {conversions: $.control.c, total: $.control.n}
      treatment: {conversions: $.control.c, total: $.control.n}
`)
	if _, err := LoadPlan(missingPath); err == nil || !strings.Contains(err.Error(), "path not found") {
		t.Errorf("Expected path not found error, got %v", err)
	}
}

func TestLoadPlan_FileNotFound(t *testing.T) {
	_, err := LoadPlan("non-existent-file.yaml")
	if err == nil {
		t.Errorf("Expected error for non-existent file, got nil")
	}
}

func TestParsePlan_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"invalid JSON", "plan.json", `{ this is not valid json }`, "failed to parse JSON config"},
		{"invalid YAML", "plan.yaml", "experiments: [", "failed to parse YAML config"},
		{"empty plan", "plan.yaml", "name: nothing", "does not match schema"},
		{"unknown field", "plan.yaml", "plans: [{name: a, baselineRate: 0.1, mde: 0.1, beta: 2}]", "does not match schema"},
		{"baseline of one", "plan.yaml", "plans: [{name: a, baselineRate: 1, mde: 0.1}]", "does not match schema"},
		{"zero effect", "plan.yaml", "plans: [{name: a, baselineRate: 0.1, mde: 0}]", "does not match schema"},
		{"zero total", "plan.yaml", "experiments: [{name: a, control: {conversions: 0, total: 0}, treatment: {conversions: 0, total: 1}}]", "does not match schema"},
		{"missing treatment", "plan.yaml", "experiments: [{name: a, control: {conversions: 1, total: 2}}]", "does not match schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.content), tt.path)
			if err == nil {
				t.Fatalf("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
