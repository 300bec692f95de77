package cli

import (
	"strings"
	"testing"
)

const planYAML = `
name: checkout
experiments:
  - name: hero-banner
    control: {conversions: 358, total: 4216}
    treatment: {conversions: 425, total: 4216}
  - name: cta-color
    control: {conversions: 120, total: 1000}
    treatment: {conversions: 118, total: 1000}
plans:
  - name: pricing-page
    baselineRate: 0.10
    mde: 0.05
`

func TestRunCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", planYAML)

	out, _, err := executeCommand(t, "run", "--config", path, "--no-color")
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}

	expectedParts := []string{
		"▶ PLAN: checkout (2 experiments, 1 sample-size plans)",
		"Z-TEST: hero-banner",
		"Z-TEST: cta-color",
		"SAMPLE SIZE: pricing-page",
		"57,763",
	}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("Expected output to contain '%s', got:\n%s", part, out)
		}
	}
}

func TestRunCommand_Filters(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", planYAML)

	out, _, err := executeCommand(t, "run", "--config", path, "--experiment", "cta-color", "--no-color")
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}
	if !strings.Contains(out, "cta-color") || strings.Contains(out, "hero-banner") || strings.Contains(out, "SAMPLE SIZE") {
		t.Errorf("Expected only cta-color, got:\n%s", out)
	}

	out, _, err = executeCommand(t, "run", "--config", path, "--plan", "pricing-page", "--format", "yaml")
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}
	if strings.Count(out, "---\n") != 1 || !strings.Contains(out, "sampleSizePerVariant: 57763") {
		t.Errorf("Expected a single sample-size document, got:\n%s", out)
	}

	_, _, err = executeCommand(t, "run", "--config", path, "--experiment", "missing")
	if err == nil || !strings.Contains(err.Error(), "experiment not found") {
		t.Errorf("Expected experiment not found error, got %v", err)
	}
}

func TestRunCommand_ValidationErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", `
experiments:
  - name: broken
    control: {conversions: 50, total: 10}
    treatment: {conversions: 5, total: 10}
`)

	_, stderr, err := executeCommand(t, "run", "--config", path)
	if err == nil {
		t.Fatal("Expected a validation error")
	}
	if !strings.Contains(stderr, "Configuration validation errors:") || !strings.Contains(stderr, "experiments[0].control") {
		t.Errorf("Expected validation errors on stderr, got:\n%s", stderr)
	}
}

func TestRunCommand_SchemaError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", "name: empty\n")

	_, _, err := executeCommand(t, "run", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "does not match schema") {
		t.Errorf("Expected schema error, got %v", err)
	}
}
