package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/abstat/internal/metrics"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format: %s (want text, json or yaml)", s)
}

// FormatProvider renders analysis results.
type FormatProvider interface {
	FormatSignificance(report SignificanceReport) string
	FormatPower(report PowerReport) string
	FormatTTest(report TTestReport) string
	FormatBootstrap(report BootstrapReport) string
}

// SignificanceReport is a z-test result together with its display labels.
type SignificanceReport struct {
	Name          string                    `json:"name,omitempty" yaml:"name,omitempty"`
	Control       stats.ProportionSample    `json:"control" yaml:"control"`
	Treatment     stats.ProportionSample    `json:"treatment" yaml:"treatment"`
	Result        *stats.SignificanceResult `json:"result" yaml:"result"`
	PValueDisplay string                    `json:"pValueDisplay" yaml:"pValueDisplay"`
	Badge         stats.SignificanceBadge   `json:"badge" yaml:"badge"`
}

// NewSignificanceReport attaches the formatted p-value and badge to res.
// Both are derived from the rounded PValue, while res.IsSignificant uses the
// unrounded p, so a p just below 0.05 is IsSignificant yet shown as "0.05"
// with a Marginally Significant badge. The text formatter follows the badge.
func NewSignificanceReport(name string, control, treatment stats.ProportionSample, res *stats.SignificanceResult) SignificanceReport {
	return SignificanceReport{
		Name:          name,
		Control:       control,
		Treatment:     treatment,
		Result:        res,
		PValueDisplay: stats.FormatPValue(res.PValue),
		Badge:         stats.ClassifySignificance(res.PValue),
	}
}

// PowerReport is a sample-size result.
type PowerReport struct {
	Name   string                     `json:"name,omitempty" yaml:"name,omitempty"`
	Result *stats.PowerAnalysisResult `json:"result" yaml:"result"`
}

// TTestReport is a t-test result together with arm summaries and display
// labels.
type TTestReport struct {
	Name          string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Control       metrics.Summary         `json:"control" yaml:"control"`
	Treatment     metrics.Summary         `json:"treatment" yaml:"treatment"`
	Result        *stats.TTestResult      `json:"result" yaml:"result"`
	PValueDisplay string                  `json:"pValueDisplay" yaml:"pValueDisplay"`
	Badge         stats.SignificanceBadge `json:"badge" yaml:"badge"`
}

// NewTTestReport attaches the formatted p-value and badge to res. As with
// NewSignificanceReport, the badge follows the rounded PValue.
func NewTTestReport(name string, control, treatment metrics.Summary, res *stats.TTestResult) TTestReport {
	return TTestReport{
		Name:          name,
		Control:       control,
		Treatment:     treatment,
		Result:        res,
		PValueDisplay: stats.FormatPValue(res.PValue),
		Badge:         stats.ClassifySignificance(res.PValue),
	}
}

// BootstrapReport is a bootstrap lift interval.
type BootstrapReport struct {
	Name   string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Result *stats.BootstrapResult `json:"result" yaml:"result"`
}

// GetFormatter returns the formatter for format; unknown formats fall back to text.
func GetFormatter(format OutputFormat, verbose, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return NewFormatter(verbose, noColor)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) marshal(v interface{}) string {
	var out []byte
	var err error
	if f.Pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal result: %s"}`, err)
	}
	return string(out) + "\n"
}

// FormatSignificance formats a z-test report as JSON
func (f *JSONFormatter) FormatSignificance(report SignificanceReport) string {
	return f.marshal(report)
}

// FormatPower formats a sample-size report as JSON
func (f *JSONFormatter) FormatPower(report PowerReport) string {
	return f.marshal(report)
}

// FormatTTest formats a t-test report as JSON
func (f *JSONFormatter) FormatTTest(report TTestReport) string {
	return f.marshal(report)
}

// FormatBootstrap formats a bootstrap report as JSON
func (f *JSONFormatter) FormatBootstrap(report BootstrapReport) string {
	return f.marshal(report)
}

// YAMLFormatter formats output as YAML documents
type YAMLFormatter struct{}

func (f *YAMLFormatter) marshal(v interface{}) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: failed to marshal result: %s\n", err)
	}
	return "---\n" + string(out)
}

// FormatSignificance formats a z-test report as YAML
func (f *YAMLFormatter) FormatSignificance(report SignificanceReport) string {
	return f.marshal(report)
}

// FormatPower formats a sample-size report as YAML
func (f *YAMLFormatter) FormatPower(report PowerReport) string {
	return f.marshal(report)
}

// FormatTTest formats a t-test report as YAML
func (f *YAMLFormatter) FormatTTest(report TTestReport) string {
	return f.marshal(report)
}

// FormatBootstrap formats a bootstrap report as YAML
func (f *YAMLFormatter) FormatBootstrap(report BootstrapReport) string {
	return f.marshal(report)
}
