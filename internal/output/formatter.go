package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wesleyorama2/abstat/internal/metrics"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var numberPrinter = message.NewPrinter(language.English)

// Formatter renders results as human-readable text
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, NoColor: noColor, scheme: scheme}
}

func (f *Formatter) title(buf *strings.Builder, kind, name string) {
	heading := kind
	if name != "" {
		heading = fmt.Sprintf("%s: %s", kind, name)
	}
	buf.WriteString(fmt.Sprintf("▶ %s\n", f.scheme.Title.Sprint(heading)))
}

func (f *Formatter) row(buf *strings.Builder, label, value string) {
	buf.WriteString(fmt.Sprintf("  %s %s\n", f.scheme.Label.Sprintf("%-16s", label+":"), value))
}

func (f *Formatter) signedPercent(v float64) string {
	return f.scheme.Signed(v).Sprintf("%+.2f%%", v)
}

func (f *Formatter) badge(b stats.SignificanceBadge) string {
	return f.scheme.Badge(b.Tier).Sprint(b.Label)
}

// FormatSignificance formats a z-test report
func (f *Formatter) FormatSignificance(report SignificanceReport) string {
	var buf strings.Builder
	res := report.Result

	f.title(&buf, "Z-TEST", report.Name)
	f.row(&buf, "Control", fmt.Sprintf("%.2f%% (%d/%d)  95%% CI [%.2f%%, %.2f%%]",
		res.ControlRate, report.Control.Conversions, report.Control.Total,
		res.ControlCI.Lower(), res.ControlCI.Upper()))
	f.row(&buf, "Treatment", fmt.Sprintf("%.2f%% (%d/%d)  95%% CI [%.2f%%, %.2f%%]",
		res.TreatmentRate, report.Treatment.Conversions, report.Treatment.Total,
		res.TreatmentCI.Lower(), res.TreatmentCI.Upper()))
	f.row(&buf, "Lift", f.signedPercent(res.LiftPercent))
	f.row(&buf, "p-value", report.PValueDisplay)
	f.row(&buf, "Result", fmt.Sprintf("%s %s", f.verdictIcon(report.Badge.Tier >= stats.TierSignificant), f.badge(report.Badge)))

	if f.Verbose {
		f.row(&buf, "z-score", fmt.Sprintf("%.4f", res.ZScore))
		f.row(&buf, "Raw p-value", fmt.Sprintf("%.4f", res.PValue))
		f.row(&buf, "Confidence", fmt.Sprintf("%d%%", res.ConfidenceLevel))
	}
	return buf.String()
}

// FormatPower formats a sample-size report
func (f *Formatter) FormatPower(report PowerReport) string {
	var buf strings.Builder
	res := report.Result

	f.title(&buf, "SAMPLE SIZE", report.Name)
	f.row(&buf, "Baseline", fmt.Sprintf("%.2f%%", res.BaselineRatePercent))
	f.row(&buf, "Expected", fmt.Sprintf("%.2f%% (%s relative)", res.ExpectedTreatmentRatePercent, f.signedPercent(res.MDEPercent)))
	f.row(&buf, "Alpha / Power", fmt.Sprintf("%g / %g", res.Alpha, res.Power))
	f.row(&buf, "Per variant", f.scheme.Highlight.Sprint(groupThousands(res.SampleSizePerVariant)))
	f.row(&buf, "Total", groupThousands(res.TotalSampleSize))
	return buf.String()
}

// FormatTTest formats a t-test report
func (f *Formatter) FormatTTest(report TTestReport) string {
	var buf strings.Builder
	res := report.Result

	f.title(&buf, "T-TEST", report.Name)
	f.row(&buf, "Control", fmt.Sprintf("mean %.2f  sd %.2f  n=%d  95%% CI [%.2f, %.2f]",
		res.ControlMean, res.ControlStd, report.Control.N, res.ControlCI.Lower(), res.ControlCI.Upper()))
	f.row(&buf, "Treatment", fmt.Sprintf("mean %.2f  sd %.2f  n=%d  95%% CI [%.2f, %.2f]",
		res.TreatmentMean, res.TreatmentStd, report.Treatment.N, res.TreatmentCI.Lower(), res.TreatmentCI.Upper()))
	f.row(&buf, "Lift", f.signedPercent(res.LiftPercent))
	f.row(&buf, "p-value", report.PValueDisplay)
	f.row(&buf, "Result", fmt.Sprintf("%s %s", f.verdictIcon(report.Badge.Tier >= stats.TierSignificant), f.badge(report.Badge)))

	if f.Verbose {
		f.row(&buf, "t-statistic", fmt.Sprintf("%.4f", res.TStatistic))
		f.row(&buf, "Cohen's d", fmt.Sprintf("%.3f", res.CohensD))
		f.row(&buf, "Control spread", spread(report.Control))
		f.row(&buf, "Treat. spread", spread(report.Treatment))
	}
	return buf.String()
}

// FormatBootstrap formats a bootstrap report
func (f *Formatter) FormatBootstrap(report BootstrapReport) string {
	var buf strings.Builder
	res := report.Result

	f.title(&buf, "BOOTSTRAP", report.Name)
	f.row(&buf, "Median lift", f.signedPercent(res.MedianLift))
	f.row(&buf, "95% interval", fmt.Sprintf("[%+.2f%%, %+.2f%%]", res.CI95Lower, res.CI95Upper))
	verdict := "interval includes zero"
	if res.IsSignificant {
		verdict = "interval excludes zero"
	}
	f.row(&buf, "Result", fmt.Sprintf("%s %s", f.verdictIcon(res.IsSignificant), verdict))

	if f.Verbose {
		f.row(&buf, "Iterations", groupThousands(int64(res.Iterations)))
	}
	return buf.String()
}

func spread(s metrics.Summary) string {
	return fmt.Sprintf("median %.2f  IQR [%.2f, %.2f]  range [%.2f, %.2f]", s.Median, s.Q25, s.Q75, s.Min, s.Max)
}

func (f *Formatter) verdictIcon(significant bool) string {
	if significant {
		return SuccessIcon(f.NoColor)
	}
	return WarningIcon(f.NoColor)
}

// groupThousands renders n with locale separators, e.g. 57763 -> "57,763".
func groupThousands(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}
