package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wesleyorama2/abstat/pkg/stats"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Title     *color.Color
	Label     *color.Color
	Value     *color.Color
	Positive  *color.Color
	Negative  *color.Color
	Highlight *color.Color
	Muted     *color.Color
	Badges    map[stats.SignificanceTier]*color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:     color.New(color.FgCyan, color.Bold),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Positive:  color.New(color.FgGreen),
		Negative:  color.New(color.FgRed),
		Highlight: color.New(color.FgMagenta, color.Bold),
		Muted:     color.New(color.Faint),
		Badges: map[stats.SignificanceTier]*color.Color{
			stats.TierHighlySignificant: color.New(color.FgGreen, color.Bold),
			stats.TierSignificant:       color.New(color.FgGreen),
			stats.TierMarginal:          color.New(color.FgYellow),
			stats.TierNotSignificant:    color.New(color.FgWhite),
		},
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range []*color.Color{
		scheme.Title, scheme.Label, scheme.Value, scheme.Positive,
		scheme.Negative, scheme.Highlight, scheme.Muted,
	} {
		c.DisableColor()
	}
	for _, c := range scheme.Badges {
		c.DisableColor()
	}
	return scheme
}

// Signed picks Positive or Negative for v; zero uses Value.
func (s *ColorScheme) Signed(v float64) *color.Color {
	switch {
	case v > 0:
		return s.Positive
	case v < 0:
		return s.Negative
	default:
		return s.Value
	}
}

// Badge returns the color for a significance tier.
func (s *ColorScheme) Badge(tier stats.SignificanceTier) *color.Color {
	if c, ok := s.Badges[tier]; ok {
		return c
	}
	return s.Value
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// WarningIcon returns a warning symbol with appropriate color
func WarningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
