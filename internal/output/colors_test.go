package output

import (
	"os"
	"testing"

	"github.com/wesleyorama2/abstat/pkg/stats"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default":  DefaultColorScheme(),
		"no color": NoColorScheme(),
	} {
		if scheme.Title == nil || scheme.Label == nil || scheme.Value == nil ||
			scheme.Positive == nil || scheme.Negative == nil || scheme.Highlight == nil || scheme.Muted == nil {
			t.Errorf("%s scheme has nil colors", name)
		}
		for _, tier := range []stats.SignificanceTier{
			stats.TierNotSignificant, stats.TierMarginal, stats.TierSignificant, stats.TierHighlySignificant,
		} {
			if scheme.Badge(tier) == nil {
				t.Errorf("%s scheme has no badge color for %v", name, tier)
			}
		}
	}
}

func TestNoColorScheme_PlainText(t *testing.T) {
	scheme := NoColorScheme()
	if got := scheme.Highlight.Sprint("57,763"); got != "57,763" {
		t.Errorf("NoColorScheme should not add escape codes, got %q", got)
	}
	if got := scheme.Badge(stats.TierSignificant).Sprint("Significant"); got != "Significant" {
		t.Errorf("badge should be plain, got %q", got)
	}
}

func TestColorScheme_Signed(t *testing.T) {
	scheme := DefaultColorScheme()
	if scheme.Signed(1) != scheme.Positive {
		t.Error("positive values should use Positive")
	}
	if scheme.Signed(-1) != scheme.Negative {
		t.Error("negative values should use Negative")
	}
	if scheme.Signed(0) != scheme.Value {
		t.Error("zero should use Value")
	}
	if scheme.Badge(stats.SignificanceTier(99)) != scheme.Value {
		t.Error("unknown tiers should fall back to Value")
	}
}

func TestIcons(t *testing.T) {
	if SuccessIcon(true) != "✓" || ErrorIcon(true) != "✗" || WarningIcon(true) != "⚠" {
		t.Error("plain icons should not contain color codes")
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
