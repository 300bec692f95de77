package stats

import "fmt"

// SignificanceTier orders the qualitative significance labels.
type SignificanceTier int

const (
	TierNotSignificant SignificanceTier = iota
	TierMarginal
	TierSignificant
	TierHighlySignificant
)

var tierLabels = map[SignificanceTier]string{
	TierNotSignificant:    "Not Significant",
	TierMarginal:          "Marginally Significant",
	TierSignificant:       "Significant",
	TierHighlySignificant: "Highly Significant",
}

// String returns the display label of the tier.
func (t SignificanceTier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("SignificanceTier(%d)", int(t))
}

// Variant returns the badge style a dashboard should use for the tier.
func (t SignificanceTier) Variant() string {
	switch t {
	case TierHighlySignificant, TierSignificant:
		return "default"
	case TierMarginal:
		return "secondary"
	default:
		return "outline"
	}
}

// SignificanceBadge is the display classification of a p-value.
type SignificanceBadge struct {
	Label   string           `json:"label" yaml:"label"`
	Tier    SignificanceTier `json:"tier" yaml:"tier"`
	Variant string           `json:"variant" yaml:"variant"`
}

// FormatPValue renders a p-value for display: "< 0.001" below 0.001, three
// decimals below 0.01, two decimals otherwise.
func FormatPValue(p float64) string {
	switch {
	case p < 0.001:
		return "< 0.001"
	case p < 0.01:
		return fmt.Sprintf("%.3f", p)
	default:
		return fmt.Sprintf("%.2f", p)
	}
}

// ClassifySignificance maps a p-value onto a qualitative badge.
func ClassifySignificance(p float64) SignificanceBadge {
	tier := TierNotSignificant
	switch {
	case p < 0.001:
		tier = TierHighlySignificant
	case p < SignificanceThreshold:
		tier = TierSignificant
	case p < 0.10:
		tier = TierMarginal
	}
	return SignificanceBadge{Label: tier.String(), Tier: tier, Variant: tier.Variant()}
}
