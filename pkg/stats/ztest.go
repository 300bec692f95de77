package stats

import "math"

const (
	// SignificanceThreshold is the fixed two-tailed alpha used by
	// EvaluateSignificance.
	SignificanceThreshold = 0.05

	// waldZ95 is the critical value of the per-arm 95% Wald interval.
	waldZ95 = 1.96

	confidenceLevel95 = 95
)

// Interval is a [lower, upper] pair. It encodes as a two-element array.
type Interval [2]float64

// Lower returns the lower bound.
func (i Interval) Lower() float64 { return i[0] }

// Upper returns the upper bound.
func (i Interval) Upper() float64 { return i[1] }

// Contains reports whether v lies within the closed interval.
func (i Interval) Contains(v float64) bool { return v >= i[0] && v <= i[1] }

// ProportionSample is the observed outcome of one experiment arm.
type ProportionSample struct {
	Conversions int64 `json:"conversions" yaml:"conversions"`
	Total       int64 `json:"total" yaml:"total"`
}

// Validate checks 0 <= Conversions <= Total and Total > 0.
func (s ProportionSample) Validate() error {
	if s.Total <= 0 {
		return invalidf("total must be positive, got %d", s.Total)
	}
	if s.Conversions < 0 {
		return invalidf("conversions must be non-negative, got %d", s.Conversions)
	}
	if s.Conversions > s.Total {
		return invalidf("conversions (%d) exceed total (%d)", s.Conversions, s.Total)
	}
	return nil
}

// Rate returns Conversions/Total. Call Validate first.
func (s ProportionSample) Rate() float64 {
	return float64(s.Conversions) / float64(s.Total)
}

// SignificanceResult is the outcome of a two-proportion z-test. Rates, lift
// and interval bounds are percentages rounded to 2 places; ZScore and PValue
// are rounded to 4 places.
type SignificanceResult struct {
	TestType        string   `json:"testType" yaml:"testType"`
	ControlRate     float64  `json:"controlRate" yaml:"controlRate"`
	TreatmentRate   float64  `json:"treatmentRate" yaml:"treatmentRate"`
	LiftPercent     float64  `json:"liftPercent" yaml:"liftPercent"`
	ZScore          float64  `json:"zScore" yaml:"zScore"`
	PValue          float64  `json:"pValue" yaml:"pValue"`
	IsSignificant   bool     `json:"isSignificant" yaml:"isSignificant"`
	ConfidenceLevel int      `json:"confidenceLevel" yaml:"confidenceLevel"`
	ControlCI       Interval `json:"controlCi" yaml:"controlCi,flow"`
	TreatmentCI     Interval `json:"treatmentCi" yaml:"treatmentCi,flow"`
}

// EvaluateSignificance compares two observed conversion rates with a pooled
// two-proportion z-test.
//
// When the pooled proportion is exactly 0 or 1 the standard error is zero;
// the result then reports ZScore 0 and PValue 1 instead of failing. When the
// control rate is zero LiftPercent is reported as 0.
func EvaluateSignificance(controlConversions, controlTotal, treatmentConversions, treatmentTotal int64) (*SignificanceResult, error) {
	return CompareSamples(
		ProportionSample{Conversions: controlConversions, Total: controlTotal},
		ProportionSample{Conversions: treatmentConversions, Total: treatmentTotal},
	)
}

// CompareSamples is EvaluateSignificance over ProportionSample values.
func CompareSamples(control, treatment ProportionSample) (*SignificanceResult, error) {
	if err := control.Validate(); err != nil {
		return nil, wrapArm("control", err)
	}
	if err := treatment.Validate(); err != nil {
		return nil, wrapArm("treatment", err)
	}

	pControl := control.Rate()
	pTreatment := treatment.Rate()
	nControl := float64(control.Total)
	nTreatment := float64(treatment.Total)

	// Sum in float64; the int64 sum of two valid counts can overflow.
	pooled := (float64(control.Conversions) + float64(treatment.Conversions)) / (nControl + nTreatment)
	se := math.Sqrt(pooled * (1 - pooled) * (1/nControl + 1/nTreatment))

	zScore := 0.0
	pValue := 1.0
	if se > 0 {
		zScore = (pTreatment - pControl) / se
		pValue = twoTailedPValue(zScore)
	}

	lift := 0.0
	if pControl > 0 {
		lift = (pTreatment - pControl) / pControl * 100
	}

	return &SignificanceResult{
		TestType:        "z_test",
		ControlRate:     round2(pControl * 100),
		TreatmentRate:   round2(pTreatment * 100),
		LiftPercent:     round2(lift),
		ZScore:          round4(zScore),
		PValue:          round4(pValue),
		IsSignificant:   pValue < SignificanceThreshold,
		ConfidenceLevel: confidenceLevel95,
		ControlCI:       waldInterval(pControl, nControl),
		TreatmentCI:     waldInterval(pTreatment, nTreatment),
	}, nil
}

// waldInterval returns the unpooled 95% interval for one arm, in percentage
// points, with each bound rounded independently.
func waldInterval(rate, n float64) Interval {
	margin := waldZ95 * math.Sqrt(rate*(1-rate)/n) * 100
	center := rate * 100
	return Interval{round2(center - margin), round2(center + margin)}
}

func wrapArm(arm string, err error) error {
	return &ArmError{Arm: arm, Err: err}
}

// ArmError identifies which experiment arm failed validation.
type ArmError struct {
	Arm string
	Err error
}

func (e *ArmError) Error() string { return e.Arm + ": " + e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ArmError) Unwrap() error { return e.Err }
