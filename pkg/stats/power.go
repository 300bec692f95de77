package stats

import "math"

const (
	// DefaultAlpha is the two-tailed significance level used when none is given.
	DefaultAlpha = 0.05
	// DefaultPower is the target power (1-β) used when none is given.
	DefaultPower = 0.80
)

// PowerAnalysisResult is the per-variant sample size needed to detect a
// relative effect. Rates and MDE are percentages rounded to 2 places.
type PowerAnalysisResult struct {
	BaselineRatePercent          float64 `json:"baselineRate" yaml:"baselineRate"`
	ExpectedTreatmentRatePercent float64 `json:"expectedTreatmentRate" yaml:"expectedTreatmentRate"`
	MDEPercent                   float64 `json:"mdePercent" yaml:"mdePercent"`
	Alpha                        float64 `json:"alpha" yaml:"alpha"`
	Power                        float64 `json:"power" yaml:"power"`
	SampleSizePerVariant         int64   `json:"sampleSizePerVariant" yaml:"sampleSizePerVariant"`
	TotalSampleSize              int64   `json:"totalSampleSize" yaml:"totalSampleSize"`
}

// ComputeSampleSizeDefault is ComputeSampleSize at DefaultAlpha and DefaultPower.
func ComputeSampleSizeDefault(baselineRate, mde float64) (*PowerAnalysisResult, error) {
	return ComputeSampleSize(baselineRate, mde, DefaultAlpha, DefaultPower)
}

// ComputeSampleSize returns the minimum number of samples per variant needed
// to detect a relative change of mde over baselineRate with a two-tailed test
// at the given alpha and power.
//
// The critical values come from the exact normal quantile, so any alpha and
// power in (0,1) are supported. For alpha 0.05 and power 0.80 they are
// 1.959964 and 0.841621.
func ComputeSampleSize(baselineRate, mde, alpha, power float64) (*PowerAnalysisResult, error) {
	if !inOpenUnit(baselineRate) {
		return nil, invalidf("baseline rate must be in (0,1), got %v", baselineRate)
	}
	if !isFinite(mde) {
		return nil, invalidf("minimum detectable effect must be finite, got %v", mde)
	}
	if !inOpenUnit(alpha) {
		return nil, invalidf("alpha must be in (0,1), got %v", alpha)
	}
	if !inOpenUnit(power) {
		return nil, invalidf("power must be in (0,1), got %v", power)
	}

	treatmentRate := baselineRate * (1 + mde)
	if !inOpenUnit(treatmentRate) {
		return nil, invalidf("implied treatment rate %v is outside (0,1)", treatmentRate)
	}

	denominator := math.Pow(treatmentRate-baselineRate, 2)
	if denominator == 0 {
		return nil, invalidf("minimum detectable effect must be non-zero")
	}

	zAlpha, err := NormalQuantile(1 - alpha/2)
	if err != nil {
		return nil, err
	}
	zBeta, err := NormalQuantile(power)
	if err != nil {
		return nil, err
	}

	pooled := (baselineRate + treatmentRate) / 2
	numerator := math.Pow(
		zAlpha*math.Sqrt(2*pooled*(1-pooled))+
			zBeta*math.Sqrt(baselineRate*(1-baselineRate)+treatmentRate*(1-treatmentRate)),
		2,
	)

	perVariant := math.Ceil(numerator / denominator)
	if !isFinite(perVariant) || perVariant > math.MaxInt64/2 {
		return nil, invalidf("required sample size overflows (effect too small)")
	}
	n := int64(perVariant)
	if n < 1 {
		n = 1
	}

	return &PowerAnalysisResult{
		BaselineRatePercent:          round2(baselineRate * 100),
		ExpectedTreatmentRatePercent: round2(treatmentRate * 100),
		MDEPercent:                   round2(mde * 100),
		Alpha:                        alpha,
		Power:                        power,
		SampleSizePerVariant:         n,
		TotalSampleSize:              2 * n,
	}, nil
}
