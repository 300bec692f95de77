package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Coefficients of the Abramowitz & Stegun 26.2.17 approximation.
const (
	asP  = 0.2316419
	asB1 = 0.319381530
	asB2 = -0.356563782
	asB3 = 1.781477937
	asB4 = -1.821255978
	asB5 = 1.330274429
)

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// NormalCDF returns the probability that a standard normal variable is <= x.
//
// It uses the Zelen & Severo polynomial (Abramowitz & Stegun 26.2.17), whose
// absolute error is below 7.5e-8. The approximation is evaluated on |x| and
// reflected, so NormalCDF(-x) == 1-NormalCDF(x) and NormalCDF(0) == 0.5.
// Far in the tails the result saturates to exactly 0 or 1.
func NormalCDF(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x == 0 {
		return 0.5
	}

	ax := math.Abs(x)
	t := 1 / (1 + asP*ax)
	d := invSqrt2Pi * math.Exp(-ax*ax/2)
	tail := d * t * (asB1 + t*(asB2+t*(asB3+t*(asB4+t*asB5))))

	if x > 0 {
		return 1 - tail
	}
	return tail
}

// NormalQuantile returns the inverse of the standard normal CDF, i.e. the z
// for which P(Z <= z) == p. p must lie strictly between 0 and 1.
func NormalQuantile(p float64) (float64, error) {
	if !inOpenUnit(p) {
		return 0, invalidf("quantile probability must be in (0,1), got %v", p)
	}
	return distuv.UnitNormal.Quantile(p), nil
}

// twoTailedPValue returns 2*(1-Φ(|z|)) clamped to [0,1].
func twoTailedPValue(z float64) float64 {
	p := 2 * (1 - NormalCDF(math.Abs(z)))
	return math.Min(1, math.Max(0, p))
}
