package stats

import "math"

// roundTo rounds v to the given number of decimal places, half away from zero.
// Rounding is symmetric, so roundTo(-v, n) == -roundTo(v, n).
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func round2(v float64) float64 { return roundTo(v, 2) }

func round3(v float64) float64 { return roundTo(v, 3) }

func round4(v float64) float64 { return roundTo(v, 4) }
