package metrics

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the spread of one arm's observations.
type Summary struct {
	N      int     `json:"n" yaml:"n"`
	Min    float64 `json:"min" yaml:"min"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Median float64 `json:"median" yaml:"median"`
	Q75    float64 `json:"q75" yaml:"q75"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summarize computes the five-number summary of values. Quartiles use the
// nearest-rank method.
func Summarize(values []float64) (Summary, error) {
	summary := Summary{N: len(values)}

	var err error
	if summary.Min, err = stats.Min(values); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(values); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(values); err != nil {
		return summary, err
	}
	if summary.Q25, err = stats.PercentileNearestRank(values, 25); err != nil {
		return summary, err
	}
	if summary.Q75, err = stats.PercentileNearestRank(values, 75); err != nil {
		return summary, err
	}
	return summary, nil
}
