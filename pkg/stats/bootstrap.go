package stats

import (
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultBootstrapIterations is the number of resamples used when
// BootstrapOptions.Iterations is zero.
const DefaultBootstrapIterations = 10000

// BootstrapOptions controls BootstrapLift.
type BootstrapOptions struct {
	// Iterations is the number of resamples; zero means DefaultBootstrapIterations.
	Iterations int
	// Seed fixes the random source. Nil seeds from the clock.
	Seed *int64
}

// BootstrapResult summarises the bootstrap distribution of relative lift, in
// percent.
type BootstrapResult struct {
	Method        string  `json:"method" yaml:"method"`
	Iterations    int     `json:"nIterations" yaml:"nIterations"`
	MedianLift    float64 `json:"medianLift" yaml:"medianLift"`
	CI95Lower     float64 `json:"ci95Lower" yaml:"ci95Lower"`
	CI95Upper     float64 `json:"ci95Upper" yaml:"ci95Upper"`
	IsSignificant bool    `json:"isSignificant" yaml:"isSignificant"`
}

// BootstrapLift estimates a 95% percentile interval for the relative lift of
// the treatment mean over the control mean by resampling both arms with
// replacement. A resample whose control mean is zero contributes a lift of 0.
// The result is significant when the interval excludes zero.
func BootstrapLift(control, treatment []float64, opts BootstrapOptions) (*BootstrapResult, error) {
	if len(control) == 0 {
		return nil, wrapArm("control", invalidf("no observations"))
	}
	if len(treatment) == 0 {
		return nil, wrapArm("treatment", invalidf("no observations"))
	}
	for i, v := range control {
		if !isFinite(v) {
			return nil, wrapArm("control", invalidf("observation %d is not finite", i))
		}
	}
	for i, v := range treatment {
		if !isFinite(v) {
			return nil, wrapArm("treatment", invalidf("observation %d is not finite", i))
		}
	}

	iters := opts.Iterations
	if iters < 0 {
		return nil, invalidf("iterations must be non-negative, got %d", iters)
	}
	if iters == 0 {
		iters = DefaultBootstrapIterations
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	lifts := make([]float64, iters)
	controlSample := make([]float64, len(control))
	treatmentSample := make([]float64, len(treatment))
	for i := 0; i < iters; i++ {
		resample(rng, control, controlSample)
		resample(rng, treatment, treatmentSample)

		controlMean := stat.Mean(controlSample, nil)
		treatmentMean := stat.Mean(treatmentSample, nil)
		if controlMean != 0 {
			lifts[i] = (treatmentMean - controlMean) / controlMean * 100
		}
	}

	sort.Float64s(lifts)
	lower := stat.Quantile(0.025, stat.LinInterp, lifts, nil)
	upper := stat.Quantile(0.975, stat.LinInterp, lifts, nil)
	median := stat.Quantile(0.5, stat.LinInterp, lifts, nil)

	return &BootstrapResult{
		Method:        "bootstrap",
		Iterations:    iters,
		MedianLift:    round2(median),
		CI95Lower:     round2(lower),
		CI95Upper:     round2(upper),
		IsSignificant: lower > 0 || upper < 0,
	}, nil
}

func resample(rng *rand.Rand, src, dst []float64) {
	for j := range dst {
		dst[j] = src[rng.Intn(len(src))]
	}
}
