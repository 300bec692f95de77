// Package stats provides the statistical core for two-group (control vs.
// treatment) experiment analysis.
//
// Every function in this package is a pure computation over numeric
// summaries supplied by the caller. Nothing is cached and nothing is shared,
// so all functions are safe to call concurrently.
//
// # Significance
//
// EvaluateSignificance runs a pooled two-proportion z-test:
//
//	res, err := stats.EvaluateSignificance(358, 4216, 425, 4216)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("lift %.2f%%, p = %s (%s)\n",
//	    res.LiftPercent, stats.FormatPValue(res.PValue),
//	    stats.ClassifySignificance(res.PValue).Label)
//
// # Sample size
//
// ComputeSampleSize answers how many users each variant needs:
//
//	plan, _ := stats.ComputeSampleSize(0.10, 0.05, stats.DefaultAlpha, stats.DefaultPower)
//	fmt.Println(plan.SampleSizePerVariant)
//
// # Rounding
//
// Results are rounded once, when the result struct is built: 2 decimal
// places for rates, lift and interval bounds, 4 for test statistics and
// p-values. All intermediate arithmetic runs at full precision.
//
// # Errors
//
// Precondition violations are reported as errors wrapping ErrInvalidInput.
// Numerically degenerate but valid inputs (for example zero conversions in
// both arms) are not errors; see EvaluateSignificance.
package stats
