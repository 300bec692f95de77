package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult is the outcome of an independent two-sample t-test on a
// continuous metric such as time on page or order value.
type TTestResult struct {
	TestType      string   `json:"testType" yaml:"testType"`
	ControlMean   float64  `json:"controlMean" yaml:"controlMean"`
	TreatmentMean float64  `json:"treatmentMean" yaml:"treatmentMean"`
	ControlStd    float64  `json:"controlStd" yaml:"controlStd"`
	TreatmentStd  float64  `json:"treatmentStd" yaml:"treatmentStd"`
	LiftPercent   float64  `json:"liftPercent" yaml:"liftPercent"`
	TStatistic    float64  `json:"tStatistic" yaml:"tStatistic"`
	PValue        float64  `json:"pValue" yaml:"pValue"`
	IsSignificant bool     `json:"isSignificant" yaml:"isSignificant"`
	CohensD       float64  `json:"cohensD" yaml:"cohensD"`
	ControlCI     Interval `json:"controlCi" yaml:"controlCi,flow"`
	TreatmentCI   Interval `json:"treatmentCi" yaml:"treatmentCi,flow"`
}

// EvaluateMeans runs Student's two-sample t-test (pooled variance,
// two-tailed) comparing treatment against control.
//
// Each arm needs at least two finite observations. If both arms have zero
// variance and equal means the result reports t 0 and p 1; zero variance with
// different means has no defined test statistic and is rejected.
func EvaluateMeans(control, treatment []float64) (*TTestResult, error) {
	if err := validateObservations("control", control); err != nil {
		return nil, err
	}
	if err := validateObservations("treatment", treatment); err != nil {
		return nil, err
	}

	nControl := float64(len(control))
	nTreatment := float64(len(treatment))

	meanControl, sdControl := stat.MeanStdDev(control, nil)
	meanTreatment, sdTreatment := stat.MeanStdDev(treatment, nil)

	df := nControl + nTreatment - 2
	pooledSD := math.Sqrt(((nControl-1)*sdControl*sdControl + (nTreatment-1)*sdTreatment*sdTreatment) / df)
	diff := meanTreatment - meanControl

	tStat := 0.0
	pValue := 1.0
	cohensD := 0.0
	if pooledSD > 0 {
		tStat = diff / (pooledSD * math.Sqrt(1/nControl+1/nTreatment))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		pValue = math.Min(1, 2*dist.Survival(math.Abs(tStat)))
		cohensD = diff / pooledSD
	} else if diff != 0 {
		return nil, invalidf("both arms have zero variance but different means")
	}

	lift := 0.0
	if meanControl != 0 {
		lift = diff / meanControl * 100
	}

	return &TTestResult{
		TestType:      "t_test",
		ControlMean:   round2(meanControl),
		TreatmentMean: round2(meanTreatment),
		ControlStd:    round2(sdControl),
		TreatmentStd:  round2(sdTreatment),
		LiftPercent:   round2(lift),
		TStatistic:    round4(tStat),
		PValue:        round4(pValue),
		IsSignificant: pValue < SignificanceThreshold,
		CohensD:       round3(cohensD),
		ControlCI:     tInterval(meanControl, sdControl, nControl),
		TreatmentCI:   tInterval(meanTreatment, sdTreatment, nTreatment),
	}, nil
}

// tInterval is the 95% confidence interval of a mean using the t
// distribution with n-1 degrees of freedom.
func tInterval(mean, sd, n float64) Interval {
	sem := sd / math.Sqrt(n)
	crit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}.Quantile(0.975)
	margin := crit * sem
	return Interval{round2(mean - margin), round2(mean + margin)}
}

func validateObservations(arm string, values []float64) error {
	if len(values) < 2 {
		return wrapArm(arm, invalidf("need at least 2 observations, got %d", len(values)))
	}
	for i, v := range values {
		if !isFinite(v) {
			return wrapArm(arm, invalidf("observation %d is not finite", i))
		}
	}
	return nil
}
