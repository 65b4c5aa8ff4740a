package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTest is the result of Welch's unequal-variance two-sample t-test.
type TTest struct {
	// MeanA and MeanB are the group means.
	MeanA float64 `json:"mean_a"`
	MeanB float64 `json:"mean_b"`

	// NA and NB are the group sizes.
	NA int `json:"n_a"`
	NB int `json:"n_b"`

	// Diff is MeanA - MeanB.
	Diff float64 `json:"diff"`

	// TStat is Welch's t statistic.
	TStat float64 `json:"t_stat"`

	// DF is the Welch-Satterthwaite degrees of freedom.
	DF float64 `json:"df"`

	// PValue is the two-sided p-value.
	PValue float64 `json:"p_value"`

	// Alpha is the significance level the interval was built at.
	Alpha float64 `json:"alpha"`

	// CILower and CIUpper bound the confidence interval for the mean
	// difference.
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Significant reports whether the mean difference is significant at alpha.
func (t TTest) Significant() bool {
	return t.PValue < t.Alpha
}

// WelchT compares the means of two independent samples using Welch's
// unequal-variance t-test with Welch-Satterthwaite degrees of freedom.
//
// Design decision: Welch's test rather than Student's pooled test because
// the simulated groups (e.g. break-takers vs non-takers) differ in both
// size and variance by construction, and Welch is the safe default there.
//
// It returns ErrInsufficientData when either group has fewer than two
// observations, and ErrInvalidAlpha for a level outside (0, 1). Two groups
// with zero variance and equal means yield a zero t statistic and p = 1.
func WelchT(a, b []float64, alpha float64) (TTest, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTest{}, ErrInsufficientData
	}
	if alpha <= 0 || alpha >= 1 {
		return TTest{}, ErrInvalidAlpha
	}

	na, nb := float64(len(a)), float64(len(b))
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)

	t := TTest{
		MeanA: meanA,
		MeanB: meanB,
		NA:    len(a),
		NB:    len(b),
		Diff:  meanA - meanB,
		Alpha: alpha,
	}

	seSq := varA/na + varB/nb
	if seSq == 0 {
		// Both groups are constant. Identical means are maximally
		// unsurprising; different constant means are a sure difference.
		if t.Diff == 0 {
			t.PValue = 1
		} else {
			t.TStat = math.Inf(int(math.Copysign(1, t.Diff)))
			t.PValue = 0
		}
		t.DF = na + nb - 2
		t.CILower, t.CIUpper = t.Diff, t.Diff
		return t, nil
	}

	se := math.Sqrt(seSq)
	t.TStat = t.Diff / se

	// Welch-Satterthwaite approximation for the degrees of freedom.
	t.DF = seSq * seSq / (varA*varA/(na*na*(na-1)) + varB*varB/(nb*nb*(nb-1)))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.DF}
	t.PValue = 2 * tDist.CDF(-math.Abs(t.TStat))

	tCrit := tDist.Quantile(1 - alpha/2)
	t.CILower = t.Diff - tCrit*se
	t.CIUpper = t.Diff + tCrit*se
	return t, nil
}
