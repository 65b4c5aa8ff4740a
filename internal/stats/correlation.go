package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidAlpha is returned when a significance level is outside (0, 1).
var ErrInvalidAlpha = errors.New("significance level must be in (0, 1)")

// Correlation is the result of a Pearson correlation test between two
// continuous columns.
type Correlation struct {
	// R is the Pearson correlation coefficient.
	R float64 `json:"r"`

	// N is the number of paired observations.
	N int `json:"n"`

	// TStat is the t statistic for the null hypothesis r = 0.
	TStat float64 `json:"t_stat"`

	// PValue is the two-sided p-value on n-2 degrees of freedom.
	PValue float64 `json:"p_value"`

	// Alpha is the significance level the interval was built at.
	Alpha float64 `json:"alpha"`

	// CILower and CIUpper bound the Fisher-z confidence interval for r.
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Significant reports whether the correlation is significant at its alpha.
func (c Correlation) Significant() bool {
	return c.PValue < c.Alpha
}

// Pearson computes the Pearson correlation between x and y with a two-sided
// t-test p-value and a Fisher-z confidence interval at level 1-alpha.
//
// It returns ErrInsufficientData for fewer than three pairs (the t statistic
// needs n-2 > 0) and ErrInvalidAlpha for a significance level outside (0, 1).
//
// Edge case: when |r| = 1 the t statistic is infinite; we report a zero
// p-value and a degenerate interval at r rather than failing, since exact
// collinearity is a legitimate (if suspicious) input.
func Pearson(x, y []float64, alpha float64) (Correlation, error) {
	if len(x) != len(y) {
		return Correlation{}, errors.New("pearson: column length mismatch")
	}
	if len(x) < 3 {
		return Correlation{}, ErrInsufficientData
	}
	if alpha <= 0 || alpha >= 1 {
		return Correlation{}, ErrInvalidAlpha
	}

	n := len(x)
	r := stat.Correlation(x, y, nil)
	c := Correlation{R: r, N: n, Alpha: alpha}

	if math.Abs(r) >= 1 {
		c.TStat = math.Inf(int(math.Copysign(1, r)))
		c.PValue = 0
		c.CILower, c.CIUpper = r, r
		return c, nil
	}

	// t statistic on n-2 degrees of freedom.
	df := float64(n - 2)
	c.TStat = r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	c.PValue = 2 * tDist.CDF(-math.Abs(c.TStat))

	// Fisher z interval. The transform needs n > 3 for a finite standard
	// error; with exactly three pairs the interval collapses to (-1, 1).
	if n > 3 {
		z := math.Atanh(r)
		se := 1 / math.Sqrt(float64(n-3))
		zCrit := distuv.UnitNormal.Quantile(1 - alpha/2)
		c.CILower = math.Tanh(z - zCrit*se)
		c.CIUpper = math.Tanh(z + zCrit*se)
	} else {
		c.CILower, c.CIUpper = -1, 1
	}
	return c, nil
}
