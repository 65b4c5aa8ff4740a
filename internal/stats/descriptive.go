package stats

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when a routine receives fewer observations
// than it needs to produce a defined result (e.g. correlation on fewer than
// three points, or a t-test group with fewer than two members).
var ErrInsufficientData = errors.New("insufficient data for statistic")

// Descriptive is a summary of one continuous column.
type Descriptive struct {
	// N is the number of observations.
	N int `json:"n"`

	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`

	// StdDev is the sample standard deviation (n-1 divisor).
	StdDev float64 `json:"std_dev"`

	// Min is the smallest observation.
	Min float64 `json:"min"`

	// Q1 is the first quartile (empirical quantile).
	Q1 float64 `json:"q1"`

	// Median is the second quartile.
	Median float64 `json:"median"`

	// Q3 is the third quartile.
	Q3 float64 `json:"q3"`

	// Max is the largest observation.
	Max float64 `json:"max"`
}

// Describe summarizes one continuous column.
// It returns ErrInsufficientData when the column is empty.
//
// Design decision: quartiles use gonum's empirical quantile definition
// rather than interpolation so that small cohorts (the typical few hundred
// rows) report values that actually occur in the data.
func Describe(xs []float64) (Descriptive, error) {
	if len(xs) == 0 {
		return Descriptive{}, ErrInsufficientData
	}

	// stat.Quantile requires sorted input; sort a copy to keep the
	// caller's column untouched.
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	d := Descriptive{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(xs) > 1 {
		d.StdDev = stat.StdDev(xs, nil)
	}
	return d, nil
}

// Proportion summarizes a boolean outcome as a rate.
type Proportion struct {
	// Successes is the number of true outcomes.
	Successes int `json:"successes"`

	// N is the total number of trials.
	N int `json:"n"`

	// Rate is Successes / N, or zero when N is zero.
	Rate float64 `json:"rate"`
}

// NewProportion builds a Proportion, guarding the zero-trial case.
func NewProportion(successes, n int) Proportion {
	p := Proportion{Successes: successes, N: n}
	if n > 0 {
		p.Rate = float64(successes) / float64(n)
	}
	return p
}

// QuartileSplit returns the observations of ys whose paired xs value falls
// in the bottom quartile and top quartile of xs respectively. The two
// slices must have equal length. It is used for the usage-quartile
// loneliness contrast.
func QuartileSplit(xs, ys []float64) (bottom, top []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, errors.New("quartile split: column length mismatch")
	}
	if len(xs) < 4 {
		return nil, nil, ErrInsufficientData
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)

	for i, x := range xs {
		switch {
		case x <= q1:
			bottom = append(bottom, ys[i])
		case x >= q3:
			top = append(top, ys[i])
		}
	}
	return bottom, top, nil
}
