package stats

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("known column", func(t *testing.T) {
		t.Parallel()
		got, err := Describe([]float64{4, 1, 3, 2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got.N != 4 {
			t.Errorf("expected n 4, got %d", got.N)
		}
		if !almostEqual(got.Mean, 2.5) {
			t.Errorf("expected mean 2.5, got %v", got.Mean)
		}
		if !almostEqual(got.StdDev, math.Sqrt(5.0/3.0)) {
			t.Errorf("expected stddev %v, got %v", math.Sqrt(5.0/3.0), got.StdDev)
		}
		if got.Min != 1 || got.Max != 4 {
			t.Errorf("expected min 1 max 4, got %v and %v", got.Min, got.Max)
		}
		// Empirical quantiles report observed values, not interpolations.
		if got.Q1 != 1 || got.Median != 2 || got.Q3 != 3 {
			t.Errorf("expected quartiles 1/2/3, got %v/%v/%v", got.Q1, got.Median, got.Q3)
		}
	})

	t.Run("input column left unsorted", func(t *testing.T) {
		t.Parallel()
		xs := []float64{3, 1, 2}
		if _, err := Describe(xs); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
			t.Error("expected caller's column to remain unsorted")
		}
	})

	t.Run("single observation", func(t *testing.T) {
		t.Parallel()
		got, err := Describe([]float64{7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Mean != 7 || got.Min != 7 || got.Max != 7 || got.Median != 7 {
			t.Errorf("expected all summaries to equal the observation, got %+v", got)
		}
		if got.StdDev != 0 {
			t.Errorf("expected zero stddev for one observation, got %v", got.StdDev)
		}
	})

	t.Run("empty column", func(t *testing.T) {
		t.Parallel()
		_, err := Describe(nil)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData, got %v", err)
		}
	})
}

func TestNewProportion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		successes, n int
		wantRate     float64
	}{
		{"three of four", 3, 4, 0.75},
		{"none of ten", 0, 10, 0},
		{"all of five", 5, 5, 1},
		{"zero trials", 0, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewProportion(tt.successes, tt.n)
			if got.Successes != tt.successes || got.N != tt.n {
				t.Errorf("expected counts %d/%d, got %d/%d",
					tt.successes, tt.n, got.Successes, got.N)
			}
			if !almostEqual(got.Rate, tt.wantRate) {
				t.Errorf("expected rate %v, got %v", tt.wantRate, got.Rate)
			}
		})
	}
}

func TestQuartileSplit(t *testing.T) {
	t.Parallel()

	t.Run("paired columns", func(t *testing.T) {
		t.Parallel()
		xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
		ys := []float64{10, 20, 30, 40, 50, 60, 70, 80}

		bottom, top, err := QuartileSplit(xs, ys)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(bottom) != 2 || bottom[0] != 10 || bottom[1] != 20 {
			t.Errorf("expected bottom quartile [10 20], got %v", bottom)
		}
		if len(top) != 3 || top[0] != 60 || top[2] != 80 {
			t.Errorf("expected top quartile [60 70 80], got %v", top)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()
		_, _, err := QuartileSplit([]float64{1, 2, 3, 4}, []float64{1, 2})
		if err == nil {
			t.Error("expected error for mismatched columns")
		}
	})

	t.Run("too few pairs", func(t *testing.T) {
		t.Parallel()
		_, _, err := QuartileSplit([]float64{1, 2, 3}, []float64{1, 2, 3})
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData, got %v", err)
		}
	})
}
