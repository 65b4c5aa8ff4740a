package model

import (
	"errors"
	"fmt"
)

// Score scale bounds shared by all bounded mental-health indicators.
// The simulated survey uses a 1-10 self-report scale for loneliness,
// depression, and anxiety.
const (
	// ScaleMin is the lowest value a bounded score can take.
	ScaleMin = 1.0

	// ScaleMax is the highest value a bounded score can take.
	ScaleMax = 10.0
)

// Daily platform usage bounds in hours per day.
const (
	// HoursMin is the lowest plausible daily usage.
	HoursMin = 0.0

	// HoursMax is the highest plausible daily usage.
	HoursMax = 12.0
)

// ErrInvariantViolation is returned by Validate when a record breaks one of
// the cohort invariants: a score outside its declared scale, usage outside
// the plausible range, or a felt-better value present without a break.
var ErrInvariantViolation = errors.New("cohort invariant violation")

// Individual is one synthetic survey respondent.
//
// All continuous fields are generated by a causal chain (usage drives
// comparison behavior, comparison and usage drive distress scores, distress
// drives break-taking) and are immutable after generation.
//
// Design decision: FeltBetter is a *bool rather than a three-valued enum
// because the "not applicable" state is structural missingness, not a third
// answer. A nil pointer serializes naturally to JSON null and to the NA
// marker in the delimited table, and forces callers to confront the missing
// case explicitly.
type Individual struct {
	// DailyHours is platform usage in hours per day, within [HoursMin, HoursMax].
	DailyHours float64 `json:"daily_hours"`

	// Loneliness is a self-report score within [ScaleMin, ScaleMax].
	Loneliness float64 `json:"loneliness"`

	// Depression is a self-report score within [ScaleMin, ScaleMax].
	Depression float64 `json:"depression"`

	// Anxiety is a self-report score within [ScaleMin, ScaleMax].
	Anxiety float64 `json:"anxiety"`

	// CompareSelf reports whether the respondent compares themselves to
	// others on the platform.
	CompareSelf bool `json:"compare_self"`

	// TookBreak reports whether the respondent took a deliberate break
	// from the platform.
	TookBreak bool `json:"took_break"`

	// FeltBetter reports whether the break helped. It is nil exactly when
	// TookBreak is false.
	FeltBetter *bool `json:"felt_better"`
}

// Validate checks the record against the cohort invariants.
// It returns an error wrapping ErrInvariantViolation describing the first
// violated invariant, or nil if the record is well formed.
func (ind *Individual) Validate() error {
	if ind.DailyHours < HoursMin || ind.DailyHours > HoursMax {
		return fmt.Errorf("%w: daily_hours %.4f outside [%.0f, %.0f]",
			ErrInvariantViolation, ind.DailyHours, HoursMin, HoursMax)
	}
	for _, score := range []struct {
		name  string
		value float64
	}{
		{"loneliness", ind.Loneliness},
		{"depression", ind.Depression},
		{"anxiety", ind.Anxiety},
	} {
		if score.value < ScaleMin || score.value > ScaleMax {
			return fmt.Errorf("%w: %s %.4f outside [%.0f, %.0f]",
				ErrInvariantViolation, score.name, score.value, ScaleMin, ScaleMax)
		}
	}

	// FeltBetter is defined if and only if a break was taken.
	if ind.TookBreak && ind.FeltBetter == nil {
		return fmt.Errorf("%w: took_break set but felt_better missing", ErrInvariantViolation)
	}
	if !ind.TookBreak && ind.FeltBetter != nil {
		return fmt.Errorf("%w: felt_better set without took_break", ErrInvariantViolation)
	}
	return nil
}

// Equal reports whether two records hold identical values.
// Pointer fields are compared by value, not identity.
func (ind *Individual) Equal(other *Individual) bool {
	if ind.DailyHours != other.DailyHours ||
		ind.Loneliness != other.Loneliness ||
		ind.Depression != other.Depression ||
		ind.Anxiety != other.Anxiety ||
		ind.CompareSelf != other.CompareSelf ||
		ind.TookBreak != other.TookBreak {
		return false
	}
	if (ind.FeltBetter == nil) != (other.FeltBetter == nil) {
		return false
	}
	if ind.FeltBetter != nil && *ind.FeltBetter != *other.FeltBetter {
		return false
	}
	return true
}
