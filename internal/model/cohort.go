package model

import "fmt"

// Cohort is an ordered, read-only collection of synthetic individuals.
// A cohort is created once by the generator (or parsed back from the
// delimited table) and never mutated afterwards.
type Cohort []Individual

// Len returns the number of individuals in the cohort.
func (c Cohort) Len() int {
	return len(c)
}

// Validate checks every record against the cohort invariants.
// The first violation is returned with its record index for diagnostics.
func (c Cohort) Validate() error {
	for i := range c {
		if err := c[i].Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// DailyHours returns the daily usage column as a slice.
func (c Cohort) DailyHours() []float64 {
	return c.column(func(ind *Individual) float64 { return ind.DailyHours })
}

// Loneliness returns the loneliness column as a slice.
func (c Cohort) Loneliness() []float64 {
	return c.column(func(ind *Individual) float64 { return ind.Loneliness })
}

// Depression returns the depression column as a slice.
func (c Cohort) Depression() []float64 {
	return c.column(func(ind *Individual) float64 { return ind.Depression })
}

// Anxiety returns the anxiety column as a slice.
func (c Cohort) Anxiety() []float64 {
	return c.column(func(ind *Individual) float64 { return ind.Anxiety })
}

// column extracts one continuous field across all records.
func (c Cohort) column(get func(*Individual) float64) []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = get(&c[i])
	}
	return out
}

// Partition splits the cohort into the records matching the predicate and
// the records that do not, preserving order within each group.
//
// Design decision: Partition returns sub-cohorts rather than raw float
// slices because group comparisons need access to several columns of the
// same group (e.g. depression and anxiety of the compare-self group).
func (c Cohort) Partition(pred func(*Individual) bool) (in, out Cohort) {
	for i := range c {
		if pred(&c[i]) {
			in = append(in, c[i])
		} else {
			out = append(out, c[i])
		}
	}
	return in, out
}

// Equal reports whether two cohorts hold identical records in identical order.
func (c Cohort) Equal(other Cohort) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(&other[i]) {
			return false
		}
	}
	return true
}
