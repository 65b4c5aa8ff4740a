// Package stats provides the descriptive statistics and hypothesis tests
// used to analyze a simulated cohort.
//
// This package contains:
//   - Describe: five-number summary plus mean and sample standard deviation
//   - Pearson: correlation with a t-based p-value and Fisher-z interval
//   - WelchT: unequal-variance two-sample comparison of means
//   - Proportion: simple rate summary for boolean outcomes
//
// Design decision: All functions take plain []float64 columns rather than
// model types so the package stays a thin, reusable layer over
// gonum.org/v1/gonum/stat and carries no domain knowledge. Column extraction
// lives on model.Cohort instead.
package stats
