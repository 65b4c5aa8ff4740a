// Package main provides the entry point for the cohortsim CLI.
//
// cohortsim simulates a synthetic cohort correlating social-media usage with
// mental-health indicators, persists it as a delimited dataset, and reports
// descriptive statistics, correlation tests, and group comparisons.
//
// Usage:
//
//	cohortsim generate
//	cohortsim analyze <dataset.csv>
//
// See --help for all available options.
package main

// main is the entry point for cohortsim.
func main() {
	Execute()
}
