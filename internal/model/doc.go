// Package model defines the core data structures used throughout cohortsim.
//
// This package contains the following main types:
//   - Individual: One synthetic survey respondent
//   - Cohort: An ordered collection of individuals with column accessors
//   - CohortReport: The accumulated simulation and analysis result
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (sim, table, pipeline, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// to the delimited table format for dataset persistence.
package model
