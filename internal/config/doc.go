// Package config provides configuration structures and utilities for
// cohortsim. It defines the main options for cohort generation, dataset
// persistence, statistical analysis, and report output, plus the optional
// .cohortsim scenario file.
package config
