package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidCount is returned when the cohort size is not positive.
	// A zero or negative cohort cannot be generated or analyzed.
	ErrInvalidCount = errors.New("invalid count: must be positive")

	// ErrInvalidAlpha is returned when the significance level is outside
	// the open interval (0, 1).
	ErrInvalidAlpha = errors.New("invalid alpha: must be between 0 and 1 exclusive")

	// ErrInvalidPrecision is returned when the dataset decimal precision
	// is negative or implausibly large.
	ErrInvalidPrecision = errors.New("invalid precision: must be between 0 and 10")

	// ErrNoDatasetPath is returned when no dataset output path is set.
	ErrNoDatasetPath = errors.New("no dataset path specified")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
