package table

import "errors"

// Table format errors.
var (
	// ErrSchemaMismatch is returned when a parsed file's header row does
	// not match the fixed column schema.
	ErrSchemaMismatch = errors.New("table schema mismatch")

	// ErrEmptyTable is returned when a parsed file contains a header but
	// no data rows. An empty cohort cannot be analyzed, so surfacing this
	// early gives a clearer diagnostic than downstream statistics errors.
	ErrEmptyTable = errors.New("table contains no data rows")

	// ErrInvalidPrecision is returned when the requested decimal precision
	// is negative.
	ErrInvalidPrecision = errors.New("invalid precision: must be non-negative")
)
