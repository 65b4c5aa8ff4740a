package sim

import "errors"

// Generation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each failure site. This allows callers to use
// errors.Is() for programmatic handling while still providing human-readable
// messages.
var (
	// ErrInvalidCount is returned when the requested record count is not
	// positive. Generation of an empty or negative cohort is always a
	// caller bug, never a meaningful request.
	ErrInvalidCount = errors.New("invalid count: must be positive")

	// ErrInvalidParams is returned (wrapped, with detail) when simulation
	// parameters are malformed: negative noise scales, inverted clamp
	// bounds, or probabilities outside [0, 1].
	ErrInvalidParams = errors.New("invalid simulation parameters")

	// ErrUnknownPreset is returned when a named parameter preset does not
	// exist.
	ErrUnknownPreset = errors.New("unknown parameter preset")
)
