package interval

import "errors"

// Error kinds surfaced by this package. Callers distinguish them with
// errors.Is; every error returned here wraps exactly one of these.
var (
	// ErrInvalidValue reports a field outside its valid range, rejected at
	// construction or at scale-conversion entry.
	ErrInvalidValue = errors.New("interval: invalid value")

	// ErrPrecisionOverflow reports a leading field that exceeds
	// MaximumPrecision digits after arithmetic or a scale-conversion carry.
	ErrPrecisionOverflow = errors.New("interval: precision overflow")

	// ErrTypeMismatch reports arithmetic across the year-month and day-time
	// qualifier families.
	ErrTypeMismatch = errors.New("interval: qualifier family mismatch")

	// ErrUnsupportedType reports an unrecognized qualifier code.
	ErrUnsupportedType = errors.New("interval: unsupported qualifier")
)
