package interval

import "fmt"

// Precision and scale limits for intervals.
const (
	// DefaultPrecision is the default leading field precision.
	DefaultPrecision = 2

	// MaximumPrecision is the maximum leading field precision.
	MaximumPrecision = 18

	// DefaultScale is the default fractional-seconds precision.
	DefaultScale = 6

	// MaximumScale is the maximum fractional-seconds precision
	// (nanosecond resolution).
	MaximumScale = 9
)

// maxLeading is the largest leading value with MaximumPrecision digits.
const maxLeading = 999_999_999_999_999_999

// Interval is an immutable SQL INTERVAL value. The sign is kept apart from
// the two unsigned magnitude fields: leading holds the most-significant
// field and remaining packs all less-significant fields in the finest unit
// the qualifier exposes (nanoseconds when seconds are present).
type Interval struct {
	qualifier Qualifier
	negative  bool
	leading   uint64
	remaining uint64
}

// New validates the fields and returns the canonical instance for them.
// leading must fit in MaximumPrecision decimal digits and remaining must
// stay below the qualifier's unit bound; a zero magnitude is always stored
// non-negative.
func New(qualifier Qualifier, negative bool, leading, remaining uint64) (*Interval, error) {
	if !qualifier.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(qualifier))
	}
	if leading > maxLeading {
		return nil, fmt.Errorf("%w: leading field %d exceeds %d digits", ErrInvalidValue, leading, MaximumPrecision)
	}
	if bound := qualifiers[qualifier].remainingBound; remaining >= bound {
		return nil, fmt.Errorf("%w: remaining fields %d out of range for %s", ErrInvalidValue, remaining, qualifier)
	}
	if leading == 0 && remaining == 0 {
		// canonical zero has no sign
		negative = false
	}
	return cached(Interval{qualifier, negative, leading, remaining}), nil
}

// Qualifier returns the interval's qualifier.
func (i *Interval) Qualifier() Qualifier {
	return i.qualifier
}

// IsNegative reports whether the interval is negative.
func (i *Interval) IsNegative() bool {
	return i.negative
}

// Leading returns the value of the leading field. For SECOND intervals this
// is the integer part of the seconds.
func (i *Interval) Leading() uint64 {
	return i.leading
}

// Remaining returns the combined value of the remaining fields. For
// qualifiers with a seconds component this is in nanoseconds.
func (i *Interval) Remaining() uint64 {
	return i.remaining
}

// IsZero reports whether the magnitude is exactly zero.
func (i *Interval) IsZero() bool {
	return i.leading == 0 && i.remaining == 0
}

// Signum returns -1 for negative intervals, 0 for zero and 1 otherwise.
func (i *Interval) Signum() int {
	if i.negative {
		return -1
	}
	if i.IsZero() {
		return 0
	}
	return 1
}

// Precision returns the number of decimal digits in the leading field,
// at least 1.
func (i *Interval) Precision() int {
	p := 0
	for l := i.leading; l > 0; l /= 10 {
		p++
	}
	if p == 0 {
		p = 1
	}
	return p
}

// Compare orders intervals of the same qualifier: negative before
// non-negative, then by magnitude, reversed among negative values so that
// the larger magnitude sorts first.
func (i *Interval) Compare(other *Interval) int {
	if i.negative != other.negative {
		if i.negative {
			return -1
		}
		return 1
	}
	cmp := compareUint64(i.leading, other.leading)
	if cmp == 0 {
		cmp = compareUint64(i.remaining, other.remaining)
	}
	if i.negative {
		return -cmp
	}
	return cmp
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports structural equality over all four fields.
func (i *Interval) Equal(other *Interval) bool {
	return other != nil && *i == *other
}

// Negate returns the interval with its sign flipped. Zero maps to itself.
func (i *Interval) Negate() *Interval {
	if i.IsZero() {
		return i
	}
	// fields already validated, New cannot fail here
	v, _ := New(i.qualifier, !i.negative, i.leading, i.remaining)
	return v
}

// scaleSteps[s] is the nanosecond step for s fractional digits.
var scaleSteps = [MaximumScale + 1]uint64{
	1_000_000_000, 100_000_000, 10_000_000, 1_000_000,
	100_000, 10_000, 1_000, 100, 10, 1,
}

// ConvertScale rounds the fractional seconds to targetScale digits,
// half-up on the magnitude. Qualifiers without a seconds component and
// scales of MaximumScale or more pass through unchanged. A rounding carry
// that reaches the next field's unit boundary increments the leading field.
func (i *Interval) ConvertScale(targetScale int) (*Interval, error) {
	if targetScale < 0 {
		return nil, fmt.Errorf("%w: scale %d", ErrInvalidValue, targetScale)
	}
	if targetScale >= MaximumScale || !i.qualifier.HasSeconds() {
		return i, nil
	}
	step := scaleSteps[targetScale]
	r := (i.remaining + step/2) / step * step
	if r == i.remaining {
		return i, nil
	}
	l := i.leading
	if bound := qualifiers[i.qualifier].leadingUnit; r >= bound {
		l++
		r -= bound
	}
	if l > maxLeading {
		return nil, fmt.Errorf("%w: carry exceeds %d digits", ErrPrecisionOverflow, MaximumPrecision)
	}
	return New(i.qualifier, i.negative, l, r)
}
