package interval

import (
	"fmt"
	"math/big"
)

// The absolute magnitude of an interval is a single signed integer in its
// family's finest unit: months for year-month qualifiers, nanoseconds for
// day-time. Add and Subtract convert both operands to this form, do plain
// integer arithmetic and decompose the result, so no per-field carry logic
// exists and overflow surfaces exactly once.

// Absolute returns the interval's total magnitude as a signed integer.
func (i *Interval) Absolute() *big.Int {
	info := &qualifiers[i.qualifier]
	r := new(big.Int).SetUint64(i.leading)
	r.Mul(r, new(big.Int).SetUint64(info.leadingUnit))
	if i.remaining != 0 {
		rem := new(big.Int).SetUint64(i.remaining)
		if info.remainingUnit > 1 {
			rem.Mul(rem, new(big.Int).SetUint64(info.remainingUnit))
		}
		r.Add(r, rem)
	}
	if i.negative {
		r.Neg(r)
	}
	return r
}

// FromAbsolute decomposes a signed magnitude under the given qualifier:
// the magnitude divided by the leading-field unit recovers the leading
// field, the rest becomes the remaining fields. A leading field beyond
// MaximumPrecision digits fails with ErrPrecisionOverflow.
func FromAbsolute(qualifier Qualifier, absolute *big.Int) (*Interval, error) {
	if !qualifier.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(qualifier))
	}
	info := &qualifiers[qualifier]
	negative := absolute.Sign() < 0
	mag := new(big.Int).Abs(absolute)
	rem := new(big.Int)
	lead, _ := new(big.Int).QuoRem(mag, new(big.Int).SetUint64(info.leadingUnit), rem)
	if !lead.IsUint64() || lead.Uint64() > maxLeading {
		return nil, fmt.Errorf("%w: %s leading field exceeds %d digits", ErrPrecisionOverflow, qualifier, MaximumPrecision)
	}
	var remaining uint64
	if info.remainingUnit > 0 {
		// sub-unit residue below the qualifier's finest field truncates
		remaining = rem.Uint64() / info.remainingUnit
	}
	return New(qualifier, negative, lead.Uint64(), remaining)
}

// Add returns the exact sum of two intervals of the same family. The result
// takes the receiver's qualifier.
func (i *Interval) Add(other *Interval) (*Interval, error) {
	if err := i.checkFamily(other); err != nil {
		return nil, err
	}
	return FromAbsolute(i.qualifier, new(big.Int).Add(i.Absolute(), other.Absolute()))
}

// Subtract returns the exact difference of two intervals of the same
// family. The result takes the receiver's qualifier.
func (i *Interval) Subtract(other *Interval) (*Interval, error) {
	if err := i.checkFamily(other); err != nil {
		return nil, err
	}
	return FromAbsolute(i.qualifier, new(big.Int).Sub(i.Absolute(), other.Absolute()))
}

func (i *Interval) checkFamily(other *Interval) error {
	if i.qualifier.IsYearMonth() != other.qualifier.IsYearMonth() {
		return fmt.Errorf("%w: %s and %s", ErrTypeMismatch, i.qualifier, other.qualifier)
	}
	return nil
}
