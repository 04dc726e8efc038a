package interval

import "fmt"

// displaySizes gives, per qualifier, the literal width excluding the
// leading field digits; scaled covers the form with fractional seconds and
// is zero for qualifiers without one. Derived from the canonical templates:
//
//	INTERVAL '-11' YEAR
//	INTERVAL '-11' MONTH
//	INTERVAL '-11' DAY
//	INTERVAL '-11' HOUR
//	INTERVAL '-11' MINUTE
//	INTERVAL '-11.999999' SECOND
//	INTERVAL '-11-11' YEAR TO MONTH
//	INTERVAL '-11 23' DAY TO HOUR
//	INTERVAL '-11 23:59' DAY TO MINUTE
//	INTERVAL '-11 23:59:59.999999' DAY TO SECOND
//	INTERVAL '-11:59' HOUR TO MINUTE
//	INTERVAL '-11:59:59.999999' HOUR TO SECOND
//	INTERVAL '-11:59.999999' MINUTE TO SECOND
type displayEntry struct {
	plain  int
	scaled int
}

var displaySizes = [...]displayEntry{
	Year:           {plain: 17},
	Month:          {plain: 18},
	Day:            {plain: 16},
	Hour:           {plain: 17},
	Minute:         {plain: 19},
	Second:         {plain: 19, scaled: 20},
	YearToMonth:    {plain: 29},
	DayToHour:      {plain: 27},
	DayToMinute:    {plain: 32},
	DayToSecond:    {plain: 35, scaled: 36},
	HourToMinute:   {plain: 30},
	HourToSecond:   {plain: 33, scaled: 34},
	MinuteToSecond: {plain: 32, scaled: 33},
}

// DisplaySize returns the exact character width a client should reserve to
// render a literal of the given qualifier, leading precision and
// fractional-seconds scale.
func DisplaySize(qualifier Qualifier, precision, scale int) (int, error) {
	if !qualifier.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedType, int(qualifier))
	}
	e := displaySizes[qualifier]
	if scale > 0 && e.scaled != 0 {
		return e.scaled + precision + scale, nil
	}
	return e.plain + precision, nil
}

// MaxDisplaySize returns the width for the widest possible literal of the
// qualifier.
func (i *Interval) MaxDisplaySize() int {
	// qualifier already validated at construction
	n, _ := DisplaySize(i.qualifier, MaximumPrecision, MaximumScale)
	return n
}
