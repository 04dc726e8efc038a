package interval

import (
	"fmt"
	"strings"
)

// Qualifier identifies the SQL field range an interval covers, from a single
// field (YEAR) to a contiguous range (DAY TO SECOND).
type Qualifier int

const (
	Year Qualifier = iota
	Month
	Day
	Hour
	Minute
	Second
	YearToMonth
	DayToHour
	DayToMinute
	DayToSecond
	HourToMinute
	HourToSecond
	MinuteToSecond
)

// Nanosecond counts for the day-time units.
const (
	NanosPerSecond = 1_000_000_000
	NanosPerMinute = 60 * NanosPerSecond
	NanosPerHour   = 60 * NanosPerMinute
	NanosPerDay    = 24 * NanosPerHour
)

// MonthsPerYear is the unit ratio for the year-month family.
const MonthsPerYear = 12

// qualifierInfo carries the per-qualifier metadata: the SQL keyword form,
// which family the qualifier belongs to, the exclusive upper bound for the
// remaining field, and the unit weights used by the absolute-magnitude
// converter (months for year-month qualifiers, nanoseconds for day-time).
// A remainingUnit of zero marks a single-field qualifier whose remaining
// value must stay zero.
type qualifierInfo struct {
	name           string
	yearMonth      bool
	hasSeconds     bool
	remainingBound uint64
	leadingUnit    uint64
	remainingUnit  uint64
}

var qualifiers = [...]qualifierInfo{
	Year:           {name: "YEAR", yearMonth: true, remainingBound: 1, leadingUnit: MonthsPerYear},
	Month:          {name: "MONTH", yearMonth: true, remainingBound: 1, leadingUnit: 1},
	Day:            {name: "DAY", remainingBound: 1, leadingUnit: NanosPerDay},
	Hour:           {name: "HOUR", remainingBound: 1, leadingUnit: NanosPerHour},
	Minute:         {name: "MINUTE", remainingBound: 1, leadingUnit: NanosPerMinute},
	Second:         {name: "SECOND", hasSeconds: true, remainingBound: NanosPerSecond, leadingUnit: NanosPerSecond, remainingUnit: 1},
	YearToMonth:    {name: "YEAR TO MONTH", yearMonth: true, remainingBound: MonthsPerYear, leadingUnit: MonthsPerYear, remainingUnit: 1},
	DayToHour:      {name: "DAY TO HOUR", remainingBound: 24, leadingUnit: NanosPerDay, remainingUnit: NanosPerHour},
	DayToMinute:    {name: "DAY TO MINUTE", remainingBound: 24 * 60, leadingUnit: NanosPerDay, remainingUnit: NanosPerMinute},
	DayToSecond:    {name: "DAY TO SECOND", hasSeconds: true, remainingBound: NanosPerDay, leadingUnit: NanosPerDay, remainingUnit: 1},
	HourToMinute:   {name: "HOUR TO MINUTE", remainingBound: 60, leadingUnit: NanosPerHour, remainingUnit: NanosPerMinute},
	HourToSecond:   {name: "HOUR TO SECOND", hasSeconds: true, remainingBound: NanosPerHour, leadingUnit: NanosPerHour, remainingUnit: 1},
	MinuteToSecond: {name: "MINUTE TO SECOND", hasSeconds: true, remainingBound: NanosPerMinute, leadingUnit: NanosPerMinute, remainingUnit: 1},
}

var qualifierNames = make(map[string]Qualifier, len(qualifiers))

func init() {
	for q := range qualifiers {
		qualifierNames[qualifiers[q].name] = Qualifier(q)
	}
}

func (q Qualifier) valid() bool {
	return q >= Year && q <= MinuteToSecond
}

// String returns the SQL keyword form, e.g. "DAY TO SECOND".
func (q Qualifier) String() string {
	if !q.valid() {
		return fmt.Sprintf("Qualifier(%d)", int(q))
	}
	return qualifiers[q].name
}

// IsYearMonth reports whether the qualifier belongs to the year-month
// family. Arithmetic never mixes the two families.
func (q Qualifier) IsYearMonth() bool {
	return q.valid() && qualifiers[q].yearMonth
}

// HasSeconds reports whether the qualifier carries a fractional-seconds
// component.
func (q Qualifier) HasSeconds() bool {
	return q.valid() && qualifiers[q].hasSeconds
}

// QualifierFromString resolves a SQL keyword form such as "day to second".
// Case and interior whitespace are not significant.
func QualifierFromString(s string) (Qualifier, error) {
	key := strings.Join(strings.Fields(strings.ToUpper(s)), " ")
	q, ok := qualifierNames[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
	return q, nil
}
