package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the full SQL literal, e.g.
// INTERVAL '-11 23:59:59.999999' DAY TO SECOND.
func (i *Interval) String() string {
	var b strings.Builder
	b.WriteString("INTERVAL '")
	i.writeBody(&b, -1)
	b.WriteString("' ")
	b.WriteString(i.qualifier.String())
	return b.String()
}

// Format renders the unquoted literal body, e.g. "-11 23:59:59.999999".
// Fractional seconds appear only when non-zero, with trailing zeros
// trimmed.
func (i *Interval) Format() string {
	var b strings.Builder
	i.writeBody(&b, -1)
	return b.String()
}

// FormatScaled renders the body with the fractional seconds zero-padded to
// exactly scale digits, for clients that carry a column scale. Digits below
// the given scale are not shown; use ConvertScale to round the value first.
func (i *Interval) FormatScaled(scale int) (string, error) {
	if scale < 0 || scale > MaximumScale {
		return "", fmt.Errorf("%w: scale %d", ErrInvalidValue, scale)
	}
	var b strings.Builder
	i.writeBody(&b, scale)
	return b.String(), nil
}

func (i *Interval) writeBody(b *strings.Builder, scale int) {
	if i.negative {
		b.WriteByte('-')
	}
	lead := strconv.FormatUint(i.leading, 10)
	r := i.remaining
	switch i.qualifier {
	case Year, Month, Day, Hour, Minute:
		b.WriteString(lead)
	case Second:
		b.WriteString(lead)
		writeNanos(b, r, scale)
	case YearToMonth:
		fmt.Fprintf(b, "%s-%d", lead, r)
	case DayToHour:
		fmt.Fprintf(b, "%s %02d", lead, r)
	case DayToMinute:
		fmt.Fprintf(b, "%s %02d:%02d", lead, r/60, r%60)
	case DayToSecond:
		fmt.Fprintf(b, "%s %02d:%02d:%02d", lead,
			r/NanosPerHour, r%NanosPerHour/NanosPerMinute, r%NanosPerMinute/NanosPerSecond)
		writeNanos(b, r%NanosPerSecond, scale)
	case HourToMinute:
		fmt.Fprintf(b, "%s:%02d", lead, r)
	case HourToSecond:
		fmt.Fprintf(b, "%s:%02d:%02d", lead, r/NanosPerMinute, r%NanosPerMinute/NanosPerSecond)
		writeNanos(b, r%NanosPerSecond, scale)
	case MinuteToSecond:
		fmt.Fprintf(b, "%s:%02d", lead, r/NanosPerSecond)
		writeNanos(b, r%NanosPerSecond, scale)
	}
}

// writeNanos appends the fractional-second part. A negative scale means
// natural width: printed only when non-zero, trailing zeros trimmed.
func writeNanos(b *strings.Builder, nanos uint64, scale int) {
	if scale == 0 || scale < 0 && nanos == 0 {
		return
	}
	digits := fmt.Sprintf("%09d", nanos)
	if scale < 0 {
		digits = strings.TrimRight(digits, "0")
	} else {
		digits = digits[:scale]
	}
	b.WriteByte('.')
	b.WriteString(digits)
}
