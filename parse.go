package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the unquoted literal body for a known qualifier, e.g.
// "-11 23:59:59.999999" for DAY TO SECOND, and returns the canonical
// interval.
func Parse(qualifier Qualifier, s string) (*Interval, error) {
	if !qualifier.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(qualifier))
	}
	p := &parser{src: strings.TrimSpace(s)}
	negative := p.sign()
	leading, remaining, err := p.fields(qualifier)
	if err != nil {
		return nil, err
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	return New(qualifier, negative, leading, remaining)
}

// ParseLiteral reads a full SQL literal of the form
// INTERVAL '-11 23:59:59' DAY TO SECOND. A sign outside the quotes combines
// with the one inside.
func ParseLiteral(s string) (*Interval, error) {
	t := strings.TrimSpace(s)
	const keyword = "INTERVAL"
	if len(t) < len(keyword) || !strings.EqualFold(t[:len(keyword)], keyword) {
		return nil, fmt.Errorf("%w: missing INTERVAL keyword in %q", ErrInvalidValue, s)
	}
	t = strings.TrimSpace(t[len(keyword):])
	negative := false
	if t != "" && (t[0] == '-' || t[0] == '+') {
		negative = t[0] == '-'
		t = strings.TrimSpace(t[1:])
	}
	if t == "" || t[0] != '\'' {
		return nil, fmt.Errorf("%w: expected quoted interval body in %q", ErrInvalidValue, s)
	}
	end := strings.IndexByte(t[1:], '\'')
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated string in %q", ErrInvalidValue, s)
	}
	qualifier, err := QualifierFromString(t[end+2:])
	if err != nil {
		return nil, err
	}
	v, err := Parse(qualifier, t[1:1+end])
	if err != nil {
		return nil, err
	}
	if negative {
		v = v.Negate()
	}
	return v, nil
}

// parser is a single-pass scanner over a literal body.
type parser struct {
	src string
	pos int
}

func (p *parser) fields(q Qualifier) (leading, remaining uint64, err error) {
	switch q {
	case Year, Month, Day, Hour, Minute:
		leading, err = p.number()
	case Second:
		if leading, err = p.number(); err != nil {
			return
		}
		remaining, err = p.nanos()
	case YearToMonth:
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect('-'); err != nil {
			return
		}
		remaining, err = p.field(MonthsPerYear, "months")
	case DayToHour:
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(' '); err != nil {
			return
		}
		remaining, err = p.field(24, "hours")
	case DayToMinute:
		var h, m uint64
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(' '); err != nil {
			return
		}
		if h, err = p.field(24, "hours"); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if m, err = p.field(60, "minutes"); err != nil {
			return
		}
		remaining = h*60 + m
	case DayToSecond:
		var h, m, sec, f uint64
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(' '); err != nil {
			return
		}
		if h, err = p.field(24, "hours"); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if m, err = p.field(60, "minutes"); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if sec, err = p.field(60, "seconds"); err != nil {
			return
		}
		if f, err = p.nanos(); err != nil {
			return
		}
		remaining = h*NanosPerHour + m*NanosPerMinute + sec*NanosPerSecond + f
	case HourToMinute:
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		remaining, err = p.field(60, "minutes")
	case HourToSecond:
		var m, sec, f uint64
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if m, err = p.field(60, "minutes"); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if sec, err = p.field(60, "seconds"); err != nil {
			return
		}
		if f, err = p.nanos(); err != nil {
			return
		}
		remaining = m*NanosPerMinute + sec*NanosPerSecond + f
	case MinuteToSecond:
		var sec, f uint64
		if leading, err = p.number(); err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		if sec, err = p.field(60, "seconds"); err != nil {
			return
		}
		if f, err = p.nanos(); err != nil {
			return
		}
		remaining = sec*NanosPerSecond + f
	}
	return
}

// sign consumes a leading '-' or '+' and reports whether it was '-'.
func (p *parser) sign() bool {
	if p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '-':
			p.pos++
			return true
		case '+':
			p.pos++
		}
	}
	return false
}

// expect consumes one byte of required punctuation.
func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return fmt.Errorf("%w: expected %q at offset %d in %q", ErrInvalidValue, string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *parser) number() (uint64, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: expected digits at offset %d in %q", ErrInvalidValue, start, p.src)
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, p.src[start:p.pos])
	}
	return n, nil
}

// field reads a number that must stay below the radix of its position.
func (p *parser) field(limit uint64, name string) (uint64, error) {
	n, err := p.number()
	if err != nil {
		return 0, err
	}
	if n >= limit {
		return 0, fmt.Errorf("%w: %s value %d out of range in %q", ErrInvalidValue, name, n, p.src)
	}
	return n, nil
}

// nanos consumes an optional fraction of up to nine digits and returns it
// right-padded to nanoseconds.
func (p *parser) nanos() (uint64, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '.' {
		return 0, nil
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	digits := p.src[start:p.pos]
	if digits == "" {
		return 0, fmt.Errorf("%w: empty fraction in %q", ErrInvalidValue, p.src)
	}
	if len(digits) > MaximumScale {
		return 0, fmt.Errorf("%w: fraction %q exceeds nanosecond resolution", ErrInvalidValue, digits)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, digits)
	}
	for i := len(digits); i < MaximumScale; i++ {
		n *= 10
	}
	return n, nil
}

func (p *parser) done() error {
	if p.pos != len(p.src) {
		return fmt.Errorf("%w: trailing input %q", ErrInvalidValue, p.src[p.pos:])
	}
	return nil
}
