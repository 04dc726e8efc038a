package interval_test

import (
	"testing"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		qualifier     interval.Qualifier
		body          string
		wantNegative  bool
		wantLeading   uint64
		wantRemaining uint64
	}{
		{"Year", interval.Year, "11", false, 11, 0},
		{"Year negative", interval.Year, "-11", true, 11, 0},
		{"Year explicit plus", interval.Year, "+11", false, 11, 0},
		{"Second whole", interval.Second, "59", false, 59, 0},
		{"Second fraction", interval.Second, "-11.999999", true, 11, 999_999_000},
		{"Second full fraction", interval.Second, "0.000000001", false, 0, 1},
		{"Year to month", interval.YearToMonth, "-1-2", true, 1, 2},
		{"Day to hour", interval.DayToHour, "1 23", false, 1, 23},
		{"Day to minute", interval.DayToMinute, "1 23:09", false, 1, 23*60 + 9},
		{
			"Day to second", interval.DayToSecond, "-11 23:59:59.999999", true, 11,
			23*interval.NanosPerHour + 59*interval.NanosPerMinute + 59*interval.NanosPerSecond + 999_999_000,
		},
		{"Hour to minute", interval.HourToMinute, "11:59", false, 11, 59},
		{
			"Hour to second", interval.HourToSecond, "1:02:03.4", false, 1,
			2*interval.NanosPerMinute + 3*interval.NanosPerSecond + 400_000_000,
		},
		{
			"Minute to second", interval.MinuteToSecond, "-1:02.5", true, 1,
			2*interval.NanosPerSecond + 500_000_000,
		},
		{"Surrounding whitespace", interval.Day, "  7  ", false, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := interval.Parse(tt.qualifier, tt.body)
			require.NoError(t, err)
			assert.Same(t, mustNew(t, tt.qualifier, tt.wantNegative, tt.wantLeading, tt.wantRemaining), v)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		qualifier interval.Qualifier
		body      string
		wantErr   error
	}{
		{"Empty", interval.Year, "", interval.ErrInvalidValue},
		{"Not a number", interval.Year, "abc", interval.ErrInvalidValue},
		{"Trailing input", interval.Year, "11x", interval.ErrInvalidValue},
		{"Hours out of range", interval.DayToSecond, "1 24:00:00", interval.ErrInvalidValue},
		{"Minutes out of range", interval.HourToMinute, "1:60", interval.ErrInvalidValue},
		{"Seconds out of range", interval.MinuteToSecond, "1:60", interval.ErrInvalidValue},
		{"Months out of range", interval.YearToMonth, "1-12", interval.ErrInvalidValue},
		{"Fraction too long", interval.Second, "1.0000000001", interval.ErrInvalidValue},
		{"Empty fraction", interval.Second, "1.", interval.ErrInvalidValue},
		{"Missing separator", interval.DayToHour, "123", interval.ErrInvalidValue},
		{"Wrong field separator", interval.YearToMonth, "1:2", interval.ErrInvalidValue},
		{"Space instead of colon", interval.HourToMinute, "11 59", interval.ErrInvalidValue},
		{"Colon instead of space", interval.DayToSecond, "1:23:59:59", interval.ErrInvalidValue},
		{"Truncated body", interval.DayToSecond, "1 23:59", interval.ErrInvalidValue},
		{"Leading too large", interval.Day, "1000000000000000000", interval.ErrInvalidValue},
		{"Unknown qualifier", interval.Qualifier(42), "1", interval.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interval.Parse(tt.qualifier, tt.body)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Format then Parse recovers the canonical instance for every qualifier.
	values := []*interval.Interval{
		mustNew(t, interval.Year, true, 11, 0),
		mustNew(t, interval.Month, false, 3, 0),
		mustNew(t, interval.Day, false, 365, 0),
		mustNew(t, interval.Hour, true, 23, 0),
		mustNew(t, interval.Minute, false, 59, 0),
		mustNew(t, interval.Second, true, 59, 999_999_999),
		mustNew(t, interval.YearToMonth, false, 3, 11),
		mustNew(t, interval.DayToHour, true, 1, 23),
		mustNew(t, interval.DayToMinute, false, 2, 23*60+59),
		mustNew(t, interval.DayToSecond, true, 11, interval.NanosPerDay-1),
		mustNew(t, interval.HourToMinute, false, 11, 59),
		mustNew(t, interval.HourToSecond, true, 11, interval.NanosPerHour-1),
		mustNew(t, interval.MinuteToSecond, false, 11, interval.NanosPerMinute-1),
	}
	for _, v := range values {
		got, err := interval.Parse(v.Qualifier(), v.Format())
		require.NoError(t, err, "%v", v)
		assert.Same(t, v, got)

		got, err = interval.ParseLiteral(v.String())
		require.NoError(t, err, "%v", v)
		assert.Same(t, v, got)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    *interval.Interval
	}{
		{"Simple", "INTERVAL '11' YEAR", mustNew(t, interval.Year, false, 11, 0)},
		{"Lowercase", "interval '-1-2' year to month", mustNew(t, interval.YearToMonth, true, 1, 2)},
		{"Outer sign", "INTERVAL -'11' HOUR", mustNew(t, interval.Hour, true, 11, 0)},
		{"Outer and inner sign cancel", "INTERVAL -'-11' HOUR", mustNew(t, interval.Hour, false, 11, 0)},
		{"Extra whitespace", "  INTERVAL  '1 23'  DAY  TO  HOUR  ", mustNew(t, interval.DayToHour, false, 1, 23)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interval.ParseLiteral(tt.literal)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}

	t.Run("Errors", func(t *testing.T) {
		for _, s := range []string{
			"",
			"'11' YEAR",
			"INTERVAL 11 YEAR",
			"INTERVAL '11",
			"INTERVAL '11' FORTNIGHT",
			"INTERVAL '11'",
		} {
			_, err := interval.ParseLiteral(s)
			assert.Error(t, err, "literal %q", s)
		}
	})
}
