package interval_test

import (
	"testing"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifierString(t *testing.T) {
	tests := []struct {
		qualifier interval.Qualifier
		want      string
	}{
		{interval.Year, "YEAR"},
		{interval.Month, "MONTH"},
		{interval.Day, "DAY"},
		{interval.Hour, "HOUR"},
		{interval.Minute, "MINUTE"},
		{interval.Second, "SECOND"},
		{interval.YearToMonth, "YEAR TO MONTH"},
		{interval.DayToHour, "DAY TO HOUR"},
		{interval.DayToMinute, "DAY TO MINUTE"},
		{interval.DayToSecond, "DAY TO SECOND"},
		{interval.HourToMinute, "HOUR TO MINUTE"},
		{interval.HourToSecond, "HOUR TO SECOND"},
		{interval.MinuteToSecond, "MINUTE TO SECOND"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.qualifier.String())
	}
	assert.Equal(t, "Qualifier(99)", interval.Qualifier(99).String())
}

func TestQualifierFamilies(t *testing.T) {
	yearMonth := map[interval.Qualifier]bool{
		interval.Year: true, interval.Month: true, interval.YearToMonth: true,
	}
	for q := interval.Year; q <= interval.MinuteToSecond; q++ {
		assert.Equal(t, yearMonth[q], q.IsYearMonth(), "qualifier %s", q)
	}
}

func TestQualifierHasSeconds(t *testing.T) {
	withSeconds := map[interval.Qualifier]bool{
		interval.Second: true, interval.DayToSecond: true,
		interval.HourToSecond: true, interval.MinuteToSecond: true,
	}
	for q := interval.Year; q <= interval.MinuteToSecond; q++ {
		assert.Equal(t, withSeconds[q], q.HasSeconds(), "qualifier %s", q)
	}
}

func TestQualifierFromString(t *testing.T) {
	tests := []struct {
		in   string
		want interval.Qualifier
	}{
		{"YEAR", interval.Year},
		{"day to second", interval.DayToSecond},
		{"  Minute   To  Second ", interval.MinuteToSecond},
	}
	for _, tt := range tests {
		got, err := interval.QualifierFromString(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := interval.QualifierFromString("FORTNIGHT")
	require.ErrorIs(t, err, interval.ErrUnsupportedType)
}
