package interval_test

import (
	"testing"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	v := mustNew(t, interval.DayToSecond, true, 11,
		23*interval.NanosPerHour+59*interval.NanosPerMinute+59*interval.NanosPerSecond+999_999_000)
	got, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "INTERVAL '-11 23:59:59.999999' DAY TO SECOND", got)
}

func TestScan(t *testing.T) {
	want := mustNew(t, interval.YearToMonth, true, 1, 2)

	t.Run("String", func(t *testing.T) {
		var v interval.Interval
		require.NoError(t, v.Scan("INTERVAL '-1-2' YEAR TO MONTH"))
		assert.True(t, v.Equal(want))
	})

	t.Run("Bytes", func(t *testing.T) {
		var v interval.Interval
		require.NoError(t, v.Scan([]byte("INTERVAL '-1-2' YEAR TO MONTH")))
		assert.True(t, v.Equal(want))
	})

	t.Run("Interval", func(t *testing.T) {
		var v interval.Interval
		require.NoError(t, v.Scan(*want))
		assert.True(t, v.Equal(want))
	})

	t.Run("IntervalPointer", func(t *testing.T) {
		var v interval.Interval
		require.NoError(t, v.Scan(want))
		assert.True(t, v.Equal(want))
	})

	t.Run("LeavesCanonicalInstanceIntact", func(t *testing.T) {
		canonical := mustNew(t, interval.Hour, false, 8, 0)
		var v interval.Interval
		require.NoError(t, v.Scan("INTERVAL '8' HOUR"))
		require.NoError(t, v.Scan("INTERVAL '9' HOUR"))
		assert.Equal(t, uint64(8), canonical.Leading())
		assert.Same(t, canonical, mustNew(t, interval.Hour, false, 8, 0))
	})

	t.Run("InvalidLiteral", func(t *testing.T) {
		var v interval.Interval
		err := v.Scan("INTERVAL '1-13' YEAR TO MONTH")
		require.ErrorIs(t, err, interval.ErrInvalidValue)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		var v interval.Interval
		assert.Error(t, v.Scan(42))
	})
}
