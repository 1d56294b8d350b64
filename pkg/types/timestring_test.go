package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, v := range []string{"00:00", "09:30", "10:00", "23:59"} {
			ts, err := NewTimeStringFromString(v)
			require.NoError(t, err, v)
			assert.Equal(t, v, ts.String())
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, v := range []string{"", "24:00", "10:60", "abc", "9:30:00x"} {
			_, err := NewTimeStringFromString(v)
			assert.ErrorIs(t, err, ErrInvalidTimeString, v)
		}
	})
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("19:00").IsAfter("18:59"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		got, err := TimeString("10:00").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:00"), got)
	})

	t.Run("wraps past midnight", func(t *testing.T) {
		got, err := TimeString("23:30").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("00:30"), got)
	})

	t.Run("negative shift", func(t *testing.T) {
		got, err := TimeString("00:30").AddMinutes(-60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("23:30"), got)
	})
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("14:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("truncates seconds from TIME columns", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("accepts bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:15")))
		assert.Equal(t, TimeString("09:15"), ts)
	})

	t.Run("nil clears the value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}
