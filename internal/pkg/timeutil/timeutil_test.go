//go:build unit

package timeutil_test

import (
	"testing"
	"time"

	"folio-api/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	t.Run("valid date keeps calendar components", func(t *testing.T) {
		d, err := timeutil.ParseLocalDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 2025, d.Year)
		assert.Equal(t, time.June, d.Month)
		assert.Equal(t, 1, d.Day)
		assert.Equal(t, "2025-06-01", d.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []string{"", "2025-6-1", "2025/06/01", "2025-13-01", "2025-02-30", "abcd-ef-gh", "2025-06-011"}
		for _, s := range cases {
			_, err := timeutil.ParseLocalDate(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestLocalDateOrdering(t *testing.T) {
	a := timeutil.MustParseLocalDate("2025-05-30")
	b := timeutil.MustParseLocalDate("2025-06-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, a, timeutil.MinDate(a, b))
	assert.Equal(t, a, timeutil.MinDate(b, a))
	assert.Equal(t, b, timeutil.MaxDate(a, b))
	assert.Equal(t, b, timeutil.MaxDate(b, a))
}

func TestDaysInclusive(t *testing.T) {
	a := timeutil.MustParseLocalDate("2025-06-01")
	b := timeutil.MustParseLocalDate("2025-06-03")

	assert.Equal(t, 3, timeutil.DaysInclusive(a, b))
	assert.Equal(t, 3, timeutil.DaysInclusive(b, a))
	assert.Equal(t, 1, timeutil.DaysInclusive(a, a))

	// Across a month boundary
	c := timeutil.MustParseLocalDate("2025-06-30")
	d := timeutil.MustParseLocalDate("2025-07-02")
	assert.Equal(t, 3, timeutil.DaysInclusive(c, d))
}

func TestAddDays(t *testing.T) {
	d := timeutil.MustParseLocalDate("2025-06-30")
	assert.Equal(t, "2025-07-01", d.AddDays(1).String())
	assert.Equal(t, "2025-06-29", d.AddDays(-1).String())
}

func TestMonthGrid(t *testing.T) {
	assert.Equal(t, 30, timeutil.DaysInMonth(2025, time.June))
	assert.Equal(t, 28, timeutil.DaysInMonth(2025, time.February))
	assert.Equal(t, 29, timeutil.DaysInMonth(2024, time.February))
	// 2025-06-01 is a Sunday
	assert.Equal(t, 0, timeutil.FirstWeekday(2025, time.June))
}

func TestParseClockTime(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ct, err := timeutil.ParseClockTime("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, ct.Hour)
		assert.Equal(t, 30, ct.Minute)
		assert.Equal(t, "09:30", ct.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []string{"", "9:30", "24:00", "09:60", "09-30", "099:30"}
		for _, s := range cases {
			_, err := timeutil.ParseClockTime(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestClockTimeArithmetic(t *testing.T) {
	start := timeutil.MustParseClockTime("09:00")
	end := timeutil.MustParseClockTime("10:30")

	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.Equal(t, 90, timeutil.MinutesBetween(start, end))

	assert.Equal(t, "10:00", start.AddHours(1).String())
	// Clamped, no rollover into the next day
	assert.Equal(t, "23:15", timeutil.ClockTime{Hour: 23, Minute: 15}.AddHours(1).String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "Jun 1", timeutil.MustParseLocalDate("2025-06-01").FormatShort())
	assert.Equal(t, "1h 30m", timeutil.FormatDuration(90))
	assert.Equal(t, "2h", timeutil.FormatDuration(120))
}
