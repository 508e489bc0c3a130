//go:build unit

package schedule_test

import (
	"testing"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleDay(date, start, end string) schedule.Window {
	return schedule.Window{
		StartDate: timeutil.MustParseLocalDate(date),
		StartTime: timeutil.MustParseClockTime(start),
		EndTime:   timeutil.MustParseClockTime(end),
	}
}

func multiDay(start, end string) schedule.Window {
	return schedule.Window{
		MultiDay:  true,
		StartDate: timeutil.MustParseLocalDate(start),
		EndDate:   timeutil.MustParseLocalDate(end),
	}
}

func TestEvaluate(t *testing.T) {
	busy := schedule.BusyMap{"2025-06-01": {"09:00", "10:00"}}

	t.Run("incomplete inputs stay idle", func(t *testing.T) {
		status, msg := schedule.Evaluate(schedule.Window{}, busy)
		assert.Equal(t, schedule.StatusIdle, status)
		assert.Empty(t, msg)

		// Multi-day without an end date
		w := schedule.Window{MultiDay: true, StartDate: timeutil.MustParseLocalDate("2025-06-01")}
		status, _ = schedule.Evaluate(w, busy)
		assert.Equal(t, schedule.StatusIdle, status)
	})

	t.Run("single-day invalid iff endTime <= startTime", func(t *testing.T) {
		cases := []struct {
			start, end string
			want       schedule.Status
		}{
			{"09:00", "09:00", schedule.StatusInvalid},
			{"10:00", "09:00", schedule.StatusInvalid},
			{"11:00", "12:00", schedule.StatusAvailable},
		}
		for _, tc := range cases {
			status, _ := schedule.Evaluate(singleDay("2025-06-02", tc.start, tc.end), busy)
			assert.Equal(t, tc.want, status, "%s-%s", tc.start, tc.end)
		}
	})

	t.Run("multi-day invalid iff endDate <= startDate", func(t *testing.T) {
		status, msg := schedule.Evaluate(multiDay("2025-06-01", "2025-05-30"), busy)
		assert.Equal(t, schedule.StatusInvalid, status)
		assert.Contains(t, msg, "come after")

		status, _ = schedule.Evaluate(multiDay("2025-06-01", "2025-06-01"), busy)
		assert.Equal(t, schedule.StatusInvalid, status)

		status, _ = schedule.Evaluate(multiDay("2025-06-02", "2025-06-03"), busy)
		assert.Equal(t, schedule.StatusAvailable, status)
	})

	t.Run("single-day conflict detection uses covered slots", func(t *testing.T) {
		// 09:00-11:00 covers busy slots 09:00 and 10:00
		status, _ := schedule.Evaluate(singleDay("2025-06-01", "09:00", "11:00"), busy)
		assert.Equal(t, schedule.StatusBusy, status)

		// 08:00-09:00 covers only 08:00, which is free
		status, _ = schedule.Evaluate(singleDay("2025-06-01", "08:00", "09:00"), busy)
		assert.Equal(t, schedule.StatusAvailable, status)

		// 11:00-12:00 on the busy date but clear of marked slots
		status, _ = schedule.Evaluate(singleDay("2025-06-01", "11:00", "12:00"), busy)
		assert.Equal(t, schedule.StatusAvailable, status)
	})

	t.Run("multi-day conflict when any day has a busy slot", func(t *testing.T) {
		status, _ := schedule.Evaluate(multiDay("2025-05-30", "2025-06-02"), busy)
		assert.Equal(t, schedule.StatusBusy, status)

		status, _ = schedule.Evaluate(multiDay("2025-06-02", "2025-06-05"), busy)
		assert.Equal(t, schedule.StatusAvailable, status)
	})
}

func TestBusyMapToggle(t *testing.T) {
	busy := schedule.BusyMap{"2025-06-01": {"09:00", "10:00"}}
	date := timeutil.MustParseLocalDate("2025-06-01")

	t.Run("toggling a marked slot clears it", func(t *testing.T) {
		updated, err := busy.Toggle(date, "09:00")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, updated.SlotsFor(date))
		// Original snapshot untouched
		assert.Equal(t, []string{"09:00", "10:00"}, busy.SlotsFor(date))
	})

	t.Run("toggling a free slot marks it", func(t *testing.T) {
		updated, err := busy.Toggle(date, "11:00")
		require.NoError(t, err)
		assert.True(t, updated.IsBusy(date, "11:00"))
	})

	t.Run("unknown slot label is rejected", func(t *testing.T) {
		_, err := busy.Toggle(date, "09:30")
		assert.ErrorIs(t, err, schedule.ErrUnknownSlot)
	})
}

func TestWindowLabel(t *testing.T) {
	assert.Equal(t, "Jun 1 - Jun 3 (3 days)", multiDay("2025-06-01", "2025-06-03").Label())
	assert.Equal(t, "Jun 1 • 09:00 - 10:30 (1h 30m)", singleDay("2025-06-01", "09:00", "10:30").Label())
	assert.Equal(t, "Jun 1 • 09:00 - 10:00 (1h)", singleDay("2025-06-01", "09:00", "10:00").Label())
}
