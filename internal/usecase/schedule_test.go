//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"
	"folio-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(s string) timeutil.LocalDate {
	return timeutil.MustParseLocalDate(s)
}

type scheduleFixture struct {
	uc       usecase.ScheduleUseCase
	checkers usecase.AvailabilityUseCase
	watcher  *usecase.BusyWatcher
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	repo := repository.NewBusyRepository(kvstore.NewMemoryStore())
	watcher := usecase.NewBusyWatcher(repo, time.Hour, slog.Default())
	watcher.Start(context.Background())
	t.Cleanup(watcher.Stop)

	checkers := usecase.NewAvailabilityUseCase(watcher, testDebounce)
	t.Cleanup(checkers.Stop)

	return &scheduleFixture{
		uc:       usecase.NewScheduleUseCase(repo, watcher, checkers),
		checkers: checkers,
		watcher:  watcher,
	}
}

func TestToggleBusy(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle marks then clears and refreshes the snapshot", func(t *testing.T) {
		f := newScheduleFixture(t)

		slots, err := f.uc.ToggleBusy(ctx, "2025-06-01", "09:00")
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00"}, slots)
		assert.True(t, f.watcher.Snapshot().IsBusy(mustDate("2025-06-01"), "09:00"))

		slots, err = f.uc.ToggleBusy(ctx, "2025-06-01", "09:00")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("bad inputs", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.uc.ToggleBusy(ctx, "june first", "09:00")
		assert.ErrorIs(t, err, errs.ErrInvalidDate)

		_, err = f.uc.ToggleBusy(ctx, "2025-06-01", "09:30")
		assert.ErrorIs(t, err, errs.ErrInvalidTimeSlot)
	})

	t.Run("day slots read the live snapshot", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.uc.ToggleBusy(ctx, "2025-06-01", "10:00")
		require.NoError(t, err)

		busy, err := f.uc.DaySlots(ctx, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, busy)
	})
}

func TestPickerSessions(t *testing.T) {
	t.Run("commit feeds the availability window", func(t *testing.T) {
		f := newScheduleFixture(t)

		require.NoError(t, f.uc.Click("c1", "2025-06-10"))
		require.NoError(t, f.uc.Click("c1", "2025-06-05"))

		st := f.uc.State("c1")
		require.True(t, st.HasRange)
		assert.Equal(t, "2025-06-05", st.Start.String())
		assert.Equal(t, "2025-06-10", st.End.String())

		w := f.checkers.Window("c1")
		assert.True(t, w.MultiDay)
		assert.Equal(t, "2025-06-05", w.StartDate.String())
	})

	t.Run("calendar reflects an anchored preview", func(t *testing.T) {
		f := newScheduleFixture(t)

		require.NoError(t, f.uc.Click("c1", "2025-06-05"))
		require.NoError(t, f.uc.Hover("c1", "2025-06-07"))

		states := f.uc.Calendar("c1", 2025, time.June)
		assert.True(t, states[4].IsStart)  // Jun 5
		assert.True(t, states[5].InRange)  // Jun 6
		assert.True(t, states[6].IsEnd)    // Jun 7

		f.uc.CancelPicker("c1")
		assert.False(t, f.uc.State("c1").Anchored)
	})

	t.Run("slot selection needs a grid slot", func(t *testing.T) {
		f := newScheduleFixture(t)

		assert.ErrorIs(t, f.uc.SelectSlot("c1", "07:00"), errs.ErrInvalidTimeSlot)
		require.NoError(t, f.uc.SelectSlot("c1", "09:00"))
		assert.Equal(t, "10:00", f.checkers.Window("c1").EndTime.String())
	})

	t.Run("sessions are independent", func(t *testing.T) {
		f := newScheduleFixture(t)

		require.NoError(t, f.uc.Click("c1", "2025-06-05"))
		assert.True(t, f.uc.State("c1").Anchored)
		assert.False(t, f.uc.State("c2").Anchored)
	})
}
