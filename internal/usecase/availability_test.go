//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository"
	"folio-api/internal/pkg/timeutil"
	"folio-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

func newWatcher(t *testing.T, busy schedule.BusyMap) *usecase.BusyWatcher {
	t.Helper()
	repo := repository.NewBusyRepository(kvstore.NewMemoryStore())
	require.NoError(t, repo.Save(context.Background(), busy))
	w := usecase.NewBusyWatcher(repo, time.Hour, slog.Default())
	w.Start(context.Background())
	t.Cleanup(w.Stop)
	return w
}

func singleDayWindow(date, start, end string) schedule.Window {
	return schedule.Window{
		StartDate: timeutil.MustParseLocalDate(date),
		StartTime: timeutil.MustParseClockTime(start),
		EndTime:   timeutil.MustParseClockTime(end),
	}
}

func waitForStatus(t *testing.T, u usecase.AvailabilityUseCase, clientID string, want schedule.Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if status, _ := u.Status(clientID); status == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	status, msg := u.Status(clientID)
	t.Fatalf("status never became %s (got %s %q)", want, status, msg)
}

func TestAvailabilityDebounce(t *testing.T) {
	busy := schedule.BusyMap{"2025-06-01": {"09:00"}}

	t.Run("valid window passes through checking to a verdict", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		status, _ := u.UpdateWindow("c1", singleDayWindow("2025-06-02", "09:00", "10:00"))
		assert.Equal(t, schedule.StatusChecking, status)
		waitForStatus(t, u, "c1", schedule.StatusAvailable)
	})

	t.Run("evaluation uses the values of the last edit", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		// Rapid edits: the first window is busy, the last is clear.
		u.UpdateWindow("c1", singleDayWindow("2025-06-01", "09:00", "10:00"))
		u.UpdateWindow("c1", singleDayWindow("2025-06-01", "11:00", "12:00"))
		waitForStatus(t, u, "c1", schedule.StatusAvailable)
	})

	t.Run("busy verdict", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		u.UpdateWindow("c1", singleDayWindow("2025-06-01", "09:00", "10:00"))
		waitForStatus(t, u, "c1", schedule.StatusBusy)
	})

	t.Run("invalid window resolves without waiting", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), time.Hour)
		t.Cleanup(u.Stop)

		status, msg := u.UpdateWindow("c1", singleDayWindow("2025-06-01", "10:00", "09:00"))
		assert.Equal(t, schedule.StatusInvalid, status)
		assert.NotEmpty(t, msg)
	})

	t.Run("incomplete window is idle", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), time.Hour)
		t.Cleanup(u.Stop)

		status, _ := u.UpdateWindow("c1", schedule.Window{})
		assert.Equal(t, schedule.StatusIdle, status)
	})

	t.Run("reset cancels a pending check", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		u.UpdateWindow("c1", singleDayWindow("2025-06-02", "09:00", "10:00"))
		u.Reset("c1")

		time.Sleep(4 * testDebounce)
		status, _ := u.Status("c1")
		assert.Equal(t, schedule.StatusIdle, status)
		assert.False(t, u.Window("c1").Complete())
	})

	t.Run("sessions are isolated per client", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		u.UpdateWindow("c1", singleDayWindow("2025-06-01", "09:00", "10:00"))
		waitForStatus(t, u, "c1", schedule.StatusBusy)

		status, _ := u.Status("c2")
		assert.Equal(t, schedule.StatusIdle, status)
	})
}

func TestApplyHelpers(t *testing.T) {
	busy := schedule.BusyMap{}

	t.Run("slot selection derives the end an hour later", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		u.ApplySlot("c1", timeutil.MustParseClockTime("09:00"))
		w := u.Window("c1")
		assert.Equal(t, "09:00", w.StartTime.String())
		assert.Equal(t, "10:00", w.EndTime.String())
		assert.False(t, w.MultiDay)
	})

	t.Run("committed range switches to multi-day", func(t *testing.T) {
		u := usecase.NewAvailabilityUseCase(newWatcher(t, busy), testDebounce)
		t.Cleanup(u.Stop)

		u.ApplyRange("c1", timeutil.MustParseLocalDate("2025-06-01"), timeutil.MustParseLocalDate("2025-06-03"))
		w := u.Window("c1")
		assert.True(t, w.MultiDay)
		assert.Equal(t, "2025-06-01", w.StartDate.String())
		assert.Equal(t, "2025-06-03", w.EndDate.String())
		waitForStatus(t, u, "c1", schedule.StatusAvailable)
	})
}
