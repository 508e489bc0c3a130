package usecase

import (
	"context"
	"sync"
	"time"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"
)

// PickerState is the client-facing view of a picker session.
type PickerState struct {
	Anchored bool
	Start    timeutil.LocalDate
	End      timeutil.LocalDate
	HasRange bool
}

// ScheduleUseCase covers the calendar surfaces: the admin busy toggle,
// the public day-slot view, and per-client range-picker sessions whose
// commits feed the availability checker.
type ScheduleUseCase interface {
	ToggleBusy(ctx context.Context, date, slot string) ([]string, error)
	DaySlots(ctx context.Context, date string) (busy []string, err error)
	Click(clientID, date string) error
	Hover(clientID, date string) error
	CancelPicker(clientID string)
	SelectSlot(clientID, slot string) error
	Calendar(clientID string, year int, month time.Month) []schedule.DayState
	State(clientID string) PickerState
}

type scheduleUseCaseImpl struct {
	busyRepo BusyRepository
	watcher  *BusyWatcher
	checkers AvailabilityUseCase

	mu      sync.Mutex
	pickers map[string]*schedule.RangePicker
}

func NewScheduleUseCase(busyRepo BusyRepository, watcher *BusyWatcher, checkers AvailabilityUseCase) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		busyRepo: busyRepo,
		watcher:  watcher,
		checkers: checkers,
		pickers:  make(map[string]*schedule.RangePicker),
	}
}

// ToggleBusy flips one slot and persists the whole map. Concurrent
// admin sessions resolve last-write-wins; the returned slice is the
// day's busy slots after this write.
func (u *scheduleUseCaseImpl) ToggleBusy(ctx context.Context, date, slot string) ([]string, error) {
	d, err := timeutil.ParseLocalDate(date)
	if err != nil {
		return nil, errs.ErrInvalidDate
	}
	busy, err := u.busyRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := busy.Toggle(d, slot)
	if err != nil {
		return nil, errs.ErrInvalidTimeSlot
	}
	if err := u.busyRepo.Save(ctx, updated); err != nil {
		return nil, err
	}
	u.watcher.Refresh(ctx)
	return updated.SlotsFor(d), nil
}

func (u *scheduleUseCaseImpl) DaySlots(ctx context.Context, date string) ([]string, error) {
	d, err := timeutil.ParseLocalDate(date)
	if err != nil {
		return nil, errs.ErrInvalidDate
	}
	return u.watcher.Snapshot().SlotsFor(d), nil
}

func (u *scheduleUseCaseImpl) Click(clientID, date string) error {
	d, err := timeutil.ParseLocalDate(date)
	if err != nil {
		return errs.ErrInvalidDate
	}
	u.withPicker(clientID, func(p *schedule.RangePicker) { p.Click(d) })
	return nil
}

func (u *scheduleUseCaseImpl) Hover(clientID, date string) error {
	d, err := timeutil.ParseLocalDate(date)
	if err != nil {
		return errs.ErrInvalidDate
	}
	u.withPicker(clientID, func(p *schedule.RangePicker) { p.Hover(d) })
	return nil
}

func (u *scheduleUseCaseImpl) CancelPicker(clientID string) {
	u.withPicker(clientID, func(p *schedule.RangePicker) { p.Cancel() })
}

// SelectSlot commits an hourly start slot; the end time is derived one
// hour later.
func (u *scheduleUseCaseImpl) SelectSlot(clientID, slot string) error {
	t, err := timeutil.ParseClockTime(slot)
	if err != nil || !schedule.IsValidSlot(t.String()) {
		return errs.ErrInvalidTimeSlot
	}
	u.checkers.ApplySlot(clientID, t)
	return nil
}

func (u *scheduleUseCaseImpl) Calendar(clientID string, year int, month time.Month) []schedule.DayState {
	var states []schedule.DayState
	u.withPicker(clientID, func(p *schedule.RangePicker) {
		states = p.MonthStates(year, month)
	})
	return states
}

func (u *scheduleUseCaseImpl) State(clientID string) PickerState {
	var st PickerState
	u.withPicker(clientID, func(p *schedule.RangePicker) {
		st.Anchored = p.Anchored()
		if start, end, ok := p.Committed(); ok {
			st.Start, st.End, st.HasRange = start, end, true
		}
	})
	return st
}

// withPicker runs fn on the client's picker under the hub lock.
func (u *scheduleUseCaseImpl) withPicker(clientID string, fn func(p *schedule.RangePicker)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.pickers[clientID]
	if !ok {
		p = schedule.NewRangePicker(func(start, end timeutil.LocalDate) {
			u.checkers.ApplyRange(clientID, start, end)
		})
		u.pickers[clientID] = p
	}
	fn(p)
}
