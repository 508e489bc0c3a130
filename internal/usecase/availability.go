package usecase

import (
	"sync"
	"time"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/timeutil"
)

// AvailabilityUseCase tracks one availability-check session per client:
// the window under edit, a debounce timer, and the last verdict. Any
// field edit restarts the debounce; the real evaluation only runs once
// the client has been quiet for the full interval, and always sees the
// values of the last edit.
type AvailabilityUseCase interface {
	UpdateWindow(clientID string, w schedule.Window) (schedule.Status, string)
	ApplyRange(clientID string, start, end timeutil.LocalDate)
	ApplySlot(clientID string, slot timeutil.ClockTime)
	Status(clientID string) (schedule.Status, string)
	Window(clientID string) schedule.Window
	Reset(clientID string)
	Stop()
}

type checkerSession struct {
	window  schedule.Window
	status  schedule.Status
	message string
	timer   *time.Timer
	gen     uint64 // invalidates stale timer fires
}

type availabilityUseCaseImpl struct {
	watcher  *BusyWatcher
	debounce time.Duration

	mu       sync.Mutex
	sessions map[string]*checkerSession
}

func NewAvailabilityUseCase(watcher *BusyWatcher, debounce time.Duration) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		watcher:  watcher,
		debounce: debounce,
		sessions: make(map[string]*checkerSession),
	}
}

func (u *availabilityUseCaseImpl) UpdateWindow(clientID string, w schedule.Window) (schedule.Status, string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s := u.session(clientID)
	s.window = w
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	// Incomplete and invalid windows resolve immediately; only a
	// plausible window is worth a debounced store check.
	if !w.Complete() {
		s.status, s.message = schedule.StatusIdle, ""
		return s.status, s.message
	}
	if !w.Valid() {
		s.status, s.message = schedule.Evaluate(w, nil)
		return s.status, s.message
	}

	s.status, s.message = schedule.StatusChecking, ""
	gen := s.gen
	s.timer = time.AfterFunc(u.debounce, func() {
		u.fire(clientID, gen)
	})
	return s.status, s.message
}

func (u *availabilityUseCaseImpl) fire(clientID string, gen uint64) {
	busy := u.watcher.Snapshot()

	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[clientID]
	if !ok || s.gen != gen {
		return // superseded by a newer edit or a reset
	}
	s.status, s.message = schedule.Evaluate(s.window, busy)
	s.timer = nil
}

// ApplyRange merges a committed calendar range into the session window.
func (u *availabilityUseCaseImpl) ApplyRange(clientID string, start, end timeutil.LocalDate) {
	w := u.Window(clientID)
	w.StartDate = start
	if w.MultiDay || !start.Equal(end) {
		w.MultiDay = true
		w.EndDate = end
	}
	u.UpdateWindow(clientID, w)
}

// ApplySlot sets the start time and auto-derives the end an hour later.
func (u *availabilityUseCaseImpl) ApplySlot(clientID string, slot timeutil.ClockTime) {
	w := u.Window(clientID)
	w.MultiDay = false
	w.EndDate = timeutil.LocalDate{}
	w.StartTime = slot
	w.EndTime = schedule.AutoEndTime(slot)
	u.UpdateWindow(clientID, w)
}

func (u *availabilityUseCaseImpl) Status(clientID string) (schedule.Status, string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[clientID]
	if !ok {
		return schedule.StatusIdle, ""
	}
	return s.status, s.message
}

func (u *availabilityUseCaseImpl) Window(clientID string) schedule.Window {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.session(clientID).window
}

// Reset returns the session to idle, dropping any pending check.
func (u *availabilityUseCaseImpl) Reset(clientID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[clientID]
	if !ok {
		return
	}
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.window = schedule.Window{}
	s.status, s.message = schedule.StatusIdle, ""
}

// Stop cancels every pending timer. Called on shutdown.
func (u *availabilityUseCaseImpl) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, s := range u.sessions {
		s.gen++
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
	}
}

// session must be called with the lock held.
func (u *availabilityUseCaseImpl) session(clientID string) *checkerSession {
	s, ok := u.sessions[clientID]
	if !ok {
		s = &checkerSession{status: schedule.StatusIdle}
		u.sessions[clientID] = s
	}
	return s
}
