package usecase

import (
	"context"
	"time"

	"folio-api/internal/domain/booking"
	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/clock"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"
)

type RequestsRepository interface {
	Append(ctx context.Context, req *booking.Request) error
	List(ctx context.Context) ([]*booking.Request, error)
}

type UserActionRepository interface {
	Like(ctx context.Context, clientID, itemID string) (bool, error)
	SetLastRequestTime(ctx context.Context, clientID string, at time.Time) error
	LastRequestTime(ctx context.Context, clientID string) time.Time
}

// SubmitInput carries the raw booking form. Dates and times arrive as
// strings and are parsed here; everything else is validated by the
// domain constructor.
type SubmitInput struct {
	Name            string
	Contact         string
	ContactPlatform string
	Reason          string
	SubReason       string
	OtherDetail     string
	Location        string
	IsMultiDay      bool
	StartDate       string
	EndDate         string
	StartTime       string
	EndTime         string
}

type BookingUseCase interface {
	Submit(ctx context.Context, clientID string, in SubmitInput) (*booking.Request, error)
	List(ctx context.Context) ([]*booking.Request, error)
}

type bookingUseCaseImpl struct {
	requests RequestsRepository
	actions  UserActionRepository
	watcher  *BusyWatcher
	checkers AvailabilityUseCase
	cooldown time.Duration
	clock    clock.Clock
}

func NewBookingUseCase(
	requests RequestsRepository,
	actions UserActionRepository,
	watcher *BusyWatcher,
	checkers AvailabilityUseCase,
	cooldown time.Duration,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		requests: requests,
		actions:  actions,
		watcher:  watcher,
		checkers: checkers,
		cooldown: cooldown,
		clock:    clk,
	}
}

func (u *bookingUseCaseImpl) Submit(ctx context.Context, clientID string, in SubmitInput) (*booking.Request, error) {
	w, err := parseWindow(in)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()

	// Cooldown gate: a client may submit again exactly when the full
	// cooldown has elapsed, not a millisecond sooner.
	last := u.actions.LastRequestTime(ctx, clientID)
	if !last.IsZero() && now.Sub(last) < u.cooldown {
		return nil, errs.ErrCooldownActive
	}

	req, err := booking.NewRequest(
		in.Name, in.Contact, in.ContactPlatform,
		in.Reason, in.SubReason, in.OtherDetail,
		in.Location, w, now,
	)
	if err != nil {
		return nil, err
	}

	// The window must check out against the busy map at submit time.
	if status, _ := schedule.Evaluate(w, u.watcher.Snapshot()); status != schedule.StatusAvailable {
		return nil, errs.ErrWindowNotAvailable
	}

	if err := u.requests.Append(ctx, req); err != nil {
		return nil, err
	}
	if err := u.actions.SetLastRequestTime(ctx, clientID, now); err != nil {
		return nil, err
	}
	u.checkers.Reset(clientID)

	return req, nil
}

func (u *bookingUseCaseImpl) List(ctx context.Context) ([]*booking.Request, error) {
	return u.requests.List(ctx)
}

func parseWindow(in SubmitInput) (schedule.Window, error) {
	w := schedule.Window{MultiDay: in.IsMultiDay}

	var err error
	if w.StartDate, err = timeutil.ParseLocalDate(in.StartDate); err != nil {
		return schedule.Window{}, errs.ErrInvalidDate
	}
	if in.IsMultiDay {
		if w.EndDate, err = timeutil.ParseLocalDate(in.EndDate); err != nil {
			return schedule.Window{}, errs.ErrInvalidDate
		}
		return w, nil
	}
	if w.StartTime, err = timeutil.ParseClockTime(in.StartTime); err != nil {
		return schedule.Window{}, errs.ErrInvalidTimeSlot
	}
	if w.EndTime, err = timeutil.ParseClockTime(in.EndTime); err != nil {
		return schedule.Window{}, errs.ErrInvalidTimeSlot
	}
	return w, nil
}
