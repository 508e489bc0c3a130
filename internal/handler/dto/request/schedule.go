package request

import (
	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"
)

type ToggleBusyRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

type PickerClickRequest struct {
	Date string `json:"date" binding:"required"`
}

type SlotSelectRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// AvailabilityWindowRequest mirrors the booking form's schedule inputs.
// Empty strings mean "not filled in yet"; the checker treats the
// resulting window as incomplete rather than erroring.
type AvailabilityWindowRequest struct {
	IsMultiDay bool   `json:"isMultiDay"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
}

func (r AvailabilityWindowRequest) ToWindow() (schedule.Window, error) {
	w := schedule.Window{MultiDay: r.IsMultiDay}
	var err error

	if r.StartDate != "" {
		if w.StartDate, err = timeutil.ParseLocalDate(r.StartDate); err != nil {
			return schedule.Window{}, errs.ErrInvalidDate
		}
	}
	if r.EndDate != "" {
		if w.EndDate, err = timeutil.ParseLocalDate(r.EndDate); err != nil {
			return schedule.Window{}, errs.ErrInvalidDate
		}
	}
	if r.StartTime != "" {
		if w.StartTime, err = timeutil.ParseClockTime(r.StartTime); err != nil {
			return schedule.Window{}, errs.ErrInvalidTimeSlot
		}
	}
	if r.EndTime != "" {
		if w.EndTime, err = timeutil.ParseClockTime(r.EndTime); err != nil {
			return schedule.Window{}, errs.ErrInvalidTimeSlot
		}
	}
	return w, nil
}
