package schedule

import (
	"fmt"

	"folio-api/internal/pkg/timeutil"
)

// Window is the date/time span a guest is asking for. Single-day windows
// carry clock times; multi-day windows span whole days and the time
// fields are meaningless.
type Window struct {
	MultiDay  bool
	StartDate timeutil.LocalDate
	EndDate   timeutil.LocalDate
	StartTime timeutil.ClockTime
	EndTime   timeutil.ClockTime
}

// Complete reports whether every field the current mode needs is filled in.
func (w Window) Complete() bool {
	if w.StartDate.IsZero() {
		return false
	}
	if w.MultiDay {
		return !w.EndDate.IsZero()
	}
	return !w.StartTime.IsZero() && !w.EndTime.IsZero()
}

// Valid reports whether the end strictly follows the start. Multi-day
// requires endDate > startDate; single-day requires endTime > startTime
// on the one date.
func (w Window) Valid() bool {
	if w.MultiDay {
		return w.EndDate.After(w.StartDate)
	}
	return w.EndTime.After(w.StartTime)
}

// Dates returns every calendar day the window touches, inclusive.
func (w Window) Dates() []timeutil.LocalDate {
	if !w.MultiDay {
		return []timeutil.LocalDate{w.StartDate}
	}
	var days []timeutil.LocalDate
	for d := w.StartDate; !d.After(w.EndDate); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Label renders the admin-facing summary:
// "Jun 1 - Jun 3 (3 days)" for multi-day, "Jun 1 • 09:00 - 10:30 (1h 30m)" otherwise.
func (w Window) Label() string {
	if w.MultiDay {
		days := timeutil.DaysInclusive(w.StartDate, w.EndDate)
		return fmt.Sprintf("%s - %s (%d days)", w.StartDate.FormatShort(), w.EndDate.FormatShort(), days)
	}
	mins := timeutil.MinutesBetween(w.StartTime, w.EndTime)
	return fmt.Sprintf("%s • %s - %s (%s)",
		w.StartDate.FormatShort(), w.StartTime, w.EndTime, timeutil.FormatDuration(mins))
}
