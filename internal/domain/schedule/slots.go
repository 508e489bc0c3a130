package schedule

import (
	"slices"

	"folio-api/internal/pkg/timeutil"
)

// Slots is the fixed hourly grid shown on the availability view. Busy
// marking and conflict detection only ever operate on these labels.
var Slots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

func IsValidSlot(slot string) bool {
	return slices.Contains(Slots, slot)
}

// SlotsWithin returns the slots a [start, end) time window covers.
// A slot conflicts when start <= slot < end.
func SlotsWithin(start, end timeutil.ClockTime) []string {
	var covered []string
	for _, s := range Slots {
		st := timeutil.MustParseClockTime(s)
		if !st.Before(start) && st.Before(end) {
			covered = append(covered, s)
		}
	}
	return covered
}

// AutoEndTime derives the end of a quick slot selection: exactly one hour
// after the chosen start, clamped by plain hour arithmetic.
func AutoEndTime(start timeutil.ClockTime) timeutil.ClockTime {
	return start.AddHours(1)
}
