package schedule

import (
	"slices"

	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"
)

var ErrUnknownSlot = errs.New("unknown time slot")

// BusyMap maps a calendar date (YYYY-MM-DD) to the slots the admin marked
// busy on that day. Busy marking and guest requests are independent
// records: submitting a request never writes here.
type BusyMap map[string][]string

func (b BusyMap) SlotsFor(date timeutil.LocalDate) []string {
	return b[date.String()]
}

func (b BusyMap) IsBusy(date timeutil.LocalDate, slot string) bool {
	return slices.Contains(b[date.String()], slot)
}

// HasBusySlot reports whether any slot is marked on the given day.
func (b BusyMap) HasBusySlot(date timeutil.LocalDate) bool {
	return len(b[date.String()]) > 0
}

// Toggle flips a slot for a date and returns the updated map. The
// receiver is not mutated; callers persist the returned value in one
// read-modify-write step.
func (b BusyMap) Toggle(date timeutil.LocalDate, slot string) (BusyMap, error) {
	if !IsValidSlot(slot) {
		return nil, ErrUnknownSlot
	}

	key := date.String()
	updated := make(BusyMap, len(b))
	for k, v := range b {
		updated[k] = slices.Clone(v)
	}

	current := updated[key]
	if i := slices.Index(current, slot); i >= 0 {
		updated[key] = slices.Delete(current, i, i+1)
	} else {
		updated[key] = append(current, slot)
	}
	return updated, nil
}
