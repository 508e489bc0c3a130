package schedule

// Status classifies the pending window against the busy map.
type Status string

const (
	StatusIdle      Status = "idle"     // inputs incomplete
	StatusInvalid   Status = "invalid"  // end does not follow start
	StatusChecking  Status = "checking" // validation passed, evaluation pending
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
)

func (s Status) String() string {
	return string(s)
}

const (
	msgInvalidMultiDay  = "End date must come after the start date."
	msgInvalidSingleDay = "End time must come after the start time."
	msgAvailable        = "The window looks free. You can send a request."
	msgBusy             = "That window overlaps a busy slot."
)

// Evaluate classifies a window against the busy map. It is the real
// conflict check: single-day windows conflict when any hourly slot they
// cover is marked busy on that date; multi-day windows conflict when any
// day in the inclusive range has a busy slot.
func Evaluate(w Window, busy BusyMap) (Status, string) {
	if !w.Complete() {
		return StatusIdle, ""
	}
	if !w.Valid() {
		if w.MultiDay {
			return StatusInvalid, msgInvalidMultiDay
		}
		return StatusInvalid, msgInvalidSingleDay
	}

	if w.MultiDay {
		for _, day := range w.Dates() {
			if busy.HasBusySlot(day) {
				return StatusBusy, msgBusy
			}
		}
		return StatusAvailable, msgAvailable
	}

	for _, slot := range SlotsWithin(w.StartTime, w.EndTime) {
		if busy.IsBusy(w.StartDate, slot) {
			return StatusBusy, msgBusy
		}
	}
	return StatusAvailable, msgAvailable
}
