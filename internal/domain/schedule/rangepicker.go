package schedule

import (
	"time"

	"folio-api/internal/pkg/timeutil"
)

// RangePicker is the interactive date-range selection state machine.
//
// Idle: no anchor. A click fixes the anchor and moves to Anchored.
// Anchored: pointer movement updates the hover preview; a second click
// orders the two endpoints (start = min, end = max), commits the range,
// and returns to Idle. Cancel (click outside the widget) drops the
// anchor without committing.
type RangePicker struct {
	anchor *timeutil.LocalDate
	hover  *timeutil.LocalDate

	start timeutil.LocalDate
	end   timeutil.LocalDate

	onCommit func(start, end timeutil.LocalDate)
}

func NewRangePicker(onCommit func(start, end timeutil.LocalDate)) *RangePicker {
	return &RangePicker{onCommit: onCommit}
}

func (p *RangePicker) Anchored() bool {
	return p.anchor != nil
}

// Committed returns the last committed range, if any.
func (p *RangePicker) Committed() (start, end timeutil.LocalDate, ok bool) {
	if p.start.IsZero() {
		return timeutil.LocalDate{}, timeutil.LocalDate{}, false
	}
	return p.start, p.end, true
}

// SetCommitted seeds the picker with an externally chosen range (e.g. the
// form's date inputs) without running the commit callback.
func (p *RangePicker) SetCommitted(start, end timeutil.LocalDate) {
	p.start = timeutil.MinDate(start, end)
	p.end = timeutil.MaxDate(start, end)
	p.anchor = nil
	p.hover = nil
}

// Click handles a day click. First click anchors; second click commits
// the ordered pair regardless of click order.
func (p *RangePicker) Click(day timeutil.LocalDate) {
	if p.anchor == nil {
		d := day
		p.anchor = &d
		p.hover = nil // reset hover to avoid a stale preview
		return
	}

	start := timeutil.MinDate(*p.anchor, day)
	end := timeutil.MaxDate(*p.anchor, day)
	p.start, p.end = start, end
	p.anchor = nil
	p.hover = nil
	if p.onCommit != nil {
		p.onCommit(start, end)
	}
}

// Hover updates the preview endpoint. It only matters while Anchored;
// it never commits anything.
func (p *RangePicker) Hover(day timeutil.LocalDate) {
	if p.anchor == nil {
		return
	}
	d := day
	p.hover = &d
}

// Cancel drops an in-progress selection without committing.
func (p *RangePicker) Cancel() {
	p.anchor = nil
	p.hover = nil
}

// DayState is the visual classification of one calendar cell.
type DayState struct {
	Day     int  `json:"day"`
	IsStart bool `json:"isStart"`
	IsEnd   bool `json:"isEnd"`
	InRange bool `json:"inRange"`
}

// DayStateFor applies the rendering rule to a single day: the day is an
// endpoint when it equals the anchor or a committed endpoint, with hover
// standing in for the uncommitted end while Anchored; it is in range
// when strictly between the effective endpoints.
func (p *RangePicker) DayStateFor(day timeutil.LocalDate) DayState {
	st := DayState{Day: day.Day}

	if p.anchor != nil {
		st.IsStart = day.Equal(*p.anchor)
		if p.hover != nil {
			lo := timeutil.MinDate(*p.anchor, *p.hover)
			hi := timeutil.MaxDate(*p.anchor, *p.hover)
			st.InRange = day.After(lo) && day.Before(hi)
			if day.Equal(*p.hover) {
				st.IsEnd = true
			}
			// Hovering the anchor itself marks the day as both endpoints.
			if p.anchor.Equal(*p.hover) && day.Equal(*p.anchor) {
				st.IsStart = true
				st.IsEnd = true
			}
		}
		return st
	}

	if !p.start.IsZero() {
		st.IsStart = day.Equal(p.start)
		st.IsEnd = day.Equal(p.end)
		st.InRange = day.After(p.start) && day.Before(p.end)
	}
	return st
}

// MonthStates renders the visual state of every day in a month.
func (p *RangePicker) MonthStates(year int, month time.Month) []DayState {
	states := make([]DayState, 0, timeutil.DaysInMonth(year, month))
	for d := 1; d <= timeutil.DaysInMonth(year, month); d++ {
		states = append(states, p.DayStateFor(timeutil.LocalDate{Year: year, Month: month, Day: d}))
	}
	return states
}
