package timeutil

import (
	"fmt"

	"folio-api/internal/pkg/errs"
)

// ClockTime is a wall-clock time of day (HH:mm).
type ClockTime struct {
	Hour   int
	Minute int
}

var ErrInvalidClockTime = errs.New("invalid time, expected HH:mm")

func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, ErrInvalidClockTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func MustParseClockTime(s string) ClockTime {
	t, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t ClockTime) IsZero() bool {
	return t == ClockTime{}
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t ClockTime) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

func (t ClockTime) After(other ClockTime) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

// AddHours uses plain hour arithmetic with no day rollover: the slot grid
// ends well before midnight, so 20:00 + 1h is simply 21:00.
func (t ClockTime) AddHours(n int) ClockTime {
	h := t.Hour + n
	if h > 23 {
		h = 23
	}
	if h < 0 {
		h = 0
	}
	return ClockTime{Hour: h, Minute: t.Minute}
}

// MinutesBetween returns end - start in minutes.
func MinutesBetween(start, end ClockTime) int {
	return end.TotalMinutes() - start.TotalMinutes()
}

// FormatDuration renders "1h" or "1h 30m" labels for single-day windows.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
