package timeutil

import (
	"fmt"
	"time"

	"folio-api/internal/pkg/errs"
)

// LocalDate is a calendar date (YYYY-MM-DD) with no timezone attached.
// Parsing never goes through time.Parse in UTC so a date entered as
// "2025-06-01" stays June 1st regardless of the host timezone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

var ErrInvalidDate = errs.New("invalid date, expected YYYY-MM-DD")

func ParseLocalDate(s string) (LocalDate, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &y, &m, &d); err != nil {
		return LocalDate{}, ErrInvalidDate
	}
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return LocalDate{}, ErrInvalidDate
	}
	if m < 1 || m > 12 || d < 1 || d > DaysInMonth(y, time.Month(m)) {
		return LocalDate{}, ErrInvalidDate
	}
	return LocalDate{Year: y, Month: time.Month(m), Day: d}, nil
}

// MustParseLocalDate is for static dates in tests and fixtures.
func MustParseLocalDate(s string) LocalDate {
	d, err := ParseLocalDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func DateOf(t time.Time) LocalDate {
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// toTime anchors the date at local midnight, matching how the calendar
// widget compares days.
func (d LocalDate) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d LocalDate) Before(other LocalDate) bool {
	return d.toTime().Before(other.toTime())
}

func (d LocalDate) After(other LocalDate) bool {
	return d.toTime().After(other.toTime())
}

func (d LocalDate) Equal(other LocalDate) bool {
	return d == other
}

// Compare returns -1, 0, or +1.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

func (d LocalDate) AddDays(n int) LocalDate {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// DaysInclusive counts the days from a through b, both endpoints included.
// A same-day range is 1 day.
func DaysInclusive(a, b LocalDate) int {
	if b.Before(a) {
		a, b = b, a
	}
	return int(b.toTime().Sub(a.toTime()).Hours()/24) + 1
}

// MinDate and MaxDate order a pair of dates regardless of click order.
func MinDate(a, b LocalDate) LocalDate {
	if b.Before(a) {
		return b
	}
	return a
}

func MaxDate(a, b LocalDate) LocalDate {
	if b.After(a) {
		return b
	}
	return a
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of the 1st of the month (Sunday = 0),
// used for the leading padding of the calendar grid.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// FormatShort renders "Jun 1" style labels used across the request list.
func (d LocalDate) FormatShort() string {
	return fmt.Sprintf("%s %d", d.Month.String()[:3], d.Day)
}
