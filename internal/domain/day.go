package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day format used for keys and range bounds.
const DayLayout = "2006-01-02"

// LocalDay formats t as a calendar day in the local time zone.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD string as local midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, nil
}

// DateRange is a closed range of calendar days.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Contains reports whether day lies within the range, inclusive on both ends.
// YYYY-MM-DD strings order lexically the same as chronologically.
func (r DateRange) Contains(day string) bool {
	return day >= r.From && day <= r.To
}

// Empty reports whether To precedes From.
func (r DateRange) Empty() bool {
	return r.To < r.From
}

// DayRange returns the range [day-from, day-to] where from and to are day
// offsets back from t's local calendar date.
func DayRange(t time.Time, from, to int) DateRange {
	t = t.In(time.Local)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DateRange{
		From: midnight.AddDate(0, 0, -from).Format(DayLayout),
		To:   midnight.AddDate(0, 0, -to).Format(DayLayout),
	}
}
