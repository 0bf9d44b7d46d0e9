// Package caldate holds the calendar primitives the exclusion core
// builds on: weekday-name resolution, date-token parsing and
// calendar-day arithmetic.
package caldate

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for the <date> token of a day override rule.
var dayLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02T15:04:05",
}

// ParseDay parses a date token and returns midnight UTC of that calendar
// day. Any time-of-day in the token is discarded.
func ParseDay(token string) (time.Time, error) {
	for _, layout := range dayLayouts {
		t, err := time.Parse(layout, token)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", token)
}

// Weekday resolves an English weekday name to a time.Weekday. Matching is
// case-insensitive and accepts any prefix of at least three characters,
// so "mon", "Monday" and "THU" all resolve.
func Weekday(name string) (time.Weekday, bool) {
	n := strings.ToLower(name)
	if len(n) < 3 {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.HasPrefix(strings.ToLower(d.String()), n) {
			return d, true
		}
	}
	return 0, false
}

// DayOf returns midnight of t's calendar day, in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the calendar day after t's day, in t's
// location. Field arithmetic keeps this correct across DST transitions.
func NextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// AtTime returns t's calendar day with the given time of day. Values are
// not range-checked; time.Date normalizes anything out of range.
func AtTime(day time.Time, hh, mm, ss int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, ss, 0, day.Location())
}
