// Package calendar implements day-level date arithmetic on canonical
// ISO YYYY-MM-DD strings. All math goes through midnight UTC so day
// differences never drift across DST transitions.
package calendar

import (
	"time"
)

const isoLayout = "2006-01-02"

// Parse converts a canonical ISO date string to a midnight-UTC time.
func Parse(s string) (time.Time, error) {
	return time.Parse(isoLayout, s)
}

// Valid reports whether s is a canonical ISO date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize strips the time-of-day component and returns the canonical
// ISO string.
func Normalize(t time.Time) string {
	return t.Format(isoLayout)
}

// Today returns the current date in the local timezone, normalized.
func Today() string {
	return Normalize(time.Now())
}

// AddDays shifts an ISO date by n days, which may be negative. Month
// and year rollover are handled by the time package. An unparsable
// input yields the empty string.
func AddDays(date string, n int) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	return Normalize(t.AddDate(0, 0, n))
}

// DayDifference returns the signed day count b - a. Both dates must be
// canonical; anything else counts as zero distance.
func DayDifference(a, b string) int {
	ta, err := Parse(a)
	if err != nil {
		return 0
	}
	tb, err := Parse(b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta) / (24 * time.Hour))
}

// Duration returns the inclusive day span of [start,end]. Both bounds
// count, so a same-day task has duration 1.
func Duration(start, end string) int {
	return DayDifference(start, end) + 1
}

// ISOWeek returns the ISO 8601 week number of an ISO date, or 0 for an
// unparsable input.
func ISOWeek(date string) int {
	t, err := Parse(date)
	if err != nil {
		return 0
	}
	_, week := t.ISOWeek()
	return week
}

// Weekday returns the weekday of an ISO date. Unparsable input maps to
// Sunday, which never starts a week segment.
func Weekday(date string) time.Weekday {
	t, err := Parse(date)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// FormatDayMonth renders an ISO date as the short DD.MM tag used on
// pins and in the day scale.
func FormatDayMonth(date string) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	return t.Format("02.01")
}

// MonthLabel renders the month band label for an ISO date.
func MonthLabel(date string) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}
