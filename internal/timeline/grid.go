package timeline

import (
	"time"

	"github.com/Elish84/Gantt/internal/calendar"
)

// WeekSegment is a maximal run of consecutive days in one ISO week.
// End is exclusive. Segment boundaries fall on Mondays except for the
// first segment, which may start mid-week.
type WeekSegment struct {
	Week  int
	Start int
	End   int
}

// MonthSegment is a run of consecutive days within one calendar month.
// End is exclusive.
type MonthSegment struct {
	Label string
	Start int
	End   int
}

// BuildDays expands an inclusive date range into the ordered day
// sequence that defines the DayIndex space: position = index.
func BuildDays(min, max string) []string {
	if !calendar.Valid(min) || !calendar.Valid(max) || max < min {
		return nil
	}
	n := calendar.Duration(min, max)
	days := make([]string, 0, n)
	for d := min; d <= max && d != ""; d = calendar.AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// BuildWeekSegments scans the day sequence and opens a new segment on
// every Monday after index 0. A single-day grid yields one segment.
func BuildWeekSegments(days []string) []WeekSegment {
	if len(days) == 0 {
		return nil
	}
	var segs []WeekSegment
	segStart := 0
	week := calendar.ISOWeek(days[0])
	for i := 1; i < len(days); i++ {
		if calendar.Weekday(days[i]) == time.Monday {
			segs = append(segs, WeekSegment{Week: week, Start: segStart, End: i})
			segStart = i
			week = calendar.ISOWeek(days[i])
		}
	}
	return append(segs, WeekSegment{Week: week, Start: segStart, End: len(days)})
}

// BuildMonthSegments follows the same scan keyed on the month+year
// label instead of week starts.
func BuildMonthSegments(days []string) []MonthSegment {
	if len(days) == 0 {
		return nil
	}
	var segs []MonthSegment
	segStart := 0
	label := calendar.MonthLabel(days[0])
	for i := 1; i < len(days); i++ {
		if l := calendar.MonthLabel(days[i]); l != label {
			segs = append(segs, MonthSegment{Label: label, Start: segStart, End: i})
			segStart = i
			label = l
		}
	}
	return append(segs, MonthSegment{Label: label, Start: segStart, End: len(days)})
}
