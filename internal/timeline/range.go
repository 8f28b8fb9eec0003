// Package timeline converts a sparse set of date-ranged tasks into a
// dense, pixel-addressable day grid with week and month banding, and
// maps day indices to coordinates under a mirrorable axis. Everything
// here is a pure function of its inputs; the grid is recomputed from
// scratch on every render.
package timeline

import (
	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/models"
)

// DateRange is the inclusive calendar window materialized by the grid.
type DateRange struct {
	Min string
	Max string
}

// Span is the inclusive day count of the range.
func (r DateRange) Span() int {
	return calendar.Duration(r.Min, r.Max)
}

// ResolveRange computes the visible window for a task set. With no
// datable tasks the window falls back to [today-15, today+45]. Both
// ends are padded, and a window narrower than minVisibleDays grows
// forward only, so early dates stay stable across viewport resizes.
func ResolveRange(tasks []models.Task, minVisibleDays int) DateRange {
	return resolveRange(tasks, minVisibleDays, calendar.Today())
}

func resolveRange(tasks []models.Task, minVisibleDays int, today string) DateRange {
	var min, max string
	for _, t := range tasks {
		if calendar.Valid(t.Start) && (min == "" || t.Start < min) {
			min = t.Start
		}
		if calendar.Valid(t.End) && (max == "" || t.End > max) {
			max = t.End
		}
	}
	if min == "" || max == "" {
		return DateRange{
			Min: calendar.AddDays(today, -config.FallbackDaysBack),
			Max: calendar.AddDays(today, config.FallbackDaysForward),
		}
	}
	if max < min {
		max = min
	}

	min = calendar.AddDays(min, -config.RangePadding)
	max = calendar.AddDays(max, config.RangePadding)

	if minVisibleDays < config.MinVisibleDays {
		minVisibleDays = config.MinVisibleDays
	}
	if span := calendar.Duration(min, max); span < minVisibleDays {
		max = calendar.AddDays(max, minVisibleDays-span)
	}
	return DateRange{Min: min, Max: max}
}
