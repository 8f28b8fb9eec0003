package timeline

import (
	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/util"
)

// Mapper converts day indices to pixel offsets. It carries no state
// beyond its three parameters, so re-invoking after a zoom change is
// correct without any reset step.
type Mapper struct {
	DayWidth int
	DayCount int
	Mirrored bool
}

// NewMapper builds a mapper with the day width clamped to its bounds.
func NewMapper(dayWidth, dayCount int, mirrored bool) Mapper {
	return Mapper{
		DayWidth: util.Clamp(dayWidth, config.DayWidthMin, config.DayWidthMax),
		DayCount: dayCount,
		Mirrored: mirrored,
	}
}

// TotalWidth is the pixel width of the whole grid.
func (m Mapper) TotalWidth() int {
	return m.DayCount * m.DayWidth
}

// LeftEdge is the natural-axis offset of a day cell.
func (m Mapper) LeftEdge(index int) int {
	return index * m.DayWidth
}

// CellLeft is the rendered left edge of a day cell. On a mirrored axis
// index 0 sits at the far end of the pixel range; the index semantics
// stay untouched everywhere else.
func (m Mapper) CellLeft(index int) int {
	if m.Mirrored {
		return m.TotalWidth() - (index+1)*m.DayWidth
	}
	return m.LeftEdge(index)
}

// Center is the horizontal midpoint of a day cell, where pins, date
// tags and the today marker anchor.
func (m Mapper) Center(index int) float64 {
	return float64(m.CellLeft(index)) + float64(m.DayWidth)/2
}

// SpanWidth is the pixel width of a half-open index range.
func (m Mapper) SpanWidth(start, end int) int {
	return m.LeftEdge(end) - m.LeftEdge(start)
}

// TodayIndex locates today relative to the first visible day, clamped
// so an out-of-window today still renders at the nearest visible edge.
func (m Mapper) TodayIndex(firstVisibleDay string) int {
	idx := calendar.DayDifference(firstVisibleDay, calendar.Today())
	return util.Clamp(idx, 0, m.DayCount-1)
}
