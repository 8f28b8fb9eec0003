package timeline

import (
	"sort"

	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/models"
	"github.com/Elish84/Gantt/internal/util"
)

// ViewConfig is the render-side input to a layout pass.
type ViewConfig struct {
	DayWidth      int
	Mirrored      bool
	ViewportWidth int
	// Visible selects the topic ids to show. nil means all visible.
	Visible map[string]bool
}

// TaskRow positions one task within its topic block. Indices are
// clamped to the grid, so out-of-window tasks stay visible at the
// nearest edge.
type TaskRow struct {
	Task       models.Task
	StartIndex int
	EndIndex   int
	// SinglePin marks a zero-span row: one pin and a connector, no
	// range line. This is a distinct visual, not a degenerate range.
	SinglePin bool
	StartTag  string
	EndTag    string
}

// TopicBlock groups the rows of one topic. Hidden topics still carry
// full geometry so toggling visibility never recomputes layout.
type TopicBlock struct {
	Topic       models.Topic
	Visible     bool
	Placeholder bool
	Rows        []TaskRow
}

// Layout is the complete geometric description of one render pass.
type Layout struct {
	Range      DateRange
	Days       []string
	Weeks      []WeekSegment
	Months     []MonthSegment
	Mapper     Mapper
	Blocks     []TopicBlock
	TodayIndex int
}

// Compute lays out a project for the given view. It never mutates the
// project; grouped and sorted views are derived copies.
func Compute(p models.Project, cfg ViewConfig) Layout {
	dayWidth := util.Clamp(cfg.DayWidth, config.DayWidthMin, config.DayWidthMax)
	minVisible := config.MinVisibleDays
	if cfg.ViewportWidth > 0 {
		if byViewport := (cfg.ViewportWidth + dayWidth - 1) / dayWidth; byViewport > minVisible {
			minVisible = byViewport
		}
	}

	rng := ResolveRange(p.Tasks, minVisible)
	days := BuildDays(rng.Min, rng.Max)
	mapper := NewMapper(dayWidth, len(days), cfg.Mirrored)

	groups := groupTasks(p)
	blocks := make([]TopicBlock, 0, len(p.Topics))
	for _, topic := range p.Topics {
		block := TopicBlock{
			Topic:   topic,
			Visible: cfg.Visible == nil || cfg.Visible[topic.ID],
		}
		tasks := groups[topic.ID]
		if len(tasks) == 0 {
			block.Placeholder = true
		}
		for _, task := range tasks {
			block.Rows = append(block.Rows, layoutRow(task, days))
		}
		blocks = append(blocks, block)
	}

	return Layout{
		Range:      rng,
		Days:       days,
		Weeks:      BuildWeekSegments(days),
		Months:     BuildMonthSegments(days),
		Mapper:     mapper,
		Blocks:     blocks,
		TodayIndex: mapper.TodayIndex(rng.Min),
	}
}

// groupTasks buckets tasks by topic id, one (possibly empty) bucket
// per project topic, and stable-sorts each bucket by start date.
// Lexicographic compare is safe because dates are canonical ISO.
func groupTasks(p models.Project) map[string][]models.Task {
	groups := make(map[string][]models.Task, len(p.Topics))
	for _, topic := range p.Topics {
		groups[topic.ID] = nil
	}
	for _, task := range p.Tasks {
		id := task.TopicID
		if _, ok := groups[id]; !ok {
			id = models.UnassignedTopicID
		}
		groups[id] = append(groups[id], task)
	}
	for id, tasks := range groups {
		sorted := make([]models.Task, len(tasks))
		copy(sorted, tasks)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Start < sorted[j].Start
		})
		groups[id] = sorted
	}
	return groups
}

func layoutRow(task models.Task, days []string) TaskRow {
	last := len(days) - 1
	start := util.Clamp(calendar.DayDifference(days[0], task.Start), 0, last)
	end := util.Clamp(calendar.DayDifference(days[0], task.End), 0, last)
	return TaskRow{
		Task:       task,
		StartIndex: start,
		EndIndex:   end,
		SinglePin:  end <= start,
		StartTag:   calendar.FormatDayMonth(task.Start),
		EndTag:     calendar.FormatDayMonth(task.End),
	}
}
