package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Elish84/Gantt/internal/calendar"
)

const (
	labelWidth  = 26
	minChartCol = 7
)

// cellWidth converts the shared day width into terminal cells. The
// zoom range 16..48 maps to 2..6 characters per day.
func (m Model) cellWidth() int {
	w := m.cfg.DayWidth / 8
	if w < 2 {
		w = 2
	}
	return w
}

// viewportWidth is the pixel-equivalent span of the visible chart
// columns, so a wide terminal grows the day window to fill itself.
func (m Model) viewportWidth() int {
	if m.width == 0 {
		return 0
	}
	cols := (m.width - labelWidth - 2) / m.cellWidth()
	if cols < minChartCol {
		cols = minChartCol
	}
	return cols * m.cfg.DayWidth
}

// window is the slice of day indices currently on screen.
type window struct {
	start, count, cellW int
	mirrored            bool
}

func (m Model) chartWindow() window {
	cellW := m.cellWidth()
	cols := (m.width - labelWidth - 2) / cellW
	if cols < minChartCol {
		cols = minChartCol
	}
	start := m.hscroll
	if start > len(m.layout.Days)-1 {
		start = len(m.layout.Days) - 1
	}
	if start < 0 {
		start = 0
	}
	count := len(m.layout.Days) - start
	if count > cols {
		count = cols
	}
	return window{start: start, count: count, cellW: cellW, mirrored: m.cfg.Mirrored}
}

// dayAt maps a screen column to a day index. On the mirrored axis the
// earliest visible day sits in the rightmost column.
func (w window) dayAt(col int) int {
	if w.mirrored {
		return w.start + w.count - 1 - col
	}
	return w.start + col
}

// colOf is the inverse of dayAt; -1 when the day is off screen.
func (w window) colOf(dayIndex int) int {
	var col int
	if w.mirrored {
		col = w.start + w.count - 1 - dayIndex
	} else {
		col = dayIndex - w.start
	}
	if col < 0 || col >= w.count {
		return -1
	}
	return col
}

func placeText(cells []rune, at int, s string) {
	for i, r := range []rune(s) {
		if at+i < 0 || at+i >= len(cells) {
			return
		}
		cells[at+i] = r
	}
}

func blankCells(n int) []rune {
	cells := make([]rune, n)
	for i := range cells {
		cells[i] = ' '
	}
	return cells
}

func (m Model) viewChart() string {
	var b strings.Builder
	w := m.chartWindow()

	title := fmt.Sprintf("%s  |  %s to %s  |  zoom %d", m.project.Name, m.layout.Range.Min, m.layout.Range.Max, m.cfg.DayWidth)
	b.WriteString(CurrentTheme.Header.Render(ansi.Truncate(title, m.width, "…")) + "\n")

	b.WriteString(m.renderMonthBand(w) + "\n")
	b.WriteString(m.renderWeekBand(w) + "\n")
	b.WriteString(m.renderDayScale(w) + "\n")

	rows := m.chartRows()
	for i, row := range rows {
		b.WriteString(m.renderChartRow(w, row, i == m.rowCursor) + "\n")
	}
	if len(rows) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  (no visible topics, press [f] to adjust the filter)") + "\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(CurrentTheme.Highlight.Render(m.Message) + "\n")
	}
	help := "[n]Task|[e]Edit|[d]Del|[t]Topic|[R]Rename|[D]DelTopic|[f]Filter|[+/-]Zoom|[m]Mirror|[c]CSV|[i]Import|[s]SVG|[r]PDF|[p]Projects|[q]Quit"
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Dim.Render(ansi.Truncate(help, m.width, "…"))))
	return b.String()
}

func (m Model) renderMonthBand(w window) string {
	cells := blankCells(w.count * w.cellW)
	prev := ""
	for col := 0; col < w.count; col++ {
		label := calendar.MonthLabel(m.layout.Days[w.dayAt(col)])
		if label != prev {
			placeText(cells, col*w.cellW, label)
			prev = label
		}
	}
	return strings.Repeat(" ", labelWidth) + CurrentTheme.MonthBand.Render(string(cells))
}

func (m Model) renderWeekBand(w window) string {
	cells := blankCells(w.count * w.cellW)
	prev := -1
	for col := 0; col < w.count; col++ {
		week := calendar.ISOWeek(m.layout.Days[w.dayAt(col)])
		if week != prev {
			placeText(cells, col*w.cellW, fmt.Sprintf("W%d", week))
			prev = week
		}
	}
	return strings.Repeat(" ", labelWidth) + CurrentTheme.WeekBand.Render(string(cells))
}

func (m Model) renderDayScale(w window) string {
	cells := blankCells(w.count * w.cellW)
	for col := 0; col < w.count; col++ {
		day := calendar.FormatDayMonth(m.layout.Days[w.dayAt(col)])
		if len(day) >= 2 {
			placeText(cells, col*w.cellW, day[:2])
		}
	}
	scale := string(cells)
	if col := w.colOf(m.layout.TodayIndex); col >= 0 {
		at := col * w.cellW
		runes := []rune(scale)
		return strings.Repeat(" ", labelWidth) +
			CurrentTheme.DayScale.Render(string(runes[:at])) +
			CurrentTheme.Today.Render(string(runes[at:at+w.cellW])) +
			CurrentTheme.DayScale.Render(string(runes[at+w.cellW:]))
	}
	return strings.Repeat(" ", labelWidth) + CurrentTheme.DayScale.Render(scale)
}

func (m Model) renderChartRow(w window, row chartRow, focused bool) string {
	block := m.layout.Blocks[row.BlockIndex]

	if row.RowIndex < 0 {
		label := fmt.Sprintf("▪ %s (%d)", block.Topic.Name, len(block.Rows))
		style := CurrentTheme.TopicHeader
		lead := "  "
		if focused {
			style = CurrentTheme.Focused
			lead = "> "
		}
		return lead + style.Render(ansi.Truncate(label, labelWidth-2, "…")) +
			strings.Repeat(" ", padWidth(labelWidth-2-ansi.StringWidth(label)))
	}

	tr := block.Rows[row.RowIndex]
	label := "   " + tr.Task.Title
	lead := "  "
	labelStyle := CurrentTheme.Task
	if focused {
		lead = "> "
		labelStyle = CurrentTheme.Focused
	}
	labelPart := lead + labelStyle.Render(ansi.Truncate(label, labelWidth-2, "…")) +
		strings.Repeat(" ", padWidth(labelWidth-2-ansi.StringWidth(label)))

	cells := blankCells(w.count * w.cellW)
	if col := w.colOf(m.layout.TodayIndex); col >= 0 {
		cells[col*w.cellW] = '·'
	}
	barStart, barEnd := -1, -1
	for col := 0; col < w.count; col++ {
		idx := w.dayAt(col)
		if idx < tr.StartIndex || idx > tr.EndIndex {
			continue
		}
		if barStart == -1 || col < barStart {
			barStart = col
		}
		if col > barEnd {
			barEnd = col
		}
		glyph := '█'
		if tr.SinglePin {
			glyph = '◆'
		}
		for c := 0; c < w.cellW; c++ {
			cells[col*w.cellW+c] = glyph
		}
		if tr.SinglePin {
			// Pin occupies one cell, centered look comes from the glyph.
			for c := 1; c < w.cellW; c++ {
				cells[col*w.cellW+c] = ' '
			}
		}
	}

	line := string(cells)
	if barStart < 0 {
		return labelPart + CurrentTheme.Dim.Render(line)
	}
	barStyle := lipgloss.NewStyle().Foreground(topicColor(block.Topic.Color))
	runes := []rune(line)
	from, to := barStart*w.cellW, (barEnd+1)*w.cellW
	return labelPart +
		CurrentTheme.Dim.Render(string(runes[:from])) +
		barStyle.Render(string(runes[from:to])) +
		CurrentTheme.Dim.Render(string(runes[to:]))
}

func padWidth(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// topicColor maps a stored topic color to a terminal color. Hex values
// pass straight through; anything else (the hsl() strings synthesized
// on import) falls back to the theme highlight.
func topicColor(c string) lipgloss.TerminalColor {
	if strings.HasPrefix(c, "#") {
		return lipgloss.Color(c)
	}
	return CurrentTheme.Highlight.GetForeground()
}
