package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/export"
	"github.com/Elish84/Gantt/internal/transcode"
	"github.com/Elish84/Gantt/internal/util"
)

func (m Model) updateChart(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, m.quit()
		case "esc", "p":
			if err := m.saver.Flush(); err != nil {
				m.err = err
			}
			m.mode = ModePicker
			m.projectID = ""
			m.refreshRecords()
		case "up", "k":
			if m.rowCursor > 0 {
				m.rowCursor--
			}
		case "down", "j":
			if m.rowCursor < len(m.chartRows())-1 {
				m.rowCursor++
			}
		case "left", "h":
			m.scrollBy(-7)
		case "right", "l":
			m.scrollBy(7)
		case "g":
			m.hscroll = 0
		case "+", "=":
			m.setDayWidth(m.cfg.DayWidth + config.DayWidthStep)
		case "-":
			m.setDayWidth(m.cfg.DayWidth - config.DayWidthStep)
		case "0":
			m.setDayWidth(config.DayWidthDefault)
		case "m":
			m.cfg.Mirrored = !m.cfg.Mirrored
			m.persistViewConfig()
			m.recompute()
		case "T":
			if m.cfg.Theme == "default" {
				m.cfg.Theme = "dark"
			} else {
				m.cfg.Theme = "default"
			}
			SetTheme(m.cfg.Theme)
			m.persistViewConfig()
		case "f":
			m.openFilter()
		case "n":
			m.openTaskForm(nil)
		case "e":
			if task := m.selectedTask(); task != nil {
				m.openTaskForm(task)
			}
		case "d", "backspace":
			if task := m.selectedTask(); task != nil {
				m.confirmKind = "task"
				m.confirmTarget = task.ID
				m.mode = ModeConfirmDelete
			}
		case "t":
			m.editingTopicID = ""
			m.topicInput.Reset()
			m.topicInput.Focus()
			m.mode = ModeTopicForm
		case "R":
			if topic := m.selectedTopic(); topic != nil {
				m.editingTopicID = topic.ID
				m.topicInput.SetValue(topic.Name)
				m.topicInput.Focus()
				m.mode = ModeTopicForm
			}
		case "D":
			if topic := m.selectedTopic(); topic != nil {
				m.confirmKind = "topic"
				m.confirmTarget = topic.ID
				m.mode = ModeConfirmDelete
			}
		case "c":
			m.exportCSV()
		case "s":
			m.exportSVG()
		case "r":
			m.exportPDF()
		case "i":
			m.importInput.Reset()
			m.importInput.Focus()
			m.mode = ModeImport
		}
	}
	return m, nil
}

// scrollBy pans the window, clamped so at least one day stays visible.
func (m *Model) scrollBy(days int) {
	max := len(m.layout.Days) - 1
	m.hscroll = util.Clamp(m.hscroll+days, 0, max)
}

func (m *Model) setDayWidth(w int) {
	m.cfg.DayWidth = util.Clamp(w, config.DayWidthMin, config.DayWidthMax)
	m.persistViewConfig()
	m.recompute()
}

func (m *Model) persistViewConfig() {
	if err := config.SaveViewConfig(m.configDir, m.cfg); err != nil {
		util.LogError("persist view config", err)
	}
}

func (m *Model) exportCSV() {
	if err := os.MkdirAll(m.exportsDir, 0o755); err != nil {
		m.err = err
		return
	}
	path := filepath.Join(m.exportsDir, fmt.Sprintf("tasks_%s.csv", calendar.Today()))
	if err := os.WriteFile(path, transcode.Export(m.project), 0o644); err != nil {
		m.err = err
		return
	}
	m.Message = fmt.Sprintf("CSV exported: %s", path)
}

func (m *Model) exportSVG() {
	if err := os.MkdirAll(m.exportsDir, 0o755); err != nil {
		m.err = err
		return
	}
	path := filepath.Join(m.exportsDir, fmt.Sprintf("gantt_%s.svg", calendar.Today()))
	if err := os.WriteFile(path, export.SVG(m.project.Name, m.layout), 0o644); err != nil {
		m.err = err
		return
	}
	m.Message = fmt.Sprintf("SVG exported: %s", path)
}

func (m *Model) exportPDF() {
	if err := os.MkdirAll(m.exportsDir, 0o755); err != nil {
		m.err = err
		return
	}
	path, err := export.PDFReport(m.project, m.exportsDir)
	if err != nil {
		m.err = err
		return
	}
	m.Message = fmt.Sprintf("PDF report generated: %s", path)
}
