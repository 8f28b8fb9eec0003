package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Elish84/Gantt/internal/calendar"
	"github.com/Elish84/Gantt/internal/models"
	"github.com/Elish84/Gantt/internal/transcode"
	"github.com/Elish84/Gantt/internal/util"
)

// --- Task form ---

func (m *Model) openTaskForm(task *models.Task) {
	m.editingTaskID = ""
	for i := range m.formInputs {
		m.formInputs[i].Reset()
		m.formInputs[i].Blur()
	}
	if task != nil {
		m.editingTaskID = task.ID
		m.formInputs[fieldTitle].SetValue(task.Title)
		if topic := m.project.TopicByID(task.TopicID); topic != nil && topic.ID != models.UnassignedTopicID {
			m.formInputs[fieldTopic].SetValue(topic.Name)
		}
		m.formInputs[fieldStart].SetValue(task.Start)
		m.formInputs[fieldEnd].SetValue(task.End)
		if calendar.Valid(task.Start) && calendar.Valid(task.End) {
			m.formInputs[fieldDuration].SetValue(strconv.Itoa(task.DurationDays()))
		}
		m.formInputs[fieldDesc].SetValue(task.Desc)
	} else if topic := m.selectedTopic(); topic != nil && topic.ID != models.UnassignedTopicID {
		m.formInputs[fieldTopic].SetValue(topic.Name)
	}
	m.formFocus = fieldTitle
	m.formInputs[fieldTitle].Focus()
	m.mode = ModeTaskForm
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = ModeChart
			return m, nil
		case tea.KeyTab, tea.KeyDown:
			m.moveFormFocus(1)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.moveFormFocus(-1)
			return m, nil
		case tea.KeyEnter:
			if m.formFocus < fieldCount-1 {
				m.moveFormFocus(1)
				return m, nil
			}
			m.submitTaskForm()
			return m, nil
		}
	}
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) moveFormFocus(delta int) {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = (m.formFocus + delta + fieldCount) % fieldCount
	m.formInputs[m.formFocus].Focus()
}

// resolveTopicName matches an existing topic by exact name or creates
// one with a deterministic color. Blank falls back to the sentinel.
func (m *Model) resolveTopicName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UnassignedTopicID
	}
	for _, t := range m.project.Topics {
		if t.Name == name {
			return t.ID
		}
	}
	topic, err := m.project.AddTopic(name, util.ColorFromName(name))
	if err != nil {
		return models.UnassignedTopicID
	}
	return topic.ID
}

func (m *Model) submitTaskForm() {
	start := strings.TrimSpace(m.formInputs[fieldStart].Value())
	end := strings.TrimSpace(m.formInputs[fieldEnd].Value())
	// An explicit end wins; a blank one derives from the duration,
	// inclusive of both bounds.
	if end == "" && calendar.Valid(start) {
		if dur, err := strconv.Atoi(strings.TrimSpace(m.formInputs[fieldDuration].Value())); err == nil && dur > 0 {
			end = calendar.AddDays(start, dur-1)
		}
	}
	task := models.Task{
		ID:      m.editingTaskID,
		TopicID: m.resolveTopicName(m.formInputs[fieldTopic].Value()),
		Title:   m.formInputs[fieldTitle].Value(),
		Desc:    m.formInputs[fieldDesc].Value(),
		Start:   start,
		End:     end,
	}
	var err error
	if m.editingTaskID != "" {
		err = m.project.UpdateTask(task)
	} else {
		_, err = m.project.AddTask(task)
	}
	if err != nil {
		m.err = err
		return
	}
	m.mode = ModeChart
	m.markDirty()
}

func (m Model) viewTaskForm() string {
	var b strings.Builder
	title := "New Task"
	if m.editingTaskID != "" {
		title = "Edit Task"
	}
	b.WriteString(CurrentTheme.Header.Render(title) + "\n\n")
	labels := []string{"Title", "Topic", "Start", "End", "Duration (days)", "Description"}
	for i, input := range m.formInputs {
		label := CurrentTheme.Dim.Render(labels[i])
		if i == m.formFocus {
			label = CurrentTheme.Focused.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("%-30s\n%s\n", label, input.View()))
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("[enter]Next/Save | [tab]Next | [esc]Cancel"))
	return b.String()
}

// --- Topic form ---

func (m Model) updateTopicForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = ModeChart
			m.topicInput.Reset()
			return m, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(m.topicInput.Value())
			var err error
			if m.editingTopicID != "" {
				err = m.project.UpdateTopic(m.editingTopicID, name, "")
			} else {
				_, err = m.project.AddTopic(name, util.ColorFromName(name))
			}
			if err != nil {
				m.err = err
				return m, nil
			}
			m.mode = ModeChart
			m.topicInput.Reset()
			m.markDirty()
			return m, nil
		}
	}
	m.topicInput, cmd = m.topicInput.Update(msg)
	return m, cmd
}

func (m Model) viewTopicForm() string {
	title := "New Topic"
	if m.editingTopicID != "" {
		title = "Rename Topic"
	}
	return CurrentTheme.Header.Render(title) + "\n\n" +
		CurrentTheme.Input.Render(m.topicInput.View()) + "\n\n" +
		CurrentTheme.Dim.Render("[enter]Save | [esc]Cancel")
}

// --- Visibility filter ---

func (m *Model) openFilter() {
	m.filterSet = make(map[string]bool, len(m.project.Topics))
	for _, t := range m.project.Topics {
		m.filterSet[t.ID] = m.visible == nil || m.visible[t.ID]
	}
	m.filterCursor = 0
	m.mode = ModeFilter
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = ModeChart
		case "up", "k":
			if m.filterCursor > 0 {
				m.filterCursor--
			}
		case "down", "j":
			if m.filterCursor < len(m.project.Topics)-1 {
				m.filterCursor++
			}
		case " ":
			id := m.project.Topics[m.filterCursor].ID
			m.filterSet[id] = !m.filterSet[id]
		case "a":
			for id := range m.filterSet {
				m.filterSet[id] = true
			}
		case "x":
			for id := range m.filterSet {
				m.filterSet[id] = false
			}
		case "enter":
			m.applyFilter()
		}
	}
	return m, nil
}

// applyFilter stores the selection, dropping the entry entirely when
// everything is visible so new topics default to shown.
func (m *Model) applyFilter() {
	all := true
	for _, t := range m.project.Topics {
		if !m.filterSet[t.ID] {
			all = false
			break
		}
	}
	if all {
		m.visible = nil
	} else {
		m.visible = m.filterSet
	}
	if err := m.selections.SetVisible(m.projectID, m.visible); err != nil {
		util.LogError("persist topic filter", err)
	}
	m.mode = ModeChart
	m.recompute()
}

func (m Model) viewFilter() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Visible Topics") + "\n\n")
	for i, t := range m.project.Topics {
		mark := "[ ]"
		if m.filterSet[t.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, t.Name)
		if i == m.filterCursor {
			line = CurrentTheme.Focused.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("[space]Toggle | [a]All | [x]None | [enter]Apply | [esc]Cancel"))
	return b.String()
}

// --- CSV import ---

func (m Model) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = ModeChart
			m.importInput.Reset()
			return m, nil
		case tea.KeyEnter:
			path := strings.TrimSpace(m.importInput.Value())
			data, err := os.ReadFile(path)
			if err != nil {
				m.err = err
				return m, nil
			}
			added, err := transcode.Import(&m.project, data)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.Message = fmt.Sprintf("Imported %d tasks.", added)
			m.mode = ModeChart
			m.importInput.Reset()
			m.markDirty()
			return m, nil
		}
	}
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m Model) viewImport() string {
	return CurrentTheme.Header.Render("Import CSV") + "\n\n" +
		CurrentTheme.Input.Render(m.importInput.View()) + "\n\n" +
		CurrentTheme.Dim.Render("[enter]Import | [esc]Cancel")
}

// --- Delete confirmation ---

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.runConfirmedDelete()
		case "n", "N", "esc":
			if m.confirmKind == "project" {
				m.mode = ModePicker
			} else {
				m.mode = ModeChart
			}
			m.confirmKind, m.confirmTarget = "", ""
		}
	}
	return m, nil
}

func (m *Model) runConfirmedDelete() {
	switch m.confirmKind {
	case "project":
		if err := m.repo.DeleteProject(context.Background(), m.confirmTarget); err != nil {
			m.err = err
		} else if err := m.selections.Forget(m.confirmTarget); err != nil {
			util.LogError("forget topic filter", err)
		}
		m.refreshRecords()
		m.mode = ModePicker
	case "task":
		if err := m.project.DeleteTask(m.confirmTarget); err != nil {
			m.err = err
		} else {
			m.markDirty()
		}
		m.mode = ModeChart
	case "topic":
		if err := m.project.DeleteTopic(m.confirmTarget); err != nil {
			m.err = err
		} else {
			if m.visible != nil {
				delete(m.visible, m.confirmTarget)
			}
			m.markDirty()
		}
		m.mode = ModeChart
	}
	m.confirmKind, m.confirmTarget = "", ""
}

func (m Model) viewConfirm() string {
	var what string
	switch m.confirmKind {
	case "project":
		what = "this project and all its tasks"
	case "task":
		what = "this task"
	case "topic":
		what = "this topic (its tasks move to " + models.UnassignedTopicName + ")"
	}
	return CurrentTheme.Error.Render(fmt.Sprintf("Delete %s?", what)) + "\n\n" +
		CurrentTheme.Dim.Render("[y]Yes | [n]No")
}
