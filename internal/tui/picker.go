package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.creatingProject {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.Type {
			case tea.KeyEsc:
				m.creatingProject = false
				m.nameInput.Reset()
				return m, nil
			case tea.KeyEnter:
				name := strings.TrimSpace(m.nameInput.Value())
				id, err := m.repo.CreateProject(context.Background(), name)
				if err != nil {
					m.err = err
				} else {
					m.refreshRecords()
					m.openProject(id)
				}
				m.creatingProject = false
				m.nameInput.Reset()
				return m, nil
			}
		}
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, m.quit()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.records) {
				m.openProject(m.records[m.cursor].ID)
			}
		case "n":
			m.creatingProject = true
			m.nameInput.Focus()
			return m, nil
		case "d", "backspace":
			if m.cursor < len(m.records) {
				m.confirmKind = "project"
				m.confirmTarget = m.records[m.cursor].ID
				m.mode = ModeConfirmDelete
			}
		}
	}
	return m, nil
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("Gantt Projects  |  v%s", AppVersion)) + "\n\n")

	if len(m.records) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  No projects yet. Press [n] to create one.") + "\n")
	}
	for i, rec := range m.records {
		lead := "  "
		style := CurrentTheme.Task
		if i == m.cursor {
			lead = "> "
			style = CurrentTheme.Focused
		}
		line := fmt.Sprintf("%s%s", lead, style.Render(rec.Name))
		meta := CurrentTheme.Dim.Render(fmt.Sprintf("  updated %s", rec.UpdatedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString(line + meta + "\n")
	}

	b.WriteString("\n")
	if m.creatingProject {
		b.WriteString(CurrentTheme.Input.Render(m.nameInput.View()) + "\n")
	} else {
		help := "[enter]Open|[n]New|[d]Delete|[q]Quit"
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Dim.Render(help)))
	}
	return b.String()
}
