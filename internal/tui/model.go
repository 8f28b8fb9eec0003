package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Elish84/Gantt/internal/config"
	"github.com/Elish84/Gantt/internal/models"
	"github.com/Elish84/Gantt/internal/store"
	"github.com/Elish84/Gantt/internal/timeline"
)

// UI Modes
const (
	ModePicker = iota
	ModeChart
	ModeTaskForm
	ModeTopicForm
	ModeFilter
	ModeImport
	ModeConfirmDelete
)

// Task form field order.
const (
	fieldTitle = iota
	fieldTopic
	fieldStart
	fieldEnd
	fieldDuration
	fieldDesc
	fieldCount
)

var AppVersion = "0"

// Model is the root bubbletea model. It owns both screens, the project
// picker and the chart, and every modal that sits on top of them.
type Model struct {
	repo       Repository
	selections *store.SelectionStore
	sess       *session
	saver      *store.Autosaver

	cfg        config.ViewConfig
	configDir  string
	exportsDir string

	mode    int
	records []store.ProjectRecord
	cursor  int

	projectID string
	project   models.Project
	layout    timeline.Layout
	visible   map[string]bool

	rowCursor int
	hscroll   int

	creatingProject bool
	nameInput       textinput.Model

	formInputs    []textinput.Model
	formFocus     int
	editingTaskID string

	topicInput     textinput.Model
	editingTopicID string

	filterCursor int
	filterSet    map[string]bool

	importInput textinput.Model

	confirmTarget string
	confirmKind   string

	err           error
	Message       string
	width, height int
}

func NewModel(repo Repository, selections *store.SelectionStore, cfg config.ViewConfig, configDir, exportsDir string) Model {
	SetTheme(cfg.Theme)

	ni := textinput.New()
	ni.Placeholder = "Project name..."
	ni.CharLimit = 80
	ni.Width = 40

	ii := textinput.New()
	ii.Placeholder = "Path to CSV file..."
	ii.Width = 60

	ti := textinput.New()
	ti.Placeholder = "Topic name..."
	ti.CharLimit = 60
	ti.Width = 40

	inputs := make([]textinput.Model, fieldCount)
	placeholders := []string{"Title...", "Topic name (empty for unassigned)...", "Start (YYYY-MM-DD)...", "End (YYYY-MM-DD, empty to derive)...", "Duration in days...", "Description..."}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
	}

	sess := newSession(repo)
	m := Model{
		repo:        repo,
		selections:  selections,
		sess:        sess,
		saver:       store.NewAutosaver(config.AutosaveDelay, sess.save),
		cfg:         cfg,
		configDir:   configDir,
		exportsDir:  exportsDir,
		mode:        ModePicker,
		nameInput:   ni,
		importInput: ii,
		topicInput:  ti,
		formInputs:  inputs,
	}
	m.refreshRecords()
	return m
}

func (m *Model) refreshRecords() {
	records, err := m.repo.ListProjects(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.records = records
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) openProject(id string) {
	p, err := m.repo.GetProject(context.Background(), id)
	if err != nil {
		m.err = err
		return
	}
	m.projectID = id
	m.project = p
	m.visible = m.selections.Visible(id)
	m.sess.set(id, p)
	m.mode = ModeChart
	m.rowCursor, m.hscroll = 0, 0
	m.recompute()
}

// recompute rebuilds the layout after any change that affects geometry.
func (m *Model) recompute() {
	m.layout = timeline.Compute(m.project, timeline.ViewConfig{
		DayWidth:      m.cfg.DayWidth,
		Mirrored:      m.cfg.Mirrored,
		ViewportWidth: m.viewportWidth(),
		Visible:       m.visible,
	})
	if rows := len(m.chartRows()); m.rowCursor >= rows {
		m.rowCursor = rows - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
}

// markDirty publishes the project to the session and arms the
// autosave timer.
func (m *Model) markDirty() {
	m.sess.set(m.projectID, m.project)
	m.saver.Schedule()
	m.recompute()
}

// chartRow is one selectable line of the chart body.
type chartRow struct {
	BlockIndex int
	RowIndex   int // -1 for the topic header line
}

// chartRows flattens visible blocks into the navigable row list.
func (m *Model) chartRows() []chartRow {
	var rows []chartRow
	for bi, b := range m.layout.Blocks {
		if !b.Visible {
			continue
		}
		rows = append(rows, chartRow{BlockIndex: bi, RowIndex: -1})
		for ri := range b.Rows {
			rows = append(rows, chartRow{BlockIndex: bi, RowIndex: ri})
		}
	}
	return rows
}

func (m *Model) selectedTask() *models.Task {
	rows := m.chartRows()
	if m.rowCursor >= len(rows) || rows[m.rowCursor].RowIndex < 0 {
		return nil
	}
	row := rows[m.rowCursor]
	task := m.layout.Blocks[row.BlockIndex].Rows[row.RowIndex].Task
	return m.project.TaskByID(task.ID)
}

func (m *Model) selectedTopic() *models.Topic {
	rows := m.chartRows()
	if m.rowCursor >= len(rows) {
		return nil
	}
	id := m.layout.Blocks[rows[m.rowCursor].BlockIndex].Topic.ID
	return m.project.TopicByID(id)
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient state on keypress
	if _, ok := msg.(tea.KeyMsg); ok {
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.Message != "" {
			m.Message = ""
		}
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		if m.projectID != "" {
			m.recompute()
		}
		return m, nil
	}

	switch m.mode {
	case ModePicker:
		return m.updatePicker(msg)
	case ModeChart:
		return m.updateChart(msg)
	case ModeTaskForm:
		return m.updateTaskForm(msg)
	case ModeTopicForm:
		return m.updateTopicForm(msg)
	case ModeFilter:
		return m.updateFilter(msg)
	case ModeImport:
		return m.updateImport(msg)
	case ModeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return CurrentTheme.Error.Render(fmt.Sprintf("\nError: %v", m.err)) +
			CurrentTheme.Dim.Render("\n\nPress any key to continue.")
	}

	switch m.mode {
	case ModePicker:
		return m.viewPicker()
	case ModeTaskForm:
		return m.viewTaskForm()
	case ModeTopicForm:
		return m.viewTopicForm()
	case ModeFilter:
		return m.viewFilter()
	case ModeImport:
		return m.viewImport()
	case ModeConfirmDelete:
		return m.viewConfirm()
	default:
		return m.viewChart()
	}
}

// quit flushes any pending autosave before exiting.
func (m *Model) quit() tea.Cmd {
	if err := m.saver.Flush(); err != nil {
		m.err = err
	}
	return tea.Quit
}
