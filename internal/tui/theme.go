package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Border      lipgloss.Color
	Header      lipgloss.Style
	TopicHeader lipgloss.Style
	Task        lipgloss.Style
	MonthBand   lipgloss.Style
	WeekBand    lipgloss.Style
	DayScale    lipgloss.Style
	Today       lipgloss.Style
	Input       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
	Error       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Border:      lipgloss.Color("63"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		TopicHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Task:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MonthBand:   lipgloss.NewStyle().Foreground(lipgloss.Color("147")).Bold(true),
		WeekBand:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
		DayScale:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dark": {
		Name:        "Dark",
		Border:      lipgloss.Color("62"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		TopicHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Task:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		MonthBand:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		WeekBand:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		DayScale:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
