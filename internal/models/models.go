// Package models defines the project planning domain types: topics,
// date-ranged tasks, and the project document that holds them.
package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Elish84/Gantt/internal/calendar"
)

// The sentinel topic is always present and acts as the fallback bucket
// for tasks whose topic was deleted or never assigned.
const (
	UnassignedTopicID   = "unassigned"
	UnassignedTopicName = "לא משויך"
	DefaultTopicColor   = "#9aa4b2"
)

// Topic is a named, colored bucket for tasks. ID is the stable join
// key; display names are not required to be unique.
type Topic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Task is a single scheduled item with an inclusive [Start,End] range
// of canonical ISO dates.
type Task struct {
	ID      string `json:"id"`
	TopicID string `json:"topicId"`
	Title   string `json:"title"`
	Desc    string `json:"desc"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Project is the unit of persistence: topic order is insertion order
// with the sentinel conventionally first.
type Project struct {
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
	Tasks  []Task  `json:"tasks"`
}

// UnassignedTopic returns a fresh sentinel topic value.
func UnassignedTopic() Topic {
	return Topic{ID: UnassignedTopicID, Name: UnassignedTopicName, Color: DefaultTopicColor}
}

// NewProject creates an empty project containing only the sentinel.
func NewProject(name string) Project {
	return Project{Name: name, Topics: []Topic{UnassignedTopic()}}
}

// DurationDays is the inclusive span of the task in days.
func (t Task) DurationDays() int {
	return calendar.Duration(t.Start, t.End)
}

// Validate checks the fields a task needs before it can be persisted.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}
	if !calendar.Valid(t.Start) {
		return ErrStartRequired
	}
	if !calendar.Valid(t.End) {
		return ErrEndRequired
	}
	if t.End < t.Start {
		return ErrEndBeforeStart
	}
	return nil
}

// NormalizeProject coerces a loaded document into a valid in-memory
// project: the sentinel topic exists, every task has an id and points
// at some topic, and blank names get a placeholder.
func NormalizeProject(p Project) Project {
	out := Project{Name: p.Name}
	if strings.TrimSpace(out.Name) == "" {
		out.Name = "פרויקט"
	}

	hasSentinel := false
	for _, t := range p.Topics {
		if t.ID == UnassignedTopicID {
			hasSentinel = true
			break
		}
	}
	if !hasSentinel {
		out.Topics = append(out.Topics, UnassignedTopic())
	}
	for _, t := range p.Topics {
		if strings.TrimSpace(t.ID) == "" {
			t.ID = uuid.NewString()
		}
		if strings.TrimSpace(t.Color) == "" {
			t.Color = DefaultTopicColor
		}
		out.Topics = append(out.Topics, t)
	}

	out.Tasks = make([]Task, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		if strings.TrimSpace(task.ID) == "" {
			task.ID = uuid.NewString()
		}
		if strings.TrimSpace(task.TopicID) == "" {
			task.TopicID = UnassignedTopicID
		}
		out.Tasks = append(out.Tasks, task)
	}
	return out
}
