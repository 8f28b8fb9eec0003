// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"testing"

	"github.com/Elish84/Gantt/internal/models"
)

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			TopicID: models.UnassignedTopicID,
			Title:   "Test Task",
			Start:   "2024-04-01",
			End:     "2024-04-03",
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithTopic(topicID string) *TaskBuilder {
	b.task.TopicID = topicID
	return b
}

func (b *TaskBuilder) WithDates(start, end string) *TaskBuilder {
	b.task.Start, b.task.End = start, end
	return b
}

func (b *TaskBuilder) WithDesc(desc string) *TaskBuilder {
	b.task.Desc = desc
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// ProjectBuilder assembles a whole project through the same mutation
// paths production code uses, so fixtures never skip validation.
type ProjectBuilder struct {
	project models.Project
	err     error
}

func NewProject(name string) *ProjectBuilder {
	return &ProjectBuilder{project: models.NewProject(name)}
}

func (b *ProjectBuilder) WithTopic(name, color string) *ProjectBuilder {
	if b.err != nil {
		return b
	}
	_, b.err = b.project.AddTopic(name, color)
	return b
}

func (b *ProjectBuilder) WithTask(task models.Task) *ProjectBuilder {
	if b.err != nil {
		return b
	}
	_, b.err = b.project.AddTask(task)
	return b
}

func (b *ProjectBuilder) Build(t *testing.T) models.Project {
	t.Helper()
	if b.err != nil {
		t.Fatalf("fixture setup failed: %v", b.err)
	}
	return b.project
}
