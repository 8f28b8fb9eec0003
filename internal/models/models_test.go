package models

import (
	"errors"
	"testing"
)

func TestNewProjectHasSentinel(t *testing.T) {
	p := NewProject("Launch")
	if len(p.Topics) != 1 || p.Topics[0].ID != UnassignedTopicID {
		t.Fatalf("new project topics = %+v", p.Topics)
	}
}

func TestNormalizeProjectBackfills(t *testing.T) {
	p := NormalizeProject(Project{
		Topics: []Topic{{ID: "infra", Name: "Infra"}},
		Tasks:  []Task{{Title: "Provision", Start: "2024-01-01", End: "2024-01-03"}},
	})
	if p.Topics[0].ID != UnassignedTopicID {
		t.Errorf("sentinel should be prepended, got %+v", p.Topics)
	}
	if p.Topics[1].Color != DefaultTopicColor {
		t.Errorf("blank topic color should be backfilled, got %q", p.Topics[1].Color)
	}
	task := p.Tasks[0]
	if task.ID == "" {
		t.Error("task id should be generated")
	}
	if task.TopicID != UnassignedTopicID {
		t.Errorf("blank topicId should map to sentinel, got %q", task.TopicID)
	}
}

func TestNormalizeProjectKeepsExistingSentinel(t *testing.T) {
	p := NormalizeProject(Project{Topics: []Topic{UnassignedTopic(), {ID: "a", Name: "A", Color: "#fff"}}})
	count := 0
	for _, topic := range p.Topics {
		if topic.ID == UnassignedTopicID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("sentinel should not be duplicated, found %d", count)
	}
}

func TestTaskValidate(t *testing.T) {
	cases := []struct {
		name string
		task Task
		want error
	}{
		{"ok", Task{Title: "x", Start: "2024-01-10", End: "2024-01-12"}, nil},
		{"no title", Task{Start: "2024-01-10", End: "2024-01-12"}, ErrTitleRequired},
		{"no start", Task{Title: "x", End: "2024-01-12"}, ErrStartRequired},
		{"no end", Task{Title: "x", Start: "2024-01-10"}, ErrEndRequired},
		{"inverted", Task{Title: "x", Start: "2024-01-12", End: "2024-01-10"}, ErrEndBeforeStart},
	}
	for _, tc := range cases {
		if err := tc.task.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: Validate() = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestTaskDurationInclusive(t *testing.T) {
	task := Task{Start: "2024-01-10", End: "2024-01-12"}
	if got := task.DurationDays(); got != 3 {
		t.Errorf("DurationDays = %d, want 3", got)
	}
}

func TestAddTopicSlugAndDuplicate(t *testing.T) {
	p := NewProject("x")
	topic, err := p.AddTopic("Design Review", "#123456")
	if err != nil {
		t.Fatalf("AddTopic failed: %v", err)
	}
	if topic.ID != "design-review" {
		t.Errorf("topic id = %q", topic.ID)
	}
	if _, err := p.AddTopic("design  review", ""); !errors.Is(err, ErrDuplicateTopic) {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestDeleteTopicReassignsTasks(t *testing.T) {
	p := NewProject("x")
	if _, err := p.AddTopic("Backend", ""); err != nil {
		t.Fatal(err)
	}
	task, err := p.AddTask(Task{TopicID: "backend", Title: "API", Start: "2024-02-01", End: "2024-02-05"})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.DeleteTopic("backend"); err != nil {
		t.Fatalf("DeleteTopic failed: %v", err)
	}
	if got := p.TaskByID(task.ID).TopicID; got != UnassignedTopicID {
		t.Errorf("task topic after delete = %q, want sentinel", got)
	}
	if p.TopicByID("backend") != nil {
		t.Error("topic should be removed from the list")
	}
}

func TestSentinelTopicProtected(t *testing.T) {
	p := NewProject("x")
	if err := p.DeleteTopic(UnassignedTopicID); !errors.Is(err, ErrSentinelTopic) {
		t.Errorf("DeleteTopic(sentinel) = %v", err)
	}
	if err := p.UpdateTopic(UnassignedTopicID, "renamed", ""); !errors.Is(err, ErrSentinelTopic) {
		t.Errorf("UpdateTopic(sentinel) = %v", err)
	}
}

func TestAddTaskAbortsOnInvalid(t *testing.T) {
	p := NewProject("x")
	if _, err := p.AddTask(Task{Title: "", Start: "2024-01-01", End: "2024-01-02"}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(p.Tasks) != 0 {
		t.Error("failed add must leave the project unchanged")
	}
}

func TestAddTaskUnknownTopicFallsBack(t *testing.T) {
	p := NewProject("x")
	task, err := p.AddTask(Task{TopicID: "ghost", Title: "orphan", Start: "2024-01-01", End: "2024-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	if task.TopicID != UnassignedTopicID {
		t.Errorf("unknown topic should map to sentinel, got %q", task.TopicID)
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	p := NewProject("x")
	task, err := p.AddTask(Task{Title: "draft", Start: "2024-01-01", End: "2024-01-02"})
	if err != nil {
		t.Fatal(err)
	}
	task.Title = "final"
	task.End = "2024-01-05"
	if err := p.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if got := p.TaskByID(task.ID); got.Title != "final" || got.End != "2024-01-05" {
		t.Errorf("update not applied: %+v", got)
	}
	if err := p.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if err := p.DeleteTask(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second delete = %v", err)
	}
}
