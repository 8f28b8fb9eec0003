package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Elish84/Gantt/internal/util"
)

// TopicByID returns the topic with the given id, or nil.
func (p *Project) TopicByID(id string) *Topic {
	for i := range p.Topics {
		if p.Topics[i].ID == id {
			return &p.Topics[i]
		}
	}
	return nil
}

// TaskByID returns the task with the given id, or nil.
func (p *Project) TaskByID(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// AddTopic appends a topic with a slug-derived id. Creation fails if a
// topic with the same id already exists, so display names that slug to
// the same id are rejected up front.
func (p *Project) AddTopic(name, color string) (Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Topic{}, ErrTopicNameRequired
	}
	id := util.Slugify(name)
	if id == "" {
		id = uuid.NewString()
	}
	if p.TopicByID(id) != nil {
		return Topic{}, ErrDuplicateTopic
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultTopicColor
	}
	topic := Topic{ID: id, Name: name, Color: color}
	p.Topics = append(p.Topics, topic)
	return topic, nil
}

// UpdateTopic renames or recolors an existing topic. The sentinel is
// immutable.
func (p *Project) UpdateTopic(id, name, color string) error {
	if id == UnassignedTopicID {
		return ErrSentinelTopic
	}
	topic := p.TopicByID(id)
	if topic == nil {
		return ErrTopicNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTopicNameRequired
	}
	topic.Name = name
	if strings.TrimSpace(color) != "" {
		topic.Color = color
	}
	return nil
}

// DeleteTopic removes a non-sentinel topic and reassigns its tasks to
// the sentinel.
func (p *Project) DeleteTopic(id string) error {
	if id == UnassignedTopicID {
		return ErrSentinelTopic
	}
	if p.TopicByID(id) == nil {
		return ErrTopicNotFound
	}
	for i := range p.Tasks {
		if p.Tasks[i].TopicID == id {
			p.Tasks[i].TopicID = UnassignedTopicID
		}
	}
	kept := p.Topics[:0]
	for _, t := range p.Topics {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	p.Topics = kept
	return nil
}

// AddTask validates and appends a task, generating its id. The project
// is left unchanged when validation fails.
func (p *Project) AddTask(t Task) (Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Desc = strings.TrimSpace(t.Desc)
	if t.TopicID == "" || p.TopicByID(t.TopicID) == nil {
		t.TopicID = UnassignedTopicID
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	t.ID = uuid.NewString()
	p.Tasks = append(p.Tasks, t)
	return t, nil
}

// UpdateTask replaces the stored fields of an existing task after
// validation.
func (p *Project) UpdateTask(t Task) error {
	existing := p.TaskByID(t.ID)
	if existing == nil {
		return ErrTaskNotFound
	}
	t.Title = strings.TrimSpace(t.Title)
	if t.TopicID == "" || p.TopicByID(t.TopicID) == nil {
		t.TopicID = UnassignedTopicID
	}
	if err := t.Validate(); err != nil {
		return err
	}
	*existing = t
	return nil
}

// DeleteTask removes a task by id.
func (p *Project) DeleteTask(id string) error {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}
