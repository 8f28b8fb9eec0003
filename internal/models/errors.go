package models

import "errors"

var (
	ErrTitleRequired     = errors.New("task title is required")
	ErrStartRequired     = errors.New("task start date is required")
	ErrEndRequired       = errors.New("task end date is required")
	ErrEndBeforeStart    = errors.New("task end date precedes start date")
	ErrTopicNameRequired = errors.New("topic name is required")
	ErrDuplicateTopic    = errors.New("topic with this id already exists")
	ErrSentinelTopic     = errors.New("the unassigned topic cannot be changed or deleted")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrTaskNotFound      = errors.New("task not found")
)
