package config

import "time"

// Timeline geometry.
const (
	DayWidthDefault = 26
	DayWidthMin     = 16
	DayWidthMax     = 48
	DayWidthStep    = 2

	// RangePadding is added to both ends of the resolved window so
	// boundary tasks are not flush with the viewport edge.
	RangePadding = 2

	// MinVisibleDays floors the fill-to-viewport rule.
	MinVisibleDays = 30

	// Fallback window around today when a project has no tasks.
	FallbackDaysBack    = 15
	FallbackDaysForward = 45
)

// Persistence.
const (
	AppName       = "gantt"
	DBFileName    = "projects.db"
	AutosaveDelay = 450 * time.Millisecond
)
