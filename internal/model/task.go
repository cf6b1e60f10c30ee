package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task duration bounds in minutes, enforced once at validation time.
const (
	MinTaskDurationMinutes = 15
	MaxTaskDurationMinutes = 480
)

// Task is a confirmed, persisted task. The wall-clock time of day and
// the anchored instant are two distinct fields: TimeOfDay is what the
// user edits and the timeline renders, StartAt/EndAt exist only once
// the task has been reconciled with a calendar date.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	TimeOfDay       string // "HH:MM"
	DurationMinutes int
	Priority        Priority
	Category        string

	Date    time.Time  // calendar day the task is anchored to
	StartAt *time.Time // Date + TimeOfDay in the service timezone
	EndAt   *time.Time // StartAt + duration

	IsAICreated   bool
	GoogleEventID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskExtract is an unconfirmed task candidate produced by the
// extraction pipeline. It lives only in the confirmation flow and is
// promoted to a Task when the user confirms it.
type TaskExtract struct {
	Title           string     `json:"title" validate:"required,min=1,max=255"`
	Description     string     `json:"description" validate:"max=1000"`
	TimeOfDay       string     `json:"start_time" validate:"required,hhmm"`
	DurationMinutes int        `json:"duration" validate:"required,min=15,max=480"`
	Priority        Priority   `json:"priority" validate:"required,oneof=high medium low"`
	Date            *time.Time `json:"date,omitempty"` // per-task override; nil means "use the shared default"
}
