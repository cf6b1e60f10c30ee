package task

import (
	"time"

	"golang.org/x/oauth2"

	"taskpilot/internal/model"
)

// ExtractInput is the input for LLM task extraction.
type ExtractInput struct {
	Text string
}

// ExtractOutput carries the surviving candidates plus the number of rows
// dropped by per-row validation.
type ExtractOutput struct {
	Tasks   []model.TaskExtract
	Dropped int
}

// CreateInput is the input for creating one confirmed task.
type CreateInput struct {
	Task      model.TaskExtract
	Date      time.Time // anchor date; zero means today
	AICreated bool
	Token     *oauth2.Token // nil skips calendar mirroring
}

// CreateOutput is the result of a single create.
type CreateOutput struct {
	Task model.Task
}

// CreateBulkInput is the input for confirming a batch of candidates.
type CreateBulkInput struct {
	Tasks []model.TaskExtract
	Date  time.Time // shared default date; per-task overrides win
	Token *oauth2.Token
}

// CreateBulkOutput reports partial success: every candidate either shows
// up in Created or is counted in FailedCount.
type CreateBulkOutput struct {
	Created     []model.Task
	FailedCount int
}

// ListInput selects a calendar month.
type ListInput struct {
	Month int // 1-12
	Year  int
	Token *oauth2.Token
}

// ListOutput is the merged month view.
type ListOutput struct {
	Tasks []model.Task
}

// DeleteInput identifies a task by its mirrored calendar event.
type DeleteInput struct {
	EventID string
	Token   *oauth2.Token
}

// RescheduleInput moves a task to a new time of day.
type RescheduleInput struct {
	TaskID    string
	TimeOfDay string // "HH:MM"
	Token     *oauth2.Token
}

// RescheduleOutput is the task after the move.
type RescheduleOutput struct {
	Task model.Task
}
