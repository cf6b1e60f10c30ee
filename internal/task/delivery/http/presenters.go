package http

import (
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text"`
}

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{Text: r.Text}
}

type taskFieldsReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartTime   string  `json:"start_time"`
	Duration    int     `json:"duration"`
	Priority    string  `json:"priority"`
	Date        *string `json:"date,omitempty"` // "2006-01-02"
}

func (r taskFieldsReq) toExtract() (model.TaskExtract, error) {
	out := model.TaskExtract{
		Title:           r.Title,
		Description:     r.Description,
		TimeOfDay:       r.StartTime,
		DurationMinutes: r.Duration,
		Priority:        model.Priority(r.Priority),
	}
	if r.Date != nil && *r.Date != "" {
		d, err := time.Parse(response.DateFormat, *r.Date)
		if err != nil {
			return model.TaskExtract{}, err
		}
		out.Date = &d
	}
	return out, nil
}

type createReq struct {
	taskFieldsReq
	AICreated bool `json:"is_ai_created"`
}

type createBulkReq struct {
	Tasks []taskFieldsReq `json:"tasks" binding:"required"`
	Date  string          `json:"date"` // shared default, "2006-01-02"
}

type listReq struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

type rescheduleReq struct {
	StartTime string `json:"start_time" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID            string             `json:"id,omitempty"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	StartTime     string             `json:"start_time"`
	Duration      int                `json:"duration"`
	Priority      string             `json:"priority"`
	Category      string             `json:"category,omitempty"`
	Date          response.Date      `json:"date"`
	StartAt       *response.DateTime `json:"start_at,omitempty"`
	EndAt         *response.DateTime `json:"end_at,omitempty"`
	IsAICreated   bool               `json:"is_ai_created"`
	GoogleEventID string             `json:"google_event_id,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		StartTime:     t.TimeOfDay,
		Duration:      t.DurationMinutes,
		Priority:      string(t.Priority),
		Category:      t.Category,
		Date:          response.Date(t.Date),
		StartAt:       toDateTime(t.StartAt),
		EndAt:         toDateTime(t.EndAt),
		IsAICreated:   t.IsAICreated,
		GoogleEventID: t.GoogleEventID,
	}
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

type extractItemResp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	Duration    int    `json:"duration"`
	Priority    string `json:"priority"`
}

type extractResp struct {
	Tasks   []extractItemResp `json:"tasks"`
	Dropped int               `json:"dropped"`
}

func (h *handler) newExtractResp(o task.ExtractOutput) extractResp {
	items := make([]extractItemResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		items = append(items, extractItemResp{
			Title:       t.Title,
			Description: t.Description,
			StartTime:   t.TimeOfDay,
			Duration:    t.DurationMinutes,
			Priority:    string(t.Priority),
		})
	}
	return extractResp{Tasks: items, Dropped: o.Dropped}
}

type createBulkResp struct {
	Created     []taskResp `json:"created"`
	FailedCount int        `json:"failed_count"`
}

func (h *handler) newCreateBulkResp(o task.CreateBulkOutput) createBulkResp {
	created := make([]taskResp, 0, len(o.Created))
	for _, t := range o.Created {
		created = append(created, newTaskResp(t))
	}
	return createBulkResp{Created: created, FailedCount: o.FailedCount}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks}
}
