package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	pkgErrors "taskpilot/pkg/errors"
	"taskpilot/pkg/response"
)

// processExtractReq binds the extract request body. Emptiness is a domain
// concern, so whitespace-only text flows through to the use case.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	extract, err := req.toExtract()
	if err != nil {
		return task.CreateInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	in := task.CreateInput{Task: extract, AICreated: req.AICreated}
	if extract.Date != nil {
		in.Date = *extract.Date
		in.Task.Date = nil
	}
	return in, nil
}

func (h *handler) processCreateBulkReq(c *gin.Context) (task.CreateBulkInput, error) {
	var req createBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateBulkInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := task.CreateBulkInput{Tasks: make([]model.TaskExtract, 0, len(req.Tasks))}
	for _, t := range req.Tasks {
		extract, err := t.toExtract()
		if err != nil {
			return task.CreateBulkInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task date, want YYYY-MM-DD")
		}
		in.Tasks = append(in.Tasks, extract)
	}

	if req.Date != "" {
		d, err := time.Parse(response.DateFormat, req.Date)
		if err != nil {
			return task.CreateBulkInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		in.Date = d
	}
	return in, nil
}

func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "month and year are required")
	}
	return task.ListInput{Month: req.Month, Year: req.Year}, nil
}

func (h *handler) processDeleteReq(c *gin.Context) (task.DeleteInput, error) {
	eventID := c.Query("event_id")
	if eventID == "" {
		return task.DeleteInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "event_id is required")
	}
	return task.DeleteInput{EventID: eventID}, nil
}

func (h *handler) processRescheduleReq(c *gin.Context) (task.RescheduleInput, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.RescheduleInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "start_time is required")
	}

	id := c.Param("id")
	if id == "" {
		return task.RescheduleInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	}
	return task.RescheduleInput{TaskID: id, TimeOfDay: req.StartTime}, nil
}
