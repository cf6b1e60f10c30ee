package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"taskpilot/internal/middleware"
	"taskpilot/internal/model"
	"taskpilot/pkg/response"
)

// callerContext pulls the authenticated identity and OAuth token the Auth
// middleware stored on the request.
func (h *handler) callerContext(c *gin.Context) (model.Scope, *oauth2.Token, bool) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return model.Scope{}, nil, false
	}
	var tok *oauth2.Token
	if sess, ok := middleware.GetSession(c); ok {
		tok = sess.OAuth
	}
	return sc, tok, true
}

// Extract godoc
// @Summary     Extract tasks from free text
// @Description Runs LLM extraction over the submitted text and returns repaired, validated task candidates. Invalid rows are dropped and counted.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to extract from"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Extraction failed or unavailable"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _, ok := h.callerContext(c)
	if !ok {
		return
	}

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates one confirmed task and mirrors it to Google Calendar.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar mirror failed"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Token = tok

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// CreateBulk godoc
// @Summary     Confirm a batch of task candidates
// @Description Anchors each candidate to its date and creates the tasks concurrently. Partial success: failures are counted, not fatal.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createBulkReq true "Candidates and shared date"
// @Success     200 {object} createBulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/bulk [POST]
func (h *handler) CreateBulk(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	input, err := h.processCreateBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Token = tok

	output, err := h.uc.CreateBulk(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBulk: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateBulkResp(output))
}

// List godoc
// @Summary     List tasks for a month
// @Description Remote-first month view: calendar events merged with local-only tasks, AI-created flag derived from the event marker.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar listing failed"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Token = tok

	output, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Delete godoc
// @Summary     Delete a task by calendar event id
// @Description Deletes the remote event first (an already-gone event counts as success), then the local record.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       event_id query string true "Google Calendar event id"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Calendar delete failed"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	input, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Token = tok

	if err := h.uc.Delete(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reschedule godoc
// @Summary     Move a task to a new time of day
// @Description Updates the task's start time on its current date and patches the mirrored calendar event.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task id"
// @Param       body body rescheduleReq true "New start time"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Calendar patch failed"
// @Router      /api/v1/tasks/{id}/schedule [PATCH]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	input, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Token = tok

	output, err := h.uc.Reschedule(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}
