package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"taskpilot/internal/middleware"
	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/internal/timeline"
	pkgErrors "taskpilot/pkg/errors"
	"taskpilot/pkg/response"
)

// Start godoc
// @Summary     Start a drag session
// @Description Opens a server-side drag for a task. The committed time is untouched until release; moves only update the working copy.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body startReq true "Task and viewport geometry"
// @Success     200 {object} dragResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Another drag is active"
// @Router      /api/v1/timeline/drags [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	sc, tok, ok := h.callerContext(c)
	if !ok {
		return
	}

	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "task_id and start_time are required"))
		return
	}

	session, err := h.sessions.Start(ctx, sc.UserID, req.TaskID, req.StartTime,
		req.Geometry.toGeometry(), h.commitFunc(sc, tok), nil)
	if err != nil {
		h.l.Errorf(ctx, "sessions.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	working, _ := session.Controller.WorkingTime()
	response.OK(c, dragResp{DragID: session.ID, WorkingTime: working})
}

// Move godoc
// @Summary     Report a pointer move
// @Description Updates the drag's working time from the pointer's viewport offset. Throttled server-side; over-budget moves are dropped.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Drag session id"
// @Param       body body moveReq true "Pointer offset in px"
// @Success     200 {object} dragResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/drags/{id} [PATCH]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _, ok := h.callerContext(c)
	if !ok {
		return
	}

	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}

	session, err := h.sessions.Get(c.Param("id"), sc.UserID)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	working, err := session.Controller.PointerMove(ctx, req.OffsetPx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, dragResp{DragID: session.ID, WorkingTime: working})
}

// Release godoc
// @Summary     Release a drag
// @Description Terminates the drag, committing the working time into the task (and its mirrored calendar event) exactly once.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id path string true "Drag session id"
// @Success     200 {object} finishResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Calendar patch failed"
// @Router      /api/v1/timeline/drags/{id}/release [POST]
func (h *handler) Release(c *gin.Context) {
	h.finish(c, func(ctx context.Context, ctrl *timeline.Controller) (string, error) {
		return ctrl.PointerUp(ctx)
	})
}

// Cancel godoc
// @Summary     Cancel a drag
// @Description Terminates the drag the same way capture loss does: the working time is still committed, never silently dropped.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id path string true "Drag session id"
// @Success     200 {object} finishResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/timeline/drags/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	h.finish(c, func(ctx context.Context, ctrl *timeline.Controller) (string, error) {
		return ctrl.Cancel(ctx)
	})
}

func (h *handler) finish(c *gin.Context, terminate func(context.Context, *timeline.Controller) (string, error)) {
	ctx := c.Request.Context()

	sc, _, ok := h.callerContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	session, err := h.sessions.Get(id, sc.UserID)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	committed, err := terminate(ctx, session.Controller)
	h.sessions.Remove(id)
	if err != nil {
		h.l.Errorf(ctx, "timeline: drag %s commit failed: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, finishResp{DragID: id, CommittedTime: committed})
}

// commitFunc builds the commit hook for one drag: it carries the caller's
// identity and OAuth token into the reschedule that runs at termination.
func (h *handler) commitFunc(sc model.Scope, tok *oauth2.Token) timeline.CommitFunc {
	return func(ctx context.Context, taskID, timeOfDay string) error {
		_, err := h.taskUC.Reschedule(ctx, sc, task.RescheduleInput{
			TaskID:    taskID,
			TimeOfDay: timeOfDay,
			Token:     tok,
		})
		return err
	}
}

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
