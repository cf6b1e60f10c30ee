package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/task"
	"taskpilot/internal/timeline"
	pkgLog "taskpilot/pkg/log"
)

// Handler is the public interface for the timeline HTTP delivery layer.
type Handler interface {
	Start(c *gin.Context)
	Move(c *gin.Context)
	Release(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	sessions *timeline.SessionManager
	taskUC   task.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for timeline drag sessions. Commits flow
// into the task use case's Reschedule.
func New(l pkgLog.Logger, sessions *timeline.SessionManager, taskUC task.UseCase) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
		taskUC:   taskUC,
	}
}
