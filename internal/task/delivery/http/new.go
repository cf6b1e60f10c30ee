package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/task"
	pkgLog "taskpilot/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Create(c *gin.Context)
	CreateBulk(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
	Reschedule(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
