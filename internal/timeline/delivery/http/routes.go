package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Drag
// sessions are per-user, so every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	drags := rg.Group("/timeline/drags")
	{
		drags.POST("", mw.Auth(), h.Start)
		drags.PATCH("/:id", mw.Auth(), h.Move)
		drags.POST("/:id/release", mw.Auth(), h.Release)
		drags.DELETE("/:id", mw.Auth(), h.Cancel)
	}
}
