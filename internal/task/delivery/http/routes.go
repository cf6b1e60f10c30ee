package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All task
// routes require a session; extraction additionally burns the per-IP
// rate-limit budget.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, extractLimiter *middleware.RateLimiter) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/extract", mw.Auth(), extractLimiter.Handle(), h.Extract)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.POST("/bulk", mw.Auth(), h.CreateBulk)
		tasks.GET("", mw.Auth(), h.List)
		tasks.DELETE("", mw.Auth(), h.Delete)
		tasks.PATCH("/:id/schedule", mw.Auth(), h.Reschedule)
	}
}
