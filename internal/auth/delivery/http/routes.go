package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps auth endpoints onto the API group. These routes
// are intentionally unauthenticated: they establish and inspect the
// session rather than require one.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/auth/google", h.Login)
	rg.GET("/auth/callback", h.Callback)
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/user", h.Me)
}
