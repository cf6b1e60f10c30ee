package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/auth"
	pkgLog "taskpilot/pkg/log"
)

// CookieConfig controls the session cookie the handlers issue.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	uc        auth.UseCase
	cookie    CookieConfig
	publicURL string
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the auth domain.
func New(l pkgLog.Logger, uc auth.UseCase, cookie CookieConfig, publicURL string) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		cookie:    cookie,
		publicURL: publicURL,
	}
}
