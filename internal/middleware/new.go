package middleware

import (
	"taskpilot/internal/auth"
	pkgLog "taskpilot/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l          pkgLog.Logger
	authUC     auth.UseCase
	cookieName string
}

// New creates the middleware set.
func New(l pkgLog.Logger, authUC auth.UseCase, cookieName string) Middleware {
	return Middleware{
		l:          l,
		authUC:     authUC,
		cookieName: cookieName,
	}
}
