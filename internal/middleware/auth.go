package middleware

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/model"
	"taskpilot/pkg/response"
)

const (
	scopeKey   = "taskpilot_scope"
	sessionKey = "taskpilot_session"
)

// Auth resolves the session cookie and stashes the caller scope on the
// request context. Requests without a valid session are rejected; a session
// whose token refresh failed also gets 401 so the client can re-consent.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sess, err := m.authUC.CurrentSession(ctx, token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth.CurrentSession: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: sess.User.ID,
			Email:  sess.User.Email,
		})
		c.Set(sessionKey, sess)

		c.Next()
	}
}

// GetScope returns the caller scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// GetSession returns the full session stored by Auth. Handlers that talk to
// Google Calendar need the OAuth token, not just the identity.
func GetSession(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return model.Session{}, false
	}
	sess, ok := v.(model.Session)
	return sess, ok
}
