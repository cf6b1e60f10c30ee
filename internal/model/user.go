package model

import (
	"time"

	"golang.org/x/oauth2"
)

// User is the profile we keep from Google sign-in.
type User struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// Session is an authenticated browser session. Token is the opaque
// cookie value; OAuth carries the Google access/refresh token pair.
//
// RefreshError marks a session whose token refresh failed. The session
// is kept (not destroyed) so the client can show a re-auth prompt
// instead of silently logging the user out.
type Session struct {
	Token        string
	User         User
	OAuth        *oauth2.Token
	RefreshError bool
	CreatedAt    time.Time
}

// TokenExpired reports whether the access token's expiry has passed.
func (s *Session) TokenExpired() bool {
	if s.OAuth == nil {
		return true
	}
	return !s.OAuth.Expiry.IsZero() && s.OAuth.Expiry.Before(time.Now())
}
