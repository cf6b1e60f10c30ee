package auth

import (
	"context"

	"taskpilot/internal/model"
)

// UseCase defines the business logic interface for authentication.
type UseCase interface {
	// AuthURL builds the Google consent URL for the given anti-forgery state.
	AuthURL(state string) string

	// HandleCallback exchanges an authorization code for tokens, fetches the
	// user profile, and creates a session.
	HandleCallback(ctx context.Context, code string) (model.Session, error)

	// CurrentSession resolves a session by its cookie token, lazily
	// refreshing the access token when it has expired. A session whose
	// refresh failed is returned alongside ErrReauthRequired.
	CurrentSession(ctx context.Context, token string) (model.Session, error)

	// Logout destroys the session.
	Logout(ctx context.Context, token string)
}
