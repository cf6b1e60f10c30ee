package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")
	ErrExchangeFailed   = errors.New("authorization code exchange failed")
	ErrProfileFetch     = errors.New("failed to fetch user profile")
	ErrReauthRequired   = errors.New("token refresh failed, re-authentication required")
)
