package usecase

import (
	"context"

	"taskpilot/internal/auth"
	"taskpilot/internal/model"
)

// CurrentSession resolves a session by its cookie token, refreshing the
// access token lazily when it has expired.
//
// Concurrent requests that each observe an expired token may each
// trigger a refresh. This race is accepted: the worst case is a
// redundant refresh call, and coalescing would add a mutex on every
// session read to avoid a harmless duplicate. See DESIGN.md.
func (uc *implUseCase) CurrentSession(ctx context.Context, token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, auth.ErrNotAuthenticated
	}

	sess, ok := uc.sessions.Get(ctx, token)
	if !ok {
		return model.Session{}, auth.ErrSessionNotFound
	}

	if sess.RefreshError {
		return *sess, auth.ErrReauthRequired
	}

	if sess.TokenExpired() {
		refreshed, err := uc.oauthCfg.TokenSource(ctx, sess.OAuth).Token()
		if err != nil {
			uc.l.Warnf(ctx, "auth: token refresh failed for user=%s: %v", sess.User.Email, err)
			sess.RefreshError = true
			if updErr := uc.sessions.Update(ctx, sess); updErr != nil {
				uc.l.Errorf(ctx, "auth: failed to mark session refresh error: %v", updErr)
			}
			return *sess, auth.ErrReauthRequired
		}

		sess.OAuth = refreshed
		if err := uc.sessions.Update(ctx, sess); err != nil {
			uc.l.Errorf(ctx, "auth: failed to persist refreshed token: %v", err)
		}
	}

	return *sess, nil
}
