package repository

import (
	"context"

	"taskpilot/internal/model"
)

// SessionRepository stores active sessions keyed by their cookie token.
type SessionRepository interface {
	Create(ctx context.Context, sess *model.Session) error
	Get(ctx context.Context, token string) (*model.Session, bool)
	Update(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, token string)
}
