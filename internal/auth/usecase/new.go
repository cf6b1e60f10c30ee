package usecase

import (
	"golang.org/x/oauth2"

	"taskpilot/internal/auth/repository"
	pkgLog "taskpilot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	oauthCfg *oauth2.Config
	sessions repository.SessionRepository
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, oauthCfg *oauth2.Config, sessions repository.SessionRepository) *implUseCase {
	return &implUseCase{
		l:        l,
		oauthCfg: oauthCfg,
		sessions: sessions,
	}
}
