// Package lru provides a bounded in-memory session store. Sessions
// expire after the configured TTL and the least recently used entries
// are evicted when the store is full; both behaviors are acceptable
// because a dropped session only forces a re-login.
package lru

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskpilot/internal/auth/repository"
	"taskpilot/internal/model"
	pkgLog "taskpilot/pkg/log"
)

type store struct {
	cache *expirable.LRU[string, *model.Session]
	l     pkgLog.Logger
}

var _ repository.SessionRepository = (*store)(nil)

// New creates a session store holding at most maxSessions entries,
// each expiring ttl after creation or last update.
func New(maxSessions int, ttl time.Duration, l pkgLog.Logger) *store {
	if maxSessions <= 0 {
		maxSessions = 10000
	}
	return &store{
		cache: expirable.NewLRU[string, *model.Session](maxSessions, nil, ttl),
		l:     l,
	}
}

func (s *store) Create(ctx context.Context, sess *model.Session) error {
	if sess == nil || sess.Token == "" {
		return errors.New("session token is required")
	}
	s.cache.Add(sess.Token, sess)
	return nil
}

func (s *store) Get(ctx context.Context, token string) (*model.Session, bool) {
	return s.cache.Get(token)
}

func (s *store) Update(ctx context.Context, sess *model.Session) error {
	if sess == nil || sess.Token == "" {
		return errors.New("session token is required")
	}
	if _, ok := s.cache.Get(sess.Token); !ok {
		return errors.New("session no longer exists")
	}
	s.cache.Add(sess.Token, sess)
	return nil
}

func (s *store) Delete(ctx context.Context, token string) {
	s.cache.Remove(token)
}
