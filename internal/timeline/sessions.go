package timeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "taskpilot/pkg/log"
)

// DragSession is one server-side drag, owned by the user who started it.
type DragSession struct {
	ID         string
	UserID     string
	Controller *Controller
	CreatedAt  time.Time
}

// SessionManager tracks in-flight drag sessions in a bounded LRU. An
// evicted session is treated like a pointer-capture loss: its drag is
// terminated (and committed) rather than silently dropped.
type SessionManager struct {
	l        pkgLog.Logger
	mu       sync.Mutex // serializes Start's one-drag-per-user check against Add
	sessions *expirable.LRU[string, *DragSession]
}

// NewSessionManager creates the drag session store. TTL bounds how long
// an abandoned drag can stay open before the capture-loss path fires.
func NewSessionManager(l pkgLog.Logger, maxSessions int, ttl time.Duration) *SessionManager {
	m := &SessionManager{l: l}
	m.sessions = expirable.NewLRU(maxSessions, func(key string, s *DragSession) {
		if !s.Controller.Dragging() {
			return
		}
		go func() {
			if _, err := s.Controller.CaptureLoss(context.Background()); err != nil {
				l.Errorf(context.Background(), "timeline: evicted drag %s commit failed: %v", key, err)
			}
		}()
	}, ttl)
	return m
}

// Start opens a drag session. A user gets one drag at a time; a second
// concurrent start is rejected.
func (m *SessionManager) Start(ctx context.Context, userID, taskID, startTime string, geo Geometry, onCommit CommitFunc, onTeardown TeardownFunc) (*DragSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions.Values() {
		if s.UserID == userID && s.Controller.Dragging() {
			return nil, ErrDragActive
		}
	}

	ctrl := NewController(m.l)
	if err := ctrl.PointerDown(ctx, taskID, startTime, geo, onCommit, onTeardown); err != nil {
		return nil, err
	}

	s := &DragSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		Controller: ctrl,
		CreatedAt:  time.Now(),
	}
	m.sessions.Add(s.ID, s)
	return s, nil
}

// Get resolves a session the given user owns.
func (m *SessionManager) Get(id, userID string) (*DragSession, error) {
	s, ok := m.sessions.Get(id)
	if !ok || s.UserID != userID {
		return nil, ErrDragNotFound
	}
	return s, nil
}

// Remove drops a terminated session from the store.
func (m *SessionManager) Remove(id string) {
	m.sessions.Remove(id)
}
