package timeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSessionStartOnePerUser(t *testing.T) {
	m := NewSessionManager(&mockLogger{}, 16, time.Minute)
	rec := &commitRecorder{}

	s, err := m.Start(context.Background(), "u1", "task-1", "09:00", testGeometry(), rec.commit, rec.teardown)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := m.Start(context.Background(), "u1", "task-2", "10:00", testGeometry(), rec.commit, rec.teardown); !errors.Is(err, ErrDragActive) {
		t.Fatalf("second start: expected ErrDragActive, got %v", err)
	}

	// Another user is not blocked.
	if _, err := m.Start(context.Background(), "u2", "task-3", "11:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("other user start: %v", err)
	}

	// After release the user can drag again.
	if _, err := s.Controller.PointerUp(context.Background()); err != nil {
		t.Fatalf("PointerUp: %v", err)
	}
	m.Remove(s.ID)
	if _, err := m.Start(context.Background(), "u1", "task-4", "12:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("start after release: %v", err)
	}
}

func TestSessionStartConcurrent(t *testing.T) {
	// Simultaneous starts for the same user must yield exactly one live
	// drag; the rest are rejected, never a second session.
	m := NewSessionManager(&mockLogger{}, 16, time.Minute)
	rec := &commitRecorder{}

	const attempts = 8
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.Start(context.Background(), "u1", "task-1", "09:00", testGeometry(), rec.commit, rec.teardown)
			results[i] = err
		}(i)
	}
	wg.Wait()

	started := 0
	for _, err := range results {
		switch {
		case err == nil:
			started++
		case errors.Is(err, ErrDragActive):
		default:
			t.Fatalf("unexpected start error: %v", err)
		}
	}
	if started != 1 {
		t.Fatalf("got %d live drags, want exactly 1", started)
	}
}

func TestSessionGetChecksOwnership(t *testing.T) {
	m := NewSessionManager(&mockLogger{}, 16, time.Minute)
	rec := &commitRecorder{}

	s, err := m.Start(context.Background(), "u1", "task-1", "09:00", testGeometry(), rec.commit, rec.teardown)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := m.Get(s.ID, "u2"); !errors.Is(err, ErrDragNotFound) {
		t.Errorf("foreign user: expected ErrDragNotFound, got %v", err)
	}
	if _, err := m.Get("no-such-id", "u1"); !errors.Is(err, ErrDragNotFound) {
		t.Errorf("unknown id: expected ErrDragNotFound, got %v", err)
	}
	if got, err := m.Get(s.ID, "u1"); err != nil || got.ID != s.ID {
		t.Errorf("owner lookup: got %v/%v", got, err)
	}
}
