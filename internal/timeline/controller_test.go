package timeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type commitRecorder struct {
	mu        sync.Mutex
	commits   []string
	taskIDs   []string
	teardowns int
	err       error
}

func (r *commitRecorder) commit(ctx context.Context, taskID, timeOfDay string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.taskIDs = append(r.taskIDs, taskID)
	r.commits = append(r.commits, timeOfDay)
	return nil
}

func (r *commitRecorder) teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardowns++
}

func testGeometry() Geometry {
	return Geometry{
		HourHeightPx:     60,
		SnapMinutes:      15,
		ViewportHeightPx: 800,
	}
}

func TestDragCommitsSnappedPosition(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "10:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}
	if !c.Dragging() {
		t.Fatal("controller should report an active drag")
	}

	// 652px at 60px/hour is 652 minutes, snapping to 645 = 10:45.
	working, err := c.PointerMove(ctx, 652)
	if err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if working != "10:45" {
		t.Errorf("working = %q, want 10:45", working)
	}

	final, err := c.PointerUp(ctx)
	if err != nil {
		t.Fatalf("PointerUp: %v", err)
	}
	if final != "10:45" {
		t.Errorf("final = %q, want 10:45", final)
	}

	if len(rec.commits) != 1 || rec.commits[0] != "10:45" {
		t.Errorf("commits = %v, want exactly [10:45]", rec.commits)
	}
	if rec.taskIDs[0] != "task-1" {
		t.Errorf("committed task = %q, want task-1", rec.taskIDs[0])
	}
	if rec.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1", rec.teardowns)
	}
	if c.Dragging() {
		t.Error("controller should be idle after release")
	}
}

func TestSecondDragRejected(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "09:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}
	if err := c.PointerDown(ctx, "task-2", "11:00", testGeometry(), rec.commit, rec.teardown); !errors.Is(err, ErrDragActive) {
		t.Fatalf("expected ErrDragActive, got %v", err)
	}
}

func TestMoveWithoutDrag(t *testing.T) {
	c := NewController(&mockLogger{})

	if _, err := c.PointerMove(context.Background(), 100); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("expected ErrNoActiveDrag, got %v", err)
	}
	if _, err := c.PointerUp(context.Background()); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("expected ErrNoActiveDrag, got %v", err)
	}
}

func TestCancelStillCommits(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "10:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}
	if _, err := c.PointerMove(ctx, 720); err != nil { // 12:00
		t.Fatalf("PointerMove: %v", err)
	}

	final, err := c.Cancel(ctx)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if final != "12:00" {
		t.Errorf("final = %q, want 12:00", final)
	}
	if len(rec.commits) != 1 {
		t.Errorf("commits = %v, want exactly one", rec.commits)
	}
	if rec.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1", rec.teardowns)
	}

	// A stale capture-loss after termination must not double-commit.
	if _, err := c.CaptureLoss(ctx); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("expected ErrNoActiveDrag, got %v", err)
	}
	if len(rec.commits) != 1 {
		t.Errorf("late capture loss double-committed: %v", rec.commits)
	}
}

func TestMoveThrottled(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "10:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}

	if _, err := c.PointerMove(ctx, 600); err != nil { // 10:00
		t.Fatalf("PointerMove: %v", err)
	}
	// Immediately following move is over budget and dropped: the
	// working value stays where the accepted move put it.
	working, err := c.PointerMove(ctx, 720)
	if err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if working != "10:00" {
		t.Errorf("throttled move changed working value to %q", working)
	}
}

func TestCommitErrorStillTearsDown(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{err: errors.New("remote patch failed")}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "10:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}

	if _, err := c.PointerUp(ctx); err == nil {
		t.Fatal("expected commit error to propagate")
	}
	if rec.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1 even on failed commit", rec.teardowns)
	}
	if c.Dragging() {
		t.Error("controller must return to idle after a failed commit")
	}
}

func TestWorkingCopyClamped(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	if err := c.PointerDown(ctx, "task-1", "10:00", testGeometry(), rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}

	working, err := c.PointerMove(ctx, -500)
	if err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if working != "00:00" {
		t.Errorf("working = %q, want clamp to 00:00", working)
	}
}

func TestEdgeAutoScroll(t *testing.T) {
	ctx := context.Background()
	rec := &commitRecorder{}
	c := NewController(&mockLogger{})

	geo := Geometry{
		HourHeightPx:     60,
		SnapMinutes:      15,
		ViewportHeightPx: 400,
		EdgeZonePx:       48,
		MaxScrollPx:      1040,
	}
	if err := c.PointerDown(ctx, "task-1", "06:00", geo, rec.commit, rec.teardown); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}

	// Park the pointer deep in the bottom edge zone and stop sending
	// events; the scroll timer must keep advancing the working time.
	before, err := c.PointerMove(ctx, 390)
	if err != nil {
		t.Fatalf("PointerMove: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	after, ok := c.WorkingTime()
	if !ok {
		t.Fatal("drag ended unexpectedly")
	}
	if after <= before {
		t.Errorf("auto-scroll did not advance: before=%q after=%q", before, after)
	}

	if _, err := c.PointerUp(ctx); err != nil {
		t.Fatalf("PointerUp: %v", err)
	}
	// Timer goroutine must stop with the drag.
	time.Sleep(50 * time.Millisecond)
	if _, ok := c.WorkingTime(); ok {
		t.Error("working time still live after release")
	}
}
