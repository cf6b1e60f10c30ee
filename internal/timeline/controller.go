package timeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	pkgLog "taskpilot/pkg/log"
	"taskpilot/pkg/timecodec"
)

// Defaults for the drag geometry. The client reports pixel offsets; the
// controller owns all conversion back into minutes.
const (
	DefaultHourHeightPx   = 60.0
	DefaultSnapMinutes    = 15
	DefaultEdgeZonePx     = 48.0
	DefaultMoveRate       = rate.Limit(60) // pointer moves per second
	DefaultScrollInterval = 16 * time.Millisecond
)

// Geometry describes the timeline viewport a drag happens in.
type Geometry struct {
	HourHeightPx     float64
	SnapMinutes      int
	ViewportHeightPx float64
	EdgeZonePx       float64
	MaxScrollPx      float64
	ScrollTopPx      float64 // scroll position when the drag starts
}

func (g *Geometry) applyDefaults() {
	if g.HourHeightPx <= 0 {
		g.HourHeightPx = DefaultHourHeightPx
	}
	if g.SnapMinutes <= 0 {
		g.SnapMinutes = DefaultSnapMinutes
	}
	if g.EdgeZonePx <= 0 {
		g.EdgeZonePx = DefaultEdgeZonePx
	}
	if g.MaxScrollPx <= 0 {
		g.MaxScrollPx = 24*g.HourHeightPx - g.ViewportHeightPx
		if g.MaxScrollPx < 0 {
			g.MaxScrollPx = 0
		}
	}
}

// CommitFunc receives the final snapped time of day exactly once per drag.
type CommitFunc func(ctx context.Context, taskID, timeOfDay string) error

// TeardownFunc runs after every drag termination, committed or not.
type TeardownFunc func()

// Controller is the drag state machine for one timeline view. It is
// either idle or tracking a single drag; a second concurrent drag is
// rejected. The dragged task's committed time is untouched until the
// drag terminates; every intermediate position lives on a working copy.
type Controller struct {
	l pkgLog.Logger

	mu   sync.Mutex
	drag *dragState
}

type dragState struct {
	taskID         string
	geo            Geometry
	limiter        *rate.Limiter
	workingMinutes int
	lastOffsetPx   float64 // last pointer offset inside the viewport
	scrollTopPx    float64
	scrollSpeed    float64 // px per auto-scroll tick, negative scrolls up
	committed      bool
	onCommit       CommitFunc
	onTeardown     TeardownFunc
	stopScroll     chan struct{} // non-nil while the auto-scroll timer runs
}

// NewController creates an idle drag controller.
func NewController(l pkgLog.Logger) *Controller {
	return &Controller{l: l}
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drag != nil
}

// TaskID returns the dragged task's id, or "" when idle.
func (c *Controller) TaskID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag == nil {
		return ""
	}
	return c.drag.taskID
}

// WorkingTime returns the drag's current working time of day, or false
// when idle. The committed value never changes while this does.
func (c *Controller) WorkingTime() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag == nil {
		return "", false
	}
	return timecodec.MinutesToTime(c.drag.workingMinutes), true
}

// PointerDown starts a drag on the given task, cloning its current time
// of day into the working copy.
func (c *Controller) PointerDown(ctx context.Context, taskID, startTime string, geo Geometry, onCommit CommitFunc, onTeardown TeardownFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drag != nil {
		return ErrDragActive
	}

	minutes, err := timecodec.TimeToMinutes(startTime)
	if err != nil {
		return err
	}

	geo.applyDefaults()
	c.drag = &dragState{
		taskID:         taskID,
		geo:            geo,
		limiter:        rate.NewLimiter(DefaultMoveRate, 1),
		workingMinutes: minutes,
		scrollTopPx:    geo.ScrollTopPx,
		onCommit:       onCommit,
		onTeardown:     onTeardown,
	}

	c.l.Debugf(ctx, "timeline: drag started task=%s from=%s", taskID, startTime)
	return nil
}

// PointerMove updates the working copy from the pointer's offset inside
// the viewport. Moves beyond the rate budget are dropped, returning the
// unchanged working value; pointer events arrive far faster than the
// position can usefully change.
func (c *Controller) PointerMove(ctx context.Context, offsetPx float64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drag == nil {
		return "", ErrNoActiveDrag
	}
	d := c.drag

	if !d.limiter.Allow() {
		return timecodec.MinutesToTime(d.workingMinutes), nil
	}

	d.lastOffsetPx = offsetPx
	c.recomputeLocked(d)
	c.updateAutoScrollLocked(d, offsetPx)

	return timecodec.MinutesToTime(d.workingMinutes), nil
}

// PointerUp terminates the drag, committing the working value.
func (c *Controller) PointerUp(ctx context.Context) (string, error) {
	return c.terminate(ctx, "up")
}

// Cancel terminates the drag. The working value is still committed:
// cancellation and pointer-capture loss arrive indistinguishably from
// real releases on touch devices, and losing the user's drop is worse
// than honoring it.
func (c *Controller) Cancel(ctx context.Context) (string, error) {
	return c.terminate(ctx, "cancel")
}

// CaptureLoss terminates the drag after the browser revoked pointer
// capture. Same behavior as Cancel.
func (c *Controller) CaptureLoss(ctx context.Context) (string, error) {
	return c.terminate(ctx, "capture-loss")
}

func (c *Controller) terminate(ctx context.Context, reason string) (string, error) {
	c.mu.Lock()
	if c.drag == nil {
		c.mu.Unlock()
		return "", ErrNoActiveDrag
	}
	d := c.drag
	c.drag = nil

	if d.stopScroll != nil {
		close(d.stopScroll)
		d.stopScroll = nil
	}

	final := timecodec.MinutesToTime(d.workingMinutes)
	alreadyCommitted := d.committed
	d.committed = true
	c.mu.Unlock()

	// Commit exactly once, then tear down unconditionally.
	if !alreadyCommitted && d.onCommit != nil {
		if err := d.onCommit(ctx, d.taskID, final); err != nil {
			c.l.Errorf(ctx, "timeline: commit failed task=%s time=%s: %v", d.taskID, final, err)
			if d.onTeardown != nil {
				d.onTeardown()
			}
			return final, err
		}
	}
	if d.onTeardown != nil {
		d.onTeardown()
	}

	c.l.Debugf(ctx, "timeline: drag finished task=%s time=%s reason=%s", d.taskID, final, reason)
	return final, nil
}

// recomputeLocked derives the working minutes from the pointer position
// plus the current scroll, snapped and clamped to the day.
func (c *Controller) recomputeLocked(d *dragState) {
	contentPx := d.lastOffsetPx + d.scrollTopPx
	minutes := timecodec.PixelsToMinutes(contentPx, d.geo.HourHeightPx, d.geo.SnapMinutes)
	d.workingMinutes = timecodec.ClampMinutes(minutes)
}

// updateAutoScrollLocked starts, retargets, or stops the edge auto-scroll
// timer. Scroll speed grows as the pointer nears the edge; the timer
// keeps scrolling (and recomputing the working time) with no further
// pointer events.
func (c *Controller) updateAutoScrollLocked(d *dragState, offsetPx float64) {
	var speed float64 // px per tick, negative scrolls up
	switch {
	case d.geo.ViewportHeightPx <= 0:
		// No viewport info: edge detection is meaningless.
	case offsetPx < d.geo.EdgeZonePx:
		speed = -(d.geo.EdgeZonePx - offsetPx) / 4
	case offsetPx > d.geo.ViewportHeightPx-d.geo.EdgeZonePx:
		speed = (offsetPx - (d.geo.ViewportHeightPx - d.geo.EdgeZonePx)) / 4
	}

	if speed == 0 {
		if d.stopScroll != nil {
			close(d.stopScroll)
			d.stopScroll = nil
		}
		return
	}

	if d.stopScroll != nil {
		d.scrollSpeed = speed
		return
	}

	d.scrollSpeed = speed
	stop := make(chan struct{})
	d.stopScroll = stop
	go c.autoScroll(d, stop)
}

func (c *Controller) autoScroll(d *dragState, stop chan struct{}) {
	ticker := time.NewTicker(DefaultScrollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.drag != d || d.stopScroll != stop {
				c.mu.Unlock()
				return
			}
			d.scrollTopPx += d.scrollSpeed
			if d.scrollTopPx < 0 {
				d.scrollTopPx = 0
			}
			if d.scrollTopPx > d.geo.MaxScrollPx {
				d.scrollTopPx = d.geo.MaxScrollPx
			}
			c.recomputeLocked(d)
			c.mu.Unlock()
		}
	}
}
