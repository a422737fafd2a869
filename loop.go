package sortable

import (
	"context"
	"errors"
	"time"

	"github.com/grindlemire/go-sortable/internal/debug"
	"golang.org/x/sync/errgroup"
)

// ErrRunning is returned by Run when the container is already running.
var ErrRunning = errors.New("sortable: container already running")

// Advance runs one frame: queued pointer samples are applied, timed
// transitions move forward by dt, the layout is refreshed and auto-scroll
// takes one step. Bindings fire once at the end of the frame.
func (c *Container) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.Batch(func() {
		for _, ev := range c.touches.drain() {
			c.dispatch(ev)
		}
		c.advanceDrag(dt)
		c.refreshLayout()
		c.autoScroll()
		c.sync()
	})
	if c.checkAndClearDirty() && c.onChange != nil {
		c.onChange()
	}
}

// Start launches the callback goroutines. Callbacks posted before Start are
// delivered once it runs. Start is a no-op while the callbacks are already
// being delivered; the goroutines stop when ctx is done.
func (c *Container) Start(ctx context.Context) {
	if !c.delivering.CompareAndSwap(false, true) {
		return
	}
	g, gctx := errgroup.WithContext(ctx)
	c.goCallbacks(g, gctx)
	go func() {
		_ = g.Wait()
		c.delivering.Store(false)
	}()
}

// goCallbacks runs one delivery goroutine per configured callback in g.
func (c *Container) goCallbacks(g *errgroup.Group, ctx context.Context) {
	if c.onDragStart != nil {
		g.Go(func() error { return c.dragStartBox.run(ctx, c.onDragStart) })
	}
	if c.onDragEnd != nil {
		g.Go(func() error { return c.dragEndBox.run(ctx, c.onDragEnd) })
	}
	if c.onOrderChange != nil {
		g.Go(func() error { return c.orderChangeBox.run(ctx, c.onOrderChange) })
	}
}

// Run drives frames at the configured frame rate until ctx is done. The
// callbacks are delivered for the duration of the run unless Start already
// delivers them. Every Container method may be called from inside a
// QueueUpdate function. Run may be called again once it has returned.
func (c *Container) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer c.running.Store(false)

	g, gctx := errgroup.WithContext(ctx)
	if c.delivering.CompareAndSwap(false, true) {
		defer c.delivering.Store(false)
		c.goCallbacks(g, gctx)
	}
	c.startWatchers(g, gctx)
	g.Go(func() error { return c.loop(gctx) })
	return g.Wait()
}

func (c *Container) loop(ctx context.Context) error {
	ticker := time.NewTicker(c.frameDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-c.eventQueue:
			fn()
		case now := <-ticker.C:
			c.Advance(now.Sub(last))
			last = now
		}
	}
}

// QueueUpdate enqueues a function to run on the loop goroutine.
// Safe to call from any goroutine.
func (c *Container) QueueUpdate(fn func()) {
	select {
	case c.eventQueue <- fn:
	default:
		debug.Log("QueueUpdate: queue full, update dropped")
	}
}
