package sortable

import (
	"context"
	"time"

	"github.com/grindlemire/go-sortable/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Watcher is an event source started by Run. Handlers run on the loop
// goroutine.
type Watcher interface {
	// Start begins the watcher. It returns when ctx is done or the source
	// is exhausted.
	Start(ctx context.Context, eventQueue chan<- func()) error
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a watcher that calls handler on the loop goroutine for
// each value received on ch.
func Watch[T any](ch <-chan T, handler func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Start implements Watcher.
func (w *ChannelWatcher[T]) Start(ctx context.Context, eventQueue chan<- func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case val, ok := <-w.ch:
			if !ok {
				return nil
			}
			v := val
			select {
			case eventQueue <- func() { w.handler(v) }:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// WatchTouches forwards pointer samples from ch into c.
func (c *Container) WatchTouches(ch <-chan TouchEvent) *ChannelWatcher[TouchEvent] {
	return Watch(ch, c.Send)
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher that calls handler on the loop goroutine at
// the given interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Start implements Watcher.
func (w *timerWatcher) Start(ctx context.Context, eventQueue chan<- func()) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case eventQueue <- w.handler:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// WithWatcher adds an event source started by Run.
func WithWatcher(w Watcher) Option {
	return func(c *Container) error {
		c.watchers = append(c.watchers, w)
		return nil
	}
}

func (c *Container) startWatchers(g *errgroup.Group, ctx context.Context) {
	for _, w := range c.watchers {
		debug.Log("Run: starting watcher %T", w)
		g.Go(func() error { return w.Start(ctx, c.eventQueue) })
	}
}
