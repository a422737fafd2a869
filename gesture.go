package sortable

import "sync"

// touchQueue buffers pointer samples between frames. Consecutive moves are
// coalesced into the latest one; downs, ups and cancels are kept in order.
type touchQueue struct {
	mu      sync.Mutex
	pending []TouchEvent
}

func (q *touchQueue) push(ev TouchEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.pending); n > 0 && ev.Kind == TouchMove && q.pending[n-1].Kind == TouchMove {
		q.pending[n-1] = ev
		return
	}
	q.pending = append(q.pending, ev)
}

func (q *touchQueue) drain() []TouchEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Send queues a pointer sample for the next frame. Safe to call from any
// goroutine.
func (c *Container) Send(ev TouchEvent) {
	c.touches.push(ev)
}

// Dispatch applies a pointer sample immediately. It must be called from the
// loop goroutine.
func (c *Container) Dispatch(ev TouchEvent) {
	c.Batch(func() {
		c.dispatch(ev)
		c.sync()
	})
}

func (c *Container) dispatch(ev TouchEvent) {
	switch ev.Kind {
	case TouchDown:
		c.touchDown(ev.Key, ev.Point)
	case TouchMove:
		c.touchMove(ev.Point)
	case TouchUp, TouchCancel:
		c.release()
	}
}
