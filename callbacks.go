package sortable

import (
	"context"
	"sync"
)

// mailbox is a single-slot handoff from the loop goroutine to a callback
// goroutine. A post replaces any value not yet taken.
type mailbox[T any] struct {
	mu     sync.Mutex
	value  T
	full   bool
	signal chan struct{}
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{signal: make(chan struct{}, 1)}
}

func (m *mailbox[T]) post(v T) {
	m.mu.Lock()
	m.value = v
	m.full = true
	m.mu.Unlock()
	select {
	case m.signal <- struct{}{}:
	default:
	}
}

func (m *mailbox[T]) take() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.value, m.full
	var zero T
	m.value, m.full = zero, false
	return v, ok
}

// run delivers values to fn until ctx is done. fn never runs concurrently
// with itself.
func (m *mailbox[T]) run(ctx context.Context, fn func(T)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.signal:
			if v, ok := m.take(); ok {
				fn(v)
			}
		}
	}
}

func (c *Container) postDragStart(ev DragStartEvent) {
	if c.onDragStart != nil {
		c.dragStartBox.post(ev)
	}
}

func (c *Container) postDragEnd(ev DragEndEvent) {
	if c.onDragEnd != nil {
		c.dragEndBox.post(ev)
	}
}

func (c *Container) postOrderChange(ev OrderChangeEvent) {
	if c.onOrderChange != nil {
		c.orderChangeBox.post(ev)
	}
}
