package sortable

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-sortable/internal/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

// globalBindingID is a global counter for generating unique binding IDs.
var globalBindingID atomic.Uint64

// state wraps a derived output value and notifies bindings when it changes.
//
// Get is safe to call from any goroutine. set must only be called from the
// container's loop goroutine.
type state[T any] struct {
	mu       sync.RWMutex
	value    T
	equal    func(a, b T) bool
	bindings []*binding[T]
	owner    *Container
}

type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// newState creates a state owned by c. Sets for which equal reports true
// are dropped, so bindings only see real changes.
func newState[T any](c *Container, initial T, equal func(a, b T) bool) *state[T] {
	return &state[T]{value: initial, equal: equal, owner: c}
}

func (s *state[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// set updates the value, marks the owner dirty and notifies bindings.
// Inside a batch, binding execution is deferred until the batch completes.
func (s *state[T]) set(v T) {
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, v) {
		s.mu.Unlock()
		return
	}
	s.value = v
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	s.owner.markDirty()

	batch := &s.owner.batchCtx
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batching := batch.depth > 0
	if batching {
		// Later sets to the same binding overwrite the captured value.
		for _, b := range active {
			fn := b.fn
			captured := v
			if _, exists := batch.pending[b.id]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(captured) }
		}
	}
	batch.mu.Unlock()

	if !batching {
		for _, b := range active {
			b.fn(v)
		}
	}
}

// Bind registers fn to be called with every new value.
// Bindings are executed in registration order.
func (s *state[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn and defers all binding callbacks until fn returns.
//
// When the same binding is triggered multiple times during a batch, it only
// executes once with the final value. Bindings run in the order they were
// first triggered. Nested calls only flush when the outermost one returns.
func (c *Container) Batch(fn func()) {
	batch := &c.batchCtx
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		if len(callbacks) > 0 {
			debug.Log("Batch: flushing %d bindings", len(callbacks))
		}
		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
