package sortable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestState[T comparable](initial T) (*Container, *state[T]) {
	c := &Container{}
	return c, newState(c, initial, func(a, b T) bool { return a == b })
}

func TestState_SetNotifiesBindings(t *testing.T) {
	c, s := newTestState(0)

	var got []int
	s.Bind(func(v int) { got = append(got, v) })
	s.set(1)
	s.set(1)
	s.set(2)

	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("binding values mismatch (-want +got):\n%s", diff)
	}
	if s.Get() != 2 {
		t.Errorf("Get() = %d, want 2", s.Get())
	}
	if !c.checkAndClearDirty() {
		t.Error("set did not mark the container dirty")
	}
}

func TestState_EqualValueSkipped(t *testing.T) {
	c, s := newTestState("a")
	calls := 0
	s.Bind(func(string) { calls++ })

	s.set("a")
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if c.checkAndClearDirty() {
		t.Error("an unchanged set marked the container dirty")
	}
}

func TestState_Unbind(t *testing.T) {
	_, s := newTestState(0)

	var first, second int
	unbind := s.Bind(func(int) { first++ })
	s.Bind(func(int) { second++ })

	s.set(1)
	unbind()
	s.set(2)

	if first != 1 {
		t.Errorf("first = %d, want 1", first)
	}
	if second != 2 {
		t.Errorf("second = %d, want 2", second)
	}
}

func TestBatch_DefersBindingExecution(t *testing.T) {
	c, s := newTestState(0)

	var callCount, lastValue int
	s.Bind(func(v int) {
		callCount++
		lastValue = v
	})

	c.Batch(func() {
		s.set(42)
		if callCount != 0 {
			t.Errorf("binding called during batch: callCount = %d, want 0", callCount)
		}
	})

	if callCount != 1 {
		t.Errorf("after batch: callCount = %d, want 1", callCount)
	}
	if lastValue != 42 {
		t.Errorf("after batch: lastValue = %d, want 42", lastValue)
	}
}

func TestBatch_MultipleSetsToSameState(t *testing.T) {
	c, s := newTestState(0)

	var received []int
	s.Bind(func(v int) { received = append(received, v) })

	c.Batch(func() {
		s.set(1)
		s.set(2)
		s.set(3)
	})

	if diff := cmp.Diff([]int{3}, received); diff != "" {
		t.Errorf("received mismatch (-want +got):\n%s", diff)
	}
}

func TestBatch_Nested(t *testing.T) {
	c, s := newTestState(0)

	calls := 0
	s.Bind(func(int) { calls++ })

	c.Batch(func() {
		s.set(1)
		c.Batch(func() {
			s.set(2)
		})
		if calls != 0 {
			t.Errorf("inner batch flushed: calls = %d, want 0", calls)
		}
		s.set(3)
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.Get() != 3 {
		t.Errorf("Get() = %d, want 3", s.Get())
	}
}

func TestBatch_FirstTriggerOrder(t *testing.T) {
	c := &Container{}
	a := newState(c, 0, func(x, y int) bool { return x == y })
	b := newState(c, "", func(x, y string) bool { return x == y })

	var order []string
	a.Bind(func(int) { order = append(order, "a") })
	b.Bind(func(string) { order = append(order, "b") })

	c.Batch(func() {
		b.set("x")
		a.set(1)
		b.set("y")
	})

	if diff := cmp.Diff([]string{"b", "a"}, order); diff != "" {
		t.Errorf("binding order mismatch (-want +got):\n%s", diff)
	}
}

func TestDirty_CheckAndClearDirty(t *testing.T) {
	type tc struct {
		markDirty    bool
		expectFirst  bool
		expectSecond bool
	}

	tests := map[string]tc{
		"returns true and clears flag when dirty": {
			markDirty:    true,
			expectFirst:  true,
			expectSecond: false,
		},
		"returns false when not dirty": {
			markDirty:    false,
			expectFirst:  false,
			expectSecond: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := &Container{}
			if tt.markDirty {
				c.markDirty()
			}
			if first := c.checkAndClearDirty(); first != tt.expectFirst {
				t.Errorf("first checkAndClearDirty() = %v, want %v", first, tt.expectFirst)
			}
			if second := c.checkAndClearDirty(); second != tt.expectSecond {
				t.Errorf("second checkAndClearDirty() = %v, want %v", second, tt.expectSecond)
			}
		})
	}
}
