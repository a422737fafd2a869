package sortable

import (
	"fmt"
	"testing"
	"time"
)

// fakeHaptics counts feedback pulses.
type fakeHaptics struct {
	light, medium int
}

func (h *fakeHaptics) Light()  { h.light++ }
func (h *fakeHaptics) Medium() { h.medium++ }

// fakeScrollable is an in-memory scroll view whose offset is clamped to
// [0, max].
type fakeScrollable struct {
	frame  Frame
	offset float64
	max    float64
}

func (s *fakeScrollable) Frame() (Frame, bool) { return s.frame, true }
func (s *fakeScrollable) Offset() float64      { return s.offset }
func (s *fakeScrollable) ScrollTo(offset float64) {
	s.offset = min(max(offset, 0), s.max)
}

func keys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("k%d", i)
	}
	return out
}

// gridConfig is a three column grid without gaps.
func gridConfig() Config {
	cfg := DefaultConfig()
	cfg.Layout.Grid.Columns = 3
	return cfg
}

// newGrid builds a measured 300px wide grid of n 100x40 items at page origin.
func newGrid(t *testing.T, cfg Config, n int, opts ...Option) *Container {
	t.Helper()
	opts = append([]Option{WithItems(keys(n)...)}, opts...)
	c, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.MeasureContainer(Frame{Width: 300, Height: 400})
	for _, k := range keys(n) {
		c.MeasureItem(k, Dimensions{Width: 100, Height: 40})
	}
	if _, ok := c.Layout(); !ok {
		t.Fatal("layout not computed")
	}
	return c
}

// center returns the page position of key's center.
func center(t *testing.T, c *Container, key string) Vector {
	t.Helper()
	pos, ok := c.ItemPosition(key)
	if !ok {
		t.Fatalf("no position for %q", key)
	}
	d, _ := c.ItemDimensions(key)
	return pos.Add(d.Half())
}

// startDrag presses key at its center and runs the activation to the end.
func startDrag(t *testing.T, c *Container, key string) Vector {
	t.Helper()
	p := center(t, c, key)
	c.Dispatch(TouchEvent{Kind: TouchDown, Key: key, Point: p})
	c.Advance(c.cfg.Activation.Delay)
	c.Advance(c.cfg.Activation.AnimationDuration)
	if got := c.Phase(); got != PhaseDragging {
		t.Fatalf("Phase() = %v after activation, want %v", got, PhaseDragging)
	}
	return p
}

// settle advances well past every animation.
func settle(c *Container) {
	for range 10 {
		c.Advance(100 * time.Millisecond)
	}
}

// checkOrder verifies the order mapping is a consistent bijection.
func checkOrder(t *testing.T, c *Container) {
	t.Helper()
	if len(c.order.index) != len(c.order.keys) {
		t.Fatalf("len(index) = %d, len(keys) = %d", len(c.order.index), len(c.order.keys))
	}
	for i, k := range c.order.keys {
		if got, ok := c.order.index[k]; !ok || got != i {
			t.Fatalf("index[%q] = %d, %v, want %d", k, got, ok, i)
		}
	}
}
