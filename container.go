package sortable

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-sortable/internal/autoscroll"
	"github.com/grindlemire/go-sortable/internal/debug"
	"github.com/grindlemire/go-sortable/internal/layout"
)

// generation identifies one combination of order and measurements.
type generation struct {
	order, measure uint64
}

// Container is one sortable collection: its order, measurements, layout,
// drag state machine and auto-scroll controller.
//
// All methods must be called from a single goroutine (the loop goroutine
// when Run is used), except Send, QueueUpdate, Start, Run, Phase,
// WatchPhase and WatchContainerSize. WatchItem is loop-only; while Run is
// active, call it from a QueueUpdate function.
type Container struct {
	cfg    Config
	engine layout.Engine

	order   orderStore
	measure measurementStore

	layout      layout.Result
	hasLayout   bool
	computed    bool
	computedGen generation

	drag   dragState
	phase  *state[Phase]
	size   *state[Dimensions]
	items  map[string]*state[Vector]
	scroll *autoscroll.Controller

	batchCtx batchContext
	dirty    atomic.Bool

	haptics    Haptics
	scrollable Scrollable
	measurer   func() (Frame, bool)

	onDragStart   func(DragStartEvent)
	onDragEnd     func(DragEndEvent)
	onOrderChange func(OrderChangeEvent)
	onChange      func()

	dragStartBox   *mailbox[DragStartEvent]
	dragEndBox     *mailbox[DragEndEvent]
	orderChangeBox *mailbox[OrderChangeEvent]

	touches       touchQueue
	eventQueue    chan func()
	watchers      []Watcher
	frameDuration time.Duration

	delivering atomic.Bool
	running    atomic.Bool
}

// New creates a container from cfg. It returns an error wrapping
// ErrInvalidConfig if cfg or an option is invalid.
func New(cfg Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{
		cfg:            cfg,
		engine:         cfg.engine(),
		measure:        newMeasurementStore(),
		items:          make(map[string]*state[Vector]),
		dragStartBox:   newMailbox[DragStartEvent](),
		dragEndBox:     newMailbox[DragEndEvent](),
		orderChangeBox: newMailbox[OrderChangeEvent](),
		eventQueue:     make(chan func(), 256),
		frameDuration:  16 * time.Millisecond,
	}
	c.phase = newState(c, PhaseIdle, func(a, b Phase) bool { return a == b })
	c.size = newState(c, layout.UnsetDimensions(), Dimensions.Equal)
	c.drag.reset()
	c.scroll = autoscroll.New(nil, autoscroll.Settings{})

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	c.scroll = autoscroll.New(c.scrollable, autoscroll.Settings{
		Enabled:                cfg.AutoScroll.Enabled,
		ActivationOffsetTop:    cfg.AutoScroll.ActivationOffsetTop,
		ActivationOffsetBottom: cfg.AutoScroll.ActivationOffsetBottom,
		Speed:                  cfg.AutoScroll.Speed,
	})
	return c, nil
}

// Config returns the configuration the container was built with.
func (c *Container) Config() Config {
	return c.cfg
}

// sync brings every derived output up to date.
func (c *Container) sync() {
	c.refreshLayout()
	c.publish()
}

func (c *Container) currentGen() generation {
	return generation{order: c.order.gen, measure: c.measure.gen}
}

// refreshLayout recomputes the layout once per change of order or
// measurements. Engine overrides are applied first so the pass reads them.
// When a dimension is missing the previous result is kept.
func (c *Container) refreshLayout() {
	if c.computed && c.currentGen() == c.computedGen {
		return
	}
	c.measure.setOverrides(c.engine.Overrides(c.measure.containerDims(), c.order.keys))

	gen := c.currentGen()
	if c.computed && gen == c.computedGen {
		return
	}
	c.computed = true
	c.computedGen = gen

	res, ok := c.engine.Compute(layout.Input{
		Order:      c.order.keys,
		Dimensions: c.measure.all(c.order.keys),
		Container:  c.measure.containerDims(),
	})
	if !ok {
		debug.Log("refreshLayout: skipped, %d items not fully measured", len(c.order.keys))
		return
	}

	merged, changed := layout.MergePositions(c.layout.Positions, res.Positions)
	res.Positions = merged
	c.layout = res
	c.hasLayout = true
	if len(changed) > 0 {
		debug.Log("refreshLayout: %d positions changed", len(changed))
	}
	c.markDirty()
}

// publish pushes outputs to their bindings.
func (c *Container) publish() {
	c.Batch(func() {
		if c.hasLayout {
			c.size.set(c.layout.Size)
		}
		for _, key := range c.order.keys {
			s, ok := c.items[key]
			if !ok {
				continue
			}
			if pos, ok := c.ItemPosition(key); ok {
				s.set(pos)
			}
		}
	})
}

// Layout returns the last computed layout in the layout frame, where
// mirrored axes run from the far edge. The second result is false until a
// pass has succeeded.
func (c *Container) Layout() (LayoutResult, bool) {
	return c.layout, c.hasLayout
}

// ContainerSize returns the size implied by the layout, or unset
// dimensions before the first pass.
func (c *Container) ContainerSize() Dimensions {
	return c.size.Get()
}

// Positions returns the resting top-left position of every item in
// container coordinates.
func (c *Container) Positions() Positions {
	out := make(Positions, len(c.layout.Positions))
	for key, pos := range c.layout.Positions {
		out[key] = c.toContainer(key, pos)
	}
	return out
}

// ItemPosition returns where key should be drawn now, in container
// coordinates: under the pointer while dragged, on its way back while
// dropping and at its layout slot otherwise.
func (c *Container) ItemPosition(key string) (Vector, bool) {
	slot, ok := c.layout.Positions[key]
	if !ok {
		return Vector{}, false
	}
	d := &c.drag
	if key == d.activeKey {
		switch c.Phase() {
		case PhaseDragging:
			return c.toContainer(key, d.live), true
		case PhaseDropping:
			return c.toContainer(key, d.dropFrom.Lerp(slot, d.dropT())), true
		}
	}
	return c.toContainer(key, slot), true
}

// WatchItem calls fn whenever the drawn position of key changes. It must be
// called on the loop goroutine.
func (c *Container) WatchItem(key string, fn func(Vector)) Unbind {
	s, ok := c.items[key]
	if !ok {
		initial, _ := c.ItemPosition(key)
		s = newState(c, initial, Vector.Equal)
		c.items[key] = s
	}
	return s.Bind(fn)
}

// WatchContainerSize calls fn whenever the layout size changes.
func (c *Container) WatchContainerSize(fn func(Dimensions)) Unbind {
	return c.size.Bind(fn)
}

// toContainer converts a layout frame position of key to container
// coordinates.
func (c *Container) toContainer(key string, pos Vector) Vector {
	if !c.layout.MirrorX && !c.layout.MirrorY {
		return pos
	}
	d, _ := c.measure.item(key)
	if c.layout.MirrorX {
		pos.X = c.layout.Size.Width - pos.X - d.Width
	}
	if c.layout.MirrorY {
		pos.Y = c.layout.Size.Height - pos.Y - d.Height
	}
	return pos
}

// toLayoutDelta converts a page space pointer delta to the layout frame.
func (c *Container) toLayoutDelta(delta Vector) Vector {
	if c.layout.MirrorX {
		delta.X = -delta.X
	}
	if c.layout.MirrorY {
		delta.Y = -delta.Y
	}
	return delta
}

// pageFrame returns the container's current page frame.
func (c *Container) pageFrame() (Frame, bool) {
	if c.measurer != nil {
		return c.measurer()
	}
	return c.measure.container, c.measure.hasContainer
}
