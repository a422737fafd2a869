package sortable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grindlemire/go-sortable/internal/autoscroll"
	"github.com/grindlemire/go-sortable/internal/debug"
	"github.com/grindlemire/go-sortable/internal/reorder"
)

// Phase is the drag state of a container.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTouched
	PhaseActivated
	PhaseDragging
	PhaseDropping
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTouched:
		return "touched"
	case PhaseActivated:
		return "activated"
	case PhaseDragging:
		return "dragging"
	case PhaseDropping:
		return "dropping"
	default:
		return fmt.Sprintf("unknown(%d)", p)
	}
}

// dragState is owned by the loop goroutine. Positions are in the layout
// frame; pointer samples are in page coordinates.
type dragState struct {
	session    uuid.UUID
	touchedKey string
	activeKey  string
	dims       Dimensions

	touchStart Vector // pointer at touch down
	pointer    Vector // latest pointer
	elapsed    time.Duration

	progress     float64 // activation progress, 0..1
	dropProgress float64 // progress when dropping started

	startIndex     int
	anchor         Vector // item position when dragging started
	pointerAtStart Vector
	live           Vector
	dropFrom       Vector

	lastCenter Vector
	hasCenter  bool

	dropped bool
}

func (d *dragState) reset() {
	dropped := d.dropped
	*d = dragState{dims: UnsetDimensions(), startIndex: -1, dropped: dropped}
}

// dropT returns how far the dropping item is on its way back to its slot.
func (d *dragState) dropT() float64 {
	if d.dropProgress <= 0 {
		return 1
	}
	return 1 - d.progress/d.dropProgress
}

// Phase returns the current drag phase. Safe to call from any goroutine.
func (c *Container) Phase() Phase {
	return c.phase.Get()
}

// WatchPhase calls fn on every phase transition.
func (c *Container) WatchPhase(fn func(Phase)) Unbind {
	return c.phase.Bind(fn)
}

// ActiveKey returns the dragged item, if any.
func (c *Container) ActiveKey() (string, bool) {
	return c.drag.activeKey, c.drag.activeKey != ""
}

// TouchedKey returns the pressed item, if any.
func (c *Container) TouchedKey() (string, bool) {
	return c.drag.touchedKey, c.drag.touchedKey != ""
}

// ActivationProgress returns the activation progress of the touched item.
func (c *Container) ActivationProgress() float64 {
	return c.drag.progress
}

// PressProgress returns the activation progress of key, zero for every
// item but the touched one.
func (c *Container) PressProgress(key string) float64 {
	if key == "" || key != c.drag.touchedKey {
		return 0
	}
	return c.drag.progress
}

// Dropped reports whether the last drag completed its drop animation.
func (c *Container) Dropped() bool {
	return c.drag.dropped
}

func (c *Container) setPhase(p Phase) {
	if old := c.Phase(); old != p {
		debug.Log("drag: %s -> %s (touched=%q active=%q)", old, p, c.drag.touchedKey, c.drag.activeKey)
	}
	c.phase.set(p)
}

func (c *Container) hapticLight() {
	if c.cfg.HapticsEnabled && c.haptics != nil {
		c.haptics.Light()
	}
}

func (c *Container) hapticMedium() {
	if c.cfg.HapticsEnabled && c.haptics != nil {
		c.haptics.Medium()
	}
}

// touchDown starts a press on key. A press while anything is touched,
// dragged or dropping is ignored outright.
func (c *Container) touchDown(key string, p Vector) {
	if !c.cfg.SortEnabled || c.Phase() != PhaseIdle {
		debug.Log("drag: touch on %q ignored in phase %s", key, c.Phase())
		return
	}
	if _, ok := c.order.indexOf(key); !ok {
		return
	}
	c.drag.reset()
	c.drag.dropped = false
	c.drag.session = uuid.New()
	c.drag.touchedKey = key
	c.drag.touchStart = p
	c.drag.pointer = p
	if d, ok := c.measure.item(key); ok {
		c.drag.dims = d
	}
	c.setPhase(PhaseTouched)
}

func (c *Container) touchMove(p Vector) {
	switch c.Phase() {
	case PhaseTouched, PhaseActivated:
		c.drag.pointer = p
		if p.Sub(c.drag.touchStart).Length() > c.cfg.Activation.FailOffset {
			debug.Log("drag: pointer moved past fail offset, cancelling %q", c.drag.touchedKey)
			c.release()
		}
	case PhaseDragging:
		c.drag.pointer = p
		c.updateLivePosition()
		c.updateOrder()
	}
}

// release is the single cleanup path for pointer up, cancel and a failed
// activation. Every phase ends in Idle, directly or through Dropping.
func (c *Container) release() {
	switch c.Phase() {
	case PhaseTouched:
		c.drag.reset()
		c.setPhase(PhaseIdle)
	case PhaseActivated:
		if slot, ok := c.layout.Positions[c.drag.touchedKey]; ok {
			c.drag.dropFrom = slot
		}
		c.beginDrop()
	case PhaseDragging:
		key := c.drag.activeKey
		to, _ := c.order.indexOf(key)
		c.scroll.End()
		c.hapticMedium()
		c.postDragEnd(DragEndEvent{
			Session:   c.drag.session,
			Key:       key,
			FromIndex: c.drag.startIndex,
			ToIndex:   to,
		})
		c.drag.dropFrom = c.drag.live
		c.beginDrop()
	}
}

func (c *Container) beginDrop() {
	c.drag.dropProgress = c.drag.progress
	c.setPhase(PhaseDropping)
}

// advanceDrag moves the timed transitions forward by dt. Time left over
// after one transition carries into the next phase.
func (c *Container) advanceDrag(dt time.Duration) {
	for range 3 {
		var more bool
		switch c.Phase() {
		case PhaseTouched:
			dt, more = c.advanceTouched(dt)
		case PhaseActivated:
			dt, more = c.advanceActivated(dt)
		case PhaseDropping:
			dt, more = c.advanceDropping(dt)
		}
		if !more {
			return
		}
	}
}

func (c *Container) advanceTouched(dt time.Duration) (time.Duration, bool) {
	d := &c.drag
	if !d.dims.Measured() {
		if dims, ok := c.measure.item(d.touchedKey); ok {
			d.dims = dims
		}
	}
	d.elapsed += dt
	delay := c.cfg.Activation.Delay
	if d.elapsed < delay {
		return 0, false
	}
	if !d.dims.Measured() {
		// Activation waits for the first measurement.
		return 0, false
	}
	leftover := min(d.elapsed-delay, dt)
	c.setPhase(PhaseActivated)
	return leftover, true
}

func (c *Container) advanceActivated(dt time.Duration) (time.Duration, bool) {
	d := &c.drag
	if dur := c.cfg.Activation.AnimationDuration; dur > 0 {
		d.progress = min(1, d.progress+float64(dt)/float64(dur))
	} else {
		d.progress = 1
	}
	if d.progress >= 1 {
		c.startDrag()
	}
	return 0, false
}

func (c *Container) advanceDropping(dt time.Duration) (time.Duration, bool) {
	d := &c.drag
	if dur := c.cfg.Activation.DropAnimationDuration; dur > 0 {
		d.progress = max(0, d.progress-float64(dt)/float64(dur))
	} else {
		d.progress = 0
	}
	if d.progress <= 0 {
		c.completeDrop()
	}
	return 0, false
}

// startDrag makes the touched item active. Without a layout slot for it the
// drag stays activated and retries on the next frame.
func (c *Container) startDrag() {
	d := &c.drag
	key := d.touchedKey
	index, ok := c.order.indexOf(key)
	if !ok {
		return
	}
	slot, ok := c.layout.Positions[key]
	if !ok {
		return
	}

	anchor := slot
	if c.cfg.Snap.Enabled {
		if frame, ok := c.pageFrame(); ok {
			// Item-local touch point in the layout frame.
			local := c.toLayoutPoint(d.pointer.Sub(Vector{X: frame.X, Y: frame.Y})).Sub(anchor)
			snap := Vector{
				X: c.cfg.Snap.OffsetX.Resolve(d.dims.Width),
				Y: c.cfg.Snap.OffsetY.Resolve(d.dims.Height),
			}
			anchor = anchor.Add(local.Sub(snap))
		}
	}

	d.activeKey = key
	d.startIndex = index
	d.anchor = anchor
	d.pointerAtStart = d.pointer
	d.live = anchor
	d.hasCenter = false
	c.scroll.Begin()
	c.hapticMedium()
	c.setPhase(PhaseDragging)
	c.postDragStart(DragStartEvent{Session: d.session, Key: key, FromIndex: index})
}

// toLayoutPoint converts a container space point to the layout frame.
func (c *Container) toLayoutPoint(p Vector) Vector {
	if c.layout.MirrorX {
		p.X = c.layout.Size.Width - p.X
	}
	if c.layout.MirrorY {
		p.Y = c.layout.Size.Height - p.Y
	}
	return p
}

func (c *Container) completeDrop() {
	debug.Log("drag: drop of %q complete", c.drag.touchedKey)
	c.scroll.End()
	c.drag.reset()
	c.drag.dropped = true
	c.setPhase(PhaseIdle)
}

// updateLivePosition follows the pointer and compensates for scrolling
// since the drag started.
func (c *Container) updateLivePosition() {
	d := &c.drag
	delta := d.pointer.Sub(d.pointerAtStart)
	delta.Y += c.scroll.ScrollDiff()
	d.live = d.anchor.Add(c.toLayoutDelta(delta))
}

// updateOrder asks the reorder strategy for a new order whenever the active
// item's center moved.
func (c *Container) updateOrder() {
	d := &c.drag
	center := d.live.Add(d.dims.Half())
	if d.hasCenter && center.Equal(d.lastCenter) {
		return
	}
	d.lastCenter = center
	d.hasCenter = true

	index, ok := c.order.indexOf(d.activeKey)
	if !ok {
		return
	}
	updater := reorder.For(c.layout, c.cfg.Strategy)
	if updater == nil {
		return
	}
	next := updater.NewOrder(reorder.Request{
		ActiveKey:   d.activeKey,
		ActiveIndex: index,
		Position:    d.live,
		Center:      center,
	}, reorder.Snapshot{
		Order:      c.order.keys,
		KeyToIndex: c.order.index,
		Dimensions: c.measure.all(c.order.keys),
		Layout:     c.layout,
	})
	if next == nil || !c.order.set(next) {
		return
	}
	to, _ := c.order.indexOf(d.activeKey)
	debug.Log("drag: %q moved %d -> %d", d.activeKey, index, to)
	c.refreshLayout()
	c.hapticLight()
	c.postOrderChange(OrderChangeEvent{
		Session:   d.session,
		Key:       d.activeKey,
		FromIndex: index,
		ToIndex:   to,
		NewOrder:  c.Order(),
	})
}

// dropRemovedKey ends the drag at once when its item left the order.
func (c *Container) dropRemovedKey() {
	d := &c.drag
	if d.touchedKey == "" {
		return
	}
	if _, ok := c.order.indexOf(d.touchedKey); ok {
		return
	}
	debug.Log("drag: %q removed mid-drag", d.touchedKey)
	if c.Phase() == PhaseDragging {
		c.postDragEnd(DragEndEvent{
			Session:   d.session,
			Key:       d.activeKey,
			FromIndex: d.startIndex,
			ToIndex:   -1,
		})
	}
	c.scroll.End()
	c.drag.reset()
	c.setPhase(PhaseIdle)
}

// autoScroll runs one auto-scroll frame for the dragged item.
func (c *Container) autoScroll() {
	if c.Phase() != PhaseDragging || !c.cfg.SortEnabled || !c.scroll.Enabled() {
		return
	}
	frame, ok := c.pageFrame()
	if !ok {
		return
	}
	pos, ok := c.ItemPosition(c.drag.activeKey)
	if !ok {
		return
	}
	c.scroll.Track(autoscroll.Item{Top: pos.Y, Height: c.drag.dims.Height}, frame)
	if c.scroll.Step() {
		c.updateLivePosition()
		c.updateOrder()
	}
}
