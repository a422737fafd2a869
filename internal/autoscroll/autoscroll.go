package autoscroll

import (
	"math"

	"github.com/grindlemire/go-sortable/internal/debug"
	"github.com/grindlemire/go-sortable/internal/layout"
)

// NoTarget is the Target value while nothing needs scrolling.
const NoTarget = -1.0

// Scrollable is the scroll view hosting a sortable container.
type Scrollable interface {
	// Frame returns the viewport in page coordinates, or false if it is
	// not measured.
	Frame() (layout.Frame, bool)

	// Offset returns the current vertical scroll offset.
	Offset() float64

	// ScrollTo moves the view to the given vertical offset.
	ScrollTo(offset float64)
}

// Settings configures the controller.
type Settings struct {
	Enabled bool
	// ActivationOffsetTop and ActivationOffsetBottom are the edge bands that
	// trigger scrolling. Percentages resolve against the viewport height.
	ActivationOffsetTop    layout.Offset
	ActivationOffsetBottom layout.Offset
	Speed                  float64
}

// Item is the dragged item's vertical extent relative to its container.
type Item struct {
	Top    float64
	Height float64
}

// Controller drives a Scrollable while an item is dragged near its edges.
// It is not safe for concurrent use.
type Controller struct {
	settings Settings
	view     Scrollable

	active          bool
	dragStartOffset float64
	startContainerY float64
	hasStartY       bool
	target          float64
	prevScrollTo    float64
	hasPrev         bool
}

// New creates a controller for view. A nil view disables auto-scroll.
func New(view Scrollable, settings Settings) *Controller {
	return &Controller{settings: settings, view: view, target: NoTarget}
}

// Enabled reports whether the controller will ever scroll.
func (c *Controller) Enabled() bool {
	return c.settings.Enabled && c.view != nil
}

// Active reports whether a drag is being tracked.
func (c *Controller) Active() bool {
	return c.active
}

// Begin starts a drag session and records the starting scroll offset.
func (c *Controller) Begin() {
	c.reset()
	if c.view == nil {
		return
	}
	c.active = true
	c.dragStartOffset = c.view.Offset()
}

// End stops the session. Target is cleared.
func (c *Controller) End() {
	c.reset()
}

func (c *Controller) reset() {
	c.active = false
	c.target = NoTarget
	c.hasStartY = false
	c.hasPrev = false
	c.dragStartOffset = 0
}

// Target returns the offset being approached, or NoTarget.
func (c *Controller) Target() float64 {
	return c.target
}

// ScrollDiff returns how far the view scrolled since Begin.
func (c *Controller) ScrollDiff() float64 {
	if !c.active || c.view == nil {
		return 0
	}
	return c.view.Offset() - c.dragStartOffset
}

// Track updates the target from the item position. container is the
// sortable container's current page frame.
func (c *Controller) Track(item Item, container layout.Frame) {
	if !c.active || !c.Enabled() || item.Height < 0 {
		return
	}
	viewport, ok := c.view.Frame()
	if !ok {
		return
	}

	if !c.hasStartY {
		c.startContainerY = container.Y
		c.hasStartY = true
	}

	top := c.settings.ActivationOffsetTop.Resolve(viewport.Height)
	bottom := c.settings.ActivationOffsetBottom.Resolve(viewport.Height)
	sY, sH := viewport.Y, viewport.Height
	cY, cH := container.Y, container.Height

	topDistance := sY + top - cY
	bottomDistance := cY + cH - (sY + sH - bottom)
	topOverflow := sY + top - (cY + item.Top)
	bottomOverflow := cY + item.Top + item.Height - (sY + sH - bottom)

	// The container page position shifts by exactly the scrolled amount, so
	// this tracks the offset even when the view reports it late.
	offset := c.dragStartOffset + (c.startContainerY - cY)

	switch {
	case topDistance > 0 && topOverflow > 0:
		c.setTarget(offset - math.Min(topOverflow, topDistance))
	case bottomDistance > 0 && bottomOverflow > 0:
		c.setTarget(offset + math.Min(bottomOverflow, bottomDistance))
	}
}

func (c *Controller) setTarget(target float64) {
	if math.Abs(target-c.target) >= layout.Epsilon {
		debug.Log("autoscroll: target %.2f", target)
	}
	c.target = target
}

// Step advances the view one frame toward the target and reports whether
// it scrolled. The target is cleared once it is reached or progress stalls.
func (c *Controller) Step() bool {
	if !c.active || !c.Enabled() || c.target == NoTarget {
		return false
	}
	current := c.view.Offset()
	next, ok := NextOffset(current, c.target, c.settings.Speed)
	if !ok || (c.hasPrev && c.prevScrollTo == next) {
		c.target = NoTarget
		return false
	}
	c.view.ScrollTo(next)
	c.prevScrollTo = next
	c.hasPrev = true
	return true
}

// NextOffset returns the offset one frame closer to target. The step is
// speed * sqrt(|target-current|) and is clamped so it never passes target.
// It returns false when the remaining distance or the step is below
// layout.Epsilon.
func NextOffset(current, target, speed float64) (float64, bool) {
	diff := target - current
	if math.Abs(diff) < layout.Epsilon {
		return current, false
	}
	direction := 1.0
	if diff < 0 {
		direction = -1
	}
	step := speed * direction * math.Sqrt(math.Abs(diff))
	var next float64
	if target > current {
		next = math.Min(current+step, target)
	} else {
		next = math.Max(current+step, target)
	}
	if math.Abs(next-current) < layout.Epsilon {
		return current, false
	}
	return next, true
}
