package sortable

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Container.
type Option func(*Container) error

// Haptics is the feedback capability invoked on drag transitions.
type Haptics interface {
	Light()
	Medium()
}

// WithHaptics sets the haptic capability. It is only used when
// Config.HapticsEnabled is set.
func WithHaptics(h Haptics) Option {
	return func(c *Container) error {
		c.haptics = h
		return nil
	}
}

// WithScrollable sets the scroll view auto-scroll drives. Without one,
// auto-scroll is disabled.
func WithScrollable(s Scrollable) Option {
	return func(c *Container) error {
		c.scrollable = s
		return nil
	}
}

// WithContainerMeasurer sets a function returning the container's current
// page frame. Auto-scroll calls it every frame, which keeps it correct when
// the container moves without a new MeasureContainer call.
func WithContainerMeasurer(fn func() (Frame, bool)) Option {
	return func(c *Container) error {
		c.measurer = fn
		return nil
	}
}

// WithItems sets the initial item keys.
func WithItems(keys ...string) Option {
	return func(c *Container) error {
		return c.SetItems(keys)
	}
}

// WithOnDragStart sets the drag start callback. It runs on its own
// goroutine once Start or Run is called.
func WithOnDragStart(fn func(DragStartEvent)) Option {
	return func(c *Container) error {
		c.onDragStart = fn
		return nil
	}
}

// WithOnDragEnd sets the drag end callback.
func WithOnDragEnd(fn func(DragEndEvent)) Option {
	return func(c *Container) error {
		c.onDragEnd = fn
		return nil
	}
}

// WithOnOrderChange sets the order change callback. When the application is
// slower than the drag, only the latest order change is delivered.
func WithOnOrderChange(fn func(OrderChangeEvent)) Option {
	return func(c *Container) error {
		c.onOrderChange = fn
		return nil
	}
}

// WithOnChange sets a function called on the loop goroutine at the end of
// every frame that changed an output.
func WithOnChange(fn func()) Option {
	return func(c *Container) error {
		c.onChange = fn
		return nil
	}
}

// WithFrameRate sets the frame rate of Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(c *Container) error {
		if fps < 1 || fps > 240 {
			return fmt.Errorf("%w: frame rate must be between 1 and 240, got %d", ErrInvalidConfig, fps)
		}
		c.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the QueueUpdate queue.
// Default is 256.
func WithEventQueueSize(size int) Option {
	return func(c *Container) error {
		if size < 1 {
			return fmt.Errorf("%w: event queue size must be at least 1, got %d", ErrInvalidConfig, size)
		}
		c.eventQueue = make(chan func(), size)
		return nil
	}
}
