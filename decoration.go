package sortable

// LayerState orders items on the z axis.
type LayerState int

const (
	LayerIdle         LayerState = iota // Resting items
	LayerIntermediate                   // The item returning to its slot
	LayerFocused                        // The touched or dragged item
)

// Decoration is the styling an item should be drawn with this frame.
type Decoration struct {
	Opacity       float64
	Scale         float64
	ShadowOpacity float64
	ZIndex        LayerState
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Decoration returns the interpolated styling of key. The touched item moves
// toward the active values with its press progress while every other item
// moves toward the inactive values.
func (c *Container) Decoration(key string) Decoration {
	dc := c.cfg.Decoration
	press := c.PressProgress(key)

	inactive := 0.0
	if c.drag.touchedKey != "" && key != c.drag.touchedKey {
		inactive = c.drag.progress
	}
	restOpacity := lerp(1, dc.InactiveOpacity, inactive)
	restScale := lerp(1, dc.InactiveScale, inactive)

	return Decoration{
		Opacity:       lerp(restOpacity, dc.ActiveOpacity, press),
		Scale:         lerp(restScale, dc.ActiveScale, press),
		ShadowOpacity: lerp(0, dc.ActiveShadowOpacity, press),
		ZIndex:        c.layer(key),
	}
}

func (c *Container) layer(key string) LayerState {
	if key == "" || key != c.drag.touchedKey {
		return LayerIdle
	}
	if c.Phase() == PhaseDropping {
		return LayerIntermediate
	}
	return LayerFocused
}

// Indicator marks the slot the dragged item will drop into.
type Indicator struct {
	Visible    bool
	Key        string
	Index      int
	Position   Vector
	Dimensions Dimensions
	Progress   float64
}

// DropIndicator returns the slot of the touched item. It is visible from
// the touch until the item has fully dropped; Progress follows the
// activation progress so the indicator fades in and out with it.
func (c *Container) DropIndicator() Indicator {
	key := c.drag.touchedKey
	if key == "" || (c.drag.dropped && c.drag.progress == 0) {
		return Indicator{Index: -1}
	}
	index, ok := c.order.indexOf(key)
	slot, hasSlot := c.layout.Positions[key]
	if !ok || !hasSlot {
		return Indicator{Index: -1}
	}
	dims := c.drag.dims
	if !dims.Measured() {
		dims, _ = c.measure.item(key)
	}
	return Indicator{
		Visible:    true,
		Key:        key,
		Index:      index,
		Position:   c.toContainer(key, slot),
		Dimensions: dims,
		Progress:   c.drag.progress,
	}
}
