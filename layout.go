// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package sortable

import (
	"github.com/grindlemire/go-sortable/internal/autoscroll"
	"github.com/grindlemire/go-sortable/internal/layout"
	"github.com/grindlemire/go-sortable/internal/reorder"
)

// Unset marks a dimension that has not been measured yet.
const Unset = layout.Unset

// Vector represents an (X, Y) pixel offset.
type Vector = layout.Vector

// Dimensions is a width/height pair. Unset fields hold -1.
type Dimensions = layout.Dimensions

// Frame is a rectangle in page (screen) coordinates.
type Frame = layout.Frame

// Positions maps item keys to top-left offsets.
type Positions = layout.Positions

// Offset is a pixel amount or a percentage of a reference distance.
type Offset = layout.Offset

// Unit specifies how an Offset is interpreted.
type Unit = layout.Unit

const (
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutResult holds the output of one layout pass.
type LayoutResult = layout.Result

// GridResult carries grid geometry.
type GridResult = layout.GridResult

// FlexResult carries flex grouping.
type FlexResult = layout.FlexResult

// FlexDirection specifies the main axis of a flex container.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap specifies whether flex items wrap into groups.
type FlexWrap = layout.FlexWrap

const (
	NoWrap = layout.NoWrap
	Wrap   = layout.Wrap
)

// Justify specifies how items are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how items sit on the cross axis of their group.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how groups are distributed along the cross axis.
type AlignContent = layout.AlignContent

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentCenter       = layout.ContentCenter
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
	ContentSpaceEvenly  = layout.ContentSpaceEvenly
	ContentStretch      = layout.ContentStretch
)

// Strategy selects insert or swap reordering.
type Strategy = reorder.Strategy

const (
	Insert = reorder.Insert
	Swap   = reorder.Swap
)

// Scrollable is the scroll view hosting a container.
type Scrollable = autoscroll.Scrollable

// Fixed creates a pixel Offset.
func Fixed(px float64) Offset {
	return layout.Fixed(px)
}

// Percent creates an Offset relative to a reference distance.
func Percent(p float64) Offset {
	return layout.Percent(p)
}

// ParseOffset parses "12", "12.5" or "10%".
func ParseOffset(s string) (Offset, error) {
	return layout.ParseOffset(s)
}

// UnsetDimensions returns Dimensions with both fields unmeasured.
func UnsetDimensions() Dimensions {
	return layout.UnsetDimensions()
}
