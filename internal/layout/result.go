package layout

// Positions maps item keys to their computed top-left offsets.
type Positions map[string]Vector

// Clone returns a shallow copy of p.
func (p Positions) Clone() Positions {
	out := make(Positions, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Result holds the output of one layout pass.
type Result struct {
	// Positions holds the top-left offset of every item, relative to the
	// container. When MirrorX is set X is measured from the container's right
	// edge; when MirrorY is set Y is measured from its bottom edge.
	Positions Positions

	// Size is the container size implied by the layout.
	Size Dimensions

	// MirrorX and MirrorY mark reversed main axes.
	MirrorX, MirrorY bool

	// Grid is set by the grid engine.
	Grid *GridResult

	// Flex is set by the flex engine.
	Flex *FlexResult
}

// GridResult carries the grid geometry needed by the grid order strategy.
type GridResult struct {
	Columns     int
	ColumnWidth float64
	// RowOffsets holds one entry per row plus a trailing entry; each entry
	// includes the row gap of the rows above it.
	RowOffsets []float64
}

// FlexResult carries the grouping needed by the flex order strategy.
type FlexResult struct {
	Direction FlexDirection
	// Groups lists item keys sharing one wrapped line, in order.
	Groups     [][]string
	KeyToGroup map[string]int
	// CrossOffsets and CrossSizes describe each group along the cross axis.
	CrossOffsets []float64
	CrossSizes   []float64
}
