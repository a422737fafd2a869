package layout

// GridParams configures the grid engine.
type GridParams struct {
	Columns   int
	ColumnGap float64
	RowGap    float64
}

// Grid lays items out in uniform columns. Each row is as tall as its
// tallest item.
type Grid struct {
	params GridParams
}

// NewGrid creates a grid engine. Columns below 1 are treated as 1.
func NewGrid(params GridParams) *Grid {
	if params.Columns < 1 {
		params.Columns = 1
	}
	return &Grid{params: params}
}

// Params returns the engine parameters.
func (g *Grid) Params() GridParams {
	return g.params
}

// ColumnWidth returns the horizontal stride of one column, gap included.
func (g *Grid) ColumnWidth(containerWidth float64) float64 {
	return (containerWidth + g.params.ColumnGap) / float64(g.params.Columns)
}

// Overrides pins every item to the column width minus the column gap.
func (g *Grid) Overrides(container Dimensions, keys []string) map[string]Dimensions {
	if container.Width < 0 {
		return nil
	}
	width := g.ColumnWidth(container.Width) - g.params.ColumnGap
	if width < 0 {
		width = 0
	}
	out := make(map[string]Dimensions, len(keys))
	for _, key := range keys {
		out[key] = Dimensions{Width: width, Height: Unset}
	}
	return out
}

// RowOffsets computes the accumulated row offsets for order. The slice has
// one entry per row plus a trailing one. It returns false if any item
// height is not measured.
func (g *Grid) RowOffsets(order []string, dims map[string]Dimensions) ([]float64, bool) {
	columns := g.params.Columns
	rows := (len(order) + columns - 1) / columns
	offsets := make([]float64, rows+1)
	for i, key := range order {
		d, ok := dims[key]
		if !ok || d.Height < 0 {
			return nil, false
		}
		row := RowIndex(i, columns)
		offsets[row+1] = max(offsets[row+1], offsets[row]+d.Height+g.params.RowGap)
	}
	return offsets, true
}

// Compute implements Engine.
func (g *Grid) Compute(in Input) (Result, bool) {
	if in.Container.Width < 0 {
		return Result{}, false
	}
	offsets, ok := g.RowOffsets(in.Order, in.Dimensions)
	if !ok {
		return Result{}, false
	}

	columns := g.params.Columns
	colWidth := g.ColumnWidth(in.Container.Width)
	positions := make(Positions, len(in.Order))
	for i, key := range in.Order {
		positions[key] = Vector{
			X: float64(ColumnIndex(i, columns)) * colWidth,
			Y: offsets[RowIndex(i, columns)],
		}
	}

	height := 0.0
	if len(in.Order) > 0 {
		height = offsets[len(offsets)-1] - g.params.RowGap
	}

	return Result{
		Positions: positions,
		Size:      Dimensions{Width: in.Container.Width, Height: height},
		Grid: &GridResult{
			Columns:     columns,
			ColumnWidth: colWidth,
			RowOffsets:  offsets,
		},
	}, true
}
