package reorder

import "math"

// GridUpdater targets the grid cell that contains the active item's center.
type GridUpdater struct {
	Strategy Strategy
}

// NewOrder implements Updater.
func (u *GridUpdater) NewOrder(req Request, snap Snapshot) []string {
	g := snap.Layout.Grid
	n := len(snap.Order)
	if g == nil || g.Columns < 1 || g.ColumnWidth <= 0 || n == 0 || len(g.RowOffsets) < 2 {
		return nil
	}
	if !req.Center.Valid() || req.ActiveIndex < 0 || req.ActiveIndex >= n {
		return nil
	}

	col := cellIndex(req.Center.X/g.ColumnWidth, g.Columns)

	rows := len(g.RowOffsets) - 1
	row := 0
	for row < rows-1 && req.Center.Y > g.RowOffsets[row+1] {
		row++
	}

	target := row*g.Columns + col
	if target >= n {
		target = n - 1
	}
	return commit(u.Strategy, snap.Order, req.ActiveIndex, target)
}

// cellIndex maps a fractional cell coordinate to a cell, clamped to
// [0, count-1]. A coordinate exactly on a boundary belongs to the lower cell.
func cellIndex(f float64, count int) int {
	i := int(math.Ceil(f)) - 1
	if i < 0 {
		i = 0
	}
	if i > count-1 {
		i = count - 1
	}
	return i
}
