package reorder

import "github.com/grindlemire/go-sortable/internal/layout"

// Request describes the dragged item at one point of the drag.
// All coordinates are in the layout frame of the last Result, so mirrored
// axes are already measured from the far edge.
type Request struct {
	ActiveKey   string
	ActiveIndex int

	// Position is the live top-left corner of the active item.
	Position layout.Vector

	// Center is the live center of the active item.
	Center layout.Vector
}

// Snapshot is the read-only state a strategy decides against.
type Snapshot struct {
	Order      []string
	KeyToIndex map[string]int
	Dimensions map[string]layout.Dimensions
	Layout     layout.Result
}

// Updater decides the next order for a drag request.
type Updater interface {
	// NewOrder returns the order to commit, or nil when the order should
	// stay as it is.
	NewOrder(req Request, snap Snapshot) []string
}

// For returns the updater matching the engine that produced res.
// It returns nil when res carries neither grid nor flex geometry.
func For(res layout.Result, strategy Strategy) Updater {
	switch {
	case res.Grid != nil:
		return &GridUpdater{Strategy: strategy}
	case res.Flex != nil:
		return &FlexUpdater{Strategy: strategy}
	}
	return nil
}

// commit applies strategy and reports nil when nothing moved.
func commit(strategy Strategy, order []string, from, to int) []string {
	if from == to {
		return nil
	}
	next := strategy.Apply(order, from, to)
	if !layout.KeysDiffer(order, next) {
		return nil
	}
	return next
}
