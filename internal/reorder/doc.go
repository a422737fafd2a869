// Package reorder decides how the flat item order changes while an item is
// dragged.
//
// The primitives [InsertKeys] and [SwapKeys] are total: indices outside the
// order leave it unchanged. An [Updater] inspects the last layout result and
// the dragged item's live geometry and returns the next order, or nil when
// nothing should move. [GridUpdater] targets the cell under the item's center;
// [FlexUpdater] looks for an overlapped sibling inside the wrapped group the
// center falls into. Neither moves items across groups directly; group
// membership only changes when the next layout pass regroups the new order.
package reorder
