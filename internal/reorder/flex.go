package reorder

// FlexUpdater reorders within the wrapped group the active item's center
// currently lies in.
type FlexUpdater struct {
	Strategy Strategy
}

// NewOrder implements Updater.
func (u *FlexUpdater) NewOrder(req Request, snap Snapshot) []string {
	f := snap.Layout.Flex
	if f == nil || len(f.Groups) == 0 || len(f.CrossOffsets) != len(f.Groups) || !req.Center.Valid() {
		return nil
	}
	start, ok := f.KeyToGroup[req.ActiveKey]
	if !ok {
		return nil
	}

	mainAxis := f.Direction.MainAxis()
	group := f.Groups[groupAt(f.CrossOffsets, start, req.Center.On(mainAxis.Cross()))]

	center := req.Center.On(mainAxis)
	pos := req.Position.On(mainAxis)
	for _, key := range group {
		if key == req.ActiveKey {
			continue
		}
		dims, ok := snap.Dimensions[key]
		if !ok || !dims.Measured() {
			continue
		}
		other, ok := snap.Layout.Positions[key]
		if !ok {
			continue
		}
		otherStart := other.On(mainAxis)
		otherEnd := otherStart + dims.Along(mainAxis)

		before := otherStart < pos && otherEnd > center
		after := otherStart > pos && otherStart < center
		if !before && !after {
			continue
		}
		idx, ok := snap.KeyToIndex[key]
		if !ok {
			return nil
		}
		return commit(u.Strategy, snap.Order, req.ActiveIndex, idx)
	}
	return nil
}

// groupAt walks group boundaries outward from start until cross lies inside
// a group. Positions before the first group resolve to it, and positions past
// the last group resolve to the last one.
func groupAt(offsets []float64, start int, cross float64) int {
	g := start
	if g >= len(offsets) {
		g = len(offsets) - 1
	}
	for g > 0 && cross < offsets[g] {
		g--
	}
	for g+1 < len(offsets) && cross > offsets[g+1] {
		g++
	}
	return g
}
