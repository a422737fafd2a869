package layout

import (
	"math"
	"sort"
)

// RowIndex returns the grid row of a flat item index.
func RowIndex(index, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return index / columns
}

// ColumnIndex returns the grid column of a flat item index.
func ColumnIndex(index, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return index % columns
}

// KeysDiffer reports whether a and b differ elementwise.
func KeysDiffer(a, b []string) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// FloatsDiffer reports whether a and b differ by Epsilon or more anywhere.
func FloatsDiffer(a, b []float64) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) >= Epsilon {
			return true
		}
	}
	return false
}

// MergePositions builds the position map for next while keeping prev's
// value for every key whose position did not move by Epsilon or more.
// It returns the merged map and the sorted keys whose value changed or
// appeared. Keys missing from next are dropped.
func MergePositions(prev, next Positions) (Positions, []string) {
	merged := make(Positions, len(next))
	var changed []string
	for key, pos := range next {
		if old, ok := prev[key]; ok && old.Equal(pos) {
			merged[key] = old
			continue
		}
		merged[key] = pos
		changed = append(changed, key)
	}
	sort.Strings(changed)
	return merged, changed
}
