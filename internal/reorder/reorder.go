package reorder

import "fmt"

// Strategy selects how the flat order changes when the dragged item
// overlaps another one.
type Strategy uint8

const (
	// Insert removes the active key and re-inserts it at the target index,
	// shifting every key in between by one.
	Insert Strategy = iota
	// Swap exchanges the active key with the occupant of the target index.
	Swap
)

func (s Strategy) String() string {
	switch s {
	case Insert:
		return "insert"
	case Swap:
		return "swap"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "insert":
		*s = Insert
	case "swap":
		*s = Swap
	default:
		return fmt.Errorf("unknown reorder strategy %q", string(text))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Apply reorders keys with strategy s. See Insert and Swap.
func (s Strategy) Apply(keys []string, from, to int) []string {
	if s == Swap {
		return SwapKeys(keys, from, to)
	}
	return InsertKeys(keys, from, to)
}

func inRange(keys []string, i int) bool {
	return i >= 0 && i < len(keys)
}

// InsertKeys moves the key at from so it ends up at index to. The input is
// never modified; out-of-range indices and from == to return keys as is.
func InsertKeys(keys []string, from, to int) []string {
	if !inRange(keys, from) || !inRange(keys, to) || from == to {
		return keys
	}
	out := make([]string, len(keys))
	copy(out, keys)
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// SwapKeys exchanges the keys at from and to. The input is never modified;
// out-of-range indices and from == to return keys as is.
func SwapKeys(keys []string, from, to int) []string {
	if !inRange(keys, from) || !inRange(keys, to) || from == to {
		return keys
	}
	out := make([]string, len(keys))
	copy(out, keys)
	out[from], out[to] = out[to], out[from]
	return out
}
