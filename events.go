package sortable

import (
	"fmt"

	"github.com/google/uuid"
)

// TouchKind identifies a pointer transition.
type TouchKind uint8

const (
	TouchDown TouchKind = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (k TouchKind) String() string {
	switch k {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TouchKind) UnmarshalText(text []byte) error {
	for _, kind := range []TouchKind{TouchDown, TouchMove, TouchUp, TouchCancel} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown touch kind %q", string(text))
}

// TouchEvent is one pointer sample.
type TouchEvent struct {
	Kind TouchKind
	// Key is the item under the pointer. Only TouchDown reads it.
	Key string
	// Point is the pointer position in page coordinates.
	Point Vector
}

// DragStartEvent is delivered when an item starts being dragged.
type DragStartEvent struct {
	Session   uuid.UUID
	Key       string
	FromIndex int
}

// DragEndEvent is delivered when a drag is released or aborted.
// ToIndex is -1 when the item was removed during the drag.
type DragEndEvent struct {
	Session   uuid.UUID
	Key       string
	FromIndex int
	ToIndex   int
}

// OrderChangeEvent is delivered every time a drag commits a new order.
// NewOrder is a copy owned by the receiver.
type OrderChangeEvent struct {
	Session   uuid.UUID
	Key       string
	FromIndex int
	ToIndex   int
	NewOrder  []string
}
