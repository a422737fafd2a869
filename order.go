package sortable

import (
	"fmt"
	"strconv"

	"github.com/grindlemire/go-sortable/internal/debug"
	"github.com/grindlemire/go-sortable/internal/layout"
)

// orderStore is the canonical index-to-key sequence and its inverse.
type orderStore struct {
	keys  []string
	index map[string]int
	gen   uint64
}

// set replaces the order and reports whether it differed elementwise.
// keys must not contain duplicates.
func (o *orderStore) set(keys []string) bool {
	if !layout.KeysDiffer(o.keys, keys) {
		return false
	}
	o.keys = append([]string(nil), keys...)
	o.index = make(map[string]int, len(keys))
	for i, k := range o.keys {
		o.index[k] = i
	}
	o.gen++
	return true
}

func (o *orderStore) indexOf(key string) (int, bool) {
	i, ok := o.index[key]
	return i, ok
}

// normalizeKeys replaces empty keys with their index and rejects duplicates.
func normalizeKeys(keys []string) ([]string, error) {
	out := make([]string, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for i, k := range keys {
		if k == "" {
			k = strconv.Itoa(i)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		out[i] = k
	}
	return out, nil
}

// SetItems replaces the item keys. Empty keys are replaced by their index.
// It returns ErrDuplicateKey if a key appears twice and leaves the order
// untouched. If the touched or dragged item is removed the drag ends at once.
func (c *Container) SetItems(keys []string) error {
	normalized, err := normalizeKeys(keys)
	if err != nil {
		return err
	}
	c.Batch(func() {
		if c.order.set(normalized) {
			debug.Log("SetItems: order %v", normalized)
			c.dropRemovedKey()
		}
		c.sync()
	})
	return nil
}

// Order returns a copy of the current order.
func (c *Container) Order() []string {
	return append([]string(nil), c.order.keys...)
}

// IndexOf returns the current index of key.
func (c *Container) IndexOf(key string) (int, bool) {
	return c.order.indexOf(key)
}

// Len returns the number of items.
func (c *Container) Len() int {
	return len(c.order.keys)
}
