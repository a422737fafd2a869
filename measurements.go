package sortable

import "github.com/grindlemire/go-sortable/internal/layout"

// measurementStore holds measured item and container sizes plus the
// overrides pinned by the layout engine. Overrides win field by field and
// are merged at read time.
type measurementStore struct {
	items     map[string]Dimensions
	overrides map[string]Dimensions

	container    Frame
	hasContainer bool

	gen uint64
}

func newMeasurementStore() measurementStore {
	return measurementStore{
		items:     make(map[string]Dimensions),
		overrides: make(map[string]Dimensions),
	}
}

// record stores a measurement and reports whether it changed.
func (m *measurementStore) record(key string, d Dimensions) bool {
	if old, ok := m.items[key]; ok && old.Equal(d) {
		return false
	}
	m.items[key] = d
	m.gen++
	return true
}

func (m *measurementStore) remove(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	m.gen++
	return true
}

// setOverrides replaces every override and reports whether any changed.
func (m *measurementStore) setOverrides(next map[string]Dimensions) bool {
	changed := len(next) != len(m.overrides)
	if !changed {
		for k, d := range next {
			if old, ok := m.overrides[k]; !ok || !old.Equal(d) {
				changed = true
				break
			}
		}
	}
	if !changed {
		return false
	}
	m.overrides = make(map[string]Dimensions, len(next))
	for k, d := range next {
		m.overrides[k] = d
	}
	m.gen++
	return true
}

// setContainer stores the container frame. Only a size change invalidates
// the layout.
func (m *measurementStore) setContainer(f Frame) bool {
	resized := !m.hasContainer || !m.container.Dimensions().Equal(f.Dimensions())
	m.container = f
	m.hasContainer = true
	if resized {
		m.gen++
	}
	return resized
}

func (m *measurementStore) containerDims() Dimensions {
	if !m.hasContainer {
		return layout.UnsetDimensions()
	}
	return m.container.Dimensions()
}

// item returns the merged dimensions of key and whether both fields are set.
func (m *measurementStore) item(key string) (Dimensions, bool) {
	d, ok := m.items[key]
	if !ok {
		d = layout.UnsetDimensions()
	}
	if o, ok := m.overrides[key]; ok {
		d = d.Merge(o)
	}
	return d, d.Measured()
}

// all returns the merged dimensions of every key that has any.
func (m *measurementStore) all(keys []string) map[string]Dimensions {
	out := make(map[string]Dimensions, len(keys))
	for _, k := range keys {
		_, measured := m.items[k]
		_, overridden := m.overrides[k]
		if !measured && !overridden {
			continue
		}
		out[k], _ = m.item(k)
	}
	return out
}

// MeasureItem records the rendered size of an item.
func (c *Container) MeasureItem(key string, d Dimensions) {
	c.Batch(func() {
		c.measure.record(key, d)
		c.sync()
	})
}

// RemoveItem forgets the measurement of an unmounted item.
func (c *Container) RemoveItem(key string) {
	c.Batch(func() {
		c.measure.remove(key)
		c.sync()
	})
}

// MeasureContainer records the container's page frame.
func (c *Container) MeasureContainer(f Frame) {
	c.Batch(func() {
		c.measure.setContainer(f)
		c.sync()
	})
}

// ItemDimensions returns the merged dimensions of key.
func (c *Container) ItemDimensions(key string) (Dimensions, bool) {
	return c.measure.item(key)
}
