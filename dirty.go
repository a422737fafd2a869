package sortable

// markDirty signals that an output changed since the last frame.
// Called automatically by state sets and layout passes.
func (c *Container) markDirty() {
	c.dirty.Store(true)
}

// checkAndClearDirty returns true if dirty and clears the flag.
// Called at the end of every frame.
func (c *Container) checkAndClearDirty() bool {
	return c.dirty.Swap(false)
}
