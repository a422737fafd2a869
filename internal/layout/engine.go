package layout

// Input is everything a layout pass reads.
type Input struct {
	// Order is the current index-to-key sequence.
	Order []string

	// Dimensions holds item sizes with overrides already merged in.
	Dimensions map[string]Dimensions

	// Container is the measured container size. Unset fields hold -1.
	Container Dimensions
}

// Engine is implemented by the interchangeable layout strategies.
// The container works entirely with this interface.
type Engine interface {
	// Compute lays out every item in in.Order. It returns false without a
	// result when a needed dimension is not measured yet, so callers never
	// see a partially-correct layout.
	Compute(in Input) (Result, bool)

	// Overrides returns the per-item dimensions the engine pins regardless
	// of measurement (Unset fields are left alone), or nil for none.
	Overrides(container Dimensions, keys []string) map[string]Dimensions
}
