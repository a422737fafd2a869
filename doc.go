// Package sortable is the core of a drag-to-reorder collection.
//
// A [Container] owns the item order, the measured item and container sizes,
// a grid or flex layout computed from them, the drag state machine and an
// auto-scroll controller. Hosts feed it measurements and pointer samples and
// draw items at [Container.ItemPosition] with [Container.Decoration];
// lifecycle callbacks are delivered on their own goroutines so slow
// application code never stalls a drag.
//
// Frames are explicit: call [Container.Advance] from the host's frame loop,
// or [Container.Run] to let the container drive itself.
//
//	c, err := sortable.New(sortable.DefaultConfig(),
//	    sortable.WithItems("a", "b", "c"),
//	    sortable.WithOnOrderChange(func(ev sortable.OrderChangeEvent) {
//	        fmt.Println(ev.NewOrder)
//	    }),
//	)
//
// Users import this single package for the complete public API; layout and
// reorder types are re-exported from internal packages.
package sortable
