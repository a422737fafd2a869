// Package autoscroll scrolls a hosting view while a dragged item sits in one
// of its edge bands.
//
// Each frame the owner calls [Controller.Track] with the item's position and
// then [Controller.Step]. Track picks the offset that would bring the item
// back to the band boundary; Step approaches it with a square-root shaped
// step so large gaps close fast and the last pixels settle slowly.
package autoscroll
