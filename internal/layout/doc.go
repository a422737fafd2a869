// Package layout implements the geometry and layout engines behind sortable
// containers.
//
// Two engines share one contract. [Grid] places items in uniform columns with
// per-row heights, and [Flex] walks items along a main axis and wraps them into
// groups. Both are pure: feeding the same [Input] always yields a [Result]
// whose positions are equal by value, which lets callers keep the previous
// positions when nothing moved (see [MergePositions]).
//
// Types are re-exported through the root sortable package for public consumption.
package layout
