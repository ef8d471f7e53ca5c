// Package layout places new mind-map nodes and estimates their display size.
//
// Both functions are pure: identical inputs always produce identical output,
// which keeps child placement reproducible across sessions and in tests.
//
// # Child Placement
//
// Children of a node are arranged in a vertical column, offset to the right
// of the parent by [LevelOffset] pixels per level:
//
//	p := layout.CalculateNodePosition(parent, 1, 3, 1)
//	// p.X == parent.X+300, p.Y == parent.Y
//
// A single child sits level with its parent. Larger groups are spaced
// [VerticalSpacing] pixels apart and centered on the parent's y-coordinate.
//
// # Size Estimation
//
// [DefaultNodeSize] approximates the box a label needs from its character
// count. It is not a text-metrics engine: renderers re-wrap the label, so the
// only contract is a fixed minimum and monotonic growth with text length.
package layout
