package layout

import (
	"math"
	"unicode/utf8"
)

// Placement constants.
const (
	// LevelOffset is the horizontal distance between a parent and its children.
	LevelOffset = 300.0

	// VerticalSpacing is the distance between siblings in a column.
	VerticalSpacing = 100.0
)

// Size estimation constants.
const (
	MinWidth     = 120.0
	MinHeight    = 60.0
	CharWidth    = 8.0
	LineHeight   = 20.0
	CharsPerLine = 20
	Padding      = 20.0
)

// Point is a position on the canvas, in canvas pixels.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is the display size of a node box.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// CalculateNodePosition returns the position of child childIndex (0-based) in
// a column of totalChildren children placed level levels to the right of
// parent.
//
// With totalChildren == 1 the child shares the parent's y-coordinate.
// Otherwise the first child sits at parent.Y-(totalChildren-1)*50 and each
// following child VerticalSpacing lower, so the column is centered on the
// parent.
func CalculateNodePosition(parent Point, childIndex, totalChildren, level int) Point {
	x := parent.X + float64(level)*LevelOffset
	if totalChildren == 1 {
		return Point{X: x, Y: parent.Y}
	}
	startY := parent.Y - float64(totalChildren-1)*VerticalSpacing/2
	return Point{X: x, Y: startY + float64(childIndex)*VerticalSpacing}
}

// DefaultNodeSize estimates the box size needed to display text.
// Length is measured in characters (runes), not bytes.
func DefaultNodeSize(text string) Size {
	n := utf8.RuneCountInString(text)
	lines := math.Ceil(float64(n) / CharsPerLine)
	return Size{
		Width:  math.Max(MinWidth, float64(n)*CharWidth+Padding),
		Height: math.Max(MinHeight, lines*LineHeight+Padding),
	}
}
