package export

import (
	"math"

	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// scenePadding is the margin around the map content, in canvas units.
const scenePadding = 40.0

// Bounds is an axis-aligned rectangle in canvas units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Box is a node placed in the scene.
type Box struct {
	Node          mindmap.Node
	X, Y          float64
	Width, Height float64
}

// Center returns the middle of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Edge is a connection between two boxes in the scene.
type Edge struct {
	Connection mindmap.Connection
	From, To   Box
}

// Scene is a snapshot resolved into drawable geometry.
type Scene struct {
	Boxes  []Box
	Edges  []Edge
	Bounds Bounds
}

// NewScene resolves s. Connections with a missing endpoint are dropped.
// Bounds cover every box plus a margin; an empty map yields a small blank
// area.
func NewScene(s mindmap.Snapshot) Scene {
	sc := Scene{Boxes: make([]Box, 0, len(s.Nodes))}
	byID := make(map[string]Box, len(s.Nodes))
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}

	for _, n := range s.Nodes {
		size := n.Size()
		box := Box{Node: n, X: n.X, Y: n.Y, Width: size.Width, Height: size.Height}
		sc.Boxes = append(sc.Boxes, box)
		byID[n.ID] = box
		b.MinX = math.Min(b.MinX, box.X)
		b.MinY = math.Min(b.MinY, box.Y)
		b.MaxX = math.Max(b.MaxX, box.X+box.Width)
		b.MaxY = math.Max(b.MaxY, box.Y+box.Height)
	}
	for _, c := range s.Connections {
		from, ok1 := byID[c.Source]
		to, ok2 := byID[c.Target]
		if !ok1 || !ok2 {
			continue
		}
		sc.Edges = append(sc.Edges, Edge{Connection: c, From: from, To: to})
	}

	if len(sc.Boxes) == 0 {
		b = Bounds{MaxX: 200, MaxY: 100}
	}
	sc.Bounds = Bounds{
		MinX: b.MinX - scenePadding,
		MinY: b.MinY - scenePadding,
		MaxX: b.MaxX + scenePadding,
		MaxY: b.MaxY + scenePadding,
	}
	return sc
}
