package mindmap

import "github.com/matzehuels/mindmap/pkg/layout"

// ChangeType identifies the kind of a NodeChange.
type ChangeType string

// Change types emitted by interactive editors.
const (
	ChangePosition ChangeType = "position"
	ChangeRemove   ChangeType = "remove"
)

// NodeChange is one entry of a batch produced by an interactive canvas,
// such as a drag or a delete key press.
type NodeChange struct {
	Type ChangeType
	ID   string

	// Position is the new top-left corner for ChangePosition. A position
	// change without a position, or with a non-finite one, is ignored.
	Position *layout.Point
}

// MoveTo returns a position change for id.
func MoveTo(id string, x, y float64) NodeChange {
	return NodeChange{Type: ChangePosition, ID: id, Position: &layout.Point{X: x, Y: y}}
}

// Remove returns a removal change for id.
func Remove(id string) NodeChange {
	return NodeChange{Type: ChangeRemove, ID: id}
}

// apply applies c to nodes in place and returns the result and whether
// anything changed. Removal drops only the named node: its descendants and
// any connections that reference it are left alone.
func (c NodeChange) apply(nodes []Node) ([]Node, bool) {
	switch c.Type {
	case ChangePosition:
		if c.Position == nil || !finite(c.Position.X) || !finite(c.Position.Y) {
			return nodes, false
		}
		for i := range nodes {
			if nodes[i].ID == c.ID {
				nodes[i].X = c.Position.X
				nodes[i].Y = c.Position.Y
				nodes[i].Pinned = true
				return nodes, true
			}
		}
	case ChangeRemove:
		if c.ID == RootID {
			return nodes, false
		}
		for i := range nodes {
			if nodes[i].ID == c.ID {
				return append(nodes[:i], nodes[i+1:]...), true
			}
		}
	}
	return nodes, false
}
