// Package overlay models the transient editing overlays of a mind map
// editor: the node context menu, the color picker and the icon picker.
//
// An [Overlay] is in exactly one [Kind] at a time, so two overlays can
// never be open together. Picker results come back as a [Commit] that the
// caller applies to the graph store.
package overlay

import (
	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// Kind is the overlay currently shown.
type Kind int

const (
	Closed Kind = iota
	MenuOpen
	ColorPicker
	IconPicker
)

func (k Kind) String() string {
	switch k {
	case MenuOpen:
		return "menu"
	case ColorPicker:
		return "color-picker"
	case IconPicker:
		return "icon-picker"
	default:
		return "closed"
	}
}

// Action is an entry of the node context menu.
type Action string

const (
	ActionAddChild    Action = "add-child"
	ActionChangeColor Action = "change-color"
	ActionSelectIcon  Action = "select-icon"
	ActionDelete      Action = "delete"
)

// Icons is the icon picker palette.
var Icons = []string{"💡", "⭐", "🎯", "📝", "🔗", "💼", "🎨", "🚀", "📊", "💻", "🎓", "❤️", "✨", "🔥", "🌟"}

// Colors is the color picker palette.
var Colors = []string{
	mindmap.DefaultColor,
	"#E74C3C",
	"#2ECC71",
	"#F39C12",
	"#9B59B6",
	"#1ABC9C",
	"#34495E",
	"#E91E63",
}

// Commit is a node change produced by a picker.
type Commit struct {
	NodeID string
	Color  *string
	Icon   *string // "" removes the icon
}

// Update converts c into a store update.
func (c Commit) Update() mindmap.NodeUpdate {
	return mindmap.NodeUpdate{Color: c.Color, Icon: c.Icon}
}

// Overlay is the overlay state machine. The zero value is closed.
type Overlay struct {
	kind   Kind
	nodeID string
	x, y   float64
	staged string
}

// Kind returns the open overlay.
func (o *Overlay) Kind() Kind { return o.kind }

// IsOpen reports whether any overlay is shown.
func (o *Overlay) IsOpen() bool { return o.kind != Closed }

// NodeID returns the node the overlay targets, or "" when closed.
func (o *Overlay) NodeID() string { return o.nodeID }

// Anchor returns where the menu was opened.
func (o *Overlay) Anchor() (x, y float64) { return o.x, o.y }

// Staged returns the color staged in the color picker.
func (o *Overlay) Staged() string { return o.staged }

// OpenMenu shows the context menu for nodeID at (x, y), replacing any open
// overlay.
func (o *Overlay) OpenMenu(nodeID string, x, y float64) {
	*o = Overlay{kind: MenuOpen, nodeID: nodeID, x: x, y: y}
}

// Close hides every overlay.
func (o *Overlay) Close() { *o = Overlay{} }

// Actions lists the menu entries. Delete is omitted for the root.
func (o *Overlay) Actions() []Action {
	if o.kind != MenuOpen {
		return nil
	}
	actions := []Action{ActionAddChild, ActionChangeColor, ActionSelectIcon}
	if o.nodeID != mindmap.RootID {
		actions = append(actions, ActionDelete)
	}
	return actions
}

// OpenColorPicker moves from the menu to the color picker, staging the
// node's current color. It does nothing unless the menu is open.
func (o *Overlay) OpenColorPicker(current string) bool {
	if o.kind != MenuOpen {
		return false
	}
	if current == "" {
		current = mindmap.DefaultColor
	}
	o.kind = ColorPicker
	o.staged = current
	return true
}

// Stage replaces the staged color without committing it.
func (o *Overlay) Stage(color string) bool {
	if o.kind != ColorPicker {
		return false
	}
	o.staged = color
	return true
}

// Confirm commits the staged color and closes the picker and the menu.
func (o *Overlay) Confirm() (Commit, bool) {
	if o.kind != ColorPicker {
		return Commit{}, false
	}
	color := o.staged
	c := Commit{NodeID: o.nodeID, Color: &color}
	o.Close()
	return c, true
}

// Cancel discards any staged color and closes everything.
func (o *Overlay) Cancel() { o.Close() }

// OpenIconPicker shows the icon picker for nodeID, replacing any open
// overlay.
func (o *Overlay) OpenIconPicker(nodeID string) {
	*o = Overlay{kind: IconPicker, nodeID: nodeID}
}

// PickIcon commits icon and closes the picker.
func (o *Overlay) PickIcon(icon string) (Commit, bool) {
	if o.kind != IconPicker {
		return Commit{}, false
	}
	c := Commit{NodeID: o.nodeID, Icon: &icon}
	o.Close()
	return c, true
}

// RemoveIcon commits an icon removal and closes the picker.
func (o *Overlay) RemoveIcon() (Commit, bool) {
	return o.PickIcon("")
}
