package mindmap

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/layout"
)

// RootID is the id of the node every map starts from.
const RootID = "root"

// DefaultColor is the fill color of the root and of orphan nodes.
const DefaultColor = "#4A90E2"

// Root defaults.
var (
	RootPosition = layout.Point{X: 400, Y: 300}
	RootSize     = layout.Size{Width: 150, Height: 80}
)

// placeholderText sizes nodes created by AddNode regardless of language.
const placeholderText = "New Node"

// Node is a labeled box on the canvas.
type Node struct {
	ID       string  `json:"id" yaml:"id"`
	Text     string  `json:"text" yaml:"text"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Color    string  `json:"color" yaml:"color"`
	Icon     string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	ParentID string  `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`

	// Pinned is set once a node is positioned by hand.
	Pinned bool `json:"pinned,omitempty" yaml:"pinned,omitempty"`
}

// Position returns the node's top-left corner.
func (n Node) Position() layout.Point { return layout.Point{X: n.X, Y: n.Y} }

// Size returns the node's box size, estimating it from the text when the
// stored dimensions are missing.
func (n Node) Size() layout.Size {
	if n.Width > 0 && n.Height > 0 {
		return layout.Size{Width: n.Width, Height: n.Height}
	}
	est := layout.DefaultNodeSize(n.Text)
	if n.Width > 0 {
		est.Width = n.Width
	}
	if n.Height > 0 {
		est.Height = n.Height
	}
	return est
}

// IsRoot reports whether n is the root node.
func (n Node) IsRoot() bool { return n.ID == RootID }

// Connection is a directed display edge between two nodes.
type Connection struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Snapshot is the persisted form of a map.
type Snapshot struct {
	Nodes       []Node       `json:"nodes" yaml:"nodes"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// Snapshot validation errors.
var (
	ErrEmptySnapshot = errors.New("snapshot has no nodes")
	ErrRootCount     = errors.New("snapshot must contain exactly one root node")
)

// Validate checks that s can be loaded as a map.
func (s Snapshot) Validate() error {
	if len(s.Nodes) == 0 {
		return ErrEmptySnapshot
	}
	roots := 0
	for _, n := range s.Nodes {
		if n.ID == RootID {
			roots++
		}
	}
	if roots != 1 {
		return fmt.Errorf("%w: found %d", ErrRootCount, roots)
	}
	return nil
}

// normalize repairs data that would break store invariants: the root never
// has an owner, and non-finite coordinates or sizes are reset.
func (s Snapshot) normalize() Snapshot {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.ID == RootID {
			n.ParentID = ""
		}
		if !finite(n.X) || !finite(n.Y) {
			n.X, n.Y = 0, 0
		}
		if !finite(n.Width) || !finite(n.Height) {
			n.Width, n.Height = 0, 0
		}
	}
	if s.Connections == nil {
		s.Connections = []Connection{}
	}
	return s
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Nodes:       slices.Clone(s.Nodes),
		Connections: slices.Clone(s.Connections),
	}
}

// DefaultSnapshot returns a map holding only the root node, labeled in the
// language of t.
func DefaultSnapshot(t i18n.Translations) Snapshot {
	return Snapshot{
		Nodes: []Node{{
			ID:     RootID,
			Text:   t.CentralIdea,
			X:      RootPosition.X,
			Y:      RootPosition.Y,
			Color:  DefaultColor,
			Width:  RootSize.Width,
			Height: RootSize.Height,
		}},
		Connections: []Connection{},
	}
}

// IDGenerator returns a new node id for a node created at now.
type IDGenerator func(now time.Time) string

// NewNodeID returns ids of the form node-<unix millis>-<9 random chars>.
func NewNodeID(now time.Time) string {
	r := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("node-%d-%s", now.UnixMilli(), r[:9])
}

// uniqueID returns base, or base with a numeric suffix if base is taken.
func uniqueID(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		id := fmt.Sprintf("%s-%d", base, i)
		if !taken(id) {
			return id
		}
	}
}
