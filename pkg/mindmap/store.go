package mindmap

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/layout"
	"github.com/matzehuels/mindmap/pkg/observability"
)

// Persister stores snapshots between sessions.
type Persister interface {
	// Load returns the stored snapshot. found is false when nothing has
	// been stored yet.
	Load(ctx context.Context) (snap Snapshot, found bool, err error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

// NodeUpdate lists the fields to change on a node. Nil fields are left as
// they are.
type NodeUpdate struct {
	Text   *string
	Color  *string
	Icon   *string // "" removes the icon
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTranslations sets the labels used for default node text.
func WithTranslations(t i18n.Translations) Option {
	return func(s *Store) { s.tr = t }
}

// WithIDGenerator replaces the node id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// WithClock replaces the time source used for ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store is the in-memory mind map plus its persistence side effects.
type Store struct {
	mu          sync.RWMutex
	nodes       []Node
	connections []Connection

	persister Persister
	logger    *log.Logger
	tr        i18n.Translations
	newID     IDGenerator
	now       func() time.Time
}

// Open creates a Store and loads the persisted snapshot, falling back to a
// single root when nothing valid is stored.
func Open(ctx context.Context, p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    log.Default(),
		tr:        i18n.For(i18n.Default),
		newID:     NewNodeID,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, fallback := s.load(ctx)
	s.nodes = snap.Nodes
	s.connections = snap.Connections
	observability.Store().OnLoad(ctx, len(s.nodes), len(s.connections), fallback)
	return s
}

func (s *Store) load(ctx context.Context) (Snapshot, bool) {
	if s.persister == nil {
		return DefaultSnapshot(s.tr), true
	}
	snap, found, err := s.persister.Load(ctx)
	switch {
	case err != nil:
		s.logger.Warn("failed to load mind map, starting fresh", "error", err)
	case !found:
		s.logger.Debug("no saved mind map, starting fresh")
	default:
		if err := snap.Validate(); err != nil {
			s.logger.Warn("ignoring saved mind map", "error", err)
			break
		}
		return snap.Clone().normalize(), false
	}
	return DefaultSnapshot(s.tr), true
}

// SetTranslations changes the labels used for nodes created from now on.
// Existing node text is left unchanged.
func (s *Store) SetTranslations(t i18n.Translations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tr = t
}

// =============================================================================
// Mutations
// =============================================================================

// AddNode creates a child of parentID, or of the first node when parentID is
// empty. It returns false when the parent cannot be resolved.
func (s *Store) AddNode(ctx context.Context, parentID string) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := 0
	if parentID != "" {
		pi = s.indexOf(parentID)
	}
	if pi < 0 || pi >= len(s.nodes) {
		return Node{}, false
	}
	parent := s.nodes[pi]

	var siblings []int
	for i, n := range s.nodes {
		if n.ParentID == parent.ID {
			siblings = append(siblings, i)
		}
	}
	total := len(siblings) + 1
	for i, si := range siblings {
		if s.nodes[si].Pinned {
			continue
		}
		p := layout.CalculateNodePosition(parent.Position(), i, total, 1)
		s.nodes[si].X, s.nodes[si].Y = p.X, p.Y
	}

	pos := layout.CalculateNodePosition(parent.Position(), len(siblings), total, 1)
	size := layout.DefaultNodeSize(placeholderText)
	n := Node{
		ID:       uniqueID(s.newID(s.now()), s.hasNode),
		Text:     s.tr.NewNode,
		X:        pos.X,
		Y:        pos.Y,
		Color:    parent.Color,
		ParentID: parent.ID,
		Width:    size.Width,
		Height:   size.Height,
	}
	s.nodes = append(s.nodes, n)

	if !s.hasPair(parent.ID, n.ID) {
		id := uniqueID(fmt.Sprintf("conn-%s-%s", parent.ID, n.ID), s.hasConnection)
		s.connections = append(s.connections, Connection{ID: id, Source: parent.ID, Target: n.ID})
	}

	s.persist(ctx, "add_node")
	return n, true
}

// AddOrphanNode creates an unconnected node to the right of the root. It
// returns false when there is no root.
func (s *Store) AddOrphanNode(ctx context.Context) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri := s.indexOf(RootID)
	if ri < 0 {
		return Node{}, false
	}
	root := s.nodes[ri]
	size := layout.DefaultNodeSize(s.tr.NewNode)
	n := Node{
		ID:     uniqueID(s.newID(s.now()), s.hasNode),
		Text:   s.tr.NewNode,
		X:      root.X + 400,
		Y:      root.Y,
		Color:  DefaultColor,
		Width:  size.Width,
		Height: size.Height,
	}
	s.nodes = append(s.nodes, n)

	s.persist(ctx, "add_orphan_node")
	return n, true
}

// UpdateNode merges u into the node with the given id. A text change
// recomputes the node size, overriding any size in u. Changing X or Y pins
// the node. Non-finite coordinates and sizes are ignored. It returns false
// for an unknown id.
func (s *Store) UpdateNode(ctx context.Context, id string, u NodeUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	n := &s.nodes[i]
	if u.Color != nil {
		n.Color = *u.Color
	}
	if u.Icon != nil {
		n.Icon = *u.Icon
	}
	if u.X != nil && finite(*u.X) {
		n.X = *u.X
		n.Pinned = true
	}
	if u.Y != nil && finite(*u.Y) {
		n.Y = *u.Y
		n.Pinned = true
	}
	if u.Width != nil && finite(*u.Width) {
		n.Width = *u.Width
	}
	if u.Height != nil && finite(*u.Height) {
		n.Height = *u.Height
	}
	if u.Text != nil {
		n.Text = *u.Text
		size := layout.DefaultNodeSize(n.Text)
		n.Width, n.Height = size.Width, size.Height
	}

	s.persist(ctx, "update_node")
	return true
}

// DeleteNode removes the node, every node it transitively owns, and every
// connection touching a removed node. The root cannot be deleted. It
// returns the removed ids, starting with id.
func (s *Store) DeleteNode(ctx context.Context, id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == RootID || s.indexOf(id) < 0 {
		return nil
	}
	removed := append([]string{id}, s.descendants(id)...)
	gone := make(map[string]bool, len(removed))
	for _, r := range removed {
		gone[r] = true
	}

	s.nodes = slices.DeleteFunc(s.nodes, func(n Node) bool { return gone[n.ID] })
	s.connections = slices.DeleteFunc(s.connections, func(c Connection) bool {
		return gone[c.Source] || gone[c.Target]
	})

	s.persist(ctx, "delete_node")
	return removed
}

// AddConnection connects two existing nodes. It returns false when either
// node is missing or the pair is already connected.
func (s *Store) AddConnection(ctx context.Context, source, target string) (Connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(source) < 0 || s.indexOf(target) < 0 || s.hasPair(source, target) {
		return Connection{}, false
	}
	base := fmt.Sprintf("conn-%s-%s-%d", source, target, s.now().UnixMilli())
	c := Connection{ID: uniqueID(base, s.hasConnection), Source: source, Target: target}
	s.connections = append(s.connections, c)

	s.persist(ctx, "add_connection")
	return c, true
}

// RemoveConnection deletes the connection with the given id.
func (s *Store) RemoveConnection(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.connections, func(c Connection) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	s.connections = slices.Delete(s.connections, i, i+1)

	s.persist(ctx, "remove_connection")
	return true
}

// ResetMap replaces the map with a fresh root and clears persisted state.
// The fresh map is not saved until the next mutation.
func (s *Store) ResetMap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := DefaultSnapshot(s.tr)
	s.nodes = snap.Nodes
	s.connections = snap.Connections

	if s.persister != nil {
		if err := s.persister.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear saved mind map", "error", err)
		}
	}
	observability.Store().OnMutation(ctx, "reset", len(s.nodes), len(s.connections))
}

// ApplyNodeChanges applies a batch of canvas changes and reports whether
// anything changed. Removal drops only the named node; use DeleteNode to
// remove a subtree together with its connections. The root is never removed.
func (s *Store) ApplyNodeChanges(ctx context.Context, changes []NodeChange) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, c := range changes {
		var ok bool
		s.nodes, ok = c.apply(s.nodes)
		changed = changed || ok
	}
	if changed {
		s.persist(ctx, "apply_changes")
	}
	return changed
}

// Replace swaps the whole map for snap after validating it.
func (s *Store) Replace(ctx context.Context, snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	snap = snap.Clone().normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = snap.Nodes
	s.connections = snap.Connections
	s.persist(ctx, "replace")
	return nil
}

// =============================================================================
// Readers
// =============================================================================

// Nodes returns a copy of the nodes in insertion order.
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.nodes)
}

// Connections returns a copy of the connections in insertion order.
func (s *Store) Connections() []Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.connections)
}

// Node returns the node with the given id.
func (s *Store) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.nodes[i], true
	}
	return Node{}, false
}

// Snapshot returns a copy of the current map.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Children returns the nodes owned directly by id.
func (s *Store) Children(id string) []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Node
	for _, n := range s.nodes {
		if n.ParentID == id {
			out = append(out, n)
		}
	}
	return out
}

// Descendants returns the ids of every node transitively owned by id, in
// breadth-first order. id itself is not included.
func (s *Store) Descendants(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.descendants(id)
}

// Len returns the number of nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// =============================================================================
// Internal
// =============================================================================

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.nodes, func(n Node) bool { return n.ID == id })
}

func (s *Store) hasNode(id string) bool { return s.indexOf(id) >= 0 }

func (s *Store) hasConnection(id string) bool {
	return slices.ContainsFunc(s.connections, func(c Connection) bool { return c.ID == id })
}

func (s *Store) hasPair(source, target string) bool {
	return slices.ContainsFunc(s.connections, func(c Connection) bool {
		return c.Source == source && c.Target == target
	})
}

// descendants walks ParentID links breadth-first. Imported data may contain
// ownership cycles, so visited ids are tracked. The root is never a
// descendant.
func (s *Store) descendants(id string) []string {
	children := make(map[string][]string)
	for _, n := range s.nodes {
		if n.ParentID != "" && n.ID != RootID {
			children[n.ParentID] = append(children[n.ParentID], n.ID)
		}
	}
	seen := map[string]bool{id: true}
	var out []string
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range children[cur] {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	return out
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Nodes:       slices.Clone(s.nodes),
		Connections: slices.Clone(s.connections),
	}
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context, op string) {
	observability.Store().OnMutation(ctx, op, len(s.nodes), len(s.connections))
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.snapshot()); err != nil {
		s.logger.Warn("failed to save mind map", "op", op, "error", err)
	}
}
