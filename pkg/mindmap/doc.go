// Package mindmap holds the node/connection graph of a mind map and the
// operations that edit it.
//
// # Model
//
// A map is an ordered list of [Node] values and an ordered list of
// [Connection] values. Two relationships coexist:
//
//   - Ownership: each node may name a parent through ParentID. Ownership
//     seeds automatic placement of new children and defines the subtree
//     removed by [Store.DeleteNode].
//   - Display edges: connections are drawn between any two nodes. A child
//     created with [Store.AddNode] gets exactly one connection from its
//     parent; further connections come from [Store.AddConnection].
//
// The node with id [RootID] always exists and can never be removed.
//
// # Persistence
//
// A [Store] writes the whole [Snapshot] through its [Persister] after every
// successful mutation. Persistence failures are logged and swallowed: the
// in-memory map stays authoritative. On [Open] a missing, unreadable or
// invalid snapshot falls back to a single default root.
//
// # Placement
//
// New children are placed with [layout.CalculateNodePosition] in a column to
// the right of their parent. When a child is added, siblings that were never
// moved by hand are re-spaced so the column stays centered on the parent.
// Nodes moved through [Store.ApplyNodeChanges] or an X/Y update are pinned and
// keep their position.
//
// # Concurrency
//
// All Store methods are safe for concurrent use.
//
// [layout.CalculateNodePosition]: github.com/matzehuels/mindmap/pkg/layout.CalculateNodePosition
package mindmap
