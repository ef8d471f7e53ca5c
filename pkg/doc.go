// Package pkg provides the libraries behind the mindmap editor.
//
// # Overview
//
// A mind map is a set of labeled boxes (nodes) joined by connections, grown
// from a single root. The pkg directory is organized into three areas:
//
//  1. Domain - the graph store, placement rules, overlays and labels
//  2. Output - image export and data files
//  3. Infrastructure - storage backends, configuration, errors and hooks
//
// # Architecture
//
// The typical data flow:
//
//	CLI command / terminal editor
//	         ↓
//	    [mindmap] Store (mutate nodes and connections)
//	         ↓
//	    [storage] SnapshotStore (save after every change)
//	         ↓
//	    file / sqlite / redis / mongo
//
// and, for output:
//
//	[mindmap] Store → [export] Canvas → PNG / PDF / SVG / DOT
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/mindmap/pkg/export"
//	    "github.com/matzehuels/mindmap/pkg/mindmap"
//	    "github.com/matzehuels/mindmap/pkg/storage"
//	)
//
//	backend, _ := storage.Open(ctx, storage.Options{Backend: storage.BackendFile})
//	store := mindmap.Open(ctx, storage.NewSnapshotStore(backend))
//
//	child, _ := store.AddNode(ctx, mindmap.RootID)
//	text := "Plans"
//	store.UpdateNode(ctx, child.ID, mindmap.NodeUpdate{Text: &text})
//
//	_ = export.ExportFile(ctx, export.NewCanvas(store), export.PNG, "map.png")
//
// # Main Packages
//
// ## Domain
//
// [mindmap] - The graph store: nodes, connections, cascading delete, canvas
// change batches and persistence side effects.
//
// [layout] - Child placement around a parent and text-based node sizing.
//
// [overlay] - Context menu, color picker and icon picker state machine.
//
// [i18n] - English and Portuguese label tables.
//
// ## Output
//
// [export] - Canvas with viewport and chrome layers; PNG (gg), PDF (fpdf),
// SVG and Graphviz DOT export.
//
// [fonts] - Embedded Go fonts for raster text.
//
// [mapio] - JSON and YAML data file import and export.
//
// ## Infrastructure
//
// [storage] - Key/value backends (file, sqlite, redis, mongo, memory) and
// the snapshot codec with optional zstd compression.
//
// [config] - TOML configuration file.
//
// [errors] - Structured error codes.
//
// [observability] - Hooks for store, storage and export events.
//
// [buildinfo] - Version information.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include redis and mongo tests
//
// [mindmap]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/mindmap
// [layout]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/layout
// [overlay]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/overlay
// [i18n]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/i18n
// [export]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/export
// [fonts]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/fonts
// [mapio]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/mapio
// [storage]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/storage
// [config]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mindmap/pkg/buildinfo
package pkg
