// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about graph store mutations, snapshot persistence and export.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, format)
//	// ... render ...
//	observability.Export().OnExportComplete(ctx, format, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the graph store.
type StoreHooks interface {
	// OnMutation records a state-changing operation and the resulting sizes.
	OnMutation(ctx context.Context, op string, nodeCount, connectionCount int)

	// OnLoad records the startup load; fallback is true when the default
	// single-root map was used instead of persisted data.
	OnLoad(ctx context.Context, nodeCount, connectionCount int, fallback bool)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from snapshot persistence.
type StorageHooks interface {
	// OnSave records a snapshot write.
	OnSave(ctx context.Context, backend string, size int, duration time.Duration, err error)

	// OnLoad records a snapshot read; found is false when nothing was stored.
	OnLoad(ctx context.Context, backend string, found bool, duration time.Duration, err error)

	// OnClear records removal of the persisted snapshot.
	OnClear(ctx context.Context, backend string, err error)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from canvas export.
type ExportHooks interface {
	OnExportStart(ctx context.Context, format string)
	OnExportComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnMutation(context.Context, string, int, int) {}
func (NoopStoreHooks) OnLoad(context.Context, int, int, bool)       {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnSave(context.Context, string, int, time.Duration, error)  {}
func (NoopStorageHooks) OnLoad(context.Context, string, bool, time.Duration, error) {}
func (NoopStorageHooks) OnClear(context.Context, string, error)                     {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string)                              {}
func (NoopExportHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	storeHooks   StoreHooks   = NoopStoreHooks{}
	storageHooks StorageHooks = NoopStorageHooks{}
	exportHooks  ExportHooks  = NoopExportHooks{}
	hooksMu      sync.RWMutex
)

// SetStoreHooks registers custom graph store hooks.
// This should be called once at application startup before the store is opened.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetStorageHooks registers custom persistence hooks.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Store returns the registered graph store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Storage returns the registered persistence hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	storageHooks = NoopStorageHooks{}
	exportHooks = NoopExportHooks{}
}
