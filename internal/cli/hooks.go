package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mindmap/pkg/observability"
)

// Log-backed hooks report store, storage and export events at debug level.
type (
	storeLogHooks   struct{ logger *log.Logger }
	storageLogHooks struct{ logger *log.Logger }
	exportLogHooks  struct{ logger *log.Logger }
)

var (
	_ observability.StoreHooks   = storeLogHooks{}
	_ observability.StorageHooks = storageLogHooks{}
	_ observability.ExportHooks  = exportLogHooks{}
)

// registerLogHooks routes observability events to l.
func registerLogHooks(l *log.Logger) {
	observability.SetStoreHooks(storeLogHooks{l})
	observability.SetStorageHooks(storageLogHooks{l})
	observability.SetExportHooks(exportLogHooks{l})
}

func (h storeLogHooks) OnMutation(_ context.Context, op string, nodes, conns int) {
	h.logger.Debug("map changed", "op", op, "nodes", nodes, "connections", conns)
}

func (h storeLogHooks) OnLoad(_ context.Context, nodes, conns int, fallback bool) {
	h.logger.Debug("map opened", "nodes", nodes, "connections", conns, "default", fallback)
}

func (h storageLogHooks) OnSave(_ context.Context, backend string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("save failed", "backend", backend, "error", err)
		return
	}
	h.logger.Debug("saved", "backend", backend, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h storageLogHooks) OnLoad(_ context.Context, backend string, found bool, d time.Duration, err error) {
	h.logger.Debug("read", "backend", backend, "found", found, "took", d.Round(time.Microsecond), "error", err)
}

func (h storageLogHooks) OnClear(_ context.Context, backend string, err error) {
	h.logger.Debug("cleared", "backend", backend, "error", err)
}

func (h exportLogHooks) OnExportStart(_ context.Context, format string) {
	h.logger.Debug("export started", "format", format)
}

func (h exportLogHooks) OnExportComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("export finished", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}
