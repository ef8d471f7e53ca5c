// Package cli implements the mindmap command-line interface.
//
// Commands operate on the map saved by the configured storage backend: each
// invocation loads it, applies one change and lets the store persist the
// result. The edit command opens an interactive terminal editor on the same
// map.
//
// # Commands
//
// The main commands are:
//   - show: Print nodes and connections
//   - add, orphan, update, delete: Edit nodes
//   - connect, disconnect, move, drop: Edit connections and positions
//   - export: Write PNG, PDF, SVG or DOT images
//   - data: Import and export JSON/YAML data files
//   - storage: Inspect or clear the saved map
//   - edit: Interactive editor
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs store, storage and export events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Exported png (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
