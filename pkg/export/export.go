package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/observability"
)

// Format is an export file format.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
	SVG Format = "svg"
	DOT Format = "dot"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, PDF, SVG, DOT}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if !f.valid() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q (use png, pdf, svg or dot)", s)
	}
	return f, nil
}

func (f Format) valid() bool {
	switch f {
	case PNG, PDF, SVG, DOT:
		return true
	}
	return false
}

// DefaultFilename returns the file name used when none is given.
func DefaultFilename(f Format) string { return "mindmap." + string(f) }

// Engine selects the renderer for PNG and SVG.
type Engine string

const (
	EngineNative   Engine = "native"
	EngineGraphviz Engine = "graphviz"
)

// ParseEngine parses an engine name. The empty string means EngineNative.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(s)) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGraphviz:
		return EngineGraphviz, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown export engine %q (use native or graphviz)", s)
}

// DefaultScale is the raster resolution multiplier.
const DefaultScale = 2.0

// DefaultBackground is the raster background color.
const DefaultBackground = "#ffffff"

// Option configures rendering.
type Option func(*options)

type options struct {
	scale      float64
	background string
	engine     Engine
	fontSize   float64
}

func newOptions(opts []Option) options {
	o := options{
		scale:      DefaultScale,
		background: DefaultBackground,
		engine:     EngineNative,
		fontSize:   14,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale sets the raster scale factor (default 2.0). Values <= 0 and
// infinities are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 && !math.IsInf(s, 1) {
			o.scale = s
		}
	}
}

// WithBackground sets the raster background color as a hex string. An empty
// string leaves the background transparent.
func WithBackground(hex string) Option {
	return func(o *options) { o.background = hex }
}

// WithEngine selects the PNG/SVG renderer.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != "" {
			o.engine = e
		}
	}
}

// WithFontSize sets the node label size in canvas units.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// Export captures c without chrome and writes it to w. The chrome
// visibility in effect before the call is restored afterwards.
func Export(ctx context.Context, c *Canvas, f Format, w io.Writer, opts ...Option) (err error) {
	if !f.valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", f)
	}

	c.capture.Lock()
	defer c.capture.Unlock()
	restore := c.hideChrome()
	defer restore()

	hooks := observability.Export()
	hooks.OnExportStart(ctx, string(f))
	start := time.Now()
	cw := &countingWriter{w: w}
	defer func() {
		hooks.OnExportComplete(ctx, string(f), cw.n, time.Since(start), err)
	}()

	if err := render(ctx, c, f, cw, newOptions(opts)); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "export %s", f)
	}
	return nil
}

// ExportFile captures c into the file at path. A partially written file is
// removed on failure.
func ExportFile(ctx context.Context, c *Canvas, f Format, path string, opts ...Option) error {
	if !f.valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", f)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "create %s", path)
	}
	if err := Export(ctx, c, f, file, opts...); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "close %s", path)
	}
	return nil
}

func render(ctx context.Context, c *Canvas, f Format, w io.Writer, o options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	scene := c.Scene()
	layers := c.visibleLayers()

	switch f {
	case DOT:
		_, err := io.WriteString(w, ToDOT(scene))
		return err
	case SVG:
		if o.engine == EngineGraphviz {
			data, err := RenderGraphviz(ctx, scene, graphviz.SVG)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}
		return writeSVG(w, scene, layers, o)
	case PNG, PDF:
		var png []byte
		var err error
		if o.engine == EngineGraphviz {
			png, err = RenderGraphviz(ctx, scene, graphviz.PNG)
		} else {
			png, err = renderPNG(scene, layers, o)
		}
		if err != nil {
			return err
		}
		if f == PNG {
			_, err = w.Write(png)
			return err
		}
		return writePDF(w, png)
	}
	return fmt.Errorf("unsupported format %q", f)
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Bytes renders c to memory with Export.
func Bytes(ctx context.Context, c *Canvas, f Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(ctx, c, f, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
