package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mindmap/pkg/fonts"
)

const (
	edgeColor   = "#666666"
	edgeWidth   = 3.0
	cornerR     = 8.0
	labelColor  = "#ffffff"
	chromeColor = "#f8f9fa"
	chromeLine  = "#dddddd"

	toolbarHeight = 56.0
	controlsW     = 40.0
	controlsH     = 120.0
	minimapW      = 200.0
	minimapH      = 150.0
	chromeMargin  = 10.0
)

// raster draws a scene onto a gg context. Canvas coordinates are mapped to
// pixels by subtracting the scene origin and multiplying by scale; fonts are
// built at the scaled size so text stays crisp.
type raster struct {
	dc     *gg.Context
	scene  Scene
	scale  float64
	origin Bounds
}

func (r *raster) px(x, y float64) (float64, float64) {
	return (x - r.origin.MinX) * r.scale, (y - r.origin.MinY) * r.scale
}

// Raster limits for PNG and PDF export.
const (
	MaxRasterSide   = 32768
	MaxRasterPixels = 64 << 20
)

// ErrRasterTooLarge is returned when a scene does not fit the raster limits.
var ErrRasterTooLarge = errors.New("raster too large")

// RasterSize returns the pixel dimensions of a scene rendered at scale.
func RasterSize(sc Scene, scale float64) (int, int) {
	return int(math.Ceil(sc.Bounds.Width() * scale)), int(math.Ceil(sc.Bounds.Height() * scale))
}

// checkRasterSize reports whether sc can be rendered at scale within
// MaxRasterSide and MaxRasterPixels. Dimensions are compared as floats,
// before any int conversion.
func checkRasterSize(sc Scene, scale float64) error {
	w, h := math.Ceil(sc.Bounds.Width()*scale), math.Ceil(sc.Bounds.Height()*scale)
	if math.IsNaN(w) || math.IsNaN(h) || w < 0 || h < 0 {
		return fmt.Errorf("%w: invalid bounds", ErrRasterTooLarge)
	}
	if w > MaxRasterSide || h > MaxRasterSide || w*h > MaxRasterPixels {
		return fmt.Errorf("%w: %.0fx%.0f pixels (max %d per side, %d total); lower the scale or move nodes closer",
			ErrRasterTooLarge, w, h, MaxRasterSide, MaxRasterPixels)
	}
	return nil
}

func renderPNG(sc Scene, layers []Layer, o options) ([]byte, error) {
	if err := checkRasterSize(sc, o.scale); err != nil {
		return nil, err
	}
	w, h := RasterSize(sc, o.scale)
	dc := gg.NewContext(w, h)
	if o.background != "" {
		dc.SetHexColor(o.background)
		dc.Clear()
	}

	face, err := fonts.Face(fonts.Regular, o.fontSize*o.scale)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	dc.SetFontFace(face)

	r := &raster{dc: dc, scene: sc, scale: o.scale, origin: sc.Bounds}
	r.drawEdges()
	r.drawBoxes(o.fontSize * o.scale)
	for _, l := range layers {
		r.drawChrome(l, w, h)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Edges go first so boxes cover their ends.
func (r *raster) drawEdges() {
	r.dc.SetHexColor(edgeColor)
	r.dc.SetLineWidth(edgeWidth * r.scale)
	r.dc.SetLineCapRound()
	for _, e := range r.scene.Edges {
		x1, y1 := r.px(e.From.Center())
		x2, y2 := r.px(e.To.Center())
		r.dc.DrawLine(x1, y1, x2, y2)
		r.dc.Stroke()
	}
}

func (r *raster) drawBoxes(fontPx float64) {
	for _, b := range r.scene.Boxes {
		x, y := r.px(b.X, b.Y)
		w, h := b.Width*r.scale, b.Height*r.scale

		r.dc.SetColor(parseColor(b.Node.Color))
		r.dc.DrawRoundedRectangle(x, y, w, h, cornerR*r.scale)
		r.dc.Fill()

		r.dc.SetHexColor(labelColor)
		pad := 10 * r.scale
		r.dc.DrawStringWrapped(b.Node.Text, x+w/2, y+h/2, 0.5, 0.5, math.Max(w-2*pad, fontPx), 1.3, gg.AlignCenter)
	}
}

func (r *raster) drawChrome(l Layer, w, h int) {
	fw, fh := float64(w), float64(h)
	s := r.scale
	switch l {
	case LayerToolbar:
		r.panel(0, 0, fw, math.Min(toolbarHeight*s, fh))
	case LayerControls:
		x, y := chromeMargin*s, fh-(controlsH+chromeMargin)*s
		r.panel(x, y, controlsW*s, controlsH*s)
	case LayerMinimap:
		mw, mh := minimapW*s, minimapH*s
		x, y := fw-mw-chromeMargin*s, fh-mh-chromeMargin*s
		r.panel(x, y, mw, mh)
		r.drawMinimap(x, y, mw, mh)
	}
}

func (r *raster) panel(x, y, w, h float64) {
	r.dc.SetHexColor(chromeColor)
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
	r.dc.SetHexColor(chromeLine)
	r.dc.SetLineWidth(r.scale)
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Stroke()
}

func (r *raster) drawMinimap(x, y, w, h float64) {
	b := r.scene.Bounds
	k := math.Min(w/b.Width(), h/b.Height())
	for _, box := range r.scene.Boxes {
		r.dc.SetColor(parseColor(box.Node.Color))
		r.dc.DrawRectangle(x+(box.X-b.MinX)*k, y+(box.Y-b.MinY)*k, box.Width*k, box.Height*k)
		r.dc.Fill()
	}
}

// parseColor accepts #rgb and #rrggbb, falling back to grey.
func parseColor(hex string) color.Color {
	var r, g, b uint8
	switch len(hex) {
	case 7:
		if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 255}
		}
	case 4:
		if _, err := fmt.Sscanf(hex, "#%1x%1x%1x", &r, &g, &b); err == nil {
			return color.RGBA{r * 17, g * 17, b * 17, 255}
		}
	}
	return color.RGBA{0x99, 0x99, 0x99, 255}
}
