package export

import "math"

// Zoom limits.
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.1
)

// Viewport is the visible window onto the canvas: a zoom factor and a pan
// offset in canvas units.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64
}

// DefaultViewport is unzoomed and unpanned.
func DefaultViewport() Viewport { return Viewport{Zoom: 1} }

// ZoomIn increases the zoom by one step, up to MaxZoom.
func (v *Viewport) ZoomIn() { v.SetZoom(v.Zoom + ZoomStep) }

// ZoomOut decreases the zoom by one step, down to MinZoom.
func (v *Viewport) ZoomOut() { v.SetZoom(v.Zoom - ZoomStep) }

// SetZoom sets the zoom clamped to [MinZoom, MaxZoom].
func (v *Viewport) SetZoom(z float64) {
	// Round to one decimal so repeated steps don't drift.
	z = math.Round(z*10) / 10
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Pan moves the view by (dx, dy).
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// Fit zooms and pans so bounds fill a window of the given size.
func (v *Viewport) Fit(b Bounds, width, height float64) {
	if b.Width() <= 0 || b.Height() <= 0 || width <= 0 || height <= 0 {
		*v = DefaultViewport()
		return
	}
	z := math.Min(width/b.Width(), height/b.Height())
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, math.Floor(z*10)/10))
	v.PanX = b.MinX
	v.PanY = b.MinY
}

// Project maps a canvas point to view coordinates.
func (v *Viewport) Project(x, y float64) (float64, float64) {
	return (x - v.PanX) * v.Zoom, (y - v.PanY) * v.Zoom
}

// Window returns the canvas region shown in a view of the given size.
func (v *Viewport) Window(width, height float64) Bounds {
	return Bounds{
		MinX: v.PanX,
		MinY: v.PanY,
		MaxX: v.PanX + width/v.Zoom,
		MaxY: v.PanY + height/v.Zoom,
	}
}

// CenterOn pans so (x, y) sits in the middle of a view of the given size.
func (v *Viewport) CenterOn(x, y, width, height float64) {
	v.PanX = x - width/v.Zoom/2
	v.PanY = y - height/v.Zoom/2
}
