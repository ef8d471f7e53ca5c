package export

import "testing"

func TestViewportZoom(t *testing.T) {
	v := DefaultViewport()
	for i := 0; i < 20; i++ {
		v.ZoomIn()
	}
	if v.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want %v", v.Zoom, MaxZoom)
	}
	for i := 0; i < 30; i++ {
		v.ZoomOut()
	}
	if v.Zoom != MinZoom {
		t.Errorf("zoom = %v, want %v", v.Zoom, MinZoom)
	}
	v.SetZoom(1)
	v.ZoomIn()
	v.ZoomIn()
	v.ZoomIn()
	if v.Zoom != 1.3 {
		t.Errorf("zoom = %v, want 1.3", v.Zoom)
	}
}

func TestViewportFit(t *testing.T) {
	var v Viewport
	v.Fit(Bounds{MinX: 100, MinY: 50, MaxX: 1100, MaxY: 550}, 500, 500)
	if v.Zoom != MinZoom || v.PanX != 100 || v.PanY != 50 {
		t.Errorf("fit = %+v", v)
	}
	v.Fit(Bounds{MaxX: 100, MaxY: 100}, 1000, 1000)
	if v.Zoom != MaxZoom {
		t.Errorf("fit zoom = %v, want %v", v.Zoom, MaxZoom)
	}
	v.Fit(Bounds{}, 100, 100)
	if v != DefaultViewport() {
		t.Errorf("empty fit = %+v", v)
	}
}

func TestCanvasViewport(t *testing.T) {
	c := NewCanvas(SnapshotSource(testSnapshot()))
	c.UpdateViewport(func(v *Viewport) { v.ZoomOut() })
	if c.Viewport().Zoom != 0.9 {
		t.Errorf("zoom = %v", c.Viewport().Zoom)
	}
	c.FitView(600, 290)
	if c.Viewport().Zoom != 1 {
		t.Errorf("fit zoom = %v", c.Viewport().Zoom)
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{Zoom: 2, PanX: 100, PanY: 50}
	x, y := v.Project(150, 100)
	if x != 100 || y != 100 {
		t.Errorf("Project = (%v, %v), want (100, 100)", x, y)
	}

	w := v.Window(400, 200)
	if w != (Bounds{MinX: 100, MinY: 50, MaxX: 300, MaxY: 150}) {
		t.Errorf("Window = %+v", w)
	}

	v.CenterOn(500, 300, 400, 200)
	if x, y := v.Project(500, 300); x != 200 || y != 100 {
		t.Errorf("centered point at (%v, %v), want view middle", x, y)
	}
}
