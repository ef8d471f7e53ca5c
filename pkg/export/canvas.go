package export

import (
	"maps"
	"slices"
	"sync"

	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// Source supplies the map to draw. *mindmap.Store implements it.
type Source interface {
	Snapshot() mindmap.Snapshot
}

// SnapshotSource adapts a fixed snapshot to Source.
type SnapshotSource mindmap.Snapshot

// Snapshot returns the snapshot.
func (s SnapshotSource) Snapshot() mindmap.Snapshot { return mindmap.Snapshot(s) }

// Layer is a piece of interface chrome drawn over the map.
type Layer string

const (
	LayerToolbar  Layer = "toolbar"
	LayerControls Layer = "controls"
	LayerMinimap  Layer = "minimap"
)

// Layers lists all chrome layers in drawing order.
var Layers = []Layer{LayerToolbar, LayerControls, LayerMinimap}

// Canvas draws a map and its chrome.
type Canvas struct {
	capture sync.Mutex // serializes Export

	mu       sync.RWMutex
	source   Source
	visible  map[Layer]bool
	viewport Viewport
}

// NewCanvas returns a canvas over src with all chrome visible.
func NewCanvas(src Source) *Canvas {
	c := &Canvas{
		source:   src,
		visible:  make(map[Layer]bool, len(Layers)),
		viewport: DefaultViewport(),
	}
	for _, l := range Layers {
		c.visible[l] = true
	}
	return c
}

// SetVisible shows or hides a chrome layer.
func (c *Canvas) SetVisible(l Layer, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible[l] = on
}

// Visible reports whether a chrome layer is shown.
func (c *Canvas) Visible(l Layer) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visible[l]
}

// Viewport returns the current viewport.
func (c *Canvas) Viewport() Viewport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewport
}

// UpdateViewport applies fn to the viewport.
func (c *Canvas) UpdateViewport(fn func(*Viewport)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.viewport)
}

// FitView fits the viewport to the map in a window of the given size.
func (c *Canvas) FitView(width, height float64) {
	sc := NewScene(c.source.Snapshot())
	c.UpdateViewport(func(v *Viewport) { v.Fit(sc.Bounds, width, height) })
}

// Scene resolves the current map.
func (c *Canvas) Scene() Scene {
	return NewScene(c.source.Snapshot())
}

// hideChrome hides every layer and returns a function restoring the prior
// visibility.
func (c *Canvas) hideChrome() (restore func()) {
	c.mu.Lock()
	prev := maps.Clone(c.visible)
	for l := range c.visible {
		c.visible[l] = false
	}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.visible = prev
	}
}

func (c *Canvas) visibleLayers() []Layer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.DeleteFunc(slices.Clone(Layers), func(l Layer) bool { return !c.visible[l] })
}
