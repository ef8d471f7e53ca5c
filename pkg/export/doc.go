// Package export renders a mind map canvas to image and document files.
//
// # Canvas
//
// A [Canvas] draws the map held by a [Source] (usually a *mindmap.Store)
// together with its interface chrome: the toolbar band, the zoom controls
// and the minimap. Its [Viewport] holds the interactive zoom and pan used by
// on-screen views; [Viewport.Project] maps canvas points into view space.
// [Export] is a capture of the whole map: it hides the chrome, renders, and
// restores the previous visibility on every exit path. Captures on the same
// canvas are serialized.
//
// # Formats
//
//   - [PNG]: raster drawn with fogleman/gg at [DefaultScale] on a white
//     background, limited to [MaxRasterSide] and [MaxRasterPixels]
//   - [PDF]: one page sized to the PNG's pixel dimensions, landscape when
//     wider than tall
//   - [SVG]: vector drawing of the same scene
//   - [DOT]: Graphviz source with pinned node positions
//
// With [EngineGraphviz], PNG and SVG are produced by laying out the DOT
// source with go-graphviz instead of the built-in renderer.
//
// Connections whose source or target no longer exists are skipped.
package export
