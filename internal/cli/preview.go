package cli

import (
	"math"
	"strings"

	"github.com/matzehuels/mindmap/pkg/export"
)

// Preview grid size in terminal cells.
const (
	previewCols    = 60
	previewMinCols = 20
	previewMaxCols = 120
	previewRows    = 14
)

// Cells projected further than this off-screen are clamped so long edges
// stay cheap to walk.
const previewClamp = 1000

// renderPreview draws the scene through the viewport onto a cols x rows
// character grid. Connections are drawn first as dots, then every node as a
// bracketed label at its left edge, vertically centered. The selected node
// uses angle brackets.
func renderPreview(sc export.Scene, v export.Viewport, selected string, cols, rows int) []string {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	set := func(c, r int, ch rune) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = ch
		}
	}
	cell := func(x, y float64) (int, int) {
		px, py := v.Project(x, y)
		return clampCell(px / cellWidth), clampCell(py / cellHeight)
	}

	for _, e := range sc.Edges {
		x1, y1 := cell(e.From.Center())
		x2, y2 := cell(e.To.Center())
		drawLine(x1, y1, x2, y2, func(c, r int) { set(c, r, '·') })
	}

	for _, b := range sc.Boxes {
		c, r := cell(b.X, b.Y+b.Height/2)
		width := max(4, int(math.Min(b.Width*v.Zoom/cellWidth, previewClamp)))
		label := []rune(b.Node.Text)
		if len(label) > width-2 {
			label = append(label[:width-3], '…')
		}
		open, end := '[', ']'
		if b.Node.ID == selected {
			open, end = '<', '>'
		}
		set(c, r, open)
		for i, ch := range label {
			set(c+1+i, r, ch)
		}
		set(c+1+len(label), r, end)
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func clampCell(f float64) int {
	if math.IsNaN(f) {
		return -previewClamp
	}
	return int(math.Floor(math.Max(-previewClamp, math.Min(previewClamp, f))))
}

// drawLine walks the cells between two points with Bresenham's algorithm.
func drawLine(x1, y1, x2, y2 int, plot func(c, r int)) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
