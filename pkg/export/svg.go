package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/mindmap/pkg/fonts"
)

func writeSVG(w io.Writer, sc Scene, layers []Layer, o options) error {
	bw := bufio.NewWriter(w)
	b := sc.Bounds
	width, height := b.Width(), b.Height()

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		b.MinX, b.MinY, width, height, width, height)
	if o.background != "" {
		fmt.Fprintf(bw, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			b.MinX, b.MinY, width, height, esc(o.background))
	}

	bw.WriteString(`  <g class="connections">` + "\n")
	for _, e := range sc.Edges {
		x1, y1 := e.From.Center()
		x2, y2 := e.To.Center()
		fmt.Fprintf(bw, `    <line id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.0f" stroke-linecap="round"/>`+"\n",
			esc(e.Connection.ID), x1, y1, x2, y2, edgeColor, edgeWidth)
	}
	bw.WriteString("  </g>\n")

	bw.WriteString(`  <g class="nodes">` + "\n")
	for _, box := range sc.Boxes {
		writeSVGNode(bw, box, o.fontSize)
	}
	bw.WriteString("  </g>\n")

	for _, l := range layers {
		writeSVGChrome(bw, l, b)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeSVGNode(w *bufio.Writer, b Box, fontSize float64) {
	cx, cy := b.Center()
	fmt.Fprintf(w, `    <g id="%s">`+"\n", esc(b.Node.ID))
	fmt.Fprintf(w, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" fill="%s"/>`+"\n",
		b.X, b.Y, b.Width, b.Height, cornerR, esc(b.Node.Color))

	label := b.Node.Text
	if b.Node.Icon != "" {
		label = b.Node.Icon + " " + label
	}
	lines := wrapLabel(label, b.Width-20, fontSize)
	lineH := fontSize * 1.3
	top := cy - lineH*float64(len(lines)-1)/2
	fmt.Fprintf(w, `      <text x="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-size="%.0f" fill="%s">`,
		cx, esc(fonts.FontFamily), fontSize, labelColor)
	for i, line := range lines {
		fmt.Fprintf(w, `<tspan x="%.2f" y="%.2f">%s</tspan>`, cx, top+float64(i)*lineH, esc(line))
	}
	w.WriteString("</text>\n    </g>\n")
}

func writeSVGChrome(w *bufio.Writer, l Layer, b Bounds) {
	var x, y, cw, ch float64
	switch l {
	case LayerToolbar:
		x, y, cw, ch = b.MinX, b.MinY, b.Width(), toolbarHeight
	case LayerControls:
		x, y, cw, ch = b.MinX+chromeMargin, b.MaxY-controlsH-chromeMargin, controlsW, controlsH
	case LayerMinimap:
		x, y, cw, ch = b.MaxX-minimapW-chromeMargin, b.MaxY-minimapH-chromeMargin, minimapW, minimapH
	default:
		return
	}
	fmt.Fprintf(w, `  <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
		l, x, y, cw, ch, chromeColor, chromeLine)
}

// wrapLabel breaks text into lines that fit width, estimating glyph width
// as 0.55em.
func wrapLabel(text string, width, fontSize float64) []string {
	perLine := int(width / (fontSize * 0.55))
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		switch {
		case len(cur) == 0:
			cur = wr
		case len(cur)+1+len(wr) <= perLine:
			cur = append(append(cur, ' '), wr...)
		default:
			lines = append(lines, string(cur))
			cur = wr
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func esc(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
