package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a scene to Graphviz DOT. Node positions are pinned in
// points with the y axis flipped, so neato reproduces the canvas layout.
func ToDOT(sc Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph mindmap {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white, fontname=\"Helvetica\", fontsize=14, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#666666\", penwidth=3, arrowhead=none];\n")
	buf.WriteString("\n")

	for _, b := range sc.Boxes {
		cx, cy := b.Center()
		label := b.Node.Text
		if b.Node.Icon != "" {
			label = b.Node.Icon + " " + label
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, pos=\"%.0f,%.0f!\", width=%.2f, height=%.2f];\n",
			b.Node.ID, label, b.Node.Color, cx, -cy, b.Width/72, b.Height/72)
	}

	buf.WriteString("\n")
	for _, e := range sc.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Connection.Source, e.Connection.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphviz lays out the scene's DOT source with neato and renders it.
func RenderGraphviz(ctx context.Context, sc Scene, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(ToDOT(sc)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
