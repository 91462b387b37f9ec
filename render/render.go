// Package render turns graph snapshots into consumer formats: an indented
// JSON document for programmatic use and a flat SVG projection for a quick
// look at the layout. Both read a snapshot only; nothing here mutates the
// graph.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/skeinlab/skein/graph"
)

// Options configures the SVG output.
type Options struct {
	Width      float64 // canvas width in pixels
	Height     float64 // canvas height in pixels
	NodeRadius float64
	EdgeWidth  float64
	// WeightMax is the weight at which an edge fades out completely. Edge
	// opacity is 1 - weight/WeightMax, matching the generation-time weight
	// ceiling.
	WeightMax  float64
	Background string
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() *Options {
	return &Options{
		Width:      800,
		Height:     600,
		NodeRadius: 2.0,
		EdgeWidth:  0.5,
		WeightMax:  0.1,
		Background: "#f0f0f0",
	}
}

// JSON serializes a snapshot as an indented document.
func JSON(g *graph.Graph) ([]byte, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode graph %s: %w", g.ID, err)
	}
	return out, nil
}

// SVG projects node positions orthographically onto the XY plane, fits them
// into the canvas with a margin, and draws edges under nodes. Edge opacity
// falls off with weight against opts.WeightMax.
func SVG(g *graph.Graph, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions()
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range g.Nodes {
		minX = math.Min(minX, n.Position.X)
		maxX = math.Max(maxX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxY = math.Max(maxY, n.Position.Y)
	}

	const margin = 20.0
	scale := 1.0
	if spanX, spanY := maxX-minX, maxY-minY; spanX > 0 || spanY > 0 {
		scale = math.Min(
			(opts.Width-2*margin)/math.Max(spanX, 1e-12),
			(opts.Height-2*margin)/math.Max(spanY, 1e-12),
		)
	}
	project := func(n graph.Node) (float64, float64) {
		return margin + (n.Position.X-minX)*scale, margin + (n.Position.Y-minY)*scale
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background)

	for _, e := range g.Edges {
		x1, y1 := project(g.Nodes[e.Head])
		x2, y2 := project(g.Nodes[e.Tail])
		opacity := 1.0
		if opts.WeightMax > 0 {
			opacity = math.Max(0, math.Min(1, 1-e.Weight/opts.WeightMax))
		}
		fmt.Fprintf(&buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="%g" stroke-opacity="%.3f"/>`+"\n",
			x1, y1, x2, y2, opts.EdgeWidth, opacity)
	}
	for _, n := range g.Nodes {
		x, y := project(n)
		fmt.Fprintf(&buf, `<circle cx="%.2f" cy="%.2f" r="%g" fill="#000000"/>`+"\n",
			x, y, opts.NodeRadius)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
