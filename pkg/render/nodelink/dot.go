package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/keyedit/pkg/scene"
)

// Node is one key in the adjacency graph.
type Node struct {
	ID    string
	Label string
	Rect  scene.Rect
}

// Edge joins two touching keys. Horizontal edges connect keys side by
// side, vertical edges connect stacked keys.
type Edge struct {
	From, To   string
	Horizontal bool
}

// Graph is the undirected neighbour graph of a set of objects.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Options configures diagram generation.
type Options struct {
	// Detailed adds the key geometry to node labels.
	Detailed bool
	// Pinned places nodes at their key positions (neato layout) instead
	// of letting Graphviz arrange them.
	Pinned bool
}

type identified interface {
	ObjectID() string
}

// Adjacency lists every pair of objects whose facing edges lie within tol
// of each other while they overlap on the other axis. Nodes keep the order
// of objs; edges are ordered by first then second node.
func Adjacency(objs []*scene.Object, tol float64) Graph {
	var g Graph
	for i, o := range objs {
		id := strconv.Itoa(i)
		if p, ok := o.Payload.(identified); ok {
			id = p.ObjectID()
		}
		g.Nodes = append(g.Nodes, Node{ID: id, Label: o.Label(), Rect: o.Rect()})
	}
	for i := range objs {
		for j := i + 1; j < len(objs); j++ {
			h, v := objs[i].Rect().Touching(objs[j].Rect(), tol)
			if h || v {
				g.Edges = append(g.Edges, Edge{From: g.Nodes[i].ID, To: g.Nodes[j].ID, Horizontal: h})
			}
		}
	}
	return g
}

// Degree returns the number of neighbours of each node.
func (g Graph) Degree() map[string]int {
	d := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		d[n.ID] = 0
	}
	for _, e := range g.Edges {
		d[e.From]++
		d[e.To]++
	}
	return d
}

// ToDOT converts the graph to Graphviz DOT source. Isolated keys are kept
// so that gaps in a layout stay visible.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	if opts.Pinned {
		buf.WriteString("  overlap=true;\n")
		buf.WriteString("  splines=false;\n")
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
		if opts.Pinned {
			// points, y up
			attrs = append(attrs, fmt.Sprintf("pos=\"%.1f,%.1f!\"", n.Rect.CenterX(), -n.Rect.CenterY()))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		style := "solid"
		if !e.Horizontal {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  %q -- %q [style=%s];\n", e.From, e.To, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node, detailed bool) string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	if !detailed {
		return label
	}
	r := n.Rect
	return fmt.Sprintf("%s\nx: %g y: %g\n%g x %g", label, r.X, r.Y, r.W, r.H)
}

// RenderSVG renders DOT source to SVG using Graphviz. Pinned selects the
// neato engine so that explicit node positions are honoured.
func RenderSVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	if opts.Pinned {
		gv.SetLayout(graphviz.NEATO)
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag (pt units, transform
// offsets) with a plain viewBox so the diagram scales like the key SVGs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
