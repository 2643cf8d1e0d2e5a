// Package nodelink renders the neighbour graph of a keyboard layout as a
// node-link diagram.
//
// Two keys are neighbours when their facing edges are within the snapping
// tolerance and they overlap on the other axis, the same rule the editor
// uses to snap a dragged key against its neighbours. The graph makes it
// easy to spot keys that drifted away from a row or column.
//
// # Usage
//
//	g := nodelink.Adjacency(s.Objects(), s.Tolerance())
//	dot := nodelink.ToDOT(g, nodelink.Options{Pinned: true})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.Options{Pinned: true})
//
// Side-by-side neighbours are drawn with solid edges and stacked ones with
// dashed edges.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
