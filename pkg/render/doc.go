// Package render groups the draw collaborators of the editor.
//
// # Overview
//
// The scene engine never draws. Each subpackage implements scene.Drawer
// (or works on the scene's objects) for one output:
//
//   - [sink]: SVG documents and PNG images of a scene
//   - [term]: a character-cell canvas for the terminal editor
//   - [nodelink]: key adjacency graphs rendered with Graphviz
//   - [styles]: colour palettes and SVG primitives shared by the sinks
//
// # Usage
//
//	s := kb.Scene(layout.DefaultScale)
//	svg := sink.RenderSVG(s, sink.WithStyle(styles.Simple{}))
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//
//	adj := nodelink.Adjacency(s.Objects(), scene.DefaultTolerance)
//	out, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(adj, nodelink.Options{}), nodelink.Options{})
//
// [sink]: github.com/matzehuels/keyedit/pkg/render/sink
// [term]: github.com/matzehuels/keyedit/pkg/render/term
// [nodelink]: github.com/matzehuels/keyedit/pkg/render/nodelink
// [styles]: github.com/matzehuels/keyedit/pkg/render/styles
package render
