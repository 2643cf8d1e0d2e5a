// Package sink renders scenes to SVG and PNG.
//
// Both sinks are scene.Drawer implementations driven by Scene.Draw, so the
// exported image shows exactly what the editor shows: grid, keys in
// z-order, status outlines, resize handles, snap previews and the rubber
// band.
//
//	svg := sink.RenderSVG(s)
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//
// SVG output is produced with the selected styles.Style. PNG output is
// rasterised with fogleman/gg using the same style's palette.
package sink
