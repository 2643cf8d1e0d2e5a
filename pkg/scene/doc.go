// Package scene is the interactive editing engine for rectangles on a 2D
// canvas.
//
// A [Scene] owns a z-ordered list of [Object] values and turns pointer
// events into selection changes, moves and resizes. It never draws and
// never does I/O: a host feeds it events through the [Handler] methods,
// gets told to repaint through an [Invalidator], and renders with
// [Scene.Draw] and a [Drawer].
//
// # Core Types
//
//   - [Object]: a positioned, resizable rectangle with a status, an anchor
//     and a pending snap preview (the hug)
//   - [Selection]: the objects that move and resize together
//   - [Scene]: z-order, hit-testing, rubber-band selection and snapping
//
// # Interaction
//
// Pressing on an object raises it and selects it (or toggles it with
// [ModToggle]); dragging then moves or resizes every selected object the
// same way, depending on which of the eight handles was pressed. Pressing
// on empty canvas starts a rubber band that selects everything it touches
// on release.
//
// While [ModSnap] is held, the selection's bounding box is aligned to the
// grid, to the edges of unselected objects, or to the canvas boundary. The
// correction is kept as a preview until the button is released.
//
// # Usage
//
//	s := scene.New(scene.WithGrid(30, 30), scene.WithSize(600, 300))
//	s.Add(scene.NewObject("q", 0, 0, 60, 60))
//	s.Press(scene.Pointer{X: 10, Y: 10})
//	s.Motion(scene.Pointer{X: 40, Y: 12, Mods: scene.ModSnap})
//	s.Release()
//
// All geometry is in device units. Sizes never drop below [MinSize].
package scene
