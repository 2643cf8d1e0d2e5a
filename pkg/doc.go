// Package pkg provides the libraries behind keyedit, an editor for
// Florence on-screen keyboard layouts.
//
// # Overview
//
// Keys are rectangles in a 2D scene. They are selected, moved and resized
// with a pointer, snapping to a grid, to neighbouring keys and to the
// keyboard edges. The pkg directory is organized into these areas:
//
//  1. [scene] - the interaction engine (objects, selection, snapping)
//  2. [layout] - the Florence XML document model and its mapping to scenes
//  3. [render] - drawers for SVG, PNG, the terminal and adjacency graphs
//  4. [pipeline] - cached, multi-format rendering of a layout
//  5. [cache], [config], [errors], [fonts], [observability], [buildinfo] -
//     supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	layout.xml
//	     ↓
//	[layout] package (parse + validate)
//	     ↓
//	[scene] package (pointer events, snapping, selection)
//	     ↓
//	[render] packages (SVG / PNG / terminal / DOT)
//	     ↓
//	layout.xml (saved geometry) or exported artifacts
//
// # Quick Start
//
//	l, err := layout.ReadFile("compact.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := l.Keyboard.Scene(layout.DefaultScale, scene.WithGrid(30, 30))
//	s.Press(scene.Pointer{X: 25, Y: 30})
//	s.Motion(scene.Pointer{X: 55, Y: 30, Mods: scene.ModSnap})
//	s.Release()
//
//	l.Keyboard.Sync(s.Objects(), layout.DefaultScale)
//	err = layout.WriteFile(l, "compact.xml")
//
// Rendering with caching goes through a [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, "compact.xml", pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// [scene]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/scene
// [layout]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/keyedit/pkg/buildinfo
package pkg
