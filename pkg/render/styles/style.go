// Package styles defines how keys, grids and selection bands look in SVG
// output, and the palettes shared with the PNG and terminal drawers.
package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/keyedit/pkg/errors"
)

// Style defines the visual appearance of a rendered scene.
type Style interface {
	// Palette returns the colours used by this style.
	Palette() Palette
	// RenderDefs writes SVG <defs> content (patterns, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderGrid writes the canvas background and grid lines.
	RenderGrid(buf *bytes.Buffer, g Grid)
	// RenderKey writes the shape of one key, including its handles and
	// any snap preview.
	RenderKey(buf *bytes.Buffer, k Key)
	// RenderText writes the key label.
	RenderText(buf *bytes.Buffer, k Key)
	// RenderBand writes the rubber-band rectangle.
	RenderBand(buf *bytes.Buffer, r Rect)
}

// Rect is a rectangle in device units.
type Rect struct {
	X, Y, W, H float64
}

// Grid describes the canvas background.
type Grid struct {
	StepX, StepY float64 // 0 disables an axis
	W, H         float64
}

// Key contains all data needed to render a single key.
type Key struct {
	ID         string  // Stable identifier
	Label      string  // Display text
	Class      string  // Florence key class, if any
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Status     string  // normal, active or selected
	Moving     bool    // Being dragged
	Hug        *Rect   // Snap preview outline (nil if none)
	Handles    []Rect  // Resize handles (empty for normal keys)
}

// Names lists the registered style names.
var Names = []string{"simple", "night"}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch name {
	case "", "simple":
		return Simple{}, nil
	case "night":
		return Simple{Colors: Night}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown style %q (want one of %v)", name, Names)
}

func rgba(c RGBA) string {
	return fmt.Sprintf(`rgba(%d,%d,%d,%.2f)`, channel(c.R), channel(c.G), channel(c.B), c.A)
}
