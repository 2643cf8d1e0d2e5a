package styles

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// Color converts to a non-premultiplied image colour.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Palette holds every colour used to draw a scene.
type Palette struct {
	Background RGBA
	Grid       RGBA
	Fill       RGBA
	Outline    RGBA // normal keys
	Active     RGBA // hovered or rubber-band candidates
	Selected   RGBA
	Text       RGBA
	Hug        RGBA
	BandFill   RGBA
	BandStroke RGBA

	// MovingAlpha dims keys while they are dragged.
	MovingAlpha float64
}

// StatusColor returns the outline colour for a status name as produced by
// scene.Status.String.
func (p Palette) StatusColor(status string) RGBA {
	switch status {
	case "active":
		return p.Active
	case "selected":
		return p.Selected
	}
	return p.Outline
}

// Classic is the light palette of the original Florence editor.
var Classic = Palette{
	Background:  RGBA{1, 1, 1, 1},
	Grid:        RGBA{0.7, 0.7, 0.7, 1},
	Fill:        RGBA{0.7, 0.7, 0.7, 1},
	Outline:     RGBA{0, 0, 0, 1},
	Active:      RGBA{0.5, 0.5, 0.5, 1},
	Selected:    RGBA{0.1, 0, 0.5, 1},
	Text:        RGBA{0, 0, 0, 1},
	Hug:         RGBA{0, 0, 0, 1},
	BandFill:    RGBA{0.2, 0.2, 0.7, 0.1},
	BandStroke:  RGBA{0, 0, 0, 0.3},
	MovingAlpha: 0.7,
}

// Night is a dark palette for terminals and dark pages.
var Night = Palette{
	Background:  RGBA{0.11, 0.12, 0.15, 1},
	Grid:        RGBA{0.25, 0.27, 0.32, 1},
	Fill:        RGBA{0.3, 0.33, 0.4, 1},
	Outline:     RGBA{0.8, 0.82, 0.86, 1},
	Active:      RGBA{0.55, 0.75, 0.95, 1},
	Selected:    RGBA{0.98, 0.75, 0.3, 1},
	Text:        RGBA{0.95, 0.95, 0.95, 1},
	Hug:         RGBA{0.98, 0.75, 0.3, 1},
	BandFill:    RGBA{0.55, 0.75, 0.95, 0.15},
	BandStroke:  RGBA{0.55, 0.75, 0.95, 0.6},
	MovingAlpha: 0.7,
}
