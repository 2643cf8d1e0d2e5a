// Package term draws a scene onto a grid of terminal cells.
//
// Device units are mapped to cells by a fixed cell size (by default a cell
// is 10 units wide and 20 tall, matching the usual 1:2 glyph aspect).
// Boxes use light borders for normal keys, heavy borders for hovered keys
// and double borders for selected ones; colours come from a
// styles.Palette and are applied with lipgloss.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

type kind uint8

const (
	kindBlank kind = iota
	kindGrid
	kindNormal
	kindActive
	kindSelected
	kindMoving
	kindHug
	kindBand
	kindText
)

type cell struct {
	r rune
	k kind
}

type border struct {
	tl, tr, bl, br, h, v rune
}

var (
	lightBorder  = border{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder  = border{'┏', '┓', '┗', '┛', '━', '┃'}
	doubleBorder = border{'╔', '╗', '╚', '╝', '═', '║'}
	dashBorder   = border{'+', '+', '+', '+', '╌', '╎'}
)

// Canvas is a scene.Drawer that renders into terminal cells.
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	palette      styles.Palette
	showGrid     bool
	cells        [][]cell
	plain        bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithPalette sets the colours.
func WithPalette(p styles.Palette) Option { return func(c *Canvas) { c.palette = p } }

// WithGrid shows or hides grid dots.
func WithGrid(show bool) Option { return func(c *Canvas) { c.showGrid = show } }

// WithPlain disables colour output, which keeps String comparable in tests
// and readable when piped.
func WithPlain() Option { return func(c *Canvas) { c.plain = true } }

// NewCanvas returns a cols x rows canvas where each cell covers cellW x
// cellH device units.
func NewCanvas(cols, rows int, cellW, cellH float64, opts ...Option) *Canvas {
	c := &Canvas{
		cols:     max(cols, 1),
		rows:     max(rows, 1),
		cellW:    cellW,
		cellH:    cellH,
		palette:  styles.Classic,
		showGrid: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Clear()
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	c.Clear()
}

// SetGrid shows or hides grid dots on the next draw.
func (c *Canvas) SetGrid(show bool) { c.showGrid = show }

// ShowGrid reports whether grid dots are drawn.
func (c *Canvas) ShowGrid() bool { return c.showGrid }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	c.cells = make([][]cell, c.rows)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.cols)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
}

// ToDevice returns the device position of the center of a cell.
func (c *Canvas) ToDevice(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// cellRect converts a device rectangle to inclusive cell bounds.
func (c *Canvas) cellRect(r scene.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / c.cellW))
	y0 = int(math.Floor(r.Y / c.cellH))
	x1 = max(x0, int(math.Ceil(r.Right()/c.cellW))-1)
	y1 = max(y0, int(math.Ceil(r.Bottom()/c.cellH))-1)
	return x0, y0, x1, y1
}

func (c *Canvas) set(x, y int, r rune, k kind) {
	if y < 0 || y >= c.rows || x < 0 || x >= c.cols {
		return
	}
	c.cells[y][x] = cell{r: r, k: k}
}

func (c *Canvas) box(x0, y0, x1, y1 int, b border, k kind, fill bool) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			switch {
			case y == y0 && x == x0:
				c.set(x, y, b.tl, k)
			case y == y0 && x == x1:
				c.set(x, y, b.tr, k)
			case y == y1 && x == x0:
				c.set(x, y, b.bl, k)
			case y == y1 && x == x1:
				c.set(x, y, b.br, k)
			case y == y0 || y == y1:
				c.set(x, y, b.h, k)
			case x == x0 || x == x1:
				c.set(x, y, b.v, k)
			case fill:
				c.set(x, y, ' ', kindBlank)
			}
		}
	}
}

func (c *Canvas) DrawGrid(gx, gy, w, h float64) {
	c.Clear()
	if !c.showGrid || gx <= 0 || gy <= 0 {
		return
	}
	if w <= 0 {
		w = float64(c.cols) * c.cellW
	}
	if h <= 0 {
		h = float64(c.rows) * c.cellH
	}
	for y := 0.0; y < h; y += gy {
		for x := 0.0; x < w; x += gx {
			c.set(int(x/c.cellW), int(y/c.cellH), '·', kindGrid)
		}
	}
}

func (c *Canvas) DrawObject(v scene.ObjectView) {
	if v.Hugging {
		x0, y0, x1, y1 := c.cellRect(v.Preview)
		c.box(x0, y0, x1, y1, dashBorder, kindHug, false)
	}

	b, k := lightBorder, kindNormal
	switch v.Status {
	case scene.Active:
		b, k = heavyBorder, kindActive
	case scene.Selected:
		b, k = doubleBorder, kindSelected
	}
	if v.Moving {
		k = kindMoving
	}
	x0, y0, x1, y1 := c.cellRect(v.Rect)
	c.box(x0, y0, x1, y1, b, k, true)

	inner := x1 - x0 - 1
	if inner <= 0 || v.Label == "" {
		return
	}
	label := []rune(v.Label)
	if len(label) > inner {
		label = label[:inner]
	}
	// short keys have no interior row; the label overwrites the top border
	row := (y0 + y1) / 2
	start := x0 + 1 + (inner-len(label))/2
	for i, r := range label {
		c.set(start+i, row, r, kindText)
	}
}

func (c *Canvas) DrawBand(r scene.Rect) {
	x0, y0, x1, y1 := c.cellRect(r)
	c.box(x0, y0, x1, y1, dashBorder, kindBand, false)
}

var _ scene.Drawer = (*Canvas)(nil)

// String renders the canvas as lines of (optionally styled) text.
func (c *Canvas) String() string {
	styleFor := c.styles()
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			k := row[x].k
			end := x
			var run strings.Builder
			for end < len(row) && row[end].k == k {
				run.WriteRune(row[end].r)
				end++
			}
			if c.plain {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor[k].Render(run.String()))
			}
			x = end
		}
	}
	return sb.String()
}

func (c *Canvas) styles() map[kind]lipgloss.Style {
	p := c.palette
	fg := func(col styles.RGBA) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	}
	return map[kind]lipgloss.Style{
		kindBlank:    lipgloss.NewStyle(),
		kindGrid:     fg(p.Grid),
		kindNormal:   fg(p.Outline),
		kindActive:   fg(p.Active).Bold(true),
		kindSelected: fg(p.Selected).Bold(true),
		kindMoving:   fg(p.Selected).Faint(true),
		kindHug:      fg(p.Hug),
		kindBand:     fg(p.BandStroke.WithAlpha(1)),
		kindText:     fg(p.Text),
	}
}
