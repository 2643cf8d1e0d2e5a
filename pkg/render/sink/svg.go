package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

const keyInteractionCSS = `
    .key { transition: stroke-width 0.2s ease; }
    .key:hover { stroke-width: 4; }
    .key-text { pointer-events: none; user-select: none; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	showGrid bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithGrid(show bool) SVGOption       { return func(r *svgRenderer) { r.showGrid = show } }

// SVGDrawer is a scene.Drawer that writes SVG elements.
type SVGDrawer struct {
	buf   *bytes.Buffer
	style styles.Style
	grid  bool
	w, h  float64
	n     int
}

// NewSVGDrawer returns a drawer writing into buf with style. The canvas
// size (w, h) is used when the scene declares none.
func NewSVGDrawer(buf *bytes.Buffer, style styles.Style, grid bool, w, h float64) *SVGDrawer {
	return &SVGDrawer{buf: buf, style: style, grid: grid, w: w, h: h}
}

func (d *SVGDrawer) DrawGrid(gx, gy, w, h float64) {
	if w <= 0 || h <= 0 {
		w, h = d.w, d.h
	}
	g := styles.Grid{W: w, H: h}
	if d.grid {
		g.StepX, g.StepY = gx, gy
	}
	d.style.RenderGrid(d.buf, g)
}

func (d *SVGDrawer) DrawObject(v scene.ObjectView) {
	k := keyFor(v, d.n)
	d.n++
	d.style.RenderKey(d.buf, k)
	d.style.RenderText(d.buf, k)
}

func (d *SVGDrawer) DrawBand(r scene.Rect) {
	d.style.RenderBand(d.buf, styles.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

var _ scene.Drawer = (*SVGDrawer)(nil)

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, showGrid: true}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := canvasSize(s)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	r.style.RenderDefs(&buf)

	s.Draw(NewSVGDrawer(&buf, r.style, r.showGrid, w, h))

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", keyInteractionCSS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
