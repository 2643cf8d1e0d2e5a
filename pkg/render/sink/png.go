package sink

import (
	"bytes"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/fonts"
	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

// DefaultPNGScale renders PNGs at twice the device resolution.
const DefaultPNGScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style    styles.Style
	scale    float64
	showGrid bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGStyle selects the style whose palette is used.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithPNGGrid shows or hides the grid.
func WithPNGGrid(show bool) PNGOption {
	return func(r *pngRenderer) { r.showGrid = show }
}

// PNGDrawer is a scene.Drawer that rasterises onto a gg context.
type PNGDrawer struct {
	dc      *gg.Context
	palette styles.Palette
	grid    bool
	w, h    float64
}

func (d *PNGDrawer) DrawGrid(gx, gy, w, h float64) {
	if w <= 0 || h <= 0 {
		w, h = d.w, d.h
	}
	p := d.palette
	d.dc.SetColor(p.Background.Color())
	d.dc.DrawRectangle(0, 0, w, h)
	d.dc.Fill()
	if !d.grid {
		return
	}
	d.dc.SetColor(p.Grid.Color())
	d.dc.SetLineWidth(1)
	if gx > 0 {
		for x := 0.0; x < w; x += gx {
			d.dc.DrawLine(x, 0, x, h)
			d.dc.Stroke()
		}
	}
	if gy > 0 {
		for y := 0.0; y < h; y += gy {
			d.dc.DrawLine(0, y, w, y)
			d.dc.Stroke()
		}
	}
}

func (d *PNGDrawer) DrawObject(v scene.ObjectView) {
	k := keyFor(v, 0)
	p := d.palette
	alpha := 1.0
	if k.Moving {
		alpha = p.MovingAlpha
	}

	if k.Hug != nil {
		d.dc.SetStrokeStyle(gg.NewSurfacePattern(hatch(p.Hug.Color()), gg.RepeatBoth))
		d.dc.SetLineWidth(4)
		d.dc.DrawRectangle(k.Hug.X, k.Hug.Y, k.Hug.W, k.Hug.H)
		d.dc.Stroke()
	}

	d.dc.SetColor(p.Fill.WithAlpha(alpha).Color())
	d.dc.DrawRectangle(k.X, k.Y, k.W, k.H)
	d.dc.Fill()

	outline := p.StatusColor(k.Status).WithAlpha(alpha).Color()
	d.dc.SetColor(outline)
	d.dc.SetLineWidth(2)
	d.dc.DrawRectangle(k.X, k.Y, k.W, k.H)
	d.dc.Stroke()
	for _, h := range k.Handles {
		d.dc.DrawRectangle(h.X, h.Y, h.W, h.H)
		d.dc.Fill()
	}

	if k.Label == "" {
		return
	}
	if face, err := fonts.NewFace(styles.FontSize(k)); err == nil {
		d.dc.SetFontFace(face)
		defer face.Close()
	}
	d.dc.SetColor(p.Text.Color())
	d.dc.DrawStringAnchored(styles.TruncateLabel(k), k.CX, k.CY, 0.5, 0.35)
}

func (d *PNGDrawer) DrawBand(r scene.Rect) {
	p := d.palette
	d.dc.SetColor(p.BandFill.Color())
	d.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	d.dc.Fill()
	d.dc.SetColor(p.BandStroke.Color())
	d.dc.SetLineWidth(2)
	d.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	d.dc.Stroke()
}

var _ scene.Drawer = (*PNGDrawer)(nil)

// RenderPNG rasterises the scene.
func RenderPNG(s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Simple{}, scale: DefaultPNGScale, showGrid: true}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := canvasSize(s)
	dc := gg.NewContext(int(w*r.scale+0.5), int(h*r.scale+0.5))
	dc.Scale(r.scale, r.scale)

	// Without the vector font, gg falls back to its built-in bitmap face.
	s.Draw(&PNGDrawer{dc: dc, palette: r.style.Palette(), grid: r.showGrid, w: w, h: h})

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// hatch returns the 16x16 diagonal tile used to stroke snap previews.
func hatch(c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			if d := (x - y + 16) % 16; d < 4 || d > 12 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
