package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/keyedit/pkg/fonts"
)

// Simple draws flat keys with status-coloured outlines.
// The zero value uses the Classic palette.
type Simple struct {
	Colors Palette
}

func (s Simple) Palette() Palette {
	if s.Colors == (Palette{}) {
		return Classic
	}
	return s.Colors
}

func (s Simple) RenderDefs(buf *bytes.Buffer) {
	p := s.Palette()
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <pattern id="hug" width="16" height="16" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">`+
		`<rect width="8" height="16" fill="%s"/></pattern>`+"\n", rgba(p.Hug))
	buf.WriteString("  </defs>\n")
}

func (s Simple) RenderGrid(buf *bytes.Buffer, g Grid) {
	p := s.Palette()
	fmt.Fprintf(buf, `  <rect class="canvas" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		g.W, g.H, rgba(p.Background))
	if g.StepX <= 0 && g.StepY <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <g class="grid" stroke="%s" stroke-width="1">`+"\n", rgba(p.Grid))
	if g.StepX > 0 {
		for x := 0.0; x < g.W; x += g.StepX {
			fmt.Fprintf(buf, `    <line x1="%.2f" y1="0" x2="%.2f" y2="%.2f"/>`+"\n", x, x, g.H)
		}
	}
	if g.StepY > 0 {
		for y := 0.0; y < g.H; y += g.StepY {
			fmt.Fprintf(buf, `    <line x1="0" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", y, g.W, y)
		}
	}
	buf.WriteString("  </g>\n")
}

func (s Simple) RenderKey(buf *bytes.Buffer, k Key) {
	p := s.Palette()
	alpha := 1.0
	if k.Moving {
		alpha = p.MovingAlpha
	}

	if k.Hug != nil {
		fmt.Fprintf(buf, `  <rect class="hug" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="url(#hug)" stroke-width="4"/>`+"\n",
			k.Hug.X, k.Hug.Y, k.Hug.W, k.Hug.H)
	}

	outline := p.StatusColor(k.Status).WithAlpha(alpha)
	class := "key"
	if k.Class != "" {
		class += " key-" + EscapeXML(k.Class)
	}
	fmt.Fprintf(buf, `  <rect id="key-%s" class="%s" data-status="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		EscapeXML(k.ID), class, EscapeXML(k.Status), k.X, k.Y, k.W, k.H, rgba(p.Fill.WithAlpha(alpha)), rgba(outline))

	for _, h := range k.Handles {
		fmt.Fprintf(buf, `  <rect class="handle" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			h.X, h.Y, h.W, h.H, rgba(outline))
	}
}

func (s Simple) RenderText(buf *bytes.Buffer, k Key) {
	if k.Label == "" {
		return
	}
	p := s.Palette()
	fmt.Fprintf(buf, `  <text class="key-text" data-key="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		EscapeXML(k.ID), k.CX, k.CY, fonts.FallbackFontFamily, FontSize(k), rgba(p.Text), EscapeXML(TruncateLabel(k)))
}

func (s Simple) RenderBand(buf *bytes.Buffer, r Rect) {
	p := s.Palette()
	fmt.Fprintf(buf, `  <rect class="band" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		r.X, r.Y, r.W, r.H, rgba(p.BandFill), rgba(p.BandStroke))
}

var _ Style = Simple{}
