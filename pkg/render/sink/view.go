package sink

import (
	"fmt"

	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

// hugInset shrinks the snap preview so it reads as an inner outline.
const hugInset = 2.0

// identified is implemented by payloads that carry a stable identity,
// such as layout keys.
type identified interface {
	ObjectID() string
}

// classed is implemented by payloads that carry a key class.
type classed interface {
	KeyClass() string
}

// keyFor converts an object view into style input. n is the z-order index,
// used as the identifier when the payload has none.
func keyFor(v scene.ObjectView, n int) styles.Key {
	r := v.Rect
	k := styles.Key{
		ID:     fmt.Sprintf("%d", n),
		Label:  v.Label,
		X:      r.X,
		Y:      r.Y,
		W:      r.W,
		H:      r.H,
		CX:     r.CenterX(),
		CY:     r.CenterY(),
		Status: v.Status.String(),
		Moving: v.Moving,
	}
	if p, ok := v.Payload.(identified); ok {
		k.ID = p.ObjectID()
	}
	if p, ok := v.Payload.(classed); ok {
		k.Class = p.KeyClass()
	}
	if v.Hugging {
		p := v.Preview
		k.Hug = &styles.Rect{X: p.X + hugInset, Y: p.Y + hugInset, W: p.W - 2*hugInset, H: p.H - 2*hugInset}
	}
	if v.Status != scene.Normal {
		for _, h := range v.Handles {
			k.Handles = append(k.Handles, styles.Rect{X: h.X, Y: h.Y, W: h.W, H: h.H})
		}
	}
	return k
}

// canvasSize returns the scene extents, or the bounding box of its objects
// when the scene has no declared size.
func canvasSize(s *scene.Scene) (float64, float64) {
	w, h := s.Size()
	if w > 0 && h > 0 {
		return w, h
	}
	for _, o := range s.Objects() {
		r := o.Rect()
		w = max(w, r.Right())
		h = max(h, r.Bottom())
	}
	return max(w, scene.MinSize), max(h, scene.MinSize)
}
