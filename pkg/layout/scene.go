package layout

import (
	"github.com/google/uuid"

	"github.com/matzehuels/keyedit/pkg/scene"
)

// Canvas returns the keyboard extents in device units.
func (kb *Keyboard) Canvas(scale float64) (w, h float64) {
	return kb.Width * scale, kb.Height * scale
}

// Objects converts the keys to scene objects in document order. Each
// object carries its *Key as payload.
func (kb *Keyboard) Objects(scale float64) []*scene.Object {
	objs := make([]*scene.Object, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		o := scene.NewObject(
			k.DisplayLabel(),
			(k.XPos-k.Width/2)*scale,
			(k.YPos-k.Height/2)*scale,
			k.Width*scale,
			k.Height*scale,
		)
		o.Payload = k
		objs = append(objs, o)
	}
	return objs
}

// Scene builds a scene holding the keyboard's keys, sized to its canvas.
// opts are applied after the size.
func (kb *Keyboard) Scene(scale float64, opts ...scene.Option) *scene.Scene {
	w, h := kb.Canvas(scale)
	s := scene.New(append([]scene.Option{scene.WithSize(w, h)}, opts...)...)
	s.Connect(kb.Objects(scale))
	return s
}

// Sync replaces the keys with the given objects, in their order, writing
// back the edited geometry. Objects without a *Key payload become new keys
// bound to their label and get that key attached.
func (kb *Keyboard) Sync(objs []*scene.Object, scale float64) {
	keys := make([]*Key, 0, len(objs))
	for _, o := range objs {
		k, ok := o.Payload.(*Key)
		if !ok {
			k = &Key{ID: uuid.New(), Binding: BindingFromLabel(o.Label())}
			o.Payload = k
		}
		r := o.Rect()
		k.XPos = r.CenterX() / scale
		k.YPos = r.CenterY() / scale
		k.Width = r.W / scale
		k.Height = r.H / scale
		keys = append(keys, k)
	}
	kb.Keys = keys
}
