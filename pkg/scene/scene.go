package scene

import (
	"slices"

	"github.com/matzehuels/keyedit/pkg/config"
	"github.com/matzehuels/keyedit/pkg/observability"
)

// DefaultObjectSize is the side length of objects created by AddNew.
const DefaultObjectSize = 60.0

// Mode is the interaction mode of a scene.
type Mode int

// Interaction modes. A scene only leaves Idle on Press and always returns
// to it on Release.
const (
	Idle Mode = iota
	Dragging
	RubberBand
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case RubberBand:
		return "rubber-band"
	}
	return "unknown"
}

// band is the drag box of a rubber-band gesture.
type band struct {
	ox, oy float64
	cx, cy float64
}

func (b band) rect() Rect { return RectFromCorners(b.ox, b.oy, b.cx, b.cy) }

// Scene owns a z-ordered list of objects and dispatches pointer events to
// them. The last object in the list is drawn last and hit-tested first.
//
// A Scene is not safe for concurrent use. It implements [Handler].
type Scene struct {
	objects []*Object
	sel     Selection
	mode    Mode
	band    band

	gridX, gridY  float64
	width, height float64
	tolerance     float64

	inv   Invalidator
	hooks observability.SceneHooks
}

var _ Handler = (*Scene)(nil)

// Option configures a Scene.
type Option func(*Scene)

// WithGrid sets the snapping grid. Zero disables an axis.
func WithGrid(x, y float64) Option {
	return func(s *Scene) { s.gridX, s.gridY = x, y }
}

// WithSize sets the canvas extents used for boundary snapping.
func WithSize(w, h float64) Option {
	return func(s *Scene) { s.width, s.height = w, h }
}

// WithTolerance sets the snapping distance.
func WithTolerance(t float64) Option {
	return func(s *Scene) { s.tolerance = t }
}

// WithInvalidator sets the redraw callback.
func WithInvalidator(inv Invalidator) Option {
	return func(s *Scene) {
		if inv != nil {
			s.inv = inv
		}
	}
}

// WithHooks sets the observability hooks.
func WithHooks(h observability.SceneHooks) Option {
	return func(s *Scene) {
		if h != nil {
			s.hooks = h
		}
	}
}

// New returns an empty scene with no grid, unknown extents and the
// default snapping tolerance.
func New(opts ...Option) *Scene {
	s := &Scene{
		tolerance: DefaultTolerance,
		inv:       nopInvalidator{},
		hooks:     observability.NoopSceneHooks{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig returns a scene configured from cfg. Options in extra are
// applied afterwards and win.
func FromConfig(cfg config.Config, extra ...Option) *Scene {
	opts := []Option{
		WithGrid(cfg.Grid.X, cfg.Grid.Y),
		WithTolerance(cfg.Snap.Tolerance),
	}
	if cfg.Canvas.Width > 0 || cfg.Canvas.Height > 0 {
		opts = append(opts, WithSize(cfg.Canvas.Width, cfg.Canvas.Height))
	}
	return New(append(opts, extra...)...)
}

// =============================================================================
// Model
// =============================================================================

// Add appends obj on top of the z-order.
func (s *Scene) Add(obj *Object) {
	s.objects = append(s.objects, obj)
	s.inv.Invalidate()
}

// AddNew creates a DefaultObjectSize square at (x, y), puts it on top and
// makes it the only selected object.
func (s *Scene) AddNew(label string, x, y float64) *Object {
	obj := NewObject(label, x, y, DefaultObjectSize, DefaultObjectSize)
	s.objects = append(s.objects, obj)
	s.sel.Clear()
	s.sel.Add(obj)
	s.hooks.OnSelect(s.sel.Len())
	s.inv.Invalidate()
	return obj
}

// Objects returns the objects in z-order, bottom first.
func (s *Scene) Objects() []*Object { return slices.Clone(s.objects) }

// Selection returns the scene's selection.
func (s *Scene) Selection() *Selection { return &s.sel }

// Mode returns the current interaction mode.
func (s *Scene) Mode() Mode { return s.mode }

// Band returns the rubber-band rectangle and whether one is in progress.
func (s *Scene) Band() (Rect, bool) {
	if s.mode != RubberBand {
		return Rect{}, false
	}
	return s.band.rect(), true
}

// SetGrid changes the snapping grid. Zero disables an axis.
func (s *Scene) SetGrid(x, y float64) {
	if s.gridX != x || s.gridY != y {
		s.gridX, s.gridY = x, y
		s.inv.Invalidate()
	}
}

// Grid returns the snapping grid.
func (s *Scene) Grid() (x, y float64) { return s.gridX, s.gridY }

// SetSize changes the canvas extents.
func (s *Scene) SetSize(w, h float64) { s.width, s.height = w, h }

// Size returns the canvas extents.
func (s *Scene) Size() (w, h float64) { return s.width, s.height }

// Tolerance returns the snapping distance.
func (s *Scene) Tolerance() float64 { return s.tolerance }

// Reset drops every object together with the selection and any gesture in
// progress. Grid, extents and tolerance are kept.
func (s *Scene) Reset() {
	s.objects = nil
	s.sel = Selection{}
	s.mode = Idle
	s.band = band{}
	s.inv.Invalidate()
}

// Connect resets the scene and installs objs as its content, bottom first.
func (s *Scene) Connect(objs []*Object) {
	s.Reset()
	s.objects = slices.Clone(objs)
}

// Raise moves obj to the top of the z-order.
func (s *Scene) Raise(obj *Object) {
	i := slices.Index(s.objects, obj)
	if i < 0 || i == len(s.objects)-1 {
		return
	}
	s.objects = append(slices.Delete(s.objects, i, i+1), obj)
	obj.dirty = true
}

// SelectAll adds every object to the selection.
func (s *Scene) SelectAll() {
	for _, o := range s.objects {
		s.sel.Add(o)
	}
	s.hooks.OnSelect(s.sel.Len())
	s.invalidateIfDirty()
}

// Nudge moves every selected object by (dx, dy) and commits immediately.
// It is ignored during a gesture.
func (s *Scene) Nudge(dx, dy float64) {
	if s.mode != Idle || s.sel.Len() == 0 {
		return
	}
	for _, o := range s.sel.objects {
		r := o.rect
		r.X += dx
		r.Y += dy
		o.SetRect(r)
	}
	s.hooks.OnCommit(s.sel.Len())
	s.invalidateIfDirty()
}

// Delete removes every selected object from the scene, clears the
// selection and returns the removed objects.
func (s *Scene) Delete() []*Object {
	removed := s.sel.Objects()
	s.objects = slices.DeleteFunc(s.objects, func(o *Object) bool {
		return o.status == Selected
	})
	s.sel.Clear()
	s.mode = Idle
	s.band = band{}
	if len(removed) > 0 {
		s.hooks.OnDelete(len(removed))
		s.inv.Invalidate()
	}
	return removed
}

// Draw renders the scene with d and marks every object as drawn.
func (s *Scene) Draw(d Drawer) {
	d.DrawGrid(s.gridX, s.gridY, s.width, s.height)
	for _, o := range s.objects {
		d.DrawObject(o.View())
		o.ClearDirty()
	}
	if r, ok := s.Band(); ok {
		d.DrawBand(r)
	}
}

// =============================================================================
// Events
// =============================================================================

// Press hit-tests from the top of the z-order. A hit selects the object
// (or toggles it with ModToggle) and starts a drag if it ends up selected.
// A miss clears the selection unless ModToggle is held and starts a
// rubber band.
func (s *Scene) Press(p Pointer) {
	s.endGesture()

	toggle := p.Mods.Has(ModToggle)
	if hit := s.hitTest(p.X, p.Y); hit != nil {
		if toggle {
			s.sel.Toggle(hit)
		} else {
			s.Raise(hit)
			s.sel.Select(hit)
		}
		s.hooks.OnSelect(s.sel.Len())
		if hit.status == Selected {
			s.sel.Press(hit, p.X, p.Y)
			s.mode = Dragging
			s.hooks.OnDragStart(hit.anchor.String(), s.sel.Len())
		}
	} else {
		if !toggle {
			s.sel.Clear()
		}
		s.mode = RubberBand
		s.band = band{ox: p.X, oy: p.Y, cx: p.X, cy: p.Y}
	}
	s.inv.Invalidate()
}

// Motion drags the selection, grows the rubber band or updates the hover
// highlight, depending on the mode.
func (s *Scene) Motion(p Pointer) {
	switch s.mode {
	case Dragging:
		s.sel.Motion(p.X, p.Y)
		s.sel.Hug(0, 0)
		if p.Mods.Has(ModSnap) && s.sel.Len() > 0 {
			sn := s.SnapDelta(s.sel.BoundingBox())
			s.sel.Hug(sn.DX, sn.DY)
			if sn.DX != 0 || sn.DY != 0 {
				s.hooks.OnSnap(sn.DX, sn.DY, sn.SourceX.String(), sn.SourceY.String())
			}
		}
		s.invalidateIfDirty()

	case RubberBand:
		s.band.cx, s.band.cy = p.X, p.Y
		for _, o := range s.objects {
			if o.Collides(s.band.ox, s.band.oy, s.band.cx, s.band.cy) {
				o.Activate()
			} else {
				o.Deactivate()
			}
		}
		s.inv.Invalidate()

	default:
		found := false
		for i := len(s.objects) - 1; i >= 0; i-- {
			o := s.objects[i]
			if !found && o.Hit(p.X, p.Y) {
				o.Activate()
				found = true
				continue
			}
			o.Deactivate()
		}
		s.invalidateIfDirty()
	}
}

// Release ends the current gesture. A rubber band selects every object it
// activated; a drag commits the pending snap preview. A release while idle
// does nothing.
func (s *Scene) Release() {
	if s.endGesture() {
		s.inv.Invalidate()
	}
}

// endGesture finishes a drag or rubber band without requesting a redraw
// and reports whether one was in progress.
func (s *Scene) endGesture() bool {
	switch s.mode {
	case RubberBand:
		for _, o := range s.objects {
			if o.status == Active {
				s.sel.Add(o)
			}
		}
		s.band = band{}
		s.hooks.OnSelect(s.sel.Len())
	case Dragging:
		s.sel.Release()
		s.hooks.OnCommit(s.sel.Len())
	default:
		return false
	}
	s.mode = Idle
	return true
}

// Leave deactivates every object. A drag in progress is committed and a
// rubber band is dropped without selecting anything.
func (s *Scene) Leave() {
	for _, o := range s.objects {
		o.Deactivate()
	}
	switch s.mode {
	case Dragging:
		s.Release()
	case RubberBand:
		s.band = band{}
		s.mode = Idle
		s.inv.Invalidate()
	default:
		s.invalidateIfDirty()
	}
}

func (s *Scene) hitTest(x, y float64) *Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Hit(x, y) {
			return s.objects[i]
		}
	}
	return nil
}

func (s *Scene) invalidateIfDirty() {
	if slices.ContainsFunc(s.objects, (*Object).Dirty) {
		s.inv.Invalidate()
	}
}
