package scene

import "math"

// Status is the interaction state of an object.
type Status int

// Object statuses.
const (
	Normal Status = iota
	Active
	Selected
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case Active:
		return "active"
	case Selected:
		return "selected"
	}
	return "unknown"
}

// Object is a positioned, resizable rectangle on the canvas.
//
// Geometry is in device units. Status only changes through Activate,
// Deactivate, Select and Deselect. Domain data (for example a keyboard key
// binding) travels in Payload and is never interpreted by the scene.
type Object struct {
	Payload any

	label  string
	rect   Rect
	status Status
	anchor Anchor
	dirty  bool

	// press state
	moving       bool
	pressed      Rect
	offX, offY   float64
	hugDX, hugDY float64
}

// NewObject creates a Normal object. Sizes below MinSize are raised to it.
func NewObject(label string, x, y, w, h float64) *Object {
	return &Object{
		label: label,
		rect:  Rect{X: x, Y: y, W: math.Max(w, MinSize), H: math.Max(h, MinSize)},
	}
}

// Label returns the text shown on the object.
func (o *Object) Label() string { return o.label }

// SetLabel replaces the label.
func (o *Object) SetLabel(label string) {
	if o.label != label {
		o.label = label
		o.dirty = true
	}
}

// Rect returns the committed geometry.
func (o *Object) Rect() Rect { return o.rect }

// SetRect replaces the committed geometry, raising sizes below MinSize.
func (o *Object) SetRect(r Rect) {
	r.W = math.Max(r.W, MinSize)
	r.H = math.Max(r.H, MinSize)
	if r != o.rect {
		o.rect = r
		o.dirty = true
	}
}

// PreviewRect returns the geometry the object would have if the pending
// hug were committed now.
func (o *Object) PreviewRect() Rect {
	return o.anchor.apply(o.rect, o.hugDX, o.hugDY)
}

// Status returns the interaction state.
func (o *Object) Status() Status { return o.status }

// Anchor returns the anchor chosen by the last press.
func (o *Object) Anchor() Anchor { return o.anchor }

// DragOffset returns the pointer position relative to the top-left corner
// recorded by the last press.
func (o *Object) DragOffset() (float64, float64) { return o.offX, o.offY }

// HugDelta returns the uncommitted preview delta.
func (o *Object) HugDelta() (float64, float64) { return o.hugDX, o.hugDY }

// Hugging reports whether a non-zero preview delta is pending.
func (o *Object) Hugging() bool { return o.hugDX != 0 || o.hugDY != 0 }

// Moving reports whether the object is between OnPress and OnRelease.
func (o *Object) Moving() bool { return o.moving }

// Dirty reports whether visible state changed since the last ClearDirty.
func (o *Object) Dirty() bool { return o.dirty }

// ClearDirty marks the object as drawn.
func (o *Object) ClearDirty() { o.dirty = false }

// Hit reports whether (x, y) lies inside the object.
func (o *Object) Hit(x, y float64) bool { return o.rect.Contains(x, y) }

// Collides reports whether the object overlaps the drag box spanned by the
// corners (ax, ay) and (bx, by). The corners may be given in any order.
func (o *Object) Collides(ax, ay, bx, by float64) bool {
	box := RectFromCorners(ax, ay, bx, by)
	return o.rect.overlapsX(box) && o.rect.overlapsY(box)
}

// Activate promotes a Normal object to Active.
func (o *Object) Activate() {
	if o.status == Normal {
		o.status = Active
		o.dirty = true
	}
}

// Deactivate demotes an Active object to Normal. Selected objects are kept.
func (o *Object) Deactivate() {
	if o.status == Active {
		o.status = Normal
		o.dirty = true
	}
}

// Select marks the object Selected regardless of its previous status.
func (o *Object) Select() {
	if o.status != Selected {
		o.status = Selected
		o.dirty = true
	}
}

// Deselect returns the object to Normal.
func (o *Object) Deselect() {
	if o.status != Normal {
		o.status = Normal
		o.dirty = true
	}
}

// OnPress starts a drag at (x, y) and resolves the anchor from the
// position of the pointer inside the object.
func (o *Object) OnPress(x, y float64) {
	o.moving = true
	o.pressed = o.rect
	o.offX = x - o.rect.X
	o.offY = y - o.rect.Y
	o.anchor = anchorAt(o.offX, o.offY, o.rect.W, o.rect.H)
}

// OnMotion updates the geometry for a pointer at (x, y). It does nothing
// unless the object is being dragged.
func (o *Object) OnMotion(x, y float64) {
	if !o.moving {
		return
	}
	dx := x - (o.pressed.X + o.offX)
	dy := y - (o.pressed.Y + o.offY)
	if next := o.anchor.apply(o.pressed, dx, dy); next != o.rect {
		o.rect = next
		o.dirty = true
	}
}

// OnRelease ends the drag and commits the pending hug through the anchor.
func (o *Object) OnRelease() {
	o.moving = false
	if !o.Hugging() {
		return
	}
	o.rect = o.anchor.apply(o.rect, o.hugDX, o.hugDY)
	o.hugDX, o.hugDY = 0, 0
	o.dirty = true
}

// Hug sets the preview delta shown while dragging.
func (o *Object) Hug(dx, dy float64) {
	if dx != o.hugDX || dy != o.hugDY {
		o.hugDX, o.hugDY = dx, dy
		o.dirty = true
	}
}

// View captures what a Drawer needs to render the object.
func (o *Object) View() ObjectView {
	return ObjectView{
		Label:   o.label,
		Rect:    o.rect,
		Preview: o.PreviewRect(),
		Hugging: o.Hugging(),
		Moving:  o.moving,
		Status:  o.status,
		Anchor:  o.anchor,
		Handles: Handles(o.rect),
		Payload: o.Payload,
	}
}
