package scene

import "slices"

// Selection is an ordered set of objects moved and resized as one unit.
// It holds references into the scene's object list and never owns them.
type Selection struct {
	objects []*Object
	active  *Object
}

// Len returns the number of members.
func (s *Selection) Len() int { return len(s.objects) }

// Contains reports whether obj is a member.
func (s *Selection) Contains(obj *Object) bool { return slices.Contains(s.objects, obj) }

// Objects returns the members in insertion order.
func (s *Selection) Objects() []*Object { return slices.Clone(s.objects) }

// Active returns the most recently pressed member, or nil.
func (s *Selection) Active() *Object { return s.active }

// Select makes obj the only member unless it is already selected.
func (s *Selection) Select(obj *Object) {
	if s.Contains(obj) {
		return
	}
	s.Clear()
	s.Add(obj)
}

// Add appends obj and marks it Selected.
func (s *Selection) Add(obj *Object) {
	if !s.Contains(obj) {
		s.objects = append(s.objects, obj)
	}
	obj.Select()
}

// Remove drops obj and marks it Normal. Non-members are ignored.
func (s *Selection) Remove(obj *Object) {
	i := slices.Index(s.objects, obj)
	if i < 0 {
		return
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	if s.active == obj {
		s.active = nil
	}
	obj.Deselect()
}

// Toggle removes obj if it is a member and adds it otherwise.
func (s *Selection) Toggle(obj *Object) {
	if s.Contains(obj) {
		s.Remove(obj)
		return
	}
	s.Add(obj)
}

// Press starts a group drag. Every member is pressed at (x, y) and then
// given the primary's anchor, so one handle resizes the whole group.
func (s *Selection) Press(primary *Object, x, y float64) {
	primary.OnPress(x, y)
	s.active = primary
	for _, o := range s.objects {
		if o == primary {
			continue
		}
		o.OnPress(x, y)
		o.anchor = primary.anchor
	}
}

// Motion forwards the pointer to every member and reports whether any of
// them needs a redraw.
func (s *Selection) Motion(x, y float64) bool {
	dirty := false
	for _, o := range s.objects {
		o.OnMotion(x, y)
		dirty = dirty || o.dirty
	}
	return dirty
}

// Release commits every member's hug.
func (s *Selection) Release() {
	for _, o := range s.objects {
		o.OnRelease()
	}
}

// BoundingBox returns the union of the members' extents.
// The selection must not be empty; an empty selection yields a zero Rect.
func (s *Selection) BoundingBox() Rect {
	if len(s.objects) == 0 {
		return Rect{}
	}
	box := s.objects[0].rect
	for _, o := range s.objects[1:] {
		box = box.Union(o.rect)
	}
	return box
}

// Hug sets the same preview delta on every member.
func (s *Selection) Hug(dx, dy float64) {
	for _, o := range s.objects {
		o.Hug(dx, dy)
	}
}

// Clear deselects and removes every member.
func (s *Selection) Clear() {
	for _, o := range slices.Clone(s.objects) {
		s.Remove(o)
	}
}
