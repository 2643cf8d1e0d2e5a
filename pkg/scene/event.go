package scene

// Modifier is a bit set of the modifier keys held during a pointer event.
// The host decides which physical keys map to which bit.
type Modifier uint8

const (
	// ModToggle adds or removes the pressed object from the selection
	// instead of replacing it.
	ModToggle Modifier = 1 << iota

	// ModSnap enables grid, edge and boundary snapping while dragging.
	ModSnap
)

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

// Pointer is a pointer position in device units plus the held modifiers.
type Pointer struct {
	X, Y float64
	Mods Modifier
}

// Handler receives pointer events from a host event loop.
// Calls must not overlap; the host delivers one event at a time.
type Handler interface {
	Press(p Pointer)
	Motion(p Pointer)
	Release()
	Leave()
}

// Invalidator is notified when the scene needs to be redrawn.
// A scene calls Invalidate at most once per event.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() { f() }

type nopInvalidator struct{}

func (nopInvalidator) Invalidate() {}
