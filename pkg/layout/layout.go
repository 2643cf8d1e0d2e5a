package layout

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const (
	// DefaultKeySize is the width and height of a key that declares none.
	DefaultKeySize = 2.0

	// DefaultScale is the number of device units per layout unit.
	DefaultScale = 30.0
)

// Layout is a parsed layout document.
type Layout struct {
	Name       string
	Version    string
	Keyboard   Keyboard
	Extensions []Extension

	// bare is set when the document root was <keyboard>.
	bare bool
}

// Extension is an additional keyboard placed next to the main one.
type Extension struct {
	Name      string
	Placement Placement
	Keyboard  Keyboard
}

// Placement is where an extension sits relative to the main keyboard.
type Placement string

// Placements accepted by Florence.
const (
	PlaceLeft  Placement = "left"
	PlaceRight Placement = "right"
	PlaceUp    Placement = "up"
	PlaceDown  Placement = "down"
)

// Keyboard is a canvas of keys. Width and Height are in layout units.
type Keyboard struct {
	Width  float64
	Height float64
	Keys   []*Key
}

// Key is one key of a keyboard. XPos and YPos are the key center.
type Key struct {
	ID      uuid.UUID
	Binding Binding
	XPos    float64
	YPos    float64
	Width   float64
	Height  float64
	Label   string
	Class   string
}

// Binding is what pressing a key does: a [Code] or an [Action].
type Binding interface {
	fmt.Stringer
	isBinding()
}

// Code sends a hardware key code.
type Code struct {
	Value int
}

func (c Code) String() string { return strconv.Itoa(c.Value) }
func (Code) isBinding()       {}

// Action runs a Florence command such as "close" or "config".
type Action struct {
	Command string
}

func (a Action) String() string { return a.Command }
func (Action) isBinding()       {}

// BindingFromLabel interprets an object label typed in the editor: an
// integer in 0..255 becomes a Code, anything else an Action.
func BindingFromLabel(label string) Binding {
	if v, err := strconv.Atoi(label); err == nil && v >= 0 && v <= 255 {
		return Code{Value: v}
	}
	return Action{Command: label}
}

// DisplayLabel returns the text shown on the key: its label if set,
// otherwise the binding.
func (k *Key) DisplayLabel() string {
	if k.Label != "" {
		return k.Label
	}
	if k.Binding == nil {
		return ""
	}
	return k.Binding.String()
}

// Target returns the keyboard named by ext: the main keyboard for "", or
// the extension with that name.
func (l *Layout) Target(ext string) (*Keyboard, bool) {
	if ext == "" {
		return &l.Keyboard, true
	}
	for i := range l.Extensions {
		if l.Extensions[i].Name == ext {
			return &l.Extensions[i].Keyboard, true
		}
	}
	return nil, false
}

// KeyCount returns the number of keys across all keyboards.
func (l *Layout) KeyCount() int {
	n := len(l.Keyboard.Keys)
	for _, e := range l.Extensions {
		n += len(e.Keyboard.Keys)
	}
	return n
}

// keyID derives a stable identity for the i-th key of a keyboard so that
// re-reading an unchanged document yields the same IDs.
func keyID(keyboard string, i int, b Binding) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%s/%d/%s", keyboard, i, b))
}

// ObjectID returns the key identity as a string for drawers.
func (k *Key) ObjectID() string { return k.ID.String() }

// KeyClass returns the Florence key class.
func (k *Key) KeyClass() string { return k.Class }
