package layout

import (
	"github.com/matzehuels/keyedit/pkg/errors"
)

// keyClasses are the key classes Florence knows how to draw.
var keyClasses = map[string]bool{
	"default":    true,
	"return":     true,
	"backspace":  true,
	"tab":        true,
	"shift":      true,
	"capslock":   true,
	"leftarrow":  true,
	"rightarrow": true,
	"uparrow":    true,
	"downarrow":  true,
	"home":       true,
	"pgup":       true,
	"pgdown":     true,
}

var placements = map[Placement]bool{
	PlaceLeft: true, PlaceRight: true, PlaceUp: true, PlaceDown: true,
}

// Validate checks every keyboard of the layout.
func (l *Layout) Validate() error {
	if err := l.Keyboard.validate("keyboard"); err != nil {
		return err
	}
	seen := make(map[string]bool, len(l.Extensions))
	for _, e := range l.Extensions {
		where := "extension " + e.Name
		if e.Name == "" {
			return errors.New(errors.ErrCodeInvalidLayout, "extension without a name")
		}
		if seen[e.Name] {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate %s", where)
		}
		seen[e.Name] = true
		if !placements[e.Placement] {
			return errors.New(errors.ErrCodeInvalidLayout, "%s: unknown placement %q", where, e.Placement)
		}
		if err := e.Keyboard.validate(where); err != nil {
			return err
		}
	}
	return nil
}

func (kb *Keyboard) validate(where string) error {
	if kb.Width <= 0 || kb.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "%s: size must be positive", where)
	}
	for i, k := range kb.Keys {
		if k.Width <= 0 || k.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has a non-positive size", where, i)
		}
		switch b := k.Binding.(type) {
		case Code:
			if b.Value < 0 || b.Value > 255 {
				return errors.New(errors.ErrCodeInvalidLayout, "%s: key %d code %d out of range", where, i, b.Value)
			}
		case Action:
			if b.Command == "" {
				return errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has an empty action", where, i)
			}
		default:
			return errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has no binding", where, i)
		}
		if k.Label != "" {
			if err := errors.ValidateLabel(k.Label); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidLayout, err, "%s: key %d", where, i)
			}
		}
		if k.Class != "" && !keyClasses[k.Class] {
			return errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has unknown class %q", where, i, k.Class)
		}
	}
	return nil
}
