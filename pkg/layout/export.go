package layout

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/keyedit/pkg/errors"
)

// Export is the JSON form of a keyboard in device units.
type Export struct {
	Name   string      `json:"name,omitempty"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Keys   []ExportKey `json:"keys"`
}

// ExportKey is one key of an Export. X and Y are the top-left corner.
type ExportKey struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Code    *int    `json:"code,omitempty"`
	Command string  `json:"command,omitempty"`
	Class   string  `json:"class,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Export converts the keyboard to device units.
func (kb *Keyboard) Export(name string, scale float64) Export {
	w, h := kb.Canvas(scale)
	out := Export{Name: name, Width: w, Height: h, Keys: make([]ExportKey, 0, len(kb.Keys))}
	for _, k := range kb.Keys {
		ek := ExportKey{
			ID:     k.ID.String(),
			Label:  k.DisplayLabel(),
			Class:  k.Class,
			X:      (k.XPos - k.Width/2) * scale,
			Y:      (k.YPos - k.Height/2) * scale,
			Width:  k.Width * scale,
			Height: k.Height * scale,
		}
		switch b := k.Binding.(type) {
		case Code:
			v := b.Value
			ek.Code = &v
		case Action:
			ek.Command = b.Command
		}
		out.Keys = append(out.Keys, ek)
	}
	return out
}

// WriteJSON writes the keyboard export as indented JSON.
func (kb *Keyboard) WriteJSON(w io.Writer, name string, scale float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(kb.Export(name, scale)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}
