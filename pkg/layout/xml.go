package layout

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/matzehuels/keyedit/pkg/errors"
)

type xmlLayout struct {
	XMLName      xml.Name       `xml:"layout"`
	Informations *xmlInfo       `xml:"informations"`
	Keyboard     xmlKeyboard    `xml:"keyboard"`
	Extensions   []xmlExtension `xml:"extension"`
}

type xmlInfo struct {
	Name    string `xml:"name"`
	Version string `xml:"florence_version,omitempty"`
}

type xmlExtension struct {
	Name      string      `xml:"name"`
	Placement string      `xml:"placement"`
	Keyboard  xmlKeyboard `xml:"keyboard"`
}

type xmlKeyboard struct {
	XMLName xml.Name `xml:"keyboard"`
	Width   *float64 `xml:"width"`
	Height  *float64 `xml:"height"`
	Keys    []xmlKey `xml:"key"`
}

type xmlKey struct {
	Code   *int       `xml:"code"`
	Action *xmlAction `xml:"action"`
	XPos   *float64   `xml:"xpos"`
	YPos   *float64   `xml:"ypos"`
	Width  *float64   `xml:"width"`
	Height *float64   `xml:"height"`
	Label  string     `xml:"label,omitempty"`
	Class  string     `xml:"class,omitempty"`
}

type xmlAction struct {
	Command string `xml:"command"`
}

// =============================================================================
// Reading
// =============================================================================

// ReadFile reads and validates the layout document at path.
func ReadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open layout %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open layout %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes and validates a layout document. The root element may be
// <layout> or <keyboard>.
func Read(r io.Reader) (*Layout, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "empty document")
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		var l *Layout
		switch start.Name.Local {
		case "layout":
			var doc xmlLayout
			if err := dec.DecodeElement(&doc, &start); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode")
			}
			l, err = fromXMLLayout(doc)
		case "keyboard":
			var kb xmlKeyboard
			if err := dec.DecodeElement(&kb, &start); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode")
			}
			l = &Layout{bare: true}
			l.Keyboard, err = fromXMLKeyboard("", kb)
		default:
			return nil, errors.New(errors.ErrCodeInvalidLayout, "unexpected root element <%s>", start.Name.Local)
		}
		if err != nil {
			return nil, err
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		return l, nil
	}
}

func fromXMLLayout(doc xmlLayout) (*Layout, error) {
	l := &Layout{}
	if doc.Informations != nil {
		l.Name = doc.Informations.Name
		l.Version = doc.Informations.Version
	}
	kb, err := fromXMLKeyboard("", doc.Keyboard)
	if err != nil {
		return nil, err
	}
	l.Keyboard = kb
	for _, x := range doc.Extensions {
		kb, err := fromXMLKeyboard(x.Name, x.Keyboard)
		if err != nil {
			return nil, err
		}
		l.Extensions = append(l.Extensions, Extension{
			Name:      x.Name,
			Placement: Placement(x.Placement),
			Keyboard:  kb,
		})
	}
	return l, nil
}

func fromXMLKeyboard(name string, x xmlKeyboard) (Keyboard, error) {
	where := "keyboard"
	if name != "" {
		where = "extension " + name
	}
	if x.Width == nil || x.Height == nil {
		return Keyboard{}, errors.New(errors.ErrCodeInvalidLayout, "%s: missing width or height", where)
	}
	kb := Keyboard{Width: *x.Width, Height: *x.Height}
	for i, xk := range x.Keys {
		var b Binding
		switch {
		case xk.Code != nil:
			b = Code{Value: *xk.Code}
		case xk.Action != nil:
			b = Action{Command: xk.Action.Command}
		default:
			return Keyboard{}, errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has neither code nor action", where, i)
		}
		if xk.XPos == nil || xk.YPos == nil {
			return Keyboard{}, errors.New(errors.ErrCodeInvalidLayout, "%s: key %d has no position", where, i)
		}
		k := &Key{
			ID:      keyID(name, i, b),
			Binding: b,
			XPos:    *xk.XPos,
			YPos:    *xk.YPos,
			Width:   DefaultKeySize,
			Height:  DefaultKeySize,
			Label:   xk.Label,
			Class:   xk.Class,
		}
		if xk.Width != nil {
			k.Width = *xk.Width
		}
		if xk.Height != nil {
			k.Height = *xk.Height
		}
		kb.Keys = append(kb.Keys, k)
	}
	return kb, nil
}

// =============================================================================
// Writing
// =============================================================================

// WriteFile writes l to path, replacing any existing file.
func WriteFile(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Write(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes l as an indented XML document with the same root form it
// was read with.
func Write(w io.Writer, l *Layout) error {
	var doc any
	if l.bare {
		doc = toXMLKeyboard(l.Keyboard)
	} else {
		x := xmlLayout{Keyboard: toXMLKeyboard(l.Keyboard)}
		if l.Name != "" || l.Version != "" {
			x.Informations = &xmlInfo{Name: l.Name, Version: l.Version}
		}
		for _, e := range l.Extensions {
			x.Extensions = append(x.Extensions, xmlExtension{
				Name:      e.Name,
				Placement: string(e.Placement),
				Keyboard:  toXMLKeyboard(e.Keyboard),
			})
		}
		doc = x
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write")
	}
	return nil
}

func toXMLKeyboard(kb Keyboard) xmlKeyboard {
	x := xmlKeyboard{Width: ptr(kb.Width), Height: ptr(kb.Height)}
	for _, k := range kb.Keys {
		xk := xmlKey{
			XPos:  ptr(k.XPos),
			YPos:  ptr(k.YPos),
			Label: k.Label,
			Class: k.Class,
		}
		switch b := k.Binding.(type) {
		case Code:
			xk.Code = ptr(b.Value)
		case Action:
			xk.Action = &xmlAction{Command: b.Command}
		}
		if k.Width != DefaultKeySize {
			xk.Width = ptr(k.Width)
		}
		if k.Height != DefaultKeySize {
			xk.Height = ptr(k.Height)
		}
		x.Keys = append(x.Keys, xk)
	}
	return x
}

func ptr[T any](v T) *T { return &v }
