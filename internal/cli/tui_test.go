package cli

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/keyedit/pkg/config"
	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/layout"
	"github.com/matzehuels/keyedit/pkg/scene"
)

// newTestEditor opens the compact layout with a 40x12 terminal. With the
// default scale of 30 and 10x20 cells, Esc covers device (0,0)-(60,60),
// which is columns 0-5 and rows 0-2 of the canvas (screen rows 1-3).
func newTestEditor(t *testing.T) *editor {
	t.Helper()
	path := writeLayout(t)
	l, err := layout.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	e, err := newEditor(config.Default(), l, path, "", nil, withPlainCanvas())
	if err != nil {
		t.Fatal(err)
	}
	e.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	return e
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func findObject(t *testing.T, e *editor, label string) *scene.Object {
	t.Helper()
	for _, o := range e.scene.Objects() {
		if o.Label() == label {
			return o
		}
	}
	t.Fatalf("no object labelled %q", label)
	return nil
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEditorUnknownExtension(t *testing.T) {
	l, err := layout.ReadFile(writeLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = newEditor(config.Default(), l, "x.xml", "nope", nil)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("newEditor() error = %v, want %s", err, errors.ErrCodeNotFound)
	}
}

func TestEditorView(t *testing.T) {
	e := newTestEditor(t)
	view := stripANSI(e.View())

	for _, want := range []string{"keyedit", "compact", "3 keys", "0 selected", "idle", "23", "ctrl+s save"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, want 12", lines)
	}
}

func TestEditorDragAndSave(t *testing.T) {
	e := newTestEditor(t)

	e.Update(mouse(tea.MouseActionPress, 2, 2))
	if e.scene.Mode() != scene.Dragging {
		t.Fatalf("mode after press = %v, want dragging", e.scene.Mode())
	}
	e.Update(mouse(tea.MouseActionMotion, 4, 2))
	e.Update(mouse(tea.MouseActionRelease, 4, 2))

	if got := findObject(t, e, "Esc").Rect(); got.X != 20 || got.Y != 0 {
		t.Errorf("Esc rect = %+v, want moved to x=20", got)
	}
	if !e.unsaved {
		t.Fatal("drag should mark the layout modified")
	}
	if !strings.Contains(stripANSI(e.View()), "modified") {
		t.Error("header should show the modified marker")
	}

	e.Update(key("ctrl+s"))
	if e.unsaved {
		t.Fatalf("save failed: %s", e.status)
	}

	saved, err := layout.ReadFile(e.path)
	if err != nil {
		t.Fatal(err)
	}
	var esc *layout.Key
	for _, k := range saved.Keyboard.Keys {
		if k.Label == "Esc" {
			esc = k
		}
	}
	if esc == nil {
		t.Fatal("saved layout lost the Esc key")
	}
	if want := 50.0 / 30.0; math.Abs(esc.XPos-want) > 1e-9 || esc.YPos != 1 {
		t.Errorf("saved Esc at (%v, %v), want (%v, 1)", esc.XPos, esc.YPos, want)
	}
	if len(saved.Keyboard.Keys) != 3 || len(saved.Extensions) != 1 {
		t.Errorf("saved %d keys and %d extensions, want 3 and 1", len(saved.Keyboard.Keys), len(saved.Extensions))
	}
}

func TestEditorClickDoesNotModify(t *testing.T) {
	e := newTestEditor(t)

	e.Update(mouse(tea.MouseActionPress, 2, 2))
	e.Update(mouse(tea.MouseActionRelease, 2, 2))

	if e.unsaved {
		t.Error("a click without motion should not mark the layout modified")
	}
	if e.scene.Selection().Len() != 1 {
		t.Errorf("selection = %d, want 1", e.scene.Selection().Len())
	}
}

func TestEditorRubberBandLeave(t *testing.T) {
	e := newTestEditor(t)

	e.Update(mouse(tea.MouseActionPress, 30, 8))
	if e.scene.Mode() != scene.RubberBand {
		t.Fatalf("mode = %v, want rubber-band", e.scene.Mode())
	}
	if !strings.Contains(stripANSI(e.View()), "rubber-band") {
		t.Error("header should show the rubber-band mode")
	}

	// row 0 is the header, outside the canvas
	e.Update(mouse(tea.MouseActionMotion, 10, 0))
	if e.scene.Mode() != scene.Idle {
		t.Errorf("mode after leaving = %v, want idle", e.scene.Mode())
	}
}

func TestEditorBlurCommitsDrag(t *testing.T) {
	e := newTestEditor(t)

	e.Update(mouse(tea.MouseActionPress, 2, 2))
	e.Update(mouse(tea.MouseActionMotion, 3, 2))
	e.Update(tea.BlurMsg{})

	if e.scene.Mode() != scene.Idle {
		t.Errorf("mode = %v, want idle", e.scene.Mode())
	}
	if !e.unsaved {
		t.Error("a drag ended by focus loss should still mark the layout modified")
	}
}

func TestEditorLeaveClearsHover(t *testing.T) {
	tests := []struct {
		name  string
		leave tea.Msg
	}{
		{"pointer leaves canvas", mouse(tea.MouseActionMotion, 39, 11)},
		{"focus lost", tea.BlurMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			esc := findObject(t, e, "Esc")

			e.Update(mouse(tea.MouseActionMotion, 2, 2))
			if esc.Status() != scene.Active {
				t.Fatalf("status after hover = %v, want active", esc.Status())
			}
			e.needsDraw = false

			e.Update(tt.leave)
			if esc.Status() != scene.Normal {
				t.Errorf("status after leaving = %v, want normal", esc.Status())
			}
			if !e.needsDraw {
				t.Error("dropping the highlight should request a redraw")
			}
			if e.unsaved {
				t.Error("leaving while idle should not mark the layout modified")
			}
		})
	}
}

func TestEditorEscapeDuringDrag(t *testing.T) {
	e := newTestEditor(t)
	esc := findObject(t, e, "Esc")

	e.Update(mouse(tea.MouseActionPress, 3, 2))
	e.Update(mouse(tea.MouseActionMotion, 5, 2))
	e.Update(key("esc"))
	if n := e.scene.Selection().Len(); n != 1 {
		t.Fatalf("selection during drag = %d, want 1", n)
	}
	e.Update(mouse(tea.MouseActionRelease, 5, 2))

	if e.scene.Mode() != scene.Idle {
		t.Errorf("mode = %v, want idle", e.scene.Mode())
	}
	if esc.Moving() {
		t.Error("released key is still moving")
	}
	if x := esc.Rect().X; x != 20 {
		t.Errorf("Esc x = %v, want 20", x)
	}

	e.Update(key("esc"))
	if n := e.scene.Selection().Len(); n != 0 {
		t.Errorf("selection after idle esc = %d, want 0", n)
	}
}

func TestEditorKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, e *editor)
	}{
		{
			name: "select all",
			keys: []string{"a"},
			check: func(t *testing.T, e *editor) {
				if n := e.scene.Selection().Len(); n != 3 {
					t.Errorf("selection = %d, want 3", n)
				}
			},
		},
		{
			name: "escape clears",
			keys: []string{"a", "esc"},
			check: func(t *testing.T, e *editor) {
				if n := e.scene.Selection().Len(); n != 0 {
					t.Errorf("selection = %d, want 0", n)
				}
			},
		},
		{
			name: "delete selection",
			keys: []string{"a", "delete"},
			check: func(t *testing.T, e *editor) {
				if n := len(e.scene.Objects()); n != 0 {
					t.Errorf("objects = %d, want 0", n)
				}
				if !e.unsaved || e.status != "deleted 3 keys" {
					t.Errorf("unsaved = %v, status = %q", e.unsaved, e.status)
				}
			},
		},
		{
			name: "delete without selection",
			keys: []string{"x"},
			check: func(t *testing.T, e *editor) {
				if n := len(e.scene.Objects()); n != 3 || e.unsaved {
					t.Errorf("objects = %d, unsaved = %v", n, e.unsaved)
				}
			},
		},
		{
			name: "nudge right by a cell",
			keys: []string{"a", "right"},
			check: func(t *testing.T, e *editor) {
				if x := findObject(t, e, "Esc").Rect().X; x != 10 {
					t.Errorf("Esc x = %v, want 10", x)
				}
				if !e.unsaved {
					t.Error("nudge should mark the layout modified")
				}
			},
		},
		{
			name: "new key",
			keys: []string{"n"},
			check: func(t *testing.T, e *editor) {
				o := findObject(t, e, "new")
				if o.Status() != scene.Selected {
					t.Errorf("new key status = %v, want selected", o.Status())
				}
				if r := o.Rect(); r.W != scene.DefaultObjectSize || r.X != 0 {
					t.Errorf("new key rect = %+v", r)
				}
			},
		},
		{
			name: "toggle grid",
			keys: []string{"g"},
			check: func(t *testing.T, e *editor) {
				if e.canvas.ShowGrid() {
					t.Error("grid should be hidden")
				}
			},
		},
		{
			name: "snap lock",
			keys: []string{"s"},
			check: func(t *testing.T, e *editor) {
				if !e.snapLock || e.status != "snap lock on" {
					t.Errorf("snapLock = %v, status = %q", e.snapLock, e.status)
				}
				if !e.modifiers(tea.MouseMsg{}).Has(scene.ModSnap) {
					t.Error("snap lock should add the snap modifier")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			for _, k := range tt.keys {
				e.Update(key(k))
			}
			tt.check(t, e)
		})
	}
}

func TestEditorQuit(t *testing.T) {
	e := newTestEditor(t)
	if _, cmd := e.Update(key("q")); !isQuit(cmd) {
		t.Fatal("q should quit a clean editor")
	}

	e = newTestEditor(t)
	e.Update(key("a"))
	e.Update(key("right"))
	if _, cmd := e.Update(key("q")); isQuit(cmd) {
		t.Fatal("first q with unsaved changes should only warn")
	}
	if !strings.Contains(e.status, "unsaved changes") {
		t.Errorf("status = %q", e.status)
	}
	if _, cmd := e.Update(key("q")); !isQuit(cmd) {
		t.Error("second q should quit")
	}
}

func TestEditorModifiers(t *testing.T) {
	e := newTestEditor(t)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want scene.Modifier
	}{
		{"none", tea.MouseMsg{}, 0},
		{"alt snaps", tea.MouseMsg{Alt: true}, scene.ModSnap},
		{"ctrl toggles", tea.MouseMsg{Ctrl: true}, scene.ModToggle},
		{"both", tea.MouseMsg{Alt: true, Ctrl: true}, scene.ModSnap | scene.ModToggle},
		{"shift unused", tea.MouseMsg{Shift: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.modifiers(tt.msg); got != tt.want {
				t.Errorf("modifiers() = %v, want %v", got, tt.want)
			}
		})
	}
}
