package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyedit/pkg/config"
	"github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/layout"
	"github.com/matzehuels/keyedit/pkg/observability"
	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/render/term"
	"github.com/matzehuels/keyedit/pkg/scene"
)

// Rows taken by the header and footer around the canvas.
const (
	headerRows = 1
	footerRows = 2
)

// =============================================================================
// Editor Model
// =============================================================================

// editor is the bubbletea model of the interactive layout editor. It feeds
// mouse events to a scene and draws the scene on a terminal canvas.
type editor struct {
	path string
	doc  *layout.Layout
	kb   *layout.Keyboard
	ext  string

	scene  *scene.Scene
	canvas *term.Canvas
	scale  float64

	snapKey   string
	toggleKey string
	snapLock  bool

	stepX, stepY float64
	cellW, cellH float64
	lastX, lastY float64

	pressed   []scene.Rect
	unsaved   bool
	quitArmed bool
	status    string

	needsDraw bool
	view      string
}

// editorOption configures an editor.
type editorOption func(*editor, *[]term.Option)

// withPlainCanvas disables colours on the canvas.
func withPlainCanvas() editorOption {
	return func(_ *editor, opts *[]term.Option) { *opts = append(*opts, term.WithPlain()) }
}

// newEditor builds an editor for the keyboard ext of l ("" for the main
// keyboard). Saving writes l back to path.
func newEditor(cfg config.Config, l *layout.Layout, path, ext string, logger *log.Logger, opts ...editorOption) (*editor, error) {
	kb, ok := l.Target(ext)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "layout has no extension %q", ext)
	}

	e := &editor{
		path:      path,
		doc:       l,
		kb:        kb,
		ext:       ext,
		scale:     cfg.Layout.Scale,
		snapKey:   cfg.Snap.Modifier,
		toggleKey: cfg.Snap.Toggle,
		stepX:     cfg.Grid.X,
		stepY:     cfg.Grid.Y,
		cellW:     cfg.Terminal.CellWidth,
		cellH:     cfg.Terminal.CellHeight,
		needsDraw: true,
	}
	if e.stepX <= 0 {
		e.stepX = e.cellW
	}
	if e.stepY <= 0 {
		e.stepY = e.cellH
	}

	var hooks observability.SceneHooks = observability.NoopSceneHooks{}
	if logger != nil {
		hooks = observability.NewLogHooks(logger)
	}
	e.scene = kb.Scene(e.scale,
		scene.WithGrid(cfg.Grid.X, cfg.Grid.Y),
		scene.WithTolerance(cfg.Snap.Tolerance),
		scene.WithInvalidator(scene.InvalidatorFunc(func() { e.needsDraw = true })),
		scene.WithHooks(hooks),
	)

	palette := styles.Classic
	if cfg.Render.Style == "night" {
		palette = styles.Night
	}
	topts := []term.Option{term.WithPalette(palette), term.WithGrid(cfg.Render.ShowGrid)}
	for _, opt := range opts {
		opt(e, &topts)
	}
	w, h := kb.Canvas(e.scale)
	e.canvas = term.NewCanvas(int(w/e.cellW)+1, int(h/e.cellH)+1, e.cellW, e.cellH, topts...)
	return e, nil
}

func (e *editor) Init() tea.Cmd {
	return nil
}

func (e *editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.canvas.Resize(msg.Width, msg.Height-headerRows-footerRows)
		e.needsDraw = true

	case tea.MouseMsg:
		e.handleMouse(msg)

	case tea.BlurMsg:
		e.leave()

	case tea.KeyMsg:
		return e, e.handleKey(msg)
	}
	return e, nil
}

// =============================================================================
// Mouse
// =============================================================================

func (e *editor) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerRows
	cols, rows := e.canvas.Size()
	inside := col >= 0 && col < cols && row >= 0 && row < rows

	x, y := e.canvas.ToDevice(col, row)
	p := scene.Pointer{X: x, Y: y, Mods: e.modifiers(msg)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		e.pressed = e.geometry()
		e.scene.Press(p)
		e.lastX, e.lastY = x, y

	case tea.MouseActionMotion:
		if !inside {
			e.leave()
			return
		}
		e.lastX, e.lastY = x, y
		e.scene.Motion(p)

	case tea.MouseActionRelease:
		if e.scene.Mode() == scene.Idle {
			return
		}
		e.scene.Release()
		e.checkEdited()
	}
}

// leave drops the hover highlight and ends a gesture in progress when the
// pointer leaves the canvas.
func (e *editor) leave() {
	gesture := e.scene.Mode() != scene.Idle
	e.scene.Leave()
	if gesture {
		e.checkEdited()
	}
}

// modifiers maps the held keys to scene modifiers using the configured
// key names.
func (e *editor) modifiers(msg tea.MouseMsg) scene.Modifier {
	var m scene.Modifier
	if e.snapLock || held(msg, e.snapKey) {
		m |= scene.ModSnap
	}
	if held(msg, e.toggleKey) {
		m |= scene.ModToggle
	}
	return m
}

func held(msg tea.MouseMsg, name string) bool {
	switch name {
	case config.ModAlt:
		return msg.Alt
	case config.ModCtrl:
		return msg.Ctrl
	case config.ModShift:
		return msg.Shift
	}
	return false
}

func (e *editor) geometry() []scene.Rect {
	objs := e.scene.Objects()
	rects := make([]scene.Rect, len(objs))
	for i, o := range objs {
		rects[i] = o.Rect()
	}
	return rects
}

// checkEdited marks the document modified if a gesture changed any key
// geometry since the last press.
func (e *editor) checkEdited() {
	after := e.geometry()
	if len(after) != len(e.pressed) {
		e.markEdited()
		return
	}
	// Press raises the hit key, so compare as sets.
	for _, r := range after {
		if !slices.Contains(e.pressed, r) {
			e.markEdited()
			return
		}
	}
}

func (e *editor) markEdited() {
	e.unsaved = true
	e.quitArmed = false
}

// =============================================================================
// Keyboard
// =============================================================================

func (e *editor) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key != "q" && key != "ctrl+c" {
		e.quitArmed = false
	}
	e.status = ""

	switch key {
	case "q", "ctrl+c":
		if e.unsaved && !e.quitArmed {
			e.quitArmed = true
			e.status = "unsaved changes, press " + key + " again to quit"
			return nil
		}
		return tea.Quit

	case "ctrl+s":
		if err := e.save(); err != nil {
			e.status = "save failed: " + errors.UserMessage(err)
			return nil
		}
		e.status = "saved " + e.path

	case "delete", "backspace", "x":
		if removed := e.scene.Delete(); len(removed) > 0 {
			e.markEdited()
			e.status = fmt.Sprintf("deleted %d %s", len(removed), plural(len(removed), "key"))
		}

	case "n":
		x, y := e.scene.Grid()
		e.scene.AddNew("new", snapDown(e.lastX, x), snapDown(e.lastY, y))
		e.markEdited()

	case "a", "ctrl+a":
		e.scene.SelectAll()

	case "esc":
		if e.scene.Mode() != scene.Idle {
			break
		}
		e.scene.Selection().Clear()
		e.needsDraw = true

	case "g":
		e.canvas.SetGrid(!e.canvas.ShowGrid())
		e.needsDraw = true

	case "s":
		e.snapLock = !e.snapLock
		e.status = "snap lock " + onOff(e.snapLock)

	case "left", "right", "up", "down":
		e.nudge(key, e.cellW, e.cellH)

	case "shift+left", "shift+right", "shift+up", "shift+down":
		e.nudge(strings.TrimPrefix(key, "shift+"), e.stepX, e.stepY)
	}
	return nil
}

func (e *editor) nudge(dir string, sx, sy float64) {
	if e.scene.Selection().Len() == 0 || e.scene.Mode() != scene.Idle {
		return
	}
	var dx, dy float64
	switch dir {
	case "left":
		dx = -sx
	case "right":
		dx = sx
	case "up":
		dy = -sy
	case "down":
		dy = sy
	}
	e.scene.Nudge(dx, dy)
	e.markEdited()
}

// save writes the edited geometry back to the keyboard and the layout file.
func (e *editor) save() error {
	e.kb.Sync(e.scene.Objects(), e.scale)
	if err := layout.WriteFile(e.doc, e.path); err != nil {
		return err
	}
	e.unsaved = false
	return nil
}

// snapDown rounds v down to a multiple of step when step is positive.
func snapDown(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return float64(int(v/step)) * step
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// =============================================================================
// View
// =============================================================================

func (e *editor) View() string {
	if e.needsDraw {
		e.scene.Draw(e.canvas)
		e.view = e.canvas.String()
		e.needsDraw = false
	}

	var sb strings.Builder
	sb.WriteString(e.header())
	sb.WriteByte('\n')
	sb.WriteString(e.view)
	sb.WriteByte('\n')
	sb.WriteString(e.footer())
	return sb.String()
}

func (e *editor) header() string {
	name := e.doc.Name
	if e.ext != "" {
		name += " / " + e.ext
	}
	parts := []string{
		StyleTitle.Render(appName),
		StyleValue.Render(name),
		StyleDim.Render(fmt.Sprintf("%d keys", len(e.scene.Objects()))),
		StyleDim.Render(fmt.Sprintf("%d selected", e.scene.Selection().Len())),
		StyleDim.Render(e.scene.Mode().String()),
	}
	if e.snapLock {
		parts = append(parts, StyleHighlight.Render("snap"))
	}
	if e.unsaved {
		parts = append(parts, StyleWarning.Render("modified"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func (e *editor) footer() string {
	status := e.status
	if status == "" {
		status = e.path
	}
	help := fmt.Sprintf("drag move/resize · %s snap · %s toggle · s lock snap · n new · x delete · a all · g grid · ctrl+s save · q quit",
		e.snapKey, e.toggleKey)
	return StyleValue.Render(status) + "\n" + StyleDim.Render(help)
}
