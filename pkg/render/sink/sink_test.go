package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/keyedit/pkg/render/styles"
	"github.com/matzehuels/keyedit/pkg/scene"
)

type fakeKey struct{ id, class string }

func (k fakeKey) ObjectID() string { return k.id }
func (k fakeKey) KeyClass() string { return k.class }

func testScene() (*scene.Scene, *scene.Object, *scene.Object) {
	s := scene.New(scene.WithGrid(30, 30), scene.WithSize(300, 150))
	a := scene.NewObject("Esc", 0, 0, 60, 60)
	a.Payload = fakeKey{id: "esc", class: "default"}
	b := scene.NewObject("Tab", 90, 0, 60, 60)
	s.Add(a)
	s.Add(b)
	return s, a, b
}

func TestRenderSVG(t *testing.T) {
	s, a, _ := testScene()
	s.Selection().Add(a)

	out := string(RenderSVG(s))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300.0 150.0"`) {
		t.Errorf("unexpected header: %.80s", out)
	}
	if got := strings.Count(out, `class="key`); got != 4 {
		// two key rects plus one key-text per label
		t.Errorf("key elements = %d, want 4", got)
	}
	if !strings.Contains(out, `id="key-esc" class="key key-default" data-status="selected"`) {
		t.Error("payload identity not rendered")
	}
	if !strings.Contains(out, `id="key-1" class="key" data-status="normal"`) {
		t.Error("object without payload should use its z-order index")
	}
	if got := strings.Count(out, `class="handle"`); got != 8 {
		t.Errorf("handles = %d, want 8 for one selected key", got)
	}
	if strings.Contains(out, `class="band"`) {
		t.Error("band drawn while idle")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGBand(t *testing.T) {
	s, _, _ := testScene()
	s.Press(scene.Pointer{X: 200, Y: 100})
	s.Motion(scene.Pointer{X: 280, Y: 140})

	out := string(RenderSVG(s, WithGrid(false)))
	if !strings.Contains(out, `<rect class="band" x="200.00" y="100.00" width="80.00" height="40.00"`) {
		t.Errorf("band missing:\n%s", out)
	}
	if strings.Contains(out, "<line") {
		t.Error("grid drawn with WithGrid(false)")
	}
}

func TestRenderSVGHugPreview(t *testing.T) {
	s, a, _ := testScene()
	s.Press(scene.Pointer{X: 30, Y: 30})
	s.Motion(scene.Pointer{X: 52, Y: 30, Mods: scene.ModSnap})
	if !a.Hugging() {
		t.Fatal("expected a snap preview after moving off the grid")
	}
	out := string(RenderSVG(s, WithStyle(styles.Simple{Colors: styles.Night})))
	if !strings.Contains(out, `class="hug"`) {
		t.Error("hug preview not rendered")
	}
}

func TestCanvasSizeFallsBackToObjects(t *testing.T) {
	s := scene.New()
	s.Add(scene.NewObject("a", 10, 20, 60, 60))
	s.Add(scene.NewObject("b", 100, 0, 30, 30))
	w, h := canvasSize(s)
	if w != 130 || h != 80 {
		t.Errorf("canvasSize = %v x %v, want 130 x 80", w, h)
	}
	if w, h := canvasSize(scene.New()); w != scene.MinSize || h != scene.MinSize {
		t.Errorf("empty canvasSize = %v x %v", w, h)
	}
}

func TestRenderPNG(t *testing.T) {
	s, a, _ := testScene()
	s.Selection().Add(a)

	data, err := RenderPNG(s, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 150 {
		t.Errorf("bounds = %v, want 300x150", b)
	}

	data, err = RenderPNG(s)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, _ = png.Decode(bytes.NewReader(data))
	if b := img.Bounds(); b.Dx() != 600 {
		t.Errorf("default scale width = %d, want 600", b.Dx())
	}
}

func TestKeyForHandlesOnlyWhenNotNormal(t *testing.T) {
	o := scene.NewObject("k", 0, 0, 60, 60)
	if k := keyFor(o.View(), 0); len(k.Handles) != 0 {
		t.Errorf("normal key has %d handles", len(k.Handles))
	}
	o.Activate()
	if k := keyFor(o.View(), 0); len(k.Handles) != 8 {
		t.Errorf("active key has %d handles", len(k.Handles))
	}
}
