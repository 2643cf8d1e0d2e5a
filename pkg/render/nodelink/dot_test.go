package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/keyedit/pkg/scene"
)

type key string

func (k key) ObjectID() string { return string(k) }

func row() []*scene.Object {
	q := scene.NewObject("Q", 0, 0, 60, 60)
	q.Payload = key("q")
	w := scene.NewObject("W", 62, 0, 60, 60)
	w.Payload = key("w")
	a := scene.NewObject("A", 20, 60, 60, 60)
	a.Payload = key("a")
	far := scene.NewObject("Esc", 400, 400, 60, 60)
	return []*scene.Object{q, w, a, far}
}

func TestAdjacency(t *testing.T) {
	g := Adjacency(row(), 5)

	if len(g.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(g.Nodes))
	}
	if g.Nodes[3].ID != "3" {
		t.Errorf("node without payload id = %q, want index", g.Nodes[3].ID)
	}

	want := []Edge{
		{From: "q", To: "w", Horizontal: true},
		{From: "q", To: "a"},
		{From: "w", To: "a"},
	}
	if len(g.Edges) != len(want) {
		t.Fatalf("edges = %+v, want %+v", g.Edges, want)
	}
	for i := range want {
		if g.Edges[i] != want[i] {
			t.Errorf("edge %d = %+v, want %+v", i, g.Edges[i], want[i])
		}
	}

	deg := g.Degree()
	if deg["q"] != 2 || deg["a"] != 2 || deg["3"] != 0 {
		t.Errorf("Degree() = %v", deg)
	}
}

func TestAdjacencyTolerance(t *testing.T) {
	if g := Adjacency(row(), 1); len(g.Edges) != 2 {
		t.Errorf("tolerance 1: edges = %+v, want only the stacked pairs", g.Edges)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(Adjacency(row(), 5), Options{})

	for _, s := range []string{
		"graph G {",
		`"q" [label="Q"]`,
		`"3" [label="Esc"]`,
		`"q" -- "w" [style=solid]`,
		`"q" -- "a" [style=dashed]`,
	} {
		if !strings.Contains(dot, s) {
			t.Errorf("ToDOT() missing %q:\n%s", s, dot)
		}
	}
	if strings.Contains(dot, "pos=") {
		t.Error("unpinned graph has positions")
	}
}

func TestToDOTPinnedDetailed(t *testing.T) {
	dot := ToDOT(Adjacency(row(), 5), Options{Pinned: true, Detailed: true})

	if !strings.Contains(dot, `pos="30.0,-30.0!"`) {
		t.Errorf("missing pinned position:\n%s", dot)
	}
	if !strings.Contains(dot, `label="Q\nx: 0 y: 0\n60 x 60"`) {
		t.Errorf("missing detailed label:\n%s", dot)
	}
}

func TestFmtLabelFallsBackToID(t *testing.T) {
	if got := fmtLabel(Node{ID: "k7"}, false); got != "k7" {
		t.Errorf("fmtLabel = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("no viewBox: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(Adjacency(row(), 5), Options{})
	svg, err := RenderSVG(context.Background(), dot, Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not svg")
	}
}
