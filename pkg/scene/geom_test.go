package scene

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29, 29, true},
		{29.9, 10, true},
		{30, 30, false},
		{30, 20, false},
		{20, 30, false},
		{9.99, 20, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 10, W: 20, H: 20}
	b := Rect{X: 50, Y: 0, W: 10, H: 10}
	want := Rect{X: 0, Y: 0, W: 60, H: 30}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Union is not symmetric: %+v", got)
	}
}

func TestRectFromCorners(t *testing.T) {
	want := Rect{X: 10, Y: 20, W: 40, H: 30}
	corners := [][4]float64{
		{10, 20, 50, 50},
		{50, 50, 10, 20},
		{10, 50, 50, 20},
		{50, 20, 10, 50},
	}
	for _, c := range corners {
		if got := RectFromCorners(c[0], c[1], c[2], c[3]); got != want {
			t.Errorf("RectFromCorners(%v) = %+v, want %+v", c, got, want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, m, want float64
	}{
		{28, 30, 28},
		{-28, 30, 2},
		{60, 30, 0},
		{-60, 30, 0},
		{-88, 30, 2},
		{91, 30, 1},
	}
	for _, tt := range tests {
		if got := floorMod(tt.a, tt.m); got != tt.want {
			t.Errorf("floorMod(%v, %v) = %v, want %v", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestHandlesResolveToTheirAnchor(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 60, H: 60}
	want := [8]Anchor{TopLeft, BottomLeft, TopRight, BottomRight, Left, Right, Top, Bottom}
	for i, h := range Handles(r) {
		ox := h.CenterX() - r.X
		oy := h.CenterY() - r.Y
		if got := anchorAt(ox, oy, r.W, r.H); got != want[i] {
			t.Errorf("handle %d center resolves to %v, want %v", i, got, want[i])
		}
	}
}

func TestAnchorAt(t *testing.T) {
	tests := []struct {
		name   string
		ox, oy float64
		want   Anchor
	}{
		{"top-left", 5, 5, TopLeft},
		{"top-left inclusive", 10, 10, TopLeft},
		{"bottom-left", 5, 55, BottomLeft},
		{"top-right", 55, 5, TopRight},
		{"bottom-right", 55, 55, BottomRight},
		{"bottom-right inclusive", 50, 50, BottomRight},
		{"left", 5, 30, Left},
		{"right", 55, 30, Right},
		{"top", 30, 5, Top},
		{"bottom", 30, 55, Bottom},
		{"body", 30, 30, Body},
		{"left edge exclusive", 0, 30, Body},
		{"left square boundary", 10, 30, Body},
		{"between corner and mid", 5, 20, Body},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := anchorAt(tt.ox, tt.oy, 60, 60); got != tt.want {
				t.Errorf("anchorAt(%v, %v) = %v, want %v", tt.ox, tt.oy, got, tt.want)
			}
		})
	}
}

func TestAnchorApplyFloor(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 60, H: 60}
	for a := Body; a <= Bottom; a++ {
		for _, d := range []float64{-500, -55, -1, 0, 1, 55, 500} {
			got := a.apply(r, d, d)
			if got.W < MinSize || got.H < MinSize {
				t.Errorf("%v.apply(%v) = %+v, below floor", a, d, got)
			}
		}
	}
}

func TestAnchorApplyKeepsOppositeEdge(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 60, H: 60}

	got := TopLeft.apply(r, 200, 200)
	if got.Right() != r.Right() || got.Bottom() != r.Bottom() {
		t.Errorf("TopLeft clamp moved the fixed edges: %+v", got)
	}
	if got.W != MinSize || got.H != MinSize {
		t.Errorf("TopLeft clamp size = %vx%v, want %vx%v", got.W, got.H, MinSize, MinSize)
	}

	got = BottomRight.apply(r, -200, -200)
	if got.X != r.X || got.Y != r.Y {
		t.Errorf("BottomRight clamp moved the origin: %+v", got)
	}
}

func TestAnchorString(t *testing.T) {
	if got := BottomRight.String(); got != "bottom-right" {
		t.Errorf("String() = %q", got)
	}
	if got := Anchor(42).String(); got != "unknown" {
		t.Errorf("String() for invalid anchor = %q", got)
	}
}

func TestRectTouching(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 60, H: 60}
	tests := []struct {
		name  string
		o     Rect
		wantH bool
		wantV bool
		tol   float64
	}{
		{"right neighbour", Rect{X: 60, Y: 0, W: 60, H: 60}, true, false, 0},
		{"left neighbour with gap", Rect{X: -65, Y: 10, W: 60, H: 60}, true, false, 10},
		{"below", Rect{X: 30, Y: 62, W: 60, H: 30}, false, true, 5},
		{"gap too wide", Rect{X: 75, Y: 0, W: 60, H: 60}, false, false, 10},
		{"corner only", Rect{X: 60, Y: 60, W: 60, H: 60}, false, false, 10},
		{"no overlap on other axis", Rect{X: 60, Y: 100, W: 60, H: 60}, false, false, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := a.Touching(tt.o, tt.tol)
			if h != tt.wantH || v != tt.wantV {
				t.Errorf("Touching = %v, %v; want %v, %v", h, v, tt.wantH, tt.wantV)
			}
			if h2, v2 := tt.o.Touching(a, tt.tol); h2 != h || v2 != v {
				t.Error("Touching is not symmetric")
			}
		})
	}
}
