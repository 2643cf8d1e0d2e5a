package scene

import "testing"

func TestSnapDelta(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		others []Rect
		box    Rect
		want   Snap
	}{
		{
			name: "grid forward",
			opts: []Option{WithGrid(30, 30)},
			box:  Rect{X: 28, Y: 100, W: 60, H: 60},
			want: Snap{DX: 2, DY: -10, SourceX: SnapGrid, SourceY: SnapGrid},
		},
		{
			name: "grid back",
			opts: []Option{WithGrid(30, 30)},
			box:  Rect{X: 64, Y: 0, W: 60, H: 60},
			want: Snap{DX: -4, DY: 0, SourceX: SnapGrid, SourceY: SnapGrid},
		},
		{
			name: "grid trailing edge",
			opts: []Option{WithGrid(30, 0)},
			box:  Rect{X: 45, Y: 200, W: 48, H: 60},
			want: Snap{DX: -3, SourceX: SnapGrid},
		},
		{
			name:   "aligned grid axis ignores neighbours",
			opts:   []Option{WithGrid(30, 0)},
			others: []Rect{{X: 0, Y: 200, W: 58, H: 60}},
			box:    Rect{X: 60, Y: 200, W: 60, H: 60},
			want:   Snap{DX: 0, SourceX: SnapGrid},
		},
		{
			name:   "neighbour right edge",
			others: []Rect{{X: 0, Y: 200, W: 60, H: 60}},
			box:    Rect{X: 65, Y: 210, W: 60, H: 60},
			want:   Snap{DX: -5, SourceX: SnapEdge},
		},
		{
			name:   "neighbour left edge",
			others: []Rect{{X: 200, Y: 200, W: 60, H: 60}},
			box:    Rect{X: 133, Y: 210, W: 60, H: 60},
			want:   Snap{DX: 7, SourceX: SnapEdge},
		},
		{
			name:   "neighbour bottom edge",
			others: []Rect{{X: 100, Y: 100, W: 60, H: 60}},
			box:    Rect{X: 120, Y: 168, W: 60, H: 60},
			want:   Snap{DY: -8, SourceY: SnapEdge},
		},
		{
			name:   "neighbour without overlap is ignored",
			others: []Rect{{X: 0, Y: 300, W: 60, H: 60}},
			box:    Rect{X: 65, Y: 200, W: 60, H: 60},
			want:   Snap{},
		},
		{
			name:   "topmost neighbour wins",
			others: []Rect{
				{X: 0, Y: 200, W: 62, H: 60},
				{X: 0, Y: 200, W: 56, H: 60},
			},
			box:  Rect{X: 64, Y: 200, W: 60, H: 60},
			want: Snap{DX: -8, SourceX: SnapEdge},
		},
		{
			name: "boundary origin",
			box:  Rect{X: 7, Y: 4, W: 60, H: 60},
			want: Snap{DX: -7, DY: -4, SourceX: SnapBoundary, SourceY: SnapBoundary},
		},
		{
			name: "boundary far edge",
			opts: []Option{WithSize(600, 300)},
			box:  Rect{X: 535, Y: 238, W: 60, H: 60},
			want: Snap{DX: 5, DY: 2, SourceX: SnapBoundary, SourceY: SnapBoundary},
		},
		{
			name: "far edge ignored without size",
			box:  Rect{X: 535, Y: 238, W: 60, H: 60},
			want: Snap{},
		},
		{
			name: "tolerance",
			opts: []Option{WithGrid(30, 30), WithTolerance(2)},
			box:  Rect{X: 28, Y: 100, W: 60, H: 60},
			want: Snap{DX: 2, SourceX: SnapGrid},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts...)
			for _, r := range tt.others {
				s.Add(NewObject("n", r.X, r.Y, r.W, r.H))
			}
			got := s.SnapDelta(tt.box)
			// -0 and 0 compare equal
			if got.DX != tt.want.DX || got.DY != tt.want.DY ||
				got.SourceX != tt.want.SourceX || got.SourceY != tt.want.SourceY {
				t.Errorf("SnapDelta(%+v) = %+v, want %+v", tt.box, got, tt.want)
			}
		})
	}
}

func TestSnapSkipsSelected(t *testing.T) {
	s := New()
	n := NewObject("n", 0, 200, 60, 60)
	s.Add(n)
	s.Selection().Add(n)
	if got := s.SnapDelta(Rect{X: 65, Y: 210, W: 60, H: 60}); got.SourceX != SnapNone {
		t.Errorf("snapped to a selected object: %+v", got)
	}
}

func TestSnapDuringDrag(t *testing.T) {
	s := New()
	n := NewObject("n", 0, 100, 60, 60)
	m := NewObject("m", 100, 100, 60, 60)
	s.Add(n)
	s.Add(m)

	s.Press(Pointer{X: 130, Y: 130})
	s.Motion(Pointer{X: 97, Y: 130, Mods: ModSnap})
	if m.Rect().X != 67 {
		t.Fatalf("committed geometry = %+v, want X=67", m.Rect())
	}
	if dx, _ := m.HugDelta(); dx != -7 {
		t.Errorf("hug dx = %v, want -7", dx)
	}
	if m.PreviewRect().X != 60 {
		t.Errorf("preview = %+v, want X=60", m.PreviewRect())
	}

	// Releasing the modifier drops the preview.
	s.Motion(Pointer{X: 97, Y: 130})
	if m.Hugging() {
		t.Error("hug kept without the snap modifier")
	}

	s.Motion(Pointer{X: 97, Y: 130, Mods: ModSnap})
	s.Release()
	if m.Rect() != (Rect{X: 60, Y: 100, W: 60, H: 60}) {
		t.Errorf("Release committed %+v", m.Rect())
	}
}

func TestSnapSourceString(t *testing.T) {
	for src, want := range map[SnapSource]string{
		SnapNone: "none", SnapGrid: "grid", SnapEdge: "edge", SnapBoundary: "boundary",
	} {
		if got := src.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", src, got, want)
		}
	}
}
