package scene

import "math"

// SnapSource names the rule that produced a snap correction on one axis.
type SnapSource int

// Snap sources, in the order the rules are tried.
const (
	SnapNone SnapSource = iota
	SnapGrid
	SnapEdge
	SnapBoundary
)

func (s SnapSource) String() string {
	switch s {
	case SnapGrid:
		return "grid"
	case SnapEdge:
		return "edge"
	case SnapBoundary:
		return "boundary"
	}
	return "none"
}

// Snap is the correction that aligns a dragged box.
type Snap struct {
	DX, DY           float64
	SourceX, SourceY SnapSource
}

// SnapDelta computes the correction for a selection occupying box.
//
// Each axis is resolved independently by the first rule that matches:
// the grid, then the edges of unselected objects scanned from the top of
// the z-order down, then the canvas boundary. An axis that no rule
// resolves keeps a zero correction.
func (s *Scene) SnapDelta(box Rect) Snap {
	var out Snap
	tol := s.tolerance

	if dx, ok := gridSnap(box.X, box.W, s.gridX, tol); ok {
		out.DX, out.SourceX = dx, SnapGrid
	}
	if dy, ok := gridSnap(box.Y, box.H, s.gridY, tol); ok {
		out.DY, out.SourceY = dy, SnapGrid
	}

	for i := len(s.objects) - 1; i >= 0; i-- {
		if out.SourceX != SnapNone && out.SourceY != SnapNone {
			break
		}
		o := s.objects[i]
		if o.status == Selected {
			continue
		}
		r := o.rect
		if out.SourceY == SnapNone && r.overlapsX(box) {
			if d := r.Bottom() - box.Y; math.Abs(d) <= tol {
				out.DY, out.SourceY = d, SnapEdge
			} else if d := r.Y - box.Bottom(); math.Abs(d) <= tol {
				out.DY, out.SourceY = d, SnapEdge
			}
		}
		if out.SourceX == SnapNone && r.overlapsY(box) {
			if d := r.Right() - box.X; math.Abs(d) <= tol {
				out.DX, out.SourceX = d, SnapEdge
			} else if d := r.X - box.Right(); math.Abs(d) <= tol {
				out.DX, out.SourceX = d, SnapEdge
			}
		}
	}

	if out.SourceX == SnapNone {
		if dx, ok := boundarySnap(box.X, box.W, s.width, tol); ok {
			out.DX, out.SourceX = dx, SnapBoundary
		}
	}
	if out.SourceY == SnapNone {
		if dy, ok := boundarySnap(box.Y, box.H, s.height, tol); ok {
			out.DY, out.SourceY = dy, SnapBoundary
		}
	}
	return out
}

// gridSnap tests, in order, the distance from the leading edge back to the
// previous grid line, forward to the next one, then the same for the
// trailing edge. A grid of zero disables the axis.
func gridSnap(pos, size, grid, tol float64) (float64, bool) {
	if grid == 0 {
		return 0, false
	}
	if m := floorMod(pos, grid); m <= tol {
		return -m, true
	}
	if m := floorMod(-pos, grid); m <= tol {
		return m, true
	}
	if m := floorMod(pos+size, grid); m <= tol {
		return -m, true
	}
	if m := floorMod(-pos-size, grid); m <= tol {
		return m, true
	}
	return 0, false
}

// boundarySnap pulls the box onto the canvas origin or, when the extent is
// known, onto the far edge.
func boundarySnap(pos, size, extent, tol float64) (float64, bool) {
	if pos <= tol {
		return -pos, true
	}
	if extent > 0 && pos+size >= extent-tol {
		return extent - size - pos, true
	}
	return 0, false
}
