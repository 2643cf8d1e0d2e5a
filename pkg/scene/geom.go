package scene

import "math"

const (
	// MinSize is the smallest width or height a committed object may have.
	MinSize = 10.0

	// HandleSize is the side length of the square resize handles.
	HandleSize = 10.0

	// DefaultTolerance is the snapping distance in device units.
	DefaultTolerance = 10.0
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether (x, y) lies in the half-open extent
// [X, X+W) x [Y, Y+H).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	x2 := math.Max(r.Right(), o.Right())
	y2 := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, W: x2 - x, H: y2 - y}
}

// overlapsX reports whether the closed horizontal spans of r and o intersect.
func (r Rect) overlapsX(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right()
}

// overlapsY reports whether the closed vertical spans of r and o intersect.
func (r Rect) overlapsY(o Rect) bool {
	return r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Touching reports whether r and o are neighbours: facing edges at most tol
// apart while their spans on the other axis share a positive length.
// horizontal means side by side, vertical means stacked.
func (r Rect) Touching(o Rect, tol float64) (horizontal, vertical bool) {
	spanY := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	spanX := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	horizontal = spanY > 0 && (math.Abs(r.Right()-o.X) <= tol || math.Abs(o.Right()-r.X) <= tol)
	vertical = spanX > 0 && (math.Abs(r.Bottom()-o.Y) <= tol || math.Abs(o.Bottom()-r.Y) <= tol)
	return horizontal, vertical
}

// RectFromCorners builds a rectangle from two arbitrary corner points.
func RectFromCorners(ax, ay, bx, by float64) Rect {
	x, x2 := math.Min(ax, bx), math.Max(ax, bx)
	y, y2 := math.Min(ay, by), math.Max(ay, by)
	return Rect{X: x, Y: y, W: x2 - x, H: y2 - y}
}

// Handles returns the eight resize handle squares of r in anchor
// precedence order: the four corners followed by the four edge midpoints.
func Handles(r Rect) [8]Rect {
	const s = HandleSize
	midX := r.X + r.W/2 - s/2
	midY := r.Y + r.H/2 - s/2
	return [8]Rect{
		{r.X, r.Y, s, s},
		{r.X, r.Bottom() - s, s, s},
		{r.Right() - s, r.Y, s, s},
		{r.Right() - s, r.Bottom() - s, s, s},
		{r.X, midY, s, s},
		{r.Right() - s, midY, s, s},
		{midX, r.Y, s, s},
		{midX, r.Bottom() - s, s, s},
	}
}

// floorMod returns a mod m with the sign of m, so floorMod(-28, 30) == 2.
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
