package scene

// Anchor identifies which resize handle, or the body, a drag pivots around.
type Anchor int

// Anchor kinds. The order of the handle kinds is the hit-test precedence
// used by [Object.OnPress].
const (
	Body Anchor = iota
	TopLeft
	BottomLeft
	TopRight
	BottomRight
	Left
	Right
	Top
	Bottom
)

var anchorNames = [...]string{
	Body:        "body",
	TopLeft:     "top-left",
	BottomLeft:  "bottom-left",
	TopRight:    "top-right",
	BottomRight: "bottom-right",
	Left:        "left",
	Right:       "right",
	Top:         "top",
	Bottom:      "bottom",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return "unknown"
	}
	return anchorNames[a]
}

func (a Anchor) movesLeft() bool   { return a == TopLeft || a == BottomLeft || a == Left }
func (a Anchor) movesRight() bool  { return a == TopRight || a == BottomRight || a == Right }
func (a Anchor) movesTop() bool    { return a == TopLeft || a == TopRight || a == Top }
func (a Anchor) movesBottom() bool { return a == BottomLeft || a == BottomRight || a == Bottom }

// apply displaces r by (dx, dy) the way a drag on this anchor does.
// Body translates; handles move only the edges they own. A dimension that
// would fall below MinSize is clamped and the opposite edge stays put.
func (a Anchor) apply(r Rect, dx, dy float64) Rect {
	if a == Body {
		r.X += dx
		r.Y += dy
		return r
	}

	out := r
	switch {
	case a.movesLeft():
		out.X = r.X + dx
		out.W = r.W - dx
		if out.W < MinSize {
			out.W = MinSize
			out.X = r.Right() - MinSize
		}
	case a.movesRight():
		out.W = r.W + dx
		if out.W < MinSize {
			out.W = MinSize
		}
	}
	switch {
	case a.movesTop():
		out.Y = r.Y + dy
		out.H = r.H - dy
		if out.H < MinSize {
			out.H = MinSize
			out.Y = r.Bottom() - MinSize
		}
	case a.movesBottom():
		out.H = r.H + dy
		if out.H < MinSize {
			out.H = MinSize
		}
	}
	return out
}

// anchorAt resolves the anchor for a press at offset (ox, oy) inside an
// object of size w x h. Corner zones are inclusive; edge-midpoint zones
// are the open interior of a HandleSize square.
func anchorAt(ox, oy, w, h float64) Anchor {
	const z = HandleSize
	switch {
	case ox <= z && oy <= z:
		return TopLeft
	case ox <= z && oy >= h-z:
		return BottomLeft
	case oy <= z && ox >= w-z:
		return TopRight
	case ox >= w-z && oy >= h-z:
		return BottomRight
	case inSquare(ox, oy, 0, h/2-z/2):
		return Left
	case inSquare(ox, oy, w-z, h/2-z/2):
		return Right
	case inSquare(ox, oy, w/2-z/2, 0):
		return Top
	case inSquare(ox, oy, w/2-z/2, h-z):
		return Bottom
	}
	return Body
}

func inSquare(x, y, sx, sy float64) bool {
	return x > sx && y > sy && x < sx+HandleSize && y < sy+HandleSize
}
