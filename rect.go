package tui

// Size is a width and height in terminal cells.
type Size struct {
	W int
	H int
}

// Rect places a window explicitly. The zero Rect is the "none" rect:
// the window is sized from its content and placed by its parent. Build
// explicit rects with NewRect; zero or negative components of an
// explicit rect are interpreted relative to the parent dimensions.
type Rect struct {
	W int
	H int
	X int
	Y int

	some bool
}

// NewRect returns an explicit rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h, some: true}
}

// ParentRect returns the rect that fills the parent entirely.
func ParentRect() Rect {
	return NewRect(0, 0, 0, 0)
}

// None reports whether the rect is the sentinel "no user rect".
func (r Rect) None() bool {
	return !r.some
}

// resolve interprets non-positive components relative to the parent
// dimensions: w <= 0 means parentW + w, x < 0 means parentW + x, and
// likewise for the vertical axis. Results clamp at zero.
func (r Rect) resolve(parentW, parentH int) Rect {
	if r.H <= 0 {
		r.H = max(0, parentH+r.H)
	}
	if r.W <= 0 {
		r.W = max(0, parentW+r.W)
	}
	if r.X < 0 {
		r.X = max(0, parentW+r.X)
	}
	if r.Y < 0 {
		r.Y = max(0, parentH+r.Y)
	}
	return r
}
