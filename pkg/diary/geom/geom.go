// Package geom holds the rectangle math and density conversions shared by the
// diary widgets. Everything here is pure and safe to use without a window.
package geom

// Point is a position in pixels.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle described by its edges, in pixels.
// Right and Bottom are exclusive for layout purposes but inclusive for hit tests.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// NewRect builds a Rect from an origin and a size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float32 {
	return r.Right - r.Left
}

func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

func (r Rect) CenterX() float32 {
	return (r.Left + r.Right) / 2
}

func (r Rect) CenterY() float32 {
	return (r.Top + r.Bottom) / 2
}

func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// IsEmpty reports whether the rectangle has no area.
// Malformed rectangles (right < left, bottom < top) are empty too.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Offset returns the rectangle moved by dx, dy.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Expand grows the rectangle outwards by the given padding.
func (r Rect) Expand(p Padding) Rect {
	return Rect{
		Left:   r.Left - p.Left,
		Top:    r.Top - p.Top,
		Right:  r.Right + p.Right,
		Bottom: r.Bottom + p.Bottom,
	}
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// ContainsTolerant is Contains on the rectangle grown by tolerance on every side.
// Empty rectangles never contain anything, whatever the tolerance.
func (r Rect) ContainsTolerant(x, y, tolerance float32) bool {
	if r.IsEmpty() {
		return false
	}
	return r.Expand(UniformPadding(tolerance)).Contains(x, y)
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding with one horizontal and one vertical value.
func SymmetricPadding(horizontal, vertical float32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}
