package graphics

// Point is a cell coordinate
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells
type Size struct {
	Width, Height int
}

// Rect is an inclusive cell rectangle
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect creates a rectangle from inclusive corners
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectWithSize creates a rectangle from its top-left corner and size
func RectWithSize(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width - 1, Bottom: y + height - 1}
}

func (r Rect) Width() int  { return r.Right - r.Left + 1 }
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// Size returns the rectangle dimensions
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty reports an inverted rectangle
func (r Rect) IsEmpty() bool {
	return r.Left > r.Right || r.Top > r.Bottom
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
