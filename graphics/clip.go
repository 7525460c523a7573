package graphics

// ClipArea is an inclusive screen rectangle that may be empty
type ClipArea struct {
	Left, Top, Right, Bottom int
	visible                  bool
}

// NewClipArea creates a clip from inclusive bounds
func NewClipArea(left, top, right, bottom int) ClipArea {
	var c ClipArea
	c.Set(left, top, right, bottom)
	return c
}

// Set replaces the bounds; inverted bounds make the clip invisible
func (c *ClipArea) Set(left, top, right, bottom int) {
	c.Left, c.Top, c.Right, c.Bottom = left, top, right, bottom
	c.visible = left <= right && top <= bottom
}

// Visible reports whether the clip covers at least one cell
func (c ClipArea) Visible() bool {
	return c.visible
}

// Contains reports whether the screen cell lies inside the clip
func (c ClipArea) Contains(x, y int) bool {
	return c.visible && x >= c.Left && x <= c.Right && y >= c.Top && y <= c.Bottom
}

// ContainsY reports whether a screen row crosses the clip
func (c ClipArea) ContainsY(y int) bool {
	return c.visible && y >= c.Top && y <= c.Bottom
}

// Intersect narrows c to the overlap with other
func (c *ClipArea) Intersect(other ClipArea) {
	c.Set(max(c.Left, other.Left), max(c.Top, other.Top), min(c.Right, other.Right), min(c.Bottom, other.Bottom))
	if !other.visible {
		c.visible = false
	}
}

// Rect returns the bounds as a rectangle
func (c ClipArea) Rect() Rect {
	return Rect{Left: c.Left, Top: c.Top, Right: c.Right, Bottom: c.Bottom}
}

// Cursor is the terminal caret position in screen coordinates
type Cursor struct {
	X, Y    int
	Visible bool
}

// Set places and shows the cursor
func (c *Cursor) Set(x, y int) {
	c.X, c.Y, c.Visible = x, y, true
}

// Hide hides the cursor and parks it at the origin
func (c *Cursor) Hide() {
	c.X, c.Y, c.Visible = 0, 0, false
}
