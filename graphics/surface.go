package graphics

const (
	maxSurfaceWidth  = 10000
	maxSurfaceHeight = 10000
)

// Surface is a character grid with a clip rectangle and a drawing origin
// Every write goes through origin translation and clip culling; out-of-clip writes are no-ops
type Surface struct {
	width      int
	height     int
	chars      []Character
	cursor     Cursor
	origin     Point
	baseOrigin Point
	clip       ClipArea
	baseClip   ClipArea
	rightMost  int
	bottomMost int
}

// NewSurface allocates a surface filled with DefaultCharacter
// Dimensions are clamped to 1..10000
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Size returns the surface dimensions
func (s *Surface) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Chars exposes the row-major cell buffer for backends; callers must not retain it across Resize
func (s *Surface) Chars() []Character {
	return s.chars
}

// Cursor returns the cursor in screen coordinates
func (s *Surface) Cursor() Cursor {
	return s.cursor
}

// Resize reallocates the grid with default cells and resets clip and origin
func (s *Surface) Resize(width, height int) {
	w := clampInt(width, 1, maxSurfaceWidth)
	h := clampInt(height, 1, maxSurfaceHeight)
	count := w * h
	if cap(s.chars) < count {
		s.chars = make([]Character, count)
	} else {
		s.chars = s.chars[:count]
	}
	fillChars(s.chars, DefaultCharacter)
	s.width, s.height = w, h
	s.rightMost, s.bottomMost = w-1, h-1
	s.baseClip = NewClipArea(0, 0, s.rightMost, s.bottomMost)
	s.clip = s.baseClip
	s.baseOrigin = Point{}
	s.origin = Point{}
	s.cursor.Hide()
}

// fillChars uses exponential copy to initialize a cell slice
func fillChars(dst []Character, ch Character) {
	if len(dst) == 0 {
		return
	}
	dst[0] = ch
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// offset converts origin-relative coordinates into a buffer index, false when clipped
func (s *Surface) offset(x, y int) (int, bool) {
	x += s.origin.X
	y += s.origin.Y
	if !s.clip.Contains(x, y) {
		return 0, false
	}
	return y*s.width + x, true
}

// ===== ORIGIN & CLIP =====

// SetOrigin places the drawing origin relative to the base origin
func (s *Surface) SetOrigin(x, y int) {
	s.origin = Point{X: x + s.baseOrigin.X, Y: y + s.baseOrigin.Y}
}

// ResetOrigin returns the origin to the base origin
func (s *Surface) ResetOrigin() {
	s.origin = s.baseOrigin
}

// SetBaseOrigin moves the origin every SetOrigin call is relative to
func (s *Surface) SetBaseOrigin(x, y int) {
	s.baseOrigin = Point{X: x, Y: y}
}

// Origin returns the current origin in screen coordinates
func (s *Surface) Origin() Point {
	return s.origin
}

// SetClip narrows the writable region (screen coordinates), bounded by the base clip
func (s *Surface) SetClip(left, top, right, bottom int) {
	s.clip.Set(max(s.baseClip.Left, left), max(s.baseClip.Top, top),
		min(s.baseClip.Right, right), min(s.baseClip.Bottom, bottom))
}

// ResetClip widens the clip back to the base clip
func (s *Surface) ResetClip() {
	s.clip = s.baseClip
}

// SetBaseClip sets the outer bound for SetClip; the current clip is intersected with it
func (s *Surface) SetBaseClip(left, top, right, bottom int) {
	s.baseClip.Set(max(0, left), max(0, top), min(s.rightMost, right), min(s.bottomMost, bottom))
	s.clip.Intersect(s.baseClip)
}

// ResetBaseClip makes the whole surface writable again
func (s *Surface) ResetBaseClip() {
	s.baseClip = NewClipArea(0, 0, s.rightMost, s.bottomMost)
	s.clip = s.baseClip
}

// ClipArea returns the active clip
func (s *Surface) ClipArea() ClipArea {
	return s.clip
}

// ===== CURSOR =====

// SetCursor places the cursor at origin-relative coordinates; outside the clip hides it
func (s *Surface) SetCursor(x, y int) {
	x += s.origin.X
	y += s.origin.Y
	if s.clip.Contains(x, y) {
		s.cursor.Set(x, y)
	} else {
		s.cursor.Hide()
	}
}

// HideCursor hides the cursor
func (s *Surface) HideCursor() {
	s.cursor.Hide()
}

// ===== CELLS =====

// Set merges ch into the cell at (x, y)
func (s *Surface) Set(x, y int, ch Character) {
	if pos, ok := s.offset(x, y); ok {
		s.chars[pos].Set(ch)
	}
}

// WriteChar is an alias of Set
func (s *Surface) WriteChar(x, y int, ch Character) {
	s.Set(x, y, ch)
}

// Get returns the cell at (x, y), false when clipped
func (s *Surface) Get(x, y int) (Character, bool) {
	pos, ok := s.offset(x, y)
	if !ok {
		return Character{}, false
	}
	return s.chars[pos], true
}

// Clear merges ch into every cell of the clip
func (s *Surface) Clear(ch Character) {
	if !s.clip.Visible() {
		return
	}
	if s.clip.Left == 0 && s.clip.Top == 0 && s.clip.Right == s.rightMost && s.clip.Bottom == s.bottomMost {
		for i := range s.chars {
			s.chars[i].Set(ch)
		}
		return
	}
	rowLen := s.clip.Right + 1 - s.clip.Left
	pos := s.clip.Top*s.width + s.clip.Left
	for y := s.clip.Top; y <= s.clip.Bottom; y++ {
		row := s.chars[pos : pos+rowLen]
		for i := range row {
			row[i].Set(ch)
		}
		pos += s.width
	}
}
