package components

// ScrollState tracks the visible window and selection of a scrollable item list
type ScrollState struct {
	Offset    int // First visible item index
	Total     int // Total item count
	Visible   int // Visible item count (viewport height)
	Selection int // Currently selected item, -1 if none
}

// NewScrollState creates a state without selection
func NewScrollState(total, visible int) ScrollState {
	return ScrollState{
		Total:     total,
		Visible:   visible,
		Selection: -1,
	}
}

// --- Scroll manipulation ---

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// EnsureVisible adjusts offset to make item at pos visible
func (s *ScrollState) EnsureVisible(pos int) {
	if pos < 0 {
		return
	}
	if pos < s.Offset {
		s.Offset = pos
	} else if s.Visible > 0 && pos >= s.Offset+s.Visible {
		s.Offset = pos - s.Visible + 1
	}
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// SetTotal updates total count and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Clamp()
	if s.Selection >= total {
		s.Selection = total - 1
	}
}

// SetVisible updates visible count and keeps the selection in view
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = max(visible, 0)
	s.Clamp()
	s.EnsureVisible(s.Selection)
}

// AtTop returns true if scrolled to top
func (s *ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom returns true if scrolled to bottom
func (s *ScrollState) AtBottom() bool {
	if s.Total <= s.Visible {
		return true
	}
	return s.Offset >= s.Total-s.Visible
}

// AllVisible reports that every item fits
func (s *ScrollState) AllVisible() bool {
	return s.Total <= s.Visible
}

// --- Selection management ---

// Select sets selection and ensures it's visible, reports whether it changed
func (s *ScrollState) Select(idx int) bool {
	if s.Total == 0 {
		return false
	}
	idx = ClampCursor(idx, s.Total)
	changed := idx != s.Selection
	s.Selection = idx
	s.EnsureVisible(idx)
	return changed
}

// SelectBy moves the selection by delta rows
func (s *ScrollState) SelectBy(delta int) bool {
	if s.Selection < 0 {
		return s.Select(0)
	}
	return s.Select(s.Selection + delta)
}

// PageDelta is the selection jump for PageUp and PageDown
func (s *ScrollState) PageDelta() int {
	return max(s.Visible-1, 1)
}

// ClampScroll bounds a scroll offset for a viewport of visible rows over total
func ClampScroll(offset, visible, total int) int {
	maxOffset := total - visible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// ClampCursor bounds an index into a list of total items
func ClampCursor(idx, total int) int {
	if total <= 0 {
		return -1
	}
	if idx >= total {
		return total - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
