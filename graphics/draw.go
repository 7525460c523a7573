package graphics

// FillRect merges ch into every cell of r
func (s *Surface) FillRect(r Rect, ch Character) {
	if r.IsEmpty() {
		return
	}
	for x := r.Left; x <= r.Right; x++ {
		for y := r.Top; y <= r.Bottom; y++ {
			s.Set(x, y, ch)
		}
	}
}

// FillHorizontalLine fills the inclusive span [left, right] on row y
func (s *Surface) FillHorizontalLine(left, y, right int, ch Character) {
	for x := left; x <= right; x++ {
		s.Set(x, y, ch)
	}
}

// FillHorizontalLineWithSize fills width cells starting at (x, y)
func (s *Surface) FillHorizontalLineWithSize(x, y, width int, ch Character) {
	if width > 0 {
		s.FillHorizontalLine(x, y, x+width-1, ch)
	}
}

// FillVerticalLine fills the inclusive span [top, bottom] on column x
func (s *Surface) FillVerticalLine(x, top, bottom int, ch Character) {
	for y := top; y <= bottom; y++ {
		s.Set(x, y, ch)
	}
}

// FillVerticalLineWithSize fills height cells starting at (x, y)
func (s *Surface) FillVerticalLineWithSize(x, y, height int, ch Character) {
	if height > 0 {
		s.FillVerticalLine(x, y, y+height-1, ch)
	}
}

func (s *Surface) DrawHorizontalLine(left, y, right int, lt LineType, attr CharAttribute) {
	s.FillHorizontalLine(left, y, right, CharWithAttr(lt.chars().horizontal, attr))
}

func (s *Surface) DrawHorizontalLineWithSize(x, y, width int, lt LineType, attr CharAttribute) {
	s.FillHorizontalLineWithSize(x, y, width, CharWithAttr(lt.chars().horizontal, attr))
}

func (s *Surface) DrawVerticalLine(x, top, bottom int, lt LineType, attr CharAttribute) {
	s.FillVerticalLine(x, top, bottom, CharWithAttr(lt.chars().vertical, attr))
}

func (s *Surface) DrawVerticalLineWithSize(x, y, height int, lt LineType, attr CharAttribute) {
	s.FillVerticalLineWithSize(x, y, height, CharWithAttr(lt.chars().vertical, attr))
}

// DrawRect draws the border of r; edges first, corners last
func (s *Surface) DrawRect(r Rect, lt LineType, attr CharAttribute) {
	if r.IsEmpty() {
		return
	}
	lc := lt.chars()
	ch := CharWithAttr(' ', attr)
	ch.Code = lc.top
	s.FillHorizontalLine(r.Left, r.Top, r.Right, ch)
	ch.Code = lc.bottom
	s.FillHorizontalLine(r.Left, r.Bottom, r.Right, ch)
	ch.Code = lc.left
	s.FillVerticalLine(r.Left, r.Top, r.Bottom, ch)
	ch.Code = lc.right
	s.FillVerticalLine(r.Right, r.Top, r.Bottom, ch)
	ch.Code = lc.topLeft
	s.Set(r.Left, r.Top, ch)
	ch.Code = lc.topRight
	s.Set(r.Right, r.Top, ch)
	ch.Code = lc.bottomRight
	s.Set(r.Right, r.Bottom, ch)
	ch.Code = lc.bottomLeft
	s.Set(r.Left, r.Bottom, ch)
}

// DrawSurface merges every cell of src with its top-left corner at (x, y)
func (s *Surface) DrawSurface(x, y int, src *Surface) {
	if !s.clip.Visible() {
		return
	}
	idx := 0
	for sy := 0; sy <= src.bottomMost; sy++ {
		for sx := 0; sx <= src.rightMost; sx++ {
			s.Set(x+sx, y+sy, src.chars[idx])
			idx++
		}
	}
}

// WriteString writes text starting at (x, y)
// In multi-line mode '\n' and '\r' move to the start of the next row
func (s *Surface) WriteString(x, y int, text string, attr CharAttribute, multiLine bool) {
	c := CharWithAttr(' ', attr)
	if !multiLine {
		if !s.clip.ContainsY(y + s.origin.Y) {
			return
		}
		px := x
		for _, r := range text {
			if pos, ok := s.offset(px, y); ok {
				c.Code = r
				s.chars[pos].Set(c)
			}
			px++
		}
		return
	}
	px, py := x, y
	for _, r := range text {
		if r == '\n' || r == '\r' {
			py++
			px = x
			continue
		}
		if pos, ok := s.offset(px, py); ok {
			c.Code = r
			s.chars[pos].Set(c)
		}
		px++
	}
}
