package graphics

import "testing"

func expectHash(t *testing.T, s *Surface, want uint64) {
	t.Helper()
	if got := s.Hash(); got != want {
		t.Errorf("Expected hash 0x%X, got 0x%X", want, got)
	}
}

func TestClear(t *testing.T) {
	s := NewSurface(20, 5)
	s.Clear(NewCharacter('x', White, Black, FlagNone))
	expectHash(t, s, 0x19B0E1632DAE6325)
}

func TestClearWithClipping(t *testing.T) {
	s := NewSurface(40, 10)
	s.Clear(NewCharacter('x', White, Black, FlagNone))
	expectHash(t, s, 0xD82E620861132325)

	s.SetClip(2, 2, 10, 6)
	s.Clear(CharWithCode(' '))
	expectHash(t, s, 0x4556A89C009CADFD)

	s.SetClip(8, 4, 20, 9)
	s.Clear(CharWithCode('.'))
	expectHash(t, s, 0xC0F23672210DB085)

	s.ResetClip()
	s.Clear(CharWithCode('+'))
	expectHash(t, s, 0x6D177D1CC0356225)
}

func TestFillRect(t *testing.T) {
	s := NewSurface(20, 5)
	s.Clear(NewCharacter('.', White, Black, FlagNone))
	s.FillRect(NewRect(2, 2, 4, 4), NewCharacter('@', Aqua, Red, FlagBold))
	expectHash(t, s, 0x9E357B7ADEDEB720)

	s.FillRect(RectWithSize(4, 1, 10, 2), CharWithCode('X'))
	expectHash(t, s, 0xD897421A927A1A1)
}

func TestDrawRect(t *testing.T) {
	s := NewSurface(40, 10)
	s.Clear(NewCharacter(' ', White, Black, FlagNone))

	rects := []struct {
		r    Rect
		lt   LineType
		attr CharAttribute
	}{
		{NewRect(2, 2, 10, 4), LineSingle, AttrWithColor(Yellow, Blue)},
		{NewRect(12, 1, 18, 5), LineDouble, AttrWithColor(White, Green)},
		{NewRect(20, 0, 28, 3), LineSingleThick, AttrWithColor(Aqua, Black)},
		{NewRect(29, 0, 39, 3), LineBorder, AttrWithColor(Aqua, Black)},
		{NewRect(20, 4, 30, 8), LineAscii, AttrWithColor(Green, White)},
		{NewRect(31, 4, 38, 8), LineAsciiRound, AttrWithColor(Green, White)},
		{NewRect(1, 6, 17, 9), LineSingleRound, AttrWithColor(Green, White)},
	}
	for _, r := range rects {
		s.DrawRect(r.r, r.lt, r.attr)
	}
	expectHash(t, s, 0xD99DB2F59085FE71)
}

func TestDrawRectWithSize(t *testing.T) {
	s := NewSurface(40, 10)
	s.Clear(NewCharacter(' ', White, Black, FlagNone))
	s.DrawRect(RectWithSize(1, 1, 20, 5), LineDouble, DefaultAttribute)
	expectHash(t, s, 0xB2DEA1E9B27FD8B1)
}

var allLineTypes = []LineType{
	LineSingle, LineDouble, LineSingleThick, LineBorder, LineAscii, LineAsciiRound, LineSingleRound,
}

func TestDrawLines(t *testing.T) {
	tests := []struct {
		name string
		size Size
		draw func(s *Surface, i int, lt LineType)
		want uint64
	}{
		{
			name: "vertical",
			size: Size{15, 7},
			draw: func(s *Surface, i int, lt LineType) { s.DrawVerticalLine(1+2*i, 1, 5, lt, DefaultAttribute) },
			want: 0xBA48710BD060DFAB,
		},
		{
			name: "vertical with size",
			size: Size{15, 7},
			draw: func(s *Surface, i int, lt LineType) { s.DrawVerticalLineWithSize(1+2*i, 1, 5, lt, DefaultAttribute) },
			want: 0xBA48710BD060DFAB,
		},
		{
			name: "horizontal",
			size: Size{20, 15},
			draw: func(s *Surface, i int, lt LineType) { s.DrawHorizontalLine(1, 1+2*i, 15, lt, DefaultAttribute) },
			want: 0xC8627A5B784CE327,
		},
		{
			name: "horizontal with size",
			size: Size{20, 15},
			draw: func(s *Surface, i int, lt LineType) { s.DrawHorizontalLineWithSize(1, 1+2*i, 15, lt, DefaultAttribute) },
			want: 0xC8627A5B784CE327,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.size.Width, tt.size.Height)
			s.Clear(NewCharacter(' ', White, Black, FlagNone))
			for i, lt := range allLineTypes {
				tt.draw(s, i, lt)
			}
			expectHash(t, s, tt.want)
		})
	}
}

func TestCursor(t *testing.T) {
	s := NewSurface(20, 15)
	check := func(step string, x, y int, visible bool) {
		t.Helper()
		c := s.Cursor()
		if c.Visible != visible {
			t.Errorf("%s: expected visible=%v, got %v", step, visible, c.Visible)
			return
		}
		if visible && (c.X != x || c.Y != y) {
			t.Errorf("%s: expected cursor (%d,%d), got (%d,%d)", step, x, y, c.X, c.Y)
		}
	}

	s.SetCursor(10, 5)
	check("plain", 10, 5, true)
	s.HideCursor()
	check("hidden", 0, 0, false)
	s.SetOrigin(3, 3)
	s.SetCursor(2, 2)
	check("origin", 5, 5, true)
	s.SetCursor(-2, -2)
	check("negative", 1, 1, true)
	s.SetClip(3, 3, 6, 6)
	s.SetCursor(-2, -2)
	check("clipped before", 0, 0, false)
	s.SetCursor(4, 4)
	check("clipped after", 0, 0, false)
	s.SetCursor(2, 2)
	check("inside clip", 5, 5, true)
}

func TestDrawSurface(t *testing.T) {
	s := NewSurface(20, 15)
	s2 := NewSurface(8, 6)
	s2.Clear(NewCharacter('X', Yellow, Black, FlagNone))
	s2.DrawRect(NewRect(0, 0, 7, 5), LineDouble, AttrWithColor(White, DarkRed))

	s.DrawSurface(2, 2, s2)
	expectHash(t, s, 0x22F426820E128C0D)
	s.DrawSurface(-2, -2, s2)
	expectHash(t, s, 0x6D7FD783EB0FC3F0)

	s.Clear(CharWithCode('.'))
	s.SetClip(3, 3, 5, 5)
	s.SetOrigin(3, 3)
	s.DrawSurface(0, 0, s2)
	expectHash(t, s, 0x3C4BAE452177CAE0)
	s.DrawSurface(-5, -3, s2)
	expectHash(t, s, 0xA18677AAC315ACE5)

	s.ResetClip()
	s.DrawSurface(-5, -3, s2)
	expectHash(t, s, 0x3E6031703919C392)
}

func TestColors(t *testing.T) {
	s := NewSurface(40, 5)
	s.WriteChar(1, 1, NewCharacter('A', White, Red, FlagNone))
	s.WriteChar(2, 1, NewCharacter('A', Red, Black, FlagNone))
	s.WriteChar(3, 1, NewCharacter('B', Yellow, Blue, FlagNone))
	s.WriteChar(4, 1, NewCharacter('B', Blue, Yellow, FlagNone))
	s.WriteChar(5, 1, NewCharacter('C', Yellow, DarkBlue, FlagNone))
	s.WriteChar(6, 1, NewCharacter('B', Black, Magenta, FlagNone))
	s.FillRect(NewRect(10, 1, 30, 3), NewCharacter(' ', Yellow, DarkBlue, FlagNone))
	s.DrawRect(NewRect(10, 1, 30, 3), LineDouble, AttrWithColor(White, DarkBlue))
	expectHash(t, s, 0xF47F25A9A2342269)
}

func TestWriteStringSingleLine(t *testing.T) {
	s := NewSurface(40, 10)
	s.WriteString(1, 1, "text", AttrWithColor(White, DarkRed), false)
	s.SetClip(6, 1, 10, 1)
	s.SetOrigin(6, 1)
	s.WriteString(0, 0, "A longer text", AttrWithColor(White, DarkRed), false)
	s.ResetClip()
	s.WriteString(0, 2, "A longer text", AttrWithColor(White, DarkBlue), false)
	s.SetClip(6, 4, 10, 4)
	s.SetOrigin(6, 4)
	s.WriteString(-2, 0, "A longer text", AttrWithColor(White, Magenta), false)
	expectHash(t, s, 0x8D311DA4D1D1666E)
}

const multiLineText = "Hello, world\nThis is a multi-line\nString"

func TestWriteStringMultiLine(t *testing.T) {
	s := NewSurface(40, 10)
	s.WriteString(1, 1, multiLineText, AttrWithColor(White, DarkRed), true)
	s.SetClip(10, 3, 20, 4)
	s.WriteString(9, 3, multiLineText, AttrWithColor(White, DarkGreen), true)
	expectHash(t, s, 0xFD638AC7F26D347A)
}

func TestResize(t *testing.T) {
	s := NewSurface(40, 10)
	s.WriteString(1, 1, multiLineText, AttrWithColor(White, DarkRed), true)
	expectHash(t, s, 0xB015E3D08D4D238B)

	s.Resize(20, 5)
	if s.Size() != (Size{Width: 20, Height: 5}) {
		t.Errorf("Expected size 20x5, got %v", s.Size())
	}
	s.WriteString(1, 1, multiLineText, AttrWithColor(White, DarkRed), true)
	expectHash(t, s, 0x5CA6952034D223D2)

	s.Resize(100, 30)
	s.WriteString(1, 1, multiLineText, AttrWithColor(White, DarkRed), true)
	expectHash(t, s, 0x9891C34A4738FD0B)
}

func TestNewSurfaceClampsSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, 1, 1},
		{-5, 3, 1, 3},
		{20000, 2, 10000, 2},
	}
	for _, tt := range tests {
		s := NewSurface(tt.w, tt.h)
		if s.Width() != tt.wantW || s.Height() != tt.wantH {
			t.Errorf("NewSurface(%d,%d): expected %dx%d, got %dx%d", tt.w, tt.h, tt.wantW, tt.wantH, s.Width(), s.Height())
		}
	}
}

func TestCharacterSetMerge(t *testing.T) {
	c := NewCharacter('a', Red, Blue, FlagBold)
	c.Set(CharWithCode('b'))
	if c.Code != 'b' || c.Fg != Red || c.Bg != Blue || c.Flags != FlagNone {
		t.Errorf("Expected b/Red/Blue/None, got %c/%v/%v/%d", c.Code, c.Fg, c.Bg, c.Flags)
	}
	c.Set(CharWithColor(Yellow, Transparent))
	if c.Code != 'b' || c.Fg != Yellow || c.Bg != Blue {
		t.Errorf("Expected b/Yellow/Blue, got %c/%v/%v", c.Code, c.Fg, c.Bg)
	}
}

func TestSetBaseClipBoundsSetClip(t *testing.T) {
	s := NewSurface(20, 10)
	s.SetBaseClip(5, 2, 14, 7)
	s.SetClip(0, 0, 19, 9)
	clip := s.ClipArea()
	if clip.Left != 5 || clip.Top != 2 || clip.Right != 14 || clip.Bottom != 7 {
		t.Errorf("Expected clip (5,2,14,7), got (%d,%d,%d,%d)", clip.Left, clip.Top, clip.Right, clip.Bottom)
	}
	s.SetBaseOrigin(5, 2)
	s.SetOrigin(1, 1)
	s.WriteChar(0, 0, CharWithCode('Z'))
	s.ResetBaseClip()
	s.ResetOrigin()
	s.SetBaseOrigin(0, 0)
	s.ResetOrigin()
	if ch, _ := s.Get(6, 3); ch.Code != 'Z' {
		t.Errorf("Expected 'Z' at (6,3), got %q", ch.Code)
	}
}

func TestRGBColorsChangeHash(t *testing.T) {
	a := NewSurface(4, 2)
	b := NewSurface(4, 2)
	b.WriteChar(0, 0, NewCharacter(' ', White, RGB(0, 0, 0), FlagNone))
	if a.Hash() == b.Hash() {
		t.Error("Expected explicit RGB background to change the hash")
	}
	if RGB(1, 2, 3).Index() != rgbIndex {
		t.Errorf("Expected RGB index %d, got %d", rgbIndex, RGB(1, 2, 3).Index())
	}
	if r, g, bl, ok := RGB(1, 2, 3).Components(); !ok || r != 1 || g != 2 || bl != 3 {
		t.Errorf("Expected components 1,2,3, got %d,%d,%d (%v)", r, g, bl, ok)
	}
}
