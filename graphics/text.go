package graphics

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextAlignment positions text relative to TextFormat.X
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// TextFormat describes how WriteText lays out a string
type TextFormat struct {
	X, Y       int
	Width      int // visible cells; 0 shows the whole line
	Attr       CharAttribute
	Align      TextAlignment
	HotKeyAttr CharAttribute
	HotKeyPos  int // rune index of the highlighted character, -1 for none
	MultiLine  bool
}

// NewTextFormat creates a single-line format without hot key
func NewTextFormat(x, y int, attr CharAttribute, align TextAlignment) TextFormat {
	return TextFormat{X: x, Y: y, Attr: attr, Align: align, HotKeyPos: -1}
}

// WithHotKey highlights the rune at pos with attr
func (f TextFormat) WithHotKey(attr CharAttribute, pos int) TextFormat {
	f.HotKeyAttr = attr
	f.HotKeyPos = pos
	return f
}

// TextWidth returns the number of cells a string occupies
func TextWidth(text string) int {
	n := 0
	for _, r := range text {
		if runewidth.RuneWidth(r) > 0 {
			n++
		}
	}
	return n
}

// WriteText writes aligned, width-limited text with an optional hot key
// Zero-width runes do not occupy a cell
func (s *Surface) WriteText(text string, f TextFormat) {
	if !f.MultiLine {
		s.writeTextSingle(text, f.Y, 0, &f)
		return
	}
	index := 0
	for i, line := range splitLines(text) {
		s.writeTextSingle(line, f.Y+i, index, &f)
		index += TextWidth(line)
	}
}

// splitLines breaks on "\r\n", '\n' and '\r', keeping empty rows
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func (s *Surface) writeTextSingle(text string, y, firstIndex int, f *TextFormat) {
	if !s.clip.ContainsY(y + s.origin.Y) {
		return
	}
	count := TextWidth(text)
	width := count
	if f.Width > 0 && f.Width < count {
		width = f.Width
	}
	var x, left int
	switch f.Align {
	case AlignCenter:
		x = f.X - count/2
		left = f.X - width/2
	case AlignRight:
		x = f.X + 1 - count
		left = f.X + 1 - width
	default:
		x = f.X
		left = f.X
	}
	right := left + width
	c := CharWithAttr(' ', f.Attr)
	idx := firstIndex
	for _, r := range text {
		if runewidth.RuneWidth(r) == 0 {
			continue
		}
		if x >= left && x < right {
			if pos, ok := s.offset(x, y); ok {
				if idx == f.HotKeyPos {
					s.chars[pos].Set(CharWithAttr(r, f.HotKeyAttr))
				} else {
					c.Code = r
					s.chars[pos].Set(c)
				}
			}
		}
		x++
		idx++
	}
}
