package ui

import (
	"strings"

	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// Caption is a label text with an optional '&' marked hot key character
// "&Save" shows "Save" with S highlighted and binds Alt+S
type Caption struct {
	text      string
	hotKeyPos int
	hotKey    input.Key
}

// NewCaption parses the '&' marker; "&&" stands for a literal ampersand
func NewCaption(s string) Caption {
	c := Caption{hotKeyPos: -1}
	var b strings.Builder
	runes := []rune(s)
	pos := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '&' && i+1 < len(runes) {
			next := runes[i+1]
			i++
			if next != '&' && c.hotKeyPos < 0 {
				if k := input.HotKey(next, input.ModAlt); !k.IsNone() {
					c.hotKeyPos = pos
					c.hotKey = k
				}
			}
			r = next
		}
		b.WriteRune(r)
		pos++
	}
	c.text = b.String()
	return c
}

func (c Caption) Text() string        { return c.text }
func (c Caption) HotKey() input.Key   { return c.hotKey }
func (c Caption) HotKeyPosition() int { return c.hotKeyPos }
func (c Caption) Width() int          { return graphics.TextWidth(c.text) }

// Format returns a text format highlighting the hot key with hotKeyAttr
func (c Caption) Format(x, y int, attr, hotKeyAttr graphics.CharAttribute, align graphics.TextAlignment) graphics.TextFormat {
	f := graphics.NewTextFormat(x, y, attr, align)
	if c.hotKeyPos >= 0 {
		f = f.WithHotKey(hotKeyAttr, c.hotKeyPos)
	}
	return f
}
