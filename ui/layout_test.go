package ui

import (
	"errors"
	"testing"

	"github.com/lixenwraith/cellui/graphics"
)

func TestParseLayoutResolves(t *testing.T) {
	const pw, ph = 100, 50
	tests := []struct {
		format string
		want   graphics.Rect
	}{
		{"x:1,y:2,w:10,h:3", graphics.RectWithSize(1, 2, 10, 3)},
		{"x:50%,y:50%,w:20,h:6,a:c", graphics.RectWithSize(40, 22, 20, 6)},
		{"x:10,y:10,w:4,h:2,a:br", graphics.RectWithSize(6, 8, 4, 2)},
		{"x:0,y:0,w:25%,h:10%", graphics.RectWithSize(0, 0, 25, 5)},
		{"x:0,y:0,w:33.33%,h:1", graphics.RectWithSize(0, 0, 33, 1)},
		{"x = 3, y = 4", graphics.RectWithSize(3, 4, 1, 1)},
		{"a:br,w:10,h:3", graphics.RectWithSize(90, 47, 10, 3)},
		{"align:center,w:10,h:4", graphics.RectWithSize(45, 23, 10, 4)},
		{"d:l,w:20", graphics.RectWithSize(0, 0, 20, 50)},
		{"d:r,w:20", graphics.RectWithSize(80, 0, 20, 50)},
		{"dock:bottom,h:3", graphics.RectWithSize(0, 47, 100, 3)},
		{"d:br,w:10,h:5", graphics.RectWithSize(90, 45, 10, 5)},
		{"d:f", graphics.RectWithSize(0, 0, 100, 50)},
		{"l:2,t:1,r:3,b:4", graphics.RectWithSize(2, 1, 95, 45)},
		{"l:5,r:5,y:10,h:2", graphics.RectWithSize(5, 10, 90, 2)},
		{"t:5,b:5,x:10,w:8", graphics.RectWithSize(10, 5, 8, 40)},
		{"l:1,t:2,w:10,h:3", graphics.RectWithSize(1, 2, 10, 3)},
		{"r:1,b:2,w:10,h:3", graphics.RectWithSize(89, 45, 10, 3)},
		{"l:1,t:1,r:1,h:3", graphics.RectWithSize(1, 1, 98, 3)},
		{"l:1,b:1,r:1,h:3", graphics.RectWithSize(1, 46, 98, 3)},
		{"t:1,l:2,b:1,w:5", graphics.RectWithSize(2, 1, 5, 48)},
		{"t:1,r:2,b:1,w:5", graphics.RectWithSize(93, 1, 5, 48)},
		{"l:10%,t:10%,r:10%,b:10%", graphics.RectWithSize(10, 5, 80, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			l, err := ParseLayout(tt.format)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			cl := newControlLayout(l)
			cl.update(pw, ph)
			got := graphics.RectWithSize(cl.x, cl.y, cl.width, cl.height)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
			if l.String() != tt.format {
				t.Errorf("Expected String() %q, got %q", tt.format, l.String())
			}
		})
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []string{
		"",
		"x:1",
		"x:1,y:1,l:1",
		"l:1",
		"l:1,r:1,w:5",
		"t:1,b:1,h:5",
		"x:1,l:1,r:1",
		"d:l,h:5",
		"d:t,w:5",
		"d:f,w:3",
		"d:c,x:1",
		"q:1",
		"x:1,x:2,y:1",
		"x",
		"x:abc,y:1",
		"x:1,y:1,a:zz",
		"x:1%%,y:1",
	}
	for _, format := range tests {
		t.Run(format, func(t *testing.T) {
			_, err := ParseLayout(format)
			if err == nil {
				t.Fatalf("Expected an error")
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Expected ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestMustLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected MustLayout to panic")
		}
	}()
	MustLayout("w:1")
}

func TestSizeBoundsClamp(t *testing.T) {
	tests := []struct {
		name                   string
		minW, minH, maxW, maxH int
		want                   graphics.Size
	}{
		{"within", 1, 1, 200, 200, graphics.Size{Width: 100, Height: 50}},
		{"max", 1, 1, 30, 20, graphics.Size{Width: 30, Height: 20}},
		{"min", 120, 60, 200, 200, graphics.Size{Width: 120, Height: 60}},
		{"inverted ignored", 50, 50, 10, 10, graphics.Size{Width: 100, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newControlLayout(MustLayout("d:f"))
			cl.setSizeBounds(tt.minW, tt.minH, tt.maxW, tt.maxH)
			cl.update(100, 50)
			if got := (graphics.Size{Width: cl.width, Height: cl.height}); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCaptionHotKey(t *testing.T) {
	tests := []struct {
		in     string
		text   string
		pos    int
		hotKey string
	}{
		{"&Save", "Save", 0, "Alt+S"},
		{"E&xit", "Exit", 1, "Alt+X"},
		{"Fish && Chips", "Fish & Chips", -1, ""},
		{"Plain", "Plain", -1, ""},
		{"&1st", "1st", 0, "Alt+1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := NewCaption(tt.in)
			if c.Text() != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, c.Text())
			}
			if c.HotKeyPosition() != tt.pos {
				t.Errorf("Expected hot key position %d, got %d", tt.pos, c.HotKeyPosition())
			}
			if got := c.HotKey().String(); got != tt.hotKey {
				t.Errorf("Expected hot key %s, got %s", tt.hotKey, got)
			}
		})
	}
}
