package controls

import (
	"fmt"

	"github.com/lixenwraith/cellui/components"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

const (
	charPickerColumns = 16
	charCellWidth     = 2
	charPickerWidth   = charPickerColumns*charCellWidth + 3
)

// charRange is an inclusive block of code points offered by the picker
type charRange struct {
	first, last rune
}

var pickerRanges = []charRange{
	{0x21, 0x7E},     // ASCII
	{0xA1, 0xFF},     // Latin-1
	{0x2190, 0x2199}, // arrows
	{0x2500, 0x257F}, // box drawing
	{0x2580, 0x259F}, // blocks
	{0x25A0, 0x25FF}, // geometric shapes
}

func pickerChars() []rune {
	var out []rune
	for _, r := range pickerRanges {
		for ch := r.first; ch <= r.last; ch++ {
			out = append(out, ch)
		}
	}
	return out
}

// CharPicker selects one character from a grid shown while expanded
// Space or Enter opens the grid; arrows move, Space or Enter commits, Escape restores the previous character
type CharPicker struct {
	ui.ControlBase
	chars   []rune
	nav     components.Navigator
	current int // committed index
	headerY int
	panelY  int
}

// NewCharPicker starts on ch, or on the first character when ch is not offered
func NewCharPicker(layout ui.Layout, ch rune) *CharPicker {
	c := &CharPicker{
		ControlBase: ui.NewControlBase(layout, ui.DefaultFlags),
		chars:       pickerChars(),
	}
	c.nav = components.NewNavigator(len(c.chars), charPickerColumns)
	for i, r := range c.chars {
		if r == ch {
			c.current = i
			break
		}
	}
	c.nav.SetIndex(c.current)
	return c
}

// Char returns the committed character
func (c *CharPicker) Char() rune { return c.chars[c.current] }

// SetChar commits ch without raising an event, false when ch is not offered
func (c *CharPicker) SetChar(ch rune) bool {
	for i, r := range c.chars {
		if r == ch {
			c.current = i
			c.nav.SetIndex(i)
			return true
		}
	}
	return false
}

func (c *CharPicker) gridRows() int {
	return max(c.ExpandedSize().Height-3, 1)
}

func (c *CharPicker) OnExpand(dir ui.ExpandDirection) {
	h := c.ExpandedSize().Height
	if dir == ui.ExpandOnTop {
		c.panelY, c.headerY = 0, h-1
	} else {
		c.panelY, c.headerY = 1, 0
	}
	c.nav.SetVisibleRows(c.gridRows())
}

func (c *CharPicker) OnPack() {
	c.panelY, c.headerY = 0, 0
	c.nav.SetIndex(c.current)
}

// OnDefaultAction opens the grid, or commits the highlighted character when open
func (c *CharPicker) OnDefaultAction() {
	if c.IsExpanded() {
		c.commit()
		return
	}
	c.Expand(graphics.Size{Width: charPickerWidth, Height: 4},
		graphics.Size{Width: charPickerWidth, Height: c.nav.Rows() + 3})
}

func (c *CharPicker) commit() {
	if idx := c.nav.Index(); idx != c.current {
		c.current = idx
		c.RaiseEvent(CharChanged{Char: c.chars[idx]})
	}
	c.Pack()
}

func (c *CharPicker) OnPaint(s *graphics.Surface, th *ui.Theme) {
	width := c.Size().Width
	attr := th.Button.Pick(&c.ControlBase)
	s.FillHorizontalLineWithSize(0, c.headerY, width, graphics.CharWithAttr(' ', attr))
	ch := c.chars[c.current]
	if c.IsExpanded() {
		ch = c.chars[c.nav.Index()]
	}
	f := graphics.NewTextFormat(1, c.headerY, attr, graphics.AlignLeft)
	f.Width = max(width-4, 0)
	s.WriteText(fmt.Sprintf("%c U+%04X", ch, ch), f)
	if width > 2 {
		arrow := rune(graphics.ArrowDown)
		if c.IsExpanded() {
			arrow = graphics.ArrowUp
		}
		s.WriteChar(width-2, c.headerY, graphics.CharWithAttr(arrow, attr))
	}
	if !c.IsExpanded() {
		return
	}

	menu := &th.Menu
	size := c.ExpandedSize()
	box := graphics.NewRect(0, c.panelY, size.Width-1, c.panelY+size.Height-2)
	s.FillRect(box, graphics.CharWithAttr(' ', menu.Normal))
	s.DrawRect(box, graphics.LineSingle, menu.Normal)
	rows := c.gridRows()
	for row := 0; row < rows; row++ {
		for col := 0; col < c.nav.Columns(); col++ {
			idx := c.nav.IndexAt(col, row)
			if idx < 0 {
				break
			}
			cellAttr := menu.Normal
			switch idx {
			case c.nav.Index():
				cellAttr = menu.Pressed
			case c.current:
				cellAttr = menu.Hovered
			}
			x, y := 1+col*charCellWidth, c.panelY+1+row
			s.WriteChar(x, y, graphics.CharWithAttr(' ', cellAttr))
			s.WriteChar(x+1, y, graphics.CharWithAttr(c.chars[idx], cellAttr))
		}
	}
	if c.nav.TopRow() > 0 {
		s.WriteChar(box.Right-1, box.Top, graphics.CharWithAttr(graphics.ArrowUp, menu.Normal))
	}
	if c.nav.TopRow()+rows < c.nav.Rows() {
		s.WriteChar(box.Right-1, box.Bottom, graphics.CharWithAttr(graphics.ArrowDown, menu.Normal))
	}
}

func (c *CharPicker) OnKeyPressed(key input.Key, ch rune) ui.EventProcessStatus {
	switch key {
	case input.NewKey(input.KeySpace, input.ModNone), input.NewKey(input.KeyEnter, input.ModNone):
		c.OnDefaultAction()
		return ui.Processed
	case input.NewKey(input.KeyEscape, input.ModNone):
		if c.IsExpanded() {
			c.Pack()
			return ui.Processed
		}
		return ui.Ignored
	}
	if c.IsExpanded() && c.nav.Move(key) {
		return ui.Processed
	}
	return ui.Ignored
}

// cellAt maps a control-local point inside the open grid to a character index
func (c *CharPicker) cellAt(x, y int) int {
	if !c.IsExpanded() || x < 1 {
		return -1
	}
	return c.nav.IndexAt((x-1)/charCellWidth, y-(c.panelY+1))
}

func (c *CharPicker) OnMouseEvent(ev ui.MouseEvent) ui.EventProcessStatus {
	switch ev.Kind {
	case ui.MousePressed:
		if ev.Y == c.headerY {
			c.OnDefaultAction()
			return ui.Processed
		}
		if idx := c.cellAt(ev.X, ev.Y); idx >= 0 {
			c.nav.SetIndex(idx)
			c.commit()
			return ui.Processed
		}
	case ui.MouseWheel:
		if !c.IsExpanded() {
			return ui.Ignored
		}
		switch ev.Wheel {
		case input.WheelUp:
			c.nav.Move(input.NewKey(input.KeyUp, input.ModNone))
		case input.WheelDown:
			c.nav.Move(input.NewKey(input.KeyDown, input.ModNone))
		}
		return ui.Processed
	case ui.MouseHover:
		if idx := c.cellAt(ev.X, ev.Y); idx >= 0 {
			c.ShowTooltipOnPoint(fmt.Sprintf("U+%04X", c.chars[idx]), ev.X, ev.Y)
			return ui.Processed
		}
	case ui.MouseLeave:
		c.HideTooltip()
		return ui.Processed
	}
	return ui.Ignored
}
