package components

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// Item is one entry of a combo box list
type Item struct {
	Name        string
	Description string
	Value       any
}

// ComboBoxComponent holds the list, selection and popup geometry shared by drop-down controls
// The owning control forwards OnExpand, OnPack, paint, key and mouse calls to it
//
// Expanded geometry, in control rows, for a popup of height H:
//
//	below: header 0, box 1..H-1, items 2..H-2
//	above: box 0..H-2, items 1..H-3, header H-1
type ComboBoxComponent struct {
	items    []Item
	shown    []int // indices into items that pass the filter, in display order
	selected int   // index into items, -1 for none
	filter   []rune

	scroll   ScrollState
	headerY  int
	panelY   int
	expanded int // popup height, 0 while packed
	hover    int // row in shown under the pointer, -1 for none
}

func NewComboBoxComponent() *ComboBoxComponent {
	return &ComboBoxComponent{selected: -1, hover: -1, scroll: NewScrollState(0, 0)}
}

// ===== ITEMS =====

// Add appends an item; the first item added becomes the selection
func (c *ComboBoxComponent) Add(item Item) {
	c.items = append(c.items, item)
	if c.selected < 0 {
		c.selected = 0
	}
	c.refilter()
}

// Clear removes every item
func (c *ComboBoxComponent) Clear() {
	c.items = nil
	c.selected = -1
	c.refilter()
}

func (c *ComboBoxComponent) Len() int      { return len(c.items) }
func (c *ComboBoxComponent) Selected() int { return c.selected }

// Filter is the text typed while expanded
func (c *ComboBoxComponent) Filter() string {
	return string(c.filter)
}

// Item returns the item at index
func (c *ComboBoxComponent) Item(index int) (Item, bool) {
	if index < 0 || index >= len(c.items) {
		return Item{}, false
	}
	return c.items[index], true
}

// SelectedItem returns the current selection
func (c *ComboBoxComponent) SelectedItem() (Item, bool) {
	return c.Item(c.selected)
}

// SetSelected selects an item by index, reports whether the selection changed
func (c *ComboBoxComponent) SetSelected(index int) bool {
	if index < 0 || index >= len(c.items) || index == c.selected {
		return false
	}
	c.selected = index
	c.scroll.Select(c.selectedRow())
	return true
}

// selectedRow is the position of the selection in the shown list, -1 when filtered out
func (c *ComboBoxComponent) selectedRow() int {
	for row, idx := range c.shown {
		if idx == c.selected {
			return row
		}
	}
	return -1
}

// refilter rebuilds the shown list from the filter text, best fuzzy matches first
func (c *ComboBoxComponent) refilter() {
	c.shown = c.shown[:0]
	if len(c.filter) == 0 {
		for i := range c.items {
			c.shown = append(c.shown, i)
		}
	} else {
		names := make([]string, len(c.items))
		for i, it := range c.items {
			names[i] = it.Name
		}
		ranks := fuzzy.RankFindFold(string(c.filter), names)
		sort.Stable(ranks)
		for _, r := range ranks {
			c.shown = append(c.shown, r.OriginalIndex)
		}
	}
	c.scroll.SetTotal(len(c.shown))
	c.hover = -1
	row := c.selectedRow()
	if row < 0 && len(c.shown) > 0 && len(c.filter) > 0 {
		c.selected = c.shown[0]
		row = 0
	}
	c.scroll.Selection = row
	c.scroll.EnsureVisible(row)
}

// selectRow moves the selection to a row of the shown list
func (c *ComboBoxComponent) selectRow(row int) bool {
	if len(c.shown) == 0 {
		return false
	}
	row = ClampCursor(row, len(c.shown))
	c.scroll.Select(row)
	if c.shown[row] == c.selected {
		return false
	}
	c.selected = c.shown[row]
	return true
}

// selectByLetter picks the next item after the selection whose name starts with ch
func (c *ComboBoxComponent) selectByLetter(ch rune) bool {
	n := len(c.items)
	ch = unicode.ToLower(ch)
	for i := 1; i <= n; i++ {
		idx := (max(c.selected, 0) + i) % n
		if r, _ := utf8.DecodeRuneInString(c.items[idx].Name); unicode.ToLower(r) == ch {
			return c.SetSelected(idx)
		}
	}
	return false
}

// ===== EXPAND =====

// ExpandSizes returns the minimum and preferred popup sizes for a control of the given width
func (c *ComboBoxComponent) ExpandSizes(width int) (minSize, preferred graphics.Size) {
	return graphics.Size{Width: width, Height: min(len(c.items)+3, 4)},
		graphics.Size{Width: width, Height: len(c.items) + 3}
}

// VisibleRows is the number of item rows in the popup
func (c *ComboBoxComponent) VisibleRows() int {
	return max(c.expanded-3, 0)
}

// IsExpanded reports an open popup
func (c *ComboBoxComponent) IsExpanded() bool { return c.expanded > 0 }

// HeaderY is the control row that shows the selection
func (c *ComboBoxComponent) HeaderY() int { return c.headerY }

// OnExpand records the popup geometry
func (c *ComboBoxComponent) OnExpand(dir ui.ExpandDirection, size graphics.Size) {
	c.expanded = size.Height
	if dir == ui.ExpandOnTop {
		c.panelY = 0
		c.headerY = size.Height - 1
	} else {
		c.panelY = 1
		c.headerY = 0
	}
	c.hover = -1
	c.scroll.SetVisible(c.VisibleRows())
	c.scroll.Selection = c.selectedRow()
	c.scroll.EnsureVisible(c.scroll.Selection)
}

// OnPack drops the popup geometry and the filter
func (c *ComboBoxComponent) OnPack() {
	c.expanded = 0
	c.headerY, c.panelY = 0, 0
	c.filter = c.filter[:0]
	c.refilter()
}

// itemRowAt maps a control row to a row of the shown list, -1 outside the items
func (c *ComboBoxComponent) itemRowAt(y int) int {
	first := c.panelY + 1
	if !c.IsExpanded() || y < first || y >= first+c.VisibleRows() {
		return -1
	}
	row := c.scroll.Offset + (y - first)
	if row >= len(c.shown) {
		return -1
	}
	return row
}

// ===== PAINT =====

// Paint draws the header and, while expanded, the item box
func (c *ComboBoxComponent) Paint(s *graphics.Surface, th *ui.Theme, b *ui.ControlBase) {
	width := b.Size().Width
	attr := th.Button.Pick(b)
	s.FillHorizontalLineWithSize(0, c.headerY, width, graphics.CharWithAttr(' ', attr))
	if item, ok := c.SelectedItem(); ok && width > 4 {
		f := graphics.NewTextFormat(1, c.headerY, attr, graphics.AlignLeft)
		f.Width = width - 4
		s.WriteText(item.Name, f)
	}
	arrow := rune(graphics.ArrowDown)
	if c.IsExpanded() {
		arrow = graphics.ArrowUp
	}
	if width > 2 {
		s.WriteChar(width-2, c.headerY, graphics.CharWithAttr(arrow, attr))
	}
	if !c.IsExpanded() {
		return
	}

	menu := &th.Menu
	box := graphics.NewRect(0, c.panelY, width-1, c.panelY+c.expanded-2)
	s.FillRect(box, graphics.CharWithAttr(' ', menu.Normal))
	s.DrawRect(box, graphics.LineSingle, menu.Normal)

	rows := c.VisibleRows()
	for i := 0; i < rows; i++ {
		row := c.scroll.Offset + i
		if row >= len(c.shown) {
			break
		}
		y := c.panelY + 1 + i
		rowAttr := menu.Normal
		switch {
		case c.shown[row] == c.selected:
			rowAttr = menu.Pressed
		case row == c.hover:
			rowAttr = menu.Hovered
		}
		s.FillHorizontalLineWithSize(1, y, width-2, graphics.CharWithAttr(' ', rowAttr))
		f := graphics.NewTextFormat(2, y, rowAttr, graphics.AlignLeft)
		f.Width = max(width-4, 0)
		s.WriteText(c.items[c.shown[row]].Name, f)
	}

	if !c.scroll.AllVisible() && width > 3 {
		upAttr, downAttr := menu.Normal, menu.Normal
		if c.scroll.AtTop() {
			upAttr = menu.Inactive
		}
		if c.scroll.AtBottom() {
			downAttr = menu.Inactive
		}
		s.WriteChar(width-2, box.Top, graphics.CharWithAttr(graphics.ArrowUp, upAttr))
		s.WriteChar(width-2, box.Bottom, graphics.CharWithAttr(graphics.ArrowDown, downAttr))
	}
	if len(c.filter) > 0 && width > 6 {
		f := graphics.NewTextFormat(2, box.Bottom, menu.Pressed, graphics.AlignLeft)
		f.Width = width - 6
		s.WriteText("["+string(c.filter)+"]", f)
	}
}

// ===== INPUT =====

// ProcessKey handles navigation and, while expanded, type-to-filter
// Enter, Space and Escape are left to the owner
func (c *ComboBoxComponent) ProcessKey(key input.Key, ch rune) (status ui.EventProcessStatus, changed bool) {
	switch key {
	case input.NewKey(input.KeyUp, input.ModNone):
		return ui.Processed, c.moveBy(-1)
	case input.NewKey(input.KeyDown, input.ModNone):
		return ui.Processed, c.moveBy(1)
	case input.NewKey(input.KeyPageUp, input.ModNone):
		return ui.Processed, c.moveBy(-c.pageSize())
	case input.NewKey(input.KeyPageDown, input.ModNone):
		return ui.Processed, c.moveBy(c.pageSize())
	case input.NewKey(input.KeyHome, input.ModNone):
		return ui.Processed, c.selectRow(0)
	case input.NewKey(input.KeyEnd, input.ModNone):
		return ui.Processed, c.selectRow(len(c.shown) - 1)
	case input.NewKey(input.KeyUp, input.ModCtrl):
		if c.IsExpanded() {
			c.scroll.ScrollBy(-1)
			return ui.Processed, false
		}
	case input.NewKey(input.KeyDown, input.ModCtrl):
		if c.IsExpanded() {
			c.scroll.ScrollBy(1)
			return ui.Processed, false
		}
	case input.NewKey(input.KeyBackspace, input.ModNone):
		if c.IsExpanded() && len(c.filter) > 0 {
			before := c.selected
			c.filter = c.filter[:len(c.filter)-1]
			c.refilter()
			return ui.Processed, c.selected != before
		}
	}

	if ch <= ' ' || key.Modifier&(input.ModCtrl|input.ModAlt) != 0 || len(c.items) == 0 {
		return ui.Ignored, false
	}
	if c.IsExpanded() {
		before := c.selected
		c.filter = append(c.filter, ch)
		c.refilter()
		return ui.Processed, c.selected != before
	}
	return ui.Processed, c.selectByLetter(ch)
}

func (c *ComboBoxComponent) pageSize() int {
	if c.IsExpanded() {
		return c.scroll.PageDelta()
	}
	return 1
}

func (c *ComboBoxComponent) moveBy(delta int) bool {
	row := c.selectedRow()
	if row < 0 {
		return c.selectRow(0)
	}
	return c.selectRow(row + delta)
}

// ProcessMouse handles an owner-local event
// chosen reports a click on an item, after which the owner normally packs
func (c *ComboBoxComponent) ProcessMouse(b *ui.ControlBase, ev ui.MouseEvent) (handled, changed, chosen bool) {
	switch ev.Kind {
	case ui.MouseWheel:
		switch ev.Wheel {
		case input.WheelUp:
			return true, c.moveBy(-1), false
		case input.WheelDown:
			return true, c.moveBy(1), false
		}
	case ui.MouseEnter, ui.MouseHover:
		row := c.itemRowAt(ev.Y)
		if row == c.hover {
			return row >= 0, false, false
		}
		c.hover = row
		if row >= 0 && c.items[c.shown[row]].Description != "" {
			b.ShowTooltipOnPoint(c.items[c.shown[row]].Description, b.Size().Width-1, ev.Y)
		} else {
			b.HideTooltip()
		}
		return true, false, false
	case ui.MouseLeave:
		c.hover = -1
		b.HideTooltip()
		return true, false, false
	case ui.MousePressed:
		if !c.IsExpanded() || ev.Button != input.MouseLeft {
			return false, false, false
		}
		width := b.Size().Width
		boxTop, boxBottom := c.panelY, c.panelY+c.expanded-2
		if ev.X == width-2 && !c.scroll.AllVisible() {
			switch ev.Y {
			case boxTop:
				c.scroll.ScrollBy(-1)
				return true, false, false
			case boxBottom:
				c.scroll.ScrollBy(1)
				return true, false, false
			}
		}
		if row := c.itemRowAt(ev.Y); row >= 0 {
			return true, c.selectRow(row), true
		}
	}
	return false, false, false
}
