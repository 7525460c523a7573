package controls

import (
	"github.com/lixenwraith/cellui/components"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// ComboBox is a one row drop-down list
// Space or Enter opens it, typing filters the open list, Enter or a click picks, Escape closes
type ComboBox struct {
	ui.ControlBase
	list *components.ComboBoxComponent
}

func NewComboBox(layout ui.Layout) *ComboBox {
	return &ComboBox{
		ControlBase: ui.NewControlBase(layout, ui.DefaultFlags),
		list:        components.NewComboBoxComponent(),
	}
}

// Add appends an item with an optional description shown as a tooltip in the open list
func (c *ComboBox) Add(name, description string) {
	c.list.Add(components.Item{Name: name, Description: description})
}

func (c *ComboBox) Len() int      { return c.list.Len() }
func (c *ComboBox) Selected() int { return c.list.Selected() }

// SelectedName returns the name of the selection
func (c *ComboBox) SelectedName() (string, bool) {
	item, ok := c.list.SelectedItem()
	return item.Name, ok
}

// Select changes the selection without raising an event
func (c *ComboBox) Select(index int) {
	c.list.SetSelected(index)
}

func (c *ComboBox) OnPaint(s *graphics.Surface, th *ui.Theme) {
	c.list.Paint(s, th, &c.ControlBase)
}

func (c *ComboBox) OnExpand(dir ui.ExpandDirection) {
	c.list.OnExpand(dir, c.ExpandedSize())
}

func (c *ComboBox) OnPack() {
	c.list.OnPack()
	c.HideTooltip()
}

// OnDefaultAction toggles the list
func (c *ComboBox) OnDefaultAction() {
	if c.IsExpanded() {
		c.Pack()
		return
	}
	if c.list.Len() == 0 {
		return
	}
	minSize, preferred := c.list.ExpandSizes(c.Size().Width)
	c.Expand(minSize, preferred)
}

func (c *ComboBox) changed(yes bool) {
	if yes {
		c.RaiseEvent(SelectionChanged{Index: c.list.Selected()})
	}
}

func (c *ComboBox) OnKeyPressed(key input.Key, ch rune) ui.EventProcessStatus {
	switch key {
	case input.NewKey(input.KeyEscape, input.ModNone):
		if c.IsExpanded() {
			c.Pack()
			return ui.Processed
		}
		return ui.Ignored
	case input.NewKey(input.KeyEnter, input.ModNone):
		c.OnDefaultAction()
		return ui.Processed
	case input.NewKey(input.KeySpace, input.ModNone):
		if c.list.Filter() == "" {
			c.OnDefaultAction()
			return ui.Processed
		}
	}
	status, changed := c.list.ProcessKey(key, ch)
	c.changed(changed)
	return status
}

func (c *ComboBox) OnMouseEvent(ev ui.MouseEvent) ui.EventProcessStatus {
	handled, changed, chosen := c.list.ProcessMouse(&c.ControlBase, ev)
	c.changed(changed)
	if chosen {
		c.Pack()
	}
	if handled {
		return ui.Processed
	}
	if ev.Kind == ui.MousePressed && ev.Y == c.list.HeaderY() {
		c.OnDefaultAction()
		return ui.Processed
	}
	return ui.Ignored
}
