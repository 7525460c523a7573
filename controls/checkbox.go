package controls

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// CheckBox toggles on Space, Enter, its hot key or a click and raises CheckedChanged
type CheckBox struct {
	ui.ControlBase
	caption ui.Caption
	checked bool
}

func NewCheckBox(caption string, layout ui.Layout, checked bool) *CheckBox {
	c := &CheckBox{
		ControlBase: ui.NewControlBase(layout, ui.DefaultFlags),
		caption:     ui.NewCaption(caption),
		checked:     checked,
	}
	c.SetHotKey(c.caption.HotKey())
	return c
}

func (c *CheckBox) IsChecked() bool { return c.checked }

// SetChecked changes the state without raising an event
func (c *CheckBox) SetChecked(on bool) {
	c.checked = on
	if rt := c.Runtime(); rt != nil {
		rt.Invalidate()
	}
}

func (c *CheckBox) OnPaint(s *graphics.Surface, th *ui.Theme) {
	attr, hot := th.Text.Pick(&c.ControlBase), th.HotKey.Pick(&c.ControlBase)
	mark := ' '
	if c.checked {
		mark = graphics.CheckMark
	}
	s.WriteString(0, 0, "[ ] ", attr, false)
	s.WriteChar(1, 0, graphics.CharWithAttr(mark, attr))
	f := c.caption.Format(4, 0, attr, hot, graphics.AlignLeft)
	f.Width = max(c.Size().Width-4, 0)
	s.WriteText(c.caption.Text(), f)
	if c.HasFocus() {
		s.SetCursor(1, 0)
	}
}

func (c *CheckBox) OnDefaultAction() {
	c.checked = !c.checked
	c.RaiseEvent(CheckedChanged{Checked: c.checked})
}

func (c *CheckBox) OnKeyPressed(key input.Key, ch rune) ui.EventProcessStatus {
	switch key {
	case input.NewKey(input.KeySpace, input.ModNone), input.NewKey(input.KeyEnter, input.ModNone):
		c.OnDefaultAction()
		return ui.Processed
	}
	return ui.Ignored
}

func (c *CheckBox) OnMouseEvent(ev ui.MouseEvent) ui.EventProcessStatus {
	switch ev.Kind {
	case ui.MouseEnter, ui.MouseLeave:
		return ui.Processed
	case ui.MouseReleased:
		size := c.Size()
		if ev.Button == input.MouseLeft && ev.X >= 0 && ev.Y >= 0 && ev.X < size.Width && ev.Y < size.Height {
			c.OnDefaultAction()
			return ui.Processed
		}
	}
	return ui.Ignored
}
