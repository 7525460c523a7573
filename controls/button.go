package controls

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// Button raises ButtonPressed on Enter, Space, its Alt hot key or a click released over it
type Button struct {
	ui.ControlBase
	caption ui.Caption
	pressed bool
}

// NewButton creates a button; an '&' in caption marks the hot key
func NewButton(caption string, layout ui.Layout) *Button {
	b := &Button{
		ControlBase: ui.NewControlBase(layout, ui.DefaultFlags),
		caption:     ui.NewCaption(caption),
	}
	b.SetHotKey(b.caption.HotKey())
	return b
}

func (b *Button) Caption() string { return b.caption.Text() }

func (b *Button) SetCaption(caption string) {
	b.caption = ui.NewCaption(caption)
	b.SetHotKey(b.caption.HotKey())
}

func (b *Button) OnPaint(s *graphics.Surface, th *ui.Theme) {
	size := b.Size()
	attr, hot := th.Button.Pick(&b.ControlBase), th.HotKey.Pick(&b.ControlBase)
	if b.pressed {
		attr, hot = th.Button.Pressed, th.HotKey.Pressed
	}
	s.FillRect(graphics.RectWithSize(0, 0, size.Width, size.Height), graphics.CharWithAttr(' ', attr))
	f := b.caption.Format(size.Width/2, size.Height/2, attr, hot, graphics.AlignCenter)
	f.Width = max(size.Width-2, 0)
	s.WriteText(b.caption.Text(), f)
}

func (b *Button) OnDefaultAction() {
	b.RaiseEvent(ButtonPressed{})
}

func (b *Button) OnKeyPressed(key input.Key, ch rune) ui.EventProcessStatus {
	switch key {
	case input.NewKey(input.KeyEnter, input.ModNone), input.NewKey(input.KeySpace, input.ModNone):
		b.OnDefaultAction()
		return ui.Processed
	}
	return ui.Ignored
}

func (b *Button) OnMouseEvent(ev ui.MouseEvent) ui.EventProcessStatus {
	switch ev.Kind {
	case ui.MouseEnter, ui.MouseLeave:
		return ui.Processed
	case ui.MousePressed:
		if ev.Button == input.MouseLeft {
			b.pressed = true
			return ui.Processed
		}
	case ui.MouseDrag:
		size := b.Size()
		inside := ev.X >= 0 && ev.Y >= 0 && ev.X < size.Width && ev.Y < size.Height
		if inside != b.pressed {
			b.pressed = inside
			return ui.Processed
		}
	case ui.MouseReleased:
		if b.pressed {
			b.pressed = false
			b.OnDefaultAction()
			return ui.Processed
		}
	}
	return ui.Ignored
}
