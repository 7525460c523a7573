package controls

import (
	"github.com/lixenwraith/cellui/components"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// ListBox is a scrollable single selection list with a vertical scroll bar in its last column
type ListBox struct {
	ui.ControlBase
	items  []string
	scroll components.ScrollState
	bar    components.ScrollBar
}

func NewListBox(layout ui.Layout) *ListBox {
	l := &ListBox{
		ControlBase: ui.NewControlBase(layout, ui.DefaultFlags),
		scroll:      components.NewScrollState(0, 0),
		bar:         components.NewScrollBar(true),
	}
	return l
}

// Add appends an item; the first item becomes the selection
func (l *ListBox) Add(item string) {
	l.items = append(l.items, item)
	l.scroll.SetTotal(len(l.items))
	if l.scroll.Selection < 0 {
		l.scroll.Select(0)
	}
	l.bar.SetCount(len(l.items))
	l.bar.SetValue(l.scroll.Selection)
	if rt := l.Runtime(); rt != nil {
		rt.Invalidate()
	}
}

func (l *ListBox) Len() int { return len(l.items) }

// Selected returns the selected index, -1 for an empty list
func (l *ListBox) Selected() int { return l.scroll.Selection }

// SelectedItem returns the text of the selection
func (l *ListBox) SelectedItem() (string, bool) {
	if i := l.scroll.Selection; i >= 0 && i < len(l.items) {
		return l.items[i], true
	}
	return "", false
}

// Select moves the selection without raising an event
func (l *ListBox) Select(index int) {
	l.scroll.Select(index)
	l.bar.SetValue(l.scroll.Selection)
}

func (l *ListBox) OnResize(_, size graphics.Size) {
	l.scroll.SetVisible(size.Height)
	l.bar.Place(size.Width-1, 0, size.Height)
}

func (l *ListBox) OnPaint(s *graphics.Surface, th *ui.Theme) {
	size := l.Size()
	base := &l.ControlBase
	normal := th.Menu.Normal
	if !l.IsEnabled() {
		normal = th.Menu.Inactive
	}
	s.FillRect(graphics.RectWithSize(0, 0, size.Width, size.Height), graphics.CharWithAttr(' ', normal))

	textWidth := size.Width
	if l.bar.IsVisible() && !l.scroll.AllVisible() {
		textWidth--
	}
	for y := 0; y < size.Height; y++ {
		idx := l.scroll.Offset + y
		if idx >= len(l.items) {
			break
		}
		attr := normal
		if idx == l.scroll.Selection {
			attr = th.Menu.Pressed
			if !l.HasFocus() {
				attr = th.Menu.Hovered
			}
			s.FillHorizontalLineWithSize(0, y, textWidth, graphics.CharWithAttr(' ', attr))
		}
		f := graphics.NewTextFormat(1, y, attr, graphics.AlignLeft)
		f.Width = max(textWidth-2, 0)
		s.WriteText(l.items[idx], f)
	}
	if textWidth < size.Width {
		l.bar.Paint(s, th, base)
	}
}

// moveTo selects index and raises SelectionChanged when it moved
func (l *ListBox) moveTo(index int) {
	if l.scroll.Select(index) {
		l.RaiseEvent(SelectionChanged{Index: l.scroll.Selection})
	}
	l.bar.SetValue(l.scroll.Selection)
}

func (l *ListBox) OnKeyPressed(key input.Key, ch rune) ui.EventProcessStatus {
	if len(l.items) == 0 || key.Modifier != input.ModNone {
		return ui.Ignored
	}
	sel := l.scroll.Selection
	switch key.Code {
	case input.KeyUp:
		l.moveTo(sel - 1)
	case input.KeyDown:
		l.moveTo(sel + 1)
	case input.KeyPageUp:
		l.moveTo(sel - l.scroll.PageDelta())
	case input.KeyPageDown:
		l.moveTo(sel + l.scroll.PageDelta())
	case input.KeyHome:
		l.moveTo(0)
	case input.KeyEnd:
		l.moveTo(len(l.items) - 1)
	default:
		return ui.Ignored
	}
	return ui.Processed
}

func (l *ListBox) OnMouseEvent(ev ui.MouseEvent) ui.EventProcessStatus {
	if !l.scroll.AllVisible() {
		if res := l.bar.ProcessMouse(ev); res.Handled {
			if res.Changed {
				l.moveTo(l.bar.Value())
			}
			return ui.Processed
		}
	}
	switch ev.Kind {
	case ui.MouseWheel:
		switch ev.Wheel {
		case input.WheelUp:
			l.moveTo(l.scroll.Selection - 1)
		case input.WheelDown:
			l.moveTo(l.scroll.Selection + 1)
		default:
			return ui.Ignored
		}
		return ui.Processed
	case ui.MousePressed, ui.MouseDrag:
		if ev.Y >= 0 && ev.Y < l.Size().Height {
			if idx := l.scroll.Offset + ev.Y; idx < len(l.items) {
				l.moveTo(idx)
			}
		}
		return ui.Processed
	}
	return ui.Ignored
}
