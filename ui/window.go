package ui

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// Window is a framed container with a title bar
// Tab cycles the focus between its children, Alt hot keys trigger them, dragging the title moves it
type Window struct {
	ControlBase
	title      Caption
	dragging   bool
	dragOffset graphics.Point
}

// NewWindow creates a window; add it with Runtime.AddWindow or run it with Runtime.RunModal
func NewWindow(title string, layout Layout) *Window {
	w := &Window{
		ControlBase: NewControlBase(layout, WindowControl|DefaultFlags),
		title:       NewCaption(title),
	}
	w.margins = Margins{Left: 1, Top: 1, Right: 1, Bottom: 1}
	w.layout.setSizeBounds(12, 3, maxControlSize, maxControlSize)
	return w
}

func (w *Window) Title() string { return w.title.Text() }

func (w *Window) SetTitle(title string) {
	w.title = NewCaption(title)
	w.requestRepaint()
}

func (w *Window) OnPaint(s *graphics.Surface, th *Theme) {
	s.Clear(th.Window.Background)
	size := w.Size()
	attr, titleAttr, lt := th.Window.BorderInactive, th.Window.TitleInactive, graphics.LineSingle
	switch {
	case w.dragging:
		attr, titleAttr, lt = th.Window.BorderDragged, th.Window.Title, graphics.LineSingle
	case w.HasFocus():
		attr, titleAttr, lt = th.Window.BorderFocused, th.Window.Title, graphics.LineDouble
	}
	s.DrawRect(graphics.NewRect(0, 0, size.Width-1, size.Height-1), lt, attr)

	if text := w.title.Text(); text != "" && size.Width > 6 {
		f := graphics.NewTextFormat(size.Width/2, 0, titleAttr, graphics.AlignCenter)
		f.Width = size.Width - 6
		s.WriteText(" "+text+" ", f)
	}
}

func (w *Window) OnKeyPressed(key input.Key, ch rune) EventProcessStatus {
	switch key {
	case input.NewKey(input.KeyTab, input.ModNone):
		w.focusNext(true)
		return Processed
	case input.NewKey(input.KeyTab, input.ModShift):
		w.focusNext(false)
		return Processed
	case input.NewKey(input.KeyEscape, input.ModNone):
		if w.flags.Contains(ModalWindow) && w.rt != nil {
			w.rt.ExitModal()
			return Processed
		}
		return Ignored
	}
	if h := w.findHotKey(w.handle, key); !h.IsNone() {
		w.rt.RequestDefaultAction(h)
		return Processed
	}
	return Ignored
}

// focusNext moves the focus to the next child that can take input, wrapping around
func (w *Window) focusNext(forward bool) {
	n := len(w.children)
	if n == 0 || w.rt == nil {
		return
	}
	cur := w.focusedChild
	if cur < 0 {
		cur = n - 1
		if !forward {
			cur = 0
		}
	}
	for i := 1; i <= n; i++ {
		idx := (cur + i) % n
		if !forward {
			idx = (cur - i + n*2) % n
		}
		h := w.children[idx]
		if cb := w.rt.arena.base(h); cb != nil && cb.CanReceiveInput() {
			w.rt.requestFocusFor(h)
			return
		}
	}
}

// findHotKey searches the subtree of h for an input control bound to key
func (w *Window) findHotKey(h Handle, key input.Key) Handle {
	if key.IsNone() || w.rt == nil {
		return HandleNone
	}
	cb := w.rt.arena.base(h)
	if cb == nil || !cb.IsActive() {
		return HandleNone
	}
	if h != w.handle && cb.hotKey == key && cb.CanReceiveInput() {
		return h
	}
	for _, child := range cb.children {
		if found := w.findHotKey(child, key); !found.IsNone() {
			return found
		}
	}
	return HandleNone
}

func (w *Window) OnMouseEvent(ev MouseEvent) EventProcessStatus {
	switch ev.Kind {
	case MousePressed:
		if ev.Y == 0 && ev.Button == input.MouseLeft && !w.flags.Contains(SingleWindow) {
			w.dragging = true
			w.dragOffset = graphics.Point{X: ev.X, Y: ev.Y}
			return Processed
		}
	case MouseDrag:
		if w.dragging {
			pos := w.Position()
			w.SetPosition(pos.X+ev.X-w.dragOffset.X, pos.Y+ev.Y-w.dragOffset.Y)
			return Processed
		}
	case MouseReleased:
		if w.dragging {
			w.dragging = false
			return Processed
		}
	}
	return Ignored
}
