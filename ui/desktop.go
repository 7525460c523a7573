package ui

import "github.com/lixenwraith/cellui/graphics"

// Desktop is the default root control; it fills the terminal with the desktop pattern
// Embed it to build a custom desktop, for example one implementing Closer
type Desktop struct {
	ControlBase
}

func NewDesktop() *Desktop {
	return &Desktop{ControlBase: NewControlBase(Layout{}, DesktopControl|Visible|Enabled)}
}

func (d *Desktop) OnPaint(s *graphics.Surface, th *Theme) {
	s.Clear(th.Desktop.Character)
}

// ActivateWindow moves the focus to one of the desktop windows
func (d *Desktop) ActivateWindow(h Handle) bool {
	if d.rt == nil {
		return false
	}
	for _, c := range d.children {
		if c == h {
			d.rt.requestFocusFor(h)
			return true
		}
	}
	return false
}

// ActivateNextWindow cycles the focus through the desktop windows
func (d *Desktop) ActivateNextWindow(forward bool) {
	n := len(d.children)
	if n < 2 || d.rt == nil {
		return
	}
	cur := max(d.focusedChild, 0)
	for i := 1; i < n; i++ {
		idx := cur + i
		if !forward {
			idx = cur - i + n
		}
		h := d.children[idx%n]
		if cb := d.rt.arena.base(h); cb != nil && cb.IsActive() {
			d.rt.requestFocusFor(h)
			return
		}
	}
}
