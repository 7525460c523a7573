package ui

import (
	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/input"
)

// ===== KEYBOARD =====

func (rt *Runtime) processKeyPressed(key input.Key, ch rune) {
	rt.hideTooltip()
	if rt.processControlKey(rt.rootHandle(), key, ch) == Processed {
		rt.repaint = true
	}
}

// processControlKey offers the key along the focus chain
// Controls flagged KeyInputBeforeChildren see it before their focused child, the rest after
func (rt *Runtime) processControlKey(h Handle, key input.Key, ch rune) EventProcessStatus {
	c := rt.arena.get(h)
	if c == nil {
		return Ignored
	}
	cb := c.Base()
	if !cb.IsActive() {
		return Ignored
	}
	before := cb.flags.Contains(KeyInputBeforeChildren)
	if before && handleKey(c, key, ch) == Processed {
		return Processed
	}
	if focused := cb.FocusedChild(); !focused.IsNone() {
		if rt.processControlKey(focused, key, ch) == Processed {
			return Processed
		}
	}
	if !before {
		return handleKey(c, key, ch)
	}
	return Ignored
}

func handleKey(c Control, key input.Key, ch rune) EventProcessStatus {
	if !c.Base().CanReceiveInput() {
		return Ignored
	}
	if k, ok := c.(KeyHandler); ok {
		return k.OnKeyPressed(key, ch)
	}
	return Ignored
}

// ===== HIT TESTING =====

// controlAt returns the control under a screen cell
// An expanded popup wins, then the focused subtree, then the topmost root
func (rt *Runtime) controlAt(x, y int) Handle {
	if h := rt.expanded.handle; !h.IsNone() {
		if cb := rt.arena.base(h); cb != nil && cb.IsExpanded() && cb.screenClip.Contains(x, y) {
			return h
		}
	}
	if !rt.focus.IsNone() {
		if h := rt.childAt(rt.focus, x, y); !h.IsNone() {
			return h
		}
	}
	return rt.childAt(rt.rootHandle(), x, y)
}

// childAt searches children topmost first: the focused one, then backwards in paint order
func (rt *Runtime) childAt(h Handle, x, y int) Handle {
	cb := rt.arena.base(h)
	if cb == nil || !cb.IsActive() {
		return HandleNone
	}
	clip := cb.screenClip
	if cb.HasFocus() && cb.flags.Contains(IncreaseRightMarginOnFocus) {
		clip.Right++
	}
	if !clip.Contains(x, y) {
		return HandleNone
	}
	if n := len(cb.children); n > 0 {
		start := cb.focusedChild
		if start < 0 || start >= n {
			start = n - 1
		}
		for i := 0; i < n; i++ {
			if found := rt.childAt(cb.children[(start-i+n)%n], x, y); !found.IsNone() {
				return found
			}
		}
	}
	if cb.CanReceiveInput() {
		return h
	}
	return HandleNone
}

// sendMouse delivers ev to h translated to the control's coordinates
func (rt *Runtime) sendMouse(h Handle, ev MouseEvent) EventProcessStatus {
	c := rt.arena.get(h)
	if c == nil {
		return Ignored
	}
	cb := c.Base()
	ev.X -= cb.screenOrigin.X
	ev.Y -= cb.screenOrigin.Y
	m, ok := c.(MouseHandler)
	if !ok {
		return Ignored
	}
	status := m.OnMouseEvent(ev)
	if status == Processed {
		rt.repaint = true
	}
	return status
}

// ===== MOUSE =====

func (rt *Runtime) processMouseDown(e event.MouseButtonDown) {
	rt.hideTooltip()
	rt.mouse.X, rt.mouse.Y = e.X, e.Y
	h := rt.controlAt(e.X, e.Y)
	if h.IsNone() {
		return
	}
	if cb := rt.arena.base(h); !cb.HasFocus() || len(cb.children) > 0 {
		rt.updateFocus(h)
	}
	rt.sendMouse(h, MouseEvent{Kind: MousePressed, X: e.X, Y: e.Y, Button: e.Button, Modifier: e.Modifier})
	rt.mouseLocked = h
	rt.repaint = true
}

func (rt *Runtime) processMouseUp(e event.MouseButtonUp) {
	rt.mouse.X, rt.mouse.Y = e.X, e.Y
	if rt.mouseLocked.IsNone() {
		return
	}
	rt.sendMouse(rt.mouseLocked, MouseEvent{Kind: MouseReleased, X: e.X, Y: e.Y, Button: e.Button, Modifier: e.Modifier})
	rt.mouseLocked = HandleNone
	rt.repaint = true
}

func (rt *Runtime) processMouseDoubleClick(e event.MouseDoubleClick) {
	rt.hideTooltip()
	rt.mouse.X, rt.mouse.Y = e.X, e.Y
	h := rt.controlAt(e.X, e.Y)
	if h.IsNone() {
		return
	}
	rt.updateFocus(h)
	rt.sendMouse(h, MouseEvent{Kind: MouseDoubleClick, X: e.X, Y: e.Y, Button: e.Button, Modifier: e.Modifier})
	rt.repaint = true
}

// processMouseMove drags the locked control or tracks which control is hovered
func (rt *Runtime) processMouseMove(e event.MouseMove) {
	rt.mouse.X, rt.mouse.Y = e.X, e.Y
	if !rt.mouseLocked.IsNone() {
		rt.hideTooltip()
		rt.sendMouse(rt.mouseLocked, MouseEvent{Kind: MouseDrag, X: e.X, Y: e.Y, Button: e.Button, Modifier: rt.modifier})
		return
	}
	h := rt.controlAt(e.X, e.Y)
	if h == rt.mouseOver {
		if !h.IsNone() {
			rt.sendMouse(h, MouseEvent{Kind: MouseHover, X: e.X, Y: e.Y})
		}
		return
	}
	if cb := rt.arena.base(rt.mouseOver); cb != nil {
		cb.flags &^= MouseOver
		rt.sendMouse(rt.mouseOver, MouseEvent{Kind: MouseLeave, X: e.X, Y: e.Y})
	}
	rt.mouseOver = h
	if cb := rt.arena.base(h); cb != nil {
		cb.flags |= MouseOver
		rt.sendMouse(h, MouseEvent{Kind: MouseEnter, X: e.X, Y: e.Y})
		rt.sendMouse(h, MouseEvent{Kind: MouseHover, X: e.X, Y: e.Y})
	}
	rt.repaint = true
}

func (rt *Runtime) processMouseWheel(e event.MouseWheel) {
	if !rt.mouseLocked.IsNone() {
		return
	}
	h := rt.controlAt(e.X, e.Y)
	if h.IsNone() {
		return
	}
	rt.sendMouse(h, MouseEvent{Kind: MouseWheel, X: e.X, Y: e.Y, Wheel: e.Direction})
}

// MousePosition is the last pointer cell reported by the backend
func (rt *Runtime) MousePosition() (int, int) { return rt.mouse.X, rt.mouse.Y }
