package ui

import (
	"fmt"

	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// Control is a node of the UI tree
// Concrete controls embed ControlBase and opt into behavior through the capability interfaces below
type Control interface {
	Base() *ControlBase
}

// Painter draws the control; the surface is clipped and translated to the control
type Painter interface {
	OnPaint(s *graphics.Surface, th *Theme)
}

// KeyHandler receives key presses routed through the focus chain
type KeyHandler interface {
	OnKeyPressed(key input.Key, ch rune) EventProcessStatus
}

// MouseHandler receives mouse events in control-local coordinates
type MouseHandler interface {
	OnMouseEvent(ev MouseEvent) EventProcessStatus
}

// Resizer is notified after a layout pass changed the control size
type Resizer interface {
	OnResize(oldSize, newSize graphics.Size)
}

// Focuser is notified when the control enters or leaves the focus chain
type Focuser interface {
	OnFocus()
	OnLoseFocus()
}

// Expander is notified when an expand or pack request took effect
type Expander interface {
	OnExpand(direction ExpandDirection)
	OnPack()
}

// DefaultActioner runs the control's main action (button press, popup toggle)
type DefaultActioner interface {
	OnDefaultAction()
}

// WindowRegistrar is called once a window has been added to the runtime
type WindowRegistrar interface {
	OnRegistered()
}

// LayoutChanger is notified when a window moved or changed size
type LayoutChanger interface {
	OnLayoutChanged(oldRect, newRect graphics.Rect)
}

// Closer can veto application shutdown; only consulted on the desktop
type Closer interface {
	OnClose() ActionRequest
}

// EventProcessor receives events raised by its descendants
type EventProcessor interface {
	OnEvent(ev ControlEvent) EventProcessStatus
}

// ===== EVENTS =====

// MouseEventKind identifies a mouse event delivered to a control
type MouseEventKind uint8

const (
	MouseEnter MouseEventKind = iota
	MouseLeave
	MouseHover
	MousePressed
	MouseReleased
	MouseDrag
	MouseDoubleClick
	MouseWheel
)

var mouseEventNames = [...]string{"Enter", "Leave", "Hover", "Pressed", "Released", "Drag", "DoubleClick", "Wheel"}

func (k MouseEventKind) String() string {
	if int(k) < len(mouseEventNames) {
		return mouseEventNames[k]
	}
	return fmt.Sprintf("MouseEventKind(%d)", k)
}

// MouseEvent carries control-local coordinates
// Button and Modifier are set for Pressed, Released, Drag and DoubleClick; Wheel for MouseWheel
type MouseEvent struct {
	Kind     MouseEventKind
	X, Y     int
	Button   input.MouseButton
	Modifier input.Modifier
	Wheel    input.WheelDirection
}

// ControlEvent is a typed notification raised by a control for its ancestors
type ControlEvent struct {
	Emitter Handle
	Data    any
}
