package ui

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// Margins reserve cells at the control edges that children can not use
type Margins struct {
	Left, Top, Right, Bottom int
}

// parentLayout is the client area a parent offers to its children, in screen coordinates
type parentLayout struct {
	origin        graphics.Point
	clip          graphics.ClipArea
	width, height int
}

// ControlBase is the state every control embeds
// Setters only record changes; geometry is recomputed by the runtime in its next layout pass
type ControlBase struct {
	rt           *Runtime
	handle       Handle
	parent       Handle
	children     []Handle
	focusedChild int
	flags        StatusFlags
	layout       controlLayout
	margins      Margins
	screenClip   graphics.ClipArea
	screenOrigin graphics.Point
	expandDir    ExpandDirection
	hotKey       input.Key
}

// NewControlBase creates an unattached base with the given layout and flags
func NewControlBase(layout Layout, flags StatusFlags) ControlBase {
	return ControlBase{
		focusedChild: -1,
		flags:        flags,
		layout:       newControlLayout(layout),
	}
}

// Base makes every type embedding ControlBase satisfy Control
func (b *ControlBase) Base() *ControlBase { return b }

func (b *ControlBase) Handle() Handle     { return b.handle }
func (b *ControlBase) Parent() Handle     { return b.parent }
func (b *ControlBase) Runtime() *Runtime  { return b.rt }
func (b *ControlBase) Flags() StatusFlags { return b.flags }

// Children returns a copy of the child handles in insertion order
func (b *ControlBase) Children() []Handle {
	out := make([]Handle, len(b.children))
	copy(out, b.children)
	return out
}

// FocusedChild returns the child on the focus path, HandleNone when there is none
func (b *ControlBase) FocusedChild() Handle {
	if b.focusedChild >= 0 && b.focusedChild < len(b.children) {
		return b.children[b.focusedChild]
	}
	return HandleNone
}

func (b *ControlBase) requestLayout() {
	if b.rt != nil {
		b.rt.requestUpdate()
	}
}

func (b *ControlBase) requestRepaint() {
	if b.rt != nil {
		b.rt.repaint = true
	}
}

// ===== GEOMETRY =====

// Size returns the laid-out size, not the expanded one
func (b *ControlBase) Size() graphics.Size {
	return graphics.Size{Width: b.layout.width, Height: b.layout.height}
}

// Position returns the top-left corner relative to the parent client area
func (b *ControlBase) Position() graphics.Point {
	return graphics.Point{X: b.layout.x, Y: b.layout.y}
}

// SetSize switches to a fixed layout at the current position
func (b *ControlBase) SetSize(width, height int) {
	if b.flags.ContainsAny(DesktopControl | SingleWindow) {
		return
	}
	b.layout.toAbsolute(b.layout.x, b.layout.y, width, height)
	b.requestLayout()
}

// SetPosition switches to a fixed layout with the current size
func (b *ControlBase) SetPosition(x, y int) {
	if b.flags.ContainsAny(DesktopControl | SingleWindow) {
		return
	}
	b.layout.toAbsolute(x, y, b.layout.width, b.layout.height)
	b.requestLayout()
}

// SetLayout replaces the layout description
func (b *ControlBase) SetLayout(l Layout) {
	if b.flags.ContainsAny(DesktopControl | SingleWindow) {
		return
	}
	b.layout.desc = l
	b.requestLayout()
}

// SetSizeBounds limits the sizes any layout can produce; inverted bounds are ignored
func (b *ControlBase) SetSizeBounds(minWidth, minHeight, maxWidth, maxHeight int) {
	if b.flags.Contains(DesktopControl) {
		return
	}
	b.layout.setSizeBounds(minWidth, minHeight, maxWidth, maxHeight)
	b.requestLayout()
}

// SetMargins reserves border cells; the client area shrinks accordingly
func (b *ControlBase) SetMargins(left, top, right, bottom int) {
	b.margins = Margins{Left: left, Top: top, Right: right, Bottom: bottom}
	b.requestLayout()
}

func (b *ControlBase) Margins() Margins { return b.margins }

// ClientSize is the size left for children after margins
func (b *ControlBase) ClientSize() graphics.Size {
	return graphics.Size{
		Width:  max(b.layout.width-(b.margins.Left+b.margins.Right), 0),
		Height: max(b.layout.height-(b.margins.Top+b.margins.Bottom), 0),
	}
}

// ScreenClip is the visible screen rectangle computed by the last layout pass
func (b *ControlBase) ScreenClip() graphics.ClipArea { return b.screenClip }

// ScreenOrigin is the screen position of the control's (0,0) cell
func (b *ControlBase) ScreenOrigin() graphics.Point { return b.screenOrigin }

// ===== STATE =====

// SetVisible shows or hides the control; the desktop can not be hidden
func (b *ControlBase) SetVisible(visible bool) {
	if !visible && b.flags.Contains(DesktopControl) {
		return
	}
	b.flags.set(Visible, visible)
	b.requestLayout()
}

// SetEnabled toggles input; windows and the desktop can not be disabled
func (b *ControlBase) SetEnabled(enabled bool) {
	if !enabled && b.flags.ContainsAny(WindowControl|DesktopControl) {
		return
	}
	b.flags.set(Enabled, enabled)
	b.requestRepaint()
}

func (b *ControlBase) IsVisible() bool   { return b.flags.Contains(Visible) }
func (b *ControlBase) IsEnabled() bool   { return b.flags.Contains(Enabled) }
func (b *ControlBase) HasFocus() bool    { return b.flags.Contains(Focused) }
func (b *ControlBase) IsMouseOver() bool { return b.flags.Contains(MouseOver) }
func (b *ControlBase) IsExpanded() bool  { return b.flags.Contains(Expanded) }

// IsActive reports a visible and enabled control
func (b *ControlBase) IsActive() bool {
	return b.flags.Contains(Visible | Enabled)
}

// CanReceiveInput reports an active control that accepts input
func (b *ControlBase) CanReceiveInput() bool {
	return b.flags.Contains(Visible | Enabled | AcceptInput)
}

// SetHotKey assigns the key that focuses the control from anywhere in its window
func (b *ControlBase) SetHotKey(k input.Key) { b.hotKey = k }
func (b *ControlBase) HotKey() input.Key     { return b.hotKey }

// ===== TREE =====

// AddChild registers c under this control and returns its handle
// The parent must already belong to a runtime; adding a registered control again panics
func (b *ControlBase) AddChild(c Control) Handle {
	if b.rt == nil {
		panic("ui: AddChild on a control that is not attached to a runtime")
	}
	cb := c.Base()
	if cb.rt != nil {
		panic("ui: control is already part of a tree")
	}
	cb.flags.set(Focused, false)
	cb.parent = b.handle
	h := b.rt.register(c)
	b.children = append(b.children, h)
	if cb.CanReceiveInput() {
		b.focusedChild = len(b.children) - 1
		b.rt.requestFocusFor(h)
	}
	b.rt.requestUpdate()
	return h
}

// RequestFocus asks the runtime to move the focus here before the next paint
// It reports false when the control already has focus or can not take input
func (b *ControlBase) RequestFocus() bool {
	if b.HasFocus() || !b.CanReceiveInput() || b.rt == nil {
		return false
	}
	b.rt.requestFocusFor(b.handle)
	return true
}

func (b *ControlBase) markToReceiveFocus() bool {
	if !b.IsActive() {
		return false
	}
	b.flags |= MarkedForFocus
	return true
}

// RaiseEvent delivers data to the nearest ancestor implementing EventProcessor
func (b *ControlBase) RaiseEvent(data any) {
	if b.rt != nil {
		b.rt.events = append(b.rt.events, ControlEvent{Emitter: b.handle, Data: data})
	}
}

// ===== EXPAND / PACK =====

// Expand asks for a temporary popup area of at least minSize, ideally preferred
// The control must have focus and no children
func (b *ControlBase) Expand(minSize, preferred graphics.Size) {
	if !b.HasFocus() {
		panic("ui: Expand on a control without focus")
	}
	if len(b.children) > 0 {
		panic("ui: Expand on a control with children")
	}
	if b.IsExpanded() || b.rt == nil {
		return
	}
	b.rt.requestExpand(b.handle, minSize, preferred)
}

// Pack restores the normal size of an expanded control
func (b *ControlBase) Pack() {
	if !b.HasFocus() || !b.IsExpanded() || b.rt == nil {
		return
	}
	b.rt.requestExpand(HandleNone, graphics.Size{}, graphics.Size{})
}

// ExpandedSize is the popup area size while expanded, zero otherwise
func (b *ControlBase) ExpandedSize() graphics.Size {
	if !b.IsExpanded() {
		return graphics.Size{}
	}
	return b.screenClip.Rect().Size()
}

// ExpandDirection reports where the popup area went during the last expand
func (b *ControlBase) ExpandDirection() ExpandDirection { return b.expandDir }

// ===== TOOLTIP =====

func (b *ControlBase) tooltipAllowed() bool {
	return b.rt != nil && b.IsVisible() && b.screenClip.Visible()
}

// ShowTooltip shows text next to the control; hidden or clipped controls only hide it
func (b *ControlBase) ShowTooltip(text string) {
	if !b.tooltipAllowed() {
		if b.rt != nil {
			b.rt.hideTooltip()
		}
		return
	}
	b.rt.showTooltip(text, b.screenClip.Rect())
}

// ShowTooltipOnPoint anchors the tooltip to one control-local cell
func (b *ControlBase) ShowTooltipOnPoint(text string, x, y int) {
	if !b.tooltipAllowed() {
		if b.rt != nil {
			b.rt.hideTooltip()
		}
		return
	}
	b.rt.showTooltip(text, graphics.RectWithSize(b.screenOrigin.X+x, b.screenOrigin.Y+y, 1, 1))
}

func (b *ControlBase) HideTooltip() {
	if b.rt != nil {
		b.rt.hideTooltip()
	}
}

// ===== LAYOUT PASS =====

func (b *ControlBase) updateLayout(p *parentLayout) {
	b.layout.update(p.width, p.height)
	b.screenOrigin = graphics.Point{X: p.origin.X + b.layout.x, Y: p.origin.Y + b.layout.y}
	b.screenClip = graphics.NewClipArea(b.screenOrigin.X, b.screenOrigin.Y,
		b.screenOrigin.X+b.layout.width-1, b.screenOrigin.Y+b.layout.height-1)
	b.screenClip.Intersect(p.clip)
}

// updateExpandedLayout places the popup area below the control when it fits, above otherwise
func (b *ControlBase) updateExpandedLayout(minSize, preferred, term graphics.Size) (ExpandDirection, bool) {
	spaceBottom := term.Height - (2 + b.screenOrigin.Y)
	spaceTop := b.screenOrigin.Y - 1
	minH := max(minSize.Height, 1)
	width := max(preferred.Width, minSize.Width, 1)

	if minH <= spaceBottom && spaceBottom > 0 {
		h := min(max(preferred.Height, minSize.Height), spaceBottom)
		b.screenClip = graphics.NewClipArea(b.screenOrigin.X, b.screenOrigin.Y,
			b.screenOrigin.X+width-1, b.screenOrigin.Y+h-1)
		b.expandDir = ExpandOnBottom
		return ExpandOnBottom, true
	}
	if minH <= spaceTop && spaceTop > 0 {
		h := min(max(preferred.Height, minSize.Height), spaceTop)
		top := b.screenOrigin.Y - (h - 1)
		b.screenClip = graphics.NewClipArea(b.screenOrigin.X, top, b.screenOrigin.X+width-1, b.screenOrigin.Y)
		b.screenOrigin.Y = top
		b.expandDir = ExpandOnTop
		return ExpandOnTop, true
	}
	return ExpandOnBottom, false
}

// clientLayout is what children see: the rectangle minus margins, intersected with the clip
func (b *ControlBase) clientLayout() parentLayout {
	origin := graphics.Point{X: b.screenOrigin.X + b.margins.Left, Y: b.screenOrigin.Y + b.margins.Top}
	size := b.ClientSize()
	clip := graphics.NewClipArea(origin.X, origin.Y, origin.X+size.Width-1, origin.Y+size.Height-1)
	clip.Intersect(b.screenClip)
	return parentLayout{origin: origin, clip: clip, width: size.Width, height: size.Height}
}

// preparePaint narrows the surface to this control; false when nothing is visible
func (b *ControlBase) preparePaint(s *graphics.Surface) bool {
	if !b.IsVisible() || !b.screenClip.Visible() {
		return false
	}
	c := b.screenClip
	if b.HasFocus() {
		if b.flags.Contains(IncreaseRightMarginOnFocus) {
			c.Right++
		}
		if b.flags.Contains(IncreaseBottomMarginOnFocus) {
			c.Bottom++
		}
	}
	s.SetBaseClip(c.Left, c.Top, c.Right, c.Bottom)
	s.SetBaseOrigin(b.screenOrigin.X, b.screenOrigin.Y)
	s.ResetClip()
	s.ResetOrigin()
	return true
}
