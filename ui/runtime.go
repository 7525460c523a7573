package ui

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/backend"
	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/logging"
)

// ErrNoWindow is returned by Run in single-window mode when no window was added
var ErrNoWindow = errors.New("single window runtime started without a window")

const defaultIdleDelay = 10 * time.Millisecond

type loopStatus uint8

const (
	loopRunning loopStatus = iota
	loopExitModal
	loopStop
)

type expandRequest struct {
	handle    Handle
	min       graphics.Size
	preferred graphics.Size
}

// Runtime owns the control tree and drives the event, layout and paint cycle
// Every method must be called from the goroutine running Run, including control callbacks
type Runtime struct {
	backend        backend.Backend
	singleThreaded bool
	surface        *graphics.Surface
	theme          *Theme
	log            *zap.Logger
	bell           func()
	idle           time.Duration

	arena        *arena
	desktop      Handle
	customDesk   Control
	singleWindow bool
	modal        []Handle

	focus         Handle
	focusRequest  Handle
	defaultAction Handle
	expanded      expandRequest
	events        []ControlEvent
	toRemove      []Handle

	mouse       graphics.Point
	modifier    input.Modifier
	mouseOver   Handle
	mouseLocked Handle
	tooltip     tooltip

	repaint  bool
	relayout bool
	status   loopStatus
	started  bool
	frames   uint64
}

// Option configures a Runtime
type Option func(*Runtime)

// WithTheme replaces DefaultTheme
func WithTheme(th *Theme) Option {
	return func(rt *Runtime) {
		if th != nil {
			rt.theme = th
		}
	}
}

// WithLogger routes runtime diagnostics to l
func WithLogger(l *zap.Logger) Option {
	return func(rt *Runtime) {
		if l != nil {
			rt.log = l
		}
	}
}

// WithDesktop installs a custom root control; it may implement Closer to veto shutdown
func WithDesktop(c Control) Option {
	return func(rt *Runtime) { rt.customDesk = c }
}

// WithSingleWindow makes the one window added with AddWindow fill the terminal
func WithSingleWindow() Option {
	return func(rt *Runtime) { rt.singleWindow = true }
}

// WithBell adds a sound played by Bell in addition to the backend's own bell
func WithBell(fn func()) Option {
	return func(rt *Runtime) { rt.bell = fn }
}

// WithIdleDelay sets how long a multi-threaded backend loop sleeps when no event is queued
func WithIdleDelay(d time.Duration) Option {
	return func(rt *Runtime) {
		if d > 0 {
			rt.idle = d
		}
	}
}

// New creates a runtime bound to b with a desktop filling the terminal
func New(b backend.Backend, opts ...Option) *Runtime {
	rt := &Runtime{
		backend:        b,
		singleThreaded: b.IsSingleThreaded(),
		theme:          DefaultTheme(),
		log:            logging.Named("ui"),
		idle:           defaultIdleDelay,
		arena:          newArena(),
		tooltip:        newTooltip(),
		repaint:        true,
		relayout:       true,
	}
	for _, opt := range opts {
		opt(rt)
	}
	size := b.Size()
	rt.surface = graphics.NewSurface(size.Width, size.Height)

	desktop := rt.customDesk
	if desktop == nil {
		desktop = NewDesktop()
	}
	db := desktop.Base()
	db.flags |= DesktopControl | Visible | Enabled | Focused
	db.layout = newControlLayout(Layout{width: pctCoord(fullPercent), height: pctCoord(fullPercent)})
	rt.desktop = rt.register(desktop)
	rt.focus = rt.desktop
	rt.log.Debug("runtime created", zap.Int("width", size.Width), zap.Int("height", size.Height),
		zap.Bool("single_threaded", rt.singleThreaded))
	return rt
}

func (rt *Runtime) register(c Control) Handle {
	cb := c.Base()
	cb.rt = rt
	if cb.focusedChild == 0 && len(cb.children) == 0 {
		cb.focusedChild = -1
	}
	cb.handle = rt.arena.add(c)
	return cb.handle
}

// ===== ACCESSORS =====

func (rt *Runtime) Desktop() Handle            { return rt.desktop }
func (rt *Runtime) Theme() *Theme              { return rt.theme }
func (rt *Runtime) Surface() *graphics.Surface { return rt.surface }
func (rt *Runtime) Backend() backend.Backend   { return rt.backend }

// Focused returns the deepest control of the focus chain
func (rt *Runtime) Focused() Handle { return rt.focus }

// Size is the terminal size in cells
func (rt *Runtime) Size() graphics.Size { return rt.surface.Size() }

// Control resolves a handle, nil when the control was removed
func (rt *Runtime) Control(h Handle) Control { return rt.arena.get(h) }

// Len is the number of registered controls, desktop included
func (rt *Runtime) Len() int { return rt.arena.len() }

// Frames counts completed paints
func (rt *Runtime) Frames() uint64 { return rt.frames }

// Modifier returns the modifier keys last reported by the backend
func (rt *Runtime) Modifier() input.Modifier { return rt.modifier }

// ===== TREE =====

// AddWindow adds a window to the desktop and focuses it
func (rt *Runtime) AddWindow(w Control) Handle {
	desk := rt.arena.base(rt.desktop)
	if rt.singleWindow && len(desk.children) > 0 {
		panic("ui: a single window runtime accepts only one window")
	}
	wb := w.Base()
	wb.flags |= WindowControl
	if rt.singleWindow {
		wb.flags |= SingleWindow
		wb.layout.desc = MustLayout("l:0,t:0,r:0,b:0")
	}
	h := desk.AddChild(w)
	if r, ok := w.(WindowRegistrar); ok {
		r.OnRegistered()
	}
	return h
}

// Add places a plain control directly on the desktop
func (rt *Runtime) Add(c Control) Handle {
	if rt.singleWindow {
		panic("ui: a single window runtime accepts only its window")
	}
	return rt.arena.base(rt.desktop).AddChild(c)
}

// AddModalWindow registers w outside the desktop so children can be added before RunModal
func (rt *Runtime) AddModalWindow(w Control) Handle {
	wb := w.Base()
	if wb.rt != nil {
		return wb.handle
	}
	wb.flags |= WindowControl | ModalWindow
	h := rt.register(w)
	if r, ok := w.(WindowRegistrar); ok {
		r.OnRegistered()
	}
	return h
}

// Remove deletes a control and its subtree at the start of the next tick
func (rt *Runtime) Remove(h Handle) {
	if h.IsNone() || h == rt.desktop {
		return
	}
	rt.toRemove = append(rt.toRemove, h)
}

func (rt *Runtime) removeDeleted() {
	for len(rt.toRemove) > 0 {
		h := rt.toRemove[len(rt.toRemove)-1]
		rt.toRemove = rt.toRemove[:len(rt.toRemove)-1]
		if parent, hadFocus := rt.removeControl(h, true); hadFocus && !parent.IsNone() {
			rt.requestFocusFor(rt.focusTargetAfterRemove(parent))
		}
	}
	rt.requestUpdate()
}

// focusTargetAfterRemove picks where the focus goes once a focused child of parent is gone
// A parent that can not hold the focus itself hands it to its topmost active child
func (rt *Runtime) focusTargetAfterRemove(parent Handle) Handle {
	if !rt.findLastLeaf(parent).IsNone() {
		return parent
	}
	pb := rt.arena.base(parent)
	if pb == nil {
		return parent
	}
	for i := len(pb.children) - 1; i >= 0; i-- {
		if rt.findLastLeaf(pb.children[i]).IsNone() {
			continue
		}
		pb.focusedChild = i
		return pb.children[i]
	}
	return parent
}

// removeControl returns the parent and whether the removed subtree held the focus
func (rt *Runtime) removeControl(h Handle, unlink bool) (Handle, bool) {
	cb := rt.arena.base(h)
	if cb == nil {
		return HandleNone, false
	}
	hadFocus := cb.HasFocus()
	parent := cb.parent
	if unlink {
		if pb := rt.arena.base(parent); pb != nil {
			for i, c := range pb.children {
				if c != h {
					continue
				}
				switch {
				case i < pb.focusedChild:
					pb.focusedChild--
				case i == pb.focusedChild:
					pb.focusedChild = -1
				}
				pb.children = append(pb.children[:i], pb.children[i+1:]...)
				break
			}
		}
	}
	for _, child := range cb.children {
		rt.removeControl(child, false)
	}
	if rt.focus == h {
		rt.focus = HandleNone
	}
	if rt.mouseOver == h {
		rt.mouseOver = HandleNone
	}
	if rt.mouseLocked == h {
		rt.mouseLocked = HandleNone
	}
	if rt.expanded.handle == h {
		rt.expanded = expandRequest{}
	}
	rt.arena.remove(h)
	cb.rt = nil
	cb.handle = HandleNone
	return parent, hadFocus
}

// ===== REQUESTS =====

func (rt *Runtime) requestUpdate() {
	rt.relayout = true
	rt.repaint = true
}

func (rt *Runtime) requestFocusFor(h Handle) {
	rt.focusRequest = h
}

// RequestDefaultAction focuses h and then runs its OnDefaultAction
func (rt *Runtime) RequestDefaultAction(h Handle) {
	rt.focusRequest = h
	rt.defaultAction = h
}

func (rt *Runtime) requestExpand(h Handle, minSize, preferred graphics.Size) {
	rt.expanded = expandRequest{handle: h, min: minSize, preferred: preferred}
	rt.requestUpdate()
}

// Invalidate schedules a repaint
func (rt *Runtime) Invalidate() {
	rt.repaint = true
}

func (rt *Runtime) showTooltip(text string, object graphics.Rect) {
	rt.tooltip.show(text, object, rt.surface.Size(), rt.theme)
	rt.repaint = true
}

func (rt *Runtime) hideTooltip() {
	if rt.tooltip.visible {
		rt.tooltip.hide()
		rt.repaint = true
	}
}

// Bell rings the backend bell and the configured bell sound
func (rt *Runtime) Bell() {
	if b, ok := rt.backend.(backend.Beeper); ok {
		b.Bell()
	}
	if rt.bell != nil {
		rt.bell()
	}
}

// ===== LOOP =====

// Run processes events until the backend reports AppClose and the desktop allows it
func (rt *Runtime) Run() error {
	if !rt.started {
		rt.started = true
		rt.processResize(rt.backend.Size())
		if rt.singleWindow && len(rt.arena.base(rt.desktop).children) != 1 {
			return ErrNoWindow
		}
	}
	rt.requestUpdate()
	rt.status = loopRunning
	rt.loop()
	rt.log.Debug("runtime stopped", zap.Uint64("frames", rt.frames))
	return nil
}

// Close stops the loop without consulting the desktop
func (rt *Runtime) Close() {
	rt.status = loopStop
}

func (rt *Runtime) loop() {
	for rt.status == loopRunning {
		rt.tick()
	}
}

// RunModal shows w above everything else and blocks until ExitModal
// Windows below the modal one are dimmed and receive no input
func (rt *Runtime) RunModal(w Control) {
	h := rt.AddModalWindow(w)
	rt.modal = append(rt.modal, h)
	rt.requestFocusFor(h)
	rt.requestUpdate()

	rt.loop()

	rt.modal = rt.modal[:len(rt.modal)-1]
	rt.Remove(h)
	if n := len(rt.modal); n > 0 {
		rt.requestFocusFor(rt.modal[n-1])
	} else {
		rt.requestFocusFor(rt.desktop)
	}
	rt.requestUpdate()
	if rt.status == loopExitModal {
		rt.status = loopRunning
	}
}

// ExitModal ends the innermost RunModal
func (rt *Runtime) ExitModal() {
	if len(rt.modal) > 0 {
		rt.status = loopExitModal
	}
}

func (rt *Runtime) rootHandle() Handle {
	if n := len(rt.modal); n > 0 {
		return rt.modal[n-1]
	}
	return rt.desktop
}

// tick runs one cycle: pending requests, layout, paint, then one system event
func (rt *Runtime) tick() {
	if len(rt.events) > 0 {
		rt.processControlEvents()
	}
	if len(rt.toRemove) > 0 {
		rt.removeDeleted()
	}
	if !rt.focusRequest.IsNone() {
		h := rt.focusRequest
		rt.focusRequest = HandleNone
		rt.updateFocus(h)
		rt.repaint = true
	}
	if rt.relayout {
		rt.recomputeLayouts()
	}
	if rt.repaint || rt.relayout {
		rt.paint()
	}
	rt.relayout, rt.repaint = false, false

	ev, ok := rt.backend.QuerySystemEvent()
	if rr, isRR := rt.backend.(backend.RepaintRequester); isRR && rr.TakeRepaintRequest() {
		rt.repaint = true
	}
	if !ok {
		if !rt.singleThreaded && !rt.repaint {
			time.Sleep(rt.idle)
		}
		return
	}
	rt.processSystemEvent(ev)
}

func (rt *Runtime) processSystemEvent(ev event.SystemEvent) {
	switch e := ev.(type) {
	case event.AppClose:
		rt.processAppClose()
	case event.KeyPressed:
		rt.processKeyPressed(e.Key, e.Character)
	case event.KeyModifierChanged:
		rt.modifier = e.New
	case event.Resize:
		size := graphics.Size{Width: e.Width, Height: e.Height}
		rt.backend.OnResize(size)
		rt.processResize(size)
	case event.MouseButtonDown:
		rt.processMouseDown(e)
	case event.MouseButtonUp:
		rt.processMouseUp(e)
	case event.MouseDoubleClick:
		rt.processMouseDoubleClick(e)
	case event.MouseMove:
		rt.processMouseMove(e)
	case event.MouseWheel:
		rt.processMouseWheel(e)
	}
}

func (rt *Runtime) processAppClose() {
	if c, ok := rt.arena.get(rt.desktop).(Closer); ok && c.OnClose() == Deny {
		rt.log.Debug("close vetoed by desktop")
		rt.repaint = true
		return
	}
	rt.status = loopStop
}

func (rt *Runtime) processResize(size graphics.Size) {
	if size.Width <= 0 || size.Height <= 0 || size == rt.surface.Size() {
		return
	}
	rt.surface.Resize(size.Width, size.Height)
	rt.hideTooltip()
	rt.requestUpdate()
}

// processControlEvents hands each raised event to the nearest willing ancestor of its emitter
func (rt *Runtime) processControlEvents() {
	for i := 0; i < len(rt.events); i++ {
		ev := rt.events[i]
		cb := rt.arena.base(ev.Emitter)
		if cb == nil {
			continue
		}
		for h := cb.parent; !h.IsNone(); {
			c := rt.arena.get(h)
			if c == nil {
				break
			}
			if p, ok := c.(EventProcessor); ok && p.OnEvent(ev) == Processed {
				rt.repaint = true
				break
			}
			h = c.Base().parent
		}
	}
	rt.events = rt.events[:0]
}

// ===== FOCUS =====

// findLastLeaf follows focused children from h and returns the deepest one able to take input
func (rt *Runtime) findLastLeaf(h Handle) Handle {
	result := HandleNone
	for {
		cb := rt.arena.base(h)
		if cb == nil || !cb.IsActive() {
			return result
		}
		if cb.CanReceiveInput() {
			result = h
		}
		h = cb.FocusedChild()
	}
}

func (rt *Runtime) clearFocusMarks(chain []Handle) {
	for _, h := range chain {
		if cb := rt.arena.base(h); cb != nil {
			cb.flags &^= MarkedForFocus
		}
	}
}

// updateFocus moves the focus chain to end at the deepest focusable control under h
func (rt *Runtime) updateFocus(h Handle) {
	if !rt.expanded.handle.IsNone() {
		rt.requestExpand(HandleNone, graphics.Size{}, graphics.Size{})
	}
	leaf := rt.findLastLeaf(h)

	var chain []Handle
	for cur := leaf; ; {
		cb := rt.arena.base(cur)
		if cb == nil {
			rt.clearFocusMarks(chain)
			return
		}
		chain = append(chain, cur)
		if !cb.markToReceiveFocus() {
			rt.clearFocusMarks(chain)
			return
		}
		cur = cb.parent
		if cur.IsNone() {
			break
		}
	}

	for cur := rt.focus; ; {
		c := rt.arena.get(cur)
		if c == nil {
			break
		}
		cb := c.Base()
		if cb.flags.Contains(MarkedForFocus) {
			break
		}
		cb.flags &^= Focused
		if f, ok := c.(Focuser); ok {
			f.OnLoseFocus()
		}
		cur = cb.parent
	}

	var parent *ControlBase
	for i := len(chain) - 1; i >= 0; i-- {
		c := rt.arena.get(chain[i])
		cb := c.Base()
		cb.flags &^= MarkedForFocus
		if !cb.HasFocus() {
			cb.flags |= Focused
			if f, ok := c.(Focuser); ok {
				f.OnFocus()
			}
		}
		if parent != nil {
			for idx, ch := range parent.children {
				if ch == chain[i] {
					parent.focusedChild = idx
					break
				}
			}
		}
		parent = cb
	}
	rt.focus = leaf

	if !rt.defaultAction.IsNone() {
		if rt.defaultAction == leaf {
			if d, ok := rt.arena.get(leaf).(DefaultActioner); ok {
				d.OnDefaultAction()
			}
		}
		rt.defaultAction = HandleNone
	}
}

// ===== LAYOUT =====

func (rt *Runtime) recomputeLayouts() {
	size := rt.surface.Size()
	term := parentLayout{
		clip:   graphics.NewClipArea(0, 0, size.Width-1, size.Height-1),
		width:  size.Width,
		height: size.Height,
	}
	rt.updateControlLayout(rt.desktop, &term)
	for _, h := range rt.modal {
		rt.updateControlLayout(h, &term)
	}
}

func (rt *Runtime) updateControlLayout(h Handle, p *parentLayout) {
	c := rt.arena.get(h)
	if c == nil {
		return
	}
	cb := c.Base()
	oldSize, oldPos := cb.Size(), cb.Position()
	wasExpanded := cb.IsExpanded()
	cb.updateLayout(p)

	packed, expanded := false, false
	var dir ExpandDirection
	switch target := h == rt.expanded.handle; {
	case wasExpanded && !target:
		cb.flags &^= Expanded
		packed = true
	case wasExpanded:
		if _, ok := cb.updateExpandedLayout(rt.expanded.min, rt.expanded.preferred, rt.surface.Size()); !ok {
			cb.flags &^= Expanded
			rt.expanded = expandRequest{}
			packed = true
		}
	case target:
		var ok bool
		if dir, ok = cb.updateExpandedLayout(rt.expanded.min, rt.expanded.preferred, rt.surface.Size()); ok {
			cb.flags |= Expanded
			expanded = true
		} else {
			rt.log.Debug("expand request does not fit", zap.Stringer("handle", h))
			rt.expanded = expandRequest{}
		}
	}

	if e, ok := c.(Expander); ok {
		switch {
		case packed:
			e.OnPack()
		case expanded:
			e.OnExpand(dir)
		}
	}
	newSize, newPos := cb.Size(), cb.Position()
	if newSize != oldSize {
		if r, ok := c.(Resizer); ok {
			r.OnResize(oldSize, newSize)
		}
	}
	if cb.flags.Contains(WindowControl) && (newSize != oldSize || newPos != oldPos) {
		if l, ok := c.(LayoutChanger); ok {
			l.OnLayoutChanged(graphics.RectWithSize(oldPos.X, oldPos.Y, oldSize.Width, oldSize.Height),
				graphics.RectWithSize(newPos.X, newPos.Y, newSize.Width, newSize.Height))
		}
	}

	if len(cb.children) > 0 {
		client := cb.clientLayout()
		for _, child := range cb.children {
			rt.updateControlLayout(child, &client)
		}
	}
}

// ===== PAINT =====

func (rt *Runtime) resetSurface() {
	s := rt.surface
	s.ResetBaseClip()
	s.SetBaseOrigin(0, 0)
	s.ResetOrigin()
}

// paint draws back to front: desktop, modal stack, expanded popup, tooltip
func (rt *Runtime) paint() {
	s := rt.surface
	s.HideCursor()
	rt.resetSurface()
	rt.paintControl(rt.desktop)
	for i, h := range rt.modal {
		rt.resetSurface()
		if i == len(rt.modal)-1 {
			s.Clear(rt.theme.ModalDim)
		}
		rt.paintControl(h)
	}
	if !rt.expanded.handle.IsNone() {
		rt.paintControl(rt.expanded.handle)
	}
	rt.resetSurface()
	rt.tooltip.paint(s, rt.theme)
	rt.backend.UpdateScreen(s)
	rt.frames++
}

// paintControl paints c and then its children, the focused child last
func (rt *Runtime) paintControl(h Handle) {
	c := rt.arena.get(h)
	if c == nil {
		return
	}
	cb := c.Base()
	if !cb.preparePaint(rt.surface) {
		return
	}
	if p, ok := c.(Painter); ok {
		p.OnPaint(rt.surface, rt.theme)
	}
	n := len(cb.children)
	if cb.focusedChild >= 0 && cb.focusedChild < n {
		for i := 0; i < n; i++ {
			rt.paintControl(cb.children[(cb.focusedChild+1+i)%n])
		}
		return
	}
	for _, child := range cb.children {
		rt.paintControl(child)
	}
}
