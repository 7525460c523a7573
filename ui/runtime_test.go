package ui

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// fakeBackend replays a fixed event list and then reports AppClose forever
type fakeBackend struct {
	size      graphics.Size
	events    []event.SystemEvent
	frames    []uint64
	resized   []graphics.Size
	clipboard string
}

func (f *fakeBackend) Size() graphics.Size    { return f.size }
func (f *fakeBackend) IsSingleThreaded() bool { return true }

func (f *fakeBackend) QuerySystemEvent() (event.SystemEvent, bool) {
	if len(f.events) == 0 {
		return event.AppClose{}, true
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *fakeBackend) UpdateScreen(s *graphics.Surface) { f.frames = append(f.frames, s.Hash()) }
func (f *fakeBackend) OnResize(size graphics.Size)      { f.resized = append(f.resized, size) }
func (f *fakeBackend) ClipboardText() (string, bool)    { return f.clipboard, f.clipboard != "" }
func (f *fakeBackend) SetClipboardText(text string)     { f.clipboard = text }
func (f *fakeBackend) HasClipboardText() bool           { return f.clipboard != "" }
func (f *fakeBackend) Close() error                     { return nil }

func newTestRuntime(events ...event.SystemEvent) (*Runtime, *fakeBackend) {
	fb := &fakeBackend{size: graphics.Size{Width: 80, Height: 25}, events: events}
	return New(fb), fb
}

// probe records what the runtime delivers to it
type probe struct {
	ControlBase
	keys          []input.Key
	mouse         []MouseEvent
	resizes       int
	expands       int
	packs         int
	focusGained   int
	focusLost     int
	defaultAction int
	onKey         func(p *probe, key input.Key) EventProcessStatus
}

func newProbe(layout string) *probe {
	return &probe{ControlBase: NewControlBase(MustLayout(layout), DefaultFlags)}
}

func (p *probe) OnKeyPressed(key input.Key, ch rune) EventProcessStatus {
	p.keys = append(p.keys, key)
	if p.onKey != nil {
		return p.onKey(p, key)
	}
	return Ignored
}

func (p *probe) OnMouseEvent(ev MouseEvent) EventProcessStatus {
	p.mouse = append(p.mouse, ev)
	return Processed
}

func (p *probe) OnResize(_, _ graphics.Size)       { p.resizes++ }
func (p *probe) OnExpand(_ ExpandDirection)        { p.expands++ }
func (p *probe) OnPack()                           { p.packs++ }
func (p *probe) OnFocus()                          { p.focusGained++ }
func (p *probe) OnLoseFocus()                      { p.focusLost++ }
func (p *probe) OnDefaultAction()                  { p.defaultAction++ }
func (p *probe) OnPaint(*graphics.Surface, *Theme) {}

func keyEvent(code input.KeyCode) event.KeyPressed {
	return event.KeyPressed{Key: input.NewKey(code, input.ModNone)}
}

func desktopBase(rt *Runtime) *ControlBase {
	return rt.Control(rt.Desktop()).Base()
}

func mouseKinds(evs []MouseEvent) []MouseEventKind {
	out := make([]MouseEventKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

// checkFocusChain verifies that exactly the controls from the desktop down to the focused leaf carry Focused
func checkFocusChain(t *testing.T, rt *Runtime) {
	t.Helper()
	chain := map[Handle]bool{}
	for h := rt.Focused(); !h.IsNone(); h = rt.Control(h).Base().Parent() {
		chain[h] = true
	}
	var walk func(h Handle)
	walk = func(h Handle) {
		cb := rt.Control(h).Base()
		if cb.HasFocus() != chain[h] {
			t.Errorf("Expected focused=%v for %v, got %v", chain[h], h, cb.HasFocus())
		}
		for _, c := range cb.Children() {
			walk(c)
		}
	}
	walk(rt.Desktop())
}

func TestFocusFollowsLastAddedChild(t *testing.T) {
	rt, _ := newTestRuntime()
	w := NewWindow("Main", MustLayout("x:0,y:0,w:40,h:10"))
	rt.AddWindow(w)
	p1 := newProbe("x:1,y:1,w:10,h:1")
	p2 := newProbe("x:1,y:2,w:10,h:1")
	w.AddChild(p1)
	h2 := w.AddChild(p2)

	if err := rt.Run(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rt.Focused() != h2 {
		t.Errorf("Expected focus on %v, got %v", h2, rt.Focused())
	}
	if p2.focusGained != 1 {
		t.Errorf("Expected 1 OnFocus, got %d", p2.focusGained)
	}
	checkFocusChain(t, rt)
}

func TestTabCyclesFocus(t *testing.T) {
	rt, _ := newTestRuntime(keyEvent(input.KeyTab), keyEvent(input.KeyTab), event.KeyPressed{Key: input.NewKey(input.KeyTab, input.ModShift)})
	w := NewWindow("Main", MustLayout("x:0,y:0,w:40,h:10"))
	rt.AddWindow(w)
	p1, p2, p3 := newProbe("x:1,y:1,w:10,h:1"), newProbe("x:1,y:2,w:10,h:1"), newProbe("x:1,y:3,w:10,h:1")
	h1 := w.AddChild(p1)
	w.AddChild(p2)
	w.AddChild(p3)
	p2.SetEnabled(false)

	_ = rt.Run()

	// p3 -> p1 -> p3 (p2 disabled) -> p1, so p3 loses focus on both Tab and Shift+Tab
	if rt.Focused() != h1 {
		t.Errorf("Expected focus on %v after shift+tab, got %v", h1, rt.Focused())
	}
	if p1.focusGained != 2 || p1.focusLost != 1 {
		t.Errorf("Expected p1 to gain focus twice and lose it once, got %d/%d", p1.focusGained, p1.focusLost)
	}
	if p3.focusLost != 2 {
		t.Errorf("Expected p3 to lose focus twice, got %d", p3.focusLost)
	}
	if p2.focusGained != 0 {
		t.Errorf("Expected disabled control never to gain focus, got %d", p2.focusGained)
	}
	checkFocusChain(t, rt)
}

func TestKeyRouting(t *testing.T) {
	tests := []struct {
		name        string
		before      bool
		parentTakes bool
		childTakes  bool
		wantParent  int
		wantChild   int
	}{
		{"child first, child handles", false, true, true, 0, 1},
		{"child first, bubbles to parent", false, true, false, 1, 1},
		{"parent first, parent handles", true, true, true, 1, 0},
		{"parent first, falls to child", true, false, true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestRuntime(keyEvent(input.KeyF3))
			parent := newProbe("x:0,y:0,w:20,h:5")
			if tt.before {
				parent.flags |= KeyInputBeforeChildren
			}
			parent.onKey = func(*probe, input.Key) EventProcessStatus {
				if tt.parentTakes {
					return Processed
				}
				return Ignored
			}
			desktopBase(rt).AddChild(parent)
			child := newProbe("x:0,y:0,w:5,h:1")
			child.onKey = func(*probe, input.Key) EventProcessStatus {
				if tt.childTakes {
					return Processed
				}
				return Ignored
			}
			parent.AddChild(child)

			_ = rt.Run()

			if len(parent.keys) != tt.wantParent {
				t.Errorf("Expected parent to see %d keys, got %d", tt.wantParent, len(parent.keys))
			}
			if len(child.keys) != tt.wantChild {
				t.Errorf("Expected child to see %d keys, got %d", tt.wantChild, len(child.keys))
			}
		})
	}
}

func TestInactiveControlGetsNoKeys(t *testing.T) {
	rt, _ := newTestRuntime(keyEvent(input.KeyF3))
	p := newProbe("x:0,y:0,w:5,h:1")
	desktopBase(rt).AddChild(p)
	p.SetVisible(false)

	_ = rt.Run()

	if len(p.keys) != 0 {
		t.Errorf("Expected hidden control to get no keys, got %v", p.keys)
	}
}

func expandOnF1PackOnF2(p *probe, k input.Key) EventProcessStatus {
	switch k.Code {
	case input.KeyF1:
		p.Expand(graphics.Size{Width: 10, Height: 3}, graphics.Size{Width: 10, Height: 3})
		p.Expand(graphics.Size{Width: 10, Height: 3}, graphics.Size{Width: 10, Height: 3})
		return Processed
	case input.KeyF2:
		p.Pack()
		return Processed
	}
	return Ignored
}

func TestExpandPackIdempotent(t *testing.T) {
	rt, fb := newTestRuntime(keyEvent(input.KeyF1), keyEvent(input.KeyF1), keyEvent(input.KeyF2), keyEvent(input.KeyF2))
	p := newProbe("x:2,y:2,w:10,h:1")
	p.onKey = expandOnF1PackOnF2
	desktopBase(rt).AddChild(p)

	_ = rt.Run()

	if p.expands != 1 || p.packs != 1 {
		t.Errorf("Expected one expand and one pack, got %d/%d", p.expands, p.packs)
	}
	if p.IsExpanded() {
		t.Errorf("Expected control to be packed")
	}
	if len(fb.frames) < 3 {
		t.Fatalf("Expected at least 3 frames, got %d", len(fb.frames))
	}
	if fb.frames[0] != fb.frames[len(fb.frames)-1] {
		t.Errorf("Expected packed frame to equal the initial frame, got 0x%X and 0x%X", fb.frames[0], fb.frames[len(fb.frames)-1])
	}
}

func TestExpandDirection(t *testing.T) {
	tests := []struct {
		name string
		y    int
		want ExpandDirection
	}{
		{"room below", 2, ExpandOnBottom},
		{"bottom row", 24, ExpandOnTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestRuntime(keyEvent(input.KeyF1))
			p := newProbe(fmt.Sprintf("x:0,y:%d,w:10,h:1", tt.y))
			p.onKey = expandOnF1PackOnF2
			desktopBase(rt).AddChild(p)

			_ = rt.Run()

			if !p.IsExpanded() {
				t.Fatalf("Expected control to be expanded")
			}
			if p.ExpandDirection() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, p.ExpandDirection())
			}
			if got := p.ExpandedSize(); got != (graphics.Size{Width: 10, Height: 3}) {
				t.Errorf("Expected expanded size 10x3, got %v", got)
			}
		})
	}
}

func TestHitTestPrefersExpandedControl(t *testing.T) {
	rt, _ := newTestRuntime(
		keyEvent(input.KeyF1),
		event.MouseButtonDown{X: 2, Y: 1, Button: input.MouseLeft},
		event.MouseButtonUp{X: 2, Y: 1, Button: input.MouseLeft},
	)
	top := newProbe("x:0,y:0,w:10,h:1")
	top.onKey = expandOnF1PackOnF2
	below := newProbe("x:0,y:1,w:10,h:1")
	desk := desktopBase(rt)
	desk.AddChild(top)
	desk.AddChild(below)
	top.RequestFocus()

	_ = rt.Run()

	if len(below.mouse) != 0 {
		t.Errorf("Expected covered control to get no mouse events, got %v", mouseKinds(below.mouse))
	}
	want := []MouseEventKind{MousePressed, MouseReleased}
	got := mouseKinds(top.mouse)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	if top.mouse[0].X != 2 || top.mouse[0].Y != 1 {
		t.Errorf("Expected local (2,1), got (%d,%d)", top.mouse[0].X, top.mouse[0].Y)
	}
	if !top.IsExpanded() {
		t.Errorf("Expected click inside the popup to keep it expanded")
	}
}

func TestMouseClickMovesFocus(t *testing.T) {
	rt, _ := newTestRuntime(
		event.MouseButtonDown{X: 3, Y: 5, Button: input.MouseLeft},
		event.MouseButtonUp{X: 3, Y: 5, Button: input.MouseLeft},
	)
	p1 := newProbe("x:0,y:5,w:10,h:1")
	p2 := newProbe("x:0,y:6,w:10,h:1")
	desk := desktopBase(rt)
	h1 := desk.AddChild(p1)
	desk.AddChild(p2)

	_ = rt.Run()

	if rt.Focused() != h1 {
		t.Errorf("Expected click to focus %v, got %v", h1, rt.Focused())
	}
	if p1.mouse[0].X != 3 || p1.mouse[0].Y != 0 {
		t.Errorf("Expected local (3,0), got (%d,%d)", p1.mouse[0].X, p1.mouse[0].Y)
	}
	checkFocusChain(t, rt)
}

func TestMouseCaptureUntilRelease(t *testing.T) {
	rt, _ := newTestRuntime(
		event.MouseButtonDown{X: 1, Y: 0, Button: input.MouseLeft},
		event.MouseMove{X: 1, Y: 10, Button: input.MouseLeft},
		event.MouseWheel{X: 1, Y: 10, Direction: input.WheelDown},
		event.MouseButtonUp{X: 1, Y: 10, Button: input.MouseLeft},
	)
	p1 := newProbe("x:0,y:0,w:10,h:1")
	p2 := newProbe("x:0,y:10,w:10,h:1")
	desk := desktopBase(rt)
	desk.AddChild(p1)
	desk.AddChild(p2)

	_ = rt.Run()

	want := []MouseEventKind{MousePressed, MouseDrag, MouseReleased}
	got := mouseKinds(p1.mouse)
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, got[i])
		}
	}
	if len(p2.mouse) != 0 {
		t.Errorf("Expected no events for the control under a captured drag, got %v", mouseKinds(p2.mouse))
	}
}

func TestMouseHoverTracking(t *testing.T) {
	rt, _ := newTestRuntime(
		event.MouseMove{X: 1, Y: 0},
		event.MouseMove{X: 2, Y: 0},
		event.MouseMove{X: 1, Y: 1},
	)
	p1 := newProbe("x:0,y:0,w:10,h:1")
	p2 := newProbe("x:0,y:1,w:10,h:1")
	desk := desktopBase(rt)
	desk.AddChild(p1)
	desk.AddChild(p2)

	_ = rt.Run()

	tests := []struct {
		name  string
		p     *probe
		want  []MouseEventKind
		hover bool
	}{
		{"left control", p1, []MouseEventKind{MouseEnter, MouseHover, MouseHover, MouseLeave}, false},
		{"entered control", p2, []MouseEventKind{MouseEnter, MouseHover}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mouseKinds(tt.p.mouse)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v at %d, got %v", tt.want[i], i, got[i])
				}
			}
			if tt.p.IsMouseOver() != tt.hover {
				t.Errorf("Expected mouse over %v, got %v", tt.hover, tt.p.IsMouseOver())
			}
		})
	}
}

func TestResizeNotifiesOnce(t *testing.T) {
	rt, fb := newTestRuntime(
		event.Resize{Width: 100, Height: 30},
		event.Resize{Width: 100, Height: 30},
		event.Resize{Width: 0, Height: 30},
	)
	p := newProbe("d:f")
	desktopBase(rt).AddChild(p)

	_ = rt.Run()

	if p.resizes != 2 {
		t.Errorf("Expected 2 OnResize calls (initial and one resize), got %d", p.resizes)
	}
	if got := p.Size(); got != (graphics.Size{Width: 100, Height: 30}) {
		t.Errorf("Expected 100x30, got %v", got)
	}
	if rt.Size() != (graphics.Size{Width: 100, Height: 30}) {
		t.Errorf("Expected surface 100x30, got %v", rt.Size())
	}
	if len(fb.resized) != 3 {
		t.Errorf("Expected backend to see 3 resize events, got %d", len(fb.resized))
	}
}

func TestRemovedHandleIsStale(t *testing.T) {
	rt, _ := newTestRuntime()
	desk := desktopBase(rt)
	p := newProbe("x:0,y:0,w:5,h:1")
	h := desk.AddChild(p)
	child := newProbe("x:0,y:0,w:1,h:1")
	hc := p.AddChild(child)
	rt.Remove(h)

	_ = rt.Run()

	if rt.Control(h) != nil || rt.Control(hc) != nil {
		t.Errorf("Expected removed handles to resolve to nothing")
	}
	if _, ok := Get[*probe](rt, h); ok {
		t.Errorf("Expected Get on a stale handle to fail")
	}
	if len(desk.Children()) != 0 {
		t.Errorf("Expected desktop to have no children, got %d", len(desk.Children()))
	}
	h2 := desk.AddChild(newProbe("x:0,y:0,w:5,h:1"))
	if h2 == h {
		t.Errorf("Expected a fresh handle, got the removed one %v", h)
	}
	if rt.Len() != 2 {
		t.Errorf("Expected desktop and one control, got %d", rt.Len())
	}
}

func TestRemovingFocusedWindowFocusesTopmostWindow(t *testing.T) {
	rt, _ := newTestRuntime(keyEvent(input.KeyF5), keyEvent(input.KeyF6))
	w1 := NewWindow("One", MustLayout("x:0,y:0,w:20,h:5"))
	w2 := NewWindow("Two", MustLayout("x:0,y:6,w:20,h:5"))
	hw1 := rt.AddWindow(w1)
	hw2 := rt.AddWindow(w2)
	p1 := newProbe("x:0,y:0,w:10,h:1")
	p2 := newProbe("x:0,y:0,w:10,h:1")
	h1 := w1.AddChild(p1)
	w2.AddChild(p2)
	p2.onKey = func(p *probe, key input.Key) EventProcessStatus {
		if key.Code == input.KeyF5 {
			rt.Remove(hw2)
			return Processed
		}
		return Ignored
	}

	_ = rt.Run()

	if rt.Focused() != h1 {
		t.Errorf("Expected focus on %v, got %v", h1, rt.Focused())
	}
	if got := desktopBase(rt).FocusedChild(); got != hw1 {
		t.Errorf("Expected desktop focused child %v, got %v", hw1, got)
	}
	if len(p1.keys) != 1 || p1.keys[0].Code != input.KeyF6 {
		t.Errorf("Expected F6 to reach the remaining window, got %v", p1.keys)
	}
	checkFocusChain(t, rt)
}

func TestTooltipOnPointUsesScreenOrigin(t *testing.T) {
	rt, _ := newTestRuntime(keyEvent(input.KeyF2))
	w := NewWindow("Main", MustLayout("x:0,y:5,w:30,h:6"))
	rt.AddWindow(w)
	// starts two cells left of the window client area, so its clip is narrower than its origin
	p := newProbe("x:-3,y:1,w:10,h:1")
	w.AddChild(p)
	p.onKey = func(p *probe, key input.Key) EventProcessStatus {
		p.ShowTooltipOnPoint("hint", 5, 0)
		return Processed
	}

	_ = rt.Run()

	origin := p.ScreenOrigin()
	if p.ScreenClip().Left == origin.X {
		t.Fatalf("Expected the control to be clipped on the left, origin %v clip %v", origin, p.ScreenClip())
	}
	want := graphics.Point{X: origin.X + 5, Y: origin.Y - 1}
	if rt.tooltip.arrowPos != want {
		t.Errorf("Expected tooltip arrow at %v, got %v", want, rt.tooltip.arrowPos)
	}
}

func TestGetChecksType(t *testing.T) {
	rt, _ := newTestRuntime()
	h := desktopBase(rt).AddChild(newProbe("x:0,y:0,w:5,h:1"))
	if _, ok := Get[*probe](rt, h); !ok {
		t.Errorf("Expected Get[*probe] to succeed")
	}
	if _, ok := Get[*Window](rt, h); ok {
		t.Errorf("Expected Get[*Window] on a probe to fail")
	}
}

type vetoDesktop struct {
	Desktop
	closes int
}

func (d *vetoDesktop) OnClose() ActionRequest {
	d.closes++
	if d.closes == 1 {
		return Deny
	}
	return Allow
}

func TestDesktopCanVetoClose(t *testing.T) {
	fb := &fakeBackend{size: graphics.Size{Width: 40, Height: 10}}
	d := &vetoDesktop{Desktop: *NewDesktop()}
	rt := New(fb, WithDesktop(d))

	_ = rt.Run()

	if d.closes != 2 {
		t.Errorf("Expected 2 close requests, got %d", d.closes)
	}
}

func TestSingleWindowRequiresWindow(t *testing.T) {
	fb := &fakeBackend{size: graphics.Size{Width: 40, Height: 10}}
	rt := New(fb, WithSingleWindow())
	if err := rt.Run(); err != ErrNoWindow {
		t.Errorf("Expected ErrNoWindow, got %v", err)
	}

	fb = &fakeBackend{size: graphics.Size{Width: 40, Height: 10}}
	rt = New(fb, WithSingleWindow())
	w := NewWindow("Only", MustLayout("x:3,y:3,w:10,h:4"))
	rt.AddWindow(w)
	if err := rt.Run(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if w.Size() != (graphics.Size{Width: 40, Height: 10}) {
		t.Errorf("Expected single window to fill the terminal, got %v", w.Size())
	}
}

func TestModalWindowTakesInput(t *testing.T) {
	rt, _ := newTestRuntime(keyEvent(input.KeyF5), keyEvent(input.KeyA), keyEvent(input.KeyEscape), keyEvent(input.KeyB))
	back := newProbe("x:0,y:0,w:10,h:1")
	var modalChild *probe
	var modalHandle Handle
	back.onKey = func(p *probe, k input.Key) EventProcessStatus {
		if k.Code != input.KeyF5 {
			return Ignored
		}
		w := NewWindow("Modal", MustLayout("x:5,y:5,w:20,h:5"))
		modalHandle = rt.AddModalWindow(w)
		modalChild = newProbe("x:0,y:0,w:5,h:1")
		w.AddChild(modalChild)
		rt.RunModal(w)
		return Processed
	}
	desktopBase(rt).AddChild(back)

	_ = rt.Run()

	if modalChild == nil {
		t.Fatalf("Expected modal window to run")
	}
	if len(modalChild.keys) != 2 || modalChild.keys[0].Code != input.KeyA {
		t.Errorf("Expected modal child to see A then Escape, got %v", modalChild.keys)
	}
	if n := len(back.keys); n != 2 || back.keys[1].Code != input.KeyB {
		t.Errorf("Expected desktop control to see F5 then B, got %v", back.keys)
	}
	if rt.Control(modalHandle) != nil {
		t.Errorf("Expected modal window to be removed after exit")
	}
	checkFocusChain(t, rt)
}

type collector struct {
	Desktop
	events []ControlEvent
}

func (c *collector) OnEvent(ev ControlEvent) EventProcessStatus {
	c.events = append(c.events, ev)
	return Processed
}

func TestRaisedEventsBubble(t *testing.T) {
	fb := &fakeBackend{size: graphics.Size{Width: 40, Height: 10}, events: []event.SystemEvent{keyEvent(input.KeyEnter)}}
	d := &collector{Desktop: *NewDesktop()}
	rt := New(fb, WithDesktop(d))
	p := newProbe("x:0,y:0,w:5,h:1")
	p.onKey = func(p *probe, _ input.Key) EventProcessStatus {
		p.RaiseEvent("pressed")
		return Processed
	}
	h := d.AddChild(p)

	_ = rt.Run()

	if len(d.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(d.events))
	}
	if d.events[0].Emitter != h || d.events[0].Data != "pressed" {
		t.Errorf("Expected event from %v with data pressed, got %+v", h, d.events[0])
	}
}

func TestHotKeyRunsDefaultAction(t *testing.T) {
	rt, _ := newTestRuntime(event.KeyPressed{Key: input.NewKey(input.KeyS, input.ModAlt)})
	w := NewWindow("Main", MustLayout("x:0,y:0,w:40,h:10"))
	rt.AddWindow(w)
	target := newProbe("x:1,y:1,w:10,h:1")
	target.SetHotKey(NewCaption("&Save").HotKey())
	ht := w.AddChild(target)
	w.AddChild(newProbe("x:1,y:2,w:10,h:1"))

	_ = rt.Run()

	if target.defaultAction != 1 {
		t.Errorf("Expected 1 default action, got %d", target.defaultAction)
	}
	if rt.Focused() != ht {
		t.Errorf("Expected hot key to focus %v, got %v", ht, rt.Focused())
	}
}
