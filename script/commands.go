package script

import (
	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

// Command is one parsed script line
type Command interface {
	Name() string
}

// InputCommand is a command that injects system events
// mouse is the last known pointer position and mod the currently held modifiers
type InputCommand interface {
	Command
	Events(mouse graphics.Point, mod input.Modifier) []event.SystemEvent
}

// MinScreenSize and MaxScreenSize bound the Resize command
const (
	MinScreenSize = 5
	MaxScreenSize = 10000
)

type constructor func(p *Parser) (Command, error)

var constructors = map[string]constructor{
	"Resize":             newResize,
	"Mouse.Move":         newMouseMove,
	"Mouse.Hold":         newMouseHold,
	"Mouse.Release":      newMouseRelease,
	"Mouse.Click":        newMouseClick,
	"Mouse.DoubleClick":  newMouseDoubleClick,
	"Mouse.Drag":         newMouseDrag,
	"Mouse.Wheel":        newMouseWheel,
	"Key.Pressed":        newKeyPressed,
	"Key.TypeText":       newKeyTypeText,
	"Key.Modifier":       newKeyModifier,
	"Paint":              newPaint,
	"Paint.Enable":       newPaintEnable,
	"Error.Disable":      newErrorDisable,
	"CheckHash":          newCheckHash,
	"CheckCursor":        newCheckCursor,
	"Clipboard.SetText":  newClipboardSetText,
	"Clipboard.Clear":    newClipboardClear,
	"CheckClipboardText": newCheckClipboardText,
}

// Parse tokenizes and validates one script line
func Parse(line string) (Command, error) {
	p, err := NewParser(line)
	if err != nil {
		return nil, err
	}
	return FromParser(p)
}

// FromParser builds the command named by an already tokenized line
func FromParser(p *Parser) (Command, error) {
	ctor, ok := constructors[p.Command()]
	if !ok {
		return nil, parseErr("Invalid/Unknwon command: %s", p.Command())
	}
	return ctor(p)
}

// ===== RESIZE =====

// Resize changes the emulated screen size
type Resize struct {
	Width, Height int
}

func newResize(p *Parser) (Command, error) {
	if p.ParamsCount() != 2 {
		return nil, parseErr("Resize command requires 2 parameters (width and height)")
	}
	w, ok := p.Int(0)
	if !ok {
		return nil, parseErr("First parameter for Resize must be an integer (width)")
	}
	h, ok := p.Int(1)
	if !ok {
		return nil, parseErr("Second parameter for Resize must be an integer (height)")
	}
	if w < MinScreenSize || w > MaxScreenSize {
		return nil, parseErr("Width for Resize must be between %d and %d", MinScreenSize, MaxScreenSize)
	}
	if h < MinScreenSize || h > MaxScreenSize {
		return nil, parseErr("Height for Resize must be between %d and %d", MinScreenSize, MaxScreenSize)
	}
	return Resize{Width: w, Height: h}, nil
}

func (Resize) Name() string { return "Resize" }

func (c Resize) Events(graphics.Point, input.Modifier) []event.SystemEvent {
	return []event.SystemEvent{event.Resize{Width: c.Width, Height: c.Height}}
}

// ===== MOUSE =====

// parseXYButton validates the (x, y, button) form shared by the button commands
func parseXYButton(p *Parser, name string) (int, int, input.MouseButton, error) {
	if p.ParamsCount() != 3 {
		return 0, 0, input.MouseNone, parseErr("%s command requires 3 parameters (x, y and button)", name)
	}
	x, ok := p.Int(0)
	if !ok {
		return 0, 0, input.MouseNone, parseErr("First parameter for %s must be an integer (x value)", name)
	}
	y, ok := p.Int(1)
	if !ok {
		return 0, 0, input.MouseNone, parseErr("Second parameter for %s must be an integer (y value)", name)
	}
	b, ok := p.MouseButton(2)
	if !ok {
		return 0, 0, input.MouseNone, parseErr("Third parameter for %s must be a mouse button (left, right or center)", name)
	}
	return x, y, b, nil
}

// moveTo emits a plain move when the pointer is not already at (x, y)
func moveTo(mouse graphics.Point, x, y int) []event.SystemEvent {
	if mouse.X == x && mouse.Y == y {
		return nil
	}
	return []event.SystemEvent{event.MouseMove{X: x, Y: y, Button: input.MouseNone}}
}

// MouseMove moves the pointer with no button held
type MouseMove struct {
	X, Y int
}

func newMouseMove(p *Parser) (Command, error) {
	if p.ParamsCount() != 2 {
		return nil, parseErr("Mouse.Move command requires 2 parameters (x and y)")
	}
	x, ok := p.Int(0)
	if !ok {
		return nil, parseErr("First parameter for Mouse.Move must be an integer (x value)")
	}
	y, ok := p.Int(1)
	if !ok {
		return nil, parseErr("Second parameter for Mouse.Move must be an integer (y value)")
	}
	return MouseMove{X: x, Y: y}, nil
}

func (MouseMove) Name() string { return "Mouse.Move" }

func (c MouseMove) Events(graphics.Point, input.Modifier) []event.SystemEvent {
	return []event.SystemEvent{event.MouseMove{X: c.X, Y: c.Y, Button: input.MouseNone}}
}

// MouseHold presses a button without releasing it
type MouseHold struct {
	X, Y   int
	Button input.MouseButton
}

func newMouseHold(p *Parser) (Command, error) {
	x, y, b, err := parseXYButton(p, "Mouse.Hold")
	if err != nil {
		return nil, err
	}
	return MouseHold{X: x, Y: y, Button: b}, nil
}

func (MouseHold) Name() string { return "Mouse.Hold" }

func (c MouseHold) Events(mouse graphics.Point, mod input.Modifier) []event.SystemEvent {
	return append(moveTo(mouse, c.X, c.Y),
		event.MouseButtonDown{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod})
}

// MouseRelease releases a button
type MouseRelease struct {
	X, Y   int
	Button input.MouseButton
}

func newMouseRelease(p *Parser) (Command, error) {
	x, y, b, err := parseXYButton(p, "Mouse.Release")
	if err != nil {
		return nil, err
	}
	return MouseRelease{X: x, Y: y, Button: b}, nil
}

func (MouseRelease) Name() string { return "Mouse.Release" }

func (c MouseRelease) Events(mouse graphics.Point, mod input.Modifier) []event.SystemEvent {
	return append(moveTo(mouse, c.X, c.Y),
		event.MouseButtonUp{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod})
}

// MouseClick presses and releases a button at one position
type MouseClick struct {
	X, Y   int
	Button input.MouseButton
}

func newMouseClick(p *Parser) (Command, error) {
	x, y, b, err := parseXYButton(p, "Mouse.Click")
	if err != nil {
		return nil, err
	}
	return MouseClick{X: x, Y: y, Button: b}, nil
}

func (MouseClick) Name() string { return "Mouse.Click" }

func (c MouseClick) Events(mouse graphics.Point, mod input.Modifier) []event.SystemEvent {
	return append(moveTo(mouse, c.X, c.Y),
		event.MouseButtonDown{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod},
		event.MouseButtonUp{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod})
}

// MouseDoubleClick emits a click followed by a double-click report and a final release
type MouseDoubleClick struct {
	X, Y   int
	Button input.MouseButton
}

func newMouseDoubleClick(p *Parser) (Command, error) {
	x, y, b, err := parseXYButton(p, "Mouse.DoubleClick")
	if err != nil {
		return nil, err
	}
	return MouseDoubleClick{X: x, Y: y, Button: b}, nil
}

func (MouseDoubleClick) Name() string { return "Mouse.DoubleClick" }

func (c MouseDoubleClick) Events(mouse graphics.Point, mod input.Modifier) []event.SystemEvent {
	return append(moveTo(mouse, c.X, c.Y),
		event.MouseButtonDown{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod},
		event.MouseButtonUp{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod},
		event.MouseDoubleClick{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod},
		event.MouseButtonUp{X: c.X, Y: c.Y, Button: c.Button, Modifier: mod})
}

// MouseDrag drags with the left button from one point to another
type MouseDrag struct {
	X1, Y1, X2, Y2 int
}

func newMouseDrag(p *Parser) (Command, error) {
	if p.ParamsCount() != 4 {
		return nil, parseErr("Mouse.Drag command requires 4 parameters (x1, y1, x2 and y2)")
	}
	var v [4]int
	for i := range v {
		n, ok := p.Int(i)
		if !ok {
			return nil, parseErr("Parameter %d for Mouse.Drag must be an integer", i+1)
		}
		v[i] = n
	}
	return MouseDrag{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func (MouseDrag) Name() string { return "Mouse.Drag" }

func (c MouseDrag) Events(graphics.Point, input.Modifier) []event.SystemEvent {
	return []event.SystemEvent{
		event.MouseButtonDown{X: c.X1, Y: c.Y1, Button: input.MouseLeft},
		event.MouseMove{X: c.X2, Y: c.Y2, Button: input.MouseLeft},
		event.MouseButtonUp{X: c.X2, Y: c.Y2, Button: input.MouseNone},
	}
}

// MouseWheel scrolls the wheel a number of notches
type MouseWheel struct {
	X, Y      int
	Direction input.WheelDirection
	Times     int
}

func newMouseWheel(p *Parser) (Command, error) {
	if p.ParamsCount() != 4 {
		return nil, parseErr("Mouse.Wheel command requires 4 parameters")
	}
	x, ok := p.Int(0)
	if !ok {
		return nil, parseErr("First parameter for Mouse.Wheel must be an integer (x value)")
	}
	y, ok := p.Int(1)
	if !ok {
		return nil, parseErr("Second parameter for Mouse.Wheel must be an integer (y value)")
	}
	d, ok := p.WheelDirection(2)
	if !ok {
		return nil, parseErr("Third parameter for Mouse.Wheel must be a direction (one of left, right, up, down)")
	}
	t, ok := p.Int(3)
	if !ok || t < 1 {
		return nil, parseErr("Fourth parameter for Mouse.Wheel must be a positive number (number of times)")
	}
	return MouseWheel{X: x, Y: y, Direction: d, Times: t}, nil
}

func (MouseWheel) Name() string { return "Mouse.Wheel" }

func (c MouseWheel) Events(mouse graphics.Point, _ input.Modifier) []event.SystemEvent {
	evs := moveTo(mouse, c.X, c.Y)
	for range c.Times {
		evs = append(evs, event.MouseWheel{X: c.X, Y: c.Y, Direction: c.Direction})
	}
	return evs
}

// ===== KEYBOARD =====

// KeyPressed sends a key a number of times
type KeyPressed struct {
	Key   input.Key
	Times int
}

func newKeyPressed(p *Parser) (Command, error) {
	n := p.ParamsCount()
	if n != 1 && n != 2 {
		return nil, parseErr("Key.Pressed command requires one or two parameters")
	}
	k, ok := p.Key(0)
	if !ok {
		return nil, parseErr("First parameter for Key.Pressed must be a known key or key combination")
	}
	times := 1
	if n == 2 {
		t, ok := p.Int(1)
		if !ok {
			return nil, parseErr("Second parameter for Key.Pressed is the number of times (must be a numerical value)")
		}
		if t < 1 {
			return nil, parseErr("Number of times a key is sent must be a positive (>=1) number")
		}
		times = t
	}
	return KeyPressed{Key: k, Times: times}, nil
}

func (KeyPressed) Name() string { return "Key.Pressed" }

func (c KeyPressed) Events(graphics.Point, input.Modifier) []event.SystemEvent {
	ch := input.CharFor(c.Key)
	evs := make([]event.SystemEvent, 0, c.Times)
	for range c.Times {
		evs = append(evs, event.KeyPressed{Key: c.Key, Character: ch})
	}
	return evs
}

// KeyTypeText types every rune of Text
type KeyTypeText struct {
	Text string
}

func newKeyTypeText(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("Key.TypeText command requires one parameter (the text to type)")
	}
	s, _ := p.String(0)
	return KeyTypeText{Text: s}, nil
}

func (KeyTypeText) Name() string { return "Key.TypeText" }

func (c KeyTypeText) Events(graphics.Point, input.Modifier) []event.SystemEvent {
	var evs []event.SystemEvent
	for _, ch := range c.Text {
		evs = append(evs, event.KeyPressed{Key: input.KeyFromChar(ch), Character: ch})
	}
	return evs
}

// KeyModifier changes the held modifier set
type KeyModifier struct {
	Modifier input.Modifier
}

func newKeyModifier(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("Key.Modifier command requires one parameter")
	}
	m, ok := p.Modifier(0)
	if !ok {
		return nil, parseErr("Parameter for Key.Modifier must be a modifier combination (Alt, Ctrl, Shift or None)")
	}
	return KeyModifier{Modifier: m}, nil
}

func (KeyModifier) Name() string { return "Key.Modifier" }

func (c KeyModifier) Events(_ graphics.Point, mod input.Modifier) []event.SystemEvent {
	return []event.SystemEvent{event.KeyModifierChanged{Old: mod, New: c.Modifier}}
}

// ===== PAINT AND ASSERTIONS =====

// Paint requests a labeled frame dump after the next repaint
type Paint struct {
	Title string
}

func newPaint(p *Parser) (Command, error) {
	if p.ParamsCount() > 1 {
		return nil, parseErr("Paint command accepts at most one parameter (the frame title)")
	}
	title, _ := p.String(0)
	return Paint{Title: title}, nil
}

func (Paint) Name() string { return "Paint" }

// PaintEnable toggles frame printing for Paint commands
type PaintEnable struct {
	Enabled bool
}

func newPaintEnable(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("Paint.Enable command requires one parameter (true or false)")
	}
	v, ok := p.Bool(0)
	if !ok {
		return nil, parseErr("Parameter for Paint.Enable must be a boolean value (true or false)")
	}
	return PaintEnable{Enabled: v}, nil
}

func (PaintEnable) Name() string { return "Paint.Enable" }

// ErrorDisable turns failed assertions into printed errors instead of panics
type ErrorDisable struct {
	Disabled bool
}

func newErrorDisable(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("Error.Disable command requires one parameter (true or false)")
	}
	v, ok := p.Bool(0)
	if !ok {
		return nil, parseErr("Parameter for Error.Disable must be a boolean value (true or false)")
	}
	return ErrorDisable{Disabled: v}, nil
}

func (ErrorDisable) Name() string { return "Error.Disable" }

// CheckHash asserts the surface hash after the next repaint
type CheckHash struct {
	Hash uint64
}

func newCheckHash(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("CheckHash command requires one parameter (the expected hash)")
	}
	h, ok := p.Hash(0)
	if !ok {
		return nil, parseErr("Parameter for CheckHash must be a hexadecimal value starting with 0x")
	}
	return CheckHash{Hash: h}, nil
}

func (CheckHash) Name() string { return "CheckHash" }

// CheckCursor asserts the cursor position (or that it is hidden) after the next repaint
type CheckCursor struct {
	X, Y    int
	Visible bool
}

func newCheckCursor(p *Parser) (Command, error) {
	switch p.ParamsCount() {
	case 1:
		s, _ := p.String(0)
		if v, ok := p.Bool(0); (ok && !v) || s == "hidden" || s == "Hidden" {
			return CheckCursor{X: -1, Y: -1}, nil
		}
		return nil, parseErr("Single parameter for CheckCursor must be 'hidden' or 'false'")
	case 2:
		x, ok := p.Int(0)
		if !ok {
			return nil, parseErr("First parameter for CheckCursor must be an integer (x value)")
		}
		y, ok := p.Int(1)
		if !ok {
			return nil, parseErr("Second parameter for CheckCursor must be an integer (y value)")
		}
		return CheckCursor{X: x, Y: y, Visible: true}, nil
	}
	return nil, parseErr("CheckCursor command requires one parameter (hidden) or two (x and y)")
}

func (CheckCursor) Name() string { return "CheckCursor" }

// String renders the expectation the way failure messages print it
func (c CheckCursor) String() string {
	return CursorRepr(c.X, c.Y, c.Visible)
}

// ClipboardSetText replaces the emulated clipboard content
type ClipboardSetText struct {
	Text string
}

func newClipboardSetText(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("Clipboard.SetText command requires one parameter (the text)")
	}
	s, _ := p.String(0)
	return ClipboardSetText{Text: s}, nil
}

func (ClipboardSetText) Name() string { return "Clipboard.SetText" }

// ClipboardClear empties the emulated clipboard
type ClipboardClear struct{}

func newClipboardClear(p *Parser) (Command, error) {
	if p.ParamsCount() != 0 {
		return nil, parseErr("Clipboard.Clear command has no parameters")
	}
	return ClipboardClear{}, nil
}

func (ClipboardClear) Name() string { return "Clipboard.Clear" }

// CheckClipboardText asserts the emulated clipboard content immediately
type CheckClipboardText struct {
	Text string
}

func newCheckClipboardText(p *Parser) (Command, error) {
	if p.ParamsCount() != 1 {
		return nil, parseErr("CheckClipboardText command requires one parameter (the expected text)")
	}
	s, _ := p.String(0)
	return CheckClipboardText{Text: s}, nil
}

func (CheckClipboardText) Name() string { return "CheckClipboardText" }
