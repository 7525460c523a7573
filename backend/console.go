package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/terminal"
)

// consoleBackend drives the native console through a tcell screen
// PollEvent blocks, so the backend is single threaded
type consoleBackend struct {
	screen tcell.Screen
	size   graphics.Size

	pending []event.SystemEvent
	buttons tcell.ButtonMask

	lastPress  time.Time
	lastButton input.MouseButton
	lastX      int
	lastY      int
	now        func() time.Time

	clip *systemClipboard
	log  *zap.Logger
}

// NewConsole opens the native console
func NewConsole(opts Options) (Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, newError(InitializationFailure, err, "console screen")
	}
	return newConsoleWithScreen(screen, opts)
}

func newConsoleWithScreen(screen tcell.Screen, opts Options) (*consoleBackend, error) {
	if err := screen.Init(); err != nil {
		return nil, newError(InitializationFailure, err, "console init")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	log := opts.logger()
	log.Info("console backend ready", zap.Int("width", w), zap.Int("height", h))

	return &consoleBackend{
		screen: screen,
		size:   graphics.Size{Width: w, Height: h},
		now:    time.Now,
		clip:   newSystemClipboard(log, nil),
		log:    log,
	}, nil
}

func (c *consoleBackend) Size() graphics.Size { return c.size }

func (c *consoleBackend) IsSingleThreaded() bool { return true }

func (c *consoleBackend) QuerySystemEvent() (event.SystemEvent, bool) {
	if len(c.pending) == 0 {
		ev := c.screen.PollEvent()
		if ev == nil {
			return event.AppClose{}, true
		}
		c.pending = c.translate(ev)
	}
	if len(c.pending) == 0 {
		return nil, false
	}
	ev := c.pending[0]
	c.pending = c.pending[1:]
	return ev, true
}

func (c *consoleBackend) translate(ev tcell.Event) []event.SystemEvent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.SystemEvent{event.Resize{Width: w, Height: h}}
	case *tcell.EventKey:
		if k, ok := translateKey(e); ok {
			return []event.SystemEvent{k}
		}
	case *tcell.EventMouse:
		return c.translateMouse(e)
	}
	return nil
}

func translateModifier(m tcell.ModMask) input.Modifier {
	var mod input.Modifier
	if m&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}
	return mod
}

var tcellKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
}

func translateKey(e *tcell.EventKey) (event.KeyPressed, bool) {
	mod := translateModifier(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		key := input.KeyFromChar(r)
		key.Modifier |= mod
		if mod&(input.ModCtrl|input.ModAlt) != 0 {
			return event.KeyPressed{Key: key}, !key.IsNone()
		}
		return event.KeyPressed{Key: key, Character: r}, true
	case k == tcell.KeyBacktab:
		return event.KeyPressed{Key: input.NewKey(input.KeyTab, mod|input.ModShift)}, true
	case k == tcell.KeyCtrlSpace:
		return event.KeyPressed{Key: input.NewKey(input.KeySpace, mod|input.ModCtrl)}, true
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return event.KeyPressed{Key: input.NewKey(input.KeyF1+input.KeyCode(k-tcell.KeyF1), mod)}, true
	}
	if code, ok := tcellKeys[k]; ok {
		return event.KeyPressed{Key: input.NewKey(code, mod)}, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return event.KeyPressed{Key: input.NewKey(input.KeyA+input.KeyCode(k-tcell.KeyCtrlA), mod|input.ModCtrl)}, true
	}
	return event.KeyPressed{}, false
}

// buttonOf picks the reported button from a tcell mask, left first
func buttonOf(m tcell.ButtonMask) input.MouseButton {
	switch {
	case m&tcell.ButtonPrimary != 0:
		return input.MouseLeft
	case m&tcell.ButtonSecondary != 0:
		return input.MouseRight
	case m&tcell.ButtonMiddle != 0:
		return input.MouseCenter
	}
	return input.MouseNone
}

// translateMouse diffs the held button mask against the previous event
// tcell reports state, not transitions
func (c *consoleBackend) translateMouse(e *tcell.EventMouse) []event.SystemEvent {
	x, y := e.Position()
	mod := translateModifier(e.Modifiers())
	mask := e.Buttons()

	switch {
	case mask&tcell.WheelUp != 0:
		return []event.SystemEvent{event.MouseWheel{X: x, Y: y, Direction: input.WheelUp}}
	case mask&tcell.WheelDown != 0:
		return []event.SystemEvent{event.MouseWheel{X: x, Y: y, Direction: input.WheelDown}}
	case mask&tcell.WheelLeft != 0:
		return []event.SystemEvent{event.MouseWheel{X: x, Y: y, Direction: input.WheelLeft}}
	case mask&tcell.WheelRight != 0:
		return []event.SystemEvent{event.MouseWheel{X: x, Y: y, Direction: input.WheelRight}}
	}

	buttons := mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	prev := c.buttons
	c.buttons = buttons

	switch {
	case buttons == prev:
		return []event.SystemEvent{event.MouseMove{X: x, Y: y, Button: buttonOf(buttons)}}
	case buttons&^prev != 0:
		button := buttonOf(buttons &^ prev)
		now := c.now()
		if button == c.lastButton && x == c.lastX && y == c.lastY && !c.lastPress.IsZero() &&
			now.Sub(c.lastPress) <= terminal.DoubleClickInterval {
			c.lastPress = time.Time{}
			return []event.SystemEvent{event.MouseDoubleClick{X: x, Y: y, Button: button, Modifier: mod}}
		}
		c.lastPress, c.lastButton, c.lastX, c.lastY = now, button, x, y
		return []event.SystemEvent{event.MouseButtonDown{X: x, Y: y, Button: button, Modifier: mod}}
	default:
		return []event.SystemEvent{event.MouseButtonUp{X: x, Y: y, Button: buttonOf(prev &^ buttons), Modifier: mod}}
	}
}

// tcellColor maps palette colors to the 16 ANSI entries and RGB colors to true color
func tcellColor(c graphics.Color) tcell.Color {
	if r, g, b, ok := c.Components(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	if idx, ok := terminal.PaletteIndex(c); ok {
		return tcell.PaletteColor(int(idx))
	}
	return tcell.ColorDefault
}

func (c *consoleBackend) UpdateScreen(s *graphics.Surface) {
	chars := s.Chars()
	w := s.Width()
	for i, ch := range chars {
		st := tcell.StyleDefault.Foreground(tcellColor(ch.Fg)).Background(tcellColor(ch.Bg))
		if ch.Flags&graphics.FlagBold != 0 {
			st = st.Bold(true)
		}
		if ch.Flags&graphics.FlagItalic != 0 {
			st = st.Italic(true)
		}
		if ch.Flags&graphics.FlagUnderline != 0 {
			st = st.Underline(true)
		}
		r := ch.Code
		if r < ' ' {
			r = ' '
		}
		c.screen.SetContent(i%w, i/w, r, nil, st)
	}
	if cur := s.Cursor(); cur.Visible {
		c.screen.ShowCursor(cur.X, cur.Y)
	} else {
		c.screen.HideCursor()
	}
	c.screen.Show()
}

func (c *consoleBackend) OnResize(size graphics.Size) {
	c.size = size
	c.screen.Sync()
}

func (c *consoleBackend) ClipboardText() (string, bool) { return c.clip.Text() }

func (c *consoleBackend) SetClipboardText(text string) { c.clip.SetText(text) }

func (c *consoleBackend) HasClipboardText() bool { return c.clip.HasText() }

func (c *consoleBackend) Bell() {
	if err := c.screen.Beep(); err != nil {
		c.log.Debug("console bell failed", zap.Error(err))
	}
}

func (c *consoleBackend) Close() error {
	c.screen.Fini()
	return nil
}
