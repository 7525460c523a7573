package backend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/script"
)

// Debug screen size bounds when no explicit size is given
const (
	debugDefaultWidth  = 80
	debugDefaultHeight = 40
	debugMinSize       = 10
	debugMaxSize       = 1000
)

// debugBackend replays a command script instead of reading a device
// One command is consumed per query; assertion commands arm a check and request a repaint,
// the check runs on the next UpdateScreen
type debugBackend struct {
	size     graphics.Size
	commands []script.Command
	next     int
	pending  []event.SystemEvent

	mouse graphics.Point
	mod   input.Modifier

	paint          bool
	ignorePaint    bool
	errorsDisabled bool
	repaint        bool
	title          string

	hashCheck   bool
	hash        uint64
	cursorCheck bool
	cursor      script.CheckCursor

	clipboard string

	frame *framePrinter
	log   *zap.Logger
}

// NewDebug parses opts.Script; parse errors are InvalidParameter
func NewDebug(opts Options) (Backend, error) {
	return newDebug(opts)
}

func newDebug(opts Options) (*debugBackend, error) {
	cmds, err := script.ParseScript(opts.Script)
	if err != nil {
		return nil, newError(InvalidParameter, err, "debug script")
	}

	w, h := debugDefaultWidth, debugDefaultHeight
	if opts.Size.Width > 0 && opts.Size.Height > 0 {
		w, h = opts.Size.Width, opts.Size.Height
	}
	w = min(max(w, debugMinSize), debugMaxSize)
	h = min(max(h, debugMinSize), debugMaxSize)

	log := opts.logger()
	log.Debug("debug backend loaded", zap.Int("commands", len(cmds)), zap.Int("width", w), zap.Int("height", h))

	return &debugBackend{
		size:     graphics.Size{Width: w, Height: h},
		commands: cmds,
		frame:    newFramePrinter(opts.output()),
		log:      log,
	}, nil
}

func (d *debugBackend) Size() graphics.Size { return d.size }

func (d *debugBackend) IsSingleThreaded() bool { return true }

// Remaining reports the number of unprocessed commands
func (d *debugBackend) Remaining() int { return len(d.commands) - d.next }

func (d *debugBackend) TakeRepaintRequest() bool {
	r := d.repaint
	d.repaint = false
	return r
}

func (d *debugBackend) QuerySystemEvent() (event.SystemEvent, bool) {
	if len(d.pending) > 0 {
		ev := d.pending[0]
		d.pending = d.pending[1:]
		d.track(ev)
		return ev, true
	}
	if d.next >= len(d.commands) {
		return event.AppClose{}, true
	}
	cmd := d.commands[d.next]
	d.next++

	if ic, ok := cmd.(script.InputCommand); ok {
		d.pending = append(d.pending, ic.Events(d.mouse, d.mod)...)
		return d.QuerySystemEvent()
	}
	d.apply(cmd)
	return nil, false
}

// track follows the pointer and modifier state as events are delivered
func (d *debugBackend) track(ev event.SystemEvent) {
	switch e := ev.(type) {
	case event.Resize:
		d.size = graphics.Size{Width: e.Width, Height: e.Height}
	case event.MouseButtonDown:
		d.mouse = graphics.Point{X: e.X, Y: e.Y}
	case event.MouseButtonUp:
		d.mouse = graphics.Point{X: e.X, Y: e.Y}
	case event.MouseDoubleClick:
		d.mouse = graphics.Point{X: e.X, Y: e.Y}
	case event.MouseMove:
		d.mouse = graphics.Point{X: e.X, Y: e.Y}
	case event.MouseWheel:
		d.mouse = graphics.Point{X: e.X, Y: e.Y}
	case event.KeyModifierChanged:
		d.mod = e.New
	}
}

func (d *debugBackend) apply(cmd script.Command) {
	switch c := cmd.(type) {
	case script.Paint:
		if d.ignorePaint {
			return
		}
		d.title = c.Title
		d.paint = true
		d.repaint = true
	case script.PaintEnable:
		d.ignorePaint = !c.Enabled
	case script.ErrorDisable:
		d.errorsDisabled = c.Disabled
	case script.CheckHash:
		d.paint = false
		d.hashCheck = true
		d.hash = c.Hash
		d.repaint = true
	case script.CheckCursor:
		d.paint = false
		d.cursorCheck = true
		d.cursor = c
		d.repaint = true
	case script.ClipboardSetText:
		d.clipboard = c.Text
	case script.ClipboardClear:
		d.clipboard = ""
	case script.CheckClipboardText:
		if c.Text != d.clipboard {
			msg := fmt.Sprintf("Invalid clipboard text: (expecting: '%s' but found '%s')", c.Text, d.clipboard)
			d.fail(msg, msg)
		}
	default:
		d.log.Warn("unhandled debug command", zap.String("command", cmd.Name()))
	}
}

// fail panics with an AssertionError, or prints when errors are disabled
func (d *debugBackend) fail(msg, printed string) {
	if !d.errorsDisabled {
		panic(&AssertionError{Msg: msg})
	}
	d.log.Warn("debug assertion failed", zap.String("message", msg))
	d.frame.printError(printed)
}

func (d *debugBackend) UpdateScreen(s *graphics.Surface) {
	hash := s.Hash()
	if d.hashCheck {
		d.paint = false
		if d.hash != hash {
			d.fail(
				fmt.Sprintf("Invalid hash for surface (expecting: 0x%X but found 0x%X)", d.hash, hash),
				fmt.Sprintf("Invalid hash: (expecting: 0x%X but found 0x%X)", d.hash, hash))
		}
	}

	cur := s.Cursor()
	if d.cursorCheck {
		actual := graphics.Point{X: -1, Y: -1}
		if cur.Visible {
			actual = graphics.Point{X: cur.X, Y: cur.Y}
		}
		if actual.X != d.cursor.X || actual.Y != d.cursor.Y {
			msg := fmt.Sprintf("Invalid cursor position. Expectig the cursor to be %s, but found %s",
				d.cursor, script.CursorRepr(cur.X, cur.Y, cur.Visible))
			d.fail(msg, msg)
		}
	}

	d.hashCheck = false
	d.cursorCheck = false
	if !d.paint {
		return
	}
	d.paint = false
	d.frame.print(d.title, s, hash, d.mouse)
}

func (d *debugBackend) OnResize(size graphics.Size) {
	d.size = size
}

func (d *debugBackend) ClipboardText() (string, bool) {
	return d.clipboard, d.clipboard != ""
}

func (d *debugBackend) SetClipboardText(text string) {
	d.clipboard = text
}

func (d *debugBackend) HasClipboardText() bool {
	return d.clipboard != ""
}

func (d *debugBackend) Close() error { return nil }
