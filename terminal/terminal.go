package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
)

// Terminal is a raw-mode tty that renders character grids and queues decoded input
type Terminal interface {
	// Init enters raw mode and the alternate screen, enables mouse reporting and starts the reader
	Init() error

	// Fini restores the tty. Safe to call multiple times
	Fini()

	Size() (width, height int)

	ColorMode() ColorMode

	// Flush writes the cells that changed since the previous flush
	// Cells are row-major: cells[y*width + x]
	Flush(cells []graphics.Character, width, height int)

	// SetCursor positions and shows the cursor, or hides it
	SetCursor(x, y int, visible bool)

	// Sync forces a full redraw on the next Flush
	Sync()

	// Bell rings the terminal bell
	Bell()

	// WriteRaw sends an escape sequence straight to the device
	WriteRaw(p []byte) error
}

type termImpl struct {
	tty   tty
	out   *renderer
	dec   *decoder
	queue *event.Queue

	stopCh chan struct{}
	doneCh chan struct{}

	mu            sync.Mutex
	initialized   bool
	finalized     bool
	cursorVisible bool
}

// New creates a Terminal that pushes decoded input and resize events into queue
func New(queue *event.Queue, colorMode ColorMode) Terminal {
	t := newTTY()
	return newTerminal(t, queue, colorMode)
}

func newTerminal(t tty, queue *event.Queue, colorMode ColorMode) *termImpl {
	return &termImpl{
		tty:    t,
		out:    newRenderer(ttyWriter{t}, colorMode),
		dec:    newDecoder(),
		queue:  queue,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// ttyWriter adapts tty.Write to io.Writer for the renderer's buffered writer
type ttyWriter struct{ t tty }

func (w ttyWriter) Write(p []byte) (int, error) {
	if err := w.t.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.tty.Init(); err != nil {
		return err
	}

	w, h := t.tty.Size()
	t.out.resize(w, h)

	t.tty.SetResizeHandler(func(w, h int) {
		t.queue.Push(event.Resize{Width: w, Height: h})
	})

	t.tty.Write(csiAltScreenEnter)
	t.tty.Write(csiCursorHide)
	t.tty.Write(csiAutoWrapOff)
	t.tty.Write(csiMouseOn)
	t.out.clear()

	go t.readLoop()

	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	select {
	case <-t.doneCh:
	case <-time.After(200 * time.Millisecond):
	}

	t.tty.Write(csiMouseOff)
	t.tty.Write(csiCursorShow)
	t.tty.Write(csiAltScreenExit)
	t.tty.Write(csiAutoWrapOn)
	t.tty.Write(csiSGR0)
	t.tty.Fini()

	t.finalized = true
}

func (t *termImpl) readLoop() {
	defer close(t.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := t.tty.Read(t.stopCh)
		if err != nil {
			t.queue.Push(event.AppClose{})
			return
		}
		select {
		case <-t.stopCh:
			return
		default:
		}
		if len(data) == 0 {
			t.queue.PushAll(t.dec.idle()...)
			continue
		}
		t.queue.PushAll(t.dec.feed(data)...)
	}
}

func (t *termImpl) Size() (int, int) {
	return t.tty.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.out.colorMode
}

// Flush drops frames whose size no longer matches the device; a Resize event is already queued
func (t *termImpl) Flush(cells []graphics.Character, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	if w, h := t.tty.Size(); w != width || h != height {
		return
	}
	t.out.flush(cells, width, height)
}

func (t *termImpl) SetCursor(x, y int, visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	if visible {
		t.out.moveCursor(x, y)
	}
	if visible != t.cursorVisible {
		if visible {
			t.tty.Write(csiCursorShow)
		} else {
			t.tty.Write(csiCursorHide)
		}
		t.cursorVisible = visible
	}
}

func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.out.clear()
}

func (t *termImpl) Bell() {
	t.WriteRaw(bell)
}

func (t *termImpl) WriteRaw(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	return t.tty.Write(p)
}

// EmergencyReset restores a sane tty from a panic handler when Fini cannot run
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// escape sequences alone leave termios in raw mode
	resetTerminalMode()
}
