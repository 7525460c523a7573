package backend

import (
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/terminal"
)

// ansiBackend renders through escape sequences on the controlling tty
// Input is decoded on the terminal's reader goroutine and queued
type ansiBackend struct {
	term  terminal.Terminal
	queue *event.Queue
	size  graphics.Size
	clip  *systemClipboard
	log   *zap.Logger
}

// NewAnsi enters raw mode on the controlling tty
func NewAnsi(opts Options) (Backend, error) {
	log := opts.logger()
	mode, err := terminal.ParseColorMode(opts.ColorMode)
	if err != nil {
		return nil, newError(InvalidParameter, err, "color mode")
	}

	queue := event.NewQueue()
	term := terminal.New(queue, mode)
	if err := term.Init(); err != nil {
		return nil, newError(InitializationFailure, err, "ansi terminal")
	}

	w, h := term.Size()
	b := &ansiBackend{
		term:  term,
		queue: queue,
		size:  graphics.Size{Width: w, Height: h},
		log:   log,
	}
	b.clip = newSystemClipboard(log, b.writeOSC52)
	if opts.Title != "" {
		_ = term.WriteRaw([]byte(ansi.SetWindowTitle(opts.Title)))
	}
	log.Info("ansi backend ready", zap.Int("width", w), zap.Int("height", h), zap.Stringer("colors", mode))
	return b, nil
}

func (b *ansiBackend) writeOSC52(text string) {
	if err := b.term.WriteRaw([]byte(ansi.SetSystemClipboard(text))); err != nil {
		b.log.Debug("osc52 clipboard write failed", zap.Error(err))
	}
}

func (b *ansiBackend) Size() graphics.Size { return b.size }

func (b *ansiBackend) IsSingleThreaded() bool { return false }

func (b *ansiBackend) QuerySystemEvent() (event.SystemEvent, bool) {
	return b.queue.Pop()
}

func (b *ansiBackend) UpdateScreen(s *graphics.Surface) {
	b.term.Flush(s.Chars(), s.Width(), s.Height())
	c := s.Cursor()
	b.term.SetCursor(c.X, c.Y, c.Visible)
}

func (b *ansiBackend) OnResize(size graphics.Size) {
	b.size = size
	b.term.Sync()
}

func (b *ansiBackend) ClipboardText() (string, bool) { return b.clip.Text() }

func (b *ansiBackend) SetClipboardText(text string) { b.clip.SetText(text) }

func (b *ansiBackend) HasClipboardText() bool { return b.clip.HasText() }

func (b *ansiBackend) Bell() { b.term.Bell() }

func (b *ansiBackend) Close() error {
	b.term.Fini()
	return nil
}
