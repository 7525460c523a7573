// Package backend connects the UI runtime to an output device.
// A backend presents surfaces, reports system events, and exposes the clipboard.
package backend

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/logging"
)

// Backend is the device abstraction driven by the runtime loop
// All methods are called from the UI goroutine only
type Backend interface {
	Size() graphics.Size

	// IsSingleThreaded reports that QuerySystemEvent blocks until an event is available
	// Multi-threaded backends queue input from other goroutines and return false when idle
	IsSingleThreaded() bool

	QuerySystemEvent() (event.SystemEvent, bool)

	// UpdateScreen presents a fully composed surface
	UpdateScreen(s *graphics.Surface)

	OnResize(size graphics.Size)

	ClipboardText() (string, bool)
	SetClipboardText(text string)
	HasClipboardText() bool

	Close() error
}

// RepaintRequester is implemented by backends that need a frame before their next event
type RepaintRequester interface {
	// TakeRepaintRequest reports and clears a pending repaint request
	TakeRepaintRequest() bool
}

// Beeper is implemented by backends that can ring the bell
type Beeper interface {
	Bell()
}

// Type selects a backend variant
type Type uint8

const (
	Default Type = iota
	Console
	Ansi
	Debug
	WebCanvas
)

var typeNames = [...]string{"default", "console", "ansi", "debug", "webcanvas"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType resolves a backend name, case-insensitive
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	if s == "web" || s == "wasm" {
		return WebCanvas, nil
	}
	return Default, newError(InvalidParameter, nil, "unknown backend type %q", s)
}

// Options configures New
type Options struct {
	Type Type

	// Size is the requested screen size; zero uses the device size (or 80x40 for Debug)
	Size graphics.Size

	Title string

	// Script is the debug command text, required for Debug
	Script string

	// ColorMode is "auto", "256" or "truecolor"; used by Ansi
	ColorMode string

	// Output receives debug frames and downgraded assertion messages, os.Stdout when nil
	Output io.Writer

	Logger *zap.Logger
}

func (o *Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Named("backend")
}

func (o *Options) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}

// defaultType is WebCanvas under wasm, the tcell console on windows and Ansi elsewhere
func defaultType() Type {
	switch runtime.GOOS {
	case "js":
		return WebCanvas
	case "windows":
		return Console
	default:
		return Ansi
	}
}

// New creates the backend selected by opts.Type
func New(opts Options) (Backend, error) {
	t := opts.Type
	if t == Default {
		t = defaultType()
	}
	log := opts.logger()
	log.Debug("creating backend", zap.Stringer("type", t), zap.Int("width", opts.Size.Width), zap.Int("height", opts.Size.Height))

	switch t {
	case Ansi:
		return NewAnsi(opts)
	case Console:
		return NewConsole(opts)
	case Debug:
		return NewDebug(opts)
	case WebCanvas:
		return NewWebCanvas(opts)
	}
	return nil, newError(UnsupportedBackend, nil, "backend type %s", t)
}
