//go:build js && wasm

package backend

import (
	"fmt"
	"math"
	"strings"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
)

const (
	canvasElementID = "cellui"
	canvasFontSize  = 16
	canvasFont      = "16px monospace"
)

// webCanvas draws cells on an HTML canvas; DOM callbacks queue input from the js event loop
type webCanvas struct {
	canvas js.Value
	ctx    js.Value
	queue  *event.Queue

	size         graphics.Size
	cellW, cellH float64
	buttons      input.MouseButton

	listeners []listener
	log       *zap.Logger
}

type listener struct {
	target js.Value
	name   string
	fn     js.Func
}

// NewWebCanvas binds to the <canvas id="cellui"> element, creating it when absent
func NewWebCanvas(opts Options) (Backend, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return nil, newError(InitializationFailure, nil, "no document object")
	}
	canvas := doc.Call("getElementById", canvasElementID)
	if canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("id", canvasElementID)
		canvas.Set("tabIndex", 0)
		doc.Get("body").Call("appendChild", canvas)
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, newError(InitializationFailure, nil, "canvas 2d context unavailable")
	}
	if opts.Title != "" {
		doc.Set("title", opts.Title)
	}

	b := &webCanvas{
		canvas: canvas,
		ctx:    ctx,
		queue:  event.NewQueue(),
		log:    opts.logger(),
	}
	ctx.Set("font", canvasFont)
	b.cellW = math.Ceil(ctx.Call("measureText", "M").Get("width").Float())
	b.cellH = math.Ceil(canvasFontSize * 1.25)

	w, h := opts.Size.Width, opts.Size.Height
	if w <= 0 || h <= 0 {
		w, h = b.windowCells()
	}
	b.resizeCanvas(w, h)
	b.register()
	canvas.Call("focus")

	b.log.Info("web canvas backend ready", zap.Int("width", w), zap.Int("height", h))
	return b, nil
}

func (b *webCanvas) windowCells() (int, int) {
	win := js.Global().Get("window")
	w := int(win.Get("innerWidth").Float() / b.cellW)
	h := int(win.Get("innerHeight").Float() / b.cellH)
	return max(w, 1), max(h, 1)
}

func (b *webCanvas) resizeCanvas(w, h int) {
	b.size = graphics.Size{Width: w, Height: h}
	b.canvas.Set("width", float64(w)*b.cellW)
	b.canvas.Set("height", float64(h)*b.cellH)
	b.ctx.Set("font", canvasFont)
	b.ctx.Set("textBaseline", "top")
}

func (b *webCanvas) listen(target js.Value, name string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", name, f)
	b.listeners = append(b.listeners, listener{target: target, name: name, fn: f})
}

func (b *webCanvas) register() {
	b.listen(b.canvas, "keydown", func(ev js.Value) {
		if k, ok := domKey(ev); ok {
			ev.Call("preventDefault")
			b.queue.Push(k)
		}
	})
	b.listen(b.canvas, "mousedown", func(ev js.Value) {
		x, y := b.cellAt(ev)
		b.buttons = domButton(ev)
		b.queue.Push(event.MouseButtonDown{X: x, Y: y, Button: b.buttons, Modifier: domModifier(ev)})
	})
	b.listen(b.canvas, "mouseup", func(ev js.Value) {
		x, y := b.cellAt(ev)
		b.buttons = input.MouseNone
		b.queue.Push(event.MouseButtonUp{X: x, Y: y, Button: domButton(ev), Modifier: domModifier(ev)})
	})
	b.listen(b.canvas, "dblclick", func(ev js.Value) {
		x, y := b.cellAt(ev)
		b.queue.Push(event.MouseDoubleClick{X: x, Y: y, Button: domButton(ev), Modifier: domModifier(ev)})
	})
	b.listen(b.canvas, "mousemove", func(ev js.Value) {
		x, y := b.cellAt(ev)
		b.queue.Push(event.MouseMove{X: x, Y: y, Button: b.buttons})
	})
	b.listen(b.canvas, "wheel", func(ev js.Value) {
		ev.Call("preventDefault")
		x, y := b.cellAt(ev)
		dx, dy := ev.Get("deltaX").Float(), ev.Get("deltaY").Float()
		dir := input.WheelDown
		switch {
		case math.Abs(dx) > math.Abs(dy) && dx < 0:
			dir = input.WheelLeft
		case math.Abs(dx) > math.Abs(dy):
			dir = input.WheelRight
		case dy < 0:
			dir = input.WheelUp
		}
		b.queue.Push(event.MouseWheel{X: x, Y: y, Direction: dir})
	})
	b.listen(b.canvas, "contextmenu", func(ev js.Value) {
		ev.Call("preventDefault")
	})
	b.listen(js.Global().Get("window"), "resize", func(js.Value) {
		w, h := b.windowCells()
		b.queue.Push(event.Resize{Width: w, Height: h})
	})
}

func (b *webCanvas) cellAt(ev js.Value) (int, int) {
	x := int(ev.Get("offsetX").Float() / b.cellW)
	y := int(ev.Get("offsetY").Float() / b.cellH)
	return x, y
}

func domModifier(ev js.Value) input.Modifier {
	var m input.Modifier
	if ev.Get("altKey").Bool() {
		m |= input.ModAlt
	}
	if ev.Get("ctrlKey").Bool() {
		m |= input.ModCtrl
	}
	if ev.Get("shiftKey").Bool() {
		m |= input.ModShift
	}
	return m
}

func domButton(ev js.Value) input.MouseButton {
	switch ev.Get("button").Int() {
	case 0:
		return input.MouseLeft
	case 1:
		return input.MouseCenter
	case 2:
		return input.MouseRight
	}
	return input.MouseNone
}

var domKeys = map[string]input.KeyCode{
	"Enter": input.KeyEnter, "Escape": input.KeyEscape, "Tab": input.KeyTab,
	"Backspace": input.KeyBackspace, "Delete": input.KeyDelete, "Insert": input.KeyInsert,
	"ArrowLeft": input.KeyLeft, "ArrowRight": input.KeyRight, "ArrowUp": input.KeyUp,
	"ArrowDown": input.KeyDown, "PageUp": input.KeyPageUp, "PageDown": input.KeyPageDown,
	"Home": input.KeyHome, "End": input.KeyEnd,
}

func domKey(ev js.Value) (event.KeyPressed, bool) {
	name := ev.Get("key").String()
	mod := domModifier(ev)
	if code, ok := domKeys[name]; ok {
		return event.KeyPressed{Key: input.NewKey(code, mod)}, true
	}
	var fn int
	if _, err := fmt.Sscanf(name, "F%d", &fn); err == nil && fn >= 1 && fn <= 12 {
		return event.KeyPressed{Key: input.NewKey(input.KeyF1+input.KeyCode(fn-1), mod)}, true
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return event.KeyPressed{}, false
	}
	key := input.KeyFromChar(runes[0])
	key.Modifier |= mod
	if mod&(input.ModCtrl|input.ModAlt) != 0 {
		return event.KeyPressed{Key: key}, !key.IsNone()
	}
	return event.KeyPressed{Key: key, Character: runes[0]}, true
}

func cssColor(c graphics.Color) string {
	r, g, b := c.ToRGB()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func (b *webCanvas) Size() graphics.Size { return b.size }

func (b *webCanvas) IsSingleThreaded() bool { return false }

func (b *webCanvas) QuerySystemEvent() (event.SystemEvent, bool) {
	return b.queue.Pop()
}

func (b *webCanvas) UpdateScreen(s *graphics.Surface) {
	w := s.Width()
	cur := s.Cursor()
	for i, ch := range s.Chars() {
		x, y := float64(i%w)*b.cellW, float64(i/w)*b.cellH
		fg, bg := ch.Fg, ch.Bg
		if cur.Visible && cur.X == i%w && cur.Y == i/w {
			fg, bg = bg, fg
		}
		b.ctx.Set("fillStyle", cssColor(bg))
		b.ctx.Call("fillRect", x, y, b.cellW, b.cellH)
		if ch.Code <= ' ' {
			continue
		}
		var font strings.Builder
		if ch.Flags&graphics.FlagItalic != 0 {
			font.WriteString("italic ")
		}
		if ch.Flags&graphics.FlagBold != 0 {
			font.WriteString("bold ")
		}
		font.WriteString(canvasFont)
		b.ctx.Set("font", font.String())
		b.ctx.Set("fillStyle", cssColor(fg))
		b.ctx.Call("fillText", string(ch.Code), x, y)
		if ch.Flags&graphics.FlagUnderline != 0 {
			b.ctx.Call("fillRect", x, y+b.cellH-2, b.cellW, 1)
		}
	}
}

func (b *webCanvas) OnResize(size graphics.Size) {
	b.resizeCanvas(size.Width, size.Height)
}

func (b *webCanvas) ClipboardText() (string, bool) { return "", false }

func (b *webCanvas) SetClipboardText(string) {}

func (b *webCanvas) HasClipboardText() bool { return false }

func (b *webCanvas) Close() error {
	for _, l := range b.listeners {
		l.target.Call("removeEventListener", l.name, l.fn)
		l.fn.Release()
	}
	b.listeners = nil
	return nil
}
