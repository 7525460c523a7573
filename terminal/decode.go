package terminal

import (
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/input"
)

// DoubleClickInterval is the longest gap between two presses reported as a double click
const DoubleClickInterval = 500 * time.Millisecond

// maxSequence bounds how far an unterminated escape sequence is buffered
const maxSequence = 32

// decoder turns the raw tty byte stream into system events
// Incomplete sequences stay buffered until the next feed
type decoder struct {
	buf []byte

	held       input.MouseButton
	lastPress  time.Time
	lastButton input.MouseButton
	lastX      int
	lastY      int

	now func() time.Time
}

func newDecoder() *decoder {
	return &decoder{buf: make([]byte, 0, 256), now: time.Now}
}

// feed appends data and returns every complete event it contains
func (d *decoder) feed(data []byte) []event.SystemEvent {
	d.buf = append(d.buf, data...)
	var evs []event.SystemEvent
	consumed := d.parse(d.buf, &evs)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
	} else if consumed > 0 {
		n := copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:n]
	}
	return evs
}

// idle is called when a read times out; a lone buffered ESC becomes the Escape key
func (d *decoder) idle() []event.SystemEvent {
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.buf = d.buf[:0]
		return []event.SystemEvent{event.KeyPressed{Key: input.NewKey(input.KeyEscape, input.ModNone)}}
	}
	return nil
}

func (d *decoder) parse(data []byte, evs *[]event.SystemEvent) int {
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b >= 0x20 && b < 0x7f:
			*evs = append(*evs, charEvent(rune(b)))
			i++
		case b == 0x1b:
			if i+1 >= len(data) {
				return i
			}
			n, ev := d.parseEscape(data[i:])
			if n == 0 {
				return i
			}
			if ev != nil {
				*evs = append(*evs, ev)
			}
			i += n
		case b < 0x20:
			if k, ok := controlKey(b); ok {
				*evs = append(*evs, event.KeyPressed{Key: k})
			}
			i++
		case b == 0x7f:
			*evs = append(*evs, event.KeyPressed{Key: input.NewKey(input.KeyBackspace, input.ModNone)})
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			*evs = append(*evs, charEvent(r))
			i += size
		}
	}
	return i
}

func charEvent(r rune) event.SystemEvent {
	return event.KeyPressed{Key: input.KeyFromChar(r), Character: r}
}

// parseEscape decodes one sequence starting with ESC; 0 means more bytes are needed
// A nil event with a positive length swallows an unknown sequence
func (d *decoder) parseEscape(data []byte) (int, event.SystemEvent) {
	switch c := data[1]; {
	case c == 0x1b:
		return 2, event.KeyPressed{Key: input.NewKey(input.KeyEscape, input.ModAlt)}
	case c == '[':
		return d.parseCSI(data)
	case c == 'O':
		if len(data) < 3 {
			return 0, nil
		}
		if code, ok := csiLetterKeys[data[2]]; ok {
			return 3, event.KeyPressed{Key: input.NewKey(code, input.ModNone)}
		}
		return 3, nil
	case c < 0x20:
		k, ok := controlKey(c)
		if !ok {
			return 2, nil
		}
		k.Modifier |= input.ModAlt
		return 2, event.KeyPressed{Key: k}
	case c < 0x7f:
		k := input.KeyFromChar(rune(c))
		if k.IsNone() {
			return 2, nil
		}
		k.Modifier |= input.ModAlt
		return 2, event.KeyPressed{Key: k}
	}
	return 1, event.KeyPressed{Key: input.NewKey(input.KeyEscape, input.ModNone)}
}

// csiParams splits "1;5" style parameters; empty fields read as 0
func csiParams(data []byte) ([4]int, int, bool) {
	var p [4]int
	n := 0
	if len(data) == 0 {
		return p, 0, true
	}
	n = 1
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9':
			p[n-1] = p[n-1]*10 + int(b-'0')
			if p[n-1] > 99999 {
				return p, 0, false
			}
		case b == ';':
			if n == len(p) {
				return p, 0, false
			}
			n++
		default:
			return p, 0, false
		}
	}
	return p, n, true
}

func (d *decoder) parseCSI(data []byte) (int, event.SystemEvent) {
	if len(data) < 3 {
		return 0, nil
	}
	if data[2] == '<' {
		return d.parseSGRMouse(data)
	}

	end := 2
	for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
		if end >= maxSequence {
			return end, nil
		}
		end++
	}
	if end >= len(data) {
		return 0, nil
	}

	final := data[end]
	params, n, ok := csiParams(data[2:end])
	if !ok {
		return end + 1, nil
	}

	switch {
	case final == '~':
		code, found := csiTildeKeys[params[0]]
		if !found {
			return end + 1, nil
		}
		mod := input.ModNone
		if n >= 2 {
			mod = xtermModifier(params[1])
		}
		return end + 1, event.KeyPressed{Key: input.NewKey(code, mod)}
	case final == 'Z':
		return end + 1, event.KeyPressed{Key: input.NewKey(input.KeyTab, input.ModShift)}
	default:
		code, found := csiLetterKeys[final]
		if !found {
			return end + 1, nil
		}
		mod := input.ModNone
		if n >= 2 {
			mod = xtermModifier(params[1])
		}
		return end + 1, event.KeyPressed{Key: input.NewKey(code, mod)}
	}
}

// parseSGRMouse decodes "ESC [ < btn ; x ; y (M|m)"
func (d *decoder) parseSGRMouse(data []byte) (int, event.SystemEvent) {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		if end >= maxSequence {
			return end, nil
		}
		end++
	}
	if end >= len(data) {
		return 0, nil
	}

	params, n, ok := csiParams(data[3:end])
	if !ok || n != 3 {
		return end + 1, nil
	}
	btn, x, y := params[0], params[1]-1, params[2]-1
	pressed := data[end] == 'M'

	var mod input.Modifier
	if btn&4 != 0 {
		mod |= input.ModShift
	}
	if btn&8 != 0 {
		mod |= input.ModAlt
	}
	if btn&16 != 0 {
		mod |= input.ModCtrl
	}

	if btn&64 != 0 {
		dir := [4]input.WheelDirection{input.WheelUp, input.WheelDown, input.WheelLeft, input.WheelRight}[btn&3]
		return end + 1, event.MouseWheel{X: x, Y: y, Direction: dir}
	}

	button := [4]input.MouseButton{input.MouseLeft, input.MouseCenter, input.MouseRight, input.MouseNone}[btn&3]

	if btn&32 != 0 {
		if button == input.MouseNone {
			button = d.held
		}
		return end + 1, event.MouseMove{X: x, Y: y, Button: button}
	}

	if !pressed {
		if button == input.MouseNone {
			button = d.held
		}
		d.held = input.MouseNone
		return end + 1, event.MouseButtonUp{X: x, Y: y, Button: button, Modifier: mod}
	}

	d.held = button
	now := d.now()
	if button == d.lastButton && x == d.lastX && y == d.lastY && !d.lastPress.IsZero() && now.Sub(d.lastPress) <= DoubleClickInterval {
		d.lastPress = time.Time{}
		return end + 1, event.MouseDoubleClick{X: x, Y: y, Button: button, Modifier: mod}
	}
	d.lastPress, d.lastButton, d.lastX, d.lastY = now, button, x, y
	return end + 1, event.MouseButtonDown{X: x, Y: y, Button: button, Modifier: mod}
}
