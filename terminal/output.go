package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellui/graphics"
)

// unknownCell never matches a real cell, forcing it to be written
var unknownCell = graphics.Character{Code: -1}

// renderer keeps the last flushed frame and writes only the cells that changed
type renderer struct {
	front     []graphics.Character
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// last emitted style, used to skip redundant SGR sequences
	last      graphics.Character
	lastValid bool
}

func newRenderer(w io.Writer, colorMode ColorMode) *renderer {
	return &renderer{
		writer:    bufio.NewWriterSize(w, 64*1024),
		colorMode: colorMode,
	}
}

func (o *renderer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]graphics.Character, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.invalidate()
}

// invalidate forgets the front buffer so the next flush rewrites every cell
func (o *renderer) invalidate() {
	for i := range o.front {
		o.front[i] = unknownCell
	}
	o.lastValid = false
	o.cursorValid = false
}

// flush diffs cells against the front buffer and writes the changes
func (o *renderer) flush(cells []graphics.Character, width, height int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return
	}

	w := o.writer
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			if c == o.front[row+x] {
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX, o.cursorY, o.cursorValid = x, y, true
			}

			o.writeStyle(w, c)
			r := c.Code
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				w.WriteByte(byte(r))
				o.cursorX++
			} else {
				w.WriteRune(r)
				o.cursorX += max(runewidth.RuneWidth(r), 1)
			}
			o.front[row+x] = c
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false
	w.Flush()
}

// writeStyle emits one combined SGR sequence when colors or flags differ from the last cell
func (o *renderer) writeStyle(w *bufio.Writer, c graphics.Character) {
	if o.lastValid && c.Fg == o.last.Fg && c.Bg == o.last.Bg && c.Flags == o.last.Flags {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	if c.Flags.Contains(graphics.FlagBold) {
		w.WriteString(";1")
	}
	if c.Flags.Contains(graphics.FlagItalic) {
		w.WriteString(";3")
	}
	if c.Flags.Contains(graphics.FlagUnderline) {
		w.WriteString(";4")
	}
	w.WriteByte(';')
	o.writeColor(w, c.Fg, false)
	w.WriteByte(';')
	o.writeColor(w, c.Bg, true)
	w.WriteByte('m')

	o.last = c
	o.lastValid = true
}

// writeColor writes SGR color parameters without the CSI prefix or the final 'm'
func (o *renderer) writeColor(w *bufio.Writer, c graphics.Color, background bool) {
	base := 30
	if background {
		base = 40
	}

	if r, g, b, ok := c.Components(); ok {
		writeInt(w, base+8)
		if o.colorMode == ColorModeTrueColor {
			w.WriteString(";2;")
			writeInt(w, int(r))
			w.WriteByte(';')
			writeInt(w, int(g))
			w.WriteByte(';')
			writeInt(w, int(b))
		} else {
			w.WriteString(";5;")
			writeInt(w, int(RGBTo256(r, g, b)))
		}
		return
	}

	idx := c.Index()
	if idx >= graphics.Transparent.Index() {
		writeInt(w, base+9)
		return
	}
	n := int(paletteANSI[idx])
	if n < 8 {
		writeInt(w, base+n)
	} else {
		writeInt(w, base+60+n-8)
	}
}

// clear blanks the physical screen and forgets the front buffer
func (o *renderer) clear() {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Flush()
	o.invalidate()
}

func (o *renderer) moveCursor(x, y int) {
	writeCursorPos(o.writer, x, y)
	o.cursorValid = false
	o.writer.Flush()
}
