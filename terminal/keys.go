package terminal

import "github.com/lixenwraith/cellui/input"

// csiTildeKeys maps the first parameter of "ESC [ n ~" sequences
var csiTildeKeys = map[int]input.KeyCode{
	1:  input.KeyHome,
	2:  input.KeyInsert,
	3:  input.KeyDelete,
	4:  input.KeyEnd,
	5:  input.KeyPageUp,
	6:  input.KeyPageDown,
	7:  input.KeyHome,
	8:  input.KeyEnd,
	11: input.KeyF1,
	12: input.KeyF2,
	13: input.KeyF3,
	14: input.KeyF4,
	15: input.KeyF5,
	17: input.KeyF6,
	18: input.KeyF7,
	19: input.KeyF8,
	20: input.KeyF9,
	21: input.KeyF10,
	23: input.KeyF11,
	24: input.KeyF12,
}

// csiLetterKeys maps final bytes of "ESC [ X", "ESC [ 1 ; m X" and "ESC O X"
var csiLetterKeys = map[byte]input.KeyCode{
	'A': input.KeyUp,
	'B': input.KeyDown,
	'C': input.KeyRight,
	'D': input.KeyLeft,
	'H': input.KeyHome,
	'F': input.KeyEnd,
	'P': input.KeyF1,
	'Q': input.KeyF2,
	'R': input.KeyF3,
	'S': input.KeyF4,
}

// xtermModifier decodes the modifier parameter: value-1 is a bit set of shift=1, alt=2, ctrl=4
func xtermModifier(p int) input.Modifier {
	if p < 2 {
		return input.ModNone
	}
	bits := p - 1
	var m input.Modifier
	if bits&1 != 0 {
		m |= input.ModShift
	}
	if bits&2 != 0 {
		m |= input.ModAlt
	}
	if bits&4 != 0 {
		m |= input.ModCtrl
	}
	return m
}

// controlKey maps a C0 byte to a key
func controlKey(b byte) (input.Key, bool) {
	switch b {
	case 0x00:
		return input.NewKey(input.KeySpace, input.ModCtrl), true
	case 0x08:
		return input.NewKey(input.KeyBackspace, input.ModNone), true
	case 0x09:
		return input.NewKey(input.KeyTab, input.ModNone), true
	case 0x0a, 0x0d:
		return input.NewKey(input.KeyEnter, input.ModNone), true
	case 0x1b:
		return input.NewKey(input.KeyEscape, input.ModNone), true
	}
	if b >= 0x01 && b <= 0x1a {
		return input.NewKey(input.KeyA+input.KeyCode(b-0x01), input.ModCtrl), true
	}
	return input.NoKey, false
}
