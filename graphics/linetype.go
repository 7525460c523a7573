package graphics

// LineType selects the glyph set used for lines and rectangles
type LineType uint8

const (
	LineSingle LineType = iota
	LineDouble
	LineSingleThick
	LineBorder
	LineAscii
	LineAsciiRound
	LineSingleRound
)

// lineChars lists, in order: top-left, top, top-right, right, bottom-right, bottom,
// bottom-left, left, horizontal, vertical
type lineChars struct {
	topLeft, top, topRight, right, bottomRight, bottom, bottomLeft, left, horizontal, vertical rune
}

var lineTypeChars = [...]lineChars{
	LineSingle:      {'┌', '─', '┐', '│', '┘', '─', '└', '│', '─', '│'},
	LineDouble:      {'╔', '═', '╗', '║', '╝', '═', '╚', '║', '═', '║'},
	LineSingleThick: {'┏', '━', '┓', '┃', '┛', '━', '┗', '┃', '━', '┃'},
	LineBorder:      {'▄', '▄', '▄', '█', '▀', '▀', '▀', '█', '█', '█'},
	LineAscii:       {'+', '-', '+', '|', '+', '-', '+', '|', '-', '|'},
	LineAsciiRound:  {'/', '-', '\\', '|', '/', '-', '\\', '|', '-', '|'},
	LineSingleRound: {'╭', '─', '╮', '│', '╯', '─', '╰', '│', '─', '│'},
}

func (l LineType) chars() *lineChars {
	if int(l) >= len(lineTypeChars) {
		return &lineTypeChars[LineSingle]
	}
	return &lineTypeChars[l]
}

// Glyphs used by scroll bars, check boxes and popups
const (
	ArrowUp        = '▲'
	ArrowDown      = '▼'
	ArrowLeft      = '◄'
	ArrowRight     = '►'
	Block50        = '▒'
	BlockCentered  = '■'
	CheckMark      = '√'
	ThreePoints    = '…'
	CircleFilled   = '●'
	BoxMiddleLeft  = '├'
	BoxMiddleRight = '┤'
)
