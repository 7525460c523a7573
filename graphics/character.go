package graphics

// CharFlags are per-cell rendering attributes
type CharFlags uint16

const (
	FlagNone      CharFlags = 0
	FlagBold      CharFlags = 0x0001
	FlagItalic    CharFlags = 0x0002
	FlagUnderline CharFlags = 0x0004
)

// Contains reports whether all bits of f are set
func (c CharFlags) Contains(f CharFlags) bool {
	return c&f == f
}

// CharAttribute groups colors and flags applied to written text
type CharAttribute struct {
	Fg    Color
	Bg    Color
	Flags CharFlags
}

// DefaultAttribute is white on black without flags
var DefaultAttribute = CharAttribute{Fg: White, Bg: Black}

// NewAttribute creates an attribute with explicit flags
func NewAttribute(fg, bg Color, flags CharFlags) CharAttribute {
	return CharAttribute{Fg: fg, Bg: bg, Flags: flags}
}

// AttrWithColor creates an attribute without flags
func AttrWithColor(fg, bg Color) CharAttribute {
	return CharAttribute{Fg: fg, Bg: bg}
}

// AttrWithFg keeps the background of the destination cell
func AttrWithFg(fg Color) CharAttribute {
	return CharAttribute{Fg: fg, Bg: Transparent}
}

// AttrWithBg keeps the foreground of the destination cell
func AttrWithBg(bg Color) CharAttribute {
	return CharAttribute{Fg: Transparent, Bg: bg}
}

// Character is one surface cell
type Character struct {
	Code  rune
	Fg    Color
	Bg    Color
	Flags CharFlags
}

// DefaultCharacter is a blank white-on-black cell
var DefaultCharacter = Character{Code: ' ', Fg: White, Bg: Black}

// NewCharacter creates a fully specified cell
func NewCharacter(code rune, fg, bg Color, flags CharFlags) Character {
	return Character{Code: code, Fg: fg, Bg: bg, Flags: flags}
}

// CharWithCode changes only the code point of the destination
func CharWithCode(code rune) Character {
	return Character{Code: code, Fg: Transparent, Bg: Transparent}
}

// CharWithColor changes only the colors of the destination
func CharWithColor(fg, bg Color) Character {
	return Character{Fg: fg, Bg: bg}
}

// CharWithAttr combines a code point with an attribute
func CharWithAttr(code rune, attr CharAttribute) Character {
	return Character{Code: code, Fg: attr.Fg, Bg: attr.Bg, Flags: attr.Flags}
}

// Set merges ch into c: a zero code and Transparent colors keep the current value,
// flags are always replaced
func (c *Character) Set(ch Character) {
	if ch.Code != 0 {
		c.Code = ch.Code
	}
	if ch.Fg != Transparent {
		c.Fg = ch.Fg
	}
	if ch.Bg != Transparent {
		c.Bg = ch.Bg
	}
	c.Flags = ch.Flags
}
