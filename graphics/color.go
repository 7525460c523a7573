package graphics

import (
	"fmt"
	"strings"
)

// Color is either one of the 16 named palette entries, Transparent, or an explicit RGB value
// The low byte holds the palette index; RGB colors carry the components in the upper bytes
type Color uint32

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	Teal
	DarkRed
	Magenta
	Olive
	Silver
	Gray
	Blue
	Green
	Aqua
	Red
	Pink
	Yellow
	White
	Transparent
)

// rgbIndex is the palette index reported by explicit RGB colors
const rgbIndex = 17

var colorNames = [...]string{
	"Black", "DarkBlue", "DarkGreen", "Teal", "DarkRed", "Magenta", "Olive", "Silver",
	"Gray", "Blue", "Green", "Aqua", "Red", "Pink", "Yellow", "White", "Transparent",
}

// paletteRGB maps named colors to their canonical 24-bit value
var paletteRGB = [16][3]uint8{
	{0, 0, 0}, {0, 0, 128}, {0, 128, 0}, {0, 128, 128},
	{128, 0, 0}, {128, 0, 128}, {128, 128, 0}, {192, 192, 192},
	{128, 128, 128}, {0, 0, 255}, {0, 255, 0}, {0, 255, 255},
	{255, 0, 0}, {255, 0, 255}, {255, 255, 0}, {255, 255, 255},
}

// RGB builds an explicit 24-bit color
func RGB(r, g, b uint8) Color {
	return Color(rgbIndex) | Color(r)<<8 | Color(g)<<16 | Color(b)<<24
}

// Index returns the palette index used by the surface hash
func (c Color) Index() uint8 {
	return uint8(c)
}

// IsRGB reports whether the color carries explicit components
func (c Color) IsRGB() bool {
	return uint8(c) == rgbIndex
}

// Components returns the explicit RGB components, ok is false for palette colors
func (c Color) Components() (r, g, b uint8, ok bool) {
	if !c.IsRGB() {
		return 0, 0, 0, false
	}
	return uint8(c >> 8), uint8(c >> 16), uint8(c >> 24), true
}

// ToRGB resolves any non-transparent color to 24-bit components
// Transparent resolves to black
func (c Color) ToRGB() (r, g, b uint8) {
	if r, g, b, ok := c.Components(); ok {
		return r, g, b
	}
	if c < Transparent {
		p := paletteRGB[c]
		return p[0], p[1], p[2]
	}
	return 0, 0, 0
}

func (c Color) String() string {
	if r, g, b, ok := c.Components(); ok {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint32(c))
}

// ParseColor accepts a palette name (case-insensitive) or a #RRGGBB value
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return Black, fmt.Errorf("invalid rgb color %q: %w", s, err)
		}
		return RGB(r, g, b), nil
	}
	for i, name := range colorNames {
		if strings.EqualFold(name, s) {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", s)
}
