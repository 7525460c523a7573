package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/cellui/graphics"
)

// ColorMode selects how explicit RGB colors are emitted
// Palette colors always use the 16 standard SGR codes
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode accepts "auto", "256" or "truecolor"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines color capability from the environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// paletteANSI maps graphics palette indices to the ANSI color number (0-15)
// graphics orders colors DOS style: blue before red
var paletteANSI = [16]uint8{
	graphics.Black:     0,
	graphics.DarkBlue:  4,
	graphics.DarkGreen: 2,
	graphics.Teal:      6,
	graphics.DarkRed:   1,
	graphics.Magenta:   5,
	graphics.Olive:     3,
	graphics.Silver:    7,
	graphics.Gray:      8,
	graphics.Blue:      12,
	graphics.Green:     10,
	graphics.Aqua:      14,
	graphics.Red:       9,
	graphics.Pink:      13,
	graphics.Yellow:    11,
	graphics.White:     15,
}

// PaletteIndex returns the ANSI color number (0-15) for a named palette color
// ok is false for Transparent and explicit RGB colors
func PaletteIndex(c graphics.Color) (uint8, bool) {
	if c.IsRGB() || c.Index() >= graphics.Transparent.Index() {
		return 0, false
	}
	return paletteANSI[c.Index()], true
}

// Color cube levels for xterm-256 indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := 256
	for i, c := range cubeValues {
		if d := abs(int(v) - int(c)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// RGBTo256 returns the nearest xterm-256 index, preferring the grayscale ramp for near-gray input
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cubeDist := abs(int(r)-int(cubeValues[cr])) + abs(int(g)-int(cubeValues[cg])) + abs(int(b)-int(cubeValues[cb]))
	cube := 16 + 36*cr + 6*cg + cb

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 || gray < 4 || gray > 243 {
		return cube
	}
	step := min((gray-8)/10, 23)
	if step < 0 {
		step = 0
	}
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return cube
}
