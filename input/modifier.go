package input

import "strings"

// Modifier is a set of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModAlt   Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModShift Modifier = 1 << 2

	modMask = ModAlt | ModCtrl | ModShift
)

// Contains reports whether every bit of m2 is held
func (m Modifier) Contains(m2 Modifier) bool {
	return m&m2 == m2
}

// Prefix returns the "Ctrl+Alt+Shift+" form used in front of key names
func (m Modifier) Prefix() string {
	var sb strings.Builder
	if m&ModCtrl != 0 {
		sb.WriteString("Ctrl+")
	}
	if m&ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if m&ModShift != 0 {
		sb.WriteString("Shift+")
	}
	return sb.String()
}

func (m Modifier) String() string {
	if m&modMask == 0 {
		return "None"
	}
	return strings.TrimSuffix(m.Prefix(), "+")
}

// parseModifierName resolves one modifier word
func parseModifierName(s string) (Modifier, bool) {
	switch strings.ToLower(s) {
	case "alt":
		return ModAlt, true
	case "ctrl", "control":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	}
	return ModNone, false
}

// ParseModifier parses "Ctrl+Alt", "Shift" or "None"
func ParseModifier(s string) (Modifier, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return ModNone, true
	}
	var m Modifier
	for _, part := range strings.Split(s, "+") {
		mod, ok := parseModifierName(part)
		if !ok {
			return ModNone, false
		}
		m |= mod
	}
	return m, true
}
