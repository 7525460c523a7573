package input

import "strings"

// Key is a key code combined with the modifiers held while it was pressed
type Key struct {
	Code     KeyCode
	Modifier Modifier
}

// NoKey is the empty key
var NoKey = Key{}

// NewKey combines a code and modifiers
func NewKey(code KeyCode, mod Modifier) Key {
	return Key{Code: code, Modifier: mod}
}

// String renders the key as "Ctrl+Shift+A"
func (k Key) String() string {
	return k.Modifier.Prefix() + k.Code.String()
}

// IsNone reports the empty key
func (k Key) IsNone() bool {
	return k.Code == KeyNone
}

// Compact packs the key into 16 bits: code in the low byte, modifiers in the high byte
func (k Key) Compact() uint16 {
	return uint16(k.Code) | uint16(k.Modifier)<<8
}

// KeyFromCompact reverses Compact, invalid values yield NoKey
func KeyFromCompact(v uint16) Key {
	code := KeyCode(v & 0xFF)
	mod := Modifier(v >> 8)
	if code >= keyCodeCount || mod&^modMask != 0 {
		return NoKey
	}
	return Key{Code: code, Modifier: mod}
}

// ParseKey parses "Ctrl+Alt+F4", "Enter" or "Shift+A"
// The last '+' separated part is the key, the rest are modifiers
func ParseKey(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoKey, false
	}
	parts := strings.Split(s, "+")
	code, ok := ParseKeyCode(parts[len(parts)-1])
	if !ok {
		return NoKey, false
	}
	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := parseModifierName(p)
		if !ok {
			return NoKey, false
		}
		mod |= m
	}
	return Key{Code: code, Modifier: mod}, true
}

// HotKey builds the Alt-style hot key for a caption character, NoKey when the character has none
func HotKey(ch rune, mod Modifier) Key {
	switch {
	case ch >= 'a' && ch <= 'z':
		return Key{Code: KeyA + KeyCode(ch-'a'), Modifier: mod}
	case ch >= 'A' && ch <= 'Z':
		return Key{Code: KeyA + KeyCode(ch-'A'), Modifier: mod}
	case ch >= '0' && ch <= '9':
		return Key{Code: Key0 + KeyCode(ch-'0'), Modifier: mod}
	}
	return NoKey
}

// shiftedDigits maps the US layout symbols above the digit row
var shiftedDigits = map[rune]KeyCode{
	')': Key0, '!': Key1, '@': Key2, '#': Key3, '$': Key4,
	'%': Key5, '^': Key6, '&': Key7, '*': Key8, '(': Key9,
}

// KeyFromChar maps a typed character to the key that produces it on a US layout
// Upper case letters report Shift; characters with no key yield NoKey
func KeyFromChar(ch rune) Key {
	switch {
	case ch >= 'a' && ch <= 'z':
		return Key{Code: KeyA + KeyCode(ch-'a')}
	case ch >= 'A' && ch <= 'Z':
		return Key{Code: KeyA + KeyCode(ch-'A'), Modifier: ModShift}
	case ch >= '0' && ch <= '9':
		return Key{Code: Key0 + KeyCode(ch-'0')}
	case ch == ' ':
		return Key{Code: KeySpace}
	case ch == '\n' || ch == '\r':
		return Key{Code: KeyEnter}
	case ch == '\t':
		return Key{Code: KeyTab}
	}
	if code, ok := shiftedDigits[ch]; ok {
		return Key{Code: code, Modifier: ModShift}
	}
	return NoKey
}

// CharFor returns the character an unmodified letter or digit key types, 0 otherwise
func CharFor(k Key) rune {
	if k.Modifier != ModNone {
		return 0
	}
	switch {
	case k.Code.IsLetter():
		return 'a' + rune(k.Code-KeyA)
	case k.Code.IsDigit():
		return '0' + rune(k.Code-Key0)
	}
	return 0
}
