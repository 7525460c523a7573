package input

import "strings"

// KeyCode identifies a physical key independent of modifiers
// The numeric values are part of the compact key encoding and must not be reordered
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEnter
	KeyEscape
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyLeft
	KeyUp
	KeyDown
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	"", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Enter", "Escape", "Insert", "Delete", "Backspace", "Tab",
	"Left", "Up", "Down", "Right", "PageUp", "PageDown", "Home", "End", "Space",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// keyCodeByName is the case-insensitive reverse lookup, digits also accept the N0..N9 form
var keyCodeByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, 2*int(keyCodeCount))
	for i := KeyF1; i < keyCodeCount; i++ {
		m[strings.ToLower(keyCodeNames[i])] = i
	}
	for i := Key0; i <= Key9; i++ {
		m["n"+keyCodeNames[i]] = i
	}
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	return m
}()

// String returns the display name, empty for KeyNone
func (k KeyCode) String() string {
	if k < keyCodeCount {
		return keyCodeNames[k]
	}
	return ""
}

// IsLetter reports A..Z
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports 0..9
func (k KeyCode) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// ParseKeyCode resolves a key name such as "F4", "PageUp" or "N5"
func ParseKeyCode(name string) (KeyCode, bool) {
	k, ok := keyCodeByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
