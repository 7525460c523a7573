package input

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"Enter", NewKey(KeyEnter, ModNone), true},
		{"space", NewKey(KeySpace, ModNone), true},
		{"Ctrl+Alt+F4", NewKey(KeyF4, ModCtrl|ModAlt), true},
		{"Shift+A", NewKey(KeyA, ModShift), true},
		{"N5", NewKey(Key5, ModNone), true},
		{"7", NewKey(Key7, ModNone), true},
		{"Hyper+A", NoKey, false},
		{"blablabla", NoKey, false},
		{"", NoKey, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKey(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseKey(%q): expected %v/%v, got %v/%v", tt.in, tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	k := NewKey(KeyA, ModCtrl|ModShift)
	if k.String() != "Ctrl+Shift+A" {
		t.Errorf("Expected Ctrl+Shift+A, got %s", k.String())
	}
	if got := NewKey(KeyF10, ModNone).String(); got != "F10" {
		t.Errorf("Expected F10, got %s", got)
	}
}

func TestModifierValues(t *testing.T) {
	// compact encoding relies on these exact bits
	if ModAlt != 1 || ModCtrl != 2 || ModShift != 4 {
		t.Errorf("Unexpected modifier bits: alt=%d ctrl=%d shift=%d", ModAlt, ModCtrl, ModShift)
	}
	m, ok := ParseModifier("Ctrl+Alt")
	if !ok || m != ModCtrl|ModAlt {
		t.Errorf("Expected Ctrl+Alt, got %v (%v)", m, ok)
	}
	if _, ok := ParseModifier("blablabla"); ok {
		t.Error("Expected invalid modifier to fail")
	}
}

func TestCompactRoundTrip(t *testing.T) {
	k := NewKey(KeyPageDown, ModAlt|ModShift)
	if got := KeyFromCompact(k.Compact()); got != k {
		t.Errorf("Expected %v, got %v", k, got)
	}
	if got := KeyFromCompact(0x0840); got != NoKey {
		t.Errorf("Expected NoKey for invalid compact value, got %v", got)
	}
}

func TestKeyFromChar(t *testing.T) {
	tests := []struct {
		ch   rune
		want Key
	}{
		{'a', NewKey(KeyA, ModNone)},
		{'Z', NewKey(KeyZ, ModShift)},
		{'3', NewKey(Key3, ModNone)},
		{'(', NewKey(Key9, ModShift)},
		{' ', NewKey(KeySpace, ModNone)},
		{'\n', NewKey(KeyEnter, ModNone)},
		{'~', NoKey},
	}
	for _, tt := range tests {
		if got := KeyFromChar(tt.ch); got != tt.want {
			t.Errorf("KeyFromChar(%q): expected %v, got %v", tt.ch, tt.want, got)
		}
	}
}

func TestCharFor(t *testing.T) {
	if got := CharFor(NewKey(KeyQ, ModNone)); got != 'q' {
		t.Errorf("Expected 'q', got %q", got)
	}
	if got := CharFor(NewKey(Key4, ModNone)); got != '4' {
		t.Errorf("Expected '4', got %q", got)
	}
	if got := CharFor(NewKey(KeyQ, ModCtrl)); got != 0 {
		t.Errorf("Expected no character for Ctrl+Q, got %q", got)
	}
}
