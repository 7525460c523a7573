package backend

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/script"
)

func newTestDebug(t *testing.T, text string) (*debugBackend, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d, err := newDebug(Options{Type: Debug, Script: text, Output: &out})
	if err != nil {
		t.Fatalf("Expected script to load, got %v", err)
	}
	return d, &out
}

// drain collects events until the script closes the app
func drain(d *debugBackend) []event.SystemEvent {
	var evs []event.SystemEvent
	for i := 0; i < 1000; i++ {
		ev, ok := d.QuerySystemEvent()
		if !ok {
			continue
		}
		if _, closed := ev.(event.AppClose); closed {
			return evs
		}
		evs = append(evs, ev)
	}
	return evs
}

// expectAssertion runs fn and returns the AssertionError message it panicked with
func expectAssertion(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		ae, ok := r.(*AssertionError)
		if !ok {
			t.Fatalf("Expected *AssertionError panic, got %v", r)
		}
		msg = ae.Msg
	}()
	fn()
	return ""
}

func TestDebugSize(t *testing.T) {
	tests := []struct {
		name string
		size graphics.Size
		want graphics.Size
	}{
		{"default", graphics.Size{}, graphics.Size{Width: 80, Height: 40}},
		{"explicit", graphics.Size{Width: 60, Height: 20}, graphics.Size{Width: 60, Height: 20}},
		{"clamped low", graphics.Size{Width: 5, Height: 3}, graphics.Size{Width: 10, Height: 10}},
		{"clamped high", graphics.Size{Width: 5000, Height: 20}, graphics.Size{Width: 1000, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newDebug(Options{Size: tt.size})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if d.Size() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, d.Size())
			}
		})
	}
}

func TestDebugScriptError(t *testing.T) {
	_, err := New(Options{Type: Debug, Script: "Paint('ok')\nMouse.Fly(1,2)\n"})
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected InvalidParameter, got %v", err)
	}
	var le *script.LineError
	if !errors.As(err, &le) || le.Line != 2 {
		t.Errorf("Expected line 2 error, got %v", err)
	}
}

func TestDebugEventsAndTracking(t *testing.T) {
	d, _ := newTestDebug(t, `
		; comment
		Mouse.Click(3,4,left)
		Key.Modifier(Ctrl)
		Mouse.Hold(3,4,right)
		Resize(30,12)
	`)
	got := drain(d)
	want := []event.SystemEvent{
		event.MouseMove{X: 3, Y: 4, Button: input.MouseNone},
		event.MouseButtonDown{X: 3, Y: 4, Button: input.MouseLeft},
		event.MouseButtonUp{X: 3, Y: 4, Button: input.MouseLeft},
		event.KeyModifierChanged{Old: input.ModNone, New: input.ModCtrl},
		event.MouseButtonDown{X: 3, Y: 4, Button: input.MouseRight, Modifier: input.ModCtrl},
		event.Resize{Width: 30, Height: 12},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if d.mouse != (graphics.Point{X: 3, Y: 4}) {
		t.Errorf("Expected mouse at (3,4), got %v", d.mouse)
	}
	if d.Size() != (graphics.Size{Width: 30, Height: 12}) {
		t.Errorf("Expected size 30x12, got %v", d.Size())
	}
	if ev, ok := d.QuerySystemEvent(); !ok || ev != (event.AppClose{}) {
		t.Errorf("Expected AppClose after the script ends, got %v", ev)
	}
}

func TestDebugCheckHash(t *testing.T) {
	s := graphics.NewSurface(10, 10)
	hash := s.Hash()

	d, _ := newTestDebug(t, fmt.Sprintf("CheckHash(0x%X)\nCheckHash(0x1234)", hash))
	if _, ok := d.QuerySystemEvent(); ok {
		t.Fatal("Expected no event for an assertion command")
	}
	if !d.TakeRepaintRequest() {
		t.Fatal("Expected a repaint request")
	}
	if d.TakeRepaintRequest() {
		t.Error("Expected the repaint request to be consumed")
	}
	d.UpdateScreen(s)

	d.QuerySystemEvent()
	msg := expectAssertion(t, func() { d.UpdateScreen(s) })
	want := fmt.Sprintf("Invalid hash for surface (expecting: 0x1234 but found 0x%X)", hash)
	if msg != want {
		t.Errorf("Expected %q, got %q", want, msg)
	}
}

func TestDebugCheckCursor(t *testing.T) {
	s := graphics.NewSurface(10, 10)
	d, _ := newTestDebug(t, "CheckCursor(hidden)\nCheckCursor(2,3)\nCheckCursor(4,4)")

	d.QuerySystemEvent()
	d.UpdateScreen(s)

	s.SetCursor(2, 3)
	d.QuerySystemEvent()
	d.UpdateScreen(s)

	s.HideCursor()
	d.QuerySystemEvent()
	msg := expectAssertion(t, func() { d.UpdateScreen(s) })
	want := "Invalid cursor position. Expectig the cursor to be (4,4), but found Hidden"
	if msg != want {
		t.Errorf("Expected %q, got %q", want, msg)
	}
}

func TestDebugClipboard(t *testing.T) {
	d, _ := newTestDebug(t, `
		Clipboard.SetText('hello')
		CheckClipboardText('hello')
		Clipboard.Clear()
		CheckClipboardText('')
		CheckClipboardText('x')
	`)
	for i := 0; i < 4; i++ {
		d.QuerySystemEvent()
	}
	if d.HasClipboardText() {
		t.Error("Expected empty clipboard after Clear")
	}
	if _, ok := d.ClipboardText(); ok {
		t.Error("Expected ClipboardText to report absent")
	}
	msg := expectAssertion(t, func() { d.QuerySystemEvent() })
	want := "Invalid clipboard text: (expecting: 'x' but found '')"
	if msg != want {
		t.Errorf("Expected %q, got %q", want, msg)
	}

	d.SetClipboardText("abc")
	if text, ok := d.ClipboardText(); !ok || text != "abc" {
		t.Errorf("Expected abc, got %q", text)
	}
}

func TestDebugErrorsDisabled(t *testing.T) {
	s := graphics.NewSurface(10, 10)
	d, out := newTestDebug(t, "Error.Disable(true)\nCheckHash(0x1)\nCheckClipboardText('z')")

	d.QuerySystemEvent()
	d.QuerySystemEvent()
	d.UpdateScreen(s)
	d.QuerySystemEvent()

	text := out.String()
	if !strings.Contains(text, "[Error] Invalid hash: (expecting: 0x1 but found") {
		t.Errorf("Expected printed hash error, got %q", text)
	}
	if !strings.Contains(text, "[Error] Invalid clipboard text: (expecting: 'z' but found '')") {
		t.Errorf("Expected printed clipboard error, got %q", text)
	}
}

func TestDebugPaint(t *testing.T) {
	s := graphics.NewSurface(12, 10)
	s.WriteString(0, 0, "Hello", graphics.DefaultAttribute, false)
	d, out := newTestDebug(t, "Paint('first frame')\nPaint.Enable(false)\nPaint('skipped')")

	d.QuerySystemEvent()
	if !d.TakeRepaintRequest() {
		t.Fatal("Expected Paint to request a repaint")
	}
	d.UpdateScreen(s)
	text := out.String()
	for _, part := range []string{"first frame", fmt.Sprintf("0x%X", s.Hash()), "Hidden", "Hello"} {
		if !strings.Contains(text, part) {
			t.Errorf("Expected frame to contain %q, got:\n%s", part, text)
		}
	}

	out.Reset()
	d.QuerySystemEvent()
	d.QuerySystemEvent()
	if d.TakeRepaintRequest() {
		t.Error("Expected no repaint while painting is disabled")
	}
	d.UpdateScreen(s)
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}
