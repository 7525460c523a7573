package controls

import (
	"io"
	"testing"

	"github.com/lixenwraith/cellui/backend"
	"github.com/lixenwraith/cellui/event"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/ui"
)

// recordingDesktop collects every event raised in the tree
type recordingDesktop struct {
	*ui.Desktop
	events []any
}

func (d *recordingDesktop) OnEvent(ev ui.ControlEvent) ui.EventProcessStatus {
	d.events = append(d.events, ev.Data)
	return ui.Processed
}

// hashRecorder wraps the debug backend and snapshots the last presented frame
// each time a key press or the final close is handed to the runtime
type hashRecorder struct {
	backend.Backend
	last  uint64
	snaps []uint64
}

func (r *hashRecorder) TakeRepaintRequest() bool {
	rr, ok := r.Backend.(backend.RepaintRequester)
	return ok && rr.TakeRepaintRequest()
}

func (r *hashRecorder) UpdateScreen(s *graphics.Surface) {
	r.last = s.Hash()
	r.Backend.UpdateScreen(s)
}

func (r *hashRecorder) QuerySystemEvent() (event.SystemEvent, bool) {
	ev, ok := r.Backend.QuerySystemEvent()
	switch ev.(type) {
	case event.KeyPressed, event.AppClose:
		r.snaps = append(r.snaps, r.last)
	}
	return ev, ok
}

// runScript hosts c in a window at the top-left corner and replays script against it
// The control layout is relative to the window client area, which starts at screen (1,1)
func runScript(t *testing.T, script string, c ui.Control) (*recordingDesktop, *hashRecorder) {
	t.Helper()
	b, err := backend.NewDebug(backend.Options{
		Script: script,
		Size:   graphics.Size{Width: 60, Height: 20},
		Output: io.Discard,
	})
	if err != nil {
		t.Fatalf("Expected script to parse, got %v", err)
	}
	rec := &hashRecorder{Backend: b}
	desk := &recordingDesktop{Desktop: ui.NewDesktop()}
	rt := ui.New(rec, ui.WithDesktop(desk))
	w := ui.NewWindow("Test", ui.MustLayout("x:0,y:0,w:40,h:15"))
	rt.AddWindow(w)
	w.AddChild(c)
	if err := rt.Run(); err != nil {
		t.Fatalf("Expected run to succeed, got %v", err)
	}
	return desk, rec
}

func TestButtonRaisesPressed(t *testing.T) {
	btn := NewButton("&Ok", ui.MustLayout("x:1,y:1,w:10,h:1"))
	desk, _ := runScript(t, "Key.Pressed(Alt+O)\nKey.Pressed(Enter)\nKey.Pressed(Space)\nMouse.Click(4,2,left)", btn)
	if len(desk.events) != 4 {
		t.Fatalf("Expected 4 events, got %d: %v", len(desk.events), desk.events)
	}
	for i, ev := range desk.events {
		if _, ok := ev.(ButtonPressed); !ok {
			t.Errorf("Expected ButtonPressed at %d, got %T", i, ev)
		}
	}
}

func TestButtonDragOffCancels(t *testing.T) {
	btn := NewButton("Ok", ui.MustLayout("x:1,y:1,w:10,h:1"))
	desk, _ := runScript(t, "Mouse.Hold(4,2,left)\nMouse.Move(30,8)\nMouse.Release(30,8,left)", btn)
	if len(desk.events) != 0 {
		t.Errorf("Expected no events, got %v", desk.events)
	}
}

func TestCheckBoxToggles(t *testing.T) {
	cb := NewCheckBox("&Enabled", ui.MustLayout("x:1,y:1,w:20,h:1"), false)
	desk, _ := runScript(t, "Key.Pressed(Space)\nKey.Pressed(Enter)\nMouse.Click(5,2,left)", cb)
	want := []bool{true, false, true}
	if len(desk.events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(desk.events))
	}
	for i, ev := range desk.events {
		cc, ok := ev.(CheckedChanged)
		if !ok || cc.Checked != want[i] {
			t.Errorf("Expected CheckedChanged{%v} at %d, got %#v", want[i], i, ev)
		}
	}
	if !cb.IsChecked() {
		t.Errorf("Expected checkbox to end checked")
	}
}

func TestListBoxKeyNavigation(t *testing.T) {
	lb := NewListBox(ui.MustLayout("x:1,y:1,w:20,h:4"))
	for _, s := range []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"} {
		lb.Add(s)
	}
	desk, _ := runScript(t, "Key.Pressed(Down)\nKey.Pressed(End)\nKey.Pressed(Up)\nKey.Pressed(Home)\nKey.Pressed(Home)\nKey.Pressed(PageDown)", lb)
	want := []int{1, 9, 8, 0, 3}
	if len(desk.events) != len(want) {
		t.Fatalf("Expected %d events, got %d: %v", len(want), len(desk.events), desk.events)
	}
	for i, ev := range desk.events {
		sc, ok := ev.(SelectionChanged)
		if !ok || sc.Index != want[i] {
			t.Errorf("Expected SelectionChanged{%d} at %d, got %#v", want[i], i, ev)
		}
	}
	if item, _ := lb.SelectedItem(); item != "three" {
		t.Errorf("Expected three selected, got %q", item)
	}
}

func TestListBoxClickSelects(t *testing.T) {
	lb := NewListBox(ui.MustLayout("x:1,y:1,w:20,h:4"))
	for _, s := range []string{"a", "b", "c"} {
		lb.Add(s)
	}
	// rows start at screen y 2
	runScript(t, "Mouse.Click(5,4,left)", lb)
	if lb.Selected() != 2 {
		t.Errorf("Expected row 2 selected, got %d", lb.Selected())
	}
}

func TestComboBoxFilterAndPick(t *testing.T) {
	cb := NewComboBox(ui.MustLayout("x:1,y:1,w:20,h:1"))
	for _, s := range []string{"Apple", "Banana", "Cherry", "Blueberry", "Grape"} {
		cb.Add(s, "")
	}
	desk, rec := runScript(t, "Key.Pressed(Enter)\nKey.TypeText(bry)\nKey.Pressed(Enter)", cb)
	name, _ := cb.SelectedName()
	if name != "Blueberry" {
		t.Errorf("Expected Blueberry, got %q", name)
	}
	if cb.IsExpanded() {
		t.Errorf("Expected the list to be packed")
	}
	last, ok := desk.events[len(desk.events)-1].(SelectionChanged)
	if !ok || last.Index != 3 {
		t.Errorf("Expected last event SelectionChanged{3}, got %#v", desk.events[len(desk.events)-1])
	}
	// snapshots: before Enter, before b, r, y, before Enter, at close
	if len(rec.snaps) != 6 {
		t.Fatalf("Expected 6 snapshots, got %d", len(rec.snaps))
	}
	if rec.snaps[1] == rec.snaps[0] {
		t.Errorf("Expected the open list to change the screen")
	}
	if rec.snaps[5] == rec.snaps[0] {
		t.Errorf("Expected the new selection to change the packed header")
	}
}

func TestComboBoxEscapeKeepsSelection(t *testing.T) {
	cb := NewComboBox(ui.MustLayout("x:1,y:1,w:20,h:1"))
	for _, s := range []string{"one", "two", "three"} {
		cb.Add(s, "")
	}
	_, rec := runScript(t, "Key.Pressed(Space)\nKey.Pressed(Escape)", cb)
	if cb.Selected() != 0 {
		t.Errorf("Expected selection 0, got %d", cb.Selected())
	}
	if len(rec.snaps) != 3 || rec.snaps[2] != rec.snaps[0] {
		t.Errorf("Expected the packed screen to match the initial one, got %v", rec.snaps)
	}
}

// TestCharPickerExpandPackHashes compares frames with each other rather than with fixed
// hash constants: the picker draws its own glyph grid, so absolute hashes of another
// widget set's rendering (0x89DCEE13ABCD4574 open, 0xDDEF06221F6E1482 packed) do not apply
func TestCharPickerExpandPackHashes(t *testing.T) {
	cp := NewCharPicker(ui.MustLayout("x:1,y:1,w:12,h:1"), 'A')
	desk, rec := runScript(t,
		"Key.Pressed(Space)\nKey.Pressed(Right)\nKey.Pressed(Escape)\nKey.Pressed(Space)\nKey.Pressed(Right)\nKey.Pressed(Enter)", cp)

	// snapshots: initial, open, moved, packed, open, moved, committed
	if len(rec.snaps) != 7 {
		t.Fatalf("Expected 7 snapshots, got %d", len(rec.snaps))
	}
	initial, open, moved, packed, committed := rec.snaps[0], rec.snaps[1], rec.snaps[2], rec.snaps[3], rec.snaps[6]
	if open == initial {
		t.Errorf("Expected the open grid to change the screen")
	}
	if moved == open {
		t.Errorf("Expected the cursor move to change the screen")
	}
	if packed != initial {
		t.Errorf("Expected Escape to restore the initial screen, got 0x%X want 0x%X", packed, initial)
	}
	if rec.snaps[4] != open {
		t.Errorf("Expected reopening to reproduce the open grid")
	}
	if committed == initial {
		t.Errorf("Expected the committed character to change the header")
	}

	if cp.Char() != 'B' {
		t.Errorf("Expected B, got %q", cp.Char())
	}
	if len(desk.events) != 1 {
		t.Fatalf("Expected one event, got %d", len(desk.events))
	}
	if cc, ok := desk.events[0].(CharChanged); !ok || cc.Char != 'B' {
		t.Errorf("Expected CharChanged{B}, got %#v", desk.events[0])
	}
}

func TestCharPickerSetChar(t *testing.T) {
	cp := NewCharPicker(ui.MustLayout("x:0,y:0,w:10,h:1"), 0x1F600)
	if cp.Char() != '!' {
		t.Errorf("Expected the first offered character, got %q", cp.Char())
	}
	if !cp.SetChar('█') || cp.Char() != '█' {
		t.Errorf("Expected full block to be offered")
	}
	if cp.SetChar('\t') {
		t.Errorf("Expected tab to be rejected")
	}
}
