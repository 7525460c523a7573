package event

import (
	"fmt"

	"github.com/lixenwraith/cellui/input"
)

// SystemEvent is produced by a backend and consumed by the runtime loop
// The set of variants is closed; the marker method keeps other packages from adding more
type SystemEvent interface {
	systemEvent()
	fmt.Stringer
}

// Resize reports a new terminal size in cells
type Resize struct {
	Width, Height int
}

// MouseButtonDown reports a pressed button
type MouseButtonDown struct {
	X, Y     int
	Button   input.MouseButton
	Modifier input.Modifier
}

// MouseButtonUp reports a released button
type MouseButtonUp struct {
	X, Y     int
	Button   input.MouseButton
	Modifier input.Modifier
}

// MouseDoubleClick reports a second press in quick succession
type MouseDoubleClick struct {
	X, Y     int
	Button   input.MouseButton
	Modifier input.Modifier
}

// MouseMove reports pointer motion; Button is the button held while moving, if any
type MouseMove struct {
	X, Y   int
	Button input.MouseButton
}

// MouseWheel reports one wheel notch
type MouseWheel struct {
	X, Y      int
	Direction input.WheelDirection
}

// KeyPressed reports a key together with the character it types, 0 for none
type KeyPressed struct {
	Key       input.Key
	Character rune
}

// KeyModifierChanged reports a change of held modifiers without a key press
type KeyModifierChanged struct {
	Old, New input.Modifier
}

// AppClose asks the runtime to shut down
type AppClose struct{}

func (Resize) systemEvent()             {}
func (MouseButtonDown) systemEvent()    {}
func (MouseButtonUp) systemEvent()      {}
func (MouseDoubleClick) systemEvent()   {}
func (MouseMove) systemEvent()          {}
func (MouseWheel) systemEvent()         {}
func (KeyPressed) systemEvent()         {}
func (KeyModifierChanged) systemEvent() {}
func (AppClose) systemEvent()           {}

func (e Resize) String() string { return fmt.Sprintf("Resize(%d,%d)", e.Width, e.Height) }
func (e MouseButtonDown) String() string {
	return fmt.Sprintf("MouseButtonDown(%d,%d,%v)", e.X, e.Y, e.Button)
}
func (e MouseButtonUp) String() string {
	return fmt.Sprintf("MouseButtonUp(%d,%d,%v)", e.X, e.Y, e.Button)
}
func (e MouseDoubleClick) String() string {
	return fmt.Sprintf("MouseDoubleClick(%d,%d,%v)", e.X, e.Y, e.Button)
}
func (e MouseMove) String() string {
	return fmt.Sprintf("MouseMove(%d,%d,%v)", e.X, e.Y, e.Button)
}
func (e MouseWheel) String() string {
	return fmt.Sprintf("MouseWheel(%d,%d,%v)", e.X, e.Y, e.Direction)
}
func (e KeyPressed) String() string {
	return fmt.Sprintf("KeyPressed(%v,%q)", e.Key, e.Character)
}
func (e KeyModifierChanged) String() string {
	return fmt.Sprintf("KeyModifierChanged(%v->%v)", e.Old, e.New)
}
func (AppClose) String() string { return "AppClose" }
