// Package controls holds the concrete widgets built on ui.ControlBase and the components package
// Controls report user actions through ControlBase.RaiseEvent with the event types below
package controls

// ButtonPressed is raised when a button is activated by key, hot key or click
type ButtonPressed struct{}

// SelectionChanged is raised by list and combo controls; Index is -1 when nothing is selected
type SelectionChanged struct {
	Index int
}

// CheckedChanged is raised when a check box toggles
type CheckedChanged struct {
	Checked bool
}

// CharChanged is raised when a character picker commits a new character
type CharChanged struct {
	Char rune
}
