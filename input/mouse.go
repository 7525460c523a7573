package input

import "strings"

// MouseButton identifies the pressed button
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseCenter
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseCenter:
		return "Center"
	default:
		return "None"
	}
}

// ParseMouseButton accepts left, right, center (or middle) and none
func ParseMouseButton(s string) (MouseButton, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return MouseLeft, true
	case "right":
		return MouseRight, true
	case "center", "middle":
		return MouseCenter, true
	case "none":
		return MouseNone, true
	}
	return MouseNone, false
}

// WheelDirection is the scroll direction of a wheel event
type WheelDirection uint8

const (
	WheelNone WheelDirection = iota
	WheelLeft
	WheelRight
	WheelUp
	WheelDown
)

func (d WheelDirection) String() string {
	switch d {
	case WheelLeft:
		return "Left"
	case WheelRight:
		return "Right"
	case WheelUp:
		return "Up"
	case WheelDown:
		return "Down"
	default:
		return "None"
	}
}

// ParseWheelDirection accepts left, right, up and down
func ParseWheelDirection(s string) (WheelDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return WheelLeft, true
	case "right":
		return WheelRight, true
	case "up":
		return WheelUp, true
	case "down":
		return WheelDown, true
	}
	return WheelNone, false
}
