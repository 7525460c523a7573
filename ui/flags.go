package ui

// StatusFlags hold the per-control state bits
type StatusFlags uint16

const (
	Visible                     StatusFlags = 0x0001
	Enabled                     StatusFlags = 0x0002
	AcceptInput                 StatusFlags = 0x0004
	Focused                     StatusFlags = 0x0008
	MarkedForFocus              StatusFlags = 0x0010
	MouseOver                   StatusFlags = 0x0020
	WindowControl               StatusFlags = 0x0040
	ModalWindow                 StatusFlags = 0x0080
	DesktopControl              StatusFlags = 0x0100
	KeyInputBeforeChildren      StatusFlags = 0x0200
	Expanded                    StatusFlags = 0x0400
	IncreaseRightMarginOnFocus  StatusFlags = 0x0800
	IncreaseBottomMarginOnFocus StatusFlags = 0x1000
	SingleWindow                StatusFlags = 0x2000
)

// DefaultFlags is the usual set for an interactive control
const DefaultFlags = Visible | Enabled | AcceptInput

// Contains reports whether every bit of f is set
func (s StatusFlags) Contains(f StatusFlags) bool {
	return s&f == f
}

// ContainsAny reports whether at least one bit of f is set
func (s StatusFlags) ContainsAny(f StatusFlags) bool {
	return s&f != 0
}

func (s *StatusFlags) set(f StatusFlags, on bool) {
	if on {
		*s |= f
	} else {
		*s &^= f
	}
}

// ExpandDirection tells an expanded control where its popup area went
type ExpandDirection uint8

const (
	ExpandOnBottom ExpandDirection = iota
	ExpandOnTop
)

func (d ExpandDirection) String() string {
	if d == ExpandOnTop {
		return "OnTop"
	}
	return "OnBottom"
}

// EventProcessStatus is returned by input handlers
type EventProcessStatus uint8

const (
	Ignored EventProcessStatus = iota
	Processed
)

// ActionRequest answers a vetoable request such as closing the application
type ActionRequest uint8

const (
	Allow ActionRequest = iota
	Deny
)
