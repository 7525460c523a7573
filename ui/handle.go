package ui

import "fmt"

// Handle is an opaque reference to a control owned by a Runtime
// A serial is never reused, so a handle kept past removal resolves to nothing
type Handle struct {
	index  uint32
	serial uint32
}

// HandleNone refers to no control
var HandleNone = Handle{}

// IsNone reports the empty handle
func (h Handle) IsNone() bool {
	return h.serial == 0
}

func (h Handle) String() string {
	if h.IsNone() {
		return "Handle(None)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.serial)
}

type slot struct {
	serial  uint32
	control Control
}

// arena owns every registered control
// Freed slots are recycled with a fresh serial
type arena struct {
	slots      []slot
	free       []uint32
	nextSerial uint32
	count      int
}

func newArena() *arena {
	return &arena{
		slots:      make([]slot, 0, 64),
		nextSerial: 1,
	}
}

func (a *arena) add(c Control) Handle {
	serial := a.nextSerial
	a.nextSerial++
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[index] = slot{serial: serial, control: c}
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{serial: serial, control: c})
	}
	a.count++
	return Handle{index: index, serial: serial}
}

func (a *arena) get(h Handle) Control {
	if h.IsNone() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if s.serial != h.serial {
		return nil
	}
	return s.control
}

func (a *arena) base(h Handle) *ControlBase {
	if c := a.get(h); c != nil {
		return c.Base()
	}
	return nil
}

func (a *arena) remove(h Handle) bool {
	if a.get(h) == nil {
		return false
	}
	a.slots[h.index] = slot{}
	a.free = append(a.free, h.index)
	a.count--
	return true
}

func (a *arena) len() int {
	return a.count
}

// Get resolves a handle to its concrete control type
// A stale handle or a type mismatch yields false
func Get[T Control](rt *Runtime, h Handle) (T, bool) {
	var zero T
	c := rt.arena.get(h)
	if c == nil {
		return zero, false
	}
	t, ok := c.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
