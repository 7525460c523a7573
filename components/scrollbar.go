package components

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/input"
	"github.com/lixenwraith/cellui/ui"
)

// ScrollBar is a one cell wide (or tall) bar with arrow ends and a thumb
// It is not a control: the owner places it, paints it and forwards mouse events to it
type ScrollBar struct {
	x, y      int
	dimension int
	vertical  bool
	enabled   bool

	value    int
	maxValue int

	hovered bool
	pressed bool
}

// MouseResult tells the owner what a forwarded mouse event did
type MouseResult struct {
	Handled bool // the event was over the bar or continued a drag started on it
	Repaint bool
	Changed bool // Value moved
}

// NewScrollBar creates a hidden bar; call Place to position it
func NewScrollBar(vertical bool) ScrollBar {
	return ScrollBar{vertical: vertical, enabled: true}
}

// Place positions the bar in owner coordinates; bars shorter than 3 cells are hidden
func (s *ScrollBar) Place(x, y, dimension int) {
	s.x, s.y, s.dimension = x, y, dimension
}

// SetCount sets the number of positions; 0 or 1 disables the bar
func (s *ScrollBar) SetCount(count int) {
	s.maxValue = max(count-1, 0)
	s.value = min(s.value, s.maxValue)
}

// SetValue moves the thumb, clamped to the count
func (s *ScrollBar) SetValue(v int) {
	s.value = min(max(v, 0), s.maxValue)
}

func (s *ScrollBar) Value() int           { return s.value }
func (s *ScrollBar) Max() int             { return s.maxValue }
func (s *ScrollBar) SetEnabled(on bool)   { s.enabled = on }
func (s *ScrollBar) IsVisible() bool      { return s.dimension >= 3 }
func (s *ScrollBar) IsActive() bool       { return s.enabled && s.maxValue > 0 }
func (s *ScrollBar) Position() (int, int) { return s.x, s.y }

// thumbOffset is the thumb cell counted from the first arrow
func (s *ScrollBar) thumbOffset() int {
	if s.maxValue == 0 {
		return 1
	}
	return 1 + s.value*(s.dimension-3)/s.maxValue
}

// Paint draws the bar with colors picked from the owner state and the bar hover state
func (s *ScrollBar) Paint(surface *graphics.Surface, th *ui.Theme, owner *ui.ControlBase) {
	if !s.IsVisible() {
		return
	}
	colors := &th.ScrollBar
	var attr graphics.CharAttribute
	switch {
	case !s.IsActive() || !owner.IsEnabled():
		attr = colors.Inactive
	case s.pressed:
		attr = colors.Pressed
	case s.hovered:
		attr = colors.Hovered
	case owner.HasFocus():
		attr = colors.Focused
	default:
		attr = colors.Normal
	}

	bar := graphics.CharWithAttr(graphics.Block50, attr)
	first, last := rune(graphics.ArrowLeft), rune(graphics.ArrowRight)
	if s.vertical {
		first, last = graphics.ArrowUp, graphics.ArrowDown
		surface.FillVerticalLineWithSize(s.x, s.y, s.dimension, bar)
		surface.WriteChar(s.x, s.y, graphics.CharWithAttr(first, attr))
		surface.WriteChar(s.x, s.y+s.dimension-1, graphics.CharWithAttr(last, attr))
	} else {
		surface.FillHorizontalLineWithSize(s.x, s.y, s.dimension, bar)
		surface.WriteChar(s.x, s.y, graphics.CharWithAttr(first, attr))
		surface.WriteChar(s.x+s.dimension-1, s.y, graphics.CharWithAttr(last, attr))
	}
	if s.IsActive() {
		thumb := graphics.CharWithAttr(graphics.BlockCentered, attr)
		if s.vertical {
			surface.WriteChar(s.x, s.y+s.thumbOffset(), thumb)
		} else {
			surface.WriteChar(s.x+s.thumbOffset(), s.y, thumb)
		}
	}
}

// cellAt returns the position along the bar, -1 when (x, y) is outside it
func (s *ScrollBar) cellAt(x, y int) int {
	if !s.IsVisible() {
		return -1
	}
	along, across := x-s.x, y-s.y
	if s.vertical {
		along, across = y-s.y, x-s.x
	}
	if across != 0 || along < 0 || along >= s.dimension {
		return -1
	}
	return along
}

// valueAt maps a bar cell between the arrows to a value
func (s *ScrollBar) valueAt(pos int) int {
	track := s.dimension - 3
	if track <= 0 {
		return s.value
	}
	pos = min(max(pos-1, 0), track)
	return (pos*s.maxValue + track/2) / track
}

func (s *ScrollBar) moveTo(v int, res *MouseResult) {
	old := s.value
	s.SetValue(v)
	if s.value != old {
		res.Changed = true
		res.Repaint = true
	}
}

// ProcessMouse handles an owner-local mouse event
// Arrows step by one, the track jumps, dragging after a press on the track follows the pointer
func (s *ScrollBar) ProcessMouse(ev ui.MouseEvent) MouseResult {
	var res MouseResult
	pos := s.cellAt(ev.X, ev.Y)
	switch ev.Kind {
	case ui.MouseEnter, ui.MouseHover, ui.MouseLeave:
		over := pos >= 0 && ev.Kind != ui.MouseLeave
		if over != s.hovered {
			s.hovered = over
			res.Repaint = true
		}
		res.Handled = over
	case ui.MousePressed:
		if pos < 0 || !s.IsActive() || ev.Button != input.MouseLeft {
			return res
		}
		res.Handled = true
		res.Repaint = true
		switch pos {
		case 0:
			s.moveTo(s.value-1, &res)
		case s.dimension - 1:
			s.moveTo(s.value+1, &res)
		default:
			s.pressed = true
			s.moveTo(s.valueAt(pos), &res)
		}
	case ui.MouseDrag:
		if !s.pressed {
			return res
		}
		res.Handled = true
		along := ev.X - s.x
		if s.vertical {
			along = ev.Y - s.y
		}
		s.moveTo(s.valueAt(along), &res)
	case ui.MouseReleased:
		if s.pressed {
			s.pressed = false
			res.Handled = true
			res.Repaint = true
		}
	}
	return res
}
