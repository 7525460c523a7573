package ui

import (
	"github.com/lixenwraith/cellui/graphics"
)

type tooltip struct {
	visible  bool
	textPos  graphics.Point
	arrowPos graphics.Point
	arrow    rune
	canvas   *graphics.Surface
}

func newTooltip() tooltip {
	return tooltip{arrow: graphics.ArrowDown, canvas: graphics.NewSurface(16, 16)}
}

// measureTooltip wraps text at half the screen width and returns the box width and line count
func measureTooltip(text string, screen graphics.Size) (width, lines int) {
	maxWidth := screen.Width / 2
	w, best := 0, 0
	for _, r := range text {
		if r == '\n' || r == '\r' {
			best = max(best, w)
			w = 0
			lines++
			continue
		}
		w++
		if w > maxWidth {
			best = maxWidth
			w = 0
			lines++
		}
	}
	if w > 0 {
		best = max(best, w)
		lines++
	}
	lines = max(min(lines, screen.Height/3), 1)
	return max(best, 5) + 2, lines
}

// show prefers the rows above the object; it falls back below and stays hidden when neither fits
func (t *tooltip) show(text string, object graphics.Rect, screen graphics.Size, th *Theme) bool {
	t.visible = false
	width, lines := measureTooltip(text, screen)

	centerX := object.Left + object.Width()/2
	idealX := centerX - width/2
	x := max(min(idealX, screen.Width-width), 0)

	switch {
	case object.Top >= lines+1:
		t.arrowPos = graphics.Point{X: centerX, Y: object.Top - 1}
		t.arrow = graphics.ArrowDown
		t.textPos = graphics.Point{X: x, Y: object.Top - (lines + 1)}
	case object.Bottom+lines+1 <= screen.Height:
		t.arrowPos = graphics.Point{X: centerX, Y: object.Bottom + 1}
		t.arrow = graphics.ArrowUp
		t.textPos = graphics.Point{X: x, Y: object.Bottom + 2}
	default:
		return false
	}

	t.canvas.Resize(width, lines)
	t.canvas.Clear(graphics.CharWithAttr(' ', th.Tooltip.Text))
	f := graphics.NewTextFormat(1, 0, th.Tooltip.Text, graphics.AlignLeft)
	f.Width = width - 2
	f.MultiLine = lines > 1
	t.canvas.WriteText(wrapTooltip(text, width-2), f)
	t.visible = true
	return true
}

// wrapTooltip breaks long lines at the box width
func wrapTooltip(text string, width int) string {
	if width <= 0 {
		return text
	}
	out := make([]rune, 0, len(text))
	w := 0
	for _, r := range text {
		if r == '\n' || r == '\r' {
			out = append(out, '\n')
			w = 0
			continue
		}
		if w == width {
			out = append(out, '\n')
			w = 0
		}
		out = append(out, r)
		w++
	}
	return string(out)
}

func (t *tooltip) hide() {
	t.visible = false
}

func (t *tooltip) paint(s *graphics.Surface, th *Theme) {
	if !t.visible {
		return
	}
	s.DrawSurface(t.textPos.X, t.textPos.Y, t.canvas)
	s.WriteChar(t.arrowPos.X, t.arrowPos.Y, graphics.CharWithAttr(t.arrow, th.Tooltip.Arrow))
}
