package controls

import (
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/ui"
)

// Label shows static text; it never takes focus
type Label struct {
	ui.ControlBase
	text  string
	align graphics.TextAlignment
}

func NewLabel(text string, layout ui.Layout) *Label {
	return &Label{
		ControlBase: ui.NewControlBase(layout, ui.Visible|ui.Enabled),
		text:        text,
	}
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	l.text = text
	if rt := l.Runtime(); rt != nil {
		rt.Invalidate()
	}
}

func (l *Label) SetAlignment(a graphics.TextAlignment) { l.align = a }

func (l *Label) OnPaint(s *graphics.Surface, th *ui.Theme) {
	size := l.Size()
	x := 0
	switch l.align {
	case graphics.AlignCenter:
		x = size.Width / 2
	case graphics.AlignRight:
		x = size.Width - 1
	}
	f := graphics.NewTextFormat(x, 0, th.Text.Normal, l.align)
	f.Width = size.Width
	f.MultiLine = size.Height > 1
	s.WriteText(l.text, f)
}
