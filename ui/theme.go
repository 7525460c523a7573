package ui

import "github.com/lixenwraith/cellui/graphics"

// StateColors holds one attribute per interaction state
type StateColors struct {
	Normal   graphics.CharAttribute
	Focused  graphics.CharAttribute
	Hovered  graphics.CharAttribute
	Inactive graphics.CharAttribute
	Pressed  graphics.CharAttribute
}

// Pick returns the attribute for a control's current state
func (c *StateColors) Pick(b *ControlBase) graphics.CharAttribute {
	switch {
	case !b.IsEnabled():
		return c.Inactive
	case b.HasFocus():
		return c.Focused
	case b.IsMouseOver():
		return c.Hovered
	}
	return c.Normal
}

type DesktopTheme struct {
	Character graphics.Character
}

type WindowTheme struct {
	Background     graphics.Character
	BorderFocused  graphics.CharAttribute
	BorderInactive graphics.CharAttribute
	BorderDragged  graphics.CharAttribute
	Title          graphics.CharAttribute
	TitleInactive  graphics.CharAttribute
}

type TooltipTheme struct {
	Text  graphics.CharAttribute
	Arrow graphics.CharAttribute
}

// Theme is the read-only palette handed to every OnPaint call
type Theme struct {
	Desktop   DesktopTheme
	Window    WindowTheme
	Button    StateColors
	HotKey    StateColors
	Text      StateColors
	Menu      StateColors
	Tooltip   TooltipTheme
	ScrollBar StateColors
	ModalDim  graphics.Character
}

// DefaultTheme is the classic blue-desktop palette
func DefaultTheme() *Theme {
	attr := graphics.AttrWithColor
	return &Theme{
		Desktop: DesktopTheme{
			Character: graphics.NewCharacter(graphics.Block50, graphics.Gray, graphics.Black, graphics.FlagNone),
		},
		Window: WindowTheme{
			Background:     graphics.NewCharacter(' ', graphics.White, graphics.DarkBlue, graphics.FlagNone),
			BorderFocused:  attr(graphics.White, graphics.DarkBlue),
			BorderInactive: attr(graphics.Silver, graphics.DarkBlue),
			BorderDragged:  attr(graphics.Yellow, graphics.DarkBlue),
			Title:          attr(graphics.White, graphics.DarkBlue),
			TitleInactive:  attr(graphics.Silver, graphics.DarkBlue),
		},
		Button: StateColors{
			Normal:   attr(graphics.Black, graphics.Gray),
			Focused:  attr(graphics.Black, graphics.White),
			Hovered:  attr(graphics.Black, graphics.Yellow),
			Inactive: attr(graphics.Gray, graphics.Black),
			Pressed:  attr(graphics.Black, graphics.Olive),
		},
		HotKey: StateColors{
			Normal:   attr(graphics.DarkRed, graphics.Gray),
			Focused:  attr(graphics.DarkRed, graphics.White),
			Hovered:  attr(graphics.DarkRed, graphics.Yellow),
			Inactive: attr(graphics.Gray, graphics.Black),
			Pressed:  attr(graphics.DarkRed, graphics.Olive),
		},
		Text: StateColors{
			Normal:   attr(graphics.Silver, graphics.Transparent),
			Focused:  attr(graphics.White, graphics.Transparent),
			Hovered:  attr(graphics.Yellow, graphics.Transparent),
			Inactive: attr(graphics.Gray, graphics.Transparent),
			Pressed:  attr(graphics.White, graphics.Transparent),
		},
		Menu: StateColors{
			Normal:   attr(graphics.Black, graphics.White),
			Focused:  attr(graphics.Black, graphics.White),
			Hovered:  attr(graphics.Black, graphics.Silver),
			Inactive: attr(graphics.Gray, graphics.White),
			Pressed:  attr(graphics.Yellow, graphics.Magenta),
		},
		Tooltip: TooltipTheme{
			Text:  attr(graphics.Black, graphics.Aqua),
			Arrow: attr(graphics.Green, graphics.Black),
		},
		ScrollBar: StateColors{
			Normal:   attr(graphics.DarkBlue, graphics.Teal),
			Focused:  attr(graphics.White, graphics.Teal),
			Hovered:  attr(graphics.Yellow, graphics.Teal),
			Inactive: attr(graphics.Gray, graphics.Black),
			Pressed:  attr(graphics.Yellow, graphics.DarkBlue),
		},
		ModalDim: graphics.CharWithColor(graphics.Gray, graphics.Black),
	}
}
