package backend

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/terminal"
)

// framePrinter dumps surfaces for Paint commands
// Styles degrade to plain text when out is not a terminal
type framePrinter struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	valueStyle lipgloss.Style
	markStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

func newFramePrinter(out io.Writer) *framePrinter {
	r := lipgloss.NewRenderer(out)
	return &framePrinter{
		out:        out,
		renderer:   r,
		valueStyle: r.NewStyle().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("0")),
		markStyle:  r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
		errorStyle: r.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("0")),
	}
}

// lipglossColor converts a surface color, ok is false for Transparent
func lipglossColor(c graphics.Color) (lipgloss.TerminalColor, bool) {
	if r, g, b, ok := c.Components(); ok {
		return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b)), true
	}
	if idx, ok := terminal.PaletteIndex(c); ok {
		return lipgloss.Color(strconv.Itoa(int(idx))), true
	}
	return nil, false
}

func (p *framePrinter) cellStyle(fg, bg graphics.Color) lipgloss.Style {
	st := p.renderer.NewStyle()
	if c, ok := lipglossColor(fg); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		st = st.Background(c)
	}
	return st
}

func (p *framePrinter) printError(msg string) {
	fmt.Fprintln(p.out, p.errorStyle.Render("[Error] "+msg))
}

func (p *framePrinter) print(title string, s *graphics.Surface, hash uint64, mouse graphics.Point) {
	width := s.Width()
	inner := width + 7
	sep := "|" + strings.Repeat("-", inner) + "|"
	cur := s.Cursor()

	cursorText := "Hidden"
	if cur.Visible {
		cursorText = fmt.Sprintf("%d,%d", cur.X, cur.Y)
	}
	field := func(label, value string) string {
		pad := max(width+6-lipgloss.Width(value), 0)
		return "| " + label + ": " + p.valueStyle.Render(value+strings.Repeat(" ", pad))
	}

	lines := []string{
		"",
		"+" + strings.Repeat("=", inner) + "+",
		field("Name  ", title),
		field("Hash  ", fmt.Sprintf("0x%X", hash)),
		field("Cursor", cursorText),
		sep,
		"|    | " + p.ruler(width, mouse.X, true) + " |",
		"|    | " + p.ruler(width, mouse.X, false) + " |",
		sep,
	}

	chars := s.Chars()
	for y := 0; y < s.Height(); y++ {
		row := chars[y*width : (y+1)*width]
		gutter := fmt.Sprintf("%3d ", y)
		if y == mouse.Y {
			gutter = p.markStyle.Render(gutter)
		}
		lines = append(lines, "|"+gutter+"| "+p.row(row, y, cur)+" |")
	}
	lines = append(lines, sep)

	fmt.Fprintln(p.out, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ruler renders the tens or units digit of every column, the mouse column highlighted
func (p *framePrinter) ruler(width, mouseX int, tens bool) string {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		ch := byte('0' + i%10)
		if tens {
			ch = ' '
			if d := (i % 100) / 10; d != 0 {
				ch = byte('0' + d)
			}
		}
		if i == mouseX {
			sb.WriteString(p.markStyle.Render(string(ch)))
		} else {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// row renders runs of equally colored cells; the cursor cell has its colors swapped
func (p *framePrinter) row(cells []graphics.Character, y int, cur graphics.Cursor) string {
	var sb, run strings.Builder
	var runFg, runBg graphics.Color
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(p.cellStyle(runFg, runBg).Render(run.String()))
			run.Reset()
		}
	}
	for x, ch := range cells {
		fg, bg := ch.Fg, ch.Bg
		if cur.Visible && cur.X == x && cur.Y == y {
			fg, bg = bg, fg
		}
		if run.Len() > 0 && (fg != runFg || bg != runBg) {
			flush()
		}
		runFg, runBg = fg, bg
		if ch.Code <= ' ' {
			run.WriteByte(' ')
		} else {
			run.WriteRune(ch.Code)
		}
	}
	flush()
	return sb.String()
}
