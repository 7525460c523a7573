package script

import (
	"bufio"
	"fmt"
	"strings"
)

// LineError locates a parse failure inside a multi-line script
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// IsComment reports lines that are skipped: blank, or starting with ';', '#' or '//'
func IsComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || line[0] == ';' || line[0] == '#' || strings.HasPrefix(line, "//")
}

// ParseScript parses every non-comment line of a script in order
func ParseScript(text string) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if IsComment(line) {
			continue
		}
		cmd, err := Parse(strings.TrimSpace(line))
		if err != nil {
			return nil, &LineError{Line: n, Text: strings.TrimSpace(line), Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// CursorRepr renders a cursor position as "(x,y)" or "Hidden"
func CursorRepr(x, y int, visible bool) string {
	if !visible {
		return "Hidden"
	}
	return fmt.Sprintf("(%d,%d)", x, y)
}
