// Package script implements the line-oriented command language that drives the debug backend
package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/cellui/input"
)

// MaxParams is the maximum number of parameters a command accepts
const MaxParams = 4

// ParseError is a tokenizing or validation failure with a fixed message text
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErr(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// Parser holds one tokenized line: a command name and up to MaxParams parameters
// Quoted parameters are stored unescaped
type Parser struct {
	command string
	params  [MaxParams]string
	count   int
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isCommandChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '.'
}

func isWordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isWordChar(c byte) bool {
	return isWordStart(c) || c == '.' || c == '+'
}

func skip(buf string, pos int, f func(byte) bool) int {
	for pos < len(buf) && f(buf[pos]) {
		pos++
	}
	return pos
}

// NewParser tokenizes line into a command and its parameters
func NewParser(line string) (*Parser, error) {
	p := &Parser{}
	if err := p.parse(line); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) parse(buf string) error {
	pos := skip(buf, 0, isSpace)
	if pos >= len(buf) {
		return parseErr("Expecting a valid command (not an empty line)")
	}
	next := skip(buf, pos, isCommandChar)
	if next == pos {
		return parseErr("Invalid character (expecting a command name)")
	}
	p.command = buf[pos:next]
	pos = skip(buf, next, isSpace)
	if pos >= len(buf) {
		return nil
	}
	if buf[pos] != '(' {
		return parseErr("Expecting '(' after command name")
	}
	pos++
	for {
		pos = skip(buf, pos, isSpace)
		if pos >= len(buf) {
			return parseErr("Expecting ')' at the end of the command")
		}
		c := buf[pos]
		switch {
		case c == ')':
			if rest := skip(buf, pos+1, isSpace); rest < len(buf) {
				return parseErr("Unexpected characters after ')'")
			}
			return nil
		case c == ',':
			return parseErr("Expecting a word but found ',' separator !")
		case c == '"' || c == '\'':
			if p.count >= MaxParams {
				return parseErr("Too many parameters (max allowed is %d)", MaxParams)
			}
			value, end, ok := readQuoted(buf, pos)
			if !ok {
				return parseErr("Invalid string (no ending '%c' character found)", c)
			}
			p.params[p.count] = value
			p.count++
			pos = end
		case isWordStart(c):
			if p.count >= MaxParams {
				return parseErr("Too many parameters (max allowed is %d)", MaxParams)
			}
			end := skip(buf, pos, isWordChar)
			p.params[p.count] = buf[pos:end]
			p.count++
			pos = end
		default:
			return parseErr("Invalid character (expecting a word)")
		}
		pos = skip(buf, pos, isSpace)
		if pos < len(buf) {
			switch buf[pos] {
			case ',':
				pos++
			case ')':
			default:
				return parseErr("Expecting ',' or ')' after parameter")
			}
		}
	}
}

// readQuoted reads a quoted string starting at the opening quote and returns
// the unescaped value and the offset after the closing quote
func readQuoted(buf string, start int) (string, int, bool) {
	quote := buf[start]
	var sb strings.Builder
	for i := start + 1; i < len(buf); i++ {
		c := buf[i]
		if c == quote {
			return sb.String(), i + 1, true
		}
		if c == '\\' && i+1 < len(buf) {
			i++
			switch buf[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(buf[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return "", len(buf), false
}

// Command returns the command name, for example "Mouse.Click"
func (p *Parser) Command() string { return p.command }

// ParamsCount returns the number of parameters
func (p *Parser) ParamsCount() int { return p.count }

// Param returns the raw text of parameter i
func (p *Parser) Param(i int) (string, bool) {
	if i < 0 || i >= p.count {
		return "", false
	}
	return p.params[i], true
}

// String is Param under the name used by text-taking commands
func (p *Parser) String(i int) (string, bool) {
	return p.Param(i)
}

// Bool parses true or false (case-insensitive)
func (p *Parser) Bool(i int) (bool, bool) {
	s, ok := p.Param(i)
	if !ok {
		return false, false
	}
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Int parses a signed decimal integer
func (p *Parser) Int(i int) (int, bool) {
	s, ok := p.Param(i)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Hash parses a 0x-prefixed 64-bit hexadecimal value
func (p *Parser) Hash(i int) (uint64, bool) {
	s, ok := p.Param(i)
	if !ok || len(s) < 3 || (s[:2] != "0x" && s[:2] != "0X") {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Key parses a key combination such as Ctrl+Alt+F4
func (p *Parser) Key(i int) (input.Key, bool) {
	s, ok := p.Param(i)
	if !ok {
		return input.NoKey, false
	}
	return input.ParseKey(s)
}

// Modifier parses a modifier set such as Ctrl+Shift
func (p *Parser) Modifier(i int) (input.Modifier, bool) {
	s, ok := p.Param(i)
	if !ok {
		return input.ModNone, false
	}
	return input.ParseModifier(s)
}

// MouseButton parses left, right, center, middle or none
func (p *Parser) MouseButton(i int) (input.MouseButton, bool) {
	s, ok := p.Param(i)
	if !ok {
		return input.MouseNone, false
	}
	return input.ParseMouseButton(s)
}

// WheelDirection parses left, right, up or down
func (p *Parser) WheelDirection(i int) (input.WheelDirection, bool) {
	s, ok := p.Param(i)
	if !ok {
		return input.WheelNone, false
	}
	return input.ParseWheelDirection(s)
}
