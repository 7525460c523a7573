package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLayout is wrapped by every ParseLayout failure
var ErrInvalidLayout = errors.New("invalid layout")

// Alignment is a pivot or anchor point of a rectangle
type Alignment uint8

const (
	TopLeft Alignment = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	Center
)

var alignmentNames = map[string]Alignment{
	"tl": TopLeft, "lt": TopLeft, "topleft": TopLeft, "lefttop": TopLeft,
	"t": Top, "top": Top,
	"tr": TopRight, "rt": TopRight, "topright": TopRight, "righttop": TopRight,
	"r": Right, "right": Right,
	"br": BottomRight, "rb": BottomRight, "bottomright": BottomRight, "rightbottom": BottomRight,
	"b": Bottom, "bottom": Bottom,
	"bl": BottomLeft, "lb": BottomLeft, "bottomleft": BottomLeft, "leftbottom": BottomLeft,
	"l": Left, "left": Left,
	"c": Center, "center": Center,
}

// horizontal returns 0 for left, 1 for centered and 2 for right pivots
func (a Alignment) horizontal() int {
	switch a {
	case Top, Center, Bottom:
		return 1
	case TopRight, Right, BottomRight:
		return 2
	}
	return 0
}

// vertical returns 0 for top, 1 for centered and 2 for bottom pivots
func (a Alignment) vertical() int {
	switch a {
	case Left, Center, Right:
		return 1
	case BottomLeft, Bottom, BottomRight:
		return 2
	}
	return 0
}

// coord is an absolute cell count or a percentage of the parent client size
// Percentages are kept in hundredths (50% is 5000) and truncated when resolved
type coord struct {
	value   int
	percent bool
}

const fullPercent = 10000

func absCoord(v int) coord          { return coord{value: v} }
func pctCoord(hundredths int) coord { return coord{value: hundredths, percent: true} }

func (c coord) resolve(parent int) int {
	if c.percent {
		return c.value * parent / fullPercent
	}
	return c.value
}

func parseCoord(s string) (coord, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return coord{}, fmt.Errorf("invalid percentage %q", s)
		}
		return pctCoord(int(f * 100)), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return coord{}, fmt.Errorf("invalid number %q", s)
	}
	return absCoord(v), nil
}

type layoutKind uint8

const (
	kindPointAndSize layoutKind = iota
	kindLeftRight
	kindTopBottom
	kindLeftTopRight
	kindLeftBottomRight
	kindTopLeftBottom
	kindTopRightBottom
	kindAll
)

// Layout describes how a control is placed inside its parent's client area
// The zero value puts a 1x1 control in the top-left corner
type Layout struct {
	kind                     layoutKind
	x, y, width, height      coord
	left, top, right, bottom coord
	align, anchor            Alignment
	format                   string
}

func (l Layout) String() string {
	if l.format == "" {
		return "x:0,y:0,w:1,h:1"
	}
	return l.format
}

// AbsoluteLayout places a control at a fixed position with a fixed size
func AbsoluteLayout(x, y, width, height int) Layout {
	return Layout{
		x: absCoord(x), y: absCoord(y), width: absCoord(width), height: absCoord(height),
		format: fmt.Sprintf("x:%d,y:%d,w:%d,h:%d", x, y, width, height),
	}
}

// MustLayout is ParseLayout for literals; it panics on a malformed description
func MustLayout(format string) Layout {
	l, err := ParseLayout(format)
	if err != nil {
		panic(err)
	}
	return l
}

type layoutParams struct {
	x, y, width, height      *coord
	left, top, right, bottom *coord
	align, dock              *Alignment
	fill                     bool
}

// ParseLayout parses a comma separated list of key:value pairs
//
//	x:1,y:2,w:10,h:3         position and size, any value may be a percentage
//	x:50%,y:50%,w:20,h:5,a:c pivot of the (x,y) point
//	a:br,w:10,h:3            aligned inside the parent
//	d:l,w:20                 docked (c, l, r, t, b, tl, tr, bl, br, f)
//	l:1,t:1,r:1,b:1          anchored to parent edges
func ParseLayout(format string) (Layout, error) {
	fail := func(msg string, args ...any) (Layout, error) {
		return Layout{}, fmt.Errorf("%w %q: %s", ErrInvalidLayout, format, fmt.Sprintf(msg, args...))
	}

	var p layoutParams
	for _, part := range strings.Split(format, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			key, value, ok = strings.Cut(part, "=")
		}
		if !ok {
			return fail("expecting key:value but found %q", part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.ToLower(strings.TrimSpace(value))

		var target **coord
		switch key {
		case "x":
			target = &p.x
		case "y":
			target = &p.y
		case "w", "width":
			target = &p.width
		case "h", "height":
			target = &p.height
		case "l", "left":
			target = &p.left
		case "t", "top":
			target = &p.top
		case "r", "right":
			target = &p.right
		case "b", "bottom":
			target = &p.bottom
		case "a", "align":
			a, ok := alignmentNames[value]
			if !ok {
				return fail("unknown alignment %q", value)
			}
			if p.align != nil {
				return fail("duplicate key %q", key)
			}
			p.align = &a
			continue
		case "d", "dock":
			if p.dock != nil || p.fill {
				return fail("duplicate key %q", key)
			}
			if value == "f" || value == "fill" {
				p.fill = true
				continue
			}
			a, ok := alignmentNames[value]
			if !ok {
				return fail("unknown dock value %q", value)
			}
			p.dock = &a
			continue
		default:
			return fail("unknown key %q", key)
		}
		if *target != nil {
			return fail("duplicate key %q", key)
		}
		c, err := parseCoord(value)
		if err != nil {
			return fail("%v", err)
		}
		*target = &c
	}

	l, err := p.build()
	if err != nil {
		return fail("%v", err)
	}
	l.format = format
	return l, nil
}

func orDefault(c *coord, def coord) coord {
	if c == nil {
		return def
	}
	return *c
}

func (p *layoutParams) anchorsUsed() bool {
	return p.left != nil || p.top != nil || p.right != nil || p.bottom != nil
}

func (p *layoutParams) build() (Layout, error) {
	full := pctCoord(fullPercent)
	one := absCoord(1)

	if p.dock != nil || p.fill {
		if p.x != nil || p.y != nil || p.anchorsUsed() || p.align != nil {
			return Layout{}, errors.New("dock can not be combined with x, y, align or anchors")
		}
		if p.fill {
			if p.width != nil || p.height != nil {
				return Layout{}, errors.New("dock fill can not be combined with width or height")
			}
			return Layout{width: full, height: full}, nil
		}
		d := *p.dock
		l := Layout{align: d, anchor: d, width: orDefault(p.width, full), height: orDefault(p.height, full)}
		switch d {
		case Left, Right:
			if p.height != nil {
				return Layout{}, errors.New("left or right dock can not be combined with height")
			}
			l.height = full
		case Top, Bottom:
			if p.width != nil {
				return Layout{}, errors.New("top or bottom dock can not be combined with width")
			}
			l.width = full
		}
		return l, nil
	}

	if p.x != nil || p.y != nil {
		if p.x == nil || p.y == nil {
			if p.anchorsUsed() {
				return p.buildAnchors()
			}
			return Layout{}, errors.New("x and y must be used together")
		}
		if p.anchorsUsed() {
			return Layout{}, errors.New("x and y can not be combined with anchors")
		}
		l := Layout{x: *p.x, y: *p.y, width: orDefault(p.width, one), height: orDefault(p.height, one)}
		if p.align != nil {
			l.align = *p.align
		}
		return l, nil
	}

	if !p.anchorsUsed() {
		if p.align == nil {
			return Layout{}, errors.New("no position given")
		}
		return Layout{align: *p.align, anchor: *p.align, width: orDefault(p.width, full), height: orDefault(p.height, full)}, nil
	}
	return p.buildAnchors()
}

func (p *layoutParams) buildAnchors() (Layout, error) {
	one := absCoord(1)
	zero := absCoord(0)
	l := Layout{width: orDefault(p.width, one), height: orDefault(p.height, one)}
	if p.align != nil {
		l.align = *p.align
	}
	if p.left != nil && p.right != nil && p.width != nil {
		return Layout{}, errors.New("width can not be used when both left and right are anchored")
	}
	if p.top != nil && p.bottom != nil && p.height != nil {
		return Layout{}, errors.New("height can not be used when both top and bottom are anchored")
	}
	horizontalOnly := p.left != nil && p.right != nil && p.top == nil && p.bottom == nil
	verticalOnly := p.top != nil && p.bottom != nil && p.left == nil && p.right == nil
	if p.x != nil && !verticalOnly {
		return Layout{}, errors.New("x can only be combined with top and bottom anchors")
	}
	if p.y != nil && !horizontalOnly {
		return Layout{}, errors.New("y can only be combined with left and right anchors")
	}

	set := func(c *coord) coord { return orDefault(c, zero) }
	l.left, l.top, l.right, l.bottom = set(p.left), set(p.top), set(p.right), set(p.bottom)

	mask := 0
	for i, c := range []*coord{p.left, p.top, p.right, p.bottom} {
		if c != nil {
			mask |= 1 << i
		}
	}
	const (
		mLeft = 1 << iota
		mTop
		mRight
		mBottom
	)
	switch mask {
	case mLeft | mTop:
		l.x, l.y, l.anchor, l.align = l.left, l.top, TopLeft, TopLeft
	case mTop | mRight:
		l.x, l.y, l.anchor, l.align = l.right, l.top, TopRight, TopRight
	case mRight | mBottom:
		l.x, l.y, l.anchor, l.align = l.right, l.bottom, BottomRight, BottomRight
	case mLeft | mBottom:
		l.x, l.y, l.anchor, l.align = l.left, l.bottom, BottomLeft, BottomLeft
	case mLeft | mRight:
		l.kind, l.y = kindLeftRight, orDefault(p.y, zero)
	case mTop | mBottom:
		l.kind, l.x = kindTopBottom, orDefault(p.x, zero)
	case mLeft | mTop | mRight:
		l.kind = kindLeftTopRight
	case mLeft | mBottom | mRight:
		l.kind = kindLeftBottomRight
	case mTop | mLeft | mBottom:
		l.kind = kindTopLeftBottom
	case mTop | mRight | mBottom:
		l.kind = kindTopRightBottom
	case mLeft | mTop | mRight | mBottom:
		l.kind = kindAll
	default:
		return Layout{}, errors.New("a single anchor can not position a control")
	}
	return l, nil
}

// ===== COMPUTED LAYOUT =====

// controlLayout is the computed rectangle of a control relative to its parent client area
type controlLayout struct {
	desc                   Layout
	x, y, width, height    int
	minW, minH, maxW, maxH int
}

const maxControlSize = 0xFFFF

// newControlLayout starts at 0x0 so the first layout pass always reports a size change
func newControlLayout(desc Layout) controlLayout {
	return controlLayout{desc: desc, minW: 1, minH: 1, maxW: maxControlSize, maxH: maxControlSize}
}

func (c *controlLayout) resize(w, h int) {
	c.width = min(max(w, c.minW), c.maxW)
	c.height = min(max(h, c.minH), c.maxH)
}

func (c *controlLayout) setSizeBounds(minW, minH, maxW, maxH int) {
	if minW > maxW || minH > maxH {
		return
	}
	c.minW, c.minH = max(minW, 0), max(minH, 0)
	c.maxW, c.maxH = min(maxW, maxControlSize), min(maxH, maxControlSize)
	if c.width > 0 || c.height > 0 {
		c.resize(c.width, c.height)
	}
}

// toAbsolute replaces the description with a fixed rectangle
func (c *controlLayout) toAbsolute(x, y, w, h int) {
	c.resize(w, h)
	c.x, c.y = x, y
	c.desc = AbsoluteLayout(x, y, c.width, c.height)
}

// update resolves the description against the parent's client size
func (c *controlLayout) update(pw, ph int) {
	d := &c.desc
	switch d.kind {
	case kindPointAndSize:
		c.resize(d.width.resolve(pw), d.height.resolve(ph))
		x, y := d.x.resolve(pw), d.y.resolve(ph)
		switch d.anchor.horizontal() {
		case 1:
			x = pw / 2
		case 2:
			x = pw - x
		}
		switch d.anchor.vertical() {
		case 1:
			y = ph / 2
		case 2:
			y = ph - y
		}
		c.x, c.y = pivot(x, y, c.width, c.height, d.align)
	case kindLeftRight:
		l, r := d.left.resolve(pw), d.right.resolve(pw)
		c.resize(pw-(l+r), d.height.resolve(ph))
		y := d.y.resolve(ph)
		switch d.align.vertical() {
		case 1:
			y -= c.height / 2
		case 2:
			y -= c.height
		}
		c.x, c.y = l, y
	case kindTopBottom:
		t, b := d.top.resolve(ph), d.bottom.resolve(ph)
		c.resize(d.width.resolve(pw), ph-(t+b))
		x := d.x.resolve(pw)
		switch d.align.horizontal() {
		case 1:
			x -= c.width / 2
		case 2:
			x -= c.width
		}
		c.x, c.y = x, t
	case kindLeftTopRight:
		l, r := d.left.resolve(pw), d.right.resolve(pw)
		c.resize(pw-(l+r), d.height.resolve(ph))
		c.x, c.y = l, d.top.resolve(ph)
	case kindLeftBottomRight:
		l, r := d.left.resolve(pw), d.right.resolve(pw)
		c.resize(pw-(l+r), d.height.resolve(ph))
		c.x, c.y = l, ph-(d.bottom.resolve(ph)+c.height)
	case kindTopLeftBottom:
		t, b := d.top.resolve(ph), d.bottom.resolve(ph)
		c.resize(d.width.resolve(pw), ph-(t+b))
		c.x, c.y = d.left.resolve(pw), t
	case kindTopRightBottom:
		t, b := d.top.resolve(ph), d.bottom.resolve(ph)
		c.resize(d.width.resolve(pw), ph-(t+b))
		c.x, c.y = pw-(d.right.resolve(pw)+c.width), t
	case kindAll:
		l, t := d.left.resolve(pw), d.top.resolve(ph)
		c.resize(pw-(l+d.right.resolve(pw)), ph-(t+d.bottom.resolve(ph)))
		c.x, c.y = l, t
	}
}

// pivot moves (x,y) from the given pivot to the top-left corner
func pivot(x, y, w, h int, a Alignment) (int, int) {
	switch a.horizontal() {
	case 1:
		x -= w / 2
	case 2:
		x -= w
	}
	switch a.vertical() {
	case 1:
		y -= h / 2
	case 2:
		y -= h
	}
	return x, y
}
