package components

import "github.com/lixenwraith/cellui/input"

// Navigator is a keyboard cursor over count cells laid out row by row in a fixed number of columns
// It keeps the cursor row inside a window of visible rows
type Navigator struct {
	count   int
	columns int
	index   int
	topRow  int
	rows    int
}

// NewNavigator creates a cursor at cell 0; columns below 1 are treated as 1
func NewNavigator(count, columns int) Navigator {
	return Navigator{count: max(count, 0), columns: max(columns, 1), rows: 1}
}

func (n *Navigator) Index() int   { return n.index }
func (n *Navigator) Count() int   { return n.count }
func (n *Navigator) Columns() int { return n.columns }
func (n *Navigator) TopRow() int  { return n.topRow }

// Rows is the number of rows needed for all cells
func (n *Navigator) Rows() int {
	return (n.count + n.columns - 1) / n.columns
}

// Cell returns the column and row of the cursor
func (n *Navigator) Cell() (col, row int) {
	return n.index % n.columns, n.index / n.columns
}

// SetColumns re-flows the grid and keeps the cursor on the same cell index
func (n *Navigator) SetColumns(columns int) {
	n.columns = max(columns, 1)
	n.scrollToCursor()
}

// SetVisibleRows sets the height of the row window
func (n *Navigator) SetVisibleRows(rows int) {
	n.rows = max(rows, 1)
	n.scrollToCursor()
}

// SetIndex moves the cursor, reports whether it moved
func (n *Navigator) SetIndex(idx int) bool {
	if n.count == 0 {
		return false
	}
	idx = ClampCursor(idx, n.count)
	if idx == n.index {
		return false
	}
	n.index = idx
	n.scrollToCursor()
	return true
}

// IndexAt maps a cell of the visible window to an index, -1 when empty
func (n *Navigator) IndexAt(col, row int) int {
	if col < 0 || col >= n.columns || row < 0 || row >= n.rows {
		return -1
	}
	idx := (n.topRow+row)*n.columns + col
	if idx >= n.count {
		return -1
	}
	return idx
}

func (n *Navigator) scrollToCursor() {
	row := n.index / n.columns
	if row < n.topRow {
		n.topRow = row
	} else if row >= n.topRow+n.rows {
		n.topRow = row - n.rows + 1
	}
	n.topRow = ClampScroll(n.topRow, n.rows, n.Rows())
}

// Move applies a navigation key, reports whether the key is a navigation key
// Left and Right wrap across rows; Up and Down stay in the column
func (n *Navigator) Move(key input.Key) bool {
	if key.Modifier != input.ModNone || n.count == 0 {
		return false
	}
	idx := n.index
	switch key.Code {
	case input.KeyLeft:
		idx--
	case input.KeyRight:
		idx++
	case input.KeyUp:
		if idx >= n.columns {
			idx -= n.columns
		}
	case input.KeyDown:
		if idx+n.columns < n.count {
			idx += n.columns
		}
	case input.KeyHome:
		idx = 0
	case input.KeyEnd:
		idx = n.count - 1
	case input.KeyPageUp:
		idx = max(idx-n.rows*n.columns, idx%n.columns)
	case input.KeyPageDown:
		if idx+n.columns < n.count {
			idx = min(idx+n.rows*n.columns, n.count-1)
		}
	default:
		return false
	}
	n.SetIndex(idx)
	return true
}
