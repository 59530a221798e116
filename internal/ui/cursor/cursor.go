// Package cursor tracks a selected row and a scroll window over a list.
// The list length n and the window height are passed on every call since
// both change as lists are filtered and the terminal is resized.
package cursor

// Cursor is a selected index plus the index of the first visible row.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the selection
}

// New creates a cursor at row 0 with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta rows, clamped to the list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects row pos, clamped to the list. It is a no-op on an empty list.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = clampIndex(pos, n)
	c.scroll(n, height)
}

// JumpStart selects the first row.
func (c *Cursor) JumpStart() {
	c.pos, c.offset = 0, 0
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(n, height int) {
	c.Jump(n-1, n, height)
}

// Fit re-clamps the selection and window after the list or height changed.
func (c *Cursor) Fit(n, height int) {
	if n == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clampIndex(c.pos, n)
	c.scroll(n, height)
}

// Window returns the visible index range [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

// RowAt maps a visible line (0 = first visible row) to a list index.
// It returns false for lines outside the window or past the end of the list.
func (c Cursor) RowAt(line, n, height int) (int, bool) {
	if line < 0 || line >= height {
		return 0, false
	}
	idx := c.offset + line
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// scroll moves the window so the selection stays margin rows from either edge.
func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = c.pos - c.margin
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clampIndex(c.offset, max(n-height+1, 1))
}

// clampIndex limits i to [0, n-1].
func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
