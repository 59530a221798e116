package ui

// Base carries the size and focus every panel needs. Panels embed it.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Width() int { return b.width }
func (b Base) Height() int { return b.height }

// ListHeight is the number of rows left for content once overhead rows
// (borders, header) are taken out. Never negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
