package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		listLen int
		want    int
	}{
		{"down one", 0, 1, 10, 1},
		{"up one", 5, -1, 10, 4},
		{"clamped at top", 0, -3, 10, 0},
		{"clamped at bottom", 8, 5, 10, 9},
		{"empty list no-op", 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, 10, 5)
			c.Move(tt.delta, tt.listLen, 5)
			if c.Pos() != tt.want {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.want)
			}
		})
	}
}

func TestScroll_KeepsMargin(t *testing.T) {
	c := New(1)
	height := 4

	for range 5 {
		c.Move(1, 20, height)
	}
	// pos 5 with margin 1 in a 4-row window: offset 5-4+1+1 = 3
	if c.Pos() != 5 || c.Offset() != 3 {
		t.Errorf("pos/offset = %d/%d, want 5/3", c.Pos(), c.Offset())
	}

	c.Move(-4, 20, height)
	if c.Offset() != 0 {
		t.Errorf("offset after moving up = %d, want 0", c.Offset())
	}
}

func TestJumpEnd(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4)
	if c.Pos() != 9 || c.Offset() != 6 {
		t.Errorf("pos/offset = %d/%d, want 9/6", c.Pos(), c.Offset())
	}
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset after JumpStart = %d/%d", c.Pos(), c.Offset())
	}
}

func TestFit(t *testing.T) {
	c := New(0)
	c.Jump(8, 10, 5) // offset 4

	c.Fit(3, 5)
	if c.Pos() != 2 || c.Offset() != 0 {
		t.Errorf("Fit(3): pos/offset = %d/%d, want 2/0", c.Pos(), c.Offset())
	}

	c.Fit(0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Fit(0): pos/offset = %d/%d", c.Pos(), c.Offset())
	}
}

func TestFit_TallerWindow(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4) // offset 6

	c.Fit(10, 8)
	if c.Pos() != 9 || c.Offset() != 2 {
		t.Errorf("pos/offset = %d/%d, want 9/2", c.Pos(), c.Offset())
	}
}

func TestWindow(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4)

	start, end := c.Window(10, 4)
	if start != 6 || end != 10 {
		t.Errorf("Window = [%d,%d), want [6,10)", start, end)
	}

	if s, e := c.Window(0, 4); s != 0 || e != 0 {
		t.Errorf("empty Window = [%d,%d)", s, e)
	}
}

func TestRowAt(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 4) // offset 6

	tests := []struct {
		line   int
		want   int
		wantOK bool
	}{
		{0, 6, true},
		{3, 9, true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := c.RowAt(tt.line, 10, 4)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("RowAt(%d) = %d,%v, want %d,%v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}

	short := New(0)
	if _, ok := short.RowAt(2, 2, 4); ok {
		t.Error("RowAt past list end should fail")
	}
}
