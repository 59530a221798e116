// Package tracklist renders a titled, scrollable panel of tracks: the
// catalog playlist, favorites, and recently played all use it.
package tracklist

import (
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/cursor"
)

// Row is one rendered entry.
type Row struct {
	Label    string
	Favorite bool
	Current  bool // track under the playback cursor
}

// Model holds the rows and list cursor of one panel.
type Model struct {
	ui.Base
	title  string
	empty  string
	rows   []Row
	cursor cursor.Cursor
}

// New creates an empty panel. The empty text is shown when there are no rows.
func New(title, empty string) Model {
	return Model{
		title:  title,
		empty:  empty,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetTitle replaces the header text.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetRows replaces the rows, keeping the cursor in bounds.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	m.cursor.Fit(len(rows), m.listHeight())
}

// Rows returns the current rows.
func (m Model) Rows() []Row {
	return m.rows
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.rows)
}

// Cursor returns the list cursor position.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Selected returns the row index under the cursor.
func (m Model) Selected() (int, bool) {
	if len(m.rows) == 0 {
		return 0, false
	}
	return m.cursor.Pos(), true
}

// Move moves the cursor by delta rows.
func (m *Model) Move(delta int) {
	m.cursor.Move(delta, len(m.rows), m.listHeight())
}

// JumpTo puts the cursor on row i.
func (m *Model) JumpTo(i int) {
	m.cursor.Jump(i, len(m.rows), m.listHeight())
}

func (m *Model) JumpStart() {
	m.cursor.JumpStart()
}

func (m *Model) JumpEnd() {
	m.cursor.JumpEnd(len(m.rows), m.listHeight())
}

// RowAt maps a y coordinate relative to the panel's top edge to a row.
func (m Model) RowAt(y int) (int, bool) {
	line := y - ui.BorderHeight/2 - ui.HeaderHeight
	return m.cursor.RowAt(line, len(m.rows), m.listHeight())
}

// Click moves the cursor to the row at y and reports the row index.
func (m *Model) Click(y int) (int, bool) {
	idx, ok := m.RowAt(y)
	if ok {
		m.JumpTo(idx)
	}
	return idx, ok
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
