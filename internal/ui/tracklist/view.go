package tracklist

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// View renders the panel at its configured size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := max(m.Width()-ui.BorderHeight, 0)
	listHeight := m.listHeight()

	content := m.renderHeader(innerWidth) + "\n" +
		styles.T().S().Subtle.Render(render.Separator(innerWidth)) + "\n" +
		m.renderRows(innerWidth, listHeight)

	return styles.Panel(content, m.Width(), m.Height(), m.IsFocused())
}

func (m Model) renderHeader(width int) string {
	count := fmt.Sprintf("%s %s", humanize.Comma(int64(len(m.rows))), trackNoun(len(m.rows)))
	title := render.Truncate(m.title, max(width-runewidth.StringWidth(count)-1, 0))
	return render.Row(styles.T().S().Title.Render(title), styles.T().S().Muted.Render(count), width)
}

func trackNoun(n int) string {
	if n == 1 {
		return "track"
	}
	return "tracks"
}

func (m Model) renderRows(width, height int) string {
	if height <= 0 {
		return ""
	}
	if len(m.rows) == 0 {
		return styles.T().S().Muted.Render(render.TruncateAndPad(m.empty, width))
	}

	start, end := m.cursor.Window(len(m.rows), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor.Pos(), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r Row, selected bool, width int) string {
	// Prefix: "▶ " for the current track, "  " otherwise
	prefix := "  "
	if r.Current {
		prefix = "▶ "
	}

	suffix := ""
	if r.Favorite {
		suffix = " " + icons.Favorite()
	}

	labelWidth := max(width-runewidth.StringWidth(prefix)-runewidth.StringWidth(suffix), 0)
	text := prefix + render.TruncateAndPad(r.Label, labelWidth)

	st := styles.T().S()
	style := st.Base
	switch {
	case selected && m.IsFocused():
		style = st.Cursor
	case r.Current:
		style = st.Playing
	}

	line := style.Render(text)
	if suffix != "" {
		line += st.Favorite.Render(suffix)
	}
	return line
}
