package textinput

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const tabCells = 4

// cell returns how r is drawn. Content keeps r unchanged; only the screen
// sees tabs expanded and control runes in caret notation.
func cell(r rune) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", tabCells)
	case r < 0x20:
		return "^" + string(r+'@')
	case r == 0x7f:
		return "^?"
	case unicode.IsControl(r):
		return string(unicode.ReplacementChar)
	}
	return string(r)
}

func cells(rs []rune) string {
	var sb strings.Builder
	for _, r := range rs {
		sb.WriteString(cell(r))
	}
	return sb.String()
}

// row is one screen line: the runes text[start:end]. last is set when the
// row ends its line of content rather than wrapping.
type row struct {
	start, end int
	last       bool
}

func layoutRows(text []rune, width int) []row {
	var rows []row
	start, used := 0, 0
	for i, r := range text {
		if r == '\n' {
			rows = append(rows, row{start: start, end: i, last: true})
			start, used = i+1, 0
			continue
		}
		w := ansi.StringWidth(cell(r))
		if used > 0 && used+w > width {
			rows = append(rows, row{start: start, end: i})
			start, used = i, 0
		}
		used += w
	}
	return append(rows, row{start: start, end: len(text), last: true})
}

func cursorRow(rows []row, pos int) int {
	for i, r := range rows {
		if pos >= r.start && (pos < r.end || pos == r.end && r.last) {
			return i
		}
	}
	return len(rows) - 1
}

// wrapWidth keeps one column free for the cursor at the end of a row.
func (m Model) wrapWidth() int {
	return max(m.width-1, 1)
}

// scroll moves the visible window so the cursor row is on screen.
func (m *Model) scroll() {
	rows := layoutRows(m.buf.text, m.wrapWidth())
	cr := cursorRow(rows, m.buf.pos)
	if cr < m.offset {
		m.offset = cr
	}
	if cr >= m.offset+m.height {
		m.offset = cr - m.height + 1
	}
	m.offset = clampInt(m.offset, 0, max(len(rows)-m.height, 0))
}

func (m Model) viewText() string {
	text := m.font.apply(lipgloss.NewStyle().Foreground(m.textColor))
	rows := layoutRows(m.buf.text, m.wrapWidth())
	cr := cursorRow(rows, m.buf.pos)
	first := clampInt(m.offset, 0, max(len(rows)-m.height, 0))

	lines := make([]string, 0, m.height)
	for i := first; i < len(rows) && i < first+m.height; i++ {
		r := rows[i]
		if i != cr || !m.focused {
			lines = append(lines, text.Render(cells(m.buf.text[r.start:r.end])))
			continue
		}

		pos, under, after := m.buf.pos, " ", m.buf.pos
		if pos < r.end {
			under = cell(m.buf.text[pos])
			after = pos + 1
		}
		c := m.cursor
		c.TextStyle = text
		c.SetChar(under)
		lines = append(lines, text.Render(cells(m.buf.text[r.start:pos]))+
			c.View()+
			text.Render(cells(m.buf.text[after:r.end])))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(strings.Join(lines, "\n"))
}
