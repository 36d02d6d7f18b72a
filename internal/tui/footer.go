package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.statusMsg != "" {
		style := m.theme.status
		if m.err != nil {
			style = m.theme.statusError
		}
		left = style.Render(m.statusMsg)
	}

	var hints []hint
	if m.onHome() {
		hints = m.home.hints()
	}
	if !m.onHome() || !m.home.editing() {
		hints = append(hints,
			hint{fmt.Sprintf("1-%d", len(m.tabs)), "tabs"},
			hint{"q", "quit"},
		)
	}
	right = renderHints(m.theme, hints)

	// Hints give way to the status message on narrow terminals.
	if lipgloss.Width(left)+lipgloss.Width(right) > m.width {
		right = truncate(right, max(m.width-lipgloss.Width(left), 0))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(1).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(th *Theme, hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			th.hintKey.Render(h.key)+" "+th.hintDesc.Render(h.desc))
	}
	return strings.Join(parts, th.hintDesc.Render("  "))
}
