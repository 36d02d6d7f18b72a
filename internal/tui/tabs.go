package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabHome Tab = iota
	TabText
	TabAudio
	TabDictionary
)

// tabItem describes one entry of the tab bar. The outline icon is shown
// while the tab is selected.
type tabItem struct {
	tab         Tab
	title       string
	icon        string
	outlineIcon string
}

var defaultTabs = []tabItem{
	{TabHome, "Início", "⌂", "⌂"},
	{TabText, "Texto", "▣", "□"},
	{TabAudio, "Áudio", "●", "○"},
	{TabDictionary, "Dicionário", "■", "▢"},
}

// tabAt maps a column of the tab bar to the tab drawn there. Cells match
// renderTabBar: width/n each, with the remainder in the last one.
func tabAt(x, width, n int) int {
	if width <= 0 || n == 0 || x < 0 || x >= width {
		return -1
	}
	cell := width / n
	if cell == 0 {
		return n - 1
	}
	return min(x/cell, n-1)
}

// renderTabBar draws the bottom navigation bar, one equal cell per tab:
//
//	⌂ Início   ▣ Texto   ● Áudio   ■ Dicionário
func renderTabBar(tabs []tabItem, selected Tab, th *Theme, width int) string {
	if len(tabs) == 0 || width <= 0 {
		return ""
	}

	var cells []string
	used := 0
	for i, t := range tabs {
		cellWidth := width / len(tabs)
		if i == len(tabs)-1 {
			cellWidth = width - used
		}
		used += cellWidth

		icon, style := t.icon, th.tabItem
		if t.tab == selected {
			icon, style = t.outlineIcon, th.tabSelected
		}
		label := truncate(icon+" "+t.title, cellWidth)
		cells = append(cells, style.Width(cellWidth).Align(lipgloss.Center).Render(label))
	}

	return th.tabBar.Width(width).Render(strings.Join(cells, ""))
}

// renderComingSoon fills screens whose features are not part of the shell.
func renderComingSoon(t tabItem, th *Theme, width, height int) string {
	msg := th.emptyState.Render(
		th.brand.Render(t.outlineIcon+"  "+t.title) + "\n\n" + "Em breve.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
