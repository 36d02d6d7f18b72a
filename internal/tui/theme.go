package tui

import (
	"github.com/Mr-Dark-debug/traduzai/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Theme
// ────────────────────────────────────────────────────────────
//
// All colors and styles live on a Theme built once at the composition
// root and passed down to every renderer. No ad-hoc color literals
// anywhere else.

// Theme is the style configuration of the whole application.
type Theme struct {
	colorBg          lipgloss.Color
	colorSurface     lipgloss.Color
	colorText        lipgloss.Color
	colorTextDim     lipgloss.Color
	colorPlaceholder lipgloss.Color
	colorAccent      lipgloss.Color
	colorStroke      lipgloss.Color
	colorTabBar      lipgloss.Color

	// Splash
	splash lipgloss.Style

	// Home header
	brand   lipgloss.Style
	tagline lipgloss.Style

	// Translation panel
	panel     lipgloss.Style
	menuLabel lipgloss.Style
	button    lipgloss.Style
	divider   lipgloss.Style

	// Tab bar
	tabBar      lipgloss.Style
	tabItem     lipgloss.Style
	tabSelected lipgloss.Style

	// Footer / status bar
	status      lipgloss.Style
	statusError lipgloss.Style
	hintKey     lipgloss.Style
	hintDesc    lipgloss.Style

	emptyState lipgloss.Style
}

// NewTheme builds a Theme from configured colors.
func NewTheme(c config.ThemeConfig) *Theme {
	t := &Theme{
		colorBg:          lipgloss.Color(c.Background),
		colorSurface:     lipgloss.Color(c.Surface),
		colorText:        lipgloss.Color(c.Text),
		colorTextDim:     lipgloss.Color(c.TextDim),
		colorPlaceholder: lipgloss.Color(c.Placeholder),
		colorAccent:      lipgloss.Color(c.Accent),
		colorStroke:      lipgloss.Color(c.Stroke),
		colorTabBar:      lipgloss.Color(c.TabBar),
	}

	t.splash = lipgloss.NewStyle().
		Background(t.colorSurface)

	t.brand = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.colorText)

	t.tagline = lipgloss.NewStyle().
		Foreground(t.colorTextDim)

	t.panel = lipgloss.NewStyle().
		Background(t.colorSurface).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.colorStroke).
		Padding(0, 1)

	t.menuLabel = lipgloss.NewStyle().
		Foreground(t.colorText)

	t.button = lipgloss.NewStyle().
		Foreground(t.colorAccent).
		Bold(true)

	t.divider = lipgloss.NewStyle().
		Foreground(t.colorStroke)

	// The tab bar keeps an opaque background and a top rule standing in
	// for the drop shadow.
	t.tabBar = lipgloss.NewStyle().
		Background(t.colorTabBar).
		Border(lipgloss.Border{Top: "▔"}, true, false, false, false).
		BorderForeground(t.colorStroke)

	t.tabItem = lipgloss.NewStyle().
		Foreground(t.colorTextDim).
		Background(t.colorTabBar)

	t.tabSelected = lipgloss.NewStyle().
		Foreground(t.colorAccent).
		Background(t.colorTabBar).
		Bold(true)

	t.status = lipgloss.NewStyle().
		Foreground(t.colorTextDim).
		Padding(0, 1)

	t.statusError = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF3B30")).
		Padding(0, 1)

	t.hintKey = lipgloss.NewStyle().
		Foreground(t.colorText).
		Bold(true)

	t.hintDesc = lipgloss.NewStyle().
		Foreground(t.colorTextDim)

	t.emptyState = lipgloss.NewStyle().
		Foreground(t.colorTextDim).
		Padding(1, 2)

	return t
}
