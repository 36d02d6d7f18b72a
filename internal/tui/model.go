package tui

import (
	"fmt"
	"strconv"

	"github.com/Mr-Dark-debug/traduzai/internal/animation"
	"github.com/Mr-Dark-debug/traduzai/internal/config"
	"github.com/Mr-Dark-debug/traduzai/internal/textinput"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the height of the tab bar (rule + labels) plus the footer.
const chromeLines = 3

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for TraduzAi.
// Screens keep their own state; the root owns navigation, the splash
// screen and the status line.
type Model struct {
	theme   *Theme
	tabs    []tabItem
	active  int
	splash  splash
	home    homeScreen
	startup tea.Cmd

	width  int
	height int

	// Status
	statusMsg string
	err       error
}

// NewModel builds the application from configuration, loading its
// animations from reg.
func NewModel(cfg config.Config, reg *animation.Registry) (Model, error) {
	splashAnim, err := reg.Load(cfg.Splash.Animation)
	if err != nil {
		return Model{}, fmt.Errorf("loading splash animation: %w", err)
	}
	headerAnim, err := reg.Load(cfg.Animation.Header)
	if err != nil {
		return Model{}, fmt.Errorf("loading header animation: %w", err)
	}

	theme := NewTheme(cfg.Theme)
	mode := cfg.LoopMode()

	m := Model{
		theme:  theme,
		tabs:   defaultTabs,
		splash: newSplash(cfg.Splash.Delay, animation.NewPlayer(splashAnim, mode)),
		home: newHomeScreen(theme, cfg.Languages.Available,
			cfg.Languages.Source, cfg.Languages.Target,
			animation.NewPlayer(headerAnim, mode)),
	}
	m.startup = tea.Batch(m.splash.schedule(), m.home.init())
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.startup
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.setSize(msg.Width, m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case splashDoneMsg:
		m.splash, _ = m.splash.update(msg)
		return m, nil

	case animation.FrameMsg:
		var splashCmd, homeCmd tea.Cmd
		m.splash, splashCmd = m.splash.update(msg)
		m.home, homeCmd = m.home.update(msg)
		return m, tea.Batch(splashCmd, homeCmd)

	case copiedMsg:
		m.err = nil
		m.statusMsg = fmt.Sprintf("Tradução copiada (%d caracteres)", msg.n)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Erro: %v", msg.err)
		return m, nil

	case textinput.FocusChangedMsg:
		if msg.Focused {
			m.statusMsg = ""
		}
	}

	var cmd tea.Cmd
	m.home, cmd = m.home.update(msg)
	return m, cmd
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key skips the splash.
	if m.splash.visible {
		m.splash.dismiss()
		return m, nil
	}

	// An editing input gets every key.
	if m.onHome() && m.home.editing() {
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "ctrl+right", "]":
		return m, m.selectTab(cycle(m.active, 1, len(m.tabs)))
	case "ctrl+left", "[":
		return m, m.selectTab(cycle(m.active, -1, len(m.tabs)))
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.tabs) {
		return m, m.selectTab(n - 1)
	}

	if m.onHome() {
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse routes presses to the tab bar or the active screen.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.splash.visible {
		return m, nil
	}

	body := m.bodyHeight()
	switch {
	case msg.Y < body:
		if m.onHome() {
			var cmd tea.Cmd
			m.home, cmd = m.home.update(msg)
			return m, cmd
		}
	case msg.Y < body+2:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := tabAt(msg.X, m.width, len(m.tabs)); i >= 0 {
				return m, m.selectTab(i)
			}
		}
	}
	return m, nil
}

// selectTab switches screens. Leaving the home screen ends any editing.
func (m *Model) selectTab(i int) tea.Cmd {
	if i == m.active {
		return nil
	}
	m.active = i
	if !m.onHome() {
		return m.home.dismissKeyboard()
	}
	return nil
}

func (m Model) onHome() bool {
	return m.tabs[m.active].tab == TabHome
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeLines, 0)
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.splash.visible {
		return renderSplash(&m.splash, m.theme, m.width, m.height)
	}

	bodyHeight := m.bodyHeight()

	var body string
	if m.onHome() {
		body = m.home.view()
	} else {
		body = renderComingSoon(m.tabs[m.active], m.theme, m.width, bodyHeight)
	}
	body = lipgloss.NewStyle().
		Background(m.theme.colorBg).
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	tabBar := renderTabBar(m.tabs, m.tabs[m.active].tab, m.theme, m.width)
	footer := renderFooter(&m)

	return lipgloss.JoinVertical(lipgloss.Left, body, tabBar, footer)
}
