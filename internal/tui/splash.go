package tui

import (
	"time"

	"github.com/Mr-Dark-debug/traduzai/internal/animation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// splashDoneMsg ends the splash screen if its token is still current.
type splashDoneMsg struct{ token int }

// splash is the launch screen: a looping brand animation shown for a
// fixed delay, then dismissed once.
type splash struct {
	visible bool
	delay   time.Duration
	token   int
	player  animation.Player
}

func newSplash(delay time.Duration, player animation.Player) splash {
	return splash{visible: true, delay: delay, player: player}
}

// schedule starts the animation and the one-shot dismissal timer.
func (s *splash) schedule() tea.Cmd {
	s.token++
	token := s.token
	timer := tea.Tick(s.delay, func(time.Time) tea.Msg {
		return splashDoneMsg{token: token}
	})
	return tea.Batch(s.player.Play(), timer)
}

// cancel aborts the pending dismissal. The splash stays up until
// dismiss is called.
func (s *splash) cancel() {
	s.token++
}

// dismiss hides the splash immediately and drops any pending timer.
func (s *splash) dismiss() {
	s.cancel()
	s.visible = false
	s.player.Stop()
}

func (s splash) update(msg tea.Msg) (splash, tea.Cmd) {
	switch msg := msg.(type) {
	case splashDoneMsg:
		if msg.token == s.token && s.visible {
			s.dismiss()
		}
		return s, nil
	case animation.FrameMsg:
		var cmd tea.Cmd
		s.player, cmd = s.player.Update(msg)
		return s, cmd
	}
	return s, nil
}

func renderSplash(s *splash, th *Theme, width, height int) string {
	frame := s.player.View(width, height)
	return th.splash.Width(width).Height(height).Render(
		lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame))
}
