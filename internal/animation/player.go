package animation

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a Player by one frame.
type FrameMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Player renders one animation with a loop mode. The loop mode passed to
// NewPlayer is always honored.
type Player struct {
	id      int
	tag     int
	anim    *Animation
	mode    LoopMode
	frame   int
	dir     int
	playing bool
}

// NewPlayer creates a stopped player positioned on the first frame.
func NewPlayer(anim *Animation, mode LoopMode) Player {
	return Player{
		id:   nextID(),
		anim: anim,
		mode: mode,
		dir:  1,
	}
}

// ID identifies the player in FrameMsg.
func (p Player) ID() int { return p.id }

// Mode returns the loop mode.
func (p Player) Mode() LoopMode { return p.mode }

// Frame returns the index of the current frame.
func (p Player) Frame() int { return p.frame }

// Playing reports whether frames are still being scheduled.
func (p Player) Playing() bool { return p.playing }

// Play starts (or restarts) playback from the first frame.
func (p *Player) Play() tea.Cmd {
	if p.anim == nil {
		return nil
	}
	p.frame = 0
	p.dir = 1
	p.playing = true
	p.tag++
	return p.tick()
}

// Stop halts playback on the current frame. Ticks already in flight are
// discarded when they arrive.
func (p *Player) Stop() {
	p.playing = false
	p.tag++
}

func (p Player) tick() tea.Cmd {
	id, tag := p.id, p.tag
	interval := time.Second / time.Duration(p.anim.FPS)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag, Time: t}
	})
}

// Update advances the animation when it receives its own FrameMsg.
func (p Player) Update(msg tea.Msg) (Player, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != p.id || fm.tag != p.tag || !p.playing {
		return p, nil
	}

	p.advance()
	if !p.playing {
		return p, nil
	}
	return p, p.tick()
}

func (p *Player) advance() {
	last := len(p.anim.Frames) - 1
	if last <= 0 {
		if p.mode == PlayOnce {
			p.playing = false
		}
		return
	}

	switch p.mode {
	case Loop:
		p.frame = (p.frame + 1) % (last + 1)
	case AutoReverse:
		next := p.frame + p.dir
		if next < 0 || next > last {
			p.dir = -p.dir
			next = p.frame + p.dir
		}
		p.frame = next
	default:
		if p.frame < last {
			p.frame++
		}
		if p.frame == last {
			p.playing = false
		}
	}
}

// View fits the current frame within width×height cells: centered when
// smaller, clipped when larger.
func (p Player) View(width, height int) string {
	if p.anim == nil || width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(p.anim.Frames[p.frame], "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}
