package animation

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func testAnimation(frames ...string) *Animation {
	return &Animation{Name: "test", FPS: 10, Frames: frames}
}

// step delivers the player's own frame message n times.
func step(p Player, n int) Player {
	for i := 0; i < n; i++ {
		p, _ = p.Update(FrameMsg{ID: p.id, tag: p.tag})
	}
	return p
}

func TestBuiltinAnimationsLoad(t *testing.T) {
	reg := Builtin()
	names, err := reg.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected built-in animations")
	}

	for _, name := range names {
		a, err := reg.Load(name)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		if len(a.Frames) == 0 || a.FPS <= 0 {
			t.Errorf("animation %s: frames=%d fps=%d", name, len(a.Frames), a.FPS)
		}
	}
}

func TestLoadMissingAnimation(t *testing.T) {
	_, err := Builtin().Load("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"spin.toml":  {Data: []byte(`frames = ["|", "/", "-", "\\"]`)},
		"empty.toml": {Data: []byte(`name = "empty"`)},
		"bad.toml":   {Data: []byte(`frames = [`)},
	}
	reg := NewRegistry(fsys, "")

	a, err := reg.Load("spin")
	if err != nil {
		t.Fatalf("Load(spin) failed: %v", err)
	}
	if a.Name != "spin" || a.FPS != defaultFPS || len(a.Frames) != 4 {
		t.Errorf("unexpected defaults: %+v", a)
	}

	if _, err := reg.Load("empty"); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := reg.Load("bad"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestParseLoopMode(t *testing.T) {
	for in, want := range map[string]LoopMode{
		"once": PlayOnce, "LOOP": Loop, " autoreverse ": AutoReverse,
	} {
		got, err := ParseLoopMode(in)
		if err != nil || got != want {
			t.Errorf("ParseLoopMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLoopMode("forever"); !errors.Is(err, ErrInvalidLoopMode) {
		t.Errorf("expected ErrInvalidLoopMode, got %v", err)
	}
}

// TestPlayOnceHonored checks that a caller asking for a single pass gets
// one, rather than being forced into looping.
func TestPlayOnceHonored(t *testing.T) {
	p := NewPlayer(testAnimation("a", "b", "c"), PlayOnce)
	if cmd := p.Play(); cmd == nil {
		t.Fatalf("expected a tick command from Play")
	}

	p = step(p, 2)
	if p.Frame() != 2 || p.Playing() {
		t.Fatalf("expected stop on last frame, got frame=%d playing=%v", p.Frame(), p.Playing())
	}

	p, cmd := p.Update(FrameMsg{ID: p.id, tag: p.tag})
	if cmd != nil || p.Frame() != 2 {
		t.Errorf("finished player kept advancing")
	}
}

func TestLoopWraps(t *testing.T) {
	p := NewPlayer(testAnimation("a", "b", "c"), Loop)
	p.Play()

	p = step(p, 4)
	if p.Frame() != 1 || !p.Playing() {
		t.Errorf("expected frame=1 playing, got frame=%d playing=%v", p.Frame(), p.Playing())
	}
}

func TestAutoReverseBounces(t *testing.T) {
	p := NewPlayer(testAnimation("a", "b", "c"), AutoReverse)
	p.Play()

	var got []int
	for i := 0; i < 6; i++ {
		p = step(p, 1)
		got = append(got, p.Frame())
	}
	want := []int{1, 2, 1, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected frames %v, got %v", want, got)
		}
	}
}

func TestStaleFramesIgnored(t *testing.T) {
	p := NewPlayer(testAnimation("a", "b"), Loop)
	p.Play()
	stale := FrameMsg{ID: p.id, tag: p.tag}

	p.Stop()
	p, cmd := p.Update(stale)
	if cmd != nil || p.Frame() != 0 {
		t.Errorf("stopped player advanced on stale tick")
	}

	other := NewPlayer(testAnimation("x", "y"), Loop)
	other.Play()
	p.Play()
	p, _ = p.Update(FrameMsg{ID: other.id, tag: other.tag})
	if p.Frame() != 0 {
		t.Errorf("player advanced on another player's tick")
	}
}

func TestViewFitsBounds(t *testing.T) {
	p := NewPlayer(testAnimation("abcdef\nghijkl\nmnopqr"), Loop)

	view := p.View(4, 2)
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), view)
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w != 4 {
			t.Errorf("expected line width 4, got %d (%q)", w, l)
		}
	}

	big := p.View(10, 5)
	if lipgloss.Height(big) != 5 || !strings.Contains(big, "ghijkl") {
		t.Errorf("expected centered frame in 10x5, got %q", big)
	}

	if p.View(0, 3) != "" {
		t.Errorf("expected empty view for zero width")
	}
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	p := NewPlayer(testAnimation("a", "b"), Loop)
	p.Play()
	p, cmd := p.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if cmd != nil || p.Frame() != 0 {
		t.Errorf("player reacted to unrelated message")
	}
}
