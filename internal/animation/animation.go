// Package animation plays named frame animations inside Bubble Tea views.
//
// Animations are TOML documents holding a list of frames and a frame
// rate. The built-in set is embedded in the binary; hosts may load their
// own from any fs.FS.
package animation

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed animations/*.toml
var builtinFS embed.FS

const defaultFPS = 12

var (
	// ErrNotFound is returned when no animation has the requested name.
	ErrNotFound = errors.New("animation not found")
	// ErrEmpty is returned for documents without frames.
	ErrEmpty = errors.New("animation has no frames")
	// ErrInvalidLoopMode is returned by ParseLoopMode for unknown names.
	ErrInvalidLoopMode = errors.New("invalid loop mode")
)

// Animation is a decoded animation document.
type Animation struct {
	Name   string   `toml:"name"`
	FPS    int      `toml:"fps"`
	Frames []string `toml:"frames"`
}

// ────────────────────────────────────────────────────────────
// Loop modes
// ────────────────────────────────────────────────────────────

// LoopMode controls what happens after the last frame.
type LoopMode int

const (
	PlayOnce LoopMode = iota
	Loop
	AutoReverse
)

func (m LoopMode) String() string {
	switch m {
	case Loop:
		return "loop"
	case AutoReverse:
		return "autoreverse"
	default:
		return "once"
	}
}

// ParseLoopMode converts a configuration value into a LoopMode.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once", "play_once", "playonce":
		return PlayOnce, nil
	case "loop":
		return Loop, nil
	case "autoreverse", "auto_reverse":
		return AutoReverse, nil
	}
	return PlayOnce, fmt.Errorf("%w: %q", ErrInvalidLoopMode, s)
}

// ────────────────────────────────────────────────────────────
// Registry
// ────────────────────────────────────────────────────────────

// Registry resolves animation names to documents stored as <name>.toml.
type Registry struct {
	fsys fs.FS
	dir  string
}

// NewRegistry creates a registry reading documents from dir inside fsys.
func NewRegistry(fsys fs.FS, dir string) *Registry {
	return &Registry{fsys: fsys, dir: dir}
}

// Builtin returns the registry of animations shipped with the binary.
func Builtin() *Registry {
	return NewRegistry(builtinFS, "animations")
}

// Load decodes the animation with the given name.
func (r *Registry) Load(name string) (*Animation, error) {
	path := name + ".toml"
	if r.dir != "" {
		path = r.dir + "/" + path
	}

	var a Animation
	if _, err := toml.DecodeFS(r.fsys, path, &a); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("decoding animation %s: %w", name, err)
	}

	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	if a.Name == "" {
		a.Name = name
	}
	if a.FPS <= 0 {
		a.FPS = defaultFPS
	}
	return &a, nil
}

// Names lists the animations available in the registry.
func (r *Registry) Names() ([]string, error) {
	dir := r.dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("listing animations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".toml"); ok && !e.IsDir() {
			names = append(names, n)
		}
	}
	return names, nil
}
