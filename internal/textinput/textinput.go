// Package textinput implements a multi-line text input with a placeholder
// overlay that ends editing when the user commits a newline.
//
// The content is owned by the host through a Binding. The widget reads the
// binding before every update and render, and writes it back after every
// accepted edit, so a host can reset or replace the text at any time.
package textinput

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// State
// ────────────────────────────────────────────────────────────

// State is the editing state of an input.
type State int

const (
	StateIdle State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// FocusChangedMsg is emitted whenever an input gains or loses focus.
type FocusChangedMsg struct {
	ID      int
	Focused bool
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ────────────────────────────────────────────────────────────
// Binding
// ────────────────────────────────────────────────────────────

// Binding is a two-way channel to a string owned by the host.
type Binding interface {
	Get() string
	Set(string)
}

type pointerBinding struct{ p *string }

func (b pointerBinding) Get() string  { return *b.p }
func (b pointerBinding) Set(s string) { *b.p = s }

// Bind returns a Binding backed by the string p points to.
func Bind(p *string) Binding {
	return pointerBinding{p: p}
}

// ────────────────────────────────────────────────────────────
// Appearance
// ────────────────────────────────────────────────────────────

// Font is the terminal equivalent of a font descriptor.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

func (f Font) apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

var (
	// DefaultTextColor leaves text in the terminal's own foreground.
	DefaultTextColor lipgloss.TerminalColor = lipgloss.NoColor{}

	// DefaultPlaceholderColor is a light gray.
	DefaultPlaceholderColor lipgloss.TerminalColor = lipgloss.Color("#AAAAAA")
)

// Option configures a Model at construction.
type Option func(*Model)

// WithTextColor sets the text color. A nil color keeps the default.
func WithTextColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) {
		if c != nil {
			m.textColor = c
		}
	}
}

// WithPlaceholderColor sets the placeholder color. A nil color keeps the default.
func WithPlaceholderColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) {
		if c != nil {
			m.placeholderColor = c
		}
	}
}

// WithFont sets the font used for both text and placeholder.
func WithFont(f Font) Option {
	return func(m *Model) { m.font = f }
}

// WithSize sets the width and height of the text region in cells.
func WithSize(width, height int) Option {
	return func(m *Model) { m.SetSize(width, height) }
}

// OnChange registers a handler called with the full content after every edit.
func OnChange(fn func(string)) Option {
	return func(m *Model) { m.onChange = fn }
}

// OnFocusChange registers a handler called on every focus transition.
func OnFocusChange(fn func(bool)) Option {
	return func(m *Model) { m.onFocusChange = fn }
}

// ────────────────────────────────────────────────────────────
// Keys
// ────────────────────────────────────────────────────────────

// KeyMap is the set of editing keys an input understands. Any other
// printable key is inserted as typed.
type KeyMap struct {
	CharacterForward        key.Binding
	CharacterBackward       key.Binding
	WordForward             key.Binding
	WordBackward            key.Binding
	LineStart               key.Binding
	LineEnd                 key.Binding
	LineUp                  key.Binding
	LineDown                key.Binding
	DeleteCharacterBackward key.Binding
	DeleteCharacterForward  key.Binding
	DeleteBeforeCursor      key.Binding
	DeleteAfterCursor       key.Binding
}

// DefaultKeyMap follows the usual readline bindings.
var DefaultKeyMap = KeyMap{
	CharacterForward:        key.NewBinding(key.WithKeys("right", "ctrl+f")),
	CharacterBackward:       key.NewBinding(key.WithKeys("left", "ctrl+b")),
	WordForward:             key.NewBinding(key.WithKeys("alt+right", "alt+f")),
	WordBackward:            key.NewBinding(key.WithKeys("alt+left", "alt+b")),
	LineStart:               key.NewBinding(key.WithKeys("home", "ctrl+a")),
	LineEnd:                 key.NewBinding(key.WithKeys("end", "ctrl+e")),
	LineUp:                  key.NewBinding(key.WithKeys("up", "ctrl+p")),
	LineDown:                key.NewBinding(key.WithKeys("down", "ctrl+n")),
	DeleteCharacterBackward: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
	DeleteCharacterForward:  key.NewBinding(key.WithKeys("delete", "ctrl+d")),
	DeleteBeforeCursor:      key.NewBinding(key.WithKeys("ctrl+u")),
	DeleteAfterCursor:       key.NewBinding(key.WithKeys("ctrl+k")),
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

const (
	defaultWidth  = 40
	defaultHeight = 6
)

// Model is a placeholder text input.
type Model struct {
	id      int
	binding Binding
	KeyMap  KeyMap

	// buf holds the content exactly as exchanged with the binding.
	buf buffer
	// last is the content most recently exchanged with the binding.
	last string

	focused bool
	cursor  cursor.Model
	width   int
	height  int
	// offset is the first visible row.
	offset int

	placeholder      string
	textColor        lipgloss.TerminalColor
	placeholderColor lipgloss.TerminalColor
	font             Font

	onChange      func(string)
	onFocusChange func(bool)
}

// New creates an idle input bound to content.
func New(content Binding, placeholder string, opts ...Option) Model {
	m := Model{
		id:               nextID(),
		binding:          content,
		KeyMap:           DefaultKeyMap,
		cursor:           cursor.New(),
		width:            defaultWidth,
		height:           defaultHeight,
		placeholder:      placeholder,
		textColor:        DefaultTextColor,
		placeholderColor: DefaultPlaceholderColor,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.last = content.Get()
	m.buf.set(m.last)
	m.scroll()
	return m
}

// pull copies host-side changes into the buffer. The host's string is
// taken as is.
func (m *Model) pull() {
	if v := m.binding.Get(); v != m.last {
		m.buf.set(v)
		m.last = v
		m.scroll()
	}
}

// push publishes the buffer to the host if an edit changed it.
func (m *Model) push() {
	v := m.buf.String()
	if v == m.last {
		return
	}
	m.last = v
	m.binding.Set(v)
	if m.onChange != nil {
		m.onChange(v)
	}
}

// ShouldAcceptEdit reports whether a key event may reach the text region.
// The only rejected edit is a pending insertion of exactly "\n", which a
// terminal may deliver as a carriage return.
func ShouldAcceptEdit(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyCtrlJ:
		return false
	case tea.KeyRunes:
		s := string(msg.Runes)
		return s != "\n" && s != "\r"
	}
	return true
}

// Update handles key events and cursor blinks for the input. Only an
// accepted key event can change the content.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m.pull()

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.cursor, cmd = m.cursor.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}
	if !ShouldAcceptEdit(k) {
		return m, m.Blur()
	}
	if !m.edit(k) {
		return m, nil
	}

	m.push()
	m.scroll()
	m.cursor.Blink = false
	return m, m.cursor.BlinkCmd()
}

// edit applies one key event to the buffer and reports whether it was
// handled.
func (m *Model) edit(msg tea.KeyMsg) bool {
	b := &m.buf
	switch {
	case key.Matches(msg, m.KeyMap.DeleteCharacterBackward):
		b.backspace()
	case key.Matches(msg, m.KeyMap.DeleteCharacterForward):
		b.deleteForward()
	case key.Matches(msg, m.KeyMap.DeleteBeforeCursor):
		b.deleteToLineStart()
	case key.Matches(msg, m.KeyMap.DeleteAfterCursor):
		b.deleteToLineEnd()
	case key.Matches(msg, m.KeyMap.CharacterBackward):
		b.left()
	case key.Matches(msg, m.KeyMap.CharacterForward):
		b.right()
	case key.Matches(msg, m.KeyMap.WordBackward):
		b.wordLeft()
	case key.Matches(msg, m.KeyMap.WordForward):
		b.wordRight()
	case key.Matches(msg, m.KeyMap.LineStart):
		b.home()
	case key.Matches(msg, m.KeyMap.LineEnd):
		b.end()
	case key.Matches(msg, m.KeyMap.LineUp):
		b.up()
	case key.Matches(msg, m.KeyMap.LineDown):
		b.down()
	case msg.Type == tea.KeyRunes && !msg.Alt:
		b.insert(msg.Runes)
	case msg.Type == tea.KeySpace:
		b.insert([]rune{' '})
	case msg.Type == tea.KeyTab:
		b.insert([]rune{'\t'})
	default:
		return false
	}
	return true
}

// Focus moves the input to the editing state.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	blink := m.cursor.Focus()
	return tea.Batch(blink, m.focusChanged(true))
}

// Blur moves the input to the idle state. It covers newline commits,
// dismiss requests from the host, and focus moving to another control.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.cursor.Blur()
	return m.focusChanged(false)
}

func (m *Model) focusChanged(focused bool) tea.Cmd {
	if m.onFocusChange != nil {
		m.onFocusChange(focused)
	}
	id := m.id
	return func() tea.Msg {
		return FocusChangedMsg{ID: id, Focused: focused}
	}
}

// SetSize resizes the text region.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.scroll()
}

// ID identifies the input in FocusChangedMsg.
func (m Model) ID() int { return m.id }

// Value returns the bound content.
func (m Model) Value() string { return m.binding.Get() }

// Placeholder returns the hint text.
func (m Model) Placeholder() string { return m.placeholder }

// Focused reports whether the input is editing.
func (m Model) Focused() bool { return m.focused }

// State returns the current editing state.
func (m Model) State() State {
	if m.focused {
		return StateEditing
	}
	return StateIdle
}

// PlaceholderVisible reports whether the placeholder overlay is shown.
func (m Model) PlaceholderVisible() bool {
	return m.binding.Get() == ""
}

// View renders the input.
func (m Model) View() string {
	m.pull()
	if !m.PlaceholderVisible() {
		return m.viewText()
	}

	style := m.font.apply(lipgloss.NewStyle().Foreground(m.placeholderColor)).
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height)

	var cur string
	if m.focused {
		c := m.cursor
		c.SetChar(" ")
		cur = c.View()
	}
	return style.Render(cur + m.placeholder)
}
