package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/traduzai/internal/animation"
	"github.com/Mr-Dark-debug/traduzai/internal/textinput"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tagline           = "Traduzir textos e áudio nunca foi tão fácil."
	sourcePlaceholder = "Digite o texto original"
	targetPlaceholder = "A tradução aparecerá aqui"
)

const (
	inputSource = iota
	inputTarget
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type copiedMsg struct{ n int }

// document holds the texts owned by the home screen and bound into its
// inputs.
type document struct {
	sourceText     string
	translatedText string
}

// ────────────────────────────────────────────────────────────
// Keys
// ────────────────────────────────────────────────────────────

type homeKeyMap struct {
	Edit       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Dismiss    key.Binding
	SourceLang key.Binding
	TargetLang key.Binding
	Clear      key.Binding
	Copy       key.Binding
}

func defaultHomeKeys() homeKeyMap {
	return homeKeyMap{
		Edit:       key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		SourceLang: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "source")),
		TargetLang: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "target")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	}
}

// ────────────────────────────────────────────────────────────
// Layout
// ────────────────────────────────────────────────────────────

// homeLayout positions every interactive region of the home screen,
// relative to the top-left of the body.
type homeLayout struct {
	panelWidth  int
	innerWidth  int
	innerHeight int
	inputHeight int

	sourceMenu   rect
	sourceButton rect
	sourceInput  rect
	targetMenu   rect
	targetButton rect
	targetInput  rect
}

const (
	headerLines = 3 // brand, tagline, spacer
	buttonWidth = 3
)

func layoutHome(width, height int) homeLayout {
	l := homeLayout{
		panelWidth:  max(width, 8),
		innerWidth:  max(width-4, 4),
		innerHeight: max(height-headerLines-2, 5),
	}
	l.inputHeight = max((l.innerHeight-3)/2, 1)

	x, y := 2, headerLines+1
	l.sourceMenu = rect{x, y, l.innerWidth, 1}
	l.sourceButton = rect{x + l.innerWidth - buttonWidth, y, buttonWidth, 1}
	l.sourceInput = rect{x, y + 1, l.innerWidth, l.inputHeight}

	y += 1 + l.inputHeight + 1
	l.targetMenu = rect{x, y, l.innerWidth, 1}
	l.targetButton = rect{x + l.innerWidth - buttonWidth, y, buttonWidth, 1}
	l.targetInput = rect{x, y + 1, l.innerWidth, l.inputHeight}
	return l
}

// ────────────────────────────────────────────────────────────
// Screen
// ────────────────────────────────────────────────────────────

// homeScreen is the translation screen: two language menus, the source
// input with a clear action and the target input with a copy action.
type homeScreen struct {
	theme     *Theme
	keys      homeKeyMap
	languages []string
	source    int
	target    int

	doc    *document
	inputs [2]textinput.Model
	header animation.Player

	width  int
	height int
}

func newHomeScreen(th *Theme, languages []string, source, target string, header animation.Player) homeScreen {
	doc := &document{}
	opts := []textinput.Option{
		textinput.WithTextColor(th.colorTextDim),
		textinput.WithPlaceholderColor(th.colorPlaceholder),
		textinput.WithFont(textinput.Font{}),
	}

	return homeScreen{
		theme:     th,
		keys:      defaultHomeKeys(),
		languages: languages,
		source:    indexOf(languages, source),
		target:    indexOf(languages, target),
		doc:       doc,
		inputs: [2]textinput.Model{
			textinput.New(textinput.Bind(&doc.sourceText), sourcePlaceholder, opts...),
			textinput.New(textinput.Bind(&doc.translatedText), targetPlaceholder, opts...),
		},
		header: header,
	}
}

func (h *homeScreen) init() tea.Cmd {
	return h.header.Play()
}

func (h *homeScreen) setSize(width, height int) {
	h.width, h.height = width, height
	l := layoutHome(width, height)
	for i := range h.inputs {
		h.inputs[i].SetSize(l.innerWidth, l.inputHeight)
	}
}

// focused returns the index of the editing input, or -1.
func (h homeScreen) focused() int {
	for i, in := range h.inputs {
		if in.Focused() {
			return i
		}
	}
	return -1
}

func (h homeScreen) editing() bool {
	return h.focused() >= 0
}

func (h homeScreen) sourceLanguage() string { return h.languages[h.source] }
func (h homeScreen) targetLanguage() string { return h.languages[h.target] }

func (h *homeScreen) focus(i int) tea.Cmd {
	var cmds []tea.Cmd
	for j := range h.inputs {
		if j != i {
			cmds = append(cmds, h.inputs[j].Blur())
		}
	}
	cmds = append(cmds, h.inputs[i].Focus())
	return tea.Batch(cmds...)
}

// dismissKeyboard ends editing in every input.
func (h *homeScreen) dismissKeyboard() tea.Cmd {
	var cmds []tea.Cmd
	for i := range h.inputs {
		cmds = append(cmds, h.inputs[i].Blur())
	}
	return tea.Batch(cmds...)
}

func (h *homeScreen) clearSource() {
	h.doc.sourceText = ""
}

func (h homeScreen) copyTranslation() tea.Cmd {
	text := h.doc.translatedText
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{n: len([]rune(text))}
	}
}

func (h homeScreen) update(msg tea.Msg) (homeScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return h.handleClick(msg.X, msg.Y)
		}
		return h, nil

	case animation.FrameMsg:
		var cmd tea.Cmd
		h.header, cmd = h.header.Update(msg)
		return h, cmd
	}

	// Cursor blinks and anything else the inputs may care about.
	var cmds []tea.Cmd
	for i := range h.inputs {
		var cmd tea.Cmd
		h.inputs[i], cmd = h.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return h, tea.Batch(cmds...)
}

func (h homeScreen) handleKey(msg tea.KeyMsg) (homeScreen, tea.Cmd) {
	// ── Editing ──

	if i := h.focused(); i >= 0 {
		switch {
		case key.Matches(msg, h.keys.Next):
			return h, h.focus(cycle(i, 1, len(h.inputs)))
		case key.Matches(msg, h.keys.Prev):
			return h, h.focus(cycle(i, -1, len(h.inputs)))
		case key.Matches(msg, h.keys.Dismiss):
			return h, h.dismissKeyboard()
		}
		var cmd tea.Cmd
		h.inputs[i], cmd = h.inputs[i].Update(msg)
		return h, cmd
	}

	// ── Idle ──

	switch {
	case key.Matches(msg, h.keys.Edit), key.Matches(msg, h.keys.Next):
		return h, h.focus(inputSource)
	case key.Matches(msg, h.keys.Prev):
		return h, h.focus(inputTarget)
	case key.Matches(msg, h.keys.SourceLang):
		h.source = cycle(h.source, 1, len(h.languages))
	case key.Matches(msg, h.keys.TargetLang):
		h.target = cycle(h.target, 1, len(h.languages))
	case key.Matches(msg, h.keys.Clear):
		h.clearSource()
	case key.Matches(msg, h.keys.Copy):
		return h, h.copyTranslation()
	}
	return h, nil
}

// handleClick maps a press to the region under it. A press outside every
// input dismisses the keyboard.
func (h homeScreen) handleClick(x, y int) (homeScreen, tea.Cmd) {
	l := layoutHome(h.width, h.height)

	switch {
	case l.sourceInput.contains(x, y):
		return h, h.focus(inputSource)
	case l.targetInput.contains(x, y):
		return h, h.focus(inputTarget)
	case l.sourceButton.contains(x, y):
		h.clearSource()
	case l.targetButton.contains(x, y):
		return h, tea.Batch(h.dismissKeyboard(), h.copyTranslation())
	case l.sourceMenu.contains(x, y):
		h.source = cycle(h.source, 1, len(h.languages))
	case l.targetMenu.contains(x, y):
		h.target = cycle(h.target, 1, len(h.languages))
	}
	return h, h.dismissKeyboard()
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (h homeScreen) view() string {
	th := h.theme
	l := layoutHome(h.width, h.height)

	brand := lipgloss.JoinHorizontal(lipgloss.Center,
		h.header.View(6, 1), " ", th.brand.Render("TraduzAi"))
	header := lipgloss.JoinVertical(lipgloss.Center,
		brand,
		th.tagline.Render(truncate(tagline, h.width)),
		"")
	header = lipgloss.PlaceHorizontal(h.width, lipgloss.Center, header)

	body := lipgloss.JoinVertical(lipgloss.Left,
		h.menuBar(h.sourceLanguage(), "✕", l.innerWidth),
		h.inputs[inputSource].View(),
		th.divider.Render(strings.Repeat("─", l.innerWidth)),
		h.menuBar(h.targetLanguage(), "⧉", l.innerWidth),
		h.inputs[inputTarget].View(),
	)
	panel := th.panel.
		Width(l.panelWidth - 2).
		Height(l.innerHeight).
		MaxHeight(l.innerHeight + 2).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, panel)
}

// menuBar renders a language menu label with an action button on the
// right edge.
func (h homeScreen) menuBar(language, button string, width int) string {
	th := h.theme
	left := th.menuLabel.Render(truncate(language+" ▾", width-buttonWidth-1))
	right := th.button.Width(buttonWidth).Align(lipgloss.Center).Render(button)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

func (h homeScreen) hints() []hint {
	bindings := []key.Binding{h.keys.Edit, h.keys.SourceLang, h.keys.TargetLang, h.keys.Clear, h.keys.Copy}
	if h.editing() {
		bindings = []key.Binding{h.keys.Next, h.keys.Dismiss}
	}

	hints := make([]hint, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint{b.Help().Key, b.Help().Desc})
	}
	return hints
}
