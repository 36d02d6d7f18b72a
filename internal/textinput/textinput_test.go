package textinput

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func focused(t *testing.T, m Model) Model {
	t.Helper()
	m.Focus()
	if !m.Focused() {
		t.Fatalf("expected input to be focused after Focus()")
	}
	return m
}

// TestTypingIsReflected verifies that every character of a newline-free
// string reaches the bound content unchanged.
func TestTypingIsReflected(t *testing.T) {
	inputs := []string{"Olá", "hello world", "ção é ü", "a-b_c/d?!"}

	for _, in := range inputs {
		content := ""
		m := focused(t, New(Bind(&content), "Digite o texto", WithSize(40, 3)))

		m = typeText(m, in)

		if content != in {
			t.Errorf("typed %q, content=%q", in, content)
		}
		if m.Value() != in {
			t.Errorf("typed %q, Value()=%q", in, m.Value())
		}
	}
}

// TestNewlineCommitEndsEditing covers the "draft" scenario: a committed
// newline is not inserted and the input becomes idle.
func TestNewlineCommitEndsEditing(t *testing.T) {
	content := "draft"
	var focusEvents []bool
	m := New(Bind(&content), "", OnFocusChange(func(f bool) {
		focusEvents = append(focusEvents, f)
	}))
	m = focused(t, m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if content != "draft" {
		t.Errorf("expected content=draft, got %q", content)
	}
	if m.State() != StateIdle {
		t.Errorf("expected state=idle, got %s", m.State())
	}
	if cmd == nil {
		t.Fatalf("expected a focus change command")
	}
	msg, ok := cmd().(FocusChangedMsg)
	if !ok {
		t.Fatalf("expected FocusChangedMsg, got %T", cmd())
	}
	if msg.Focused || msg.ID != m.ID() {
		t.Errorf("unexpected focus message %+v", msg)
	}
	if len(focusEvents) != 2 || focusEvents[0] != true || focusEvents[1] != false {
		t.Errorf("expected focus events [true false], got %v", focusEvents)
	}
}

func TestNewlineRuneIsRejected(t *testing.T) {
	content := "abc"
	m := focused(t, New(Bind(&content), ""))

	m, _ = m.Update(runes("\n"))
	if content != "abc" || m.Focused() {
		t.Errorf("expected rejected newline, got content=%q focused=%v", content, m.Focused())
	}

	m = focused(t, m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	if content != "abc" || m.Focused() {
		t.Errorf("expected rejected ctrl+j, got content=%q focused=%v", content, m.Focused())
	}
}

// TestPasteWithNewlinesPassesThrough checks that only an edit equal to
// "\n" is filtered.
func TestPasteWithNewlinesPassesThrough(t *testing.T) {
	content := ""
	m := focused(t, New(Bind(&content), ""))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true})

	if content != "a\nb" {
		t.Errorf("expected pasted content a\\nb, got %q", content)
	}
	if !m.Focused() {
		t.Errorf("paste must not end editing")
	}
}

func TestShouldAcceptEdit(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlJ}, false},
		{runes("\n"), false},
		{runes("\r"), false},
		{runes("a\tb"), true},
		{runes("x"), true},
		{runes("\n\n"), true},
		{tea.KeyMsg{Type: tea.KeyBackspace}, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, true},
	}
	for _, c := range cases {
		if got := ShouldAcceptEdit(c.msg); got != c.want {
			t.Errorf("ShouldAcceptEdit(%q) = %v, want %v", c.msg.String(), got, c.want)
		}
	}
}

// TestPlaceholderFollowsContent walks the "Olá" scenario: visible when
// empty, hidden after typing, visible again after an external reset.
func TestPlaceholderFollowsContent(t *testing.T) {
	content := ""
	m := New(Bind(&content), "Digite o texto", WithSize(40, 3))

	if !m.PlaceholderVisible() {
		t.Fatalf("expected placeholder visible for empty content")
	}
	if !strings.Contains(m.View(), "Digite o texto") {
		t.Errorf("expected placeholder in view, got %q", m.View())
	}

	m = focused(t, m)
	m = typeText(m, "Olá")
	if content != "Olá" {
		t.Fatalf("expected content=Olá, got %q", content)
	}
	if m.PlaceholderVisible() {
		t.Errorf("expected placeholder hidden after typing")
	}
	if strings.Contains(m.View(), "Digite o texto") {
		t.Errorf("placeholder rendered alongside content")
	}

	content = ""
	if !m.PlaceholderVisible() {
		t.Errorf("expected placeholder visible after external reset")
	}
	if !strings.Contains(m.View(), "Digite o texto") {
		t.Errorf("expected placeholder in view after reset, got %q", m.View())
	}

	m = typeText(m, "x")
	if content != "x" {
		t.Errorf("expected edit after reset to start from empty, got %q", content)
	}
}

func TestEmptyPlaceholderNeverShows(t *testing.T) {
	content := ""
	m := New(Bind(&content), "", WithSize(20, 2))
	if strings.TrimSpace(m.View()) != "" {
		t.Errorf("expected blank view, got %q", m.View())
	}
}

func TestViewIsIdempotent(t *testing.T) {
	for _, text := range []string{"", "some text"} {
		content := text
		m := New(Bind(&content), "hint", WithSize(30, 2), WithFont(Font{Bold: true}))
		if a, b := m.View(), m.View(); a != b {
			t.Errorf("View() not idempotent for %q:\n%q\n%q", text, a, b)
		}
	}
}

func TestOnChangeFiresPerEdit(t *testing.T) {
	content := ""
	var seen []string
	m := focused(t, New(Bind(&content), "", OnChange(func(s string) {
		seen = append(seen, s)
	})))

	m = typeText(m, "ab")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	want := []string{"a", "ab", "a"}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("expected change events %v, got %v", want, seen)
	}
}

func TestIdleInputIgnoresKeys(t *testing.T) {
	content := "keep"
	m := New(Bind(&content), "")

	m, cmd := m.Update(runes("z"))
	if content != "keep" {
		t.Errorf("idle input accepted an edit: %q", content)
	}
	if cmd != nil {
		t.Errorf("expected no command from an idle input")
	}
}

func TestFocusTransitionsAreIdempotent(t *testing.T) {
	content := ""
	calls := 0
	m := New(Bind(&content), "", OnFocusChange(func(bool) { calls++ }))

	if cmd := m.Blur(); cmd != nil {
		t.Errorf("blurring an idle input should be a no-op")
	}
	m.Focus()
	if cmd := m.Focus(); cmd != nil {
		t.Errorf("focusing an editing input should be a no-op")
	}
	m.Blur()
	if calls != 2 {
		t.Errorf("expected 2 focus callbacks, got %d", calls)
	}
}

func TestNilColorFallsBackToDefault(t *testing.T) {
	content := ""
	m := New(Bind(&content), "hint", WithTextColor(nil), WithPlaceholderColor(nil))
	if m.textColor != DefaultTextColor {
		t.Errorf("expected default text color, got %v", m.textColor)
	}
	if m.placeholderColor != DefaultPlaceholderColor {
		t.Errorf("expected default placeholder color, got %v", m.placeholderColor)
	}
}

// Content the widget never edited must survive any message unchanged,
// whether or not the input is focused.
func TestExternalContentSurvivesMessages(t *testing.T) {
	inputs := []string{"x\ty\r\nz", "a\x07b", "\t\t", "line\r", "é\u200b😀", "\x1b[31mred"}
	msgs := []tea.Msg{struct{}{}, tea.WindowSizeMsg{Width: 10, Height: 2}, FocusChangedMsg{}}

	for _, in := range inputs {
		for _, focus := range []bool{false, true} {
			content := "seed"
			changes := 0
			m := New(Bind(&content), "hint", WithSize(8, 2), OnChange(func(string) { changes++ }))
			if focus {
				m = focused(t, m)
			}

			content = in
			for _, msg := range msgs {
				m, _ = m.Update(msg)
			}
			_ = m.View()

			if content != in || m.Value() != in {
				t.Errorf("focus=%v: content %q rewritten to %q", focus, in, content)
			}
			if changes != 0 {
				t.Errorf("focus=%v: OnChange fired %d times without an edit of %q", focus, changes, in)
			}
		}
	}
}

func TestPasteIsInsertedVerbatim(t *testing.T) {
	for _, paste := range []string{"a\tb", "x\r\ny", "a\x07b", "\t", "\x1b"} {
		content := ""
		m := focused(t, New(Bind(&content), ""))

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(paste), Paste: true})

		if content != paste {
			t.Errorf("pasted %q, content=%q", paste, content)
		}
		if !m.Focused() {
			t.Errorf("paste of %q ended editing", paste)
		}
	}
}

func TestTypedControlRunesAreKept(t *testing.T) {
	content := ""
	m := focused(t, New(Bind(&content), ""))

	m = typeText(m, "a\x07b")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	if content != "a\x07b\t" {
		t.Errorf("expected a\\x07b\\t, got %q", content)
	}
}

func TestCarriageReturnRuneCommits(t *testing.T) {
	content := "draft"
	m := focused(t, New(Bind(&content), ""))

	m, _ = m.Update(runes("\r"))

	if content != "draft" || m.Focused() {
		t.Errorf("expected commit on \\r, got content=%q focused=%v", content, m.Focused())
	}
}

func TestLargePasteIsNotTruncated(t *testing.T) {
	var sb strings.Builder
	for i := range 10051 {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "line %d", i)
	}
	paste := sb.String()

	content := ""
	m := focused(t, New(Bind(&content), "", WithSize(20, 3)))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(paste), Paste: true})

	if content != paste {
		t.Fatalf("expected %d lines, got %d", 10051, strings.Count(content, "\n")+1)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 3 {
		t.Errorf("expected the view to stay 3 rows high, got %d", lines)
	}
	if !strings.Contains(m.View(), "line 10050") {
		t.Errorf("expected the view to follow the cursor to the last line")
	}
}

func TestCursorEditsInsideContent(t *testing.T) {
	content := "ac"
	m := focused(t, New(Bind(&content), ""))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = typeText(m, "b")
	if content != "abc" {
		t.Fatalf("expected abc, got %q", content)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if content != "bc" {
		t.Errorf("expected bc after delete at line start, got %q", content)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if content != "" {
		t.Errorf("expected ctrl+k to clear the line, got %q", content)
	}
}

func TestViewRendersControlRunesVisibly(t *testing.T) {
	content := "a\tb\x07"
	m := New(Bind(&content), "", WithSize(20, 1))

	view := m.View()
	if !strings.Contains(view, "a    b^G") {
		t.Errorf("expected expanded tab and caret notation, got %q", view)
	}
	if content != "a\tb\x07" {
		t.Errorf("rendering changed content: %q", content)
	}
}
