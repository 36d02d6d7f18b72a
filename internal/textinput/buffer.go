package textinput

import "unicode"

// buffer is the authoritative edit state: the exact runes of the content
// and a cursor position between them. Edits never rewrite the runes they
// insert.
type buffer struct {
	text []rune
	pos  int
}

func (b *buffer) set(s string) {
	b.text = []rune(s)
	b.pos = len(b.text)
}

func (b *buffer) String() string { return string(b.text) }

func (b *buffer) clampPos() {
	b.pos = clampInt(b.pos, 0, len(b.text))
}

func (b *buffer) insert(rs []rune) {
	b.clampPos()
	next := make([]rune, 0, len(b.text)+len(rs))
	next = append(next, b.text[:b.pos]...)
	next = append(next, rs...)
	next = append(next, b.text[b.pos:]...)
	b.text = next
	b.pos += len(rs)
}

func (b *buffer) deleteRange(from, to int) {
	from = clampInt(from, 0, len(b.text))
	to = clampInt(to, 0, len(b.text))
	if from >= to {
		return
	}
	b.text = append(b.text[:from:from], b.text[to:]...)
	b.pos = from
}

func (b *buffer) backspace() { b.deleteRange(b.pos-1, b.pos) }

func (b *buffer) deleteForward() {
	pos := b.pos
	b.deleteRange(pos, pos+1)
	b.pos = pos
}

func (b *buffer) deleteToLineStart() { b.deleteRange(b.lineStart(), b.pos) }

func (b *buffer) deleteToLineEnd() {
	pos := b.pos
	b.deleteRange(pos, b.lineEnd())
	b.pos = pos
}

func (b *buffer) left() {
	if b.pos > 0 {
		b.pos--
	}
}

func (b *buffer) right() {
	if b.pos < len(b.text) {
		b.pos++
	}
}

// lineStart returns the index of the first rune on the cursor's line.
func (b *buffer) lineStart() int {
	i := clampInt(b.pos, 0, len(b.text))
	for i > 0 && b.text[i-1] != '\n' {
		i--
	}
	return i
}

// lineEnd returns the index of the newline ending the cursor's line, or
// the length of the text on the last line.
func (b *buffer) lineEnd() int {
	i := clampInt(b.pos, 0, len(b.text))
	for i < len(b.text) && b.text[i] != '\n' {
		i++
	}
	return i
}

func (b *buffer) home() { b.pos = b.lineStart() }
func (b *buffer) end()  { b.pos = b.lineEnd() }

func (b *buffer) up() {
	start := b.lineStart()
	if start == 0 {
		b.pos = 0
		return
	}
	col := b.pos - start
	prevEnd := start - 1
	prevStart := prevEnd
	for prevStart > 0 && b.text[prevStart-1] != '\n' {
		prevStart--
	}
	b.pos = min(prevStart+col, prevEnd)
}

func (b *buffer) down() {
	end := b.lineEnd()
	if end == len(b.text) {
		b.pos = end
		return
	}
	col := b.pos - b.lineStart()
	nextStart := end + 1
	nextEnd := nextStart
	for nextEnd < len(b.text) && b.text[nextEnd] != '\n' {
		nextEnd++
	}
	b.pos = min(nextStart+col, nextEnd)
}

func (b *buffer) wordLeft() {
	for b.pos > 0 && unicode.IsSpace(b.text[b.pos-1]) {
		b.pos--
	}
	for b.pos > 0 && !unicode.IsSpace(b.text[b.pos-1]) {
		b.pos--
	}
}

func (b *buffer) wordRight() {
	for b.pos < len(b.text) && unicode.IsSpace(b.text[b.pos]) {
		b.pos++
	}
	for b.pos < len(b.text) && !unicode.IsSpace(b.text[b.pos]) {
		b.pos++
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
