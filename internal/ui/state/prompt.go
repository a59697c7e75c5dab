package state

import "unicode"

// Prompt is the editable filter text of a panel with a rune cursor.
type Prompt struct {
	Text   string
	Cursor int
}

// Set replaces the text and places the cursor, clamped to the text.
func (p *Prompt) Set(text string, cursor int) {
	p.Text = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.Cursor = cursor
}

// Clear empties the prompt. It reports whether anything was removed.
func (p *Prompt) Clear() bool {
	if p.Text == "" {
		return false
	}
	p.Set("", 0)
	return true
}

// CursorPos returns the rune offset of the cursor.
func (p *Prompt) CursorPos() int {
	runes := []rune(p.Text)
	if p.Cursor < 0 {
		return 0
	}
	if p.Cursor > len(runes) {
		return len(runes)
	}
	return p.Cursor
}

// Insert adds text at the cursor.
func (p *Prompt) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Text)
	pos := p.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (p *Prompt) DeleteRuneBackward() bool {
	runes := []rune(p.Text)
	pos := p.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (p *Prompt) DeleteWordBackward() bool {
	runes := []rune(p.Text)
	pos := p.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	p.Set(string(updated), i)
	return true
}

// MoveStart moves the cursor to the start.
func (p *Prompt) MoveStart() bool {
	if p.CursorPos() == 0 {
		return false
	}
	p.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (p *Prompt) MoveEnd() bool {
	end := len([]rune(p.Text))
	if p.CursorPos() == end {
		return false
	}
	p.Cursor = end
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (p *Prompt) MoveWordBackward() bool {
	runes := []rune(p.Text)
	pos := p.CursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	p.Cursor = i
	return true
}

// MoveWordForward moves the cursor past the next word.
func (p *Prompt) MoveWordForward() bool {
	runes := []rune(p.Text)
	pos := p.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.Cursor = i
	return true
}

// MoveRuneBackward moves the cursor one rune left.
func (p *Prompt) MoveRuneBackward() bool {
	pos := p.CursorPos()
	if pos == 0 {
		return false
	}
	p.Cursor = pos - 1
	return true
}

// MoveRuneForward moves the cursor one rune right.
func (p *Prompt) MoveRuneForward() bool {
	pos := p.CursorPos()
	if pos >= len([]rune(p.Text)) {
		return false
	}
	p.Cursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
