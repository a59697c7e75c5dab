package panel

import (
	"strings"

	"github.com/atomicstack/mountpanel/internal/format/cell"
	"github.com/atomicstack/mountpanel/internal/pattern"
	"github.com/charmbracelet/lipgloss"
)

// Row builds one styled line without exceeding a cell budget. Writes past
// the budget are cropped.
type Row struct {
	b       strings.Builder
	allowed int
}

// NewRow starts a row of at most width cells.
func NewRow(width int) *Row {
	if width < 0 {
		width = 0
	}
	return &Row{allowed: width}
}

// Remaining returns the cells still available.
func (r *Row) Remaining() int {
	return r.allowed
}

// Write appends text in style.
func (r *Row) Write(style lipgloss.Style, text string) {
	if r.allowed <= 0 || text == "" {
		return
	}
	text = cell.Crop(text, r.allowed)
	r.allowed -= cell.Width(text)
	r.b.WriteString(style.Render(text))
}

// Cell appends text padded to width.
func (r *Row) Cell(style lipgloss.Style, text string, width int, align cell.Alignment) {
	r.Write(style, cell.Pad(text, width, align))
}

// Matched appends text padded to width, rendering the characters p matches in
// match style.
func (r *Row) Matched(base, match lipgloss.Style, text string, width int, align cell.Alignment, p pattern.Pattern) {
	var m pattern.Match
	ok := false
	if p != nil {
		m, ok = p.Search(text)
	}
	if !ok {
		r.Cell(base, text, width, align)
		return
	}
	text = cell.Crop(text, width)
	gap := width - cell.Width(text)
	left := 0
	switch align {
	case cell.AlignRight:
		left = gap
	case cell.AlignCenter:
		left = gap / 2
	}
	r.Write(base, Blank(left))
	var run strings.Builder
	inMatch := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inMatch {
			r.Write(match, run.String())
		} else {
			r.Write(base, run.String())
		}
		run.Reset()
	}
	pos := 0
	for _, ch := range text {
		hit := m.Contains(pos)
		if hit != inMatch {
			flush()
			inMatch = hit
		}
		run.WriteRune(ch)
		pos++
	}
	flush()
	r.Write(base, Blank(gap-left))
}

// Fill pads the rest of the row with spaces in style.
func (r *Row) Fill(style lipgloss.Style) {
	r.Repeat(style, " ")
}

// Repeat fills the rest of the row with glyph.
func (r *Row) Repeat(style lipgloss.Style, glyph string) {
	if r.allowed <= 0 {
		return
	}
	w := cell.Width(glyph)
	if w <= 0 {
		return
	}
	r.Write(style, strings.Repeat(glyph, r.allowed/w))
}

func (r *Row) String() string {
	return r.b.String()
}
