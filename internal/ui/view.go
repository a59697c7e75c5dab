package ui

import (
	"strings"

	"github.com/atomicstack/mountpanel/internal/logging"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	statusRows  = 2 // status line and filter prompt
	placeholder = "(type to search)"
)

// panelHeight is the number of rows shared by the panels.
func (m *Model) panelHeight() int {
	h := m.screenHeight() - statusRows
	if m.showFooter {
		h--
	}
	if h < 0 {
		return 0
	}
	return h
}

// panelWidths splits the screen width evenly; the last panel takes the
// remainder.
func (m *Model) panelWidths() []int {
	n := len(m.panels)
	if n == 0 {
		return nil
	}
	total := m.screenWidth()
	widths := make([]int, n)
	for i := range widths {
		widths[i] = total / n
	}
	widths[n-1] += total % n
	return widths
}

// panelAt returns the panel under column x and its left edge, or -1.
func (m *Model) panelAt(x int) (int, int) {
	left := 0
	for i, w := range m.panelWidths() {
		if x >= left && x < left+w {
			return i, left
		}
		left += w
	}
	return -1, 0
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.screenWidth()
	height := m.panelHeight()
	var lines []string
	if height > 0 && len(m.panels) > 0 {
		widths := m.panelWidths()
		cols := make([]string, len(m.panels))
		left := 0
		for i, p := range m.panels {
			cols[i] = m.renderPanel(p, panel.Area{Left: left, Width: widths[i], Height: height})
			left += widths[i]
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	lines = append(lines, m.statusLine(width), m.promptLine(width))
	if m.showFooter {
		m.help.Width = width
		lines = append(lines, truncate.String(m.help.View(m.keys), uint(width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPanel(p *panelStack, area panel.Area) string {
	canvas := panel.NewCanvas(area.Height)
	st := p.top()
	if st == nil {
		return canvas.String()
	}
	local := area
	local.Left = 0
	if err := st.Render(canvas, local, m.styles, m.app); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	rows := canvas.Rows()
	for i, row := range rows {
		if row == "" {
			rows[i] = panel.Blank(area.Width)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) statusLine(width int) string {
	if m.errMsg != "" {
		return m.styles.Error.Render(truncate.StringWithTail("Error: "+m.errMsg, uint(width), "…"))
	}
	if info := m.currentInfo(); info != "" {
		return m.styles.Info.Render(truncate.StringWithTail(info, uint(width), "…"))
	}
	return ""
}

// promptLine renders the focused panel's filter prompt with its caret.
func (m *Model) promptLine(width int) string {
	prompt := m.styles.FilterPrompt.Render("» ")
	p := m.focused()
	if p == nil {
		return prompt
	}
	var line string
	if p.prompt.Text == "" {
		runes := []rune(placeholder)
		line = prompt + m.caret(string(runes[0])) + m.styles.FilterPlaceholder.Render(string(runes[1:]))
	} else {
		runes := []rune(p.prompt.Text)
		pos := p.prompt.CursorPos()
		caret := " "
		var after string
		if pos < len(runes) {
			caret = string(runes[pos])
			after = m.styles.Filter.Render(string(runes[pos+1:]))
		}
		line = prompt + m.styles.Filter.Render(string(runes[:pos])) + m.caret(caret) + after
	}
	return truncate.String(line, uint(width))
}

func (m *Model) caret(char string) string {
	return m.styles.Cursor.Inline(true).Render(char)
}
