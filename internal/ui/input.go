package ui

import (
	"unicode"

	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/pattern"
	uistate "github.com/atomicstack/mountpanel/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// scroller is implemented by states whose view can scroll without moving the
// selection.
type scroller interface {
	TryScroll(cmd uistate.ScrollCommand) bool
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !key.Matches(keyMsg, m.keys.Quit) && m.handleTextInput(keyMsg) {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	cmd, ok := m.keys.commandFor(keyMsg)
	if !ok {
		return nil
	}
	m.clearStatus()
	return m.dispatch(cmd, panel.TriggerKey)
}

// handleTextInput edits the focused panel's prompt. It reports whether the
// key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	p := m.focused()
	if p == nil {
		return false
	}
	prompt := &p.prompt
	var changed, moved bool
	switch msg.String() {
	case "ctrl+u":
		changed = prompt.Clear()
	case "ctrl+w":
		changed = prompt.DeleteWordBackward()
	case "ctrl+a":
		moved = prompt.MoveStart()
	case "ctrl+e":
		moved = prompt.MoveEnd()
	case "alt+b":
		moved = prompt.MoveWordBackward()
	case "alt+f":
		moved = prompt.MoveWordForward()
	default:
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			changed = prompt.DeleteRuneBackward()
		case tea.KeyRunes:
			if msg.Alt || len(msg.Runes) == 0 {
				return false
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					return false
				}
			}
			changed = prompt.Insert(string(msg.Runes))
		case tea.KeySpace:
			changed = prompt.Insert(" ")
		case tea.KeyLeft:
			moved = prompt.MoveRuneBackward()
		case tea.KeyRight:
			moved = prompt.MoveRuneForward()
		}
	}
	switch {
	case changed:
		m.clearStatus()
		m.applyPrompt()
		return true
	case moved:
		events.Filter.Edit(prompt.Text, prompt.CursorPos())
		return true
	}
	return false
}

// applyPrompt hands the parsed prompt to the focused state.
func (m *Model) applyPrompt() {
	p := m.focused()
	if p == nil {
		return
	}
	events.Filter.Edit(p.prompt.Text, p.prompt.CursorPos())
	st := p.top()
	if st == nil {
		return
	}
	m.apply(st.OnPattern(pattern.Parse(p.prompt.Text), m.app), panel.Command{})
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Y < 0 || ev.Y >= m.panelHeight() {
		return nil
	}
	index, left := m.panelAt(ev.X)
	if index < 0 {
		return nil
	}
	st := m.panels[index].top()
	if st == nil {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		if s, ok := st.(scroller); ok {
			s.TryScroll(uistate.Lines(-wheelLines))
		}
	case ev.Button == tea.MouseButtonWheelDown:
		if s, ok := st.(scroller); ok {
			s.TryScroll(uistate.Lines(wheelLines))
		}
	case ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionPress:
		m.setFocus(index)
		return m.apply(st.OnClick(ev.X-left, ev.Y, m.screen(), m.app), panel.Command{})
	}
	return nil
}
