package ui

import (
	"github.com/atomicstack/mountpanel/internal/browse"
	"github.com/atomicstack/mountpanel/internal/logging"
	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) focused() *panelStack {
	if m.focus < 0 || m.focus >= len(m.panels) {
		return nil
	}
	return m.panels[m.focus]
}

func (m *Model) cmdContext() *panel.CmdContext {
	return &panel.CmdContext{App: m.app, PanelIndex: m.focus, PanelCount: len(m.panels)}
}

// dispatch sends cmd to the top state of the focused panel and applies the
// outcome. A Back with a non-empty prompt clears the prompt first.
func (m *Model) dispatch(cmd panel.Command, trigger panel.Trigger) tea.Cmd {
	p := m.focused()
	if p == nil {
		return tea.Quit
	}
	if cmd.Internal == panel.Back && p.prompt.Clear() {
		events.Filter.Cleared(p.top().Name())
	}
	out, err := m.bus.Dispatch(commandRequest(p.top(), cmd, trigger, m.cmdContext(), m.screen()))
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	return m.apply(out, cmd)
}

func (m *Model) setFocus(index int) {
	if index < 0 || index >= len(m.panels) || index == m.focus {
		return
	}
	m.focus = index
	events.Panel.Focus(index)
}

func (m *Model) push(st panel.State) {
	p := m.focused()
	if p == nil {
		m.panels = []*panelStack{{}}
		m.focus = 0
		p = m.panels[0]
	}
	p.states = append(p.states, st)
	p.prompt.Clear()
	events.Panel.Open(st.Name(), st.SelectedPath(), m.focus)
}

// popState removes the top state of the focused panel. The revealed state
// loses its filter, matching the now empty prompt. A panel left empty is
// removed and focus moves to its left neighbour.
func (m *Model) popState() panel.State {
	p := m.focused()
	if p == nil || len(p.states) == 0 {
		return nil
	}
	st := p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
	p.prompt.Clear()
	events.Panel.Pop(st.Name(), m.focus)
	if below := p.top(); below != nil {
		m.apply(below.OnPattern(nil, m.app), panel.Command{})
	}
	if len(p.states) == 0 {
		m.panels = append(m.panels[:m.focus], m.panels[m.focus+1:]...)
		if m.focus >= len(m.panels) {
			m.focus = len(m.panels) - 1
		}
		if m.focus < 0 {
			m.focus = 0
		}
	}
	return st
}

// insertPanel adds a panel holding st at index and focuses it.
func (m *Model) insertPanel(index int, st panel.State) bool {
	if m.screenWidth()/(len(m.panels)+1) < minPanelWidth {
		m.errMsg = "not enough room for another panel"
		return false
	}
	if index < 0 {
		index = 0
	}
	if index > len(m.panels) {
		index = len(m.panels)
	}
	p := &panelStack{states: []panel.State{st}}
	m.panels = append(m.panels, nil)
	copy(m.panels[index+1:], m.panels[index:])
	m.panels[index] = p
	m.focus = index
	events.Panel.Open(st.Name(), st.SelectedPath(), index)
	events.Panel.Focus(index)
	return true
}

func (m *Model) openBrowse(params panel.BrowseParams, inNewPanel bool) {
	st := m.newBrowse(params.Root, params.Options)
	if st == nil {
		return
	}
	if inNewPanel {
		m.insertPanel(m.focus+1, st)
		return
	}
	m.push(st)
}

// newBrowse builds a browse state, reporting failures on the status line.
func (m *Model) newBrowse(root string, opts options.Tree) panel.State {
	st, err := browse.New(root, opts)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	return st
}
