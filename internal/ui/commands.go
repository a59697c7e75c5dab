package ui

import (
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func commandRequest(st panel.State, cmd panel.Command, trigger panel.Trigger, ctx *panel.CmdContext, screen panel.Screen) command.Request {
	var inv *panel.Invocation
	if cmd.Internal != panel.None {
		inv = &panel.Invocation{Name: cmd.Internal.String(), Bang: cmd.Bang}
	}
	return command.Request{
		State:      st,
		Command:    cmd,
		Invocation: inv,
		Trigger:    trigger,
		Context:    ctx,
		Screen:     screen,
	}
}

// apply carries out what a state asked for after handling cmd.
func (m *Model) apply(out panel.Outcome, cmd panel.Command) tea.Cmd {
	switch out.Kind {
	case panel.Keep:
		return nil
	case panel.PopState:
		m.popState()
		if len(m.panels) == 0 {
			return tea.Quit
		}
	case panel.PopStateAndReapply:
		popped := m.popState()
		if len(m.panels) == 0 {
			if popped != nil {
				m.output = popped.SelectedPath()
			}
			return tea.Quit
		}
		return m.dispatch(cmd, panel.TriggerReapply)
	case panel.OpenState:
		m.openBrowse(out.Browse, out.InNewPanel)
	case panel.NewPanel:
		m.openPanel(out)
	case panel.HandleInApp:
		return m.handleInApp(out.Internal)
	case panel.Exit:
		m.output = out.Output
		return tea.Quit
	case panel.DisplayError:
		m.errMsg = out.Message
	case panel.DisplayInfo:
		m.setInfo(out.Message)
	}
	return nil
}

func (m *Model) openPanel(out panel.Outcome) {
	st := m.newBrowse(out.Path, out.Options)
	if st == nil {
		return
	}
	index := len(m.panels)
	if out.Direction == panel.Left {
		index = 0
	}
	m.insertPanel(index, st)
}

// handleInApp runs commands the states leave to the host.
func (m *Model) handleInApp(internal panel.Internal) tea.Cmd {
	switch internal {
	case panel.PanelLeft:
		m.setFocus(m.focus - 1)
	case panel.PanelRight:
		m.setFocus(m.focus + 1)
	case panel.Quit:
		return tea.Quit
	case panel.None:
	default:
		return m.dispatch(panel.Command{Internal: internal}, panel.TriggerReapply)
	}
	return nil
}
