package ui

import (
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Back         key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Open         key.Binding
	OpenInPanel  key.Binding
	OpenLeave    key.Binding
	PanelLeft    key.Binding
	PanelRight   key.Binding
	CopyPath     key.Binding
	ToggleHidden key.Binding
	ToggleMark   key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		OpenInPanel:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open in panel")),
		OpenLeave:    key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "open and quit")),
		PanelLeft:    key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "panel left")),
		PanelRight:   key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "panel right")),
		CopyPath:     key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy path")),
		ToggleHidden: key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "hidden files")),
		ToggleMark:   key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "selection mark")),
		Refresh:      key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "refresh")),
		Help:         key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.PanelRight, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.OpenInPanel, k.OpenLeave, k.Back},
		{k.PanelLeft, k.PanelRight, k.CopyPath, k.Refresh},
		{k.ToggleHidden, k.ToggleMark, k.Help, k.Quit},
	}
}

// commandFor maps a key press to the panel command it triggers.
func (k keyMap) commandFor(msg tea.KeyMsg) (panel.Command, bool) {
	bindings := []struct {
		binding *key.Binding
		cmd     panel.Command
	}{
		{&k.Back, panel.Command{Internal: panel.Back}},
		{&k.Up, panel.Command{Internal: panel.LineUp}},
		{&k.Down, panel.Command{Internal: panel.LineDown}},
		{&k.PageUp, panel.Command{Internal: panel.PageUp}},
		{&k.PageDown, panel.Command{Internal: panel.PageDown}},
		{&k.Open, panel.Command{Internal: panel.OpenStay}},
		{&k.OpenInPanel, panel.Command{Internal: panel.OpenStay, Bang: true}},
		{&k.OpenLeave, panel.Command{Internal: panel.OpenLeave}},
		{&k.PanelLeft, panel.Command{Internal: panel.PanelLeft}},
		{&k.PanelRight, panel.Command{Internal: panel.PanelRight}},
		{&k.CopyPath, panel.Command{Internal: panel.CopyPath}},
		{&k.ToggleHidden, panel.Command{Internal: panel.ToggleHidden}},
		{&k.ToggleMark, panel.Command{Internal: panel.ToggleSelectionMark}},
		{&k.Refresh, panel.Command{Internal: panel.Refresh}},
		{&k.Quit, panel.Command{Internal: panel.Quit}},
	}
	for _, b := range bindings {
		if key.Matches(msg, *b.binding) {
			return b.cmd, true
		}
	}
	return panel.Command{}, false
}
