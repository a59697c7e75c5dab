package filesystems

import (
	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/ui/state"
)

func (s *State) OnCommand(cmd panel.Command, inv *panel.Invocation, _ panel.Trigger, ctx *panel.CmdContext, screen panel.Screen) (panel.Outcome, error) {
	switch cmd.Internal {
	case panel.Back:
		if !s.list.Back() {
			return panel.Outcome{Kind: panel.PopState}, nil
		}
		events.Filter.Cleared(name)
		return panel.Stay(), nil
	case panel.LineDown:
		s.move(1)
		return panel.Stay(), nil
	case panel.LineUp:
		s.move(-1)
		return panel.Stay(), nil
	case panel.OpenStay:
		inNewPanel := cmd.Bang
		if inv != nil {
			inNewPanel = inv.Bang
		}
		opts := s.options
		opts.ShowRootFS = true
		return panel.Open(panel.BrowseParams{Root: s.SelectedPath(), Options: opts}, inNewPanel), nil
	case panel.PanelLeft, panel.PanelRight:
		return panel.Sideways(cmd.Internal, ctx, s.SelectedPath(), s.options), nil
	case panel.PageDown:
		s.list.TryScroll(state.Pages(1))
		return panel.Stay(), nil
	case panel.PageUp:
		s.list.TryScroll(state.Pages(-1))
		return panel.Stay(), nil
	case panel.OpenLeave:
		return panel.Outcome{Kind: panel.PopStateAndReapply}, nil
	}
	return panel.Generic(s, cmd, ctx, screen)
}

func (s *State) move(delta int) {
	if s.list.MoveSelection(delta) {
		events.Panel.Selection(name, s.list.SelectionIndex(), s.SelectedPath())
	}
}

// OnClick selects the clicked data row. The row is looked up in the full
// mount list even while a filter is active.
func (s *State) OnClick(x, y int, _ panel.Screen, _ *panel.AppContext) panel.Outcome {
	if y < headerRows {
		return panel.Stay()
	}
	row := s.list.Scroll + y - headerRows
	if s.list.SelectMaster(row) {
		events.Panel.Click(x, y, row)
	}
	return panel.Stay()
}
