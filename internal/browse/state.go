// Package browse implements a directory listing panel state, opened from the
// filesystems panel on a mount point.
package browse

import (
	"path/filepath"

	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/pattern"
	"github.com/atomicstack/mountpanel/internal/ui/state"
)

const name = "browse"

// State lists the entries of one directory.
type State struct {
	root    string
	options options.Tree
	list    *state.List[Entry]
	rootFS  *mounts.Stats
}

var _ panel.State = (*State)(nil)

// New reads root. When the options ask for it, usage of the filesystem
// holding root is looked up for the title row.
func New(root string, opts options.Tree) (*State, error) {
	root = filepath.Clean(root)
	entries, err := readEntries(root, opts)
	if err != nil {
		return nil, err
	}
	list, err := state.NewList(entries, initialSelection(entries))
	if err != nil {
		return nil, err
	}
	s := &State{root: root, options: opts, list: list}
	s.loadRootFS()
	return s, nil
}

// initialSelection skips the parent entry when there is anything else.
func initialSelection(entries []Entry) int {
	if len(entries) > 1 {
		return 1
	}
	return 0
}

func (s *State) loadRootFS() {
	s.rootFS = nil
	if !s.options.ShowRootFS {
		return
	}
	if st, err := mounts.StatsOf(s.root); err == nil {
		s.rootFS = st
	}
}

func (s *State) Name() string {
	return name
}

// Root returns the listed directory.
func (s *State) Root() string {
	return s.root
}

// TryScroll moves the viewport and reports whether it changed.
func (s *State) TryScroll(cmd state.ScrollCommand) bool {
	return s.list.TryScroll(cmd)
}

func (s *State) SelectedEntry() Entry {
	return s.list.Selected()
}

func (s *State) SelectedPath() string {
	return s.list.Selected().Path
}

func (s *State) DisplayOptions() options.Tree {
	return s.options
}

func (s *State) WithNewOptions(_ panel.Screen, change func(*options.Tree), _ *panel.AppContext) panel.Outcome {
	change(&s.options)
	if err := s.reload(); err != nil {
		return panel.Error(err.Error())
	}
	return panel.Stay()
}

func (s *State) Selection() panel.Selection {
	e := s.list.Selected()
	kind := panel.KindFile
	if e.Dir {
		kind = panel.KindDirectory
	}
	return panel.Selection{Path: e.Path, Kind: kind, IsExe: e.Exe}
}

func (s *State) Refresh(panel.Screen, *panel.AppContext) panel.Command {
	if err := s.reload(); err != nil {
		return panel.Command{Internal: panel.Back}
	}
	return panel.Command{}
}

// reload rereads the directory, keeping the selection on the same entry
// when it still exists. An active filter is applied again.
func (s *State) reload() error {
	entries, err := readEntries(s.root, s.options)
	if err != nil {
		return err
	}
	key := s.list.Selected().Key()
	selection := initialSelection(entries)
	for i, e := range entries {
		if e.Key() == key {
			selection = i
			break
		}
	}
	list, err := state.NewList(entries, selection)
	if err != nil {
		return err
	}
	list.SetPageHeight(s.list.PageHeight)
	list.ApplyPattern(s.list.Pattern(), matches)
	s.list = list
	s.loadRootFS()
	return nil
}

func (s *State) OnPattern(p pattern.Pattern, _ *panel.AppContext) panel.Outcome {
	s.list.ApplyPattern(p, matches)
	if p == nil {
		events.Filter.Cleared(name)
	} else {
		events.Filter.Apply(p.Raw(), s.list.Count(), s.list.SelectionIndex())
	}
	return panel.Stay()
}

func matches(e Entry, p pattern.Pattern) bool {
	_, ok := p.Score(e.Name)
	return ok
}

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
	case panel.PageDown:
		s.list.TryScroll(state.Pages(1))
		return panel.Stay(), nil
	case panel.PageUp:
		s.list.TryScroll(state.Pages(-1))
		return panel.Stay(), nil
	case panel.OpenStay:
		e := s.list.Selected()
		if !e.Dir {
			return panel.Error(e.Name + " is not a directory"), nil
		}
		inNewPanel := cmd.Bang
		if inv != nil {
			inNewPanel = inv.Bang
		}
		opts := s.options
		opts.ShowRootFS = false
		return panel.Open(panel.BrowseParams{Root: e.Path, Options: opts}, inNewPanel), nil
	case panel.OpenLeave:
		return panel.Leave(s.SelectedPath()), nil
	case panel.PanelLeft, panel.PanelRight:
		return panel.Sideways(cmd.Internal, ctx, s.SelectedPath(), s.options), nil
	}
	return panel.Generic(s, cmd, ctx, screen)
}

func (s *State) move(delta int) {
	if s.list.MoveSelection(delta) {
		events.Panel.Selection(name, s.list.SelectionIndex(), s.SelectedPath())
	}
}

// OnClick selects the clicked row of the visible listing.
func (s *State) OnClick(x, y int, _ panel.Screen, _ *panel.AppContext) panel.Outcome {
	if y < titleRows {
		return panel.Stay()
	}
	row := s.list.Scroll + y - titleRows
	if row >= s.list.Count() {
		return panel.Stay()
	}
	if s.list.MoveSelection(row - s.list.SelectionIndex()) {
		events.Panel.Click(x, y, row)
	}
	return panel.Stay()
}
