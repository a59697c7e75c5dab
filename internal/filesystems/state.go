// Package filesystems implements the panel state listing mounted
// filesystems: a filterable, scrollable table with adaptive columns.
package filesystems

import (
	"errors"
	"fmt"

	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/pattern"
	"github.com/atomicstack/mountpanel/internal/ui/state"
)

const name = "filesystems"

// ErrMountList is returned when no usable mount list could be built.
var ErrMountList = errors.New("mount list unavailable")

// State is the filesystems panel state.
type State struct {
	list    *state.List[mounts.Mount]
	options options.Tree
}

var _ panel.State = (*State)(nil)

// New loads the mounts and selects the one holding path. Mounts without
// usage statistics are skipped, or mounts without a disk when the context
// asks for disks only.
func New(path string, opts options.Tree, app *panel.AppContext, loader *mounts.Loader) (*State, error) {
	all, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMountList, err)
	}
	disksOnly := app != nil && app.DisksOnly
	candidates := make([]mounts.Mount, 0, len(all))
	for _, m := range all {
		if disksOnly && m.Disk == nil {
			continue
		}
		if !disksOnly && m.Stats == nil {
			continue
		}
		candidates = append(candidates, m)
	}
	events.Mounts.Candidates(len(all), len(candidates), disksOnly)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no filesystem to list among %d mounts", ErrMountList, len(all))
	}
	dev, err := mounts.DeviceOf(path)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", path, err)
	}
	selection := 0
	for i, m := range candidates {
		if m.Dev == dev {
			selection = i
			break
		}
	}
	list, err := state.NewList(candidates, selection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMountList, err)
	}
	return &State{list: list, options: opts}, nil
}

func (s *State) Name() string {
	return name
}

// Count returns the number of rows in the active view.
func (s *State) Count() int {
	return s.list.Count()
}

// TryScroll moves the viewport and reports whether it changed.
func (s *State) TryScroll(cmd state.ScrollCommand) bool {
	return s.list.TryScroll(cmd)
}

// SelectedMount returns the selected mount of the active view.
func (s *State) SelectedMount() mounts.Mount {
	return s.list.Selected()
}

func (s *State) SelectedPath() string {
	return s.list.Selected().MountPoint
}

func (s *State) DisplayOptions() options.Tree {
	return s.options
}

func (s *State) WithNewOptions(_ panel.Screen, change func(*options.Tree), _ *panel.AppContext) panel.Outcome {
	change(&s.options)
	return panel.Stay()
}

func (s *State) Selection() panel.Selection {
	return panel.Selection{
		Path: s.SelectedPath(),
		Kind: panel.KindDirectory,
	}
}

// Refresh has nothing to reload: the mount list is a snapshot taken when the
// panel opened.
func (s *State) Refresh(panel.Screen, *panel.AppContext) panel.Command {
	return panel.Command{}
}

func (s *State) OnPattern(p pattern.Pattern, _ *panel.AppContext) panel.Outcome {
	s.list.ApplyPattern(p, matches)
	if p == nil {
		events.Filter.Cleared(name)
		return panel.Stay()
	}
	events.Filter.Apply(p.Raw(), s.list.Count(), s.list.SelectionIndex())
	return panel.Stay()
}

// matches keeps a mount when any of its visible texts scores.
func matches(m mounts.Mount, p pattern.Pattern) bool {
	if _, ok := p.Score(m.FS); ok {
		return true
	}
	if m.Disk != nil {
		if _, ok := p.Score(m.Disk.TypeLabel()); ok {
			return true
		}
	}
	if _, ok := p.Score(m.FSType); ok {
		return true
	}
	_, ok := p.Score(m.MountPoint)
	return ok
}
