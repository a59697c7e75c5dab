package panel

import (
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/pattern"
	"github.com/atomicstack/mountpanel/internal/theme"
)

// SelectionKind classifies the selected entry.
type SelectionKind int

const (
	KindDirectory SelectionKind = iota
	KindFile
	KindOther
)

// Selection describes the entry a state currently points at.
type Selection struct {
	Path  string
	Kind  SelectionKind
	IsExe bool
	Line  int
}

// State is a navigable view hosted in a panel.
type State interface {
	// Name identifies the kind of state in traces and titles.
	Name() string
	SelectedPath() string
	DisplayOptions() options.Tree
	// WithNewOptions applies change to the display options.
	WithNewOptions(screen Screen, change func(*options.Tree), app *AppContext) Outcome
	Selection() Selection
	// Refresh reloads whatever the state shows and returns a command the
	// host should run afterwards, or an empty one.
	Refresh(screen Screen, app *AppContext) Command
	// OnPattern replaces the active filter. A nil pattern clears it.
	OnPattern(p pattern.Pattern, app *AppContext) Outcome
	Render(surface Surface, area Area, styles *theme.Styles, app *AppContext) error
	OnCommand(cmd Command, inv *Invocation, trigger Trigger, ctx *CmdContext, screen Screen) (Outcome, error)
	OnClick(x, y int, screen Screen, app *AppContext) Outcome
}
