package panel

import "github.com/atomicstack/mountpanel/internal/options"

// OutcomeKind tells the host what to do after a state handled an event.
type OutcomeKind int

const (
	Keep OutcomeKind = iota
	PopState
	PopStateAndReapply
	OpenState
	NewPanel
	HandleInApp
	Exit
	DisplayError
	DisplayInfo
)

var outcomeNames = [...]string{
	Keep:               "keep",
	PopState:           "pop_state",
	PopStateAndReapply: "pop_state_and_reapply",
	OpenState:          "open_state",
	NewPanel:           "new_panel",
	HandleInApp:        "handle_in_app",
	Exit:               "exit",
	DisplayError:       "display_error",
	DisplayInfo:        "display_info",
}

func (k OutcomeKind) String() string {
	if int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return "unknown"
}

// BrowseParams are what the host needs to build a directory browsing state.
type BrowseParams struct {
	Root    string
	Options options.Tree
}

// Outcome is the result of handling an event.
type Outcome struct {
	Kind OutcomeKind

	Browse     BrowseParams // OpenState
	InNewPanel bool         // OpenState

	Path      string       // NewPanel
	Options   options.Tree // NewPanel
	Direction Direction    // NewPanel

	Internal Internal // HandleInApp
	Output   string   // Exit
	Message  string   // DisplayError, DisplayInfo
}

// Stay keeps the state open with nothing else to do.
func Stay() Outcome { return Outcome{Kind: Keep} }

// Open asks the host to browse params, in a new panel or in place.
func Open(params BrowseParams, inNewPanel bool) Outcome {
	return Outcome{Kind: OpenState, Browse: params, InNewPanel: inNewPanel}
}

// Split asks the host to create a panel on dir showing path.
func Split(dir Direction, path string, opts options.Tree) Outcome {
	return Outcome{Kind: NewPanel, Direction: dir, Path: path, Options: opts}
}

// Delegate hands cmd to the host.
func Delegate(cmd Internal) Outcome {
	return Outcome{Kind: HandleInApp, Internal: cmd}
}

// Leave ends the application, printing output if it is not empty.
func Leave(output string) Outcome {
	return Outcome{Kind: Exit, Output: output}
}

// Error reports a message in the status line.
func Error(msg string) Outcome {
	return Outcome{Kind: DisplayError, Message: msg}
}

// Info reports a message in the status line.
func Info(msg string) Outcome {
	return Outcome{Kind: DisplayInfo, Message: msg}
}

// Sideways resolves panel_left and panel_right: the outermost panel asks for
// a new neighbour showing path, any other panel lets the host move focus.
func Sideways(cmd Internal, ctx *CmdContext, path string, opts options.Tree) Outcome {
	dir := Left
	if cmd == PanelRight {
		dir = Right
	}
	if ctx.Outermost(dir) {
		return Split(dir, path, opts)
	}
	return Delegate(cmd)
}
