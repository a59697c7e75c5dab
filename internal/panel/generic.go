package panel

import (
	"fmt"

	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atotto/clipboard"
)

var writeClipboard = clipboard.WriteAll

// Generic handles the commands every state shares. States call it for
// anything they do not route themselves.
func Generic(st State, cmd Command, ctx *CmdContext, screen Screen) (Outcome, error) {
	var app *AppContext
	if ctx != nil {
		app = ctx.App
	}
	switch cmd.Internal {
	case Quit:
		return Leave(""), nil
	case CopyPath:
		path := st.SelectedPath()
		if err := writeClipboard(path); err != nil {
			return Error(fmt.Sprintf("copy to clipboard: %v", err)), nil
		}
		return Info(fmt.Sprintf("copied %s", path)), nil
	case ToggleHidden:
		return st.WithNewOptions(screen, func(o *options.Tree) {
			o.ShowHidden = !o.ShowHidden
		}, app), nil
	case ToggleSelectionMark:
		if app != nil {
			app.ShowSelectionMark = !app.ShowSelectionMark
		}
		return Stay(), nil
	case Refresh:
		if next := st.Refresh(screen, app); !next.IsEmpty() {
			return Delegate(next.Internal), nil
		}
		return Stay(), nil
	}
	return Error(fmt.Sprintf("%s is not available in %s", cmd.Internal, st.Name())), nil
}
