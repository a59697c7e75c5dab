package panel

import "fmt"

// Internal names one of the closed set of commands a state can receive.
type Internal int

const (
	None Internal = iota
	Back
	LineDown
	LineUp
	OpenStay
	OpenLeave
	PanelLeft
	PanelRight
	PageDown
	PageUp
	Quit
	CopyPath
	ToggleHidden
	ToggleSelectionMark
	Refresh
)

var internalNames = map[Internal]string{
	None:                "none",
	Back:                "back",
	LineDown:            "line_down",
	LineUp:              "line_up",
	OpenStay:            "open_stay",
	OpenLeave:           "open_leave",
	PanelLeft:           "panel_left",
	PanelRight:          "panel_right",
	PageDown:            "page_down",
	PageUp:              "page_up",
	Quit:                "quit",
	CopyPath:            "copy_path",
	ToggleHidden:        "toggle_hidden",
	ToggleSelectionMark: "toggle_selection_mark",
	Refresh:             "refresh",
}

func (i Internal) String() string {
	if name, ok := internalNames[i]; ok {
		return name
	}
	return fmt.Sprintf("internal(%d)", int(i))
}

// ParseInternal resolves a command name.
func ParseInternal(name string) (Internal, error) {
	for i, n := range internalNames {
		if n == name && i != None {
			return i, nil
		}
	}
	return None, fmt.Errorf("unknown command %q", name)
}

// Command is an internal command with its bang modifier.
type Command struct {
	Internal Internal
	Bang     bool
}

func (c Command) String() string {
	if c.Bang {
		return c.Internal.String() + "!"
	}
	return c.Internal.String()
}

// IsEmpty reports whether c carries no command.
func (c Command) IsEmpty() bool {
	return c.Internal == None
}

// Invocation is the user-typed form of a command when it was not triggered by
// a key binding alone.
type Invocation struct {
	Name string
	Bang bool
}

// Trigger says where a command came from.
type Trigger int

const (
	TriggerKey Trigger = iota
	TriggerMouse
	TriggerReapply
)

// Direction is a horizontal side of the panel row.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
