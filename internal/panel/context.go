package panel

// AppContext holds application wide settings shared by all states.
type AppContext struct {
	ShowSelectionMark bool
	DisksOnly         bool
}

// CmdContext describes where the receiving panel sits when a command runs.
type CmdContext struct {
	App        *AppContext
	PanelIndex int
	PanelCount int
}

// Outermost reports whether no panel exists beyond this one in dir.
func (c *CmdContext) Outermost(dir Direction) bool {
	if c == nil {
		return true
	}
	if dir == Left {
		return c.PanelIndex <= 0
	}
	return c.PanelIndex >= c.PanelCount-1
}

// Screen is the terminal size at the time of an event.
type Screen struct {
	Width  int
	Height int
}

// Area is a rectangle of terminal cells.
type Area struct {
	Left   int
	Top    int
	Width  int
	Height int
}
