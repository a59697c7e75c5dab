// Package ui contains the Bubble Tea program hosting the panels. The Model
// owns a row of panels, each a stack of panel states, and routes every event
// to the top state of the focused panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, resizes).
//   - Printable keys edit the focused panel's filter prompt (input.go); every
//     edit is parsed into a pattern and handed to the state's OnPattern.
//   - Other keys are mapped to panel commands (keys.go) and sent through the
//     command bus in internal/ui/command, which calls the state's OnCommand
//     synchronously.
//   - The resulting panel.Outcome is applied by commands.go: states are
//     pushed or popped, panels created, focus moved, status messages shown,
//     or the program quits with an output path.
//
// Rendering (view.go) gives each panel an equal share of the width and asks
// its top state to draw into an in-memory canvas; the canvases are joined
// side by side above the status line, the filter prompt and the optional
// help footer.
package ui
