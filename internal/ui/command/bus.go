package command

import (
	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/panel"
)

// Request is one command addressed to a panel state.
type Request struct {
	State      panel.State
	Command    panel.Command
	Invocation *panel.Invocation
	Trigger    panel.Trigger
	Context    *panel.CmdContext
	Screen     panel.Screen
}

// Bus routes commands to panel states while emitting trace logs. Commands run
// synchronously; the host applies the outcome before reading the next event.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch runs req against its state.
func (b *Bus) Dispatch(req Request) (panel.Outcome, error) {
	name := req.Command.String()
	events.Command.Dispatch(req.Command.Internal.String(), req.Command.Bang)
	if req.State == nil {
		events.Command.Result(name, panel.Keep.String())
		return panel.Stay(), nil
	}
	out, err := req.State.OnCommand(req.Command, req.Invocation, req.Trigger, req.Context, req.Screen)
	if err != nil {
		events.Command.Error(name, err)
		return out, err
	}
	events.Command.Result(name, out.Kind.String())
	return out, nil
}
