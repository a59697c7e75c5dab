package events

import "github.com/atomicstack/mountpanel/internal/logging"

type PanelTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Panel   = PanelTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (PanelTracer) Open(kind, path string, index int) {
	logging.Trace("panel.open", map[string]interface{}{"kind": kind, "path": path, "panel": index})
}

func (PanelTracer) Pop(kind string, index int) {
	logging.Trace("panel.pop", map[string]interface{}{"kind": kind, "panel": index})
}

func (PanelTracer) Focus(index int) {
	logging.Trace("panel.focus", map[string]interface{}{"panel": index})
}

func (PanelTracer) Selection(kind string, index int, path string) {
	logging.Trace("panel.selection", map[string]interface{}{"kind": kind, "selection": index, "path": path})
}

func (PanelTracer) Click(x, y, row int) {
	logging.Trace("panel.click", map[string]interface{}{"x": x, "y": y, "row": row})
}

func (FilterTracer) Apply(pattern string, matches, selection int) {
	logging.Trace("filter.apply", map[string]interface{}{
		"pattern":   pattern,
		"matches":   matches,
		"selection": selection,
	})
}

func (FilterTracer) Cleared(kind string) {
	logging.Trace("filter.clear", map[string]interface{}{"kind": kind})
}

func (FilterTracer) Edit(filter string, cursor int) {
	logging.Trace("filter.edit", map[string]interface{}{"filter": filter, "cursor": cursor})
}

func (CommandTracer) Dispatch(name string, bang bool) {
	logging.Trace("command.dispatch", map[string]interface{}{"command": name, "bang": bang})
}

func (CommandTracer) Result(name, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"command": name, "outcome": outcome})
}

func (CommandTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"command": name, "error": err.Error()})
}
