package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/mountpanel/internal/filesystems"
	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/theme"
	"github.com/atomicstack/mountpanel/internal/ui/command"
	uistate "github.com/atomicstack/mountpanel/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minPanelWidth = 24
	wheelLines    = 3
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Path       string
	Width      int
	Height     int
	ShowFooter bool
	App        panel.AppContext
	Tree       options.Tree
	Styles     *theme.Styles
	Loader     *mounts.Loader
}

// panelStack is one panel: its stack of states and its filter prompt.
type panelStack struct {
	states []panel.State
	prompt uistate.Prompt
}

func (p *panelStack) top() panel.State {
	if len(p.states) == 0 {
		return nil
	}
	return p.states[len(p.states)-1]
}

// Model implements the Bubble Tea model hosting the panels.
type Model struct {
	panels      []*panelStack
	focus       int
	app         *panel.AppContext
	styles      *theme.Styles
	keys        keyMap
	help        help.Model
	bus         *command.Bus
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	output      string

	handlers map[reflect.Type]msgHandler
}

// NewModel opens the filesystems panel on opts.Path. It fails when that
// panel cannot be built.
func NewModel(opts Options) (*Model, error) {
	app := opts.App
	root, err := filesystems.New(opts.Path, opts.Tree, &app, opts.Loader)
	if err != nil {
		return nil, err
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		panels:     []*panelStack{{states: []panel.State{root}}},
		app:        &app,
		styles:     styles,
		keys:       defaultKeyMap(),
		help:       help.New(),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	events.Panel.Open(root.Name(), root.SelectedPath(), 0)
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Output is the path to print once the program has exited, if any.
func (m *Model) Output() string {
	return m.output
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.screenWidth()
	return nil
}

func (m *Model) screenWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) screenHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

func (m *Model) screen() panel.Screen {
	return panel.Screen{Width: m.screenWidth(), Height: m.screenHeight()}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearStatus() {
	m.errMsg = ""
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
