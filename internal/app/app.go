package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/theme"
	"github.com/atomicstack/mountpanel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Path          string
	Width         int
	Height        int
	ShowFooter    bool
	SelectionMark bool
	DisksOnly     bool
	ShowHidden    bool
	Skin          string
}

// Options builds the UI model options from cfg.
func Options(cfg Config, loader *mounts.Loader) (ui.Options, error) {
	path := cfg.Path
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ui.Options{}, fmt.Errorf("resolve path: %w", err)
	}
	styles, err := theme.Load(cfg.Skin)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load skin: %w", err)
	}
	tree := options.Default()
	tree.ShowHidden = cfg.ShowHidden
	return ui.Options{
		Path:       abs,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		App: panel.AppContext{
			ShowSelectionMark: cfg.SelectionMark,
			DisksOnly:         cfg.DisksOnly,
		},
		Tree:   tree,
		Styles: styles,
		Loader: loader,
	}, nil
}

// Run bootstraps and executes the Bubble Tea program, drawing on screen
// (stdout when nil). It returns the path chosen with open_leave, or an empty
// string.
func Run(cfg Config, screen io.Writer) (string, error) {
	opts, err := Options(cfg, mounts.NewLoader(nil))
	if err != nil {
		return "", err
	}
	model, err := ui.NewModel(opts)
	if err != nil {
		return "", err
	}
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if screen != nil {
		programOpts = append(programOpts, tea.WithOutput(screen))
	}
	program := tea.NewProgram(model, programOpts...)
	_, err = program.Run()
	output := model.Output()
	events.App.Exit(output)
	if errors.Is(err, tea.ErrProgramKilled) {
		return output, nil
	}
	return output, err
}
