package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atomicstack/mountpanel/internal/app"
	"github.com/atomicstack/mountpanel/internal/config"
	"github.com/atomicstack/mountpanel/internal/logging"
	"github.com/atomicstack/mountpanel/internal/logging/events"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	target := pickScreen(os.Stdout, os.Stderr)
	events.App.Start(startupTrace(runtimeCfg, target.name))

	output, err := app.Run(runtimeCfg.App, target.w)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if output != "" {
		fmt.Println(output)
	}
}

type screen struct {
	name string
	w    io.Writer
}

// pickScreen draws on stdout when it is a terminal. When stdout is captured,
// as in cd "$(mountpanel)", the panels go to stderr and stdout only receives
// the chosen path.
func pickScreen(stdout, stderr *os.File) screen {
	if term.IsTerminal(int(stdout.Fd())) {
		return screen{name: "stdout", w: stdout}
	}
	return screen{name: "stderr", w: stderr}
}

// startupTrace describes what the panel is about to list.
func startupTrace(cfg config.Config, screenName string) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":          cfg.Args,
		"flags":         cfg.Flags,
		"trace":         cfg.Logging.Trace,
		"logFile":       cfg.Logging.FilePath,
		"disksOnly":     cfg.App.DisksOnly,
		"selectionMark": cfg.App.SelectionMark,
		"showHidden":    cfg.App.ShowHidden,
		"skin":          cfg.App.Skin,
		"mountSource":   mounts.DefaultSourceName(),
		"screen":        screenName,
	}
	path := cfg.App.Path
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		payload["pathError"] = err.Error()
		return payload
	}
	payload["path"] = abs
	if dev, err := mounts.DeviceOf(abs); err == nil {
		payload["device"] = dev.String()
	} else {
		payload["deviceError"] = err.Error()
	}
	return payload
}
