package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/mountpanel/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	SelectionMark bool
	DisksOnly     bool
}

const (
	envPath          = "MOUNTPANEL_PATH"
	envWidth         = "MOUNTPANEL_WIDTH"
	envHeight        = "MOUNTPANEL_HEIGHT"
	envShowFooter    = "MOUNTPANEL_FOOTER"
	envSelectionMark = "MOUNTPANEL_SELECTION_MARK"
	envDisksOnly     = "MOUNTPANEL_DISKS_ONLY"
	envShowHidden    = "MOUNTPANEL_SHOW_HIDDEN"
	envSkin          = "MOUNTPANEL_SKIN"
	envTrace         = "MOUNTPANEL_TRACE"
	envLogFile       = "MOUNTPANEL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("mountpanel", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	path := fs.String("path", envOrDefault(env, envPath, ""), "path whose filesystem is selected at start (default: working directory)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	mark := fs.Bool("selection-mark", envOrBool(env, envSelectionMark, false), "draw a mark in front of the selected line")
	disksOnly := fs.Bool("disks-only", envOrBool(env, envDisksOnly, false), "only list filesystems backed by a block device")
	hidden := fs.Bool("show-hidden", envOrBool(env, envShowHidden, false), "show hidden files when browsing")
	skin := fs.String("skin", envOrDefault(env, envSkin, ""), "path to a YAML skin overriding the default styles")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 && *path == "" {
		*path = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			Path:          *path,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			SelectionMark: *mark,
			DisksOnly:     *disksOnly,
			ShowHidden:    *hidden,
			Skin:          *skin,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			SelectionMark: *mark,
			DisksOnly:     *disksOnly,
		},
		Flags: map[string]string{
			"path":          *path,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"selectionMark": strconv.FormatBool(*mark),
			"disksOnly":     strconv.FormatBool(*disksOnly),
			"showHidden":    strconv.FormatBool(*hidden),
			"skin":          *skin,
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, Validate(cfg)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects impossible dimensions and unreadable paths.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Path != "" {
		if _, err := os.Stat(cfg.App.Path); err != nil {
			return fmt.Errorf("path: %w", err)
		}
	}
	if cfg.App.Skin != "" {
		if _, err := os.Stat(cfg.App.Skin); err != nil {
			return fmt.Errorf("skin: %w", err)
		}
	}
	return nil
}
