package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Path != "" || cfg.App.Width != 0 || cfg.App.ShowFooter || cfg.App.DisksOnly {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	env := []string{
		"MOUNTPANEL_WIDTH=100",
		"MOUNTPANEL_DISKS_ONLY=true",
		"MOUNTPANEL_SELECTION_MARK=1",
		"MOUNTPANEL_TRACE=yes",
		"MOUNTPANEL_LOG_FILE=/tmp/mountpanel.log",
	}
	cfg, err := LoadArgs([]string{"-width", "70", "-footer", "-show-hidden", "-path", dir}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("expected flag width 70, got %d", cfg.App.Width)
	}
	if !cfg.App.DisksOnly || !cfg.Features.DisksOnly || !cfg.App.SelectionMark {
		t.Fatalf("expected env booleans applied, got %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatalf("unparseable boolean should fall back to false")
	}
	if cfg.Logging.FilePath != "/tmp/mountpanel.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if !cfg.App.ShowFooter || !cfg.App.ShowHidden || cfg.App.Path != dir {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.Flags["width"] != "70" || cfg.Flags["path"] != dir {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}

func TestLoadArgsPositionalPath(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadArgs([]string{dir}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Path != dir {
		t.Fatalf("expected positional path, got %q", cfg.App.Path)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected negative height to fail")
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := LoadArgs([]string{"-path", missing}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing path error, got %v", err)
	}
}
