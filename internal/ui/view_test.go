package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewFillsScreen(t *testing.T) {
	h := newTestHarness(t, newFixture(t), true)
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "filesystem") {
		t.Fatalf("expected table header first, got %q", lines[0])
	}
	if !strings.Contains(lines[10], "type to search)") {
		t.Fatalf("expected prompt placeholder, got %q", lines[10])
	}
	if !strings.Contains(lines[11], "quit") {
		t.Fatalf("expected help footer, got %q", lines[11])
	}
}

func TestViewSplitsPanelsEvenly(t *testing.T) {
	h := newTestHarness(t, newFixture(t), false)
	h.Press(tea.KeyCtrlO)
	widths := h.Model().panelWidths()
	if len(widths) != 2 || widths[0] != 60 || widths[1] != 60 {
		t.Fatalf("unexpected widths %v", widths)
	}
	for _, line := range strings.Split(h.View(), "\n")[:10] {
		if w := ansi.StringWidth(line); w != 120 {
			t.Fatalf("expected panel rows 120 wide, got %d: %q", w, ansi.Strip(line))
		}
	}
	if idx, left := h.Model().panelAt(61); idx != 1 || left != 60 {
		t.Fatalf("expected second panel at column 61, got %d %d", idx, left)
	}
}

func TestInfoMessageShownOnStatusLine(t *testing.T) {
	h := newTestHarness(t, newFixture(t), false)
	h.Model().setInfo("copied /data")
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	if !strings.Contains(lines[len(lines)-2], "copied /data") {
		t.Fatalf("expected info on status line, got %q", lines[len(lines)-2])
	}
	h.Type("x")
	if h.Model().currentInfo() != "" {
		t.Fatalf("editing the prompt should clear the info message")
	}
}
