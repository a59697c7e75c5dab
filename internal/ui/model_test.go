package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/mountpanel/internal/browse"
	"github.com/atomicstack/mountpanel/internal/filesystems"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/options"
	"github.com/atomicstack/mountpanel/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type fixture struct {
	root string
	data string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.Mkdir(data, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	return fixture{root: root, data: data}
}

func (f fixture) loader() *mounts.Loader {
	stats := func() *mounts.Stats {
		return &mounts.Stats{Size: 100_000_000_000, Used: 40_000_000_000, Available: 60_000_000_000}
	}
	list := []mounts.Mount{
		{ID: 1, Dev: mounts.DeviceID{Major: 251, Minor: 1}, FS: "/dev/sda1", FSType: "ext4", MountPoint: f.root, Disk: &mounts.Disk{Name: "sda"}, Stats: stats()},
		{ID: 2, Dev: mounts.DeviceID{Major: 251, Minor: 2}, FS: "tank", FSType: "zfs", MountPoint: f.data, Disk: &mounts.Disk{Name: "sdb", Rotational: true}, Stats: stats()},
	}
	return mounts.NewLoader(mounts.SourceFunc(func() ([]mounts.Mount, error) { return list, nil }))
}

func newTestHarness(t *testing.T, f fixture, footer bool) *Harness {
	t.Helper()
	m, err := NewModel(Options{
		Path:       f.root,
		Width:      120,
		Height:     12,
		ShowFooter: footer,
		Tree:       options.Default(),
		Loader:     f.loader(),
	})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return NewHarness(m)
}

func topOf(t *testing.T, h *Harness) panel.State {
	t.Helper()
	p := h.Model().focused()
	if p == nil {
		t.Fatalf("no focused panel")
	}
	return p.top()
}

func filesystemsOf(t *testing.T, h *Harness) *filesystems.State {
	t.Helper()
	st, ok := topOf(t, h).(*filesystems.State)
	if !ok {
		t.Fatalf("expected filesystems state on top, got %T", topOf(t, h))
	}
	return st
}

func TestNewModelPropagatesLoaderErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewModel(Options{
		Path:   t.TempDir(),
		Loader: mounts.NewLoader(mounts.SourceFunc(func() ([]mounts.Mount, error) { return nil, boom })),
	})
	if !errors.Is(err, boom) || !errors.Is(err, filesystems.ErrMountList) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}
}

func TestTypingFiltersFocusedPanel(t *testing.T) {
	h := newTestHarness(t, newFixture(t), false)
	h.Type("zfs")
	st := filesystemsOf(t, h)
	if st.Count() != 1 {
		t.Fatalf("expected one matching mount, got %d", st.Count())
	}
	if got := h.Model().focused().prompt.Text; got != "zfs" {
		t.Fatalf("expected prompt text zfs, got %q", got)
	}
	if !strings.Contains(ansi.Strip(h.View()), "» zfs") {
		t.Fatalf("expected prompt in view:\n%s", ansi.Strip(h.View()))
	}
	h.Press(tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace)
	if st.Count() != 2 {
		t.Fatalf("expected full list after erasing the prompt, got %d", st.Count())
	}
}

func TestEscClearsPromptBeforePopping(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Type("zfs")
	h.Press(tea.KeyEsc)
	if h.Quit() {
		t.Fatalf("first esc should only clear the filter")
	}
	if h.Model().focused().prompt.Text != "" {
		t.Fatalf("expected prompt cleared")
	}
	st := filesystemsOf(t, h)
	if st.Count() != 2 || st.SelectedPath() != f.data {
		t.Fatalf("expected full list with filtered selection kept, got %d %q", st.Count(), st.SelectedPath())
	}
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("esc on the last state should quit")
	}
	if h.Model().Output() != "" {
		t.Fatalf("back should not produce output, got %q", h.Model().Output())
	}
}

func TestEnterOpensBrowseOnSelectedMount(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Press(tea.KeyDown, tea.KeyEnter)
	br, ok := topOf(t, h).(*browse.State)
	if !ok {
		t.Fatalf("expected browse state, got %T", topOf(t, h))
	}
	if br.Root() != f.data {
		t.Fatalf("expected browse root %q, got %q", f.data, br.Root())
	}
	if !strings.Contains(ansi.Strip(h.View()), "notes.txt") {
		t.Fatalf("expected directory listing in view:\n%s", ansi.Strip(h.View()))
	}
	h.Press(tea.KeyEsc)
	filesystemsOf(t, h)
	if h.Quit() {
		t.Fatalf("popping browse should return to filesystems")
	}
}

func TestPopClearsFilterOfRevealedState(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Type("zfs")
	h.Press(tea.KeyEnter)
	if _, ok := topOf(t, h).(*browse.State); !ok {
		t.Fatalf("expected browse state, got %T", topOf(t, h))
	}
	h.Press(tea.KeyEsc)
	st := filesystemsOf(t, h)
	if got := h.Model().focused().prompt.Text; got != "" {
		t.Fatalf("expected empty prompt after pop, got %q", got)
	}
	if st.Count() != 2 {
		t.Fatalf("expected unfiltered list under an empty prompt, got %d rows", st.Count())
	}
	if !strings.Contains(ansi.Strip(h.View()), "/dev/sda1") {
		t.Fatalf("expected every mount in view:\n%s", ansi.Strip(h.View()))
	}
}

func TestOpenInNewPanel(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Press(tea.KeyCtrlO)
	m := h.Model()
	if len(m.panels) != 2 || m.focus != 1 {
		t.Fatalf("expected focus on a second panel, got %d panels focus %d", len(m.panels), m.focus)
	}
	if _, ok := m.panels[0].top().(*filesystems.State); !ok {
		t.Fatalf("expected filesystems to stay in the first panel")
	}
	h.Press(tea.KeyEsc)
	if len(m.panels) != 1 || m.focus != 0 || h.Quit() {
		t.Fatalf("expected empty panel removed, got %d panels focus %d", len(m.panels), m.focus)
	}
}

func TestPanelSidewaysSplitsThenMovesFocus(t *testing.T) {
	h := newTestHarness(t, newFixture(t), false)
	h.Press(tea.KeyCtrlRight)
	m := h.Model()
	if len(m.panels) != 2 || m.focus != 1 {
		t.Fatalf("expected split to the right, got %d panels focus %d", len(m.panels), m.focus)
	}
	h.Press(tea.KeyCtrlLeft)
	if len(m.panels) != 2 || m.focus != 0 {
		t.Fatalf("expected focus moved left without a new panel, got %d panels focus %d", len(m.panels), m.focus)
	}
	h.Press(tea.KeyCtrlLeft)
	if len(m.panels) != 3 || m.focus != 0 {
		t.Fatalf("expected split to the left, got %d panels focus %d", len(m.panels), m.focus)
	}
}

func TestPanelSplitNeedsRoom(t *testing.T) {
	f := newFixture(t)
	m, err := NewModel(Options{Path: f.root, Width: 40, Height: 12, Tree: options.Default(), Loader: f.loader()})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	h := NewHarness(m)
	h.Press(tea.KeyCtrlRight)
	if len(m.panels) != 1 {
		t.Fatalf("expected no split on a narrow screen")
	}
	if !strings.Contains(ansi.Strip(h.View()), "not enough room") {
		t.Fatalf("expected error on status line:\n%s", ansi.Strip(h.View()))
	}
}

func TestOpenLeaveQuitsWithMountPoint(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Press(tea.KeyDown)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if got := h.Model().Output(); got != f.data {
		t.Fatalf("expected output %q, got %q", f.data, got)
	}
}

func TestOpenLeaveFromBrowseQuitsWithEntry(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.Press(tea.KeyDown, tea.KeyEnter)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if got := h.Model().Output(); got != filepath.Join(f.data, "notes.txt") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestQuitKey(t *testing.T) {
	h := newTestHarness(t, newFixture(t), false)
	h.Type("ab")
	h.Press(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit while typing")
	}
}

func TestMouseClickSelectsRow(t *testing.T) {
	f := newFixture(t)
	h := newTestHarness(t, f, false)
	h.View()
	h.Send(tea.MouseMsg{X: 2, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := filesystemsOf(t, h).SelectedPath(); got != f.data {
		t.Fatalf("expected click to select %q, got %q", f.data, got)
	}
	h.Send(tea.MouseMsg{X: 2, Y: 11, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := filesystemsOf(t, h).SelectedPath(); got != f.data {
		t.Fatalf("click on the prompt line must not change selection, got %q", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	f := newFixture(t)
	m, err := NewModel(Options{Path: f.root, Height: 10, Tree: options.Default(), Loader: f.loader()})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.screenWidth() != 90 || m.screenHeight() != 10 {
		t.Fatalf("expected 90x10, got %dx%d", m.screenWidth(), m.screenHeight())
	}
}
