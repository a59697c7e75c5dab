package state

import (
	"errors"
	"testing"

	"github.com/atomicstack/mountpanel/internal/pattern"
)

type testRow struct {
	id   string
	name string
}

func (r testRow) Key() string     { return r.id }
func (r testRow) Clone() testRow { return r }

func matchName(r testRow, p pattern.Pattern) bool {
	_, ok := p.Score(r.name)
	return ok
}

func newTestList(t *testing.T, names ...string) *List[testRow] {
	t.Helper()
	rows := make([]testRow, len(names))
	for i, name := range names {
		rows[i] = testRow{id: name, name: name}
	}
	l, err := NewList(rows, 0)
	if err != nil {
		t.Fatalf("new list: %v", err)
	}
	return l
}

func TestNewListRejectsEmpty(t *testing.T) {
	if _, err := NewList[testRow](nil, 0); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
}

func TestNewListClampsSelection(t *testing.T) {
	l, err := NewList([]testRow{{id: "a"}, {id: "b"}}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if l.Selection != 0 {
		t.Fatalf("expected out-of-range selection to reset to 0, got %d", l.Selection)
	}
}

func TestApplyPatternFiltersInOrder(t *testing.T) {
	l := newTestList(t, "ext4", "xfs", "btrfs", "xfs-backup")
	l.ApplyPattern(pattern.Parse("xfs"), matchName)
	if !l.Filtering() {
		t.Fatalf("expected overlay")
	}
	items, sel := l.View()
	if len(items) != 2 || items[0].name != "xfs" || items[1].name != "xfs-backup" {
		t.Fatalf("unexpected filtered rows %#v", items)
	}
	if sel != 0 {
		t.Fatalf("expected first match selected, got %d", sel)
	}
	if l.Count() != 2 {
		t.Fatalf("expected count 2, got %d", l.Count())
	}
}

func TestApplyPatternCarriesSelection(t *testing.T) {
	l := newTestList(t, "alpha", "beta", "gamma", "delta")
	l.Selection = 2
	l.ApplyPattern(pattern.Parse("a"), matchName)
	// every row contains an "a"; the last kept index <= 2 is gamma at position 2
	if got := l.SelectionIndex(); got != 2 {
		t.Fatalf("expected carried selection 2, got %d", got)
	}

	l.ApplyPattern(pattern.Parse("lt"), matchName)
	// only delta (index 3) matches; nothing at or before 2 so selection is 0
	if got := l.SelectionIndex(); got != 0 {
		t.Fatalf("expected selection 0, got %d", got)
	}
	if l.Selection != 2 {
		t.Fatalf("master selection must not change while filtering, got %d", l.Selection)
	}
}

func TestApplyPatternNoMatches(t *testing.T) {
	l := newTestList(t, "one", "two")
	l.Selection = 1
	l.ApplyPattern(pattern.Parse("zzz"), matchName)
	if l.Count() != 0 || l.SelectionIndex() != 0 {
		t.Fatalf("expected empty overlay with selection 0")
	}
	if got := l.Selected(); got.name != "two" {
		t.Fatalf("expected fallback to master selection, got %#v", got)
	}
	if l.MoveSelection(1) {
		t.Fatalf("no movement possible in empty overlay")
	}
}

func TestClearingRestoresMasterSelection(t *testing.T) {
	l := newTestList(t, "one", "two", "three")
	l.Selection = 1
	l.ApplyPattern(pattern.Parse("o"), matchName)
	l.MoveSelection(1)
	l.MoveSelection(1)
	l.ApplyPattern(nil, matchName)
	if l.Filtering() {
		t.Fatalf("expected overlay dropped")
	}
	if l.Selection != 1 {
		t.Fatalf("expected master selection 1 restored, got %d", l.Selection)
	}
	if len(l.Items()) != 3 {
		t.Fatalf("expected master rows intact")
	}
}

func TestBackResolvesByIdentity(t *testing.T) {
	l := newTestList(t, "one", "two", "three", "four")
	l.ApplyPattern(pattern.Parse("t"), matchName)
	// filtered: two, three
	l.MoveSelection(1)
	if !l.Back() {
		t.Fatalf("expected Back to drop the overlay")
	}
	if l.Selection != 2 {
		t.Fatalf("expected master selection on three (2), got %d", l.Selection)
	}
	if l.Back() {
		t.Fatalf("expected Back without overlay to report false")
	}
}

func TestBackWithEmptyOverlayKeepsSelection(t *testing.T) {
	l := newTestList(t, "one", "two")
	l.Selection = 1
	l.ApplyPattern(pattern.Parse("zzz"), matchName)
	l.Back()
	if l.Selection != 1 {
		t.Fatalf("expected selection unchanged, got %d", l.Selection)
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	if l.MoveSelection(-1) {
		t.Fatalf("expected no-op at top")
	}
	l.MoveSelection(1)
	l.MoveSelection(1)
	if l.MoveSelection(1) {
		t.Fatalf("expected no-op at bottom")
	}
	if l.Selection != 2 {
		t.Fatalf("expected selection 2, got %d", l.Selection)
	}
}

func TestSelectMasterIgnoresOverlay(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	l.ApplyPattern(pattern.Parse("c"), matchName)
	if !l.SelectMaster(0) {
		t.Fatalf("expected click path to accept row 0")
	}
	if l.Selection != 0 || l.SelectionIndex() != 0 {
		t.Fatalf("unexpected selection state")
	}
	if l.SelectMaster(3) {
		t.Fatalf("expected out of range row to be rejected")
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	l := newTestList(t, "a", "b", "c", "d", "e")
	l.SetPageHeight(2)
	l.Selection = 4
	l.EnsureSelectionVisible()
	if l.Scroll != 3 {
		t.Fatalf("expected scroll 3, got %d", l.Scroll)
	}
	l.Selection = 1
	l.EnsureSelectionVisible()
	if l.Scroll != 1 {
		t.Fatalf("expected scroll 1, got %d", l.Scroll)
	}
}

func TestTryScrollReportsChange(t *testing.T) {
	l := newTestList(t, "a", "b", "c", "d", "e")
	l.SetPageHeight(2)
	if !l.TryScroll(Pages(1)) {
		t.Fatalf("expected scroll to move")
	}
	if l.Scroll != 2 {
		t.Fatalf("expected scroll 2, got %d", l.Scroll)
	}
	l.TryScroll(Pages(5))
	if l.Scroll != 3 {
		t.Fatalf("expected clamp at 3, got %d", l.Scroll)
	}
	if l.TryScroll(Lines(1)) {
		t.Fatalf("expected no change at bottom")
	}
}
