package state

import (
	"errors"

	"github.com/atomicstack/mountpanel/internal/pattern"
)

// ErrEmptyList is returned when a list is built without rows.
var ErrEmptyList = errors.New("list has no rows")

// Row is an entry with a stable identity that can be copied into a derived
// view without aliasing the master sequence.
type Row[T any] interface {
	Key() string
	Clone() T
}

// Matcher decides whether a row belongs to the filtered view.
type Matcher[T any] func(row T, p pattern.Pattern) bool

// Overlay is the filtered view present while a non-empty pattern is active.
type Overlay[T any] struct {
	Pattern   pattern.Pattern
	Items     []T
	Selection int
}

// List holds the master rows, their selection and viewport, and the optional
// filter overlay. The master selection is only consulted while an overlay is
// active; keyboard navigation targets the overlay.
type List[T Row[T]] struct {
	items      []T
	Selection  int
	Scroll     int
	PageHeight int
	overlay    *Overlay[T]
}

// NewList copies items into a list selecting the given index (clamped).
func NewList[T Row[T]](items []T, selection int) (*List[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyList
	}
	if selection < 0 || selection >= len(items) {
		selection = 0
	}
	return &List[T]{items: cloneRows(items), Selection: selection}, nil
}

// Items returns the master rows.
func (l *List[T]) Items() []T {
	return l.items
}

// Overlay returns the active overlay or nil.
func (l *List[T]) Overlay() *Overlay[T] {
	return l.overlay
}

// Filtering reports whether an overlay is active.
func (l *List[T]) Filtering() bool {
	return l.overlay != nil
}

// Pattern returns the active pattern or nil.
func (l *List[T]) Pattern() pattern.Pattern {
	if l.overlay == nil {
		return nil
	}
	return l.overlay.Pattern
}

// Count returns the number of addressable rows in the active view.
func (l *List[T]) Count() int {
	if l.overlay != nil {
		return len(l.overlay.Items)
	}
	return len(l.items)
}

// View returns the active rows and the selection within them.
func (l *List[T]) View() ([]T, int) {
	if l.overlay != nil {
		return l.overlay.Items, l.overlay.Selection
	}
	return l.items, l.Selection
}

// Selected returns the selected row of the active view. An empty overlay falls
// back to the master selection.
func (l *List[T]) Selected() T {
	if l.overlay != nil && len(l.overlay.Items) > 0 {
		return l.overlay.Items[l.overlay.Selection]
	}
	return l.items[l.Selection]
}

// SelectionIndex returns the selection within the active view.
func (l *List[T]) SelectionIndex() int {
	if l.overlay != nil {
		return l.overlay.Selection
	}
	return l.Selection
}

// TryScroll applies cmd to the scroll offset and reports whether it moved.
func (l *List[T]) TryScroll(cmd ScrollCommand) bool {
	old := l.Scroll
	l.Scroll = cmd.Apply(l.Scroll, l.Count(), l.PageHeight)
	return l.Scroll != old
}

// SetPageHeight records the rows available at the last render and keeps the
// offset inside the valid range.
func (l *List[T]) SetPageHeight(h int) {
	if h < 0 {
		h = 0
	}
	l.PageHeight = h
	l.TryScroll(Lines(0))
}

// ApplyPattern rebuilds the overlay from p. A nil p drops the overlay and the
// master state, untouched while filtering, becomes active again.
func (l *List[T]) ApplyPattern(p pattern.Pattern, keep Matcher[T]) {
	if p == nil {
		l.overlay = nil
		l.TryScroll(Lines(0))
		return
	}
	selection := 0
	var filtered []T
	for idx, row := range l.items {
		if !keep(row, p) {
			continue
		}
		if idx <= l.Selection {
			selection = len(filtered)
		}
		filtered = append(filtered, row.Clone())
	}
	l.overlay = &Overlay[T]{Pattern: p, Items: filtered, Selection: selection}
	l.EnsureSelectionVisible()
}

// Back leaves filtering, moving the master selection to the row that was
// selected in the overlay, matched by identity. It returns false when no
// overlay was active.
func (l *List[T]) Back() bool {
	f := l.overlay
	if f == nil {
		return false
	}
	l.overlay = nil
	if len(f.Items) > 0 {
		key := f.Items[f.Selection].Key()
		for i, row := range l.items {
			if row.Key() == key {
				l.Selection = i
				break
			}
		}
	}
	l.EnsureSelectionVisible()
	return true
}

// MoveSelection moves the active selection by delta, stopping at the bounds.
func (l *List[T]) MoveSelection(delta int) bool {
	sel := &l.Selection
	n := len(l.items)
	if l.overlay != nil {
		sel = &l.overlay.Selection
		n = len(l.overlay.Items)
	}
	if n == 0 {
		return false
	}
	target := *sel + delta
	if target < 0 {
		target = 0
	}
	if target >= n {
		target = n - 1
	}
	if target == *sel {
		return false
	}
	*sel = target
	l.EnsureSelectionVisible()
	return true
}

// SelectMaster sets the master selection directly, ignoring any overlay.
func (l *List[T]) SelectMaster(row int) bool {
	if row < 0 || row >= len(l.items) {
		return false
	}
	l.Selection = row
	return true
}

// EnsureSelectionVisible adjusts the scroll offset so the active selection is
// on screen.
func (l *List[T]) EnsureSelectionVisible() {
	count := l.Count()
	if l.PageHeight <= 0 || count == 0 {
		l.Scroll = 0
		return
	}
	maxOffset := count - l.PageHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Scroll > maxOffset {
		l.Scroll = maxOffset
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
	sel := l.SelectionIndex()
	if sel < l.Scroll {
		l.Scroll = sel
	}
	if upper := l.Scroll + l.PageHeight - 1; sel > upper {
		l.Scroll = sel - l.PageHeight + 1
		if l.Scroll > maxOffset {
			l.Scroll = maxOffset
		}
	}
}

func cloneRows[T Row[T]](items []T) []T {
	dup := make([]T, len(items))
	for i, row := range items {
		dup[i] = row.Clone()
	}
	return dup
}
