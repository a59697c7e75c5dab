package state

// ScrollKind selects how a ScrollCommand moves the offset.
type ScrollKind int

const (
	ScrollLines ScrollKind = iota
	ScrollPages
	ScrollTop
	ScrollBottom
)

// ScrollCommand is a relative or absolute scroll request.
type ScrollCommand struct {
	Kind ScrollKind
	N    int
}

// Lines scrolls by n rows (negative scrolls up).
func Lines(n int) ScrollCommand { return ScrollCommand{Kind: ScrollLines, N: n} }

// Pages scrolls by n pages.
func Pages(n int) ScrollCommand { return ScrollCommand{Kind: ScrollPages, N: n} }

// Top scrolls to the first row.
func Top() ScrollCommand { return ScrollCommand{Kind: ScrollTop} }

// Bottom scrolls so the last page is visible.
func Bottom() ScrollCommand { return ScrollCommand{Kind: ScrollBottom} }

// Apply returns the new offset, clamped to [0, max(0, count-pageHeight)].
func (c ScrollCommand) Apply(scroll, count, pageHeight int) int {
	maxScroll := count - pageHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	target := scroll
	switch c.Kind {
	case ScrollLines:
		target = scroll + c.N
	case ScrollPages:
		page := pageHeight
		if page < 1 {
			page = 1
		}
		target = scroll + c.N*page
	case ScrollTop:
		target = 0
	case ScrollBottom:
		target = maxScroll
	}
	if target < 0 {
		return 0
	}
	if target > maxScroll {
		return maxScroll
	}
	return target
}
