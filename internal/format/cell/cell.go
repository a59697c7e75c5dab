// Package cell pads and crops terminal text by display width.
package cell

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Crop cuts text so it fits in width cells.
func Crop(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}

// Pad crops text to width and fills the remainder with spaces according to
// align. Centered text leans left when the padding is odd.
func Pad(text string, width int, align Alignment) string {
	text = Crop(text, width)
	gap := width - Width(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return spaces(gap) + text
	case AlignCenter:
		left := gap / 2
		return spaces(left) + text + spaces(gap-left)
	default:
		return text + spaces(gap)
	}
}

func spaces(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(" ", count)
}
