package panel

// ScrollbarGlyph is drawn in the rightmost cell of every data row.
const ScrollbarGlyph = "▐"

// Thumb returns the rows [top, bottom) of the scrollbar thumb inside a page
// of pageHeight rows. ok is false when every row fits and no scrollbar is
// needed.
func Thumb(scroll, count, pageHeight int) (top, bottom int, ok bool) {
	if pageHeight <= 0 || count <= pageHeight {
		return 0, 0, false
	}
	size := pageHeight * pageHeight / count
	if size < 1 {
		size = 1
	}
	top = scroll * pageHeight / count
	if scroll+pageHeight >= count {
		top = pageHeight - size
	}
	if top+size > pageHeight {
		top = pageHeight - size
	}
	return top, top + size, true
}
