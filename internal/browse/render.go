package browse

import (
	"fmt"

	"github.com/atomicstack/mountpanel/internal/format/cell"
	"github.com/atomicstack/mountpanel/internal/format/size"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/theme"
)

const (
	titleRows = 1
	sizeWidth = 4
)

func (s *State) title() string {
	if s.rootFS == nil {
		return s.root
	}
	return fmt.Sprintf("%s  %s free of %s", s.root, size.Fit4(s.rootFS.Available), size.Fit4(s.rootFS.Size))
}

// Render draws a title row followed by the entries, names on the left and
// file sizes on the right.
func (s *State) Render(surface panel.Surface, area panel.Area, styles *theme.Styles, _ *panel.AppContext) error {
	if styles == nil {
		styles = theme.Default()
	}
	s.list.SetPageHeight(area.Height - titleRows)
	rows, selection := s.list.View()
	scroll, pageHeight := s.list.Scroll, s.list.PageHeight
	put := func(y int, text string) error {
		return surface.Put(area.Left, area.Top+y, text)
	}
	if area.Height > 0 {
		row := panel.NewRow(area.Width)
		row.Write(*styles.Header, s.title())
		row.Fill(*styles.Header)
		if err := put(0, row.String()); err != nil {
			return err
		}
	}
	top, bottom, hasThumb := panel.Thumb(scroll, len(rows), pageHeight)
	p := s.list.Pattern()
	nameWidth := area.Width - 1 - sizeWidth - 1
	for y := titleRows; y < area.Height; y++ {
		line := y - titleRows
		idx := scroll + line
		selected := idx == selection && idx < len(rows)
		txt := *styles.Text
		if selected {
			txt = *styles.SelectedLine
		}
		row := panel.NewRow(area.Width - 1)
		if idx < len(rows) {
			e := rows[idx]
			base := *styles.File
			switch {
			case e.Dir:
				base = *styles.Directory
			case e.Exe:
				base = *styles.Executable
			}
			match := *styles.CharMatch
			if selected {
				base = styles.OnSelected(&base)
				match = styles.OnSelected(styles.CharMatch)
			}
			row.Matched(base, match, e.Name, max(nameWidth, 0), cell.AlignLeft, p)
			row.Write(txt, " ")
			if !e.Dir {
				row.Cell(txt, size.Fit4(uint64(e.Size)), sizeWidth, cell.AlignRight)
			}
		}
		row.Fill(txt)
		text := row.String()
		if area.Width > 0 {
			bar := styles.ScrollbarTrack
			if hasThumb && line >= top && line < bottom {
				bar = styles.ScrollbarThumb
			}
			text += bar.Render(panel.ScrollbarGlyph)
		}
		if err := put(y, text); err != nil {
			return err
		}
	}
	return nil
}
