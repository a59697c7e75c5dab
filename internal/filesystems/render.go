package filesystems

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/mountpanel/internal/format/cell"
	"github.com/atomicstack/mountpanel/internal/format/size"
	"github.com/atomicstack/mountpanel/internal/layout"
	"github.com/atomicstack/mountpanel/internal/mounts"
	"github.com/atomicstack/mountpanel/internal/panel"
	"github.com/atomicstack/mountpanel/internal/pattern"
	"github.com/atomicstack/mountpanel/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// headerRows is the number of rows above the data: labels and separator.
const headerRows = 2

const (
	border    = "│"
	branch    = "┼"
	rule      = "─"
	markGlyph = "▶"
	barGlyph  = "█"
	barGap    = " "
)

// palette holds the styles of one data row.
type palette struct {
	txt    lipgloss.Style
	match  lipgloss.Style
	border lipgloss.Style
}

func newPalette(styles *theme.Styles, selected bool) palette {
	if selected {
		return palette{
			txt:    *styles.SelectedLine,
			match:  styles.OnSelected(styles.CharMatch),
			border: styles.OnSelected(styles.TableBorder),
		}
	}
	return palette{
		txt:    *styles.Text,
		match:  *styles.CharMatch,
		border: *styles.TableBorder,
	}
}

// Render draws the table into area. The page height and scroll offset are
// updated before anything is written, so a failing surface leaves a
// consistent state behind.
func (s *State) Render(surface panel.Surface, area panel.Area, styles *theme.Styles, app *panel.AppContext) error {
	if styles == nil {
		styles = theme.Default()
	}
	s.list.SetPageHeight(area.Height - headerRows)
	rows, selection := s.list.View()
	scroll, pageHeight := s.list.Scroll, s.list.PageHeight

	widths := layout.Widths{SelectionMark: app != nil && app.ShowSelectionMark}
	for _, m := range rows {
		widths.Observe(m.FS, m.FSType, m.MountPoint)
	}
	plan := layout.Compute(area.Width, widths)

	put := func(y int, text string) error {
		return surface.Put(area.Left, area.Top+y, text)
	}
	if area.Height > 0 {
		if err := put(0, header(plan, area.Width, styles)); err != nil {
			return err
		}
	}
	if area.Height > 1 {
		if err := put(1, separator(plan, area.Width, styles)); err != nil {
			return err
		}
	}
	top, bottom, hasThumb := panel.Thumb(scroll, len(rows), pageHeight)
	p := s.list.Pattern()
	for y := headerRows; y < area.Height; y++ {
		line := y - headerRows
		idx := scroll + line
		selected := idx == selection && idx < len(rows)
		colors := newPalette(styles, selected)
		row := panel.NewRow(area.Width - 1)
		if idx < len(rows) {
			writeMount(row, rows[idx], plan, selected, colors, styles, p)
		}
		row.Fill(colors.txt)
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

func header(plan layout.Plan, width int, styles *theme.Styles) string {
	label, line := *styles.Header, *styles.TableBorder
	row := panel.NewRow(width)
	row.Cell(label, layout.FSLabel, plan.FSCell, cell.AlignLeft)
	row.Write(line, border)
	if plan.Disk {
		row.Write(label, "dsk")
		row.Write(line, border)
	}
	if plan.Type {
		row.Cell(label, "type", plan.FSType, cell.AlignCenter)
		row.Write(line, border)
	}
	row.Write(label, "size")
	row.Write(line, border)
	if plan.Use {
		text := "use"
		if plan.UseCell > layout.UseWidth {
			text = "usage"
		}
		row.Cell(label, text, plan.UseCell, cell.AlignCenter)
		row.Write(line, border)
	}
	row.Write(label, "free")
	row.Write(line, border)
	row.Write(label, layout.MountPointLabel)
	row.Fill(line)
	return row.String()
}

func separator(plan layout.Plan, width int, styles *theme.Styles) string {
	line := *styles.TableBorder
	row := panel.NewRow(width)
	column := func(w int) {
		row.Write(line, strings.Repeat(rule, w)+branch)
	}
	column(plan.FSCell)
	if plan.Disk {
		column(layout.DiskWidth)
	}
	if plan.Type {
		column(plan.FSType)
	}
	column(layout.SizeWidth)
	if plan.Use {
		column(plan.UseCell)
	}
	column(layout.FreeWidth)
	row.Repeat(line, rule)
	return row.String()
}

func writeMount(row *panel.Row, m mounts.Mount, plan layout.Plan, selected bool, c palette, styles *theme.Styles, p pattern.Pattern) {
	if plan.SelectionMark {
		mark := " "
		if selected {
			mark = markGlyph
		}
		row.Write(c.txt, mark)
	}
	row.Matched(c.txt, c.match, m.FS, plan.FS, cell.AlignLeft, p)
	row.Write(c.border, border)
	if plan.Disk {
		if m.Disk != nil {
			row.Matched(c.txt, c.match, m.Disk.TypeLabel(), layout.DiskWidth, cell.AlignLeft, p)
		} else {
			row.Write(c.txt, panel.Blank(layout.DiskWidth))
		}
		row.Write(c.border, border)
	}
	if plan.Type {
		row.Matched(c.txt, c.match, m.FSType, plan.FSType, cell.AlignCenter, p)
		row.Write(c.border, border)
	}
	if st := m.Stats; st != nil && st.Size > 0 {
		row.Write(c.txt, fit(st.Size))
		row.Write(c.border, border)
		if plan.Use {
			share := st.UseShare()
			severity := styles.ShareStyle(share).Inherit(c.txt)
			row.Write(c.txt, fit(st.Used))
			if plan.Bar {
				row.Write(c.txt, barGap)
				row.Write(severity, usageBar(share, plan.UseBar))
			}
			if plan.UseShare {
				row.Write(severity, fmt.Sprintf("%3.0f%%", 100*share))
			}
			row.Write(c.border, border)
		}
		row.Write(c.txt, fit(st.Available))
		row.Write(c.border, border)
	} else {
		row.Write(c.txt, panel.Blank(layout.SizeWidth))
		row.Write(c.border, border)
		if plan.Use {
			row.Write(c.txt, panel.Blank(plan.UseCell))
			row.Write(c.border, border)
		}
		row.Write(c.txt, panel.Blank(layout.FreeWidth))
		row.Write(c.border, border)
	}
	row.Matched(c.txt, c.match, m.MountPoint, cell.Width(m.MountPoint), cell.AlignLeft, p)
}

func fit(n uint64) string {
	return fmt.Sprintf("%4s", size.Fit4(n))
}

// usageBar fills a share of width cells, rounding to the nearest cell.
func usageBar(share float64, width int) string {
	filled := int(math.Round(share * float64(width)))
	filled = min(max(filled, 0), width)
	return strings.Repeat(barGlyph, filled) + strings.Repeat(" ", width-filled)
}
