// Package layout decides which columns of the filesystems table fit into a
// given width and how wide each of them is.
package layout

import "github.com/mattn/go-runewidth"

// Column labels that bound the text columns from below.
const (
	FSLabel         = "filesystem"
	MountPointLabel = "mount point"
)

// Fixed column widths.
const (
	DiskWidth     = 3
	MinTypeWidth  = 4
	SizeWidth     = 4
	UseWidth      = 4
	UseShareWidth = 4
	FreeWidth     = 4
	MaxBarGrowth  = 9
)

// Widths carries the widest content of the variable columns.
type Widths struct {
	FS            int
	FSType        int
	MountPoint    int
	SelectionMark bool
}

// Observe widens w so the given row fits.
func (w *Widths) Observe(fs, fsType, mountPoint string) {
	w.FS = max(w.FS, runewidth.StringWidth(fs))
	w.FSType = max(w.FSType, runewidth.StringWidth(fsType))
	w.MountPoint = max(w.MountPoint, runewidth.StringWidth(mountPoint))
}

// Plan is the resolved column set. Widths exclude the one-cell borders.
type Plan struct {
	SelectionMark bool

	FS         int // fs text
	FSCell     int // fs text plus the selection mark
	FSType     int
	MountPoint int
	UseCell    int // whole usage group: used, share and bar
	UseBar     int

	Disk     bool
	Type     bool
	Use      bool
	UseShare bool
	Bar      bool
}

// Mandatory returns the width of the columns that are always shown.
func (p Plan) Mandatory() int {
	return p.FSCell + 1 + SizeWidth + 1 + FreeWidth + 1 + p.MountPoint
}

// Used returns the total width taken by the planned columns and borders.
func (p Plan) Used() int {
	n := p.Mandatory()
	if p.Disk {
		n += DiskWidth + 1
	}
	if p.Type {
		n += p.FSType + 1
	}
	if p.Use {
		n += p.UseCell + 1
	}
	return n
}

// Compute plans the columns for width. Optional columns are tried in a fixed
// priority order and the scan stops at the first one that does not fit, so a
// narrower width never shows a column a wider one hides.
func Compute(width int, w Widths) Plan {
	p := Plan{
		SelectionMark: w.SelectionMark,
		FS:            max(w.FS, runewidth.StringWidth(FSLabel)),
		FSType:        max(w.FSType, MinTypeWidth),
		MountPoint:    max(w.MountPoint, runewidth.StringWidth(MountPointLabel)),
		UseCell:       UseWidth,
	}
	p.FSCell = p.FS
	if p.SelectionMark {
		p.FSCell++
	}
	mandatory := p.Mandatory()
	if mandatory+1 >= width {
		return p
	}
	rem := width - mandatory - 1

	steps := []func() bool{
		func() bool {
			if rem <= UseWidth {
				return false
			}
			rem -= UseWidth + 1
			p.Use = true
			return true
		},
		func() bool {
			if rem <= UseShareWidth {
				return false
			}
			rem -= UseShareWidth
			p.UseShare = true
			p.UseCell += UseShareWidth
			return true
		},
		func() bool {
			if rem <= DiskWidth {
				return false
			}
			rem -= DiskWidth + 1
			p.Disk = true
			return true
		},
		func() bool {
			if rem <= 1 {
				return false
			}
			rem -= 2
			p.Bar = true
			p.UseBar = 1
			p.UseCell += 2
			return true
		},
		func() bool {
			if rem <= p.FSType {
				return false
			}
			rem -= p.FSType + 1
			p.Type = true
			return true
		},
	}
	for _, step := range steps {
		if !step() {
			// Later columns are not tried even when narrower: skipping
			// ahead would let a column appear at one width and vanish at
			// the next.
			break
		}
	}
	if p.Bar && rem > 0 {
		grow := min(rem, MaxBarGrowth)
		p.UseBar += grow
		p.UseCell += grow
	}
	return p
}
