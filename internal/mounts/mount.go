package mounts

import (
	"fmt"
	"strconv"
)

// DeviceID identifies a block device by major/minor number.
type DeviceID struct {
	Major uint32
	Minor uint32
}

func (d DeviceID) String() string {
	return fmt.Sprintf("%d:%d", d.Major, d.Minor)
}

// Disk describes the block device backing a mount.
type Disk struct {
	Name       string
	Rotational bool
	Removable  bool
	RAM        bool
	LVM        bool
	Crypted    bool
}

// TypeLabel returns the three letter kind label shown in the disk column.
func (d *Disk) TypeLabel() string {
	if d == nil {
		return ""
	}
	switch {
	case d.Crypted:
		return "enc"
	case d.LVM:
		return "LVM"
	case d.RAM:
		return "RAM"
	case d.Removable:
		return "rmv"
	case d.Rotational:
		return "HDD"
	default:
		return "SSD"
	}
}

// Stats holds filesystem usage in bytes.
type Stats struct {
	Size      uint64
	Used      uint64
	Available uint64
}

// UseShare returns used/size clamped to [0,1]; zero-sized filesystems report 0.
func (s *Stats) UseShare() float64 {
	if s == nil || s.Size == 0 {
		return 0
	}
	share := float64(s.Used) / float64(s.Size)
	if share < 0 {
		return 0
	}
	if share > 1 {
		return 1
	}
	return share
}

// Mount is an immutable snapshot of one mounted filesystem.
type Mount struct {
	ID         uint64
	Dev        DeviceID
	FS         string
	FSType     string
	MountPoint string
	Disk       *Disk
	Stats      *Stats
}

// Key returns the stable identity used to match a mount across views.
func (m Mount) Key() string {
	return strconv.FormatUint(m.ID, 10)
}

// Clone returns a deep copy so derived views never alias the source.
func (m Mount) Clone() Mount {
	if m.Disk != nil {
		d := *m.Disk
		m.Disk = &d
	}
	if m.Stats != nil {
		s := *m.Stats
		m.Stats = &s
	}
	return m
}

// CloneAll deep-copies a mount slice.
func CloneAll(list []Mount) []Mount {
	if len(list) == 0 {
		return nil
	}
	dup := make([]Mount, len(list))
	for i, m := range list {
		dup[i] = m.Clone()
	}
	return dup
}
