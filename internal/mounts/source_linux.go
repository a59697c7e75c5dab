//go:build linux

package mounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

const statConcurrency = 8

// ProcSource reads the mount table from procfs and enriches it with statfs
// usage and sysfs disk information.
type ProcSource struct {
	MountInfoPath string
	SysDevBlock   string
	Statfs        func(path string, st *unix.Statfs_t) error
}

// DefaultSource returns the procfs backed source for the running process.
func DefaultSource() Source {
	return &ProcSource{}
}

func (p *ProcSource) Mounts() ([]Mount, error) {
	path := p.MountInfoPath
	if path == "" {
		path = DefaultSourceName()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mount table: %w", err)
	}
	defer f.Close()
	list, err := ParseMountInfo(f)
	if err != nil {
		return nil, err
	}
	p.fillStats(list)
	disks := map[DeviceID]*Disk{}
	for i := range list {
		dev := list[i].Dev
		disk, seen := disks[dev]
		if !seen {
			disk = p.readDisk(dev)
			disks[dev] = disk
		}
		if disk != nil {
			d := *disk
			list[i].Disk = &d
		}
	}
	return list, nil
}

// fillStats runs statfs for every mount with bounded parallelism. A mount whose
// statfs fails, or which reports no blocks, keeps nil Stats.
func (p *ProcSource) fillStats(list []Mount) {
	statfs := p.Statfs
	if statfs == nil {
		statfs = unix.Statfs
	}
	var g errgroup.Group
	g.SetLimit(statConcurrency)
	for i := range list {
		m := &list[i]
		g.Go(func() error {
			var st unix.Statfs_t
			if err := statfs(m.MountPoint, &st); err != nil {
				return nil
			}
			m.Stats = statsFrom(&st)
			return nil
		})
	}
	_ = g.Wait()
}

// statsFrom converts a statfs result, returning nil for filesystems without
// blocks.
func statsFrom(st *unix.Statfs_t) *Stats {
	if st.Blocks == 0 {
		return nil
	}
	bsize := uint64(st.Bsize)
	size := st.Blocks * bsize
	free := st.Bfree * bsize
	return &Stats{
		Size:      size,
		Used:      size - free,
		Available: st.Bavail * bsize,
	}
}

func (p *ProcSource) readDisk(dev DeviceID) *Disk {
	if dev.Major == 0 {
		return nil
	}
	base := p.SysDevBlock
	if base == "" {
		base = "/sys/dev/block"
	}
	dir, err := filepath.EvalSymlinks(filepath.Join(base, dev.String()))
	if err != nil {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, "partition")); err == nil {
		dir = filepath.Dir(dir)
	}
	name := filepath.Base(dir)
	disk := &Disk{
		Name:       name,
		Rotational: readFlag(filepath.Join(dir, "queue", "rotational")),
		Removable:  readFlag(filepath.Join(dir, "removable")),
		RAM:        strings.HasPrefix(name, "ram") || strings.HasPrefix(name, "zram"),
	}
	if strings.HasPrefix(name, "dm-") {
		uuid, _ := os.ReadFile(filepath.Join(dir, "dm", "uuid"))
		if strings.HasPrefix(string(uuid), "CRYPT-") {
			disk.Crypted = true
		} else {
			disk.LVM = true
		}
	}
	return disk
}

func readFlag(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// DeviceOf returns the device holding path.
func DeviceOf(path string) (DeviceID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return DeviceID{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return DeviceID{Major: unix.Major(uint64(st.Dev)), Minor: unix.Minor(uint64(st.Dev))}, nil
}

// StatsOf returns usage of the filesystem holding path, or nil stats when it
// reports no blocks.
func StatsOf(path string) (*Stats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, &os.PathError{Op: "statfs", Path: path, Err: err}
	}
	return statsFrom(&st), nil
}

// DefaultSourceName describes where DefaultSource reads mounts from.
func DefaultSourceName() string {
	return "/proc/self/mountinfo"
}
