//go:build linux

package mounts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestProcSourceFillsStatsAndDisks(t *testing.T) {
	dir := t.TempDir()
	info := filepath.Join(dir, "mountinfo")
	if err := os.WriteFile(info, []byte(sampleMountInfo), 0o644); err != nil {
		t.Fatal(err)
	}

	sys := filepath.Join(dir, "sys")
	diskDir := filepath.Join(sys, "devices", "sda")
	partDir := filepath.Join(diskDir, "sda2")
	if err := os.MkdirAll(filepath.Join(diskDir, "queue"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(partDir, 0o755); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, filepath.Join(partDir, "partition"), "2\n")
	mustWrite(t, filepath.Join(diskDir, "queue", "rotational"), "1\n")
	mustWrite(t, filepath.Join(diskDir, "removable"), "0\n")
	devBlock := filepath.Join(sys, "dev", "block")
	if err := os.MkdirAll(devBlock, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(partDir, filepath.Join(devBlock, "8:2")); err != nil {
		t.Fatal(err)
	}

	src := &ProcSource{
		MountInfoPath: info,
		SysDevBlock:   devBlock,
		Statfs: func(path string, st *unix.Statfs_t) error {
			switch path {
			case "/":
				st.Bsize = 1000
				st.Blocks = 100
				st.Bfree = 40
				st.Bavail = 30
				return nil
			case "/proc":
				return nil
			}
			return errors.New("unavailable")
		},
	}
	list, err := src.Mounts()
	if err != nil {
		t.Fatalf("mounts failed: %v", err)
	}
	root := list[0]
	if root.Stats == nil || root.Stats.Size != 100000 || root.Stats.Used != 60000 || root.Stats.Available != 30000 {
		t.Fatalf("unexpected root stats %#v", root.Stats)
	}
	if root.Disk == nil || root.Disk.Name != "sda" || root.Disk.TypeLabel() != "HDD" {
		t.Fatalf("unexpected root disk %#v", root.Disk)
	}
	if list[1].Stats != nil {
		t.Fatalf("expected pseudo filesystem without blocks to have nil stats")
	}
	if list[1].Disk != nil {
		t.Fatalf("expected no disk for major 0")
	}
	if list[2].Stats != nil || list[2].Disk != nil {
		t.Fatalf("expected failing statfs and unknown device to leave fields nil")
	}
}

func TestDeviceOfMissingPath(t *testing.T) {
	_, err := DeviceOf(filepath.Join(t.TempDir(), "missing"))
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *os.PathError, got %v", err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStatsOf(t *testing.T) {
	if _, err := StatsOf(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing path")
	}
	st, err := StatsOf(t.TempDir())
	if err != nil {
		t.Fatalf("statfs of temp dir: %v", err)
	}
	if st != nil && st.Used > st.Size {
		t.Fatalf("used exceeds size: %+v", st)
	}
}
