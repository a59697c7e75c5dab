package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/mountpanel/internal/options"
)

const parentName = ".."

// Entry is one row of a directory listing.
type Entry struct {
	Name string
	Path string
	Dir  bool
	Exe  bool
	Size int64
}

func (e Entry) Key() string {
	return e.Path
}

func (e Entry) Clone() Entry {
	return e
}

// readEntries lists root with a leading parent entry, so a listing is never
// empty.
func readEntries(root string, opts options.Tree) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}
	entries := make([]Entry, 0, len(dirents)+1)
	for _, d := range dirents {
		name := d.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		e := Entry{Name: name, Path: filepath.Join(root, name)}
		info, err := os.Stat(e.Path)
		if err != nil {
			// dangling symlinks are listed as plain files
			info, err = d.Info()
		}
		if err == nil {
			e.Dir = info.IsDir()
			e.Exe = !e.Dir && info.Mode().Perm()&0o111 != 0
			if !e.Dir {
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if opts.DirsFirst && a.Dir != b.Dir {
			return a.Dir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	parent := Entry{Name: parentName, Path: filepath.Dir(root), Dir: true}
	return append([]Entry{parent}, entries...), nil
}
