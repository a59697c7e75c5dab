package mounts

import (
	"errors"
	"sync"

	"github.com/atomicstack/mountpanel/internal/logging/events"
)

// ErrUnsupported is returned by sources that cannot enumerate mounts on the
// current platform.
var ErrUnsupported = errors.New("mount enumeration not supported on this platform")

// Source enumerates the mounts currently known to the OS.
type Source interface {
	Mounts() ([]Mount, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() ([]Mount, error)

func (f SourceFunc) Mounts() ([]Mount, error) {
	return f()
}

// Loader serialises access to a Source shared by several panels.
type Loader struct {
	mu  sync.Mutex
	src Source
}

// NewLoader wraps src. A nil src uses the platform default.
func NewLoader(src Source) *Loader {
	if src == nil {
		src = DefaultSource()
	}
	return &Loader{src: src}
}

// Load returns a fresh copy of the mount table. The lock is held only for the
// duration of the call.
func (l *Loader) Load() ([]Mount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	list, err := l.src.Mounts()
	if err != nil {
		events.Mounts.LoadFailed(err)
		return nil, err
	}
	events.Mounts.Loaded(len(list))
	return CloneAll(list), nil
}
