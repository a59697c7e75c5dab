//go:build !linux

package mounts

import "os"

// DefaultSource returns a source that always reports ErrUnsupported.
func DefaultSource() Source {
	return SourceFunc(func() ([]Mount, error) {
		return nil, ErrUnsupported
	})
}

// DeviceOf only validates the path; device numbers are not resolved here.
func DeviceOf(path string) (DeviceID, error) {
	if _, err := os.Stat(path); err != nil {
		return DeviceID{}, err
	}
	return DeviceID{}, nil
}

// StatsOf is not supported on this platform.
func StatsOf(path string) (*Stats, error) {
	return nil, ErrUnsupported
}

// DefaultSourceName describes where DefaultSource reads mounts from.
func DefaultSourceName() string {
	return "unsupported"
}
