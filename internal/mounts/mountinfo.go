package mounts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMountInfo reads the /proc/<pid>/mountinfo format. Stats and Disk are
// left nil; they are filled by the platform source.
func ParseMountInfo(r io.Reader) ([]Mount, error) {
	scanner := bufio.NewScanner(r)
	var out []Mount
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		m, err := parseMountInfoLine(text)
		if err != nil {
			return nil, fmt.Errorf("mountinfo line %d: %w", line, err)
		}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// 36 35 98:0 /mnt1 /mnt2 rw,noatime master:1 - ext3 /dev/root rw,errors=continue
func parseMountInfoLine(text string) (Mount, error) {
	fields := strings.Fields(text)
	sep := -1
	for i, f := range fields {
		if f == "-" {
			sep = i
			break
		}
	}
	if sep < 6 || len(fields) < sep+3 {
		return Mount{}, fmt.Errorf("malformed entry %q", text)
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Mount{}, fmt.Errorf("mount id: %w", err)
	}
	dev, err := parseDeviceID(fields[2])
	if err != nil {
		return Mount{}, err
	}
	return Mount{
		ID:         id,
		Dev:        dev,
		MountPoint: unescapeOctal(fields[4]),
		FSType:     fields[sep+1],
		FS:         unescapeOctal(fields[sep+2]),
	}, nil
}

func parseDeviceID(s string) (DeviceID, error) {
	majStr, minStr, ok := strings.Cut(s, ":")
	if !ok {
		return DeviceID{}, fmt.Errorf("device id %q", s)
	}
	major, err := strconv.ParseUint(majStr, 10, 32)
	if err != nil {
		return DeviceID{}, fmt.Errorf("device major: %w", err)
	}
	minor, err := strconv.ParseUint(minStr, 10, 32)
	if err != nil {
		return DeviceID{}, fmt.Errorf("device minor: %w", err)
	}
	return DeviceID{Major: uint32(major), Minor: uint32(minor)}, nil
}

// unescapeOctal decodes the \040 style escapes the kernel uses for spaces,
// tabs, newlines and backslashes.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			v, _ := strconv.ParseUint(s[i+1:i+4], 8, 8)
			b.WriteByte(byte(v))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
