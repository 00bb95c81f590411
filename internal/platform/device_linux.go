//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

var byLabelDir = "/dev/disk/by-label"

// deviceLabel resolves the filesystem label of devPath through the udev
// by-label symlinks. It returns "" when the device has no label.
func deviceLabel(devPath, _ string) string {
	entries, err := os.ReadDir(byLabelDir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		linkPath := filepath.Join(byLabelDir, entry.Name())
		target, err := os.Readlink(linkPath)
		if err != nil {
			continue
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(linkPath), target)
		}
		if filepath.Clean(target) == devPath {
			return unescapeUdev(entry.Name())
		}
	}
	return ""
}

// unescapeUdev decodes udev's \xNN escapes, e.g. "MY\x20DISK".
func unescapeUdev(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' && i+3 < len(name) && name[i+1] == 'x' {
			if b, ok := hexByte(name[i+2], name[i+3]); ok {
				out = append(out, b)
				i += 3
				continue
			}
		}
		out = append(out, name[i])
	}
	return string(out)
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexVal(hi)
	l, ok2 := hexVal(lo)
	return h<<4 | l, ok1 && ok2
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
