package resolver

import (
	"io/fs"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

// probeFile reports FileMatch when dir holds a top-level entry named
// filename that is not a directory once symlinks are followed.
func probeFile(dirs platform.DirReader, dir, filename string) (Match, error) {
	entries, err := dirs.ReadDir(dir)
	if err != nil {
		return NoMatch, &EnumerationError{Path: dir, Err: err}
	}
	for _, e := range entries {
		if e.Name() != filename {
			continue
		}
		if isDir, ok := entryIsDir(dirs, dir, e); ok && !isDir {
			return FileMatch, nil
		}
	}
	return NoMatch, nil
}

// subdirs lists the directory names directly under root, in ReadDir order.
// Symlinks to directories count as directories.
func subdirs(dirs platform.DirReader, root string) ([]string, error) {
	entries, err := dirs.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if isDir, ok := entryIsDir(dirs, root, e); ok && isDir {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// entryIsDir resolves symlinked entries through Stat. ok is false for a
// dangling or unreadable link.
func entryIsDir(dirs platform.DirReader, parent string, e fs.DirEntry) (isDir, ok bool) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir(), true
	}
	info, err := dirs.Stat(join(parent, e.Name()))
	if err != nil {
		glog.V(1).Infof("ignoring link %s: %v", join(parent, e.Name()), err)
		return false, false
	}
	return info.IsDir(), true
}

func join(root, name string) string {
	return filepath.Join(root, name)
}
