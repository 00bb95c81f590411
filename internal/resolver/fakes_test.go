package resolver

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

type fakeEntry struct {
	name string
	dir  bool
	link bool
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) IsDir() bool  { return e.dir }
func (e fakeEntry) Type() fs.FileMode {
	if e.link {
		return fs.ModeSymlink
	}
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo(e), nil }

type fakeInfo fakeEntry

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return fakeEntry(i).Type() }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func dir(name string) fs.DirEntry  { return fakeEntry{name: name, dir: true} }
func file(name string) fs.DirEntry { return fakeEntry{name: name} }
func link(name string) fs.DirEntry { return fakeEntry{name: name, link: true} }

// fakeDirs serves directory listings from a table and records every read.
type fakeDirs struct {
	tree  map[string][]fs.DirEntry
	fails map[string]error
	links map[string]bool // symlink path -> target is a directory
	reads []string
}

func newFakeDirs() *fakeDirs {
	return &fakeDirs{
		tree:  make(map[string][]fs.DirEntry),
		fails: make(map[string]error),
		links: make(map[string]bool),
	}
}

func (f *fakeDirs) add(path string, entries ...fs.DirEntry) *fakeDirs {
	f.tree[filepath.Clean(path)] = entries
	return f
}

func (f *fakeDirs) fail(path string, err error) *fakeDirs {
	f.fails[filepath.Clean(path)] = err
	return f
}

func (f *fakeDirs) linkTo(path string, dir bool) *fakeDirs {
	f.links[filepath.Clean(path)] = dir
	return f
}

func (f *fakeDirs) Stat(name string) (fs.FileInfo, error) {
	name = filepath.Clean(name)
	isDir, ok := f.links[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return fakeInfo{name: filepath.Base(name), dir: isDir}, nil
}

func (f *fakeDirs) ReadDir(name string) ([]fs.DirEntry, error) {
	name = filepath.Clean(name)
	f.reads = append(f.reads, name)
	if err, ok := f.fails[name]; ok {
		return nil, err
	}
	entries, ok := f.tree[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return entries, nil
}

func (f *fakeDirs) didRead(path string) bool {
	path = filepath.Clean(path)
	for _, r := range f.reads {
		if r == path {
			return true
		}
	}
	return false
}

type fakeVolumes struct {
	mask      uint32
	maskErr   error
	labels    map[string]string
	labelErrs map[string]error
}

func (v *fakeVolumes) LogicalDrives() (uint32, error) {
	return v.mask, v.maskErr
}

func (v *fakeVolumes) VolumeLabel(root string) (string, error) {
	if err, ok := v.labelErrs[root]; ok {
		return "", err
	}
	return v.labels[root], nil
}

func letterMask(letters ...byte) uint32 {
	var m uint32
	for _, l := range letters {
		m |= 1 << uint(l-'A')
	}
	return m
}
