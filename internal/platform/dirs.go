package platform

import (
	"io/fs"
	"os"
)

// DirReader lists the entries of a directory. Resolution only ever reads
// through this interface so it can be exercised against fake trees.
type DirReader interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
}

// OSDirs reads directories from the local filesystem.
type OSDirs struct{}

func (OSDirs) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (OSDirs) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
