// Package resolver decides which mounted drive is the target board's
// mass-storage volume. Each host OS has its own DriveEnumerator because the
// matching order differs per platform.
package resolver

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

// Target names the volume label and marker file that identify the board.
type Target struct {
	Label    string
	Filename string
}

// Match records how a candidate qualified.
type Match int

const (
	NoMatch Match = iota
	LabelMatch
	FileMatch
)

func (m Match) String() string {
	switch m {
	case LabelMatch:
		return "label"
	case FileMatch:
		return "file"
	default:
		return "none"
	}
}

// Result is a successful resolution. The caller applies it to the build
// configuration; the resolver itself never does.
type Result struct {
	Path  string
	Match Match
	// SetUploadFlags asks the caller to also set the upload flags value.
	SetUploadFlags bool
}

// DriveEnumerator resolves a Target against the drives of one host OS.
type DriveEnumerator interface {
	Resolve(t Target) (Result, error)
}

// Deps are the filesystem views an enumerator reads through.
type Deps struct {
	Dirs    platform.DirReader
	Volumes platform.Volumes

	// MediaRoot is the per-user removable media root on Linux.
	MediaRoot string
	// VolumesRoot is the volumes root on macOS.
	VolumesRoot string
}

// New returns the enumerator for host. Missing Deps fields fall back to the
// real OS implementations.
func New(host platform.HostOS, deps Deps) DriveEnumerator {
	if deps.Dirs == nil {
		deps.Dirs = platform.OSDirs{}
	}
	switch host {
	case platform.Windows:
		if deps.Volumes == nil {
			deps.Volumes = platform.NewVolumes()
		}
		return &windowsEnumerator{vols: deps.Volumes, dirs: deps.Dirs}
	case platform.Linux:
		return &linuxEnumerator{root: deps.MediaRoot, dirs: deps.Dirs}
	case platform.MacOS:
		return &darwinEnumerator{root: deps.VolumesRoot, dirs: deps.Dirs}
	default:
		return unsupportedEnumerator{host: host}
	}
}

// ErrNotFound is matched by errors.Is for every "no candidate qualified" failure.
var ErrNotFound = errors.NotFound

func notFound(t Target) error {
	return errors.NotFoundf("drive with label %q or file %q", t.Label, t.Filename)
}

// IsNotFound reports whether err means the scan finished without a match.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// EnumerationError is a candidate that could not be inspected. It only
// disqualifies that candidate.
type EnumerationError struct {
	Path string
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("inspect %s: %v", e.Path, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

func skip(err error) {
	glog.V(1).Infof("skipping candidate: %v", err)
}

type unsupportedEnumerator struct {
	host platform.HostOS
}

func (u unsupportedEnumerator) Resolve(t Target) (Result, error) {
	glog.V(1).Infof("no drive enumeration for host %s", u.host)
	return Result{}, notFound(t)
}
