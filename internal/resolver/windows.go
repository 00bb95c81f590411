package resolver

import (
	"strings"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

// windowsEnumerator walks the assigned drive letters A..Z and stops at the
// first drive whose label contains the target label or whose root holds the
// marker file. Scan order decides between drives; within a drive the label
// is checked first.
type windowsEnumerator struct {
	vols platform.Volumes
	dirs platform.DirReader
}

func (w *windowsEnumerator) Resolve(t Target) (Result, error) {
	mask, err := w.vols.LogicalDrives()
	if err != nil {
		return Result{}, errors.Annotate(err, "enumerate drive letters")
	}

	for _, drive := range driveLetters(mask) {
		m, err := w.probe(drive, t)
		if err != nil {
			skip(err)
			continue
		}
		if m != NoMatch {
			glog.V(1).Infof("drive %s matched by %s", drive, m)
			return Result{Path: drive, Match: m}, nil
		}
	}
	return Result{}, notFound(t)
}

func (w *windowsEnumerator) probe(drive string, t Target) (Match, error) {
	root := platform.VolumeRoot(drive)
	label, err := w.vols.VolumeLabel(root)
	if err != nil {
		return NoMatch, &EnumerationError{Path: drive, Err: err}
	}
	if strings.Contains(label, t.Label) {
		return LabelMatch, nil
	}
	return probeFile(w.dirs, root, t.Filename)
}

// driveLetters expands a GetLogicalDrives bitmask into "A:", "B:", ...
func driveLetters(mask uint32) []string {
	var drives []string
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) != 0 {
			drives = append(drives, string(rune('A'+i))+":")
		}
	}
	return drives
}
