package resolver

import (
	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

// linuxEnumerator scans the per-user media root. A mount point named after
// the label wins outright; otherwise the first mount holding the marker
// file is taken. Any match requests the upload flags.
type linuxEnumerator struct {
	root string
	dirs platform.DirReader
}

func (l *linuxEnumerator) Resolve(t Target) (Result, error) {
	if l.root == "" {
		// scanning /media would cover every user's mounts
		return Result{}, errors.NotValidf("empty media root")
	}
	names, err := subdirs(l.dirs, l.root)
	if err != nil {
		return Result{}, errors.Annotatef(err, "list media root %s", l.root)
	}

	for _, name := range names {
		if name == t.Label {
			return Result{Path: join(l.root, name), Match: LabelMatch, SetUploadFlags: true}, nil
		}
	}

	for _, name := range names {
		path := join(l.root, name)
		m, err := probeFile(l.dirs, path, t.Filename)
		if err != nil {
			skip(err)
			continue
		}
		if m == FileMatch {
			glog.V(1).Infof("%s holds %s", path, t.Filename)
			return Result{Path: path, Match: FileMatch, SetUploadFlags: true}, nil
		}
	}
	return Result{}, notFound(t)
}
