package resolver

import (
	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

// darwinEnumerator scans the volumes root. A volume named after the label is
// only a provisional pick: the marker file scan still runs over every
// volume and its first hit replaces the label match.
type darwinEnumerator struct {
	root string
	dirs platform.DirReader
}

func (d *darwinEnumerator) Resolve(t Target) (Result, error) {
	names, err := subdirs(d.dirs, d.root)
	if err != nil {
		return Result{}, errors.Annotatef(err, "list volumes root %s", d.root)
	}

	var res Result
	for _, name := range names {
		if name == t.Label {
			res = Result{Path: join(d.root, name), Match: LabelMatch}
			break
		}
	}

	for _, name := range names {
		path := join(d.root, name)
		m, err := probeFile(d.dirs, path, t.Filename)
		if err != nil {
			// protected volumes refuse listing
			skip(err)
			continue
		}
		if m == FileMatch {
			if res.Match == LabelMatch && res.Path != path {
				glog.V(1).Infof("%s holds %s, overriding label match %s", path, t.Filename, res.Path)
			}
			return Result{Path: path, Match: FileMatch}, nil
		}
	}

	if res.Match == NoMatch {
		return Result{}, notFound(t)
	}
	return res, nil
}
