//go:build windows

package platform

import (
	"github.com/juju/errors"
	"golang.org/x/sys/windows"
)

type winVolumes struct{}

func newVolumes() Volumes {
	return winVolumes{}
}

func (winVolumes) LogicalDrives() (uint32, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return 0, errors.Annotatef(err, "GetLogicalDrives")
	}
	return mask, nil
}

func (winVolumes) VolumeLabel(root string) (string, error) {
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return "", errors.Trace(err)
	}

	volName := make([]uint16, windows.MAX_PATH+1)
	fsName := make([]uint16, windows.MAX_PATH+1)
	var serial, maxCompLen, fsFlags uint32
	if err := windows.GetVolumeInformation(
		rootPtr,
		&volName[0], uint32(len(volName)),
		&serial, &maxCompLen, &fsFlags,
		&fsName[0], uint32(len(fsName))); err != nil {
		return "", errors.Annotatef(err, "GetVolumeInformation %s", root)
	}

	return windows.UTF16ToString(volName), nil
}
