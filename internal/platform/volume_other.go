//go:build !windows

package platform

import "github.com/juju/errors"

type noVolumes struct{}

func newVolumes() Volumes {
	return noVolumes{}
}

func (noVolumes) LogicalDrives() (uint32, error) {
	return 0, errors.NotSupportedf("logical drive letters on this OS")
}

func (noVolumes) VolumeLabel(root string) (string, error) {
	return "", errors.NotSupportedf("volume labels for %q on this OS", root)
}
