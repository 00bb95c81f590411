//go:build darwin

package platform

import (
	"os/exec"

	"github.com/juju/errors"
	"howett.net/plist"
)

type diskutilPartition struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	VolumeName       string `plist:"VolumeName"`
	MountPoint       string `plist:"MountPoint"`
	Content          string `plist:"Content"`
}

type diskutilOutput struct {
	AllDisksAndPartitions []struct {
		DeviceIdentifier string              `plist:"DeviceIdentifier"`
		Partitions       []diskutilPartition `plist:"Partitions"`
	} `plist:"AllDisksAndPartitions"`
}

var diskutilList = func() ([]byte, error) {
	return exec.Command("diskutil", "list", "-plist", "external").Output()
}

func listDevices() ([]Device, error) {
	output, err := diskutilList()
	if err != nil {
		return nil, errors.Annotatef(err, "diskutil list")
	}
	return parseDiskutil(output)
}

func parseDiskutil(data []byte) ([]Device, error) {
	var out diskutilOutput
	if _, err := plist.Unmarshal(data, &out); err != nil {
		return nil, errors.Annotatef(err, "decode diskutil plist")
	}

	var devices []Device
	for _, disk := range out.AllDisksAndPartitions {
		for _, p := range disk.Partitions {
			name := p.VolumeName
			if name == "" {
				name = p.DeviceIdentifier
			}
			devices = append(devices, Device{
				Name:       name,
				Path:       "/dev/" + p.DeviceIdentifier,
				MountPoint: p.MountPoint,
				FSType:     p.Content,
				Removable:  true, // "external" only lists removable media
			})
		}
	}
	return devices, nil
}
