//go:build !darwin

package platform

import (
	"path/filepath"

	"github.com/juju/errors"
	"github.com/shirou/gopsutil/v3/disk"
)

var partitions = disk.Partitions

func listDevices() ([]Device, error) {
	parts, err := partitions(false)
	if err != nil {
		return nil, errors.Annotatef(err, "list partitions")
	}

	devices := make([]Device, 0, len(parts))
	for _, p := range parts {
		name := deviceLabel(p.Device, p.Mountpoint)
		if name == "" {
			name = mountName(p.Mountpoint)
		}
		devices = append(devices, Device{
			Name:       name,
			Path:       p.Device,
			MountPoint: p.Mountpoint,
			FSType:     p.Fstype,
			Removable:  isRemovable(p.Device),
		})
	}
	return devices, nil
}

// mountName is the last element of mount, or mount itself for a root
// such as "/" or `C:\`.
func mountName(mount string) string {
	name := filepath.Base(mount)
	if name == "." || name == "/" || name == string(filepath.Separator) {
		return mount
	}
	return name
}
