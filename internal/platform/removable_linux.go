//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

var sysBlock = "/sys/block"

// isRemovable reports the sysfs removable flag of the disk backing devPath.
// Partition suffixes are stripped so /dev/sdb1 checks /sys/block/sdb.
func isRemovable(devPath string) bool {
	if !strings.HasPrefix(devPath, "/dev/") {
		return false
	}
	name := filepath.Base(devPath)
	if flag, ok := readRemovable(name); ok {
		return flag
	}

	base := strings.TrimRight(name, "0123456789")
	if strings.HasPrefix(base, "mmcblk") || strings.HasPrefix(base, "nvme") {
		base = strings.TrimSuffix(base, "p")
	}
	if base == "" || base == name {
		return false
	}
	flag, _ := readRemovable(base)
	return flag
}

func readRemovable(disk string) (bool, bool) {
	data, err := os.ReadFile(filepath.Join(sysBlock, disk, "removable"))
	if err != nil {
		return false, false
	}
	return strings.TrimSpace(string(data)) == "1", true
}
