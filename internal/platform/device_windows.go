//go:build windows

package platform

func deviceLabel(_, mountPoint string) string {
	label, err := newVolumes().VolumeLabel(VolumeRoot(mountPoint))
	if err != nil {
		return ""
	}
	return label
}
