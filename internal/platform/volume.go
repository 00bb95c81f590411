package platform

// Volumes exposes the Windows logical drive table.
type Volumes interface {
	// LogicalDrives returns the bitmask of assigned drive letters, bit 0 = A.
	LogicalDrives() (uint32, error)
	// VolumeLabel returns the label of the volume rooted at root, e.g. `E:\`.
	VolumeLabel(root string) (string, error)
}

// NewVolumes returns the Volumes implementation for the running OS.
func NewVolumes() Volumes {
	return newVolumes()
}

// VolumeRoot turns a drive designator such as "C:" into the root path
// `C:\` that GetVolumeInformation requires. Paths already ending in a
// separator are returned unchanged.
func VolumeRoot(mount string) string {
	if mount == "" {
		return mount
	}
	if last := mount[len(mount)-1]; last == '\\' || last == '/' {
		return mount
	}
	return mount + `\`
}
