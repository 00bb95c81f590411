package platform

// Device is a mounted filesystem as reported by the OS, shown by the
// drives command so a user can see what the resolver will be scanning.
type Device struct {
	Name       string
	Path       string
	MountPoint string
	FSType     string
	Removable  bool
}

// ListDevices returns the mounted devices of the running OS.
func ListDevices() ([]Device, error) {
	return listDevices()
}
