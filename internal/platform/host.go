package platform

import (
	"runtime"
	"strings"
)

// HostOS identifies which drive enumeration strategy applies.
type HostOS int

const (
	Other HostOS = iota
	Windows
	Linux
	MacOS
)

func (h HostOS) String() string {
	switch h {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "darwin"
	default:
		return "other"
	}
}

// DetectHost returns the HostOS of the running binary.
func DetectHost() HostOS {
	return ParseHost(runtime.GOOS)
}

// ParseHost maps a GOOS-style name to a HostOS. Unknown names map to Other.
func ParseHost(name string) HostOS {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin", "macos", "mac":
		return MacOS
	default:
		return Other
	}
}
