//go:build !linux && !darwin

package platform

func isRemovable(string) bool {
	return false
}
