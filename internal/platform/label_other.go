//go:build !linux && !windows && !darwin

package platform

func deviceLabel(_, _ string) string {
	return ""
}
