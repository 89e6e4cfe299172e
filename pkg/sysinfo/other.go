//go:build !linux && !windows && !darwin

package sysinfo

import "errors"

// GetScreenDimensions is not supported on this platform.
func GetScreenDimensions() (int, int, error) {
	return 0, 0, errors.New("screen size detection not supported on this platform")
}
