//go:build linux

package sysinfo

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetScreenDimensions returns the desktop dimensions on Linux.
func GetScreenDimensions() (int, int, error) {
	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}
	return parseXdpyinfo(string(out))
}

// parseXdpyinfo extracts the first "dimensions:    1920x1080 pixels (508x285 millimeters)" line.
func parseXdpyinfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		dimensions := strings.Split(parts[1], "x")
		if len(dimensions) != 2 {
			continue
		}
		width, errW := strconv.Atoi(dimensions[0])
		height, errH := strconv.Atoi(dimensions[1])
		if errW != nil || errH != nil {
			return 0, 0, fmt.Errorf("failed to convert dimensions %q", parts[1])
		}
		return width, height, nil
	}
	return 0, 0, fmt.Errorf("failed to parse screen resolution")
}
