//go:build darwin

package sysinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// pixelsPattern matches "3456 x 2234", "2880 x 1864 Retina" and similar.
var pixelsPattern = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

type profilerReport struct {
	GPUs []struct {
		Displays []profilerDisplay `json:"spdisplays_ndrvs"`
	} `json:"SPDisplaysDataType"`
}

type profilerDisplay struct {
	Pixels string `json:"_spdisplays_pixels"`
	Main   string `json:"spdisplays_main"`
}

// GetScreenDimensions returns the main display size in pixels on macOS.
func GetScreenDimensions() (int, int, error) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run system_profiler: %w", err)
	}
	return parseJSONResolution(out)
}

// parseJSONResolution picks the display flagged as main, else the first one listed.
func parseJSONResolution(data []byte) (int, int, error) {
	var report profilerReport
	if err := json.Unmarshal(data, &report); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	var first *profilerDisplay
	for _, gpu := range report.GPUs {
		for i := range gpu.Displays {
			d := &gpu.Displays[i]
			if d.Main == "spdisplays_yes" {
				return parsePixels(d.Pixels)
			}
			if first == nil {
				first = d
			}
		}
	}
	if first == nil {
		return 0, 0, errors.New("no displays found in system_profiler output")
	}
	return parsePixels(first.Pixels)
}

func parsePixels(s string) (int, int, error) {
	m := pixelsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized resolution %q", s)
	}
	width, _ := strconv.Atoi(m[1])
	height, _ := strconv.Atoi(m[2])
	return width, height, nil
}
