//go:build !release

package log

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(log.Lshortfile)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestLogging(t *testing.T) {
	buf := captureLog(t)

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{"Print", func() { Print("skipped ", 3) }, "skipped 3"},
		{"Printf", func() { Printf("Image saved: %s", "cropped_a.png") }, "Image saved: cropped_a.png"},
		{"Println", func() { Println("No more images to display.") }, "No more images to display."},
		{"Debug", func() { Debug("scale ", 0.5) }, "[DEBUG] scale 0.5"},
		{"Debugf", func() { Debugf("box at %d,%d", 10, 20) }, "[DEBUG] box at 10,20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestLoggingReportsCaller(t *testing.T) {
	buf := captureLog(t)

	Printf("from the test")
	assert.Contains(t, buf.String(), "log_test.go:")
}
