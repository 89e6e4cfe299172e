package sysinfo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySize(t *testing.T) {
	t.Run("detected", func(t *testing.T) {
		calls := 0
		d := NewDisplay(1920, 1080)
		d.screen = func() (int, int, error) {
			calls++
			return 2560, 1440, nil
		}

		w, h, err := d.DisplaySize()
		assert.NoError(t, err)
		assert.Equal(t, 2560, w)
		assert.Equal(t, 1440, h)

		_, _, _ = d.DisplaySize()
		assert.Equal(t, 1, calls, "detection is cached")
	})

	t.Run("fallback", func(t *testing.T) {
		d := NewDisplay(1366, 768)
		d.screen = func() (int, int, error) { return 0, 0, errors.New("no X server") }

		w, h, err := d.DisplaySize()
		assert.NoError(t, err)
		assert.Equal(t, 1366, w)
		assert.Equal(t, 768, h)
	})
}
