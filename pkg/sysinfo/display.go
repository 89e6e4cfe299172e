// Package sysinfo reports facts about the machine the app runs on.
package sysinfo

import (
	"sync"

	"github.com/dixieflatline76/WallCrop/util/log"
)

// Display reports the primary screen size as the area available for showing
// an image. Detection runs once; when it fails the fallback size is used.
type Display struct {
	fallbackWidth  int
	fallbackHeight int
	screen         func() (int, int, error)

	once          sync.Once
	width, height int
}

// NewDisplay creates a Display backed by GetScreenDimensions.
func NewDisplay(fallbackWidth, fallbackHeight int) *Display {
	return &Display{
		fallbackWidth:  fallbackWidth,
		fallbackHeight: fallbackHeight,
		screen:         GetScreenDimensions,
	}
}

// DisplaySize returns the detected screen size, or the fallback size.
func (d *Display) DisplaySize() (int, int, error) {
	d.once.Do(func() {
		w, h, err := d.screen()
		if err != nil || w <= 0 || h <= 0 {
			log.Printf("Screen size not detected (%v), using %dx%d", err, d.fallbackWidth, d.fallbackHeight)
			d.width, d.height = d.fallbackWidth, d.fallbackHeight
			return
		}
		log.Debugf("Screen size: %dx%d", w, h)
		d.width, d.height = w, h
	})
	return d.width, d.height, nil
}
