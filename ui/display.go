package ui

import "github.com/dixieflatline76/WallCrop/pkg/cropper"

// scaledDisplay converts a screen size in physical pixels into canvas units,
// so a fitted image also fits on HiDPI screens.
type scaledDisplay struct {
	base  cropper.Display
	scale func() float32
}

// DisplaySize returns the base size divided by the canvas scale.
func (d scaledDisplay) DisplaySize() (int, int, error) {
	w, h, err := d.base.DisplaySize()
	if err != nil {
		return 0, 0, err
	}
	s := d.scale()
	if s <= 0 {
		return w, h, nil
	}
	return int(float32(w) / s), int(float32(h) / s), nil
}
