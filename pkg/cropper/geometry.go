package cropper

// Point is a pointer position in display coordinates.
type Point struct {
	X, Y float64
}

// Box is the crop box in display coordinates. X and Y are the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return b.X <= p.X && p.X <= b.X+b.W && b.Y <= p.Y && p.Y <= b.Y+b.H
}

// Translate returns the box moved by (dx, dy). The size never changes.
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// MoveTo returns the box with its top-left corner anchored at p.
func (b Box) MoveTo(p Point) Box {
	b.X = p.X
	b.Y = p.Y
	return b
}

// ScaleToFit returns the uniform scale factor that fits an image of imgW x imgH
// into a display area of maxW x maxH. It is 1.0 unless the image exceeds the area
// in either dimension; images are never scaled up.
func ScaleToFit(imgW, imgH, maxW, maxH int) float64 {
	if imgW <= 0 || imgH <= 0 || maxW <= 0 || maxH <= 0 {
		return 1.0
	}
	if imgW <= maxW && imgH <= maxH {
		return 1.0
	}
	sx := float64(maxW) / float64(imgW)
	sy := float64(maxH) / float64(imgH)
	if sx < sy {
		return sx
	}
	return sy
}
