package cropper

import (
	"image"
)

// DragState is the interaction state of the crop box.
type DragState int

const (
	// NoBox means no crop box has been drawn on the current image yet.
	NoBox DragState = iota
	// BoxIdle means a box exists and is not being dragged.
	BoxIdle
	// Dragging means a press landed inside the box and the pointer moves it.
	Dragging
)

func (s DragState) String() string {
	switch s {
	case NoBox:
		return "NoBox"
	case BoxIdle:
		return "BoxIdle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Session is the state of one loaded image: which image it is, how it is scaled
// for display and where the crop box sits. Session is a value; every pointer
// handler returns the next session instead of mutating the receiver.
type Session struct {
	Index    int         // Position in the ImageSet
	Name     string      // File name in the ImageSet
	Original image.Image // Full-resolution decoded image
	Scale    float64     // Displayed size / original size, 1.0 when not downscaled
	CropSize image.Point // Fixed crop size in original pixels
	Box      Box         // Crop box in display coordinates, valid unless State is NoBox
	State    DragState

	last Point // Last pointer position seen by Press or Move
}

// NewSession creates a session for a freshly loaded image with no crop box.
func NewSession(index int, name string, original image.Image, scale float64, cropSize image.Point) Session {
	if scale <= 0 {
		scale = 1.0
	}
	return Session{
		Index:    index,
		Name:     name,
		Original: original,
		Scale:    scale,
		CropSize: cropSize,
		State:    NoBox,
	}
}

// Loaded reports whether the session holds an image. An idle session (nothing
// loaded yet, or the image set is exhausted) ignores all pointer input.
func (s Session) Loaded() bool {
	return s.Original != nil
}

// HasBox reports whether a crop box is drawn.
func (s Session) HasBox() bool {
	return s.Loaded() && s.State != NoBox
}

// BoxSize returns the crop box size in display coordinates.
func (s Session) BoxSize() (float64, float64) {
	return float64(s.CropSize.X) * s.Scale, float64(s.CropSize.Y) * s.Scale
}

func (s Session) boxAt(p Point) Box {
	w, h := s.BoxSize()
	return Box{X: p.X, Y: p.Y, W: w, H: h}
}

// Press handles a pointer press. Without a box, a new one is anchored at p.
// A press inside the box starts a drag; a press outside relocates the box to p.
func (s Session) Press(p Point) Session {
	if !s.Loaded() {
		return s
	}
	s.last = p
	switch {
	case s.State == NoBox:
		s.Box = s.boxAt(p)
		s.State = BoxIdle
	case s.Box.Contains(p):
		s.State = Dragging
	default:
		s.Box = s.Box.MoveTo(p)
		s.State = BoxIdle
	}
	return s
}

// Move handles pointer motion while the button is held. A dragged box follows
// the delta since the last position; an idle box is re-anchored at p.
func (s Session) Move(p Point) Session {
	if !s.Loaded() {
		return s
	}
	switch s.State {
	case Dragging:
		s.Box = s.Box.Translate(p.X-s.last.X, p.Y-s.last.Y)
	case BoxIdle:
		s.Box = s.Box.MoveTo(p)
	}
	s.last = p
	return s
}

// Release handles the pointer release and leaves drag mode.
func (s Session) Release() Session {
	if s.State == Dragging {
		s.State = BoxIdle
	}
	return s
}

// PlaceBox draws the box with its top-left corner at pt, given in original pixels.
func (s Session) PlaceBox(pt image.Point) Session {
	if !s.Loaded() {
		return s
	}
	s.Box = s.boxAt(Point{X: float64(pt.X) * s.Scale, Y: float64(pt.Y) * s.Scale})
	s.State = BoxIdle
	return s
}

// SourceRect maps the box back to original pixel space. The top-left corner is
// divided by the scale factor and truncated; the size is always the fixed crop
// size, never the displayed box size. The rectangle is not clamped to the image.
func (s Session) SourceRect() (image.Rectangle, bool) {
	if !s.HasBox() {
		return image.Rectangle{}, false
	}
	realX := int(s.Box.X / s.Scale)
	realY := int(s.Box.Y / s.Scale)
	return image.Rect(realX, realY, realX+s.CropSize.X, realY+s.CropSize.Y), true
}
