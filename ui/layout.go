package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// barLayout pins the first visible object to the left edge and the last to
// the right edge. Objects in between are centered as a group.
type barLayout struct{}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible() {
			visible = append(visible, o)
		}
	}
	return visible
}

// MinSize is the sum of the widths plus padding, and the tallest height.
func (barLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}
	pad := theme.Size(theme.SizeNamePadding)
	var width, height float32
	for _, o := range visible {
		ms := o.MinSize()
		width += ms.Width
		height = fyne.Max(height, ms.Height)
	}
	return fyne.NewSize(width+pad*float32(len(visible)-1), height)
}

// Layout arranges the objects across the container width.
func (barLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}
	pad := theme.Size(theme.SizeNamePadding)
	place := func(o fyne.CanvasObject, x float32) float32 {
		ms := o.MinSize()
		o.Resize(fyne.NewSize(ms.Width, containerSize.Height))
		o.Move(fyne.NewPos(x, 0))
		return ms.Width
	}

	first := visible[0]
	place(first, 0)
	if len(visible) == 1 {
		return
	}
	last := visible[len(visible)-1]
	place(last, containerSize.Width-last.MinSize().Width)

	middle := visible[1 : len(visible)-1]
	var middleWidth float32
	for _, o := range middle {
		middleWidth += o.MinSize().Width
	}
	if len(middle) > 1 {
		middleWidth += pad * float32(len(middle)-1)
	}
	x := (containerSize.Width - middleWidth) / 2
	for _, o := range middle {
		x += place(o, x) + pad
	}
}

// newButtonBar lays out left, center and right aligned objects in one row.
func newButtonBar(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(barLayout{}, objects...)
}
