package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/WallCrop/pkg/cropper"
)

var boxColor = color.NRGBA{R: 0xff, A: 0xff}

// dragTarget receives pointer input in display coordinates.
type dragTarget interface {
	BeginDrag(p cropper.Point)
	UpdateDrag(p cropper.Point)
	EndDrag()
	Session() cropper.Session
}

// cropCanvas shows the display image with the crop box drawn over it. One
// canvas unit is one pixel of the display image; the display area handed to
// the controller is already in canvas units.
type cropCanvas struct {
	widget.BaseWidget
	target dragTarget

	image *canvas.Image
	box   *canvas.Rectangle
	size  fyne.Size
}

func newCropCanvas(target dragTarget) *cropCanvas {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest

	box := canvas.NewRectangle(color.Transparent)
	box.StrokeColor = boxColor
	box.StrokeWidth = 2
	box.Hide()

	cc := &cropCanvas{target: target, image: img, box: box}
	cc.ExtendBaseWidget(cc)
	return cc
}

// SetImage replaces the displayed image; nil clears the canvas.
func (cc *cropCanvas) SetImage(img image.Image) {
	cc.image.Image = img
	cc.size = fyne.NewSize(0, 0)
	if img != nil {
		b := img.Bounds()
		cc.size = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	cc.Refresh()
}

// MinSize keeps the canvas at the display image size so the scroll container can pan it.
func (cc *cropCanvas) MinSize() fyne.Size {
	return cc.size
}

func (cc *cropCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &cropCanvasRenderer{canvas: cc}
}

// MouseDown starts a drag or places the box.
func (cc *cropCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	cc.target.BeginDrag(toPoint(ev.Position))
	cc.Refresh()
}

// MouseUp ends a drag.
func (cc *cropCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	cc.target.EndDrag()
	cc.Refresh()
}

// Dragged follows the pointer while the primary button is held.
func (cc *cropCanvas) Dragged(ev *fyne.DragEvent) {
	cc.target.UpdateDrag(toPoint(ev.Position))
	cc.Refresh()
}

// DragEnd ends a drag.
func (cc *cropCanvas) DragEnd() {
	cc.target.EndDrag()
	cc.Refresh()
}

func toPoint(pos fyne.Position) cropper.Point {
	return cropper.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

type cropCanvasRenderer struct {
	canvas *cropCanvas
}

func (r *cropCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.image.Move(fyne.NewPos(0, 0))
	r.canvas.image.Resize(r.canvas.size)
	r.layoutBox()
}

func (r *cropCanvasRenderer) layoutBox() {
	s := r.canvas.target.Session()
	if r.canvas.image.Image == nil || !s.HasBox() {
		r.canvas.box.Hide()
		return
	}
	r.canvas.box.Move(fyne.NewPos(float32(s.Box.X), float32(s.Box.Y)))
	r.canvas.box.Resize(fyne.NewSize(float32(s.Box.W), float32(s.Box.H)))
	r.canvas.box.Show()
}

func (r *cropCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.size
}

func (r *cropCanvasRenderer) Refresh() {
	r.Layout(r.canvas.Size())
	r.canvas.image.Refresh()
	r.canvas.box.Refresh()
}

func (r *cropCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.image, r.canvas.box}
}

func (r *cropCanvasRenderer) Destroy() {}
