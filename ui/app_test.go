package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/WallCrop/config"
	"github.com/dixieflatline76/WallCrop/pkg/cropper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDisplay struct {
	width, height int
}

func (d fixedDisplay) DisplaySize() (int, int, error) {
	return d.width, d.height, nil
}

func writeImage(t *testing.T, dir, name string, width, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
}

// newTestCropApp opens a window over inDir with a 100x50 crop shown in a 200x150 display area.
func newTestCropApp(t *testing.T, outDir string) *CropApp {
	t.Helper()
	a := test.NewTempApp(t)
	cfg := config.NewAppConfig(a.Preferences())
	return NewCropApp(a, cfg, fixedDisplay{200, 150}, func(dir string, display cropper.Display) (*cropper.Controller, error) {
		set, err := cropper.ScanImageSet(dir)
		if err != nil {
			return nil, err
		}
		return cropper.NewController(set, cropper.NewFileManager(outDir), display,
			cropper.Options{CropWidth: 100, CropHeight: 50}), nil
	})
}

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(pos fyne.Position) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: pos}}
}

func TestCropAppBeforeFolder(t *testing.T) {
	ca := newTestCropApp(t, t.TempDir())

	assert.Equal(t, statusNoFolder, ca.status.Text)
	assert.True(t, ca.okButton.Disabled())
	assert.True(t, ca.cropButton.Disabled())

	// Input and shortcuts are ignored without a session.
	ca.canvas.MouseDown(press(fyne.NewPos(5, 5)))
	ca.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.False(t, ca.Session().HasBox())
}

func TestCropAppOpenFolder(t *testing.T) {
	inDir := t.TempDir()
	writeImage(t, inDir, "img10.png", 400, 300)
	writeImage(t, inDir, "img2.png", 400, 300)

	ca := newTestCropApp(t, t.TempDir())
	require.NoError(t, ca.OpenFolder(inDir))

	assert.Equal(t, "img2.png (1/2)", ca.status.Text)
	assert.False(t, ca.okButton.Disabled())
	assert.False(t, ca.cropButton.Disabled())
	assert.True(t, ca.suggestButton.Disabled(), "no suggester configured")
	assert.Equal(t, fyne.NewSize(200, 150), ca.canvas.MinSize())
	assert.Equal(t, inDir, ca.cfg.GetInputDir())
}

func TestCropAppOpenMissingFolder(t *testing.T) {
	ca := newTestCropApp(t, t.TempDir())
	assert.Error(t, ca.OpenFolder(filepath.Join(t.TempDir(), "missing")))
	assert.Equal(t, statusNoFolder, ca.status.Text)
}

func TestCropAppDrawAndCrop(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	writeImage(t, inDir, "a.png", 400, 300)
	writeImage(t, inDir, "b.png", 400, 300)

	ca := newTestCropApp(t, outDir)
	require.NoError(t, ca.OpenFolder(inDir))

	// Enter without a box does nothing.
	ca.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "a.png (1/2)", ca.status.Text)

	ca.canvas.MouseDown(press(fyne.NewPos(10, 10)))
	ca.canvas.Dragged(drag(fyne.NewPos(20, 15)))
	ca.canvas.DragEnd()

	s := ca.Session()
	require.True(t, s.HasBox())
	assert.Equal(t, cropper.Box{X: 20, Y: 15, W: 50, H: 25}, s.Box)
	assert.True(t, ca.canvas.box.Visible())

	ca.typedKey(&fyne.KeyEvent{Name: fyne.KeyEnter})
	assert.Equal(t, "b.png (2/2)", ca.status.Text)

	out, err := imaging.Open(filepath.Join(outDir, "cropped_a.png"))
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())
	assert.False(t, ca.Session().HasBox(), "box resets on the next image")
}

func TestCropAppDragBox(t *testing.T) {
	inDir := t.TempDir()
	writeImage(t, inDir, "a.png", 400, 300)

	ca := newTestCropApp(t, t.TempDir())
	require.NoError(t, ca.OpenFolder(inDir))

	ca.canvas.MouseDown(press(fyne.NewPos(30, 20)))
	ca.canvas.MouseUp(press(fyne.NewPos(30, 20)))
	ca.canvas.MouseDown(press(fyne.NewPos(35, 25)))
	assert.Equal(t, cropper.Dragging, ca.Session().State)

	ca.canvas.Dragged(drag(fyne.NewPos(45, 30)))
	ca.canvas.MouseUp(press(fyne.NewPos(45, 30)))

	s := ca.Session()
	assert.Equal(t, cropper.BoxIdle, s.State)
	assert.Equal(t, 40.0, s.Box.X)
	assert.Equal(t, 25.0, s.Box.Y)
}

func TestCropAppExhausted(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	writeImage(t, inDir, "a.png", 400, 300)
	writeImage(t, inDir, "small.png", 50, 20)

	ca := newTestCropApp(t, outDir)
	require.NoError(t, ca.OpenFolder(inDir))
	assert.Equal(t, "a.png (1/2)", ca.status.Text)

	ca.okButton.OnTapped()

	assert.Equal(t, statusNoImages, ca.status.Text)
	assert.True(t, ca.okButton.Disabled())
	assert.True(t, ca.cropButton.Disabled())
	assert.True(t, ca.suggestButton.Disabled())
	assert.Equal(t, fyne.NewSize(0, 0), ca.canvas.MinSize())
	assert.False(t, ca.canvas.box.Visible())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "a.png (3/7)", statusText("a.png", 3, 7))
	assert.Equal(t, statusNoImages, statusText("", 0, 7))
}
