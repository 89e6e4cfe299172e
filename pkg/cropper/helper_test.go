package cropper

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDisplay is a mock implementation of the Display interface.
type MockDisplay struct {
	mock.Mock
}

func (m *MockDisplay) DisplaySize() (int, int, error) {
	args := m.Called()
	return args.Int(0), args.Int(1), args.Error(2)
}

func createTestImage(width, height int) *image.NRGBA {
	img := imaging.New(width, height, color.NRGBA{R: 255, A: 255})
	// Mark the corners so crops can be located.
	img.Set(0, 0, color.NRGBA{G: 255, A: 255})
	img.Set(width-1, height-1, color.NRGBA{B: 255, A: 255})
	return img
}

func writeTestImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(createTestImage(width, height), path))
	return path
}
