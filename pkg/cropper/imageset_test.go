package cropper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanImageSet(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"img10.png", "img2.JPG", "img1.jpeg", "notes.txt", "anim.gif", "raw.cr2"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "folder.png"), 0755))

	set, err := ScanImageSet(tmpDir)
	require.NoError(t, err)

	var names []string
	for i := 0; i < set.Len(); i++ {
		names = append(names, set.Name(i))
	}
	assert.Equal(t, []string{"anim.gif", "img1.jpeg", "img2.JPG", "img10.png"}, names)
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, tmpDir, set.Dir())
	assert.Equal(t, filepath.Join(tmpDir, "img10.png"), set.Path(3))
}

func TestScanImageSetMissingFolder(t *testing.T) {
	_, err := ScanImageSet(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsSupportedImage(t *testing.T) {
	assert.True(t, IsSupportedImage("a.PNG"))
	assert.True(t, IsSupportedImage("a.jpeg"))
	assert.True(t, IsSupportedImage("a.webp"))
	assert.False(t, IsSupportedImage("a.txt"))
	assert.False(t, IsSupportedImage("png"))
}
