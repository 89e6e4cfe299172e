package cropper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	fm := NewFileManager(tmpDir)

	path, err := fm.OutputPath("beach.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "cropped_beach.jpg"), path)

	path, err = fm.OutputPath("forest.webp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "cropped_forest.png"), path)
}

func TestSecurityValidation(t *testing.T) {
	fm := NewFileManager(t.TempDir())

	for _, name := range []string{"../../etc/passwd", "sub/a.png", `sub\a.png`, "", ".", ".."} {
		_, err := fm.OutputPath(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}

	for _, name := range []string{"beach..sunset.png", "..hidden.jpg", "v1.2..final.gif"} {
		path, err := fm.OutputPath(name)
		require.NoError(t, err, name)
		assert.Equal(t, filepath.Join(fm.GetOutputDir(), "cropped_"+name), path)
	}
}

func TestEnsureDirs(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	fm := NewFileManager(outDir)

	require.NoError(t, fm.EnsureDirs())
	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	assert.NoError(t, fm.EnsureDirs())
}

func TestGetDimensions(t *testing.T) {
	tmpDir := t.TempDir()
	fm := NewFileManager(tmpDir)
	path := writeTestImage(t, tmpDir, "a.png", 64, 48)

	w, h, err := fm.GetDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)

	bad := filepath.Join(tmpDir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, _, err = fm.GetDimensions(bad)
	assert.Error(t, err)
}
