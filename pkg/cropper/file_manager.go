package cropper

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/WallCrop/config"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrInvalidName is returned for file names that would escape the output folder.
var ErrInvalidName = errors.New("invalid file name")

// FileManager handles the file system side of saving crops.
type FileManager struct {
	outputDir string
}

// NewFileManager creates a new FileManager writing into outputDir.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{outputDir: outputDir}
}

// GetOutputDir returns the folder crops are written to.
func (fm *FileManager) GetOutputDir() string {
	return fm.outputDir
}

// EnsureDirs creates the output folder if it does not exist.
func (fm *FileManager) EnsureDirs() error {
	if err := os.MkdirAll(fm.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", fm.outputDir, err)
	}
	return nil
}

// validateName accepts a plain file name. Dots inside a name are fine;
// "." and ".." and anything with a separator are not.
func (fm *FileManager) validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// CroppedName derives the output file name for a source image: "cropped_<name>".
// WebP sources are written as PNG since there is no WebP encoder.
func CroppedName(name string) string {
	base := filepath.Base(name)
	if strings.EqualFold(filepath.Ext(base), ".webp") {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}
	return config.CroppedFilenamePrefix + base
}

// OutputPath returns the absolute path the crop of sourceName is saved to.
func (fm *FileManager) OutputPath(sourceName string) (string, error) {
	if err := fm.validateName(sourceName); err != nil {
		return "", err
	}
	return filepath.Join(fm.outputDir, CroppedName(sourceName)), nil
}

// GetDimensions returns the width and height of an image file on disk,
// reading only the header.
func (fm *FileManager) GetDimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	img, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return img.Width, img.Height, nil
}
