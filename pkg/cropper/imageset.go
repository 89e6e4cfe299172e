package cropper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// supportedExts lists the file extensions picked up by a folder scan.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupportedImage reports whether name has an image extension we can decode.
func IsSupportedImage(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// ImageSet is the ordered list of image files in a folder. It is read-only
// after the scan.
type ImageSet struct {
	dir   string
	names []string
}

// ScanImageSet lists the supported image files directly inside dir, in natural order.
func ScanImageSet(dir string) (*ImageSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image folder %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsSupportedImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.SliceStable(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	return &ImageSet{dir: dir, names: names}, nil
}

// Dir returns the folder the set was scanned from.
func (s *ImageSet) Dir() string {
	return s.dir
}

// Len returns the number of images.
func (s *ImageSet) Len() int {
	return len(s.names)
}

// Name returns the file name at index i.
func (s *ImageSet) Name(i int) string {
	return s.names[i]
}

// Path returns the full path of the image at index i.
func (s *ImageSet) Path(i int) string {
	return filepath.Join(s.dir, s.names[i])
}
