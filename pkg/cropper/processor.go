package cropper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

// imageProcessor decodes, scales, crops and encodes images.
type imageProcessor struct {
	resampler   imaging.ResampleFilter
	jpegQuality int
}

func newImageProcessor(jpegQuality int) *imageProcessor {
	return &imageProcessor{
		resampler:   imaging.Lanczos,
		jpegQuality: jpegQuality,
	}
}

// DecodeFile decodes an image file with context awareness. EXIF orientation is applied.
func (p *imageProcessor) DecodeFile(ctx context.Context, path string) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return img, nil
}

// FitImage downscales img so it fits into maxW x maxH and returns the displayed
// image together with the scale factor. Images that already fit are returned as is.
func (p *imageProcessor) FitImage(ctx context.Context, img image.Image, maxW, maxH int) (image.Image, float64, error) {
	if err := checkContext(ctx); err != nil {
		return nil, 0, err
	}

	imgW, imgH := img.Bounds().Dx(), img.Bounds().Dy()
	scale := ScaleToFit(imgW, imgH, maxW, maxH)
	if scale == 1.0 {
		return img, scale, nil
	}

	w := max(int(float64(imgW)*scale), 1)
	h := max(int(float64(imgH)*scale), 1)

	r := &resizer{resampler: p.resampler}
	resized := r.resizeWithContext(ctx, img, uint(w), uint(h))
	if resized == nil {
		return nil, 0, ctx.Err() // Context was canceled during resize.
	}
	return resized, scale, nil
}

// EncodeImage encodes an image in the format implied by filename.
func (p *imageProcessor) EncodeImage(ctx context.Context, img image.Image, filename string) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("unsupported format: %s: %w", filename, err)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, format,
		imaging.JPEGQuality(p.jpegQuality),
		imaging.GIFQuantizer(&quantize.MedianCutQuantizer{}),
	)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CropFixed extracts rect from img, with rect given relative to the image's
// top-left corner. The result is always exactly rect.Dx() x rect.Dy(); pixels
// that fall outside img are left transparent black.
func CropFixed(img image.Image, rect image.Rectangle) *image.NRGBA {
	dst := imaging.New(rect.Dx(), rect.Dy(), color.NRGBA{})

	bounds := img.Bounds()
	abs := rect.Add(bounds.Min)
	inter := abs.Intersect(bounds)
	if inter.Empty() {
		return dst
	}
	part := imaging.Crop(img, inter)
	return imaging.Paste(dst, part, inter.Min.Sub(abs.Min))
}

// resizer implements the smartcrop.Resizer interface and adds context awareness.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize *doesn't* take a context here. The smartcrop.Resizer interface doesn't
// support contexts. We handle cancellation in resizeWithContext.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}

// resizeWithContext performs the resize operation with context awareness.
func (r *resizer) resizeWithContext(ctx context.Context, img image.Image, width, height uint) image.Image {
	resultChan := make(chan image.Image, 1)

	go func() {
		resultChan <- imaging.Resize(img, int(width), int(height), r.resampler)
	}()

	select {
	case <-ctx.Done():
		return nil
	case result := <-resultChan:
		return result
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
