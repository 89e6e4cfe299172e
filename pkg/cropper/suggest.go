package cropper

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/WallCrop/util/log"
	pigo "github.com/esimov/pigo/core"
	"github.com/muesli/smartcrop"
)

// Face detection tuning. Detection runs on a copy no larger than faceMaxSide.
const (
	faceMaxSide      = 1024
	faceMinSize      = 20
	faceShiftFactor  = 0.1
	faceScaleFactor  = 1.1
	faceIoUThreshold = 0.2
	faceMinQuality   = 5.0
)

// Suggester proposes where to put the crop box. With a face cascade loaded it
// centers the box on the strongest face; otherwise it uses smartcrop.
type Suggester struct {
	analyzer smartcrop.Analyzer
	faces    *pigo.Pigo
}

// NewSuggester creates a Suggester. cascade is a pigo face cascade; when it is
// empty, face mode is disabled.
func NewSuggester(cascade []byte) (*Suggester, error) {
	s := &Suggester{
		analyzer: smartcrop.NewAnalyzer(&resizer{resampler: imaging.Lanczos}),
	}
	if len(cascade) == 0 {
		return s, nil
	}
	classifier, err := unpackCascade(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpacking face cascade: %w", err)
	}
	s.faces = classifier
	return s, nil
}

// unpackCascade turns the panics pigo raises on truncated input into errors.
func unpackCascade(data []byte) (classifier *pigo.Pigo, err error) {
	defer func() {
		if r := recover(); r != nil {
			classifier, err = nil, fmt.Errorf("malformed cascade: %v", r)
		}
	}()
	return pigo.NewPigo().Unpack(data)
}

// LoadSuggester creates a Suggester from a cascade file. A missing or broken
// cascade only disables face mode.
func LoadSuggester(cascadePath string) *Suggester {
	var cascade []byte
	if cascadePath != "" {
		data, err := os.ReadFile(cascadePath)
		if err != nil {
			log.Printf("Warning: Failed to load face detection model: %v. Face mode will be disabled.", err)
		} else {
			cascade = data
		}
	}
	s, err := NewSuggester(cascade)
	if err != nil {
		log.Printf("Warning: %v. Face mode will be disabled.", err)
		s, _ = NewSuggester(nil)
	}
	return s
}

// FaceMode reports whether face detection is active.
func (s *Suggester) FaceMode() bool {
	return s.faces != nil
}

// Suggest returns the top-left corner, in img pixels relative to its bounds,
// of a cropW x cropH box. The box always lies inside the image when it fits.
func (s *Suggester) Suggest(ctx context.Context, img image.Image, cropW, cropH int) (image.Point, error) {
	if err := checkContext(ctx); err != nil {
		return image.Point{}, err
	}

	var center image.Point
	found := false
	if s.faces != nil {
		center, found = s.detectFace(img)
		if found {
			log.Debugf("Suggest: face found at %v", center)
		}
	}
	if !found {
		c, err := s.smartCenter(ctx, img, cropW, cropH)
		if err != nil {
			return image.Point{}, err
		}
		center = c
	}

	b := img.Bounds()
	x := clamp(center.X-cropW/2, 0, b.Dx()-cropW)
	y := clamp(center.Y-cropH/2, 0, b.Dy()-cropH)
	return image.Pt(x, y), nil
}

// smartCenter returns the center of smartcrop's best crop for the crop aspect ratio.
func (s *Suggester) smartCenter(ctx context.Context, img image.Image, cropW, cropH int) (image.Point, error) {
	// Use a goroutine and channel to make FindBestCrop context-aware.
	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		topCrop, err := s.analyzer.FindBestCrop(img, cropW, cropH)
		resultChan <- cropResult{crop: topCrop, err: err}
	}()

	select {
	case <-ctx.Done():
		return image.Point{}, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return image.Point{}, fmt.Errorf("finding best crop: %w", result.err)
		}
		r := result.crop.Sub(img.Bounds().Min)
		return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2), nil
	}
}

// detectFace returns the center of the highest quality face, in img pixels.
func (s *Suggester) detectFace(img image.Image) (image.Point, bool) {
	b := img.Bounds()
	factor := faceScale(b.Dx(), b.Dy())

	var src *image.NRGBA
	if factor < 1.0 {
		src = imaging.Resize(img, max(int(float64(b.Dx())*factor), 1), 0, imaging.Linear)
	} else {
		src = imaging.Clone(img)
	}

	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()
	params := pigo.CascadeParams{
		MinSize:     faceMinSize,
		MaxSize:     min(cols, rows),
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := s.faces.RunCascade(params, 0.0)
	dets = s.faces.ClusterDetections(dets, faceIoUThreshold)
	return bestFace(dets, factor)
}

// faceScale is the downscale factor that brings the longer side to faceMaxSide.
func faceScale(w, h int) float64 {
	if side := max(w, h); side > faceMaxSide {
		return float64(faceMaxSide) / float64(side)
	}
	return 1.0
}

// bestFace picks the highest quality detection above faceMinQuality and maps
// its center back from a copy downscaled by factor.
func bestFace(dets []pigo.Detection, factor float64) (image.Point, bool) {
	var best *pigo.Detection
	for i := range dets {
		if dets[i].Q < faceMinQuality {
			continue
		}
		if best == nil || dets[i].Q > best.Q {
			best = &dets[i]
		}
	}
	if best == nil {
		return image.Point{}, false
	}
	return image.Pt(int(float64(best.Col)/factor), int(float64(best.Row)/factor)), true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
