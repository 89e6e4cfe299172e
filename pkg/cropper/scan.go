package cropper

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScanStatus classifies an image against the crop size.
type ScanStatus int

const (
	// Eligible images are at least as large as the crop box.
	Eligible ScanStatus = iota
	// TooSmall images are skipped by the controller.
	TooSmall
	// Unreadable images have a header that cannot be decoded.
	Unreadable
)

func (s ScanStatus) String() string {
	switch s {
	case Eligible:
		return "eligible"
	case TooSmall:
		return "too small"
	case Unreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// ScanResult is the header check of one image.
type ScanResult struct {
	Name   string
	Width  int
	Height int
	Status ScanStatus
	Err    error
}

// ScanFolder reads every image header in set concurrently and classifies it
// against a cropW x cropH box. Results keep the set's order.
func ScanFolder(ctx context.Context, set *ImageSet, cropW, cropH int) ([]ScanResult, error) {
	fm := &FileManager{}
	results := make([]ScanResult, set.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < set.Len(); i++ {
		g.Go(func() error {
			if err := checkContext(ctx); err != nil {
				return err
			}
			res := ScanResult{Name: set.Name(i)}
			w, h, err := fm.GetDimensions(set.Path(i))
			switch {
			case err != nil:
				res.Status = Unreadable
				res.Err = err
			case w < cropW || h < cropH:
				res.Status = TooSmall
			default:
				res.Status = Eligible
			}
			res.Width, res.Height = w, h
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
