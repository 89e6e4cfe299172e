package cropper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/dixieflatline76/WallCrop/config"
	"github.com/dixieflatline76/WallCrop/util/log"
)

var (
	// ErrNoMoreImages is returned once every image in the set has been shown or skipped.
	ErrNoMoreImages = errors.New("no more images to display")
	// ErrNoImageLoaded is returned by operations that need a current image.
	ErrNoImageLoaded = errors.New("no image loaded")
	// ErrNoSuggester is returned by Suggest when the Controller has no Suggester.
	ErrNoSuggester = errors.New("no suggester configured")
)

// Display reports the area available for showing an image, in display pixels.
type Display interface {
	DisplaySize() (int, int, error)
}

// Options configures a Controller.
type Options struct {
	CropWidth   int
	CropHeight  int
	JPEGQuality int
	AutoSuggest bool       // Place the box with the Suggester on every new image
	Suggester   *Suggester // Optional, required for Suggest and AutoSuggest
	Report      *Report    // Optional, records every saved crop
}

// Controller drives a crop session over an ImageSet: it loads images, routes
// pointer input to the Session and saves crops. It is not safe for concurrent
// use; the UI calls it from its event loop.
type Controller struct {
	set       *ImageSet
	fm        *FileManager
	display   Display
	proc      *imageProcessor
	suggester *Suggester
	report    *Report

	cropSize    image.Point
	autoSuggest bool

	cursor     int // Index of the next candidate image
	exhausted  bool
	session    Session
	displayImg image.Image
}

// NewController creates a Controller. Nothing is loaded until Start is called.
func NewController(set *ImageSet, fm *FileManager, display Display, opts Options) *Controller {
	if opts.CropWidth <= 0 {
		opts.CropWidth = config.DefaultCropWidth
	}
	if opts.CropHeight <= 0 {
		opts.CropHeight = config.DefaultCropHeight
	}
	if opts.JPEGQuality <= 0 {
		opts.JPEGQuality = config.DefaultJPEGQuality
	}
	return &Controller{
		set:         set,
		fm:          fm,
		display:     display,
		proc:        newImageProcessor(opts.JPEGQuality),
		suggester:   opts.Suggester,
		report:      opts.Report,
		cropSize:    image.Pt(opts.CropWidth, opts.CropHeight),
		autoSuggest: opts.AutoSuggest && opts.Suggester != nil,
	}
}

// Start rewinds to the beginning of the set and loads the first eligible image.
func (c *Controller) Start(ctx context.Context) error {
	c.cursor = 0
	c.exhausted = false
	return c.LoadNext(ctx)
}

// LoadNext advances to the next image that is at least as large as the crop
// box. Smaller and unreadable files are skipped. When the set runs out the
// session goes idle and ErrNoMoreImages is returned.
func (c *Controller) LoadNext(ctx context.Context) error {
	for c.cursor < c.set.Len() {
		i := c.cursor
		c.cursor++

		session, display, err := c.load(ctx, i)
		if err != nil {
			if ctxErr := checkContext(ctx); ctxErr != nil {
				return ctxErr
			}
			log.Printf("Ignored file (unreadable): %s: %v", c.set.Name(i), err)
			continue
		}
		if !session.Loaded() {
			log.Printf("Ignored file (too small): %s", c.set.Name(i))
			continue
		}

		c.session = session
		c.displayImg = display
		log.Debugf("Loaded %s (%d/%d) scale=%.4f", session.Name, i+1, c.set.Len(), session.Scale)

		if c.autoSuggest {
			if err := c.Suggest(ctx); err != nil {
				log.Printf("Suggest failed for %s: %v", session.Name, err)
			}
		}
		return nil
	}

	c.session = Session{Index: c.set.Len()}
	c.displayImg = nil
	c.exhausted = true
	log.Println("No more images to display.")
	return ErrNoMoreImages
}

// load reads image i. A session that is not Loaded means the image is too small.
func (c *Controller) load(ctx context.Context, i int) (Session, image.Image, error) {
	path := c.set.Path(i)
	w, h, err := c.fm.GetDimensions(path)
	if err != nil {
		return Session{}, nil, err
	}
	if !c.fits(w, h) {
		return Session{}, nil, nil
	}

	img, err := c.proc.DecodeFile(ctx, path)
	if err != nil {
		return Session{}, nil, err
	}
	// EXIF orientation may have swapped the header dimensions.
	if !c.fits(img.Bounds().Dx(), img.Bounds().Dy()) {
		return Session{}, nil, nil
	}

	maxW, maxH := c.displaySize()
	display, scale, err := c.proc.FitImage(ctx, img, maxW, maxH)
	if err != nil {
		return Session{}, nil, err
	}
	return NewSession(i, c.set.Name(i), img, scale, c.cropSize), display, nil
}

func (c *Controller) fits(w, h int) bool {
	return w >= c.cropSize.X && h >= c.cropSize.Y
}

func (c *Controller) displaySize() (int, int) {
	if c.display != nil {
		w, h, err := c.display.DisplaySize()
		if err == nil && w > 0 && h > 0 {
			return w, h
		}
		if err != nil {
			log.Printf("Failed to get display size, using %dx%d: %v", config.DefaultDisplayWidth, config.DefaultDisplayHeight, err)
		}
	}
	return config.DefaultDisplayWidth, config.DefaultDisplayHeight
}

// Skip advances without saving.
func (c *Controller) Skip(ctx context.Context) error {
	return c.LoadNext(ctx)
}

// BeginDrag routes a pointer press to the session.
func (c *Controller) BeginDrag(p Point) {
	c.session = c.session.Press(p)
}

// UpdateDrag routes pointer motion to the session.
func (c *Controller) UpdateDrag(p Point) {
	c.session = c.session.Move(p)
}

// EndDrag routes the pointer release to the session.
func (c *Controller) EndDrag() {
	c.session = c.session.Release()
}

// Suggest places the crop box where the Suggester proposes.
func (c *Controller) Suggest(ctx context.Context) error {
	if !c.session.Loaded() {
		return ErrNoImageLoaded
	}
	if c.suggester == nil {
		return ErrNoSuggester
	}
	pt, err := c.suggester.Suggest(ctx, c.session.Original, c.cropSize.X, c.cropSize.Y)
	if err != nil {
		return err
	}
	c.session = c.session.PlaceBox(pt)
	return nil
}

// Crop saves the region under the crop box as "cropped_<name>" in the output
// folder and then loads the next image. Without a box it does nothing and
// returns an empty path. The saved path is returned even when the following
// LoadNext reports ErrNoMoreImages.
func (c *Controller) Crop(ctx context.Context) (string, error) {
	rect, ok := c.session.SourceRect()
	if !ok {
		return "", nil
	}

	path, err := c.fm.OutputPath(c.session.Name)
	if err != nil {
		return "", err
	}
	if err := c.fm.EnsureDirs(); err != nil {
		return "", err
	}

	cropped := CropFixed(c.session.Original, rect)
	data, err := c.proc.EncodeImage(ctx, cropped, path)
	if err != nil {
		return "", fmt.Errorf("saving crop of %s: %w", c.session.Name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("Image saved: %s", path)

	if c.report != nil {
		rec := CropRecord{
			Source:  c.set.Path(c.session.Index),
			Output:  path,
			X:       rect.Min.X,
			Y:       rect.Min.Y,
			Width:   rect.Dx(),
			Height:  rect.Dy(),
			Scale:   c.session.Scale,
			SavedAt: time.Now(),
		}
		if err := c.report.Add(rec); err != nil {
			log.Printf("Failed to update crop report: %v", err)
		}
	}

	return path, c.LoadNext(ctx)
}

// Session returns the current session.
func (c *Controller) Session() Session {
	return c.session
}

// DisplayImage returns the current image as displayed, nil when idle.
func (c *Controller) DisplayImage() image.Image {
	return c.displayImg
}

// Suggester returns the configured Suggester, or nil.
func (c *Controller) Suggester() *Suggester {
	return c.suggester
}

// CropSize returns the fixed crop size in original pixels.
func (c *Controller) CropSize() image.Point {
	return c.cropSize
}

// Exhausted reports whether the set has run out of images.
func (c *Controller) Exhausted() bool {
	return c.exhausted
}

// Progress returns the 1-based position of the current image and the set size.
func (c *Controller) Progress() (int, int) {
	if !c.session.Loaded() {
		return 0, c.set.Len()
	}
	return c.session.Index + 1, c.set.Len()
}
