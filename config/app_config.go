package config

import "fyne.io/fyne/v2"

// Preference keys
const (
	CropWidthKey     = "crop_width"
	CropHeightKey    = "crop_height"
	InputDirKey      = "input_dir"
	OutputDirKey     = "output_dir"
	JPEGQualityKey   = "jpeg_quality"
	AutoSuggestKey   = "auto_suggest"
	FaceCascadeKey   = "face_cascade_path"
	DisplayWidthKey  = "display_width"
	DisplayHeightKey = "display_height"
)

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetCropSize returns the fixed crop box size in original image pixels.
// Non-positive stored values fall back to the defaults.
func (c *AppConfig) GetCropSize() (int, int) {
	w := c.prefs.IntWithFallback(CropWidthKey, DefaultCropWidth)
	h := c.prefs.IntWithFallback(CropHeightKey, DefaultCropHeight)
	if w <= 0 {
		w = DefaultCropWidth
	}
	if h <= 0 {
		h = DefaultCropHeight
	}
	return w, h
}

// SetCropSize sets the fixed crop box size
func (c *AppConfig) SetCropSize(width, height int) {
	c.prefs.SetInt(CropWidthKey, width)
	c.prefs.SetInt(CropHeightKey, height)
}

// GetInputDir returns the last used input folder
func (c *AppConfig) GetInputDir() string {
	return c.prefs.StringWithFallback(InputDirKey, "")
}

// SetInputDir sets the last used input folder
func (c *AppConfig) SetInputDir(dir string) {
	c.prefs.SetString(InputDirKey, dir)
}

// GetOutputDir returns the last used output folder
func (c *AppConfig) GetOutputDir() string {
	return c.prefs.StringWithFallback(OutputDirKey, "")
}

// SetOutputDir sets the last used output folder
func (c *AppConfig) SetOutputDir(dir string) {
	c.prefs.SetString(OutputDirKey, dir)
}

// GetJPEGQuality returns the JPEG quality used when saving crops, clamped to 1..100.
func (c *AppConfig) GetJPEGQuality() int {
	q := c.prefs.IntWithFallback(JPEGQualityKey, DefaultJPEGQuality)
	switch {
	case q < 1:
		return 1
	case q > 100:
		return 100
	}
	return q
}

// SetJPEGQuality sets the JPEG quality used when saving crops
func (c *AppConfig) SetJPEGQuality(quality int) {
	c.prefs.SetInt(JPEGQualityKey, quality)
}

// GetAutoSuggest returns whether the crop box is placed automatically on every new image
func (c *AppConfig) GetAutoSuggest() bool {
	return c.prefs.BoolWithFallback(AutoSuggestKey, false)
}

// SetAutoSuggest sets whether the crop box is placed automatically on every new image
func (c *AppConfig) SetAutoSuggest(enabled bool) {
	c.prefs.SetBool(AutoSuggestKey, enabled)
}

// GetFaceCascadePath returns the path of the pigo face cascade, empty when face mode is off
func (c *AppConfig) GetFaceCascadePath() string {
	return c.prefs.StringWithFallback(FaceCascadeKey, "")
}

// SetFaceCascadePath sets the path of the pigo face cascade
func (c *AppConfig) SetFaceCascadePath(path string) {
	c.prefs.SetString(FaceCascadeKey, path)
}

// GetDisplaySize returns the display area used when the screen size cannot be detected
func (c *AppConfig) GetDisplaySize() (int, int) {
	w := c.prefs.IntWithFallback(DisplayWidthKey, DefaultDisplayWidth)
	h := c.prefs.IntWithFallback(DisplayHeightKey, DefaultDisplayHeight)
	if w <= 0 || h <= 0 {
		return DefaultDisplayWidth, DefaultDisplayHeight
	}
	return w, h
}

// SetDisplaySize sets the fallback display area
func (c *AppConfig) SetDisplaySize(width, height int) {
	c.prefs.SetInt(DisplayWidthKey, width)
	c.prefs.SetInt(DisplayHeightKey, height)
}
