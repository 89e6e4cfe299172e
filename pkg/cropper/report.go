package cropper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CropRecord describes one saved crop.
type CropRecord struct {
	Source  string    `yaml:"source"`
	Output  string    `yaml:"output"`
	X       int       `yaml:"x"`
	Y       int       `yaml:"y"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Scale   float64   `yaml:"scale"`
	SavedAt time.Time `yaml:"saved_at"`
}

// Report is a YAML log of the crops saved in a folder, appended across runs.
type Report struct {
	Crops []CropRecord `yaml:"crops"`

	path string
}

// OpenReport loads the report at path, or starts an empty one if the file does not exist.
func OpenReport(path string) (*Report, error) {
	r := &Report{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading crop report: %w", err)
	}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing crop report %s: %w", path, err)
	}
	return r, nil
}

// Path returns the file the report is written to.
func (r *Report) Path() string {
	return r.path
}

// Add appends a record and rewrites the report file.
func (r *Report) Add(rec CropRecord) error {
	r.Crops = append(r.Crops, rec)
	return r.Save()
}

// Save writes the report to disk.
func (r *Report) Save() error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding crop report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing crop report: %w", err)
	}
	return nil
}
