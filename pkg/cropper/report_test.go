package cropper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportAppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "crops.yaml")

	r, err := OpenReport(path)
	require.NoError(t, err)
	assert.Empty(t, r.Crops)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.Add(CropRecord{Source: "a.png", Output: "cropped_a.png", Width: 10, Height: 5, Scale: 1, SavedAt: now}))

	r, err = OpenReport(path)
	require.NoError(t, err)
	require.NoError(t, r.Add(CropRecord{Source: "b.png", Output: "cropped_b.png", Width: 10, Height: 5, Scale: 0.5, SavedAt: now}))

	r, err = OpenReport(path)
	require.NoError(t, err)
	require.Len(t, r.Crops, 2)
	assert.Equal(t, "a.png", r.Crops[0].Source)
	assert.Equal(t, 0.5, r.Crops[1].Scale)
	assert.True(t, now.Equal(r.Crops[1].SavedAt))
}

func TestOpenReportInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crops.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crops: [unterminated"), 0644))

	_, err := OpenReport(path)
	assert.Error(t, err)
}
