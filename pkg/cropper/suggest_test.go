package cropper

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	pigo "github.com/esimov/pigo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggester_Suggest(t *testing.T) {
	s, err := NewSuggester(nil)
	require.NoError(t, err)
	assert.False(t, s.FaceMode())

	img := createTestImage(600, 400)
	pt, err := s.Suggest(context.Background(), img, 300, 200)
	require.NoError(t, err)

	r := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(300, 200))}
	assert.True(t, r.In(img.Bounds()), "suggested rect %v inside image", r)
}

func TestSuggester_Canceled(t *testing.T) {
	s, err := NewSuggester(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Suggest(ctx, createTestImage(100, 100), 50, 50)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSuggesterBadCascade(t *testing.T) {
	_, err := NewSuggester([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestLoadSuggesterFallsBack(t *testing.T) {
	s := LoadSuggester(filepath.Join(t.TempDir(), "missing-facefinder"))
	require.NotNil(t, s)
	assert.False(t, s.FaceMode())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5, 0, 10))
	assert.Equal(t, 10, clamp(15, 0, 10))
	assert.Equal(t, 7, clamp(7, 0, 10))
	assert.Equal(t, 0, clamp(7, 0, -3), "crop larger than image pins to origin")
}

func TestFaceScale(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want float64
	}{
		{"Small image untouched", 800, 600, 1.0},
		{"Exactly max side", faceMaxSide, 300, 1.0},
		{"Landscape", 4096, 2048, 0.25},
		{"Portrait", 1000, 2048, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, faceScale(tt.w, tt.h), 1e-9)
		})
	}
}

func TestBestFace(t *testing.T) {
	t.Run("Highest quality wins and scales back", func(t *testing.T) {
		dets := []pigo.Detection{
			{Row: 100, Col: 200, Scale: 40, Q: 6},
			{Row: 50, Col: 300, Scale: 60, Q: 12},
			{Row: 10, Col: 10, Scale: 20, Q: 2},
		}
		pt, ok := bestFace(dets, 0.25)
		require.True(t, ok)
		assert.Equal(t, image.Pt(1200, 200), pt)
	})

	t.Run("Weak detections ignored", func(t *testing.T) {
		_, ok := bestFace([]pigo.Detection{{Row: 10, Col: 10, Scale: 20, Q: faceMinQuality - 1}}, 1.0)
		assert.False(t, ok)
	})

	t.Run("No detections", func(t *testing.T) {
		_, ok := bestFace(nil, 1.0)
		assert.False(t, ok)
	})
}
