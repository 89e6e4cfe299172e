//go:build darwin

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJSONResolution(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name:  "Main display",
			input: `{"SPDisplaysDataType":[{"spdisplays_ndrvs":[{"_spdisplays_pixels":"1920 x 1080","spdisplays_main":"spdisplays_no"},{"_spdisplays_pixels":"3420 x 2214","spdisplays_main":"spdisplays_yes"}]}]}`,
			wantW: 3420,
			wantH: 2214,
		},
		{
			name:  "No main display falls back to first",
			input: `{"SPDisplaysDataType":[{"spdisplays_ndrvs":[{"_spdisplays_pixels":"2560 x 1440"}]}]}`,
			wantW: 2560,
			wantH: 1440,
		},
		{
			name:    "No displays",
			input:   `{"SPDisplaysDataType":[]}`,
			wantErr: true,
		},
		{
			name:    "Invalid JSON",
			input:   "No resolution here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH, err := parseJSONResolution([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}
