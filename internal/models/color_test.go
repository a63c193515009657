package models

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := map[string]color.RGBA{
			"#ffffff": {R: 255, G: 255, B: 255, A: 255},
			"#000000": {A: 255},
			"#ff0000": {R: 255, A: 255},
			"#0000FF": {B: 255, A: 255},
			"#3b82f6": {R: 0x3b, G: 0x82, B: 0xf6, A: 255},
		}
		for in, want := range tests {
			got, err := ParseHexColor(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "#fff", "ffffff", "#fffffff", "#gggggg", "#+fffff", "red"} {
			_, err := ParseHexColor(in)
			assert.Error(t, err, in)
		}
	})
}
