package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizePresets(t *testing.T) {
	presets := SizePresets()
	require.NotEmpty(t, presets)
	for _, p := range presets {
		assert.Positive(t, p.Width, p.Name)
		assert.Positive(t, p.Height, p.Name)
	}

	presets[0].Width = -1
	assert.Positive(t, SizePresets()[0].Width, "presets must be returned as a copy")
}
