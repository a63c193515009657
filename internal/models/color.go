package models

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHexColor parses a #RRGGBB string into an opaque color.
func ParseHexColor(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q is not in #RRGGBB form", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not in #RRGGBB form", hex)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
