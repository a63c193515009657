package service

import (
	"fmt"
	"image/color"

	"github.com/devtools-portal/backend/internal/models"
)

// Renderer turns one artifact label into encoded file content.
type Renderer interface {
	Render(label string, opts RenderOptions) ([]byte, error)
	ContentType() string
}

// RenderOptions are the request parameters resolved once per request.
type RenderOptions struct {
	Width      int
	Height     int
	Background color.RGBA
	Text       color.RGBA
	// Border is nil when no border is drawn.
	Border   *color.RGBA
	FontSize int
}

func newRenderOptions(req *models.GenerateRequest) (RenderOptions, error) {
	width, height := req.Size()
	opts := RenderOptions{
		Width:    width,
		Height:   height,
		FontSize: req.EffectiveFontSize(),
	}

	var err error
	if opts.Background, err = models.ParseHexColor(req.BackgroundHex()); err != nil {
		return RenderOptions{}, fmt.Errorf("background color: %w", err)
	}
	if opts.Text, err = models.ParseHexColor(req.TextHex()); err != nil {
		return RenderOptions{}, fmt.Errorf("text color: %w", err)
	}
	if hex, ok := req.BorderHex(); ok {
		border, err := models.ParseHexColor(hex)
		if err != nil {
			return RenderOptions{}, fmt.Errorf("border color: %w", err)
		}
		opts.Border = &border
	}
	return opts, nil
}
