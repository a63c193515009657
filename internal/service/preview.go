package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/devtools-portal/backend/internal/models"
	"github.com/gen2brain/go-fitz"
)

// Rasterizer turns the first page of a PDF into an image.
type Rasterizer interface {
	Rasterize(data []byte) (image.Image, error)
}

type fitzRasterizer struct {
	dpi float64
}

func (f fitzRasterizer) Rasterize(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, f.dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize pdf: %w", err)
	}
	return img, nil
}

// Preview renders the first artifact of req as a PNG image. PDF artifacts are
// rendered for real and rasterized; spreadsheets are previewed as a raster
// placeholder carrying the same label.
func (g *GenerateService) Preview(ctx context.Context, req *models.GenerateRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateSize(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := g.preview(req)
	if err != nil {
		g.logger.Printf("failed to preview %s: %v\n", req.Format, err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: failed to encode preview: %w", ErrGenerationFailed, err)
	}
	return buf.Bytes(), nil
}

func (g *GenerateService) preview(req *models.GenerateRequest) (img image.Image, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("preview panic: %v", p)
		}
	}()

	if err := g.checkSurface(req.Size()); err != nil {
		return nil, err
	}

	opts, err := newRenderOptions(req)
	if err != nil {
		return nil, err
	}

	label := req.ArtifactName(1)
	if req.Format != models.FormatPDF {
		surface, err := g.raster.Draw(label, opts)
		if err != nil {
			return nil, err
		}
		return surface, nil
	}

	data, err := g.renderers[models.FormatPDF].Render(label, opts)
	if err != nil {
		return nil, err
	}
	return g.rasterizer.Rasterize(data)
}
