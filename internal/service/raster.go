package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type rasterEncoder func(w io.Writer, img image.Image) error

// rasterRenderer draws placeholders on an RGBA surface and encodes them as
// PNG or JPEG.
type rasterRenderer struct {
	typeface    *opentype.Font
	encode      rasterEncoder
	contentType string
}

func newPNGRenderer(typeface *opentype.Font) *rasterRenderer {
	return &rasterRenderer{
		typeface:    typeface,
		encode:      png.Encode,
		contentType: ContentTypePNG,
	}
}

func newJPEGRenderer(typeface *opentype.Font, quality int) *rasterRenderer {
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &rasterRenderer{
		typeface: typeface,
		encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		},
		contentType: ContentTypeJPEG,
	}
}

// loadFont parses the font file at path, falling back to Go Regular.
func loadFont(path string) (*opentype.Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

func (r *rasterRenderer) ContentType() string {
	return r.contentType
}

func (r *rasterRenderer) Render(label string, opts RenderOptions) ([]byte, error) {
	img, err := r.Draw(label, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", r.contentType, err)
	}
	return buf.Bytes(), nil
}

// Draw renders the placeholder surface without encoding it.
func (r *rasterRenderer) Draw(label string, opts RenderOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", opts.Width, opts.Height)
	}

	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if opts.Border != nil {
		drawBorder(img, *opts.Border)
	}

	if err := r.drawLabel(img, label, opts.FontSize, opts.Text); err != nil {
		return nil, err
	}
	return img, nil
}

// drawBorder paints the inner half of a borderWidth stroke centered on the
// surface edge; the outer half falls outside the surface.
func drawBorder(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	inset := borderWidth / 2
	src := image.NewUniform(c)

	bands := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+inset),
		image.Rect(b.Min.X, b.Max.Y-inset, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+inset, b.Max.Y),
		image.Rect(b.Max.X-inset, b.Min.Y, b.Max.X, b.Max.Y),
	}
	for _, band := range bands {
		draw.Draw(img, band.Intersect(b), src, image.Point{}, draw.Src)
	}
}

// drawLabel centers text horizontally on its advance and vertically on the
// middle of the em box.
func (r *rasterRenderer) drawLabel(img *image.RGBA, label string, size int, c color.RGBA) error {
	face, err := opentype.NewFace(r.typeface, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}

	b := img.Bounds()
	m := face.Metrics()
	advance := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(b.Dx()) - advance) / 2,
		Y: fixed.I(b.Dy())/2 + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(label)
	return nil
}
