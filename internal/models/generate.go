package models

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when a generation request fails validation.
var ErrInvalidParameters = errors.New("invalid parameters")

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

const (
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#000000"

	// fontSizeDivisor scales the smaller side of the surface into the auto font size.
	fontSizeDivisor = 6
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPG, FormatPDF, FormatXLSX}
}

func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatJPG, FormatPDF, FormatXLSX:
		return true
	}
	return false
}

// Raster reports whether the format is drawn on a pixel surface.
func (f Format) Raster() bool {
	return f == FormatPNG || f == FormatJPG
}

// Dimensional reports whether width and height affect the output.
func (f Format) Dimensional() bool {
	return f != FormatXLSX
}

// GenerateRequest represents request for generate endpoint
type GenerateRequest struct {
	Format Format `json:"format" validate:"required" enums:"png,jpg,pdf,xlsx" example:"png"`
	Count  *int   `json:"count" validate:"required" example:"1"`
	Width  *int   `json:"width" example:"800"`
	Height *int   `json:"height" example:"600"`

	// Optional styling parameters
	BgColor     string  `json:"bgColor" example:"#ffffff" default:"#ffffff"`
	TextColor   string  `json:"textColor" example:"#000000" default:"#000000"`
	BorderColor *string `json:"borderColor" example:"#0000ff"`
	FontSize    *int    `json:"fontSize" example:"48"`
}

func (r GenerateRequest) Validate() error {
	if r.Format == "" {
		return fmt.Errorf("%w: format is empty", ErrInvalidParameters)
	}
	if !r.Format.Valid() {
		return fmt.Errorf("%w: unsupported format {%s}", ErrInvalidParameters, r.Format)
	}
	if r.Count == nil {
		return fmt.Errorf("%w: count is empty", ErrInvalidParameters)
	}
	if *r.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidParameters, *r.Count)
	}
	if r.Format.Dimensional() {
		if err := r.ValidateSize(); err != nil {
			return err
		}
	}
	return r.validateStyle()
}

// ValidateSize checks width and height regardless of format.
func (r GenerateRequest) ValidateSize() error {
	if r.Width == nil || r.Height == nil {
		return fmt.Errorf("%w: width and height are required for %s", ErrInvalidParameters, r.Format)
	}
	if *r.Width <= 0 || *r.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidParameters, *r.Width, *r.Height)
	}
	return nil
}

func (r GenerateRequest) validateStyle() error {
	if r.FontSize != nil && *r.FontSize <= 0 {
		return fmt.Errorf("%w: fontSize must be positive, got %d", ErrInvalidParameters, *r.FontSize)
	}

	colors := []struct{ field, value string }{
		{"bgColor", r.BgColor},
		{"textColor", r.TextColor},
	}
	if r.BorderColor != nil {
		colors = append(colors, struct{ field, value string }{"borderColor", *r.BorderColor})
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if _, err := ParseHexColor(c.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidParameters, c.field, err)
		}
	}
	return nil
}

func (r GenerateRequest) N() int {
	if r.Count == nil {
		return 0
	}
	return *r.Count
}

func (r GenerateRequest) Size() (width, height int) {
	if r.Width != nil {
		width = *r.Width
	}
	if r.Height != nil {
		height = *r.Height
	}
	return width, height
}

func (r GenerateRequest) BackgroundHex() string {
	if r.BgColor == "" {
		return DefaultBackgroundColor
	}
	return r.BgColor
}

func (r GenerateRequest) TextHex() string {
	if r.TextColor == "" {
		return DefaultTextColor
	}
	return r.TextColor
}

// BorderHex returns the border color and whether a border should be drawn.
func (r GenerateRequest) BorderHex() (string, bool) {
	if r.BorderColor == nil || *r.BorderColor == "" {
		return "", false
	}
	return *r.BorderColor, true
}

// EffectiveFontSize returns the explicit font size or floor(min(width,height)/6),
// never less than 1.
func (r GenerateRequest) EffectiveFontSize() int {
	if r.FontSize != nil && *r.FontSize > 0 {
		return *r.FontSize
	}
	width, height := r.Size()
	size := min(width, height) / fontSizeDivisor
	if size < 1 {
		return 1
	}
	return size
}

// ArtifactName is both the file name and the label drawn inside artifact i.
func (r GenerateRequest) ArtifactName(i int) string {
	return fmt.Sprintf("test_%d.%s", i, r.Format)
}

func (r GenerateRequest) ArchiveName() string {
	return fmt.Sprintf("generated_%s_files.zip", r.Format)
}

// Artifact is one rendered placeholder file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// GenerateResult is the payload written back to the caller: either a single
// artifact or an archive holding all of them.
type GenerateResult struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
	Archived    bool
}

type ErrorResponse struct {
	Error string `json:"error" example:"無効なパラメータです: count is empty"`
}
