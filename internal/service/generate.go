package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/devtools-portal/backend/internal/config"
	"github.com/devtools-portal/backend/internal/metrics"
	"github.com/devtools-portal/backend/internal/models"
)

// ErrGenerationFailed marks any fault during rendering, encoding or archiving.
var ErrGenerationFailed = errors.New("generation failed")

var errSurfaceTooLarge = errors.New("surface exceeds pixel budget")

const (
	statusOK    = "ok"
	statusError = "error"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type GenerateService struct {
	logger     *log.Logger
	renderers  map[models.Format]Renderer
	raster     *rasterRenderer
	rasterizer Rasterizer
	cache      Cache
	maxPixels  int64
}

func NewGenerateService(logger *log.Logger, cfg config.GeneratorConfig) (*GenerateService, error) {
	typeface, err := loadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}

	raster := newPNGRenderer(typeface)
	return &GenerateService{
		logger: logger,
		renderers: map[models.Format]Renderer{
			models.FormatPNG:  raster,
			models.FormatJPG:  newJPEGRenderer(typeface, cfg.JPEGQuality),
			models.FormatPDF:  pdfRenderer{},
			models.FormatXLSX: xlsxRenderer{},
		},
		raster:     raster,
		rasterizer: fitzRasterizer{dpi: previewDPI},
		maxPixels:  cfg.MaxPixels,
	}, nil
}

func (g *GenerateService) SetCacheClient(cache Cache) {
	g.cache = cache
}

func (g *GenerateService) SetRasterizer(rasterizer Rasterizer) {
	g.rasterizer = rasterizer
}

// Generate renders req.Count artifacts in index order. A single artifact is
// returned as is; more than one are packed into a zip archive.
func (g *GenerateService) Generate(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	renderer := g.renderers[req.Format]
	key := getCacheKey(req)

	if g.cache != nil {
		cached, found, err := g.cache.Get(ctx, key)
		if err != nil {
			g.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			g.logger.Println("served from cache")
			return newResult(req, renderer, cached), nil
		}
	}

	start := time.Now()
	data, err := g.generate(ctx, req, renderer)
	status := statusOK
	if err != nil {
		status = statusError
	}
	metrics.GenerationDuration(status, string(req.Format), time.Since(start))
	metrics.ArtifactsGeneratedTotal(status, string(req.Format), req.N())

	if err != nil {
		g.logger.Printf("failed to generate %d %s file(s): %v\n", req.N(), req.Format, err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, data); err != nil {
			g.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return newResult(req, renderer, data), nil
}

func (g *GenerateService) generate(ctx context.Context, req *models.GenerateRequest, renderer Renderer) (data []byte, err error) {
	g.logger.Printf("start generating %d %s file(s)\n", req.N(), req.Format)
	defer g.logger.Printf("finish generating %d %s file(s)\n", req.N(), req.Format)
	defer func() {
		if p := recover(); p != nil {
			data, err = nil, fmt.Errorf("render panic: %v", p)
		}
	}()

	if req.Format.Raster() {
		if err := g.checkSurface(req.Size()); err != nil {
			return nil, err
		}
	}

	opts, err := newRenderOptions(req)
	if err != nil {
		return nil, err
	}

	count := req.N()
	if count == 1 {
		return renderer.Render(req.ArtifactName(1), opts)
	}

	packer := newArchive()
	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := req.ArtifactName(i)
		content, err := renderer.Render(name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		if err := packer.Add(name, content); err != nil {
			return nil, err
		}
	}
	if packer.Len() != count {
		return nil, fmt.Errorf("archive holds %d of %d files", packer.Len(), count)
	}
	return packer.Bytes()
}

// checkSurface rejects surfaces above the pixel budget before anything is
// allocated.
func (g *GenerateService) checkSurface(width, height int) error {
	if g.maxPixels <= 0 {
		return nil
	}
	if pixels := int64(width) * int64(height); pixels > g.maxPixels {
		return fmt.Errorf("%w: %dx%d is %d pixels, limit %d", errSurfaceTooLarge, width, height, pixels, g.maxPixels)
	}
	return nil
}

func newResult(req *models.GenerateRequest, renderer Renderer, data []byte) *models.GenerateResult {
	if req.N() == 1 {
		return &models.GenerateResult{
			Filename:    req.ArtifactName(1),
			ContentType: renderer.ContentType(),
			Data:        data,
			Count:       1,
		}
	}
	return &models.GenerateResult{
		Filename:    req.ArchiveName(),
		ContentType: ContentTypeZIP,
		Data:        data,
		Count:       req.N(),
		Archived:    true,
	}
}

func getCacheKey(req *models.GenerateRequest) string {
	width, height := req.Size()
	border, _ := req.BorderHex()

	data := []string{
		string(req.Format),
		strconv.Itoa(req.N()),
		strconv.Itoa(width),
		strconv.Itoa(height),
		strings.ToLower(req.BackgroundHex()),
		strings.ToLower(req.TextHex()),
		strings.ToLower(border),
		strconv.Itoa(req.EffectiveFontSize()),
	}

	hash := sha256.Sum256([]byte(strings.Join(data, "-")))
	return hex.EncodeToString(hash[:])
}
