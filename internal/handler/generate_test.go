package handler

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/devtools-portal/backend/internal/config"
	"github.com/devtools-portal/backend/internal/models"
	"github.com/devtools-portal/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	result  *models.GenerateResult
	preview []byte
	err     error
	calls   int
	lastReq *models.GenerateRequest
}

func (f *fakeService) Generate(_ context.Context, req *models.GenerateRequest) (*models.GenerateResult, error) {
	f.calls++
	f.lastReq = req
	return f.result, f.err
}

func (f *fakeService) Preview(_ context.Context, req *models.GenerateRequest) ([]byte, error) {
	f.calls++
	f.lastReq = req
	return f.preview, f.err
}

func newTestHandler(svc generateService) *GenerateHandler {
	return NewGenerateHandler(svc, log.New(io.Discard, "", 0), 1<<20)
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestGenerateHandler_Single(t *testing.T) {
	svc := &fakeService{result: &models.GenerateResult{
		Filename:    "test_1.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
		Count:       1,
	}}
	h := newTestHandler(svc)

	rec := post(h.Generate, `{"format":"png","count":1,"width":800,"height":600}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="test_1.png"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "png-bytes", rec.Body.String())

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, models.FormatPNG, svc.lastReq.Format)
	assert.Equal(t, 1, svc.lastReq.N())
	_, hasBorder := svc.lastReq.BorderHex()
	assert.False(t, hasBorder)
}

func TestGenerateHandler_Archive(t *testing.T) {
	svc := &fakeService{result: &models.GenerateResult{
		Filename:    "generated_jpg_files.zip",
		ContentType: "application/zip",
		Data:        []byte("zip-bytes"),
		Count:       3,
		Archived:    true,
	}}
	h := newTestHandler(svc)

	rec := post(h.Generate, `{"format":"jpg","count":3,"width":400,"height":300,"bgColor":"#ff0000","borderColor":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="generated_jpg_files.zip"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, "#ff0000", svc.lastReq.BgColor)
}

func TestGenerateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero count", body: `{"count":0,"format":"png"}`},
		{name: "missing count", body: `{"format":"png","width":10,"height":10}`},
		{name: "missing format", body: `{"count":1,"width":10,"height":10}`},
		{name: "unknown format", body: `{"format":"gif","count":1,"width":10,"height":10}`},
		{name: "unknown field", body: `{"format":"png","count":1,"width":10,"height":10,"quality":90}`},
		{name: "ill-typed count", body: `{"format":"png","count":"1","width":10,"height":10}`},
		{name: "malformed color", body: `{"format":"png","count":1,"width":10,"height":10,"textColor":"black"}`},
		{name: "missing size", body: `{"format":"pdf","count":1}`},
		{name: "not json", body: `format=png`},
		{name: "trailing garbage", body: `{"format":"png","count":1,"width":10,"height":10}garbage`},
		{name: "second value", body: `{"format":"png","count":1,"width":10,"height":10}{"count":2}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := newTestHandler(svc)

			rec := post(h.Generate, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, strings.HasPrefix(decodeError(t, rec), msgInvalidParameters))
			assert.Zero(t, svc.calls, "service must not be called")
		})
	}
}

func TestGenerateHandler_BodyTooLarge(t *testing.T) {
	svc := &fakeService{}
	h := NewGenerateHandler(svc, log.New(io.Discard, "", 0), 16)

	rec := post(h.Generate, `{"format":"png","count":1,"width":800,"height":600}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGenerateHandler_ServiceErrors(t *testing.T) {
	t.Run("generation failure is generic", func(t *testing.T) {
		svc := &fakeService{err: fmt.Errorf("%w: %w", service.ErrGenerationFailed, fmt.Errorf("secret detail"))}
		h := newTestHandler(svc)

		rec := post(h.Generate, `{"format":"png","count":1,"width":10,"height":10}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		msg := decodeError(t, rec)
		assert.Equal(t, msgGenerationFailed, msg)
		assert.NotContains(t, msg, "secret")
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := &fakeService{err: fmt.Errorf("%w: width and height are required for png", models.ErrInvalidParameters)}
		h := newTestHandler(svc)

		rec := post(h.Generate, `{"format":"png","count":1,"width":10,"height":10}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgInvalidParameters+": width and height are required for png", decodeError(t, rec))
	})
}

func TestGenerateHandler_Preview(t *testing.T) {
	svc := &fakeService{preview: []byte("preview")}
	h := newTestHandler(svc)

	rec := post(h.Preview, `{"format":"pdf","count":1,"width":600,"height":400}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "preview", rec.Body.String())
}

func TestGenerateHandler_Presets(t *testing.T) {
	h := newTestHandler(&fakeService{})

	rec := httptest.NewRecorder()
	h.Presets(rec, httptest.NewRequest(http.MethodGet, "/presets", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var presets []models.SizePreset
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &presets))
	assert.Equal(t, models.SizePresets(), presets)
}

func newRealHandler(t *testing.T) *GenerateHandler {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	svc, err := service.NewGenerateService(logger, config.GeneratorConfig{JPEGQuality: 75})
	require.NoError(t, err)
	return NewGenerateHandler(svc, logger, 1<<20)
}

func TestGenerate_EndToEnd(t *testing.T) {
	h := newRealHandler(t)

	t.Run("single png", func(t *testing.T) {
		rec := post(h.Generate, `{"format":"png","count":1,"width":800,"height":600}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, service.ContentTypePNG, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="test_1.png"`, rec.Header().Get("Content-Disposition"))

		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	})

	t.Run("xlsx archive", func(t *testing.T) {
		rec := post(h.Generate, `{"format":"xlsx","count":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, service.ContentTypeZIP, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="generated_xlsx_files.zip"`, rec.Header().Get("Content-Disposition"))

		body := rec.Body.Bytes()
		zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
		require.NoError(t, err)
		require.Len(t, zr.File, 2)
		assert.Equal(t, "test_1.xlsx", zr.File[0].Name)
		assert.Equal(t, "test_2.xlsx", zr.File[1].Name)
	})

	t.Run("zero count", func(t *testing.T) {
		rec := post(h.Generate, `{"count":0,"format":"png"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, decodeError(t, rec))
	})
}

func TestGenerate_OversizedSurface(t *testing.T) {
	const body = `{"format":"png","count":1,"width":2147483647,"height":2147483647}`
	logger := log.New(io.Discard, "", 0)

	tests := []struct {
		name string
		cfg  config.GeneratorConfig
	}{
		{name: "over pixel budget", cfg: config.GeneratorConfig{JPEGQuality: 75, MaxPixels: 40_000_000}},
		{name: "unaddressable without budget", cfg: config.GeneratorConfig{JPEGQuality: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := service.NewGenerateService(logger, tt.cfg)
			require.NoError(t, err)
			h := NewGenerateHandler(svc, logger, 1<<20)

			r := chi.NewRouter()
			r.Use(middleware.Recoverer)
			r.Post("/generate", h.Generate)
			r.Post("/generate/preview", h.Preview)

			for _, path := range []string{"/generate", "/generate/preview"} {
				req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
				rec := httptest.NewRecorder()
				r.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
				assert.Equal(t, msgGenerationFailed, decodeError(t, rec), path)
			}
		})
	}
}
