package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/devtools-portal/backend/internal/models"
)

const (
	msgInvalidParameters = "無効なパラメータです"
	msgGenerationFailed  = "ファイル生成中にエラーが発生しました"
)

// strictJSON rejects unknown fields instead of silently dropping them.
var strictJSON = sonic.Config{
	DisallowUnknownFields: true,
}.Froze()

type generateService interface {
	Generate(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResult, error)
	Preview(ctx context.Context, req *models.GenerateRequest) ([]byte, error)
}

type GenerateHandler struct {
	service      generateService
	logger       *log.Logger
	maxBodyBytes int64
}

func NewGenerateHandler(service generateService, logger *log.Logger, maxBodyBytes int64) *GenerateHandler {
	return &GenerateHandler{
		service:      service,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// Generate godoc
// @Summary Generate test files
// @Description Render count placeholder files labelled test_{i}.{format}. One file is returned as is, several are returned as a zip archive.
// @Tags generate
// @Accept json
// @Produce image/png,image/jpeg,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/zip
// @Param request body models.GenerateRequest true "Generate request"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate [post]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeFile(w, result.Filename, result.ContentType, result.Data)
}

// Preview godoc
// @Summary Preview the first test file
// @Description Render test_1.{format} as a PNG image. PDF files are rasterized at 72 DPI.
// @Tags generate
// @Accept json
// @Produce image/png
// @Param request body models.GenerateRequest true "Generate request"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate/preview [post]
func (h *GenerateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	data, err := h.service.Preview(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Printf("failed to write preview: %v\n", err)
	}
}

// Presets godoc
// @Summary List size presets
// @Tags generate
// @Produce json
// @Success 200 {array} models.SizePreset
// @Router /presets [get]
func (h *GenerateHandler) Presets(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, models.SizePresets())
}

func (h *GenerateHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*models.GenerateRequest, bool) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: failed to read body: %s", msgInvalidParameters, err))
		return nil, false
	}

	// Unmarshal rejects anything after the first JSON value.
	var req models.GenerateRequest
	if err := strictJSON.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: invalid JSON: %s", msgInvalidParameters, err))
		return nil, false
	}

	if err := req.Validate(); err != nil {
		h.writeServiceError(w, err)
		return nil, false
	}
	return &req, true
}

func (h *GenerateHandler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidParameters) {
		detail := strings.TrimPrefix(err.Error(), models.ErrInvalidParameters.Error()+": ")
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: %s", msgInvalidParameters, detail))
		return
	}

	h.logger.Printf("generate error: %v\n", err)
	h.writeError(w, http.StatusInternalServerError, msgGenerationFailed)
}

func (h *GenerateHandler) writeFile(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Printf("failed to write %s: %v\n", filename, err)
	}
}

func (h *GenerateHandler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, models.ErrorResponse{Error: msg})
}

func (h *GenerateHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		h.logger.Printf("failed to encode response: %v\n", err)
		http.Error(w, msgGenerationFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		h.logger.Printf("failed to write response: %v\n", err)
	}
}
