// Package api implements the HTTP surface consumed by the browser frontend.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/pdf-whisperer/backend/internal/config"
	"github.com/pdf-whisperer/backend/internal/extract"
	"github.com/pdf-whisperer/backend/internal/history"
	"github.com/pdf-whisperer/backend/internal/models"
	"github.com/pdf-whisperer/backend/internal/ollama"
)

// Handler handles API requests.
type Handler struct {
	cfg       *config.AppConfig
	history   *history.Manager
	llm       ollama.Summarizer
	extractor extract.Extractor
	slots     chan struct{}
	version   string
}

// NewHandler creates a new API handler. slots bounds how many analyses may
// run against Ollama concurrently.
func NewHandler(cfg *config.AppConfig, hist *history.Manager, llm ollama.Summarizer, extractor extract.Extractor, version string) *Handler {
	maxConcurrent := cfg.Analysis.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Handler{
		cfg:       cfg,
		history:   hist,
		llm:       llm,
		extractor: extractor,
		slots:     make(chan struct{}, maxConcurrent),
		version:   version,
	}
}

// HandleAnalyze accepts a multipart form with a "pdf" file part plus
// optional "model" and "params" fields, extracts the document text and asks
// the model for an analysis.
func (h *Handler) HandleAnalyze(c echo.Context) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return NewBadRequestError("no pdf file provided", err)
	}
	if !isPDF(fileHeader) {
		return NewBadRequestError("file must be a PDF", nil)
	}

	model := strings.TrimSpace(c.FormValue("model"))
	if model == "" {
		model = h.cfg.Ollama.Model
	}

	var params models.AnalysisParameters
	if raw := c.FormValue("params"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return NewBadRequestError("invalid params JSON", err)
		}
	}
	if err := params.Validate(); err != nil {
		return NewBadRequestError(err.Error(), nil)
	}

	// Reject instead of queueing when all analysis slots are busy; the
	// frontend retries on user action, not automatically.
	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		return NewServiceUnavailableError("analysis capacity reached, try again shortly")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return NewInternalError("failed to read uploaded file", err)
	}

	start := time.Now()

	doc, err := h.extractor.Extract(bytes.NewReader(data), int64(len(data)), h.cfg.Analysis.MaxChars)
	if err != nil {
		return NewInternalError("failed to extract text from PDF", err)
	}

	system, prompt := ollama.BuildPrompt(doc.Text, params)

	summary, err := h.llm.Summarize(c.Request().Context(), model, system, prompt)
	if err != nil {
		logrus.WithError(err).WithField("model", model).Error("ollama request failed")
		h.history.AddFailure(fileHeader.Filename, model, err.Error())
		return NewBadGatewayError("model backend error", err)
	}

	report := models.AnalysisReport{
		ID:        uuid.New().String(),
		Filename:  fileHeader.Filename,
		Pages:     doc.Pages,
		CharsSent: len(doc.Text),
		Summary:   summary,
		Model:     model,
		Truncated: doc.Truncated,
		ElapsedMs: time.Since(start).Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	h.history.AddSuccess(report)

	logrus.WithFields(logrus.Fields{
		"filename":   report.Filename,
		"pages":      report.Pages,
		"chars_sent": report.CharsSent,
		"model":      report.Model,
		"elapsed_ms": report.ElapsedMs,
	}).Info("analysis complete")

	return c.JSON(http.StatusOK, report)
}

// HandleListModels returns the enumerated model set for the UI selector.
func (h *Handler) HandleListModels(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cfg.Models)
}

// isPDF checks the upload by extension and declared content type.
func isPDF(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return true
	}
	return header.Header.Get(echo.HeaderContentType) == "application/pdf"
}
