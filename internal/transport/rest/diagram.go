package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
	"github.com/heartmarshall/bpe-analyzer/internal/domain"
	"github.com/heartmarshall/bpe-analyzer/internal/service/diagram"
	"github.com/heartmarshall/bpe-analyzer/pkg/ctxutil"
)

// multipartMemory is how much of a multipart form is kept in memory before
// parts spill to temporary files.
const multipartMemory = 8 << 20

// diagramService defines the minimal interface needed by DiagramHandler.
type diagramService interface {
	Analyze(ctx context.Context, input diagram.AnalyzeInput) (domain.AnalysisResult, error)
	ExtractLabels(ctx context.Context, input diagram.ExtractInput) ([]string, error)
	ClassifyLabels(ctx context.Context, input diagram.ClassifyInput) (domain.AnalysisResult, error)
}

// DiagramHandler serves the analysis API.
type DiagramHandler struct {
	svc    diagramService
	limits config.UploadConfig
	log    *slog.Logger
}

// NewDiagramHandler creates a DiagramHandler.
func NewDiagramHandler(svc diagramService, limits config.UploadConfig, logger *slog.Logger) *DiagramHandler {
	return &DiagramHandler{svc: svc, limits: limits, log: logger.With("handler", "diagram")}
}

// analyzeResponse is the envelope returned by /api/analyze.
type analyzeResponse struct {
	Success bool                   `json:"success"`
	Data    *domain.AnalysisResult `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

type extractRequest struct {
	XMLContent string `json:"xmlContent"`
}

type extractResponse struct {
	Labels []string `json:"labels"`
	Count  int      `json:"count"`
}

type classifyRequest struct {
	Labels []string `json:"labels"`
}

// Analyze handles POST /api/analyze (multipart upload, field "file").
func (h *DiagramHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	fail := func(status int, msg string) {
		writeJSON(w, status, analyzeResponse{Success: false, Error: msg})
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isTooLarge(err) {
			fail(http.StatusBadRequest, diagram.TooLargeMessage(h.limits.MaxBytes))
			return
		}
		fail(http.StatusBadRequest, diagram.MsgNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		fail(http.StatusBadRequest, diagram.MsgNoFile)
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the service to reject it.
	content, err := io.ReadAll(io.LimitReader(file, h.limits.MaxBytes+1))
	if err != nil {
		h.log.ErrorContext(r.Context(), "read upload", "error", err)
		fail(http.StatusInternalServerError, err.Error())
		return
	}

	ctx := ctxutil.WithSource(r.Context(), header.Filename)
	result, err := h.svc.Analyze(ctx, diagram.AnalyzeInput{
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		status, msg := h.classifyError(ctx, err)
		fail(status, msg)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Data: &result})
}

// Extract handles POST /api/extract.
func (h *DiagramHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDecodeError(w, err)
		return
	}

	labels, err := h.svc.ExtractLabels(r.Context(), diagram.ExtractInput{XMLContent: req.XMLContent})
	if err != nil {
		status, msg := h.classifyError(r.Context(), err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{Labels: labels, Count: len(labels)})
}

// Classify handles POST /api/classify.
func (h *DiagramHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDecodeError(w, err)
		return
	}

	result, err := h.svc.ClassifyLabels(r.Context(), diagram.ClassifyInput{Labels: req.Labels})
	if err != nil {
		status, msg := h.classifyError(r.Context(), err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *DiagramHandler) writeDecodeError(w http.ResponseWriter, err error) {
	if isTooLarge(err) {
		writeError(w, http.StatusBadRequest, diagram.TooLargeMessage(h.limits.MaxBytes))
		return
	}
	writeError(w, http.StatusBadRequest, diagram.MsgInvalidBody)
}

// classifyError maps a service error to a status code and the message shown
// to the caller. Caller mistakes are 400; everything else is 500 and logged.
func (h *DiagramHandler) classifyError(ctx context.Context, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrParse):
		h.log.DebugContext(ctx, "request rejected", "error", err)
		return http.StatusBadRequest, domain.UserMessage(err)
	default:
		h.log.ErrorContext(ctx, "analysis failed",
			"error", err,
			"request_id", ctxutil.RequestIDFromCtx(ctx),
			"source", ctxutil.SourceFromCtx(ctx),
		)
		return http.StatusInternalServerError, err.Error()
	}
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
