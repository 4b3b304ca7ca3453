package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/osteovision/osteovision/internal/application/analysis"
	domai "github.com/osteovision/osteovision/internal/domain/ai"
	domain "github.com/osteovision/osteovision/internal/domain/analysis"
	"github.com/osteovision/osteovision/internal/intake"
	"github.com/osteovision/osteovision/internal/logger"
	"github.com/osteovision/osteovision/internal/middleware"
	"github.com/osteovision/osteovision/internal/report"
)

// Options configures the router's middleware.
type Options struct {
	RateLimitCapacity   int
	RateLimitRefillRate int
	// CredentialCheck reports whether the gateway credential is present;
	// used by the health endpoint.
	CredentialCheck func(ctx context.Context) error
}

type Router struct {
	svc  *appanalysis.Service
	text report.TextRenderer
	pdf  report.PDFRenderer
}

func NewRouter(svc *appanalysis.Service, opts Options) http.Handler {
	rt := &Router{
		svc:  svc,
		text: report.NewTextRenderer(),
		pdf:  report.NewPDFRenderer(),
	}

	mux := chi.NewRouter()

	// Permissive CORS; the browser client may be served from anywhere.
	// OPTIONS preflights are answered here with the same headers.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))
	mux.Use(middleware.RequestIDMiddleware)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if opts.RateLimitCapacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateLimitCapacity, opts.RateLimitRefillRate))
	}

	checkers := map[string]middleware.HealthChecker{}
	if opts.CredentialCheck != nil {
		checkers["gateway_credential"] = middleware.CheckerFunc(opts.CredentialCheck)
	}
	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze-scan", rt.wrap(rt.handleAnalyzeScan))
	mux.Post("/report/text", rt.wrap(rt.handleReportText))
	mux.Post("/report/pdf", rt.wrap(rt.handleReportPDF))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			status, msg := errorResponse(err)
			logger.WithError(err).WithField("status", status).Error("request failed")
			writeJSON(w, status, map[string]string{"error": msg})
		}
	}
}

// errorResponse maps domain errors to the documented outward responses.
// Rate-limit and quota failures pass through distinctly; configuration
// problems are logged but reported generically.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, appanalysis.ErrNoImage):
		return http.StatusBadRequest, "No image provided"
	case errors.Is(err, domai.ErrRateLimited):
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."
	case errors.Is(err, domai.ErrQuotaExhausted):
		return http.StatusPaymentRequired, "AI credits exhausted. Please add credits to continue."
	case errors.Is(err, domai.ErrTimeout):
		return http.StatusGatewayTimeout, "AI analysis timed out. Please try again."
	case errors.Is(err, domai.ErrNotConfigured):
		return http.StatusInternalServerError, "Server configuration error"
	}
	return http.StatusInternalServerError, err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
	ScanType    string `json:"scanType"`
}

// POST /analyze-scan
// Body: {"imageBase64": "<base64>", "scanType": "X-ray"}
func (rt *Router) handleAnalyzeScan(w http.ResponseWriter, req *http.Request) error {
	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if body.ImageBase64 == "" {
		return appanalysis.ErrNoImage
	}

	middleware.IncrementAnalyses()

	out, err := rt.svc.Analyze(
		req.Context(),
		intake.StripDataURL(body.ImageBase64),
		middleware.SanitizeScanType(body.ScanType),
	)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	if out.ParseError {
		middleware.IncrementParseFailures()
	}

	writeJSON(w, http.StatusOK, map[string]any{"analysis": out.Payload()})
	return nil
}

// POST /report/text
// Body: an AnalysisResult; responds with the plain-text transcript.
func (rt *Router) handleReportText(w http.ResponseWriter, req *http.Request) error {
	rep, err := decodeReport(req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := rt.text.Render(&buf, rep); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename("txt", rt.text.Clock))
	_, err = w.Write(buf.Bytes())
	return err
}

// POST /report/pdf
// Body: an AnalysisResult; responds with the paginated PDF document.
func (rt *Router) handleReportPDF(w http.ResponseWriter, req *http.Request) error {
	rep, err := decodeReport(req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := rt.pdf.Render(&buf, rep); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename("pdf", rt.pdf.Clock))
	_, err = w.Write(buf.Bytes())
	return err
}

func decodeReport(req *http.Request) (*domain.Report, error) {
	var rep domain.Report
	if err := json.NewDecoder(req.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report body: %w", err)
	}
	return &rep, nil
}
