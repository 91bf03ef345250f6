package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/wonny/coppermetrics/internal/analysis"
	"github.com/wonny/coppermetrics/internal/ingest"
	"github.com/wonny/coppermetrics/internal/series"
	"github.com/wonny/coppermetrics/internal/store"
	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/logger"
)

const defaultHistoryLimit = 30

// ReportHandler handles analysis report API endpoints
type ReportHandler struct {
	config   *config.Config
	files    *store.FileStore
	archive  *store.ReportRepository // nil when the database is disabled
	analyzer *analysis.Analyzer
	logger   *logger.Logger
}

// NewReportHandler creates a new report handler. archive may be nil.
func NewReportHandler(cfg *config.Config, files *store.FileStore, archive *store.ReportRepository, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		config:   cfg,
		files:    files,
		archive:  archive,
		analyzer: analysis.NewAnalyzer(log),
		logger:   log,
	}
}

// GetReport returns the latest saved analysis report
// GET /api/report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.files.LoadLatest()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			h.logger.WithError(err).Error("Failed to load latest report")
			respondError(w, http.StatusInternalServerError, "Failed to load report")
			return
		}

		// No file yet; fall back to the archive when it is enabled.
		if h.archive == nil {
			respondError(w, http.StatusNotFound, "No analysis report available yet")
			return
		}
		archived, err := h.archive.GetLatest(r.Context())
		if err != nil {
			respondError(w, http.StatusNotFound, "No analysis report available yet")
			return
		}
		report = archived.Report
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(report)
}

// GetHistory returns recent archived reports from the database
// GET /api/report/history?limit=30
func (h *ReportHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		respondError(w, http.StatusServiceUnavailable, "Report archive is not enabled")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid 'limit' (expected a positive integer)")
			return
		}
		limit = n
	}

	history, err := h.archive.GetHistory(r.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load report history")
		respondError(w, http.StatusInternalServerError, "Failed to load report history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(history),
		"reports": history,
	})
}

// AnalyzeRequest represents an on-demand analysis request
type AnalyzeRequest struct {
	Start string `json:"start"` // Optional: period start (YYYY-MM-DD)
	End   string `json:"end"`   // Optional: period end (YYYY-MM-DD)
}

// Analyze runs the analysis on demand and returns the report
// POST /api/analyze
func (h *ReportHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if (req.Start == "") != (req.End == "") {
		respondError(w, http.StatusBadRequest, "'start' and 'end' must be provided together")
		return
	}

	var period *series.Period
	if req.Start != "" {
		start, err := series.ParseDate(req.Start)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'start' date format (expected YYYY-MM-DD)")
			return
		}
		end, err := series.ParseDate(req.End)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'end' date format (expected YYYY-MM-DD)")
			return
		}
		if end.Before(start) {
			respondError(w, http.StatusBadRequest, "'end' must not precede 'start'")
			return
		}
		p := series.NewPeriod(start, end)
		period = &p
	}

	loader := ingest.NewLoader(h.config.CSVPath(), h.logger)
	history, err := loader.Load()
	if err != nil {
		h.logger.WithError(err).Error("Failed to load settlement history")
		respondError(w, http.StatusInternalServerError, "Failed to load settlement history")
		return
	}

	report, err := h.analyzer.Analyze(history, period)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyPeriod) {
			respondJSON(w, http.StatusUnprocessableEntity, analysis.NewErrorResult(err))
			return
		}
		h.logger.WithError(err).Error("Analysis failed")
		respondError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}
	report.Metadata = analysis.NewRunMetadata(h.config.CSVPath(), history, time.Now())

	respondJSON(w, http.StatusOK, report)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
