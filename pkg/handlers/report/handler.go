package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/api"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports"
	"github.com/Bhautik-2004/FMS-sub001/pkg/services/export"
)

const defaultHistoryLimit = 50

type Handler struct {
	exports         export.Service
	defaultCurrency string
	historyLimit    int
}

func NewHandler(exports export.Service, defaultCurrency string, historyLimit int) *Handler {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Handler{
		exports:         exports,
		defaultCurrency: defaultCurrency,
		historyLimit:    historyLimit,
	}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reportType := domain.ReportType(chi.URLParam(r, "type"))
	if !reportType.Valid() {
		http.Error(w, fmt.Sprintf("unknown report type %q", string(reportType)), http.StatusBadRequest)
		return
	}

	format := domain.ReportFormat(r.URL.Query().Get("format"))
	if !format.Valid() {
		http.Error(w, fmt.Sprintf("unknown report format %q", string(format)), http.StatusBadRequest)
		return
	}

	var req api.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Parameters.Currency == "" {
		req.Parameters.Currency = h.defaultCurrency
	}

	doc, err := h.exports.Export(ctx, reportType, format, req.Rows, req.Parameters)
	if err != nil {
		if errors.Is(err, reports.ErrUnsupportedReportType) || errors.Is(err, reports.ErrUnsupportedFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().
			Err(err).
			Str("report_type", string(reportType)).
			Str("format", string(format)).
			Msg("report export failed")
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", doc.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	if _, err := w.Write(doc.Data); err != nil {
		logger.Error().
			Err(err).
			Str("file", doc.FileName).
			Msg("failed to write report body")
	}
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid 'limit' parameter. Expected a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.exports.History(ctx, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load export history")
		http.Error(w, "failed to load export history", http.StatusInternalServerError)
		return
	}

	response := make([]api.ExportRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, api.ExportRecord{
			ID:          rec.ID,
			ReportType:  rec.ReportType,
			Format:      rec.Format,
			Status:      rec.Status,
			FileName:    rec.FileName,
			RecordCount: rec.RecordCount,
			ByteSize:    rec.ByteSize,
			DurationMS:  rec.DurationMS,
			Error:       rec.Error,
			RequestedAt: rec.RequestedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode export history")
	}
}

func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	formats := make([]string, 0, len(domain.ReportFormats()))
	for _, f := range domain.ReportFormats() {
		formats = append(formats, string(f))
	}

	response := make([]api.ReportTypeDef, 0, len(domain.ReportTypes()))
	for _, t := range domain.ReportTypes() {
		response = append(response, api.ReportTypeDef{
			Type:    string(t),
			Title:   t.Title(),
			Formats: formats,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report types")
	}
}
