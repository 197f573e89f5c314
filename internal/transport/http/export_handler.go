package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "macrolens/internal/errors"
	"macrolens/internal/exporter"
	"macrolens/internal/middleware"
)

// ExportHandler serves downloadable exports of derived tables.
type ExportHandler struct {
	service      ChartServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewExportHandler creates an export handler.
func NewExportHandler(service ChartServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the export routes.
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/risk-return", h.GetRiskReturnExport)
	return r
}

// GetRiskReturnExport handles GET /api/export/risk-return?format=csv|xlsx&from=...&to=...
func (h *ExportHandler) GetRiskReturnExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format", "Format must be csv or xlsx"))
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	summaries, err := h.service.RiskReturnMap(r.Context(), from, to)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "exporting risk-return table",
		slog.String("request_id", reqID),
		slog.String("format", format),
		slog.Int("tickers", len(summaries)),
	)

	filename := fmt.Sprintf("risk_return_%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = exporter.WriteRiskReturnXLSX(w, summaries)
	default:
		w.Header().Set("Content-Type", "text/csv")
		err = exporter.WriteRiskReturnCSV(w, summaries)
	}
	if err != nil {
		// Headers are already gone; log instead of writing a second response.
		h.logger.ErrorContext(r.Context(), "export stream failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
	}
}
