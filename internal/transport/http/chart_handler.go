package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "macrolens/internal/errors"
	"macrolens/internal/infrastructure"
	"macrolens/internal/middleware"
)

// defaultCorrelationWindow matches the dashboard's default slider position.
const defaultCorrelationWindow = 60

// maxCorrelationWindow caps the rolling window so a request cannot ask for
// a window longer than any series could fill.
const maxCorrelationWindow = 1000

// dateLayout is the query-parameter date format.
const dateLayout = "2006-01-02"

// ChartHandler serves the five chart-data endpoints.
type ChartHandler struct {
	service      ChartServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	metrics      *infrastructure.Metrics
}

// NewChartHandler creates a chart handler.
func NewChartHandler(service ChartServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, metrics *infrastructure.Metrics) *ChartHandler {
	return &ChartHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "chart_handler")),
		errorHandler: errorHandler,
		metrics:      metrics,
	}
}

// Routes returns the chart routes.
func (h *ChartHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/volatility", h.GetVolatility)
	r.Get("/risk-return", h.GetRiskReturn)

	r.Route("/{ticker}", func(r chi.Router) {
		r.Use(h.TickerCtx)
		r.Get("/action-vs-macro", h.GetActionVsMacro)
		r.Get("/rolling-correlation", h.GetRollingCorrelation)
		r.Get("/factor-sensitivity", h.GetFactorSensitivity)
	})

	return r
}

// TickerCtx middleware validates the ticker parameter.
func (h *ChartHandler) TickerCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")
		if ticker == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("ticker", "Ticker symbol is required"))
			return
		}
		if len(ticker) < 2 || len(ticker) > 12 {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("ticker", "Invalid ticker symbol format"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// observe records the request in the Prometheus collectors.
func (h *ChartHandler) observe(graph string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	h.metrics.ChartRequests.WithLabelValues(graph, outcome).Inc()
	h.metrics.ChartDuration.WithLabelValues(graph).Observe(time.Since(start).Seconds())
}

// GetActionVsMacro handles GET /api/charts/{ticker}/action-vs-macro
func (h *ChartHandler) GetActionVsMacro(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())
	ticker := chi.URLParam(r, "ticker")

	h.logger.InfoContext(r.Context(), "fetching action-vs-macro chart",
		slog.String("request_id", reqID),
		slog.String("ticker", ticker),
	)

	chart, err := h.service.ActionVsMacro(r.Context(), ticker)
	h.observe("action_vs_macro", start, err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   chart,
	})
}

// GetRollingCorrelation handles GET /api/charts/{ticker}/rolling-correlation?window=60
func (h *ChartHandler) GetRollingCorrelation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())
	ticker := chi.URLParam(r, "ticker")

	window := defaultCorrelationWindow
	if windowStr := r.URL.Query().Get("window"); windowStr != "" {
		parsed, err := strconv.Atoi(windowStr)
		if err != nil || parsed < 2 || parsed > maxCorrelationWindow {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("window",
				fmt.Sprintf("Window must be an integer between 2 and %d", maxCorrelationWindow)))
			return
		}
		window = parsed
	}

	h.logger.InfoContext(r.Context(), "fetching rolling-correlation chart",
		slog.String("request_id", reqID),
		slog.String("ticker", ticker),
		slog.Int("window", window),
	)

	chart, err := h.service.RollingCorrelation(r.Context(), ticker, window)
	h.observe("rolling_correlation", start, err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   chart,
	})
}

// GetVolatility handles GET /api/charts/volatility?tickers=TTE.PA,MC.PA&from=...&to=...
func (h *ChartHandler) GetVolatility(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())

	tickers := splitList(r.URL.Query().Get("tickers"))
	if len(tickers) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("tickers", "At least one ticker is required"))
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "fetching volatility chart",
		slog.String("request_id", reqID),
		slog.Int("tickers", len(tickers)),
	)

	series, err := h.service.VolatilityHistory(r.Context(), tickers, from, to)
	h.observe("volatility", start, err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   series,
		"count":  len(series),
	})
}

// GetRiskReturn handles GET /api/charts/risk-return?from=...&to=...
func (h *ChartHandler) GetRiskReturn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())

	from, to, err := parseDateRange(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "fetching risk-return map",
		slog.String("request_id", reqID),
	)

	summaries, err := h.service.RiskReturnMap(r.Context(), from, to)
	h.observe("risk_return", start, err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetFactorSensitivity handles GET /api/charts/{ticker}/factor-sensitivity
func (h *ChartHandler) GetFactorSensitivity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := middleware.GetReqID(r.Context())
	ticker := chi.URLParam(r, "ticker")

	h.logger.InfoContext(r.Context(), "fetching factor-sensitivity chart",
		slog.String("request_id", reqID),
		slog.String("ticker", ticker),
	)

	chart, err := h.service.FactorSensitivity(r.Context(), ticker)
	h.observe("factor_sensitivity", start, err)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   chart,
	})
}

// splitList splits a comma-separated query value, trimming blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseDateRange parses the optional inclusive from/to query parameters.
// Absent parameters leave the corresponding bound open (zero time).
func parseDateRange(r *http.Request) (from, to time.Time, err error) {
	if s := r.URL.Query().Get("from"); s != "" {
		from, err = time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, apierrors.ErrValidation("from", "Date must be formatted YYYY-MM-DD")
		}
	}
	if s := r.URL.Query().Get("to"); s != "" {
		to, err = time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, apierrors.ErrValidation("to", "Date must be formatted YYYY-MM-DD")
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, apierrors.ErrValidation("to", "End date must not precede start date")
	}
	return from, to, nil
}
