package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"macrolens/internal/analytics"
	"macrolens/internal/middleware"
	"macrolens/internal/refdata"
	"macrolens/internal/services"
)

// Common error types following RFC 7807
const (
	TypeValidation  = "/errors/validation"
	TypeNotFound    = "/errors/not-found"
	TypeInternal    = "/errors/internal"
	TypeTimeout     = "/errors/timeout"
	TypeServiceDown = "/errors/service-unavailable"
)

// Domain-specific error types
const (
	TypeUnknownTicker     = "/errors/data/unknown-ticker"
	TypeEmptyIntersection = "/errors/data/empty-intersection"
	TypeEmptyResult       = "/errors/data/empty-result"
	TypeInsufficientData  = "/errors/data/insufficient-data"
	TypeDivideByZero      = "/errors/data/divide-by-zero"
	TypeZeroVariance      = "/errors/data/zero-variance"
	TypeWindowTooSmall    = "/errors/data/window-too-small"
	TypeFetchFailed       = "/errors/textmining/fetch-failed"
	TypeEmptyArticle      = "/errors/textmining/empty-article"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds. Every
// data-shape failure of a chart request ends up here: the response carries
// a readable message, the session stays usable.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	reqID := middleware.GetReqID(r.Context())

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	problem := h.ErrorToProblem(err, r)
	problem.WithExtension("trace_id", reqID)

	render.Render(w, r, problem)
}

// ErrorToProblem converts an error to RFC 7807 Problem Details. Data-shape
// errors are client-visible 4xx problems; anything unrecognized is an
// opaque 500.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.apiErrorToProblem(apiErr, r)
	}

	switch {
	case errors.Is(err, refdata.ErrUnknownTicker):
		return NewProblemDetails(
			http.StatusNotFound,
			TypeUnknownTicker,
			"Unknown Ticker",
			err.Error(),
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrEmptyIntersection):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeEmptyIntersection,
			"No Overlapping Dates",
			"The equity and its macro factor share no common dates in the selected range",
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrEmptyResult):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeEmptyResult,
			"Empty Result",
			"The selected tickers and date range produced no data",
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrInsufficientData):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeInsufficientData,
			"Insufficient Data",
			"At least two joined observations are required to fit a regression",
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrDivideByZero):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeDivideByZero,
			"Zero Base Value",
			"The first joined value is zero, so a base-100 index cannot be computed",
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrZeroVariance):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeZeroVariance,
			"Zero Variance",
			"The macro factor returns have no variance in the selected range, so the regression slope is undefined",
			r.URL.Path,
		)

	case errors.Is(err, analytics.ErrWindowTooSmall):
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeWindowTooSmall,
			"Window Too Small",
			"The rolling-correlation window must be at least 2 observations",
			r.URL.Path,
		)

	case errors.Is(err, services.ErrFetchFailed):
		return NewProblemDetails(
			http.StatusBadGateway,
			TypeFetchFailed,
			"Article Fetch Failed",
			err.Error(),
			r.URL.Path,
		)

	case errors.Is(err, services.ErrEmptyArticle):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeEmptyArticle,
			"Empty Article",
			"The fetched page contains no paragraph text to analyse",
			r.URL.Path,
		)

	case errors.Is(err, services.ErrInvalidInput):
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeValidation,
			"Invalid Input",
			err.Error(),
			r.URL.Path,
		)
	}

	// Unrecognized errors stay opaque to the client.
	return NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred while processing the request",
		r.URL.Path,
	)
}

// apiErrorToProblem maps a structured APIError onto problem details.
func (h *ErrorHandler) apiErrorToProblem(apiErr *APIError, r *http.Request) *ProblemDetails {
	problemType := TypeInternal
	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		problemType = TypeNotFound
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		problemType = TypeValidation
	case apiErr.StatusCode == http.StatusBadGateway:
		problemType = TypeFetchFailed
	}

	problem := NewProblemDetails(
		apiErr.StatusCode,
		problemType,
		apiErr.ErrorCode,
		apiErr.Message,
		r.URL.Path,
	)
	if apiErr.Details != nil {
		problem.WithExtension("details", apiErr.Details)
	}
	return problem
}
