package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "macrolens/internal/errors"
	"macrolens/internal/infrastructure"
	"macrolens/internal/middleware"
)

// WordCloudRequest is the body of POST /api/textmining/wordcloud.
type WordCloudRequest struct {
	URL      string `json:"url" validate:"required,http_url"`
	MaxWords int    `json:"max_words" validate:"omitempty,min=1,max=500"`
}

// TextMiningHandler serves the article word-cloud endpoint.
type TextMiningHandler struct {
	service      TextMiningServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	metrics      *infrastructure.Metrics
	validate     *validator.Validate
}

// NewTextMiningHandler creates a text-mining handler.
func NewTextMiningHandler(service TextMiningServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, metrics *infrastructure.Metrics) *TextMiningHandler {
	return &TextMiningHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "textmining_handler")),
		errorHandler: errorHandler,
		metrics:      metrics,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes returns the text-mining routes.
func (h *TextMiningHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/wordcloud", h.PostWordCloud)
	return r
}

// PostWordCloud handles POST /api/textmining/wordcloud
func (h *TextMiningHandler) PostWordCloud(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	var req WordCloudRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"INVALID_REQUEST",
			"Invalid request body",
			err.Error(),
		))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("url",
			"A valid http(s) URL is required and max_words must be between 1 and 500"))
		return
	}

	h.logger.InfoContext(r.Context(), "building word cloud",
		slog.String("request_id", reqID),
		slog.String("url", req.URL),
		slog.Int("max_words", req.MaxWords),
	)

	cloud, err := h.service.WordCloud(r.Context(), req.URL, req.MaxWords)
	if err != nil {
		h.metrics.ArticleFetches.WithLabelValues("error").Inc()
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.metrics.ArticleFetches.WithLabelValues("success").Inc()

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   cloud,
	})
}
