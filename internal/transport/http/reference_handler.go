package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"macrolens/internal/refdata"
)

// ReferenceHandler serves the static reference tables used to populate the
// selection widgets.
type ReferenceHandler struct {
	logger *slog.Logger
}

// NewReferenceHandler creates a reference handler.
func NewReferenceHandler(logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		logger: logger.With(slog.String("component", "reference_handler")),
	}
}

// Routes returns the reference routes.
func (h *ReferenceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/companies", h.GetCompanies)
	return r
}

// GetCompanies handles GET /api/reference/companies
func (h *ReferenceHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies := refdata.Companies()
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   companies,
		"count":  len(companies),
	})
}
