package handler

import (
	"net/http"

	"github.com/kansah/site/internal/service"
)

// ContentAPIHandler serves the read-only JSON data APIs. Like the pages,
// it always answers 200: an unavailable store shows up as empty data.
type ContentAPIHandler struct {
	content service.ContentService
}

// NewContentAPIHandler creates a ContentAPIHandler.
func NewContentAPIHandler(content service.ContentService) *ContentAPIHandler {
	return &ContentAPIHandler{content: content}
}

// Features handles GET /api/caracteristicas.
func (h *ContentAPIHandler) Features(w http.ResponseWriter, r *http.Request) {
	features := h.content.Features(r.Context())
	n := len(features)
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: features, Count: &n})
}

// Testimonials handles GET /api/testimonios.
func (h *ContentAPIHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials := h.content.Testimonials(r.Context())
	n := len(testimonials)
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: testimonials, Count: &n})
}

// Statistics handles GET /api/estadisticas.
func (h *ContentAPIHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: h.content.Statistics(r.Context())})
}
