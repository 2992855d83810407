package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/service"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter. A repeated email is answered with
// Estado "Info" and status 200: from the visitor's side it is not an error.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, estadoError, msgInvalidJSON)
		return
	}

	outcome, err := h.newsletterService.Subscribe(r.Context(), req.Email)
	if errors.Is(err, model.ErrValidation) {
		writeStatus(w, http.StatusBadRequest, estadoError, msgMissingField+fieldLabel("email"))
		return
	}
	if err != nil {
		slog.Error("newsletter subscribe failed", "error", err)
		writeStatus(w, http.StatusInternalServerError, estadoError, msgGenericError)
		return
	}

	switch outcome {
	case model.OutcomeCreated:
		writeStatus(w, http.StatusOK, estadoExitoso, msgSubscribeThanks)
	case model.OutcomeAlreadyExists:
		writeStatus(w, http.StatusOK, estadoInfo, msgAlreadySubscribed)
	default:
		slog.Error("newsletter subscribe returned no outcome", "outcome", outcome.String())
		writeStatus(w, http.StatusInternalServerError, estadoError, msgGenericError)
	}
}
