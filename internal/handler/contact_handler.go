package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/service"
)

const (
	maxMessageLength = 5000
	maxBodyBytes     = 64 << 10
)

// fieldLabels maps validation field names to the labels shown to visitors.
var fieldLabels = map[string]string{
	"name":    "nombre",
	"email":   "email",
	"subject": "asunto",
	"message": "mensaje",
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the expected JSON body for POST /Contacto.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /Contacto. The body is JSON, or form-encoded when
// the contact page is posted without script.
// All four fields are required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeContact(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, estadoError, msgInvalidJSON)
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeStatus(w, http.StatusBadRequest, estadoError, "El mensaje es demasiado largo.")
		return
	}

	_, err = h.contactService.Submit(r.Context(), model.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})

	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeStatus(w, http.StatusBadRequest, estadoError, msgMissingField+fieldLabel(vErr.Field))
		return
	case err != nil:
		slog.Error("contact submit failed", "error", err)
		writeStatus(w, http.StatusInternalServerError, estadoError, msgGenericError)
		return
	}

	writeStatus(w, http.StatusOK, estadoExitoso, msgContactThanks)
}

func decodeContact(r *http.Request) (contactRequest, error) {
	var req contactRequest
	if isFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Subject = r.PostForm.Get("subject")
		req.Message = r.PostForm.Get("message")
		return req, nil
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// isFormEncoded reports whether the request carries an HTML form body.
// Anything else, including a missing Content-Type, is decoded as JSON.
func isFormEncoded(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
