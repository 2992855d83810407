package handler

import (
	"encoding/json"
	"net/http"
)

// Estado values returned by the write endpoints.
const (
	estadoExitoso = "Exitoso"
	estadoInfo    = "Info"
	estadoError   = "Error"
)

// User-facing messages.
const (
	msgContactThanks     = "¡Gracias por tu mensaje!"
	msgSubscribeThanks   = "¡Gracias por suscribirte!"
	msgAlreadySubscribed = "Este correo ya está suscrito."
	msgInvalidJSON       = "La solicitud no es válida."
	msgGenericError      = "Ocurrió un error. Inténtalo más tarde."
	msgMissingField      = "Falta el campo: "
)

// statusResponse is the body of every write endpoint response.
type statusResponse struct {
	Estado  string `json:"Estado"`
	Mensaje string `json:"mensaje"`
}

// dataResponse is the body of the read-only data APIs.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status int, estado, mensaje string) {
	writeJSON(w, status, statusResponse{Estado: estado, Mensaje: mensaje})
}
