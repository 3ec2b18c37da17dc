package respond

import (
	"encoding/json"
	"net/http"

	"pet-lost-and-found/internal/apperror"
	"pet-lost-and-found/internal/platform/logger"
)

// Todos los endpoints comparten el mismo sobre de respuesta:
//   éxito:    {"result": <status>, "data": <payload>}
//   fallo:    {"result": <status>, "message": "..."} o {"result": 422, "errors": [...]}
// Antes cada módulo duplicaba su writeJSON; con cuatro recursos ya conviene
// el helper común.

type dataEnvelope struct {
	Result int `json:"result"`
	Data   any `json:"data"`
}

type messageEnvelope struct {
	Result  int    `json:"result"`
	Message string `json:"message"`
}

type errorsEnvelope struct {
	Result int                   `json:"result"`
	Errors []apperror.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data escribe una respuesta exitosa con el payload dado.
func Data(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataEnvelope{Result: status, Data: data})
}

// Message escribe una respuesta de fallo con mensaje simple.
func Message(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageEnvelope{Result: status, Message: message})
}

// Error es el normalizador terminal: cualquier error que llegue hasta acá
// se convierte en un status + sobre consistente. Lo inesperado se loguea
// y sale como 500 genérico, sin filtrar internals al cliente.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	ae, ok := apperror.From(err)
	if !ok {
		if log != nil {
			log.Error("unexpected error", map[string]any{"error": err.Error()})
		}
		Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := ae.StatusCode()
	switch {
	case ae.Type == apperror.TypeValidation:
		writeJSON(w, status, errorsEnvelope{Result: status, Errors: ae.Fields})
	case status >= http.StatusInternalServerError:
		if log != nil {
			log.Error(ae.Message, map[string]any{"error": ae.Error()})
		}
		Message(w, status, "Internal server error")
	default:
		Message(w, status, ae.Message)
	}
}
