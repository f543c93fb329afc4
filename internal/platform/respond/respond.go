// Package respond centraliza la escritura de respuestas JSON y el mapeo
// de errores de dominio a status HTTP. Todos los módulos lo comparten.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pet-health-tracker/internal/platform/apperror"
)

const serverErrorMessage = "Server error"

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// MessageBody es la respuesta de operaciones sin entidad (delete, logout).
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// Error traduce err a status + {"error": "..."}.
// Lo que no es un AppError conocido se loguea y sale como 500 genérico.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
		JSON(w, status, errorBody{Error: serverErrorMessage})
		return
	}

	body := errorBody{Error: err.Error()}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body.Error = appErr.Message
		body.Field = appErr.Field
	}
	JSON(w, status, body)
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
