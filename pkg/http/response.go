package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse отправляет ошибку в формате JSON
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, ErrorBody{Error: message})
}

// JSONResponse отправляет значение в формате JSON
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// StatusFor сопоставляет доменную ошибку HTTP статусу
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrSessionActive), errors.Is(err, model.ErrSessionPending):
		return http.StatusConflict
	case errors.Is(err, model.ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientQuestions):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DomainError отправляет доменную ошибку с подходящим статусом
func DomainError(w http.ResponseWriter, err error) {
	ErrorResponse(w, StatusFor(err), err.Error())
}
