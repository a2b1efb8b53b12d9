package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/mergington-activities/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой.
// Поле detail читает фронтенд, code предназначен для клиентов API.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, detail string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Detail: detail,
		Code:   code,
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := string(domain.MapErrorToCode(err))

	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		RespondWithError(w, r, http.StatusNotFound, code, "Activity not found")
	case errors.Is(err, domain.ErrParticipantNotFound):
		RespondWithError(w, r, http.StatusNotFound, code, "Participant not found in this activity")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		RespondWithError(w, r, http.StatusBadRequest, code, "Student is already signed up")
	case errors.Is(err, domain.ErrEmailRequired):
		RespondWithError(w, r, http.StatusUnprocessableEntity, code, "email query parameter is required")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, code, "internal server error")
	}
}
