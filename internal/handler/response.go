package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// MessageResponse представляет ответ-подтверждение операций с участниками
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondWithMessage отправляет 200 OK с текстом подтверждения
func RespondWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: message})
}
