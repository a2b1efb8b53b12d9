package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/mergington-activities/internal/domain"
)

// ActivityService описывает операции, необходимые обработчикам занятий
type ActivityService interface {
	ListActivities(ctx context.Context) (*domain.Catalog, error)
	SignUp(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

// ActivityHandler обрабатывает эндпоинты занятий
type ActivityHandler struct {
	activityService ActivityService
}

// NewActivityHandler создает новый ActivityHandler
func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivities обрабатывает GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, catalog)
}

// SignUp обрабатывает POST /activities/{activity}/signup?email=...
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	message, err := h.activityService.SignUp(r.Context(), activityParam(r), email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, message)
}

// Unregister обрабатывает DELETE /activities/{activity}/participants?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	message, err := h.activityService.Unregister(r.Context(), activityParam(r), email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, message)
}

// emailParam возвращает email из query. Обязательно только наличие параметра,
// пустое значение передается дальше как есть.
func emailParam(r *http.Request) (string, error) {
	query := r.URL.Query()
	if !query.Has("email") {
		return "", domain.ErrEmailRequired
	}
	return query.Get("email"), nil
}

// activityParam возвращает имя занятия из пути.
// chi маршрутизирует по RawPath, если он задан, и тогда параметр остается закодированным.
func activityParam(r *http.Request) string {
	name := chi.URLParam(r, "activity")
	if r.URL.RawPath == "" {
		return name
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}
