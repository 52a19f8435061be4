package handlers

import (
	"errors"
	"net/http"

	"github.com/bagami/notify/internal/apperr"
)

// NotificationHandler serves a user's in-app notification feed.
type NotificationHandler struct {
	usecase notificationUsecase
}

// NewNotificationHandler wires a notificationUsecase into HTTP handlers.
func NewNotificationHandler(uc notificationUsecase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List handles GET /notifications?user_id=&unread=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromQuery(r, "user_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid user_id")
		return
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := h.usecase.List(r.Context(), userID, unreadOnly)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, notificationsToResponse(list))
}

// MarkRead handles POST /notifications/{id}/read?user_id=.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	userID, err := idFromQuery(r, "user_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid user_id")
		return
	}

	err = h.usecase.MarkRead(r.Context(), id, userID)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "notification not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
