package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bagami/notify/internal/apperr"
)

// AlertHandler serves HTTP endpoints for saved-search alerts.
type AlertHandler struct {
	usecase alertUsecase
}

// NewAlertHandler wires an alertUsecase into HTTP handlers.
func NewAlertHandler(uc alertUsecase) *AlertHandler {
	return &AlertHandler{usecase: uc}
}

// Create handles POST /alerts.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/alerts/"+strconv.FormatInt(id, 10))
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /alerts?user_id=.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromQuery(r, "user_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid user_id")
		return
	}

	list, err := h.usecase.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, alertsToResponse(list))
}

// Delete handles DELETE /alerts/{id}?user_id=.
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	err = h.usecase.Delete(r.Context(), id, userID)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "alert not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
