package handlers

import (
	"errors"
	"net/http"

	"github.com/bagami/notify/internal/apperr"
)

// ReviewHandler serves review submission.
type ReviewHandler struct {
	usecase reviewUsecase
}

// NewReviewHandler wires a reviewUsecase into HTTP handlers.
func NewReviewHandler(uc reviewUsecase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// Create handles POST /reviews. A recorded review also retires the reviewer's
// pending rating reminders for that delivery.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	rv := req.toModel()
	err := h.usecase.Create(r.Context(), rv)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": rv.ID})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "review already exists")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
