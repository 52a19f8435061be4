package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bagami/notify/internal/apperr"
)

// DeliveryHandler handles HTTP requests for delivery posts.
type DeliveryHandler struct {
	usecase deliveryUsecase
}

// NewDeliveryHandler wires a deliveryUsecase into HTTP handlers.
func NewDeliveryHandler(uc deliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

// Create handles POST /deliveries. The alert matching pass runs inside the
// usecase right after the insert commits.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/deliveries/"+strconv.FormatInt(id, 10))
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /deliveries/{id}.
func (h *DeliveryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, deliveryToResponse(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "delivery not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
