package handlers

import (
	"errors"
	"net/http"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/logx"
)

// ReminderHandler exposes the rating-reminder run to an external cron trigger.
type ReminderHandler struct {
	usecase reminderUsecase
	logger  logx.Logger
}

// NewReminderHandler wires a reminderUsecase into HTTP handlers.
func NewReminderHandler(logger logx.Logger, uc reminderUsecase) *ReminderHandler {
	return &ReminderHandler{usecase: uc, logger: logger}
}

// Run handles POST /reminders/run. The run itself never aborts on a single bad
// delivery; per-delivery failures come back in the errors list.
func (h *ReminderHandler) Run(w http.ResponseWriter, r *http.Request) {
	rep, err := h.usecase.Run(r.Context())
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, reminderRunResponse{
			Success:       true,
			RemindersSent: rep.RemindersSent,
			Errors:        rep.Failures,
		})
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, r, http.StatusConflict, reminderRunResponse{
			Success: false,
			Errors:  []string{"run already in progress"},
		})
	default:
		h.logger.Error("reminder run failed", logx.Err(err))
		writeJSON(w, r, http.StatusInternalServerError, reminderRunResponse{
			Success: false,
			Errors:  []string{err.Error()},
		})
	}
}
