package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	alertsdomain "medtrack-go/internal/domain/alerts"
)

type alertResponse struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"medicine_id"`
	AlertDate  string    `json:"alert_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func alertResponses(items []alertsdomain.Alert) []alertResponse {
	response := make([]alertResponse, 0, len(items))
	for _, alert := range items {
		response = append(response, alertResponse{
			ID:         alert.ID,
			MedicineID: alert.MedicineID,
			AlertDate:  formatDate(alert.AlertDate),
			Status:     alert.Status,
			CreatedAt:  alert.CreatedAt,
		})
	}
	return response
}

func (h *Handlers) ListPendingAlerts(w http.ResponseWriter, r *http.Request) {
	items, err := h.Medicines.PendingAlerts(r.Context())
	if err != nil {
		h.log.InternalError("alerts.pending: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, alertResponses(items))
}

func (h *Handlers) ListDueAlerts(w http.ResponseWriter, r *http.Request) {
	items, err := h.Medicines.DueAlerts(r.Context())
	if err != nil {
		h.log.InternalError("alerts.due: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, alertResponses(items))
}

func (h *Handlers) MarkAlertSent(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "id")

	if err := h.Medicines.MarkAlertSent(r.Context(), alertID); err != nil {
		if errors.Is(err, alertsdomain.ErrAlertNotFound) {
			h.log.BusinessError("alerts.sent: alert not found", err, "alert_id", alertID)
			writeError(w, http.StatusNotFound, "alert_not_found", "alert not found")
			return
		}
		h.log.InternalError("alerts.sent: update failed", err, "alert_id", alertID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": alertsdomain.StatusSent})
}
