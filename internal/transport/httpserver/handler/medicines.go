package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"
)

type addMedicineRequest struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
	CategoryID string `json:"category_id"`
	Quantity   int    `json:"quantity"`
}

type medicineResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExpiryDate string    `json:"expiry_date"`
	CategoryID string    `json:"category_id"`
	Quantity   int       `json:"quantity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handlers) medicineResponse(medicine medicinesdomain.Medicine, today time.Time) medicineResponse {
	return medicineResponse{
		ID:         medicine.ID,
		Name:       medicine.Name,
		ExpiryDate: formatDate(medicine.ExpiryDate),
		CategoryID: medicine.CategoryID,
		Quantity:   medicine.Quantity,
		Status:     string(medicinesdomain.Classify(medicine.ExpiryDate, today)),
		CreatedAt:  medicine.CreatedAt,
	}
}

func (h *Handlers) medicineResponses(items []medicinesdomain.Medicine) []medicineResponse {
	today := time.Now()
	response := make([]medicineResponse, 0, len(items))
	for _, medicine := range items {
		response = append(response, h.medicineResponse(medicine, today))
	}
	return response
}

func (h *Handlers) ListMedicines(w http.ResponseWriter, r *http.Request) {
	items, err := h.Medicines.ListMedicines(r.Context())
	if err != nil {
		h.log.InternalError("medicines.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.medicineResponses(items))
}

func (h *Handlers) GetMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "id")

	medicine, err := h.Medicines.GetMedicine(r.Context(), medicineID)
	if err != nil {
		if errors.Is(err, medicinesdomain.ErrMedicineNotFound) {
			h.log.BusinessError("medicines.get: not found", err, "medicine_id", medicineID)
			writeError(w, http.StatusNotFound, "medicine_not_found", "medicine not found")
			return
		}
		h.log.InternalError("medicines.get: lookup failed", err, "medicine_id", medicineID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.medicineResponse(*medicine, time.Now()))
}

func (h *Handlers) AddMedicine(w http.ResponseWriter, r *http.Request) {
	var req addMedicineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "category_id is required")
		return
	}

	expiryDate, err := parseDateRequired(req.ExpiryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "expiry_date must be YYYY-MM-DD")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		writeError(w, http.StatusBadRequest, "invalid_request", "quantity must be at least 1")
		return
	}

	medicine, err := h.Medicines.AddMedicine(r.Context(), medicinesdomain.AddMedicineInput{
		Name:       req.Name,
		ExpiryDate: expiryDate,
		CategoryID: req.CategoryID,
		Quantity:   quantity,
	})
	if err != nil {
		if errors.Is(err, categoriesdomain.ErrCategoryNotFound) {
			h.log.BusinessError("medicines.add: category not found", err, "category_id", req.CategoryID)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
			return
		}
		h.log.InternalError("medicines.add: add failed", err, "name", req.Name)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.medicineResponse(*medicine, time.Now()))
}

func (h *Handlers) ListExpiring(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntParam(r.URL.Query().Get("days"), medicinesdomain.ExpiringSoonWindowDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "days must be a non-negative integer")
		return
	}

	items, err := h.Medicines.ExpiringWithin(r.Context(), days)
	if err != nil {
		h.log.InternalError("medicines.expiring: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.medicineResponses(items))
}

func (h *Handlers) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.Medicines.DeleteExpired(r.Context())
	if err != nil {
		h.log.InternalError("medicines.cleanup: delete expired failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, h.medicineResponses(cleared))
}
