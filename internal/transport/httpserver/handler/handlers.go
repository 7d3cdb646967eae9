package handler

import (
	"net/http"

	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"
	reportsdomain "medtrack-go/internal/domain/reports"
	"medtrack-go/pkg/logger"
)

type Handlers struct {
	Categories *categoriesdomain.Service
	Medicines  *medicinesdomain.Service
	Reports    *reportsdomain.Service
	log        logger.Logger
}

func New(categories *categoriesdomain.Service, medicines *medicinesdomain.Service, reports *reportsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Categories: categories,
		Medicines:  medicines,
		Reports:    reports,
		log:        log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
