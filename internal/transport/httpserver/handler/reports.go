package handler

import "net/http"

func (h *Handlers) StockSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.Summary(r.Context())
	if err != nil {
		h.log.InternalError("reports.summary: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
