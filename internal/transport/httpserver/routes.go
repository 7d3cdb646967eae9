package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"medtrack-go/internal/transport/httpserver/handler"
	"medtrack-go/internal/transport/httpserver/middleware"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/categories", handlers.ListCategories)
		r.Post("/categories", handlers.AddCategory)

		r.Get("/medicines", handlers.ListMedicines)
		r.Post("/medicines", handlers.AddMedicine)
		r.Get("/medicines/{id}", handlers.GetMedicine)
		r.Get("/medicines/expiring", handlers.ListExpiring)
		r.Post("/medicines/expired/cleanup", handlers.CleanupExpired)

		r.Get("/alerts/pending", handlers.ListPendingAlerts)
		r.Get("/alerts/due", handlers.ListDueAlerts)
		r.Post("/alerts/{id}/sent", handlers.MarkAlertSent)

		r.Get("/reports/summary", handlers.StockSummary)
	})

	return r
}
