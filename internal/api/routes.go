package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/ifc-calendar/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/leap/{year}
//	GET    /api/v1/convert/today
//	GET    /api/v1/convert/gregorian/{date}
//	GET    /api/v1/convert/ifc
//	GET    /api/v1/grid/{kind}
//	GET    /api/v1/calendar
//	GET    /api/v1/calendar.ics
//	GET    /api/v1/selection            (API key)
//	PUT    /api/v1/selection            (API key)
//	DELETE /api/v1/selection            (API key)
//	POST   /api/v1/selection/click      (API key)
//	GET    /api/v1/selection/calendar   (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leap/{year}", handlers.GetLeapYear)

		r.Get("/convert/today", handlers.ConvertToday)
		r.Get("/convert/gregorian/{date}", handlers.ConvertGregorian)
		r.Get("/convert/ifc", handlers.ConvertIFC)

		r.Get("/grid/{kind}", handlers.GetGrid)
		r.Get("/calendar", handlers.GetCalendar)
		r.Get("/calendar.ics", handlers.GetICS)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Get("/selection", handlers.GetSelection)
			r.Put("/selection", handlers.PutSelection)
			r.Delete("/selection", handlers.DeleteSelection)
			r.Post("/selection/click", handlers.ClickSelection)
			r.Get("/selection/calendar", handlers.GetSelectionCalendar)
		})
	})

	return r
}
