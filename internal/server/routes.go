package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"feedreader/internal/db"
	"feedreader/internal/handlers"
	"feedreader/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB) {
	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(database, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)
	readToggle := api.NewReadToggleHandler(database)
	favoriteToggle := api.NewFavoriteToggleHandler(database)

	// Article list page
	s.App.Get("/", articleHandler.Index)

	// Toggle endpoints called by the browser clients. The read toggle takes
	// the doubly-encoded article link as the remainder of the path.
	s.App.Get("/toggle-read/*", readToggle.Toggle)
	s.App.Post("/toggle-favorite-keyword", favoriteToggle.Toggle)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
