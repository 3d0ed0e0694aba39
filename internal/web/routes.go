package web

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kozaktomas/cube-scanner/internal/capture"
	"github.com/kozaktomas/cube-scanner/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	opts := capture.Options{
		ROISize:   s.config.Capture.ROISize,
		ScaleSize: s.config.Capture.ScaleSize,
	}
	facesHandler := handlers.NewFacesHandler(s.classifier, opts, s.config.Web.MaxUploadBytes)
	paletteHandler := handlers.NewPaletteHandler(s.classifier, opts, s.config.Web.MaxUploadBytes)
	configHandler := handlers.NewConfigHandler(s.config)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.NoCache)

		// Config
		r.Get("/config", configHandler.Get)

		// Faces
		r.Post("/classify", facesHandler.Classify)
		r.Post("/classify/render", facesHandler.Render)

		// Palette
		r.Get("/palette", paletteHandler.Get)
		r.Post("/calibrate", paletteHandler.Calibrate)
	})
}
