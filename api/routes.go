package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public read surface and the token-guarded write surface
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthCheck(startupTime))
		r.Post("/auth/login", handlers.authHandler.login())

		// Public read endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/resume", handlers.resumeHandler.getResume())
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Admin write endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/resume", handlers.resumeHandler.uploadResume())
			r.Delete("/resume", handlers.resumeHandler.deleteResume())

			r.Post("/upload", handlers.uploadHandler.uploadImage())
		})
	})
}

func healthCheck(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthCheck").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"success": true,
			"status":  "ok",
			"uptime":  time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
