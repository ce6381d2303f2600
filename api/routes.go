package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupAPIRoutes registers the JSON API.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, startupTime time.Time) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog endpoints
		r.Get("/api/blog", handlers.blogPostHandler.listBlogPosts())
		r.Post("/api/blog", handlers.blogPostHandler.createBlogPost())
		r.Get("/api/blog/{blogID}", handlers.blogPostHandler.getBlogPost())
		r.Put("/api/blog/{blogID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/api/blog/{blogID}", handlers.blogPostHandler.deleteBlogPost())

		// Project endpoints
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/api/project", handlers.projectHandler.createProject())
		r.Put("/api/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/health", healthHandler(startupTime))
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]interface{}{
			"status": "healthy",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
