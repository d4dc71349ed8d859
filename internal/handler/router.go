package handler

import (
	"net/http"
	"time"

	"zentube/internal/container"
	"zentube/internal/middleware"
	"zentube/pkg/errors"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter configures the HTTP API
func NewRouter(c *container.Container) http.Handler {
	cfg := c.GetConfig()
	log := c.GetLogger()
	services := c.Services

	r := chi.NewRouter()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	// two catalog round trips at most per request
	r.Use(chiMiddleware.Timeout(2*cfg.HTTPClientTimeout + 5*time.Second))

	healthHandler := NewHealthHandler(c)
	setupHandler := NewSetupHandler(services.Credential, log)
	feedHandler := NewFeedHandler(services.Feed, services.History, log)
	watchHandler := NewWatchHandler(services.Watch, log)
	categoryHandler := NewCategoryHandler(log)

	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/setup", func(r chi.Router) {
			r.Get("/", setupHandler.Status)
			r.Put("/", setupHandler.Save)
			r.Delete("/", setupHandler.Clear)
		})

		r.Get("/categories", categoryHandler.List)

		r.Route("/feed", func(r chi.Router) {
			r.Get("/history", feedHandler.History)
			r.Delete("/history", feedHandler.ClearHistory)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCredential(services.Credential, log))

				r.Get("/", feedHandler.Browse)
				r.Get("/trending", feedHandler.Trending)
				r.Get("/explore/{categoryId}", feedHandler.Explore)
			})
		})

		r.With(middleware.RequireCredential(services.Credential, log)).
			Get("/watch/{videoId}", watchHandler.Open)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, errors.NewNotFoundError("Endpoint not found"), log)
	})

	log.Info("Router configured successfully")
	return r
}
