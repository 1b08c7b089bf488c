package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/handler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/middleware"
)

// setupRouter mounts the API behind service-key auth and leaves the health
// probe open for load balancers.
func setupRouter(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.ServiceKey))
		r.Mount("/api", h.Routes())
	})

	return r
}
