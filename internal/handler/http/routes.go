package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)

		r.Route("/api/builds", func(r chi.Router) {
			r.Use(h.requireSnapshots)

			r.Get("/", h.listBuilds)
			r.Get("/{id}", h.getBuild)
			r.Get("/{id}/files", h.getBuildFiles)
			r.Get("/{id}/languages", h.getBuildLanguages)
			r.Get("/{id}/editions", h.getBuildEditions)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
