package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)
	router.Handle("/metrics", promhttp.Handler())

	// token issuance needs no credential
	router.Post("/api/auth/token", h.issueToken)

	// routes forwarding the caller's bearer token upstream
	router.Group(func(r chi.Router) {
		r.Get("/api/court/states", h.states)
		r.Post("/api/court/districts", h.districts)
		r.Post("/api/court/complex", h.courtComplex)
		r.Post("/api/court/names", h.courtNames)
		r.Post("/api/court/cause-list", h.causeList)
		r.Get("/api/cases/details", h.caseDetail)
	})

	return router
}
