package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router: a liveness probe outside every gate, the
// rater-token-gated assessment routes, and the admin-secret-gated read
// surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.health)

	router.Group(func(r chi.Router) {
		r.Use(h.raterGate)
		r.Post("/api/assessments", h.beginAssessment)
		r.Post("/api/assessments/{id}/responses", h.submitResponses)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.adminGate)
		r.Get("/api/admin/assessments", h.listAssessments)
		r.Get("/api/admin/assessments/leader", h.listByLeader)
		r.Get("/api/admin/assessments/{id}", h.getAssessment)
		r.Get("/api/admin/statistics", h.getStatistics)
	})

	return router
}
