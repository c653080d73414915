package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listAssessments handles GET /api/admin/assessments, newest first.
func (h *Handler) listAssessments(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.Admin.ListAssessments(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// getAssessment handles GET /api/admin/assessments/{id}.
func (h *Handler) getAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "id")

	view, err := h.services.Admin.GetAssessment(r.Context(), assessmentID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// listByLeader handles GET /api/admin/assessments/leader?token=...,
// looking up assessments by the blind index of the presented leader token.
func (h *Handler) listByLeader(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	views, err := h.services.Admin.ListByLeader(r.Context(), token)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// getStatistics handles GET /api/admin/statistics.
func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.Admin.GetStatistics(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
