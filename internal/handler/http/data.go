package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/candorpath/assess360/models"
)

// beginAssessment handles POST /api/assessments. The rater token has already
// been verified by the gate; the body carries the leader envelope.
func (h *Handler) beginAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := raterClaimsFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	raterEnvelope, ok := raterEnvelopeFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BeginAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.LeaderToken == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assessment, err := h.services.Assessments.Start(ctx, claims, req.LeaderToken, raterEnvelope)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.BeginAssessmentResponse{ID: assessment.ID})
}

// submitResponses handles POST /api/assessments/{id}/responses, completing
// the assessment in one transaction.
func (h *Handler) submitResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assessmentID := chi.URLParam(r, "id")
	if assessmentID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req models.SubmitResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.services.Assessments.Submit(ctx, assessmentID, req.Responses); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
