package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candorpath/assess360/internal/service"
	"github.com/candorpath/assess360/internal/store"
	"github.com/candorpath/assess360/models"
)

// withURLParam injects a chi route parameter so handler methods can be called
// without going through the router.
func withURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// ─────────────────────────────────────────────
// beginAssessment
// ─────────────────────────────────────────────

func TestBeginAssessment_Success(t *testing.T) {
	raterEnvelope := "rater-envelope"
	leaderEnvelope := "leader-envelope"

	called := false
	svc := &mockAssessmentSvc{
		startFn: func(_ context.Context, claims models.RaterClaims, leader, rater string) (models.Assessment, error) {
			called = true
			assert.Equal(t, models.RoleManager, claims.Role)
			assert.Equal(t, leaderEnvelope, leader)
			assert.Equal(t, raterEnvelope, rater)
			return models.Assessment{ID: "a-1"}, nil
		},
	}

	h := newTestHandler(t, svc, nil)
	body := models.BeginAssessmentRequest{LeaderToken: leaderEnvelope}
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", encodeBody(t, body))
	req = req.WithContext(ctxWithRater(models.RaterClaims{Role: models.RoleManager}, raterEnvelope))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.True(t, called, "Start should have been called")
	require.Equal(t, http.StatusCreated, rec.Code)

	var result models.BeginAssessmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "a-1", result.ID)
}

func TestBeginAssessment_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAssessmentSvc{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(`{bad json}`))
	req = req.WithContext(ctxWithRater(models.RaterClaims{Role: models.RolePeer}, "env"))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBeginAssessment_EmptyLeaderToken(t *testing.T) {
	svc := &mockAssessmentSvc{
		startFn: func(_ context.Context, _ models.RaterClaims, _, _ string) (models.Assessment, error) {
			t.Fatal("Start should not be called")
			return models.Assessment{}, nil
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments",
		encodeBody(t, models.BeginAssessmentRequest{}))
	req = req.WithContext(ctxWithRater(models.RaterClaims{Role: models.RolePeer}, "env"))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBeginAssessment_UngatedRequest(t *testing.T) {
	h := newTestHandler(t, &mockAssessmentSvc{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments",
		encodeBody(t, models.BeginAssessmentRequest{LeaderToken: "leader"}))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBeginAssessment_RaterTokenReuse(t *testing.T) {
	svc := &mockAssessmentSvc{
		startFn: func(_ context.Context, _ models.RaterClaims, _, _ string) (models.Assessment, error) {
			return models.Assessment{}, store.ErrRaterTokenAlreadyUsed
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments",
		encodeBody(t, models.BeginAssessmentRequest{LeaderToken: "leader"}))
	req = req.WithContext(ctxWithRater(models.RaterClaims{Role: models.RoleSelf}, "env"))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBeginAssessment_InvalidRole(t *testing.T) {
	svc := &mockAssessmentSvc{
		startFn: func(_ context.Context, _ models.RaterClaims, _, _ string) (models.Assessment, error) {
			return models.Assessment{}, service.ErrInvalidRole
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments",
		encodeBody(t, models.BeginAssessmentRequest{LeaderToken: "leader"}))
	req = req.WithContext(ctxWithRater(models.RaterClaims{Role: "owner"}, "env"))
	rec := httptest.NewRecorder()

	h.beginAssessment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// submitResponses
// ─────────────────────────────────────────────

func TestSubmitResponses_Success(t *testing.T) {
	answers := []models.QuestionAnswer{
		{QuestionID: "q1", Response: "7"},
		{QuestionID: "open_1", Response: "more delegation"},
	}

	called := false
	svc := &mockAssessmentSvc{
		submitFn: func(_ context.Context, assessmentID string, got []models.QuestionAnswer) error {
			called = true
			assert.Equal(t, "a-1", assessmentID)
			assert.Equal(t, answers, got)
			return nil
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/a-1/responses",
		encodeBody(t, models.SubmitResponsesRequest{Responses: answers}))
	req = req.WithContext(withURLParam(ctxWithRater(models.RaterClaims{Role: models.RolePeer}, "env"), "id", "a-1"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.True(t, called, "Submit should have been called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitResponses_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAssessmentSvc{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/a-1/responses",
		strings.NewReader(`{bad`))
	req = req.WithContext(withURLParam(context.Background(), "id", "a-1"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitResponses_UnknownAssessment(t *testing.T) {
	svc := &mockAssessmentSvc{
		submitFn: func(_ context.Context, _ string, _ []models.QuestionAnswer) error {
			return store.ErrAssessmentNotFound
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/missing/responses",
		encodeBody(t, models.SubmitResponsesRequest{Responses: []models.QuestionAnswer{{QuestionID: "q1", Response: "5"}}}))
	req = req.WithContext(withURLParam(context.Background(), "id", "missing"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitResponses_AlreadyCompleted(t *testing.T) {
	svc := &mockAssessmentSvc{
		submitFn: func(_ context.Context, _ string, _ []models.QuestionAnswer) error {
			return store.ErrAlreadyCompleted
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/a-1/responses",
		encodeBody(t, models.SubmitResponsesRequest{Responses: []models.QuestionAnswer{{QuestionID: "q1", Response: "5"}}}))
	req = req.WithContext(withURLParam(context.Background(), "id", "a-1"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitResponses_InvalidRating(t *testing.T) {
	svc := &mockAssessmentSvc{
		submitFn: func(_ context.Context, _ string, _ []models.QuestionAnswer) error {
			return service.ErrInvalidRating
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/a-1/responses",
		encodeBody(t, models.SubmitResponsesRequest{Responses: []models.QuestionAnswer{{QuestionID: "q1", Response: "lots"}}}))
	req = req.WithContext(withURLParam(context.Background(), "id", "a-1"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitResponses_StorageError(t *testing.T) {
	svc := &mockAssessmentSvc{
		submitFn: func(_ context.Context, _ string, _ []models.QuestionAnswer) error {
			return store.ErrExecutingStatement
		},
	}

	h := newTestHandler(t, svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/a-1/responses",
		encodeBody(t, models.SubmitResponsesRequest{Responses: []models.QuestionAnswer{{QuestionID: "q1", Response: "5"}}}))
	req = req.WithContext(withURLParam(context.Background(), "id", "a-1"))
	rec := httptest.NewRecorder()

	h.submitResponses(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "statement",
		"internal error text must not leak into the response")
}
