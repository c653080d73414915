package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/candorpath/assess360/internal/crypto"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/service"
	"github.com/candorpath/assess360/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAssessmentSvc struct {
	startFn  func(ctx context.Context, claims models.RaterClaims, leaderEnvelope, raterEnvelope string) (models.Assessment, error)
	submitFn func(ctx context.Context, assessmentID string, answers []models.QuestionAnswer) error
}

func (m *mockAssessmentSvc) Start(ctx context.Context, claims models.RaterClaims, leaderEnvelope, raterEnvelope string) (models.Assessment, error) {
	if m.startFn != nil {
		return m.startFn(ctx, claims, leaderEnvelope, raterEnvelope)
	}
	return models.Assessment{}, nil
}

func (m *mockAssessmentSvc) Submit(ctx context.Context, assessmentID string, answers []models.QuestionAnswer) error {
	if m.submitFn != nil {
		return m.submitFn(ctx, assessmentID, answers)
	}
	return nil
}

type mockAdminSvc struct {
	listFn       func(ctx context.Context) ([]models.AssessmentView, error)
	getFn        func(ctx context.Context, assessmentID string) (models.AssessmentView, error)
	statsFn      func(ctx context.Context) (models.Statistics, error)
	listLeaderFn func(ctx context.Context, leaderToken string) ([]models.AssessmentView, error)
}

func (m *mockAdminSvc) ListAssessments(ctx context.Context) ([]models.AssessmentView, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAdminSvc) GetAssessment(ctx context.Context, assessmentID string) (models.AssessmentView, error) {
	if m.getFn != nil {
		return m.getFn(ctx, assessmentID)
	}
	return models.AssessmentView{}, nil
}

func (m *mockAdminSvc) GetStatistics(ctx context.Context) (models.Statistics, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.Statistics{}, nil
}

func (m *mockAdminSvc) ListByLeader(ctx context.Context, leaderToken string) ([]models.AssessmentView, error) {
	if m.listLeaderFn != nil {
		return m.listLeaderFn(ctx, leaderToken)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testAdminSecret = "test-admin-secret"

func newTestCodec(t *testing.T) crypto.Codec {
	t.Helper()
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
	codec, err := crypto.NewCodec(key)
	require.NoError(t, err)
	return codec
}

func newTestHandler(t *testing.T, assessments service.AssessmentService, admin service.AdminService) *Handler {
	t.Helper()
	if assessments == nil {
		assessments = &mockAssessmentSvc{}
	}
	if admin == nil {
		admin = &mockAdminSvc{}
	}
	return &Handler{
		services: &service.Services{
			Assessments: assessments,
			Admin:       admin,
		},
		codec:       newTestCodec(t),
		adminSecret: testAdminSecret,
		logger:      logger.Nop(),
	}
}

// encrypt produces a valid envelope under the handler's test codec.
func encrypt(t *testing.T, codec crypto.Codec, value any) string {
	t.Helper()
	envelope, err := codec.Encrypt(value)
	require.NoError(t, err)
	return envelope
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// ctxWithRater returns a context carrying gated rater claims and the token
// envelope, as raterGate would have left them.
func ctxWithRater(claims models.RaterClaims, envelope string) context.Context {
	ctx := context.WithValue(context.Background(), raterClaimsCtxKey, claims)
	return context.WithValue(ctx, raterEnvelopeCtxKey, envelope)
}
