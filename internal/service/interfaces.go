package service

import (
	"context"

	"github.com/candorpath/assess360/models"
)

// AssessmentService drives the assessment lifecycle: CREATED -> COMPLETED,
// with no other transitions.
type AssessmentService interface {
	// Start creates a new assessment from a gated rater token. claims are the
	// decrypted rater-token claims (carrying the role); raterEnvelope is the
	// ciphertext the rater presented, stored verbatim; leaderEnvelope is
	// decrypted exactly once to compute the blind-index fingerprint and is
	// also stored verbatim.
	Start(ctx context.Context, claims models.RaterClaims, leaderEnvelope, raterEnvelope string) (models.Assessment, error)

	// Submit completes the assessment with the given answers. Open-ended
	// answers are encrypted before persistence; rating answers are validated
	// and stored in the clear. All-or-nothing: any failure leaves the store
	// untouched.
	Submit(ctx context.Context, assessmentID string, answers []models.QuestionAnswer) error
}

// AdminService is the read-only admin query surface. Every method decrypts
// identifiers and open-ended responses on the way out, substituting
// models.DecryptFailedSentinel for any single field that fails to decrypt.
type AdminService interface {
	ListAssessments(ctx context.Context) ([]models.AssessmentView, error)
	GetAssessment(ctx context.Context, assessmentID string) (models.AssessmentView, error)
	GetStatistics(ctx context.Context) (models.Statistics, error)

	// ListByLeader decrypts leaderToken, recomputes its fingerprint, and
	// returns every assessment sharing it, newest first. Returns
	// ErrNoAssessmentsForLeader when nothing matches.
	ListByLeader(ctx context.Context, leaderToken string) ([]models.AssessmentView, error)
}
