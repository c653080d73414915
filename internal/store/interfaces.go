package store

import (
	"context"

	"github.com/candorpath/assess360/models"
)

// AssessmentRepository is the persistence contract for assessments and their
// responses. All mutating methods surface storage failures immediately; the
// service layer performs no retries, since retrying a non-idempotent
// submission risks duplicate rows.
type AssessmentRepository interface {
	// Create persists a new assessment row and returns it with the
	// server-maintained timestamps populated. A second assessment presenting
	// an already used encrypted rater identifier fails with
	// ErrRaterTokenAlreadyUsed.
	Create(ctx context.Context, assessment models.Assessment) (models.Assessment, error)

	// Complete atomically marks the assessment completed and inserts all of
	// its responses in a single transaction. Any failure (unknown id, an
	// already completed assessment, a duplicate (assessment_id, question_id)
	// pair, or a storage error mid-batch) rolls back every row written by
	// the call and leaves completed_at as it was.
	Complete(ctx context.Context, assessmentID string, responses []models.AssessmentResponse) error

	// GetAll returns every assessment with its responses aggregated, newest
	// assessment first.
	GetAll(ctx context.Context) ([]models.AssessmentRecord, error)

	// GetByID returns a single assessment with its responses, or
	// ErrAssessmentNotFound.
	GetByID(ctx context.Context, assessmentID string) (models.AssessmentRecord, error)

	// GetByLeaderHash returns every assessment whose blind-index fingerprint
	// matches hash, newest first. An empty result is not an error here; the
	// service decides whether that is a NotFound.
	GetByLeaderHash(ctx context.Context, hash string) ([]models.AssessmentRecord, error)

	// RoleCounts returns the per-role totals and completion counts.
	RoleCounts(ctx context.Context) ([]models.RoleCount, error)

	// AllResponses returns every stored (question_id, response) pair, for
	// per-question aggregation by the admin service.
	AllResponses(ctx context.Context) ([]models.AssessmentResponse, error)
}
