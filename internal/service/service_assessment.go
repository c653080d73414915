package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/candorpath/assess360/internal/crypto"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/store"
	"github.com/candorpath/assess360/models"
	"github.com/google/uuid"
)

// assessmentService is the concrete implementation of [AssessmentService].
// All state is read-only after construction; the service is safe for
// concurrent use.
type assessmentService struct {
	repository store.AssessmentRepository
	codec      crypto.Codec
	classifier *QuestionClassifier
	logger     *logger.Logger
}

// NewAssessmentService wires the lifecycle service to its repository, the
// cipher codec, and the question classifier.
func NewAssessmentService(repository store.AssessmentRepository, codec crypto.Codec, classifier *QuestionClassifier, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		repository: repository,
		codec:      codec,
		classifier: classifier,
		logger:     logger,
	}
}

// Start implements [AssessmentService].
//
// The leader envelope is decrypted once; both the blind-index fingerprint and
// the stored ciphertext derive from that single decryption, so the two can
// never diverge within one call.
func (s *assessmentService) Start(ctx context.Context, claims models.RaterClaims, leaderEnvelope, raterEnvelope string) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	if !claims.Role.Valid() {
		log.Error().Str("role", string(claims.Role)).Msg("rater token carries an unknown role")
		return models.Assessment{}, ErrInvalidRole
	}

	var leader any
	if err := s.codec.Decrypt(leaderEnvelope, &leader); err != nil {
		log.Err(err).Msg("leader envelope failed to decrypt")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrLeaderEnvelopeInvalid, err)
	}

	leaderHash, err := s.codec.Fingerprint(leader)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("computing leader fingerprint: %w", err)
	}

	assessment := models.Assessment{
		ID:              uuid.NewString(),
		EncryptedLeader: leaderEnvelope,
		EncryptedRater:  raterEnvelope,
		LeaderHash:      leaderHash,
		Role:            claims.Role,
	}

	saved, err := s.repository.Create(ctx, assessment)
	if err != nil {
		log.Err(err).Str("assessment_id", assessment.ID).Msg("assessment creation ended with error")
		return models.Assessment{}, fmt.Errorf("assessment creation ended with error: %w", err)
	}

	return saved, nil
}

// Submit implements [AssessmentService]. Answers to open-ended questions are
// sealed into fresh envelopes before the batch is handed to the repository's
// single transaction; rating answers are validated and stored as presented.
func (s *assessmentService) Submit(ctx context.Context, assessmentID string, answers []models.QuestionAnswer) error {
	log := logger.FromContext(ctx)

	if len(answers) == 0 {
		return ErrNoResponsesProvided
	}

	responses := make([]models.AssessmentResponse, 0, len(answers))
	for _, answer := range answers {
		stored := answer.Response

		switch s.classifier.Classify(answer.QuestionID) {
		case KindOpenEnded:
			envelope, err := s.codec.Encrypt(answer.Response)
			if err != nil {
				log.Err(err).Str("question_id", answer.QuestionID).Msg("failed to encrypt open-ended response")
				return fmt.Errorf("encrypting response for %q: %w", answer.QuestionID, err)
			}
			stored = envelope
		case KindRating:
			rating, err := strconv.Atoi(answer.Response)
			if err != nil || rating < 0 || rating > 10 {
				// the rejected value is not logged: free text sent under a
				// rating question id may be confidential
				log.Error().
					Str("question_id", answer.QuestionID).
					Msg("rating response is not a small integer")
				return fmt.Errorf("%w: question %q", ErrInvalidRating, answer.QuestionID)
			}
		}

		responses = append(responses, models.AssessmentResponse{
			AssessmentID: assessmentID,
			QuestionID:   answer.QuestionID,
			Response:     stored,
		})
	}

	if err := s.repository.Complete(ctx, assessmentID, responses); err != nil {
		log.Err(err).
			Str("assessment_id", assessmentID).
			Int("responses", len(responses)).
			Msg("submission failed; transaction rolled back")
		return fmt.Errorf("submission failed: %w", err)
	}

	return nil
}
