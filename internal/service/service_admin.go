package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/candorpath/assess360/internal/crypto"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/store"
	"github.com/candorpath/assess360/models"
)

// adminService is the concrete implementation of [AdminService].
//
// Its read path is the one place where decryption failures are deliberately
// downgraded: a stored envelope that no longer verifies becomes
// [models.DecryptFailedSentinel] in that record's field, and the rest of the
// listing still renders. This context is read-only and already behind the
// admin gate, so partial data beats total failure.
type adminService struct {
	repository store.AssessmentRepository
	codec      crypto.Codec
	classifier *QuestionClassifier
	logger     *logger.Logger
}

// NewAdminService wires the admin query surface to its repository, the
// cipher codec, and the question classifier.
func NewAdminService(repository store.AssessmentRepository, codec crypto.Codec, classifier *QuestionClassifier, logger *logger.Logger) AdminService {
	return &adminService{
		repository: repository,
		codec:      codec,
		classifier: classifier,
		logger:     logger,
	}
}

// ListAssessments implements [AdminService].
func (s *adminService) ListAssessments(ctx context.Context) ([]models.AssessmentView, error) {
	records, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}

	return s.toViews(ctx, records), nil
}

// GetAssessment implements [AdminService].
func (s *adminService) GetAssessment(ctx context.Context, assessmentID string) (models.AssessmentView, error) {
	record, err := s.repository.GetByID(ctx, assessmentID)
	if err != nil {
		return models.AssessmentView{}, fmt.Errorf("getting assessment: %w", err)
	}

	return s.toView(ctx, record), nil
}

// ListByLeader implements [AdminService]. The supplied token goes through the
// same decrypt-once-then-fingerprint path as Start, so a token for either of
// two same-leader assessments finds both.
func (s *adminService) ListByLeader(ctx context.Context, leaderToken string) ([]models.AssessmentView, error) {
	log := logger.FromContext(ctx)

	var leader any
	if err := s.codec.Decrypt(leaderToken, &leader); err != nil {
		log.Err(err).Msg("leader token failed to decrypt")
		return nil, fmt.Errorf("%w: %w", ErrLeaderEnvelopeInvalid, err)
	}

	hash, err := s.codec.Fingerprint(leader)
	if err != nil {
		return nil, fmt.Errorf("computing leader fingerprint: %w", err)
	}

	records, err := s.repository.GetByLeaderHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("listing assessments by leader: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoAssessmentsForLeader
	}

	return s.toViews(ctx, records), nil
}

// GetStatistics implements [AdminService]. Per-question averages cover rating
// questions only; open-ended responses are ciphertext and are counted but
// never averaged.
func (s *adminService) GetStatistics(ctx context.Context) (models.Statistics, error) {
	counts, err := s.repository.RoleCounts(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("aggregating role counts: %w", err)
	}

	stats := models.Statistics{
		ByRole:    make(map[models.Role]int, len(counts)),
		Questions: []models.QuestionStat{},
	}
	for _, c := range counts {
		stats.Total += c.Total
		stats.Completed += c.Completed
		stats.ByRole[c.Role] = c.Total
	}

	responses, err := s.repository.AllResponses(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("aggregating responses: %w", err)
	}

	type accumulator struct {
		count int
		sum   int
		rated int
	}
	perQuestion := make(map[string]*accumulator)
	for _, resp := range responses {
		acc := perQuestion[resp.QuestionID]
		if acc == nil {
			acc = &accumulator{}
			perQuestion[resp.QuestionID] = acc
		}
		acc.count++

		if s.classifier.Classify(resp.QuestionID) != KindRating {
			continue
		}
		if rating, err := strconv.Atoi(resp.Response); err == nil {
			acc.sum += rating
			acc.rated++
		}
	}

	questionIDs := make([]string, 0, len(perQuestion))
	for id := range perQuestion {
		questionIDs = append(questionIDs, id)
	}
	sort.Strings(questionIDs)

	for _, id := range questionIDs {
		acc := perQuestion[id]
		stat := models.QuestionStat{QuestionID: id, Count: acc.count}
		if acc.rated > 0 {
			average := float64(acc.sum) / float64(acc.rated)
			stat.Average = &average
		}
		stats.Questions = append(stats.Questions, stat)
	}

	return stats, nil
}

// toViews converts records preserving their newest-first order.
func (s *adminService) toViews(ctx context.Context, records []models.AssessmentRecord) []models.AssessmentView {
	views := make([]models.AssessmentView, 0, len(records))
	for _, record := range records {
		views = append(views, s.toView(ctx, record))
	}
	return views
}

// toView decrypts a single record's identifiers and open-ended responses,
// substituting the sentinel for any field that fails.
func (s *adminService) toView(ctx context.Context, record models.AssessmentRecord) models.AssessmentView {
	log := logger.FromContext(ctx)

	view := models.AssessmentView{
		ID:          record.ID,
		Role:        record.Role,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		CompletedAt: record.CompletedAt,
		Responses:   make([]models.ResponseView, 0, len(record.Responses)),
	}

	view.Leader = s.decryptField(log, record.ID, "leader", record.EncryptedLeader)
	view.Rater = s.decryptField(log, record.ID, "rater", record.EncryptedRater)

	for _, response := range record.Responses {
		shown := response.Response
		if s.classifier.Classify(response.QuestionID) == KindOpenEnded {
			var plaintext string
			if err := s.codec.Decrypt(response.Response, &plaintext); err != nil {
				log.Warn().
					Str("assessment_id", record.ID).
					Str("question_id", response.QuestionID).
					Msg("stored response failed to decrypt; substituting sentinel")
				plaintext = models.DecryptFailedSentinel
			}
			shown = plaintext
		}
		view.Responses = append(view.Responses, models.ResponseView{
			QuestionID: response.QuestionID,
			Response:   shown,
			CreatedAt:  response.CreatedAt,
		})
	}

	return view
}

func (s *adminService) decryptField(log *logger.Logger, assessmentID, field, envelope string) any {
	var value any
	if err := s.codec.Decrypt(envelope, &value); err != nil {
		log.Warn().
			Str("assessment_id", assessmentID).
			Str("field", field).
			Msg("stored identifier failed to decrypt; substituting sentinel")
		return models.DecryptFailedSentinel
	}
	return value
}
