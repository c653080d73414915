package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/models"
	"github.com/jackc/pgerrcode"
)

// assessmentRepository is the PostgreSQL-backed implementation of
// [AssessmentRepository]. It owns all SQL touching the assessments and
// assessment_responses tables.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields (assessment_id, batch size, etc.).
type assessmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssessmentRepository constructs an [AssessmentRepository] backed by the
// provided database connection and logger.
func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		DB:     db,
		logger: logger,
	}
}

// Create implements [AssessmentRepository].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRaterTokenAlreadyUsed].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *assessmentRepository) Create(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createAssessment,
		assessment.ID,
		assessment.EncryptedLeader,
		assessment.EncryptedRater,
		assessment.LeaderHash,
		assessment.Role,
	)

	var saved models.Assessment
	var completedAt sql.NullTime
	err := row.Scan(
		&saved.ID,
		&saved.EncryptedLeader,
		&saved.EncryptedRater,
		&saved.LeaderHash,
		&saved.Role,
		&saved.CreatedAt,
		&saved.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*assessmentRepository.Create").Msg("rater token already used")
			return models.Assessment{}, ErrRaterTokenAlreadyUsed
		default:
			log.Err(err).Str("func", "*assessmentRepository.Create").Msg("error creating assessment")
			return models.Assessment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	if completedAt.Valid {
		saved.CompletedAt = &completedAt.Time
	}

	return saved, nil
}

// Complete implements [AssessmentRepository]. The completion update and every
// response insert share one transaction; the deferred rollback is a no-op
// after a successful commit.
func (r *assessmentRepository) Complete(ctx context.Context, assessmentID string, responses []models.AssessmentResponse) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.Complete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, completeAssessment, assessmentID)
	if err != nil {
		log.Err(err).
			Str("func", "*assessmentRepository.Complete").
			Str("assessment_id", assessmentID).
			Msg("failed to mark assessment completed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// Either the assessment does not exist or it was completed earlier;
		// tell the caller which.
		var exists bool
		if scanErr := tx.QueryRowContext(ctx, assessmentExists, assessmentID).Scan(&exists); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		if !exists {
			err = ErrAssessmentNotFound
			return err
		}
		err = ErrAlreadyCompleted
		return err
	}

	for _, response := range responses {
		if _, err = tx.ExecContext(ctx, insertResponse, assessmentID, response.QuestionID, response.Response); err != nil {
			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				log.Err(err).
					Str("func", "*assessmentRepository.Complete").
					Str("assessment_id", assessmentID).
					Str("question_id", response.QuestionID).
					Msg("duplicate response in batch")
				err = fmt.Errorf("%w: question %q", ErrDuplicateResponse, response.QuestionID)
			default:
				log.Err(err).
					Str("func", "*assessmentRepository.Complete").
					Str("assessment_id", assessmentID).
					Str("question_id", response.QuestionID).
					Msg("failed to insert response")
				err = fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*assessmentRepository.Complete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// GetAll implements [AssessmentRepository].
func (r *assessmentRepository) GetAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	return r.queryRecords(ctx, selectRecords())
}

// GetByID implements [AssessmentRepository].
func (r *assessmentRepository) GetByID(ctx context.Context, assessmentID string) (models.AssessmentRecord, error) {
	records, err := r.queryRecords(ctx, selectRecords().Where(sq.Eq{"a.id": assessmentID}))
	if err != nil {
		return models.AssessmentRecord{}, err
	}
	if len(records) == 0 {
		return models.AssessmentRecord{}, ErrAssessmentNotFound
	}

	return records[0], nil
}

// GetByLeaderHash implements [AssessmentRepository].
func (r *assessmentRepository) GetByLeaderHash(ctx context.Context, hash string) ([]models.AssessmentRecord, error) {
	return r.queryRecords(ctx, selectRecords().Where(sq.Eq{"a.leader_hash": hash}))
}

// queryRecords executes a record join built by [selectRecords] and folds the
// flat rows into one [models.AssessmentRecord] per assessment, preserving the
// query's newest-first ordering.
func (r *assessmentRepository) queryRecords(ctx context.Context, builder sq.SelectBuilder) ([]models.AssessmentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.queryRecords").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.queryRecords").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AssessmentRecord, 0, 20)
	index := make(map[string]int)

	for rows.Next() {
		var a models.Assessment
		var completedAt sql.NullTime
		var questionID, response sql.NullString
		var responseCreatedAt sql.NullTime

		scanErr := rows.Scan(
			&a.ID,
			&a.EncryptedLeader,
			&a.EncryptedRater,
			&a.LeaderHash,
			&a.Role,
			&a.CreatedAt,
			&a.UpdatedAt,
			&completedAt,
			&questionID,
			&response,
			&responseCreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*assessmentRepository.queryRecords").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if completedAt.Valid {
			a.CompletedAt = &completedAt.Time
		}

		pos, seen := index[a.ID]
		if !seen {
			pos = len(records)
			index[a.ID] = pos
			records = append(records, models.AssessmentRecord{
				Assessment: a,
				Responses:  []models.AssessmentResponse{},
			})
		}

		// questionID is NULL for assessments without responses (LEFT JOIN).
		if questionID.Valid {
			records[pos].Responses = append(records[pos].Responses, models.AssessmentResponse{
				AssessmentID: a.ID,
				QuestionID:   questionID.String,
				Response:     response.String,
				CreatedAt:    responseCreatedAt.Time,
			})
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*assessmentRepository.queryRecords").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// RoleCounts implements [AssessmentRepository].
func (r *assessmentRepository) RoleCounts(ctx context.Context) ([]models.RoleCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRoleCounts().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.RoleCounts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.RoleCount, 0, 4)
	for rows.Next() {
		var c models.RoleCount
		if scanErr := rows.Scan(&c.Role, &c.Total, &c.Completed); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		counts = append(counts, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}

// AllResponses implements [AssessmentRepository].
func (r *assessmentRepository) AllResponses(ctx context.Context) ([]models.AssessmentResponse, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllResponses().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.AllResponses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	responses := make([]models.AssessmentResponse, 0, 50)
	for rows.Next() {
		var resp models.AssessmentResponse
		if scanErr := rows.Scan(&resp.QuestionID, &resp.Response); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		responses = append(responses, resp)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return responses, nil
}
