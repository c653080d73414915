package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAssessmentNotFound is returned when a queried assessment does not
	// exist in the database.
	ErrAssessmentNotFound = errors.New("assessment was not found")

	// ErrRaterTokenAlreadyUsed is returned when creating an assessment fails
	// because another assessment already holds the same encrypted rater
	// identifier. One assessment per issued rater token.
	ErrRaterTokenAlreadyUsed = errors.New("rater token already used for an assessment")

	// ErrAlreadyCompleted is returned when a submission targets an assessment
	// whose completed_at is already set. Completion is terminal and happens
	// exactly once.
	ErrAlreadyCompleted = errors.New("assessment already completed")

	// ErrDuplicateResponse is returned when a submitted batch contains a
	// question that already has a persisted response for the assessment.
	// A resubmission is a conflict, not an update.
	ErrDuplicateResponse = errors.New("duplicate response for question")
)

// Low-level database operation errors, returned (or wrapped) by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
