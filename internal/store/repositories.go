package store

import "github.com/candorpath/assess360/internal/logger"

// Repositories aggregates every repository backed by the shared connection
// pool.
type Repositories struct {
	Assessments AssessmentRepository
}

// NewRepositories wires all repositories to the given database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Assessments: NewAssessmentRepository(db, logger),
	}
}
