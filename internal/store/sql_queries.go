package store

import sq "github.com/Masterminds/squirrel"

const (
	createAssessment = `INSERT INTO assessments (id, encrypted_leader, encrypted_rater, leader_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, encrypted_leader, encrypted_rater, leader_hash, role, created_at, updated_at, completed_at;`

	// The completed_at guard makes completion first-writer-wins: a concurrent
	// submit for the same assessment updates zero rows and fails before any
	// response insert.
	completeAssessment = `UPDATE assessments
    SET completed_at = now(), updated_at = now()
    WHERE id = $1 AND completed_at IS NULL;`

	assessmentExists = `SELECT EXISTS (SELECT 1 FROM assessments WHERE id = $1);`

	insertResponse = `INSERT INTO assessment_responses (assessment_id, question_id, response)
    VALUES ($1, $2, $3);`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// assessmentColumns are the assessment fields selected by every read query,
// in scan order.
var assessmentColumns = []string{
	"a.id",
	"a.encrypted_leader",
	"a.encrypted_rater",
	"a.leader_hash",
	"a.role",
	"a.created_at",
	"a.updated_at",
	"a.completed_at",
}

// selectRecords builds the read-side join of assessments and their responses.
// Rows arrive grouped by assessment (newest first) so the scanner can
// aggregate them in one pass.
func selectRecords() sq.SelectBuilder {
	cols := append([]string{}, assessmentColumns...)
	cols = append(cols, "r.question_id", "r.response", "r.created_at")

	return psql.Select(cols...).
		From("assessments a").
		LeftJoin("assessment_responses r ON r.assessment_id = a.id").
		OrderBy("a.created_at DESC", "a.id", "r.question_id")
}

// selectRoleCounts builds the per-role aggregate query. count(completed_at)
// skips NULLs, which is exactly the completed subset.
func selectRoleCounts() sq.SelectBuilder {
	return psql.Select("role", "count(*)", "count(completed_at)").
		From("assessments").
		GroupBy("role").
		OrderBy("role")
}

// selectAllResponses builds the flat response listing used for per-question
// statistics.
func selectAllResponses() sq.SelectBuilder {
	return psql.Select("question_id", "response").
		From("assessment_responses").
		OrderBy("question_id")
}
