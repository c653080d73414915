package models

import "time"

// DecryptFailedSentinel is substituted for any single field the admin read
// path fails to decrypt. One corrupt record must not hide the rest of the
// corpus, so decryption failures on the read side are downgraded to this
// marker instead of aborting the whole listing.
const DecryptFailedSentinel = "[decryption failed]"

// AssessmentView is the admin-facing projection of an assessment with both
// identifiers decrypted and its responses aggregated. Leader and Rater hold
// the decrypted identifier objects, or DecryptFailedSentinel when the stored
// envelope no longer verifies.
type AssessmentView struct {
	ID          string         `json:"id"`
	Leader      any            `json:"leader"`
	Rater       any            `json:"rater"`
	Role        Role           `json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Responses   []ResponseView `json:"responses"`
}

// ResponseView is a single response as shown to an admin: rating answers
// verbatim, open-ended answers decrypted (or the sentinel on failure).
type ResponseView struct {
	QuestionID string    `json:"question_id"`
	Response   string    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}

// Statistics is the aggregate view over all assessments.
type Statistics struct {
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	ByRole    map[Role]int   `json:"by_role"`
	Questions []QuestionStat `json:"questions"`
}

// QuestionStat aggregates responses for one question. Average is nil for
// open-ended questions, whose stored responses are ciphertext rather than
// numbers.
type QuestionStat struct {
	QuestionID string   `json:"question_id"`
	Count      int      `json:"count"`
	Average    *float64 `json:"average,omitempty"`
}
