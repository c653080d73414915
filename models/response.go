package models

import "time"

// AssessmentResponse is one answer to one survey question, belonging to
// exactly one assessment. For rating questions Response holds the literal
// small-integer text (e.g. "4"); for open-ended questions it holds a cipher
// envelope produced at submission time.
type AssessmentResponse struct {
	AssessmentID string    `json:"assessment_id"`
	QuestionID   string    `json:"question_id"`
	Response     string    `json:"response"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionAnswer is a single question/answer pair as submitted by the rater,
// before any encryption is applied.
type QuestionAnswer struct {
	QuestionID string `json:"question_id"`
	Response   string `json:"response"`
}
