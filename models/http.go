package models

// BeginAssessmentRequest is the JSON body of POST /api/assessments. The rater
// token travels in the X-Rater-Token header and is validated by the token
// gate before the body is read.
type BeginAssessmentRequest struct {
	// LeaderToken is the leader-identifier envelope issued out-of-band.
	LeaderToken string `json:"leader_token"`
}

// BeginAssessmentResponse carries the identity of a freshly created
// assessment back to the caller.
type BeginAssessmentResponse struct {
	ID string `json:"id"`
}

// SubmitResponsesRequest is the JSON body of
// POST /api/assessments/{id}/responses.
type SubmitResponsesRequest struct {
	Responses []QuestionAnswer `json:"responses"`
}
