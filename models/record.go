package models

// AssessmentRecord is an assessment together with its responses as read back
// from storage, before any decryption has been applied. The admin service
// turns records into AssessmentView values on the way out.
type AssessmentRecord struct {
	Assessment
	Responses []AssessmentResponse `json:"responses"`
}

// RoleCount is one row of the per-role aggregate: how many assessments exist
// for a role and how many of them have been completed.
type RoleCount struct {
	Role      Role `json:"role"`
	Total     int  `json:"total"`
	Completed int  `json:"completed"`
}
