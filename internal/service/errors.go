package service

import "errors"

var (
	// ErrInvalidRole is returned when the rater token claims carry a role
	// outside the fixed enumeration.
	ErrInvalidRole = errors.New("invalid rater role")

	// ErrLeaderEnvelopeInvalid is returned by Start when the leader
	// identifier envelope cannot be decrypted. Propagated, not swallowed:
	// without the plaintext the blind index cannot be computed.
	ErrLeaderEnvelopeInvalid = errors.New("leader identifier envelope is invalid")

	// ErrNoResponsesProvided is returned when a submission carries an empty
	// answer list.
	ErrNoResponsesProvided = errors.New("no responses provided")

	// ErrInvalidRating is returned when a rating question's answer is not a
	// small integer. This is deliberate: a free-text answer sent under a
	// rating question id fails loudly instead of being stored in the clear.
	ErrInvalidRating = errors.New("rating response must be an integer between 0 and 10")

	// ErrNoAssessmentsForLeader is returned by ListByLeader when no
	// assessment shares the supplied token's fingerprint.
	ErrNoAssessmentsForLeader = errors.New("no assessments found for leader")
)
