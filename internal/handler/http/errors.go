package http

import "errors"

// Sentinel errors used by the gating middleware. Their text is logged, never
// written to responses; callers always receive a generic rejection.
var (
	// ErrEmptyRaterToken is returned by the rater gate when the incoming
	// request carries no X-Rater-Token header.
	ErrEmptyRaterToken = errors.New("empty `X-Rater-Token` header")

	// ErrInvalidRaterToken is returned when the presented token is not an
	// envelope the service key can decrypt.
	ErrInvalidRaterToken = errors.New("invalid rater token")

	// ErrInvalidAdminSecret is returned by the admin gate on a missing or
	// mismatched X-Admin-Secret header.
	ErrInvalidAdminSecret = errors.New("invalid admin secret")
)
