package models

import "time"

// Role identifies the relationship between the rater and the leader being
// assessed. The set of valid roles is fixed and enforced both here and by a
// CHECK constraint on the assessments table.
type Role string

const (
	RoleManager      Role = "manager"
	RolePeer         Role = "peer"
	RoleSelf         Role = "self"
	RoleDirectReport Role = "direct_report"
)

// Valid reports whether r is one of the four recognised rater roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RolePeer, RoleSelf, RoleDirectReport:
		return true
	}
	return false
}

// Assessment is a single 360-degree assessment of one leader by one rater.
//
// Both identifiers are stored as the opaque envelopes produced by the cipher
// codec and are never mutated after creation. LeaderHash is a deterministic
// blind-index fingerprint of the decrypted leader identifier; it lets the
// admin surface find every assessment about a leader without the database
// ever holding the plaintext identity.
type Assessment struct {
	// ID is the server-assigned UUID of the assessment.
	ID string `json:"id"`

	// EncryptedLeader is the leader-identifier envelope, stored verbatim as
	// presented at creation time.
	EncryptedLeader string `json:"encrypted_leader"`

	// EncryptedRater is the rater-token envelope. Unique across all
	// assessments: one assessment per issued rater token.
	EncryptedRater string `json:"encrypted_rater"`

	// LeaderHash is the blind-index fingerprint of the decrypted leader
	// identifier. Two assessments of the same leader always share it,
	// regardless of the envelopes' random IVs.
	LeaderHash string `json:"leader_hash"`

	// Role is the rater's relationship to the leader, carried in the rater
	// token claims.
	Role Role `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CompletedAt is nil until the rater submits responses, after which it is
	// set exactly once inside the submission transaction.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RaterClaims is the structured payload carried inside a rater token
// envelope. The envelope itself may hold additional identifying fields; the
// server only ever looks at the role and treats the rest as opaque.
type RaterClaims struct {
	Role Role `json:"role"`
}
