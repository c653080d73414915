package crypto

// Codec performs authenticated encryption of structured values to and from
// self-contained opaque envelopes, and computes the blind-index fingerprint
// used to look up ciphertext by equality without decrypting it.
//
// The codec is the only component that holds the service key. It is immutable
// after construction and safe for concurrent use.
type Codec interface {
	// Encrypt serialises value to canonical JSON and seals it into a fresh
	// envelope. Every call consumes new randomness; envelopes for identical
	// values differ.
	Encrypt(value any) (string, error)

	// Decrypt unpacks an envelope, verifies its authentication tag, and
	// unmarshals the plaintext into target (a non-nil pointer, as for
	// encoding/json). Returns ErrIntegrity for malformed or tampered
	// envelopes and ErrFormat when the plaintext does not fit target.
	Decrypt(envelope string, target any) error

	// Validate reports whether Decrypt would succeed for envelope, swallowing
	// every failure. Purely a boolean probe.
	Validate(envelope string) bool

	// Fingerprint returns the deterministic blind-index digest of value's
	// canonical serialisation. Two semantically identical values hash
	// identically regardless of the field order they were supplied in.
	Fingerprint(value any) (string, error)
}
