package crypto

import "errors"

var (
	// ErrKeyFormat is returned by NewCodec when the configured key does not
	// base64-decode to exactly 32 bytes. It is a startup-fatal condition; the
	// service must refuse to start rather than degrade per-request.
	ErrKeyFormat = errors.New("service key must decode to exactly 32 bytes")

	// ErrIntegrity is returned by Decrypt when the envelope is malformed,
	// truncated, or its authentication tag does not verify. Input failing
	// this way is untrusted; the condition is never retryable.
	ErrIntegrity = errors.New("envelope integrity check failed")

	// ErrFormat is returned by Decrypt when the envelope authenticates but
	// the recovered plaintext is not the expected structured form.
	ErrFormat = errors.New("decrypted payload has unexpected form")
)
