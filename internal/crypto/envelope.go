// Package crypto implements the confidential-identity core of the service:
// AES-256-GCM envelopes for structured values and a keyed blind-index
// fingerprint for querying encrypted identifiers by equality.
//
// An envelope is the URL-safe base64 rendering of
//
//	iv (16) ‖ salt (16) ‖ tag (16) ‖ ciphertext
//
// and is self-contained: decryption needs only the shared service key and the
// envelope itself. The salt is carried but currently unused; it reserves room
// for a per-envelope key-derivation step without a format change.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keyLen  = 32
	ivLen   = 16
	saltLen = 16
	tagLen  = 16

	// headerLen is the size of the fixed-offset fields preceding the
	// ciphertext body.
	headerLen = ivLen + saltLen + tagLen
)

// hkdfInfo domain-separates the blind-index MAC key from the AEAD key.
const hkdfInfo = "assess360/blind-index/v1"

// codec is the private implementation of [Codec].
type codec struct {
	aead cipher.AEAD

	// indexKey is the HKDF-derived MAC key for Fingerprint. Deriving it from
	// the service key keeps key provisioning to a single 32-byte secret while
	// ensuring the fingerprint and the cipher never share key material.
	indexKey []byte
}

// NewCodec constructs a [Codec] from the externally provisioned service key.
//
// encodedKey must be a standard-base64 string that decodes to exactly 32
// bytes; anything else fails with [ErrKeyFormat]. This check runs once at
// startup so that a misconfigured key can never surface as a per-request
// decryption failure.
func NewCodec(encodedKey string) (Codec, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrKeyFormat, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	// 16-byte nonces match the envelope's fixed iv field.
	aead, err := cipher.NewGCMWithNonceSize(block, ivLen)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	indexKey := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(hkdfInfo)), indexKey); err != nil {
		return nil, fmt.Errorf("derive index key: %w", err)
	}

	return &codec{aead: aead, indexKey: indexKey}, nil
}

// Encrypt implements [Codec]. It marshals value to JSON, seals it under a
// fresh random IV, and packs iv ‖ salt ‖ tag ‖ ciphertext into one URL-safe
// base64 envelope. The tag is stored explicitly so that verification on the
// way back is explicit and fails closed.
func (c *codec) Encrypt(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	header := make([]byte, ivLen+saltLen)
	if _, err := io.ReadFull(rand.Reader, header); err != nil {
		return "", fmt.Errorf("generate iv and salt: %w", err)
	}
	iv := header[:ivLen]

	// Seal appends the tag after the ciphertext; the envelope stores it
	// before the body instead.
	sealed := c.aead.Seal(nil, iv, plaintext, nil)
	body, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]

	blob := make([]byte, 0, headerLen+len(body))
	blob = append(blob, header...)
	blob = append(blob, tag...)
	blob = append(blob, body...)

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec]. It parses the fixed-offset envelope fields,
// verifies the authentication tag while decrypting, and unmarshals the
// recovered plaintext into target.
func (c *codec) Decrypt(envelope string, target any) error {
	blob, err := base64.RawURLEncoding.DecodeString(envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	if len(blob) < headerLen {
		return fmt.Errorf("%w: envelope too short", ErrIntegrity)
	}

	iv := blob[:ivLen]
	// blob[ivLen : ivLen+saltLen] is the salt, reserved for key derivation.
	tag := blob[ivLen+saltLen : headerLen]
	body := blob[headerLen:]

	// GCM expects ciphertext ‖ tag.
	sealed := make([]byte, 0, len(body)+tagLen)
	sealed = append(sealed, body...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return nil
}

// Validate implements [Codec].
func (c *codec) Validate(envelope string) bool {
	var probe any
	return c.Decrypt(envelope, &probe) == nil
}

// Fingerprint implements [Codec]. The value is canonicalised by a
// marshal/unmarshal/marshal round through untyped JSON. encoding/json emits
// map keys in sorted order at every nesting level, so two identifier objects
// that differ only in field order serialise identically. The canonical bytes
// are then MACed with HMAC-SHA256 under the derived index key and returned as
// hex.
func (c *codec) Fingerprint(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", fmt.Errorf("canonicalize value: %w", err)
	}
	canonical, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("canonicalize value: %w", err)
	}

	mac := hmac.New(sha256.New, c.indexKey)
	mac.Write(canonical)
	return fmt.Sprintf("%x", mac.Sum(nil)), nil
}
