package config

import "errors"

// Validation errors returned by StructuredConfig.validate. All of them are
// fatal at startup: the service refuses to run without its key material,
// admin secret, or database.
var (
	ErrNoEncryptionKey = errors.New("no encryption key provided")
	ErrNoAdminSecret   = errors.New("no admin secret provided")
	ErrNoDatabaseDSN   = errors.New("no database DSN provided")
)
