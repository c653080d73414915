package http

import (
	"github.com/candorpath/assess360/internal/crypto"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/service"
)

// Handler carries the dependencies shared by all HTTP handlers and
// middleware.
type Handler struct {
	services *service.Services

	// codec verifies rater tokens at the gate. The decrypted claims live in
	// the request context for the duration of one request and are never
	// persisted.
	codec crypto.Codec

	// adminSecret is the shared secret gating the admin read surface.
	adminSecret string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, codec crypto.Codec, adminSecret string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		codec:       codec,
		adminSecret: adminSecret,
		logger:      logger,
	}
}
