package http

import (
	"context"
	"net/http"

	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/models"
)

const raterTokenHeader = "X-Rater-Token"

type ctxKey int

const (
	raterClaimsCtxKey ctxKey = iota
	raterEnvelopeCtxKey
)

// raterGate is the token-gate middleware for rater-facing routes. A caller
// proves possession of an issued rater token by presenting a ciphertext the
// service key can decrypt; the decrypted claims and the envelope itself are
// stored in the request context for exactly this request.
//
// Rejections are a generic 401 without detail, whether the header is missing
// or the envelope fails to decrypt.
func (h *Handler) raterGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		envelope := r.Header.Get(raterTokenHeader)
		if envelope == "" {
			log.Err(ErrEmptyRaterToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		var claims models.RaterClaims
		if err := h.codec.Decrypt(envelope, &claims); err != nil {
			log.Err(ErrInvalidRaterToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), raterClaimsCtxKey, claims)
		ctx = context.WithValue(ctx, raterEnvelopeCtxKey, envelope)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// raterClaimsFromContext returns the claims stored by raterGate. The second
// return is false on routes that never passed the gate.
func raterClaimsFromContext(ctx context.Context) (models.RaterClaims, bool) {
	claims, ok := ctx.Value(raterClaimsCtxKey).(models.RaterClaims)
	return claims, ok
}

// raterEnvelopeFromContext returns the verbatim token envelope stored by
// raterGate.
func raterEnvelopeFromContext(ctx context.Context) (string, bool) {
	envelope, ok := ctx.Value(raterEnvelopeCtxKey).(string)
	return envelope, ok
}
