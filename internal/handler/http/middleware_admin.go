package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/candorpath/assess360/internal/logger"
)

const adminSecretHeader = "X-Admin-Secret"

// adminGate guards the admin read surface with the single shared secret.
// The comparison is constant-time; absence and mismatch are indistinguishable
// to the caller.
func (h *Handler) adminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		presented := r.Header.Get(adminSecretHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(h.adminSecret)) != 1 {
			log.Err(ErrInvalidAdminSecret).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
