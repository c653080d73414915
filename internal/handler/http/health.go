package http

import "net/http"

// health is the liveness probe. It touches neither the store nor the key.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
