package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candorpath/assess360/models"
)

// ─────────────────────────────────────────────
// raterGate
// ─────────────────────────────────────────────

func TestRaterGate_ValidToken(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	token := encrypt(t, h.codec, models.RaterClaims{Role: models.RolePeer})

	var gotClaims models.RaterClaims
	var gotEnvelope string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := raterClaimsFromContext(r.Context())
		require.True(t, ok)
		gotClaims = claims

		envelope, ok := raterEnvelopeFromContext(r.Context())
		require.True(t, ok)
		gotEnvelope = envelope

		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", nil)
	req.Header.Set(raterTokenHeader, token)
	rec := httptest.NewRecorder()

	h.raterGate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RolePeer, gotClaims.Role)
	assert.Equal(t, token, gotEnvelope, "gate should pass the envelope through verbatim")
}

func TestRaterGate_MissingHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", nil)
	rec := httptest.NewRecorder()

	h.raterGate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRaterGate_UndecryptableToken(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", nil)
	req.Header.Set(raterTokenHeader, "not-an-envelope")
	rec := httptest.NewRecorder()

	h.raterGate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRaterGate_RejectionBodyIsGeneric(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, token := range []string{"", "garbage", "AAAA"} {
		req := httptest.NewRequest(http.MethodPost, "/api/assessments", nil)
		if token != "" {
			req.Header.Set(raterTokenHeader, token)
		}
		rec := httptest.NewRecorder()

		h.raterGate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusUnauthorized)+"\n", rec.Body.String(),
			"rejection body must not say why the token was rejected")
	}
}
