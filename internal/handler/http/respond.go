package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/service"
	"github.com/candorpath/assess360/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps domain errors to HTTP statuses. Anything unmapped is a
// generic 500; internal error text never reaches the response body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Send()

	var status int
	switch {
	case errors.Is(err, store.ErrAssessmentNotFound),
		errors.Is(err, service.ErrNoAssessmentsForLeader):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrRaterTokenAlreadyUsed),
		errors.Is(err, store.ErrAlreadyCompleted),
		errors.Is(err, store.ErrDuplicateResponse):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrLeaderEnvelopeInvalid),
		errors.Is(err, service.ErrNoResponsesProvided),
		errors.Is(err, service.ErrInvalidRating):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	http.Error(w, http.StatusText(status), status)
}
