package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrMissingOrMalformedToken: http.StatusUnauthorized,
	service.ErrMissingNumericSuffix:    http.StatusBadRequest,

	service.ErrInvalidDocument: http.StatusBadRequest,
	service.ErrInvalidID:       http.StatusBadRequest,
	service.ErrIDOverflow:      http.StatusBadRequest,
	service.ErrPoolUnavailable: http.StatusInternalServerError,

	ErrInvalidJSONBody:     http.StatusBadRequest,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrNoIdentityInContext: http.StatusInternalServerError,
	ErrNoPoolInContext:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures get the generic status text instead of the error message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
