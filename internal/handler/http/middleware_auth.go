package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/utils"
)

const authTokenHeader = "X-Auth-Token"

// auth validates the X-Auth-Token header through
// [service.AuthService.ParseToken] and stores the resulting identity in the
// request context under [utils.IdentityCtxKey].
//
// Rejections:
//   - 401 Unauthorized for an absent header or a value without the "ok:"
//     prefix ([service.ErrMissingOrMalformedToken]).
//   - 400 Bad Request for a value whose id part is not an integer
//     ([service.ErrMissingNumericSuffix]).
//
// When several X-Auth-Token headers are sent only the first one is used.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		values := r.Header.Values(authTokenHeader)
		present := len(values) > 0

		var token string
		if present {
			token = values[0]
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, token, present)
		if err != nil {
			log.Debug().Err(err).Bool("header_present", present).Msg("auth token rejected")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
