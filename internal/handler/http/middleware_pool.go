package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/utils"
)

// withPool attaches the shared pool handle to the request context.
func (h *Handler) withPool(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithPool(r.Context(), h.pool)))
	})
}
