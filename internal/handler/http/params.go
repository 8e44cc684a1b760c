package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// int32URLParam reads a path parameter already constrained by the route
// pattern to an optionally signed decimal. ok is false when the value is out
// of the int32 range.
func int32URLParam(r *http.Request, key string) (int32, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, key), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
