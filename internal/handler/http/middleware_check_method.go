// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches a registered route but the method does
// not. The demo server exposes no such distinction: a request whose method
// is not registered for its path gets the same 404 as an unknown path.
//
// The registered methods for an exact pattern match are logged to help with
// debugging client calls.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path)

		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				allowed := make([]string, 0, len(route.Handlers))
				for method := range route.Handlers {
					allowed = append(allowed, method)
				}
				event = event.Strs("allowed", allowed)
				break
			}
		}
		event.Msg("method not registered for path")

		http.NotFound(w, r)
	}
}
