// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	router.Get("/rest/{id}", func(w http.ResponseWriter, r *http.Request) {})
	router.Post("/rest", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/rest", func(w http.ResponseWriter, r *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, target: "/hello", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, target: "/rest", wantStatus: http.StatusCreated},
		{name: "unregistered method on static path", method: http.MethodPost, target: "/hello", wantStatus: http.StatusNotFound},
		{name: "unregistered method on multi-method path", method: http.MethodDelete, target: "/rest", wantStatus: http.StatusNotFound},
		{name: "unregistered method on param path", method: http.MethodPut, target: "/rest/5", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, target: "/missing", wantStatus: http.StatusNotFound},
	}

	router := newCheckMethodRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_BodyMatchesNotFound(t *testing.T) {
	router := newCheckMethodRouter()

	wrongMethod := httptest.NewRecorder()
	router.ServeHTTP(wrongMethod, httptest.NewRequest(http.MethodPatch, "/hello", nil))

	unknownPath := httptest.NewRecorder()
	router.ServeHTTP(unknownPath, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, unknownPath.Body.String(), wrongMethod.Body.String())
}
