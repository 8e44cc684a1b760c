// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoIdentityInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoIdentityInContext = errors.New("no identity in request context")

	// ErrNoPoolInContext means a REST handler ran without the pool middleware.
	ErrNoPoolInContext = errors.New("no pool in request context")

	// ErrInvalidJSONBody is returned when the request body is not valid JSON
	// or holds more than one value.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	ErrRequestBodyTooLarge = errors.New("request body too large")

	errIsDirectory = errors.New("is a directory")
)
