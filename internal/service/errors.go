package service

import "errors"

var (
	// ErrMissingOrMalformedToken is returned when X-Auth-Token is absent or
	// does not start with "ok:".
	ErrMissingOrMalformedToken = errors.New("missing or malformed auth token")

	// ErrMissingNumericSuffix is returned when the token carries the "ok:"
	// prefix but no parsable integer after it.
	ErrMissingNumericSuffix = errors.New("auth token has no numeric user id")

	ErrPoolUnavailable = errors.New("shared pool is not available")

	ErrInvalidDocument = errors.New("request body must be a JSON object")
	ErrInvalidID       = errors.New("field id must be a 32-bit integer")
	ErrIDOverflow      = errors.New("field id cannot be incremented")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
