package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request body too large")
	ErrInternalServerError = errors.New("internal server error")
)
