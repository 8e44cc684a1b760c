package models

import "time"

// CallResult records the outcome of one demo client request.
type CallResult struct {
	// Name is a short label for the call, e.g. "hello" or "create rest".
	Name string

	// Method and Path identify the endpoint that was hit.
	Method string
	Path   string

	// Output is the rendered response body on success.
	Output string

	// Err is the transport or status error, nil on success.
	Err error

	// Duration is the wall time spent on the call.
	Duration time.Duration
}

// Failed reports whether the call ended with an error.
func (c CallResult) Failed() bool {
	return c.Err != nil
}
