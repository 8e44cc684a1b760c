// Package server runs the HTTP server and owns its lifecycle.
//
// It starts the listener, waits for SIGINT, SIGTERM or SIGQUIT and then shuts
// the server down gracefully, letting in-flight requests finish.
package server
