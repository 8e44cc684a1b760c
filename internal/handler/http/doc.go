// Package http implements the HTTP transport layer of the demo server.
//
// It holds the route table, the request handlers and the middleware chain:
// trace id, access logging, panic recovery, compression, CORS, timeouts,
// X-Auth-Token authentication and pool injection. Handlers delegate the
// actual work to the service layer.
package http
