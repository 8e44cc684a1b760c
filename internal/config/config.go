// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the demo client. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds process-level settings such as the log level and version.
	App App `envPrefix:"APP_"`

	// Server holds listen address, routing and middleware settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the demo client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel selects the minimum log level: debug, info, warn or error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`

	// Version is the version string reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AuthToken is the X-Auth-Token value the demo client sends.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Server holds network and routing settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout middleware.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory served for GET / and any unmatched GET
	// path. Empty disables static file serving.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// PublicCreate lifts the X-Auth-Token requirement from POST /rest.
	// Env: SERVER_PUBLIC_CREATE
	PublicCreate bool `env:"PUBLIC_CREATE"`

	// MaxBodyBytes caps the size of JSON request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" validate:"gte=0"`

	// CORS configures the optional cross-origin middleware.
	CORS CORS `envPrefix:"CORS_"`
}

// CORS mirrors the subset of go-chi/cors options exposed through config.
type CORS struct {
	// Env: SERVER_CORS_ENABLED
	Enabled bool `env:"ENABLED"`
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	// Env: SERVER_CORS_ALLOWED_METHODS (comma separated)
	AllowedMethods []string `env:"ALLOWED_METHODS" envSeparator:","`
	// Env: SERVER_CORS_ALLOWED_HEADERS (comma separated)
	AllowedHeaders []string `env:"ALLOWED_HEADERS" envSeparator:","`
	// Env: SERVER_CORS_MAX_AGE (seconds)
	MaxAge int `env:"MAX_AGE" validate:"gte=0"`
}

// Adapter holds the outbound settings used by the demo client.
type Adapter struct {
	// HTTPAddress is the server address the client talks to, with or
	// without a scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in this
// order:
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
