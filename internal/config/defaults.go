// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/http"
	"time"
)

const (
	// DefaultHTTPAddress is the loopback address the server binds to when
	// nothing else is configured.
	DefaultHTTPAddress = "127.0.0.1:3000"

	// DefaultMaxBodyBytes caps JSON request bodies at 1 MiB.
	DefaultMaxBodyBytes int64 = 1 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:  "debug",
			Version:   "dev",
			AuthToken: "ok:1",
		},
		Server: Server{
			HTTPAddress:  DefaultHTTPAddress,
			MaxBodyBytes: DefaultMaxBodyBytes,
			CORS: CORS{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Content-Type", "X-Auth-Token", "X-Trace-ID"},
				MaxAge:         300,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 10 * time.Second,
		},
	}
}
