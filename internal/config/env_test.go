// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_LEVEL":  "warn",
		"APP_VERSION":    "1.0.0",
		"APP_AUTH_TOKEN": "ok:9",

		"SERVER_ADDRESS":              "127.0.0.1:8181",
		"SERVER_REQUEST_TIMEOUT":      "30s",
		"SERVER_STATIC_DIR":           "/srv/static",
		"SERVER_PUBLIC_CREATE":        "true",
		"SERVER_MAX_BODY_BYTES":       "2048",
		"SERVER_CORS_ENABLED":         "true",
		"SERVER_CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"SERVER_CORS_MAX_AGE":         "60",

		"ADAPTER_ADDRESS":         "localhost:3000",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "ok:9", cfg.App.AuthToken)

	assert.Equal(t, "127.0.0.1:8181", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/static", cfg.Server.StaticDir)
	assert.True(t, cfg.Server.PublicCreate)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.True(t, cfg.Server.CORS.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, 60, cfg.Server.CORS.MaxAge)

	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.False(t, cfg.Server.PublicCreate)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("SERVER_PUBLIC_CREATE", "maybe")

	assert.Error(t, parseEnv(&StructuredConfig{}))
}
