// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the shared resource handles injected into request
// handling.
//
// The only handle today is [Pool], a stateless placeholder standing where a
// database pool would be. It has no fields, so a single instance can be shared
// by all concurrent requests without synchronization.
package store

// Pool is the shared resource handle attached to every REST request.
type Pool struct{}

// NewPool returns the process-wide Pool.
func NewPool() *Pool {
	return &Pool{}
}
