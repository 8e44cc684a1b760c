// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: typed context keys, HTTP response
// writers, the HTTP client wrapper and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/MKhiriev/go-rest-demo/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityCtxKey is the key under which the auth middleware stores the
	// request's [models.Identity]. The value is stored by value, never as a
	// pointer.
	IdentityCtxKey = contextKey("identity")

	// PoolCtxKey is the key under which the pool middleware stores the shared
	// *store.Pool handle.
	PoolCtxKey = contextKey("pool")
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by the auth middleware.
//
// ok is false when the request did not pass through the auth middleware.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithPool returns a copy of ctx carrying pool.
func WithPool(ctx context.Context, pool *store.Pool) context.Context {
	return context.WithValue(ctx, PoolCtxKey, pool)
}

// GetPoolFromContext retrieves the shared pool handle. A nil pool stored in
// the context is reported as missing.
func GetPoolFromContext(ctx context.Context) (*store.Pool, bool) {
	pool, ok := ctx.Value(PoolCtxKey).(*store.Pool)
	return pool, ok && pool != nil
}
