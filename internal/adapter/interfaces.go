// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the demo client to talk to
// the server.
//
// [ServerAdapter] hides the HTTP details from the service layer. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go so
// that callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrNotFound] for 404).
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-rest-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client view of the demo server endpoints. Protected
// calls carry the X-Auth-Token configured at construction.
type ServerAdapter interface {
	// Hello calls GET /hello.
	Hello(ctx context.Context) (string, error)

	// GetRest calls GET /rest/{id}.
	GetRest(ctx context.Context, id int32) (models.RestItem, error)

	// ListRest calls GET /rest.
	ListRest(ctx context.Context) ([]models.StatusRecord, error)

	// CreateRest posts doc to POST /rest and returns the echoed document.
	// Numbers in the result are decoded as json.Number.
	CreateRest(ctx context.Context, doc models.RestDocument) (models.RestDocument, error)

	// Add calls GET /add/{a}/{b}.
	Add(ctx context.Context, a, b int32) (string, error)

	// Basic calls GET /basic/{name}/{age}.
	Basic(ctx context.Context, name string, age int32) (string, error)

	// Items calls GET /items/{name} with query attached.
	Items(ctx context.Context, name string, query url.Values) (string, error)

	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)
}
