// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/MKhiriev/go-rest-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService turns the raw X-Auth-Token header into an [models.Identity].
type AuthService interface {
	// ParseToken validates header and extracts the numeric user id.
	// present is false when the request carried no X-Auth-Token header.
	ParseToken(ctx context.Context, header string, present bool) (models.Identity, error)
}

// RestService implements the /rest endpoints. Every call receives the shared
// pool handle explicitly.
type RestService interface {
	GetItem(ctx context.Context, pool *store.Pool, id int32, identity models.Identity) (models.RestItem, error)
	ListStatuses(ctx context.Context, pool *store.Pool) ([]models.StatusRecord, error)
	CreateItem(ctx context.Context, pool *store.Pool, doc models.RestDocument) (models.RestDocument, error)
}

// GreetingService renders the plain-text demo endpoints.
type GreetingService interface {
	Hello(ctx context.Context) string
	Basic(ctx context.Context, name string, age int32) string
	Add(ctx context.Context, a, b int32) string
	Items(ctx context.Context, name string, query url.Values) string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DemoService drives one pass of the demo client over every endpoint.
type DemoService interface {
	Run(ctx context.Context) []models.CallResult
}
