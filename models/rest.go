// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RestItem is the payload returned by GET /rest/{id}.
type RestItem struct {
	// ID echoes the path parameter.
	ID int32 `json:"id"`

	// Name is derived from ID as "name: <id>".
	Name string `json:"name"`

	// UserID is the ID of the identity that made the request.
	UserID int64 `json:"user_id"`
}

// StatusRecord is one element of the fixed list returned by GET /rest.
type StatusRecord struct {
	ID     int32  `json:"id"`
	Status string `json:"status"`
}

// RestDocument is an arbitrary JSON object accepted and echoed by POST /rest.
// Values are kept in their decoded form so that every field other than "id"
// round-trips unchanged.
type RestDocument map[string]any
