// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the plain data types shared by the HTTP handlers,
// the service layer, and the demo client.
package models

import "strconv"

// Identity is the authenticated caller of a request, as extracted from the
// X-Auth-Token header.
//
// An Identity is created once per request by the token parser and is passed
// by value afterwards, so downstream handlers always observe the value the
// parser produced.
type Identity struct {
	// ID is the numeric user identifier following the "ok:" token prefix.
	ID int64 `json:"id"`
}

// String returns the decimal form of the identity's user ID.
func (i Identity) String() string {
	return strconv.FormatInt(i.ID, 10)
}
