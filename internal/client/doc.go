// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the demo client runtime.
//
// It runs one pass of the demo service against a live server, renders each
// call result to the terminal and reports whether any call failed.
package client
