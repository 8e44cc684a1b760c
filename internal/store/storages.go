// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-rest-demo/internal/logger"

// Storages groups every shared handle created at startup.
type Storages struct {
	Pool *Pool
}

func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")
	return &Storages{
		Pool: NewPool(),
	}
}
