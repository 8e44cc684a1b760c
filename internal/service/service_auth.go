// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/models"
)

// tokenPrefix is the literal every accepted X-Auth-Token value starts with.
const tokenPrefix = "ok:"

// authService is the concrete implementation of AuthService.
// It holds no state besides the logger and is safe for concurrent use.
type authService struct {
	logger *logger.Logger
}

// NewAuthService constructs the header token parser.
func NewAuthService(logger *logger.Logger) AuthService {
	return &authService{logger: logger}
}

// ParseToken validates an X-Auth-Token header value.
//
// The value must start with "ok:". The segment between the first ':' and the
// next ':' (or the end of the value) must be a base-10 signed 64-bit integer;
// a leading '+' or '-' is accepted.
//
// Returns:
//   - ErrMissingOrMalformedToken if the header is absent or lacks the prefix.
//   - ErrMissingNumericSuffix if the id segment is empty, not a number, or
//     outside the int64 range.
func (a *authService) ParseToken(ctx context.Context, header string, present bool) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if !present {
		log.Debug().Str("func", "authService.ParseToken").Msg("X-Auth-Token header is absent")
		return models.Identity{}, fmt.Errorf("%w: X-Auth-Token header is absent", ErrMissingOrMalformedToken)
	}

	if !strings.HasPrefix(header, tokenPrefix) {
		log.Debug().Str("func", "authService.ParseToken").Msg("token does not start with " + tokenPrefix)
		return models.Identity{}, ErrMissingOrMalformedToken
	}

	// "ok:" guarantees a first ':' at index 2
	segment := header[len(tokenPrefix):]
	if i := strings.IndexByte(segment, ':'); i >= 0 {
		segment = segment[:i]
	}

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.ParseToken").Msg("token id is not a number")
		return models.Identity{}, ErrMissingNumericSuffix
	}

	return models.Identity{ID: id}, nil
}
