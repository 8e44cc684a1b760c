// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/MKhiriev/go-rest-demo/models"
)

// restIDField is the document field POST /rest reads and increments.
const restIDField = "id"

var statusRecords = []models.StatusRecord{
	{ID: 1, Status: "ok"},
	{ID: 2, Status: "err"},
	{ID: 3, Status: "aa"},
	{ID: 4, Status: "bb"},
	{ID: 5, Status: "cc"},
}

type restService struct {
	logger *logger.Logger
}

func NewRestService(logger *logger.Logger) RestService {
	return &restService{logger: logger}
}

// GetItem builds the record for GET /rest/{id}, attributing it to identity.
func (r *restService) GetItem(ctx context.Context, pool *store.Pool, id int32, identity models.Identity) (models.RestItem, error) {
	if pool == nil {
		return models.RestItem{}, ErrPoolUnavailable
	}

	return models.RestItem{
		ID:     id,
		Name:   fmt.Sprintf("name: %d", id),
		UserID: identity.ID,
	}, nil
}

// ListStatuses returns a fresh copy of the fixed status list.
func (r *restService) ListStatuses(ctx context.Context, pool *store.Pool) ([]models.StatusRecord, error) {
	if pool == nil {
		return nil, ErrPoolUnavailable
	}

	records := make([]models.StatusRecord, len(statusRecords))
	copy(records, statusRecords)
	return records, nil
}

// CreateItem increments the document's "id" and returns the document with
// every other field untouched. doc itself is not modified.
//
// The id must be an integer representable as int32. MaxInt32 is rejected
// with ErrIDOverflow because its successor does not fit.
func (r *restService) CreateItem(ctx context.Context, pool *store.Pool, doc models.RestDocument) (models.RestDocument, error) {
	log := logger.FromContext(ctx)

	if pool == nil {
		return nil, ErrPoolUnavailable
	}
	if doc == nil {
		return nil, ErrInvalidDocument
	}

	id, err := readInt32(doc[restIDField])
	if err != nil {
		log.Debug().Err(err).Str("func", "restService.CreateItem").Msg("invalid id in document")
		return nil, err
	}
	if id == math.MaxInt32 {
		return nil, ErrIDOverflow
	}

	created := make(models.RestDocument, len(doc))
	for k, v := range doc {
		created[k] = v
	}
	created[restIDField] = json.Number(strconv.FormatInt(int64(id)+1, 10))

	log.Debug().Int32("id", id).Str("func", "restService.CreateItem").Msg("document accepted")
	return created, nil
}

// readInt32 accepts the integer forms a decoded JSON value can take.
func readInt32(v any) (int32, error) {
	var s string
	switch value := v.(type) {
	case json.Number:
		s = value.String()
	case float64:
		if value != math.Trunc(value) || value < math.MinInt32 || value > math.MaxInt32 {
			return 0, ErrInvalidID
		}
		return int32(value), nil
	case int:
		s = strconv.Itoa(value)
	case int32:
		return value, nil
	case int64:
		s = strconv.FormatInt(value, 10)
	default:
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return int32(id), nil
}
