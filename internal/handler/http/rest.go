// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/utils"
	"github.com/MKhiriev/go-rest-demo/models"
)

// getRest handles GET /rest/{id}.
func (h *Handler) getRest(w http.ResponseWriter, r *http.Request) {
	id, ok := int32URLParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoIdentityInContext)
		return
	}
	pool, ok := utils.GetPoolFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPoolInContext)
		return
	}

	item, err := h.services.RestService.GetItem(ctx, pool, id, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing rest item")
	}
}

// listRest handles GET /rest.
func (h *Handler) listRest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := utils.GetIdentityFromContext(ctx); !ok {
		writeError(w, r, ErrNoIdentityInContext)
		return
	}
	pool, ok := utils.GetPoolFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPoolInContext)
		return
	}

	records, err := h.services.RestService.ListStatuses(ctx, pool)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status records")
	}
}

// createRest handles POST /rest. The body must be a single JSON object;
// numbers are kept in their literal form so they are echoed unchanged.
func (h *Handler) createRest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pool, ok := utils.GetPoolFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPoolInContext)
		return
	}

	doc, err := h.decodeDocument(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.RestService.CreateItem(ctx, pool, doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing created document")
	}
}

func (h *Handler) decodeDocument(w http.ResponseWriter, r *http.Request) (models.RestDocument, error) {
	body := r.Body
	if h.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.UseNumber()

	var doc models.RestDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(err)
	}
	// exactly one JSON value is allowed
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrInvalidJSONBody
		}
		return nil, decodeError(err)
	}

	return doc, nil
}

func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrRequestBodyTooLarge
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSONBody, err)
}
